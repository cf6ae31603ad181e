package byteconv

import (
	"encoding/binary"
	"io"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the high performance cost of reflection in `binary.Size`
// on every call. Using a global concurrent map makes it safe to share.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed provides a generic `Codec` implementation for any payload type
// composed of fixed-size fields, eliminating boilerplate for simple data
// structures.
//
// Constraint: the payload type MUST NOT contain variable-size fields like
// slices, maps, or strings, as this will cause `binary.Size` to fail.
//
// The zero value encodes with the package default Order; set the Order
// field to pin an instance to a specific byte order.
type Fixed[Payload any] struct {
	Payload Payload
	Order   binary.ByteOrder // nil means the package default
}

// Statically assert that Fixed implements Codec.
var _ Codec = (*Fixed[struct{}])(nil)

func (c *Fixed[Payload]) byteOrder() binary.ByteOrder {
	if c.Order != nil {
		return c.Order
	}
	return Order
}

// Size returns the fixed size of the payload in bytes.
// The result is cached to avoid reflection overhead on subsequent calls.
func (c *Fixed[Payload]) Size() int {
	bodyType := reflect.TypeOf((*Payload)(nil)).Elem()

	// Attempt to load from the concurrent-safe cache first for performance.
	if size, ok := sizeCache.Load(bodyType); ok {
		return size
	}

	// If not cached, perform the expensive reflection-based calculation.
	size := binary.Size(&c.Payload)

	// Store the result for subsequent calls.
	sizeCache.Store(bodyType, size)
	return size
}

// MarshalBinary implements the standard `encoding.BinaryMarshaler` interface.
// Note: This method allocates a new byte slice. For performance-critical paths,
// use `MarshalTo` or `WriteTo` instead.
func (c *Fixed[Payload]) MarshalBinary() ([]byte, error) {
	buf := make([]byte, c.Size())
	if _, err := binary.Encode(buf, c.byteOrder(), &c.Payload); err != nil {
		return nil, ErrOutOfSpace // binary.Encode only fails when the buffer cannot hold the payload
	}
	return buf, nil
}

// UnmarshalBinary implements the standard `encoding.BinaryUnmarshaler` interface.
// Zero padding after the payload is tolerated; any other trailing bytes are
// reported, to catch truncated or misframed payloads early.
func (c *Fixed[Payload]) UnmarshalBinary(data []byte) error {
	n, err := binary.Decode(data, c.byteOrder(), &c.Payload)
	if err != nil {
		return ErrTruncated // binary.Decode only fails when data is shorter than the payload
	}
	if len(data) > n {
		if err := CheckBufferNotZeros(data[n:]); err != nil {
			return err
		}
	}
	return nil
}

// ReadFrom implements `io.ReaderFrom` for efficient, allocation-free reading
// directly from a stream into the payload.
func (c *Fixed[Payload]) ReadFrom(r io.Reader) (int64, error) {
	err := binary.Read(r, c.byteOrder(), &c.Payload)
	if err != nil {
		return 0, err
	}
	return int64(c.Size()), nil
}

// WriteTo implements `io.WriterTo` for efficient, allocation-free writing
// directly to a stream (e.g., a network connection or file).
func (c *Fixed[Payload]) WriteTo(w io.Writer) (int64, error) {
	err := binary.Write(w, c.byteOrder(), &c.Payload)
	if err != nil {
		return 0, err
	}
	return int64(c.Size()), nil
}

// MarshalTo marshals the payload into the provided slice `p`.
// This is the most performant marshalling option as it avoids memory allocation.
func (c *Fixed[Payload]) MarshalTo(p []byte) (int, error) {
	n, err := binary.Encode(p, c.byteOrder(), &c.Payload)
	if err != nil {
		return n, ErrOutOfSpace // binary.Encode only fails when the buffer cannot hold the payload
	}
	return n, nil
}
