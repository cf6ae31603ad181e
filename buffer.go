package byteconv

import (
	"encoding/binary"
	"io"
	"math"
)

// Buffer writes binary data into a pre-allocated byte slice. It will not
// grow the slice's capacity. Every operation is transactional: it either
// fits completely and advances the write position by exactly the encoded
// width, or fails with ErrOutOfSpace and leaves the buffer and position
// untouched. This differs from the usual io.ErrShortWrite convention,
// which commits a partial write.
type Buffer struct {
	B     []byte // destination slice
	N     int    // current write position
	order binary.ByteOrder
}

// NewBuffer creates a Buffer over the full capacity of p, using the
// package default Order.
func NewBuffer(p []byte) *Buffer {
	return &Buffer{B: p[:cap(p)], order: Order}
}

// WithByteOrder sets the byte order used for multi-byte values and
// returns the Buffer for chaining.
func (b *Buffer) WithByteOrder(order binary.ByteOrder) *Buffer {
	b.order = order
	return b
}

// grab reserves the next n bytes and advances the write position.
// It fails with ErrOutOfSpace, reserving nothing, if fewer than n remain.
func (b *Buffer) grab(n int) ([]byte, error) {
	if n < 0 || b.N+n > len(b.B) || b.N+n < 0 {
		return nil, ErrOutOfSpace
	}
	p := b.B[b.N : b.N+n]
	b.N += n
	return p, nil
}

// --- Primitive Write Operations ---

// WriteBool writes a bool as a single byte, 1 for true and 0 for false.
func (b *Buffer) WriteBool(v bool) error {
	p, err := b.grab(1)
	if err != nil {
		return err
	}
	if v {
		p[0] = 1
	} else {
		p[0] = 0
	}
	return nil
}

// WriteUint8 writes a single byte.
func (b *Buffer) WriteUint8(v uint8) error {
	p, err := b.grab(1)
	if err != nil {
		return err
	}
	p[0] = v
	return nil
}

// WriteUint16 writes a uint16 in the configured byte order.
func (b *Buffer) WriteUint16(v uint16) error {
	p, err := b.grab(2)
	if err != nil {
		return err
	}
	b.order.PutUint16(p, v)
	return nil
}

// WriteUint32 writes a uint32 in the configured byte order.
func (b *Buffer) WriteUint32(v uint32) error {
	p, err := b.grab(4)
	if err != nil {
		return err
	}
	b.order.PutUint32(p, v)
	return nil
}

// WriteUint64 writes a uint64 in the configured byte order.
func (b *Buffer) WriteUint64(v uint64) error {
	p, err := b.grab(8)
	if err != nil {
		return err
	}
	b.order.PutUint64(p, v)
	return nil
}

// WriteInt8 writes an int8 as its two's complement byte.
func (b *Buffer) WriteInt8(v int8) error { return b.WriteUint8(uint8(v)) }

// WriteInt16 writes an int16 in the configured byte order.
func (b *Buffer) WriteInt16(v int16) error { return b.WriteUint16(uint16(v)) }

// WriteInt32 writes an int32 in the configured byte order.
func (b *Buffer) WriteInt32(v int32) error { return b.WriteUint32(uint32(v)) }

// WriteInt64 writes an int64 in the configured byte order.
func (b *Buffer) WriteInt64(v int64) error { return b.WriteUint64(uint64(v)) }

// WriteFloat32 writes a float32 as its IEEE 754 bits.
func (b *Buffer) WriteFloat32(v float32) error { return b.WriteUint32(math.Float32bits(v)) }

// WriteFloat64 writes a float64 as its IEEE 754 bits.
func (b *Buffer) WriteFloat64(v float64) error { return b.WriteUint64(math.Float64bits(v)) }

// WriteUintN writes the low width bytes of v in the configured byte order.
// Width may be 1 through 8. Values that do not fit fail with ErrOverflow.
func (b *Buffer) WriteUintN(width int, v uint64) error {
	if width < 1 || width > 8 {
		return ErrIntegerWidth
	}
	if width < 8 && v >= 1<<(8*width) {
		return ErrOverflow
	}
	p, err := b.grab(width)
	if err != nil {
		return err
	}
	putUintN(b.order, p, v)
	return nil
}

// --- Raw And Length-Prefixed Writes ---

// WriteBytes copies p into the buffer without a length prefix.
func (b *Buffer) WriteBytes(p []byte) error {
	dst, err := b.grab(len(p))
	if err != nil {
		return err
	}
	copy(dst, p)
	return nil
}

// WriteVarBytes writes the length of p in a prefix of the given width
// followed by the raw bytes of p. The prefix width may be 1, 2, 4 or 8;
// payloads too long for the prefix fail with ErrLengthOverflow. Prefix and
// payload are committed together or not at all.
func (b *Buffer) WriteVarBytes(width int, p []byte) error {
	max, err := prefixMax(width)
	if err != nil {
		return err
	}
	if uint64(len(p)) > max {
		return ErrLengthOverflow
	}
	dst, err := b.grab(width + len(p))
	if err != nil {
		return err
	}
	putUintN(b.order, dst[:width], uint64(len(p)))
	copy(dst[width:], p)
	return nil
}

// WriteVarString writes s like WriteVarBytes writes a byte slice.
func (b *Buffer) WriteVarString(width int, s string) error {
	max, err := prefixMax(width)
	if err != nil {
		return err
	}
	if uint64(len(s)) > max {
		return ErrLengthOverflow
	}
	dst, err := b.grab(width + len(s))
	if err != nil {
		return err
	}
	putUintN(b.order, dst[:width], uint64(len(s)))
	copy(dst[width:], s)
	return nil
}

// WriteZeros writes n zero bytes, often for padding.
func (b *Buffer) WriteZeros(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	p, err := b.grab(n)
	if err != nil {
		return err
	}
	clear(p)
	return nil
}

// Align pads the buffer with zeros until the write position is a multiple of n.
func (b *Buffer) Align(n int) error {
	if n <= 0 {
		return ErrNegativeCount
	}
	return b.WriteZeros(Roundup(b.N, n) - b.N)
}

// WriteValue encodes vs with the reflection rules of Marshal, in the
// configured byte order. The values are committed together: on any error
// the write position is unchanged.
func (b *Buffer) WriteValue(vs ...any) error {
	size, err := SizeOf(vs...)
	if err != nil {
		return err
	}
	if b.N+size > len(b.B) {
		return ErrOutOfSpace
	}
	out := b.B[b.N:b.N]
	for _, v := range vs {
		out, err = appendAny(out, b.order, v)
		if err != nil {
			return err
		}
	}
	if len(out) != size {
		return errSizeMismatch(size, len(out))
	}
	b.N += size
	return nil
}

// --- Standard Library Interfaces ---

// Write implements io.Writer. Unlike most fixed writers it never commits a
// partial p: when p does not fit it writes nothing and fails.
func (b *Buffer) Write(p []byte) (int, error) {
	dst, err := b.grab(len(p))
	if err != nil {
		return 0, err
	}
	return copy(dst, p), nil
}

// WriteString implements the io.StringWriter interface for efficiency.
func (b *Buffer) WriteString(s string) (int, error) {
	dst, err := b.grab(len(s))
	if err != nil {
		return 0, err
	}
	return copy(dst, s), nil
}

// WriteByte implements the io.ByteWriter interface for efficiency.
func (b *Buffer) WriteByte(c byte) error {
	p, err := b.grab(1)
	if err != nil {
		return err
	}
	p[0] = c
	return nil
}

// ReadFrom implements the io.ReaderFrom interface with a single read into
// the remaining space. It fails with ErrOutOfSpace when the buffer is full.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	if b.N >= len(b.B) {
		return 0, ErrOutOfSpace
	}
	n, err := r.Read(b.B[b.N:])
	if n < 0 {
		return 0, ErrInvalidWrite
	}
	b.N += n
	if err == io.EOF {
		return int64(n), nil
	}
	return int64(n), err
}

// Flush does nothing.
func (b *Buffer) Flush() error { return nil }

// Close does nothing.
func (b *Buffer) Close() error { return nil }

// --- Accessors ---

// Reset allows the underlying byte slice to be reused.
func (b *Buffer) Reset() { b.N = 0 }

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return b.N }

// Cap returns the capacity of the underlying byte slice.
func (b *Buffer) Cap() int { return len(b.B) }

// Available returns the number of bytes available for writing.
func (b *Buffer) Available() int { return len(b.B) - b.N }

// Bytes returns a slice view of the written data.
func (b *Buffer) Bytes() []byte { return b.B[:b.N] }
