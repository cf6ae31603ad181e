// Package byteconv converts Go values to and from their binary representation
// with an explicit, caller-controlled byte order.
//
// The package offers three layers:
//
//   - Cursor types over in-memory bytes: Buffer writes into a fixed
//     caller-owned slice, View reads from one, and Builder appends to a
//     growable slice. Buffer and View are transactional per call: an
//     operation either completes and advances the cursor by exactly the
//     encoded width, or fails with a sentinel error and leaves the cursor
//     where it was.
//   - Stream types: Writer and Reader wrap an io.Writer/io.Reader and
//     latch the first error, so a sequence of operations can be issued
//     without per-call checks and inspected once via Err or Result.
//   - Value serialization: Marshal, Unmarshal, Append and SizeOf encode
//     whole values by reflection, and Fixed wraps fixed-size payloads for
//     the encoding/binary fast path.
//
// # Wire format
//
// Scalars occupy exactly their bit width: bool and the 8-bit integers one
// byte, larger integers and floats their natural 2, 4 or 8 bytes in the
// selected byte order. Floats are carried as IEEE 754 bits. Variable-length
// data is length-prefixed: WriteVarBytes emits an unsigned length in a
// caller-chosen prefix width (1, 2, 4 or 8 bytes, byte order applied)
// followed by the raw payload. The reflection layer prefixes strings,
// slices and maps with a uint32 element count, encodes array and struct
// contents in declaration order, and adds no alignment or padding of its
// own.
//
// The package default Order is little-endian; every cursor and stream can
// be switched per instance with WithByteOrder, and NE selects the host
// order resolved at build time.
//
// None of the types in this package are safe for concurrent use; each
// goroutine should operate on its own cursor or stream.
package byteconv

import (
	"encoding"
	"io"
)

// Sizer is an interface for types that can report their binary size.
// This is useful for pre-allocating buffers before encoding.
type Sizer interface {
	// Size returns the size of the type in bytes when binary encoded.
	Size() int
}

// Marshaler defines the core methods for encoding an object into a byte stream.
// It integrates standard library interfaces and provides a high-performance,
// allocation-free option.
type Marshaler interface {
	// encoding.BinaryMarshaler provides the primary encoding method.
	// It allocates and returns a new byte slice.
	encoding.BinaryMarshaler // Method: MarshalBinary() ([]byte, error)
	// io.WriterTo provides efficient, stream-based writing.
	// This avoids allocating the entire byte slice in memory at once.
	io.WriterTo // Method: WriteTo(writer io.Writer) (int64, error)

	// MarshalTo is a high-performance, zero-allocation encoding method.
	// It encodes the object into a pre-allocated buffer, returning an error
	// (e.g., ErrOutOfSpace) if the buffer is too small.
	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler defines the core methods for decoding a byte stream into an object.
type Unmarshaler interface {
	// encoding.BinaryUnmarshaler decodes data from a byte slice.
	encoding.BinaryUnmarshaler // Method: UnmarshalBinary(data []byte) error
	// io.ReaderFrom provides efficient, stream-based reading. Implementations
	// must consume exactly the bytes of one encoded value, so that decoding
	// can continue after them.
	io.ReaderFrom // Method: ReadFrom(r io.Reader) (int64, error)
}

// Codec aggregates all binary serialization and deserialization interfaces.
// A type implementing Codec is a complete, self-sizing binary encoder/decoder.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}
