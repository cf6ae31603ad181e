package byteconv

import (
	"encoding/binary"
	"io"
	"math"
)

// View reads binary data from a byte slice it does not own. Every typed
// read is transactional: it either completes and advances the read
// position by exactly the bytes consumed, or fails with ErrTruncated and
// leaves the position untouched, so a failed decode can fall back to
// another interpretation of the same bytes.
type View struct {
	B     []byte // source slice
	N     int    // current read position
	order binary.ByteOrder
}

// NewView creates a View over b, using the package default Order.
func NewView(b []byte) *View {
	return &View{B: b, order: Order}
}

// WithByteOrder sets the byte order used for multi-byte values and
// returns the View for chaining.
func (v *View) WithByteOrder(order binary.ByteOrder) *View {
	v.order = order
	return v
}

// take consumes the next n bytes and advances the read position.
// It fails, consuming nothing, if fewer than n bytes remain.
func (v *View) take(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if v.N+n > len(v.B) || v.N+n < 0 {
		return nil, ErrTruncated
	}
	p := v.B[v.N : v.N+n]
	v.N += n
	return p, nil
}

// --- Primitive Read Operations ---

// ReadBool reads one byte and reports whether it is non-zero.
func (v *View) ReadBool() (bool, error) {
	p, err := v.take(1)
	if err != nil {
		return false, err
	}
	return p[0] != 0, nil
}

// ReadUint8 reads a single byte.
func (v *View) ReadUint8() (uint8, error) {
	p, err := v.take(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// ReadUint16 reads a uint16 in the configured byte order.
func (v *View) ReadUint16() (uint16, error) {
	p, err := v.take(2)
	if err != nil {
		return 0, err
	}
	return v.order.Uint16(p), nil
}

// ReadUint32 reads a uint32 in the configured byte order.
func (v *View) ReadUint32() (uint32, error) {
	p, err := v.take(4)
	if err != nil {
		return 0, err
	}
	return v.order.Uint32(p), nil
}

// ReadUint64 reads a uint64 in the configured byte order.
func (v *View) ReadUint64() (uint64, error) {
	p, err := v.take(8)
	if err != nil {
		return 0, err
	}
	return v.order.Uint64(p), nil
}

// ReadInt8 reads a single byte as a two's complement int8.
func (v *View) ReadInt8() (int8, error) {
	u, err := v.ReadUint8()
	return int8(u), err
}

// ReadInt16 reads an int16 in the configured byte order.
func (v *View) ReadInt16() (int16, error) {
	u, err := v.ReadUint16()
	return int16(u), err
}

// ReadInt32 reads an int32 in the configured byte order.
func (v *View) ReadInt32() (int32, error) {
	u, err := v.ReadUint32()
	return int32(u), err
}

// ReadInt64 reads an int64 in the configured byte order.
func (v *View) ReadInt64() (int64, error) {
	u, err := v.ReadUint64()
	return int64(u), err
}

// ReadFloat32 reads a float32 from its IEEE 754 bits.
func (v *View) ReadFloat32() (float32, error) {
	u, err := v.ReadUint32()
	return math.Float32frombits(u), err
}

// ReadFloat64 reads a float64 from its IEEE 754 bits.
func (v *View) ReadFloat64() (float64, error) {
	u, err := v.ReadUint64()
	return math.Float64frombits(u), err
}

// ReadUintN reads an unsigned integer of the given byte width, 1 through 8,
// in the configured byte order.
func (v *View) ReadUintN(width int) (uint64, error) {
	if width < 1 || width > 8 {
		return 0, ErrIntegerWidth
	}
	p, err := v.take(width)
	if err != nil {
		return 0, err
	}
	return uintN(v.order, p), nil
}

// --- Raw And Length-Prefixed Reads ---

// ReadBytes reads n bytes into a freshly allocated slice.
func (v *View) ReadBytes(n int) ([]byte, error) {
	p, err := v.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, p)
	return out, nil
}

// Next returns the next n bytes without copying. The window aliases the
// underlying slice and stays valid only as long as that slice does.
func (v *View) Next(n int) ([]byte, error) {
	return v.take(n)
}

// Peek returns the next n bytes without copying or advancing.
func (v *View) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if v.N+n > len(v.B) || v.N+n < 0 {
		return nil, ErrTruncated
	}
	return v.B[v.N : v.N+n], nil
}

// Skip advances the read position by n bytes without interpreting them.
func (v *View) Skip(n int) error {
	_, err := v.take(n)
	return err
}

// varWindow decodes a length prefix of the given width and returns the
// payload window after it, advancing past both. Prefix and payload are
// consumed together or not at all.
func (v *View) varWindow(width int) ([]byte, error) {
	if _, err := prefixMax(width); err != nil {
		return nil, err
	}
	if len(v.B)-v.N < width {
		return nil, ErrTruncated
	}
	n := uintN(v.order, v.B[v.N:v.N+width])
	if n > uint64(len(v.B)-v.N-width) {
		return nil, ErrTruncated
	}
	start := v.N + width
	end := start + int(n)
	v.N = end
	return v.B[start:end], nil
}

// ReadVarBytes reads a payload length-prefixed by WriteVarBytes with the
// same prefix width, returning a copy of the payload.
func (v *View) ReadVarBytes(width int) ([]byte, error) {
	p, err := v.varWindow(width)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}

// ReadVarString reads a length-prefixed payload as a string.
func (v *View) ReadVarString(width int) (string, error) {
	p, err := v.varWindow(width)
	if err != nil {
		return "", err
	}
	return string(p), nil
}

// ReadValue decodes values with the reflection rules of Unmarshal, in the
// configured byte order. Each destination must be a non-nil pointer. On
// any error the read position is restored to where it was before the call.
// A destination is never left half filled, though destinations decoded
// before the failing one keep their new values.
func (v *View) ReadValue(ptrs ...any) error {
	mark := v.N
	for _, ptr := range ptrs {
		if err := decodeAny(v, ptr); err != nil {
			v.N = mark
			return err
		}
	}
	return nil
}

// --- Standard Library Interfaces ---

// Read implements the [io.Reader] interface.
func (v *View) Read(p []byte) (int, error) {
	if v.N >= len(v.B) {
		return 0, io.EOF
	}
	n := copy(p, v.B[v.N:])
	v.N += n
	return n, nil
}

// ReadByte implements the [io.ByteReader] interface.
func (v *View) ReadByte() (byte, error) {
	if v.N >= len(v.B) {
		return 0, io.EOF
	}
	b := v.B[v.N]
	v.N++
	return b, nil
}

// WriteTo implements the [io.WriterTo] interface for efficiency.
func (v *View) WriteTo(w io.Writer) (int64, error) {
	if v.N >= len(v.B) {
		return 0, nil
	}
	b := v.B[v.N:]
	n, err := w.Write(b)
	if n > len(b) {
		return int64(n), ErrInvalidWrite
	}
	v.N += n
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Seek implements the [io.Seeker] interface. Seeking past the end is
// allowed; subsequent reads fail until the position is moved back.
func (v *View) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(v.N) + offset
	case io.SeekEnd:
		abs = int64(len(v.B)) + offset
	default:
		return 0, ErrInvalidWhence
	}
	if abs < 0 {
		return 0, ErrInvalidSeek
	}
	v.N = int(abs)
	return abs, nil
}

// Close does nothing.
func (v *View) Close() error { return nil }

// --- Accessors ---

// Reset allows the underlying byte slice to be reused.
func (v *View) Reset() { v.N = 0 }

// Len returns the number of bytes read.
func (v *View) Len() int { return v.N }

// Size returns the size of the underlying byte slice.
func (v *View) Size() int { return len(v.B) }

// Available returns the number of bytes available for reading.
func (v *View) Available() int {
	n := len(v.B) - v.N
	if n <= 0 {
		return 0
	}
	return n
}

// Rest returns the unread portion of the slice without copying or advancing.
func (v *View) Rest() []byte {
	if v.N >= len(v.B) {
		return nil
	}
	return v.B[v.N:]
}
