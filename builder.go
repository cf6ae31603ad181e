package byteconv

import (
	"encoding/binary"
	"math"
)

// Builder accumulates binary data in a growable slice it owns. Errors are
// latched: after the first failing operation every later call is a no-op,
// so a sequence of writes can be issued without per-call checks and
// inspected once via Err or Result. A failing composite write appends
// nothing.
type Builder struct {
	buf   []byte
	order binary.ByteOrder
	err   error
}

// NewBuilder creates an empty Builder using the package default Order.
func NewBuilder() *Builder {
	return &Builder{order: Order}
}

// NewBuilderSize creates an empty Builder with room for n bytes before
// the first allocation.
func NewBuilderSize(n int) *Builder {
	return &Builder{buf: make([]byte, 0, n), order: Order}
}

// WithByteOrder sets the byte order used for multi-byte values and
// returns the Builder for chaining.
func (b *Builder) WithByteOrder(order binary.ByteOrder) *Builder {
	b.order = order
	return b
}

// setErr latches the first error encountered.
func (b *Builder) setErr(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

// --- Primitive Write Operations ---

// WriteBool appends a bool as a single byte, 1 for true and 0 for false.
func (b *Builder) WriteBool(v bool) {
	if b.err != nil {
		return
	}
	if v {
		b.buf = append(b.buf, 1)
	} else {
		b.buf = append(b.buf, 0)
	}
}

// WriteUint8 appends a single byte.
func (b *Builder) WriteUint8(v uint8) {
	if b.err != nil {
		return
	}
	b.buf = append(b.buf, v)
}

// WriteUint16 appends a uint16 in the configured byte order.
func (b *Builder) WriteUint16(v uint16) {
	if b.err != nil {
		return
	}
	var tmp [2]byte
	b.order.PutUint16(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

// WriteUint32 appends a uint32 in the configured byte order.
func (b *Builder) WriteUint32(v uint32) {
	if b.err != nil {
		return
	}
	var tmp [4]byte
	b.order.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

// WriteUint64 appends a uint64 in the configured byte order.
func (b *Builder) WriteUint64(v uint64) {
	if b.err != nil {
		return
	}
	var tmp [8]byte
	b.order.PutUint64(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

// WriteInt8 appends an int8 as its two's complement byte.
func (b *Builder) WriteInt8(v int8) { b.WriteUint8(uint8(v)) }

// WriteInt16 appends an int16 in the configured byte order.
func (b *Builder) WriteInt16(v int16) { b.WriteUint16(uint16(v)) }

// WriteInt32 appends an int32 in the configured byte order.
func (b *Builder) WriteInt32(v int32) { b.WriteUint32(uint32(v)) }

// WriteInt64 appends an int64 in the configured byte order.
func (b *Builder) WriteInt64(v int64) { b.WriteUint64(uint64(v)) }

// WriteFloat32 appends a float32 as its IEEE 754 bits.
func (b *Builder) WriteFloat32(v float32) { b.WriteUint32(math.Float32bits(v)) }

// WriteFloat64 appends a float64 as its IEEE 754 bits.
func (b *Builder) WriteFloat64(v float64) { b.WriteUint64(math.Float64bits(v)) }

// WriteUintN appends the low width bytes of v in the configured byte order.
func (b *Builder) WriteUintN(width int, v uint64) {
	if b.err != nil {
		return
	}
	if width < 1 || width > 8 {
		b.setErr(ErrIntegerWidth)
		return
	}
	if width < 8 && v >= 1<<(8*width) {
		b.setErr(ErrOverflow)
		return
	}
	var tmp [8]byte
	putUintN(b.order, tmp[:width], v)
	b.buf = append(b.buf, tmp[:width]...)
}

// --- Raw And Length-Prefixed Writes ---

// WriteBytes appends p without a length prefix.
func (b *Builder) WriteBytes(p []byte) {
	if b.err != nil {
		return
	}
	b.buf = append(b.buf, p...)
}

// Concat appends the given slices back to back, without prefixes.
func (b *Builder) Concat(ps ...[]byte) {
	if b.err != nil {
		return
	}
	for _, p := range ps {
		b.buf = append(b.buf, p...)
	}
}

// WriteVarBytes appends the length of p in a prefix of the given width
// followed by the raw bytes of p.
func (b *Builder) WriteVarBytes(width int, p []byte) {
	if b.err != nil {
		return
	}
	max, err := prefixMax(width)
	if err != nil {
		b.setErr(err)
		return
	}
	if uint64(len(p)) > max {
		b.setErr(ErrLengthOverflow)
		return
	}
	var tmp [8]byte
	putUintN(b.order, tmp[:width], uint64(len(p)))
	b.buf = append(b.buf, tmp[:width]...)
	b.buf = append(b.buf, p...)
}

// WriteVarString appends s like WriteVarBytes appends a byte slice.
func (b *Builder) WriteVarString(width int, s string) {
	if b.err != nil {
		return
	}
	max, err := prefixMax(width)
	if err != nil {
		b.setErr(err)
		return
	}
	if uint64(len(s)) > max {
		b.setErr(ErrLengthOverflow)
		return
	}
	var tmp [8]byte
	putUintN(b.order, tmp[:width], uint64(len(s)))
	b.buf = append(b.buf, tmp[:width]...)
	b.buf = append(b.buf, s...)
}

// WriteZeros appends n zero bytes, often for padding.
func (b *Builder) WriteZeros(n int) {
	if b.err != nil {
		return
	}
	if n < 0 {
		b.setErr(ErrNegativeCount)
		return
	}
	for n > BUFFER_SIZE {
		b.buf = append(b.buf, empty[:]...)
		n -= BUFFER_SIZE
	}
	b.buf = append(b.buf, empty[:n]...)
}

// Align pads the builder with zeros until its length is a multiple of n.
func (b *Builder) Align(n int) {
	if b.err != nil {
		return
	}
	if n <= 0 {
		b.setErr(ErrNegativeCount)
		return
	}
	b.WriteZeros(Roundup(len(b.buf), n) - len(b.buf))
}

// WriteValue appends vs with the reflection rules of Marshal, in the
// configured byte order. On error nothing is appended and the error latches.
func (b *Builder) WriteValue(vs ...any) {
	if b.err != nil {
		return
	}
	mark := len(b.buf)
	for _, v := range vs {
		out, err := appendAny(b.buf, b.order, v)
		if err != nil {
			b.buf = b.buf[:mark]
			b.setErr(err)
			return
		}
		b.buf = out
	}
}

// --- Standard Library Interfaces ---

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	if b.err != nil {
		return 0, b.err
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString implements the io.StringWriter interface.
func (b *Builder) WriteString(s string) (int, error) {
	if b.err != nil {
		return 0, b.err
	}
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// WriteByte implements the io.ByteWriter interface.
func (b *Builder) WriteByte(c byte) error {
	if b.err != nil {
		return b.err
	}
	b.buf = append(b.buf, c)
	return nil
}

// --- Accessors ---

// Grow reserves capacity for at least n more bytes.
func (b *Builder) Grow(n int) {
	if b.err != nil {
		return
	}
	if n < 0 {
		b.setErr(ErrNegativeCount)
		return
	}
	if cap(b.buf)-len(b.buf) < n {
		grown := make([]byte, len(b.buf), len(b.buf)+n)
		copy(grown, b.buf)
		b.buf = grown
	}
}

// Err returns the first error encountered, if any.
func (b *Builder) Err() error { return b.err }

// Len returns the number of bytes accumulated.
func (b *Builder) Len() int { return len(b.buf) }

// Cap returns the capacity of the underlying slice.
func (b *Builder) Cap() int { return cap(b.buf) }

// Bytes returns the accumulated bytes. The slice aliases the Builder's
// storage and is valid until the next write.
func (b *Builder) Bytes() []byte { return b.buf }

// Result returns the accumulated bytes and the first error. On error the
// bytes are nil.
func (b *Builder) Result() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.buf, nil
}

// Reset truncates the Builder to zero length, keeps the allocated
// capacity for reuse, and clears any latched error.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
	b.err = nil
}

// Clone returns an independent copy of the Builder: same bytes, byte
// order and latched error, separate storage.
func (b *Builder) Clone() *Builder {
	c := &Builder{order: b.order, err: b.err}
	if len(b.buf) > 0 {
		c.buf = append(make([]byte, 0, len(b.buf)), b.buf...)
	}
	return c
}

// Wipe zeroes the Builder's entire storage, including bytes beyond the
// current length left over from earlier writes. Length and capacity are
// unchanged, so the Builder can be reused after sensitive material has
// been cleared.
func (b *Builder) Wipe() {
	Wipe(b.buf[:cap(b.buf)])
}
