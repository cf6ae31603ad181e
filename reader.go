package byteconv

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// Zero is an io.Reader that reads an infinite stream of zero bytes.
var Zero io.Reader = zero{}

type zero struct{}

func (z zero) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

// Reader reads binary data from an underlying io.Reader and tracks the
// first error. After an error, all subsequent reads become no-ops, so a
// whole record can be read with out-parameters and checked once via Err
// or Result.
//
// If the underlying reader implements io.ByteReader or io.Seeker those
// are used directly; otherwise single bytes go through Read and seeks are
// emulated by discarding, which only works in the forward direction.
type Reader struct {
	r       io.Reader
	br      io.ByteReader // non-nil when r provides it
	count   int64         // total bytes read
	err     error         // first error encountered.
	order   binary.ByteOrder
	limit   int64 // cap on length-prefixed payloads, 0 means none
	scratch [8]byte
}

// NewReader creates a new Reader over r using the package default Order.
func NewReader(r io.Reader) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}
	// Reading through an outer Reader would double-count, reuse its source.
	if inner, ok := r.(*Reader); ok {
		r = inner.r
	}
	nr := &Reader{r: r, order: Order}
	nr.br, _ = r.(io.ByteReader)
	return nr, nil
}

// WithByteOrder allows setting a custom byte order and returns
// the configured Reader for chaining.
func (r *Reader) WithByteOrder(order binary.ByteOrder) *Reader {
	r.order = order
	return r
}

// WithReadLimit caps the payload length ReadVarBytes and ReadVarString
// will accept; longer prefixes fail with ErrTooLong. A limit of 0 means
// no cap. The limit guards against allocating storage for a hostile
// length prefix.
func (r *Reader) WithReadLimit(n int64) *Reader {
	r.limit = n
	return r
}

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Close closes the underlying reader if it implements io.Closer.
func (r *Reader) Close() error {
	if c, ok := r.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Read implements the io.Reader interface.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.Read(p)
	r.count += int64(n)
	r.setError(err)
	return n, r.err
}

// Seek moves the read pointer. When the underlying reader cannot seek,
// only forward motion is possible and backward seeks fail with
// ErrInvalidSeek.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	if r.err != nil {
		return r.count, r.err
	}
	if s, ok := r.r.(io.Seeker); ok {
		pos, err := s.Seek(offset, whence)
		if err == nil {
			r.count = pos
		}
		r.setError(err)
		return pos, err
	}

	// Forward-only emulation over a plain stream.
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.count + offset
	default:
		r.setError(ErrInvalidWhence)
		return r.count, ErrInvalidWhence
	}
	if abs < r.count {
		r.setError(ErrInvalidSeek)
		return r.count, ErrInvalidSeek
	}
	if _, err := Discard(r, abs-r.count); err != nil {
		return r.count, r.err
	}
	return r.count, nil
}

// WriteTo implements io.WriterTo for efficient copying.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if w == nil {
		r.setError(ErrWriteToNil)
		return 0, r.err
	}
	var n int64
	var err error
	if wt, ok := r.r.(io.WriterTo); ok {
		n, err = wt.WriteTo(w)
		r.count += n
	} else {
		bp := bufPool.Get().(*[]byte)
		n, err = io.CopyBuffer(w, r, *bp)
		bufPool.Put(bp)
	}
	r.setError(err)
	return n, r.err
}

// ReadTo reads data from this reader into an io.ReaderFrom.
func (r *Reader) ReadTo(w io.ReaderFrom) {
	if r.err != nil {
		return
	}
	if w == nil {
		r.setError(ErrReadToNil)
		return
	}
	n, err := w.ReadFrom(r.r)
	r.count += n
	r.setError(err)
}

// Count returns the total number of bytes read so far.
func (r *Reader) Count() int64 { return r.count }

// Err returns the first error encountered, if any.
func (r *Reader) Err() error { return r.err }

// IsEOF reports whether the stream ended cleanly between values.
func (r *Reader) IsEOF() bool { return r.err == io.EOF }

// Result returns the total bytes read and the final error state.
func (r *Reader) Result() (int64, error) {
	return r.count, r.err
}

// readFull is an internal helper to read an exact number of bytes into
// the scratch array; n is at most 8.
func (r *Reader) readFull(n int) []byte {
	if r.err != nil {
		return nil
	}
	buf := r.scratch[:n]
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			// To provide a more specific error for callers;
			// a partial read is different from a clean end-of-stream.
			r.err = io.ErrUnexpectedEOF
		} else {
			r.err = err
		}
		return nil
	}
	return buf
}

// ReadBytes reads n bytes and returns a new byte slice.
func (r *Reader) ReadBytes(n int) []byte {
	if n <= 0 || r.err != nil {
		return nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			r.err = io.ErrUnexpectedEOF
		} else {
			r.err = err
		}
		return nil
	}
	return buf
}

// ReadBytesTo fills dest completely from the stream.
func (r *Reader) ReadBytesTo(dest []byte) {
	if r.err != nil || len(dest) == 0 {
		return
	}
	if _, err := io.ReadFull(r, dest); err != nil {
		r.err = err
	}
}

// ReadVarBytes reads a payload length-prefixed by WriteVarBytes with the
// same prefix width. The payload is gathered as it arrives, so a hostile
// prefix cannot force a huge allocation up front.
func (r *Reader) ReadVarBytes(width int) []byte {
	if r.err != nil {
		return nil
	}
	if _, err := prefixMax(width); err != nil {
		r.setError(err)
		return nil
	}
	buf := r.readFull(width)
	if r.err != nil {
		return nil
	}
	u := uintN(r.order, buf)
	if u > math.MaxInt64 || (r.limit > 0 && int64(u) > r.limit) {
		r.setError(ErrTooLong)
		return nil
	}
	n := int64(u)
	if n == 0 {
		return []byte{}
	}

	bb := bytesBufPool.Get().(*bytes.Buffer)
	bb.Reset()
	copied, err := io.CopyN(bb, r, n)
	if err != nil || copied < n {
		if r.err == nil || r.err == io.EOF {
			r.err = io.ErrUnexpectedEOF
		}
		bytesBufPool.Put(bb)
		return nil
	}
	out := make([]byte, n)
	copy(out, bb.Bytes())
	bytesBufPool.Put(bb)
	return out
}

// ReadVarString reads a length-prefixed payload as a string.
func (r *Reader) ReadVarString(width int) string {
	return string(r.ReadVarBytes(width))
}

// Align discards bytes until the running count is a multiple of n.
func (r *Reader) Align(n int) {
	if n > 1 {
		_, _ = Discard(r, Roundup(r.count, int64(n))-r.count)
	}
}

// Discard reads and drops exactly n bytes, for skipping padding or
// reserved regions. A stream that ends early latches io.ErrUnexpectedEOF.
func (r *Reader) Discard(n int64) {
	if r.err != nil {
		return
	}
	skipped, err := Discard(r, n)
	if err == ErrNegativeCount {
		r.setError(err)
		return
	}
	if err != nil || skipped < n {
		if r.err == nil || r.err == io.EOF {
			r.err = io.ErrUnexpectedEOF
		}
	}
}

// Peek returns the next n bytes without consuming them, wrapping the
// source in a PeekableReader on first use. Fewer than n bytes come back
// with the error that stopped the fill. Peek errors are advisory and do
// not latch.
func (r *Reader) Peek(n int) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	pr, ok := r.r.(*PeekableReader)
	if !ok {
		pr = PeekReader(r.r)
		r.r = pr
		r.br = nil
	}
	return pr.Peek(n)
}

// --- Primitive Read Operations ---

// readByte routes single bytes through the fast path when available.
func (r *Reader) readByte() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.br == nil {
		buf := r.readFull(1)
		if r.err != nil {
			return 0, r.err
		}
		return buf[0], nil
	}
	b, err := r.br.ReadByte()
	if err == nil {
		r.count++
	} else {
		r.err = err
	}
	return b, err
}

func (r *Reader) ReadBool(dest *bool) {
	b, err := r.readByte()
	if err == nil {
		*dest = b != 0
	}
}

func (r *Reader) ReadByte() (byte, error) {
	return r.readByte()
}

func (r *Reader) ReadUint8(dest *uint8) {
	b, err := r.readByte()
	if err == nil {
		*dest = b
	}
}

func (r *Reader) ReadUint16(dest *uint16) {
	buf := r.readFull(2)
	if r.err == nil {
		*dest = r.order.Uint16(buf)
	}
}

func (r *Reader) ReadUint32(dest *uint32) {
	buf := r.readFull(4)
	if r.err == nil {
		*dest = r.order.Uint32(buf)
	}
}

func (r *Reader) ReadUint64(dest *uint64) {
	buf := r.readFull(8)
	if r.err == nil {
		*dest = r.order.Uint64(buf)
	}
}

func (r *Reader) ReadInt8(dest *int8) {
	b, err := r.readByte()
	if err == nil {
		*dest = int8(b)
	}
}

func (r *Reader) ReadInt16(dest *int16) {
	buf := r.readFull(2)
	if r.err == nil {
		*dest = int16(r.order.Uint16(buf))
	}
}

func (r *Reader) ReadInt32(dest *int32) {
	buf := r.readFull(4)
	if r.err == nil {
		*dest = int32(r.order.Uint32(buf))
	}
}

func (r *Reader) ReadInt64(dest *int64) {
	buf := r.readFull(8)
	if r.err == nil {
		*dest = int64(r.order.Uint64(buf))
	}
}

func (r *Reader) ReadFloat32(dest *float32) {
	buf := r.readFull(4)
	if r.err == nil {
		*dest = math.Float32frombits(r.order.Uint32(buf))
	}
}

func (r *Reader) ReadFloat64(dest *float64) {
	buf := r.readFull(8)
	if r.err == nil {
		*dest = math.Float64frombits(r.order.Uint64(buf))
	}
}

// ReadUintN reads an unsigned integer of the given byte width, 1 through 8.
func (r *Reader) ReadUintN(width int, dest *uint64) {
	if r.err != nil {
		return
	}
	if width < 1 || width > 8 {
		r.setError(ErrIntegerWidth)
		return
	}
	buf := r.readFull(width)
	if r.err == nil {
		*dest = uintN(r.order, buf)
	}
}
