package byteconv

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer writes binary data to an underlying io.Writer and tracks the
// first error that occurs. After an error, all subsequent write
// operations become no-ops, so a whole record can be written without
// per-call checks and inspected once via Err or Result. Unlike Buffer,
// a stream cannot undo bytes already handed to the underlying writer;
// the latched error is the failure contract here.
//
// If the underlying writer implements io.ByteWriter, io.StringWriter or
// io.ReaderFrom those fast paths are used. Buffering is the caller's
// business: wrap the destination in a bufio.Writer before NewWriter and
// Flush will reach it.
type Writer struct {
	w     io.Writer
	bw    io.ByteWriter   // non-nil when w provides it
	sw    io.StringWriter // non-nil when w provides it
	count int64           // total bytes written
	err   error           // first error encountered. Subsequent writes become no-ops.
	order binary.ByteOrder
}

// NewWriter creates a new Writer over w using the package default Order.
func NewWriter(w io.Writer) (*Writer, error) {
	if w == nil {
		return nil, ErrNilIO
	}
	// Writing through an outer Writer would double-count, reuse its target.
	if inner, ok := w.(*Writer); ok {
		w = inner.w
	}
	nw := &Writer{w: w, order: Order}
	nw.bw, _ = w.(io.ByteWriter)
	nw.sw, _ = w.(io.StringWriter)
	return nw, nil
}

// WithByteOrder allows setting a custom byte order and returns
// the configured Writer for chaining.
func (w *Writer) WithByteOrder(order binary.ByteOrder) *Writer {
	w.order = order
	return w
}

// setError records the first non-nil error.
// This preserves the root cause of a failure chain instead of a later,
// less relevant error.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Close closes the underlying writer if it implements io.Closer.
func (w *Writer) Close() error {
	if c, ok := w.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Write implements the io.Writer interface.
func (w *Writer) Write(buf []byte) (int, error) {
	if len(buf) == 0 || w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(buf)
	w.count += int64(n)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	w.setError(err)
	return n, w.err
}

// WriteString implements the io.StringWriter interface.
func (w *Writer) WriteString(str string) (int, error) {
	if str == "" || w.err != nil {
		return 0, w.err
	}
	if w.sw == nil {
		return w.Write([]byte(str))
	}
	n, err := w.sw.WriteString(str)
	w.count += int64(n)
	if err == nil && n < len(str) {
		err = io.ErrShortWrite
	}
	w.setError(err)
	return n, w.err
}

// ReadFrom implements io.ReaderFrom for efficient copying.
func (w *Writer) ReadFrom(r io.Reader) (int64, error) {
	if r == nil || w.err != nil {
		return 0, w.err
	}
	var n int64
	var err error
	if rf, ok := w.w.(io.ReaderFrom); ok {
		n, err = rf.ReadFrom(r)
	} else {
		bp := bufPool.Get().(*[]byte)
		n, err = io.CopyBuffer(w.w, r, *bp)
		bufPool.Put(bp)
	}
	w.count += n
	w.setError(err)
	return n, w.err
}

// WriteFrom reads data from an io.WriterTo.
func (w *Writer) WriteFrom(wt io.WriterTo) {
	if w.err != nil {
		return
	}
	if wt == nil {
		w.setError(ErrWriteToNil)
		return
	}
	n, err := wt.WriteTo(w.w)
	w.count += n
	w.setError(err)
}

// Count returns the total number of bytes written so far.
func (w *Writer) Count() int64 { return w.count }

// Err returns the first error encountered, if any.
func (w *Writer) Err() error { return w.err }

// Result flushes the destination and returns the final count and error state.
func (w *Writer) Result() (int64, error) {
	w.Flush()
	return w.count, w.err
}

// Flush flushes the underlying writer if it is buffered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if f, ok := w.w.(interface{ Flush() error }); ok {
		w.setError(f.Flush())
	}
	return w.err
}

// WriteBytes writes a byte slice without a length prefix.
func (w *Writer) WriteBytes(buf []byte) {
	if len(buf) == 0 || w.err != nil {
		return
	}
	_, _ = w.Write(buf)
}

// WriteVarBytes writes the length of p in a prefix of the given width
// followed by the raw bytes of p.
func (w *Writer) WriteVarBytes(width int, p []byte) {
	if w.err != nil {
		return
	}
	max, err := prefixMax(width)
	if err != nil {
		w.setError(err)
		return
	}
	if uint64(len(p)) > max {
		w.setError(ErrLengthOverflow)
		return
	}
	var buf [8]byte
	putUintN(w.order, buf[:width], uint64(len(p)))
	_, _ = w.Write(buf[:width])
	_, _ = w.Write(p)
}

// WriteVarString writes s like WriteVarBytes writes a byte slice.
func (w *Writer) WriteVarString(width int, s string) {
	if w.err != nil {
		return
	}
	max, err := prefixMax(width)
	if err != nil {
		w.setError(err)
		return
	}
	if uint64(len(s)) > max {
		w.setError(ErrLengthOverflow)
		return
	}
	var buf [8]byte
	putUintN(w.order, buf[:width], uint64(len(s)))
	_, _ = w.Write(buf[:width])
	_, _ = w.WriteString(s)
}

// WriteValue encodes vs with the reflection rules of Marshal, in the
// configured byte order, and writes the result in one call.
func (w *Writer) WriteValue(vs ...any) {
	if w.err != nil {
		return
	}
	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]
	var err error
	for _, v := range vs {
		buf, err = appendAny(buf, w.order, v)
		if err != nil {
			break
		}
	}
	if err != nil {
		w.setError(err)
	} else {
		_, _ = w.Write(buf)
	}
	*bp = buf[:cap(buf)]
	bufPool.Put(bp)
}

// WriteZeros writes n zero bytes, often for padding.
// To avoid allocating a large temporary zero buffer for big padding.
func (w *Writer) WriteZeros(n int64) {
	if w.err != nil || n <= 0 {
		return
	}
	if n <= BUFFER_SIZE {
		// To avoid heap allocation for small, common padding sizes.
		_, _ = w.Write(empty[:n])
	} else {
		// Fallback to the efficient io.CopyN for larger padding.
		_, err := io.CopyN(w, Zero, n)
		w.setError(err)
	}
}

// Align writes zero bytes until the running count is a multiple of n.
func (w *Writer) Align(n int) {
	if n > 1 {
		w.WriteZeros(Roundup(w.count, int64(n)) - w.count)
	}
}

// --- Primitive Write Operations ---

// writeByte routes single bytes through the fast path when available.
func (w *Writer) writeByte(v byte) error {
	if w.err != nil {
		return w.err
	}
	if w.bw == nil {
		var buf [1]byte
		buf[0] = v
		_, _ = w.Write(buf[:])
		return w.err
	}
	err := w.bw.WriteByte(v)
	if err == nil {
		w.count++
	} else {
		w.err = err
	}
	return w.err
}

func (w *Writer) WriteBool(v bool) {
	if v {
		_ = w.writeByte(1)
	} else {
		_ = w.writeByte(0)
	}
}

func (w *Writer) WriteByte(v byte) error {
	return w.writeByte(v)
}

func (w *Writer) WriteUint8(v uint8) {
	_ = w.writeByte(v)
}

func (w *Writer) WriteUint16(v uint16) {
	if w.err != nil {
		return
	}
	var buf [2]byte
	w.order.PutUint16(buf[:], v)
	_, _ = w.Write(buf[:])
}

func (w *Writer) WriteUint32(v uint32) {
	if w.err != nil {
		return
	}
	var buf [4]byte
	w.order.PutUint32(buf[:], v)
	_, _ = w.Write(buf[:])
}

func (w *Writer) WriteUint64(v uint64) {
	if w.err != nil {
		return
	}
	var buf [8]byte
	w.order.PutUint64(buf[:], v)
	_, _ = w.Write(buf[:])
}

func (w *Writer) WriteInt8(v int8) {
	_ = w.writeByte(uint8(v))
}

func (w *Writer) WriteInt16(v int16) {
	if w.err != nil {
		return
	}
	var buf [2]byte
	w.order.PutUint16(buf[:], uint16(v))
	_, _ = w.Write(buf[:])
}

func (w *Writer) WriteInt32(v int32) {
	if w.err != nil {
		return
	}
	var buf [4]byte
	w.order.PutUint32(buf[:], uint32(v))
	_, _ = w.Write(buf[:])
}

func (w *Writer) WriteInt64(v int64) {
	if w.err != nil {
		return
	}
	var buf [8]byte
	w.order.PutUint64(buf[:], uint64(v))
	_, _ = w.Write(buf[:])
}

func (w *Writer) WriteFloat32(v float32) {
	w.WriteUint32(math.Float32bits(v))
}

func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

// WriteUintN writes the low width bytes of v in the configured byte order.
func (w *Writer) WriteUintN(width int, v uint64) {
	if w.err != nil {
		return
	}
	if width < 1 || width > 8 {
		w.setError(ErrIntegerWidth)
		return
	}
	if width < 8 && v >= 1<<(8*width) {
		w.setError(ErrOverflow)
		return
	}
	var buf [8]byte
	putUintN(w.order, buf[:width], v)
	_, _ = w.Write(buf[:width])
}
