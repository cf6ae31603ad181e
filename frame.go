package byteconv

import (
	"fmt"
	"io"
)

// TrailerFunc inspects whatever follows a frame's payload. It receives
// the underlying stream positioned just past the payload.
type TrailerFunc func(rest io.Reader) error

// FrameReader delivers exactly the next n bytes of a stream as a payload
// and then runs a trailer hook on the remainder, once. It suits formats
// where a sized body is followed by padding or metadata the caller wants
// validated without reading past the frame by hand. A trailer failure is
// latched and returned by every later call.
type FrameReader struct {
	src     io.Reader // the raw stream, handed to the trailer hook
	body    *io.LimitedReader
	trailer TrailerFunc
	done    bool
	err     error
}

// NewFrameReader frames the next n bytes of r. When the payload has been
// fully consumed, trailer is called with the rest of the stream; a nil
// trailer skips the hook. The returned reader yields io.EOF once the
// payload ends.
func NewFrameReader(r io.Reader, n int64, trailer TrailerFunc) *FrameReader {
	return &FrameReader{
		src:     r,
		body:    &io.LimitedReader{R: r, N: n},
		trailer: trailer,
	}
}

// PaddedFrame frames the next n bytes of r and verifies that everything
// after them is zero padding, the way CheckTrailingNotZeros does.
func PaddedFrame(r io.Reader, n int64) *FrameReader {
	return NewFrameReader(r, n, CheckTrailingNotZeros)
}

// finish runs the trailer hook exactly once and latches its verdict.
func (f *FrameReader) finish() error {
	if f.done {
		return f.err
	}
	f.done = true
	if f.trailer == nil {
		return nil
	}
	if err := f.trailer(f.src); err != nil {
		f.err = fmt.Errorf("byteconv: frame trailer rejected: %w", err)
	}
	return f.err
}

// Read implements io.Reader over the payload. The read that reaches the
// payload boundary triggers the trailer hook; a hook failure replaces
// the io.EOF that would otherwise be returned.
func (f *FrameReader) Read(p []byte) (int, error) {
	if f.done && f.body.N <= 0 {
		if f.err != nil {
			return 0, f.err
		}
		return 0, io.EOF
	}

	n, err := f.body.Read(p)
	if f.body.N > 0 && err != io.EOF {
		return n, err
	}

	// Payload boundary: either the limit is spent or the stream ended.
	if ferr := f.finish(); ferr != nil {
		return n, ferr
	}
	if err == nil {
		err = io.EOF
	}
	return n, err
}

// WriteTo implements io.WriterTo, draining the remaining payload into w
// and then running the trailer hook.
func (f *FrameReader) WriteTo(w io.Writer) (int64, error) {
	if f.done && f.body.N <= 0 {
		return 0, f.err
	}

	n, err := io.CopyN(w, f.body, f.body.N)
	if err != nil && err != io.EOF {
		return n, err
	}
	return n, f.finish()
}

// Close closes the underlying stream if it implements io.Closer.
func (f *FrameReader) Close() error {
	if c, ok := f.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
