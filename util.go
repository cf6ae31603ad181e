package byteconv

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/exp/constraints"
)

const BUFFER_SIZE = 4096

var empty [BUFFER_SIZE]byte

func Ptr[T any](v T) *T { return &v } // ptr is a helper function to create a pointer to a value, making test setup cleaner.

// Discard reads and drops n bytes from r, returning the number dropped.
func Discard(r io.Reader, n int64) (int64, error) {
	if n == 0 {
		return 0, nil
	}
	if n < 0 {
		return 0, ErrNegativeCount
	}
	return io.CopyN(io.Discard, r, n)
}

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// Wipe zeroes p so that sensitive material does not linger in memory after
// use. The KeepAlive call pins the slice until the stores are done.
func Wipe(p []byte) {
	clear(p)
	runtime.KeepAlive(p)
}

// MAX_PADDING defines the maximum number of trailing bytes to check.
// This prevents an Out-Of-Memory error if a parsing bug leaves a large
// amount of data in the reader. Anything larger is considered a protocol error.
const MAX_PADDING = 1024 // 1KB

// CheckBufferNotZeros verifies that every byte of p is zero. Decoders call
// it on leftover input: zero padding is tolerated, anything else means the
// payload and the decoded type disagree.
func CheckBufferNotZeros(p []byte) error {
	for i, b := range p {
		if b != 0 {
			return fmt.Errorf("%w: found non-zero byte 0x%02x at offset %d", ErrTrailingData, b, i)
		}
	}
	return nil
}

// CheckTrailingNotZeros verifies that any remaining bytes in a reader are all zero.
// This is critical for parsers to ensure the entire expected payload was consumed
// and no garbage data follows, which could indicate a bug or a malicious payload.
func CheckTrailingNotZeros(r io.Reader) error {
	// Fast path for a common reader type to avoid any allocations.
	if view, ok := r.(*View); ok {
		return CheckBufferNotZeros(view.Rest())
	}

	// Use a LimitedReader to enforce our heuristic limit. We read up to
	// `MAX_PADDING + 1` bytes; if the read succeeds, we know there was
	// too much data.
	lr := &io.LimitedReader{R: r, N: MAX_PADDING + 1}

	trailing, err := io.ReadAll(lr)
	if err != nil {
		return err
	}
	if len(trailing) > MAX_PADDING {
		return fmt.Errorf("%w: exceeds maximum expected size of %d bytes", ErrTrailingData, MAX_PADDING)
	}
	return CheckBufferNotZeros(trailing)
}
