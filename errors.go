package byteconv

import "errors"

var (
	// ErrNilIO indicates that NewReader/NewWriter was called with a nil interface.
	ErrNilIO = errors.New("byteconv: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrOutOfSpace indicates that a write would not fit in the remaining
	// capacity of a fixed buffer. The buffer and its cursor are left unchanged.
	ErrOutOfSpace = errors.New("byteconv: write exceeds buffer capacity")

	// ErrTruncated indicates that a read could not complete because the
	// source ended before all expected bytes were available. The cursor is
	// left where it was before the read.
	ErrTruncated = errors.New("byteconv: truncated data")

	// ErrLengthOverflow indicates that a payload is too long for the chosen
	// length prefix width.
	ErrLengthOverflow = errors.New("byteconv: length exceeds prefix capacity")

	// ErrOverflow indicates that an integer value does not fit in the
	// requested encoded width.
	ErrOverflow = errors.New("byteconv: value exceeds integer width")

	// ErrPrefixWidth indicates an unsupported length prefix width.
	// Supported widths are 1, 2, 4 and 8 bytes.
	ErrPrefixWidth = errors.New("byteconv: length prefix width must be 1, 2, 4, or 8")

	// ErrIntegerWidth indicates an unsupported width for WriteUintN/ReadUintN.
	ErrIntegerWidth = errors.New("byteconv: integer width must be between 1 and 8")

	// ErrTooLong indicates that a length-prefixed payload exceeds the limit
	// configured on a Reader.
	ErrTooLong = errors.New("byteconv: payload exceeds configured read limit")

	// ErrTrailingData indicates that bytes remained after a value was fully
	// decoded from an input that was expected to contain exactly one value.
	ErrTrailingData = errors.New("byteconv: trailing data after decoding")

	// ErrUnsupportedType indicates that a value cannot be serialized because
	// its type has no defined encoding.
	ErrUnsupportedType = errors.New("byteconv: unsupported type")

	// ErrArrayLength indicates that the element count decoded from the input
	// does not match the length of the destination array.
	ErrArrayLength = errors.New("byteconv: element count does not match array length")

	// ErrNotPointer indicates that a decode destination was not a non-nil pointer.
	ErrNotPointer = errors.New("byteconv: destination must be a non-nil pointer")

	// ErrNilPointer indicates that a value to encode contained a nil pointer.
	ErrNilPointer = errors.New("byteconv: cannot encode a nil pointer")

	// ErrInvalidSeek indicates a seek to a negative position.
	ErrInvalidSeek = errors.New("byteconv: seek to an invalid position")

	// ErrInvalidWhence indicates that an invalid 'whence' parameter was provided to a Seek operation.
	ErrInvalidWhence = errors.New("byteconv: invalid whence")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid (negative) count from Write.
	ErrInvalidWrite = errors.New("byteconv: writer returned invalid count from Write")

	// ErrNegativeCount indicates an operation was attempted with a negative byte count.
	ErrNegativeCount = errors.New("byteconv: negative byte count")

	// ErrWriteToNil indicates a WriteFrom operation was attempted on a nil io.WriterTo.
	ErrWriteToNil = errors.New("byteconv: WriteFrom called with a nil io.WriterTo")

	// ErrReadToNil indicates a ReadTo operation was attempted on a nil io.ReaderFrom.
	ErrReadToNil = errors.New("byteconv: ReadTo called with a nil io.ReaderFrom")
)
