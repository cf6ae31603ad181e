package byteconv

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mocks and Helpers ---

// A simple fixed-size struct for testing codec implementations.
type mockPayload struct {
	ID   uint32
	Data [4]byte
}

// mockCodec is an alias for a Fixed codec using our mockPayload.
type mockCodec = Fixed[mockPayload]

// mockFlushingWriter helps verify that a writer's Flush method is called.
type mockFlushingWriter struct {
	bytes.Buffer
	flushed bool
}

func (m *mockFlushingWriter) Flush() error {
	m.flushed = true
	return nil
}

// --- Writer Test Suite ---

type WriterTestSuite struct {
	suite.Suite
	buf    *bytes.Buffer
	writer *Writer
}

// SetupTest runs before each test in the suite, ensuring a clean state.
func (s *WriterTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	s.writer, _ = NewWriter(s.buf)
}

func (s *WriterTestSuite) TestConstructors() {
	s.T().Run("FailsOnNilWriter", func(t *testing.T) {
		_, err := NewWriter(nil)
		assert.ErrorIs(t, err, ErrNilIO)
	})

	s.T().Run("UnwrapsNestedWriter", func(t *testing.T) {
		inner, _ := NewWriter(s.buf)
		outer, err := NewWriter(inner)
		require.NoError(t, err)
		outer.WriteUint8(0x01)
		require.NoError(t, outer.Err())
		assert.Zero(t, inner.Count(), "writes must not be double counted through the inner Writer")
	})
}

func (s *WriterTestSuite) TestBasicWrites() {
	codec := &mockCodec{Payload: mockPayload{ID: 0xDEADBEEF, Data: [4]byte{1, 2, 3, 4}}}

	s.writer.WriteUint8(0xAA)
	s.writer.WriteUint16(0xBBCC)
	s.writer.WriteUint32(0xDDEEFF00)
	s.writer.WriteUint64(0x0102030405060708)
	s.writer.WriteBytes([]byte{5, 6, 7})
	s.writer.WriteZeros(2)
	s.writer.WriteFrom(codec)

	n, err := s.writer.Result()
	s.Require().NoError(err)
	s.Assert().EqualValues(1+2+4+8+3+2+8, n)
	s.Assert().EqualValues(s.buf.Len(), s.writer.Count())

	expected := []byte{
		0xAA,       // WriteUint8
		0xCC, 0xBB, // WriteUint16 (Little Endian)
		0x00, 0xFF, 0xEE, 0xDD, // WriteUint32 (Little Endian)
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, // WriteUint64 (Little Endian)
		5, 6, 7, // WriteBytes
		0, 0, // WriteZeros
		0xEF, 0xBE, 0xAD, 0xDE, 1, 2, 3, 4, // WriteFrom(codec)
	}
	s.Assert().Equal(expected, s.buf.Bytes())
}

func (s *WriterTestSuite) TestBigEndianWrites() {
	w, _ := NewWriter(s.buf)
	w.WithByteOrder(BE)
	w.WriteUint32(0x12345678)
	s.Require().NoError(w.Err())
	s.Assert().Equal([]byte{0x12, 0x34, 0x56, 0x78}, s.buf.Bytes())
}

func (s *WriterTestSuite) TestVarBytes() {
	s.T().Run("PrefixThenPayload", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w, _ := NewWriter(buf)
		w.WriteVarBytes(2, []byte("AB"))
		require.NoError(t, w.Err())
		assert.Equal(t, []byte{0x02, 0x00, 0x41, 0x42}, buf.Bytes())
		assert.EqualValues(t, 4, w.Count())
	})

	s.T().Run("UnsupportedWidthLatches", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w, _ := NewWriter(buf)
		w.WriteVarBytes(5, []byte("AB"))
		assert.ErrorIs(t, w.Err(), ErrPrefixWidth)
		assert.Zero(t, buf.Len())
	})

	s.T().Run("PayloadTooLongForPrefix", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w, _ := NewWriter(buf)
		w.WriteVarBytes(1, make([]byte, 256))
		assert.ErrorIs(t, w.Err(), ErrLengthOverflow)
		assert.Zero(t, buf.Len())
	})

	s.T().Run("VarString", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w, _ := NewWriter(buf)
		w.WriteVarString(1, "go")
		require.NoError(t, w.Err())
		assert.Equal(t, []byte{0x02, 'g', 'o'}, buf.Bytes())
	})
}

func (s *WriterTestSuite) TestWriteValue() {
	s.writer.WriteValue(uint16(0x0102), "hi", true)
	n, err := s.writer.Result()
	s.Require().NoError(err)
	s.Assert().EqualValues(2+4+2+1, n)
	s.Assert().Equal([]byte{
		0x02, 0x01, // uint16
		0x02, 0x00, 0x00, 0x00, 'h', 'i', // string behind uint32 count
		0x01, // bool
	}, s.buf.Bytes())

	s.writer.WriteValue(make(chan int))
	s.Assert().ErrorIs(s.writer.Err(), ErrUnsupportedType)
}

func (s *WriterTestSuite) TestZerosAndAlign() {
	s.writer.WriteUint8(1)
	s.writer.Align(4)
	s.Require().NoError(s.writer.Err())
	s.Assert().Equal([]byte{1, 0, 0, 0}, s.buf.Bytes())

	// Large paddings stream from the Zero reader instead of allocating.
	s.writer.WriteZeros(BUFFER_SIZE + 3)
	s.Require().NoError(s.writer.Err())
	s.Assert().EqualValues(4+BUFFER_SIZE+3, s.writer.Count())
	s.Assert().Equal(s.buf.Len(), int(s.writer.Count()))
}

func (s *WriterTestSuite) TestUintN() {
	s.writer.WriteUintN(3, 0x123456)
	s.Require().NoError(s.writer.Err())
	s.Assert().Equal([]byte{0x56, 0x34, 0x12}, s.buf.Bytes())

	s.writer.WriteUintN(3, 0x1000000)
	s.Assert().ErrorIs(s.writer.Err(), ErrOverflow)

	w, _ := NewWriter(&bytes.Buffer{})
	w.WriteUintN(9, 1)
	s.Assert().ErrorIs(w.Err(), ErrIntegerWidth)
}

func (s *WriterTestSuite) TestErrorHandling() {
	s.T().Run("OutOfSpaceError", func(t *testing.T) {
		// A fixed-size destination reliably triggers the failure.
		fixedBuf := make([]byte, 5)
		writer, _ := NewWriter(NewBuffer(fixedBuf))

		writer.WriteUint32(0x11223344) // 4 bytes, fits.
		writer.WriteUint32(0xAABBCCDD) // 4 more do not; nothing is committed.

		_, err := writer.Result()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfSpace)
	})

	s.T().Run("WriteAfterErrorIsNoOp", func(t *testing.T) {
		fixedBuf := make([]byte, 5)
		writer, _ := NewWriter(NewBuffer(fixedBuf))

		writer.WriteUint32(0x11223344)
		writer.WriteUint32(0xAABBCCDD) // Latches ErrOutOfSpace.

		firstErr := writer.Err()
		require.ErrorIs(t, firstErr, ErrOutOfSpace)

		// This subsequent write should be a no-op because an error state is set.
		writer.WriteUint8(0xFF)
		assert.Equal(t, firstErr, writer.Err(), "the latched error should not change")

		// The destination holds the first value only; the overflowing write
		// and everything after it never landed.
		expected := []byte{0x44, 0x33, 0x22, 0x11, 0x00}
		assert.Equal(t, expected, fixedBuf)
		assert.EqualValues(t, 4, writer.Count())
	})
}

func (s *WriterTestSuite) TestFlush() {
	s.T().Run("ReachesBufferedWriter", func(t *testing.T) {
		var sink bytes.Buffer
		bw := bufio.NewWriterSize(&sink, 128)
		writer, _ := NewWriter(bw)

		writer.WriteUint8(0xAA)
		require.NoError(t, writer.Err())
		assert.Zero(t, sink.Len(), "data should sit in the bufio layer before Flush")

		require.NoError(t, writer.Flush())
		assert.Equal(t, []byte{0xAA}, sink.Bytes())
	})

	s.T().Run("UpgradesCustomFlusher", func(t *testing.T) {
		mock := &mockFlushingWriter{}
		writer, _ := NewWriter(mock)
		writer.WriteUint8(0xBB)
		require.NoError(t, writer.Flush())
		assert.True(t, mock.flushed)
	})
}

func (s *WriterTestSuite) TestReadFrom() {
	n, err := s.writer.ReadFrom(strings.NewReader("abc"))
	s.Require().NoError(err)
	s.Assert().EqualValues(3, n)
	s.Assert().Equal("abc", s.buf.String())
	s.Assert().EqualValues(3, s.writer.Count())
}

// TestWriter runs the WriterTestSuite.
func TestWriter(t *testing.T) {
	suite.Run(t, new(WriterTestSuite))
}

// --- Reader Test Suite ---

type ReaderTestSuite struct {
	suite.Suite
}

func (s *ReaderTestSuite) TestConstructors() {
	s.T().Run("FailsOnNilReader", func(t *testing.T) {
		_, err := NewReader(nil)
		assert.ErrorIs(t, err, ErrNilIO)
	})
}

func (s *ReaderTestSuite) TestSuccessfulReads() {
	data := []byte{
		0xAA,       // uint8
		0xCC, 0xBB, // uint16
		0x00, 0xFF, 0xEE, 0xDD, // uint32
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, // uint64
		0x11, 0x22, 0x33, // raw bytes
	}
	r, _ := NewReader(bytes.NewReader(data))

	var v8 uint8
	var v16 uint16
	var v32 uint32
	var v64 uint64
	r.ReadUint8(&v8)
	r.ReadUint16(&v16)
	r.ReadUint32(&v32)
	r.ReadUint64(&v64)
	read := r.ReadBytes(3)

	s.Require().NoError(r.Err())
	s.Assert().Equal(uint8(0xAA), v8)
	s.Assert().Equal(uint16(0xBBCC), v16)
	s.Assert().Equal(uint32(0xDDEEFF00), v32)
	s.Assert().Equal(uint64(0x0102030405060708), v64)
	s.Assert().Equal([]byte{0x11, 0x22, 0x33}, read)
	s.Assert().EqualValues(len(data), r.Count())

	// The next read should result in a clean EOF.
	r.Read(make([]byte, 1))
	s.Assert().ErrorIs(r.Err(), io.EOF)
	s.Assert().True(r.IsEOF())
}

func (s *ReaderTestSuite) TestVarBytes() {
	s.T().Run("Roundtrip", func(t *testing.T) {
		r, _ := NewReader(bytes.NewReader([]byte{0x02, 0x00, 0x41, 0x42}))
		p := r.ReadVarBytes(2)
		require.NoError(t, r.Err())
		assert.Equal(t, []byte("AB"), p)
		assert.EqualValues(t, 4, r.Count())
	})

	s.T().Run("EmptyPayload", func(t *testing.T) {
		r, _ := NewReader(bytes.NewReader([]byte{0x00}))
		p := r.ReadVarBytes(1)
		require.NoError(t, r.Err())
		assert.NotNil(t, p)
		assert.Empty(t, p)
	})

	s.T().Run("TruncatedPayloadLatches", func(t *testing.T) {
		r, _ := NewReader(bytes.NewReader([]byte{0x05, 0x00, 'a', 'b'}))
		p := r.ReadVarBytes(2)
		assert.Nil(t, p)
		assert.ErrorIs(t, r.Err(), io.ErrUnexpectedEOF)
	})

	s.T().Run("LimitRejectsHostilePrefix", func(t *testing.T) {
		// The prefix claims 4 GiB; the limit refuses before anything is allocated.
		data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 'x'}
		r, _ := NewReader(bytes.NewReader(data))
		r.WithReadLimit(1024)
		p := r.ReadVarBytes(4)
		assert.Nil(t, p)
		assert.ErrorIs(t, r.Err(), ErrTooLong)
	})

	s.T().Run("VarString", func(t *testing.T) {
		r, _ := NewReader(bytes.NewReader([]byte{0x02, 'g', 'o'}))
		assert.Equal(t, "go", r.ReadVarString(1))
		require.NoError(t, r.Err())
	})
}

func (s *ReaderTestSuite) TestErrorHandling() {
	s.T().Run("ReadPastEOF", func(t *testing.T) {
		data := []byte{0x01, 0x02, 0x03}
		r, _ := NewReader(bytes.NewReader(data))
		var v32 uint32
		r.ReadUint32(&v32) // Attempt to read 4 bytes from a 3-byte source.

		require.Error(t, r.Err())
		assert.ErrorIs(t, r.Err(), io.ErrUnexpectedEOF)
		assert.False(t, r.IsEOF(), "ErrUnexpectedEOF should not be considered a clean EOF")
	})

	s.T().Run("ReadAfterErrorIsNoOp", func(t *testing.T) {
		data := []byte{0x01, 0x02, 0x03}
		r, _ := NewReader(bytes.NewReader(data))
		var v32 uint32
		var v8 uint8

		r.ReadUint32(&v32) // This will trigger and latch the error.
		firstErr := r.Err()
		require.Error(t, firstErr)

		r.ReadUint8(&v8) // This read should not happen.
		assert.Equal(t, firstErr, r.Err(), "the latched error should not change")
		assert.Equal(t, uint8(0), v8, "destination variable should be unchanged after an error")
	})
}

func (s *ReaderTestSuite) TestInterfaceMethods() {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	s.T().Run("WriteTo", func(t *testing.T) {
		r, _ := NewReader(bytes.NewReader(data))
		var buf bytes.Buffer
		n, err := r.WriteTo(&buf)
		require.NoError(t, err)
		assert.EqualValues(t, len(data), n)
		assert.Equal(t, data, buf.Bytes())
	})

	s.T().Run("WriteToNilWriter", func(t *testing.T) {
		r, _ := NewReader(bytes.NewReader(data))
		_, err := r.WriteTo(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrWriteToNil)
	})

	s.T().Run("ReadTo", func(t *testing.T) {
		r, _ := NewReader(bytes.NewReader([]byte{0xEF, 0xBE, 0xAD, 0xDE, 1, 2, 3, 4}))
		var c mockCodec
		r.ReadTo(&c)
		require.NoError(t, r.Err())
		assert.Equal(t, uint32(0xDEADBEEF), c.Payload.ID)
		assert.Equal(t, [4]byte{1, 2, 3, 4}, c.Payload.Data)
	})

	s.T().Run("ReadToNil", func(t *testing.T) {
		r, _ := NewReader(bytes.NewReader(data))
		r.ReadTo(nil)
		assert.ErrorIs(t, r.Err(), ErrReadToNil)
	})
}

func (s *ReaderTestSuite) TestSeekBehavior() {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	r, _ := NewReader(bytes.NewReader(data)) // bytes.Reader implements io.ReadSeeker

	// 1. Seek from start
	pos, err := r.Seek(3, io.SeekStart)
	s.Require().NoError(err)
	s.Assert().EqualValues(3, pos)
	s.Assert().EqualValues(3, r.Count())

	// 2. Read after seek
	b := r.ReadBytes(2)
	s.Require().NoError(r.Err())
	s.Assert().Equal([]byte{0x04, 0x05}, b)
	s.Assert().EqualValues(5, r.Count())

	// 3. Seek from current
	pos, err = r.Seek(1, io.SeekCurrent)
	s.Require().NoError(err)
	s.Assert().EqualValues(6, pos)

	// 4. Seek backwards works because the source itself can seek
	pos, err = r.Seek(0, io.SeekStart)
	s.Require().NoError(err)
	s.Assert().EqualValues(0, pos)
}

func (s *ReaderTestSuite) TestForwardOnlySeekerErrors() {
	// A reader that does NOT implement io.Seeker exercises the emulation.
	r, _ := NewReader(bytes.NewBuffer(make([]byte, 10)))

	// 1. Seek forward works
	pos, err := r.Seek(5, io.SeekStart)
	s.Require().NoError(err)
	s.Assert().EqualValues(5, pos)

	// 2. Seek backward fails
	_, err = r.Seek(2, io.SeekStart)
	s.Require().Error(err)
	s.Assert().ErrorIs(err, ErrInvalidSeek)

	// 3. Seek relative to the end is unknowable for a plain stream
	r, _ = NewReader(bytes.NewBuffer(make([]byte, 10)))
	_, err = r.Seek(0, io.SeekEnd)
	s.Require().Error(err)
	s.Assert().ErrorIs(err, ErrInvalidWhence)
}

func (s *ReaderTestSuite) TestPeek() {
	r, _ := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03}))

	head, err := r.Peek(2)
	s.Require().NoError(err)
	s.Assert().Equal([]byte{0x01, 0x02}, head)
	s.Assert().Zero(r.Count(), "Peek must not consume")

	// The peeked bytes are still delivered in order.
	var v16 uint16
	var v8 uint8
	r.ReadUint16(&v16)
	r.ReadUint8(&v8)
	s.Require().NoError(r.Err())
	s.Assert().Equal(uint16(0x0201), v16)
	s.Assert().Equal(uint8(0x03), v8)

	// Peeking past the end reports the short window without latching.
	r2, _ := NewReader(bytes.NewReader([]byte{0x01}))
	head, err = r2.Peek(4)
	s.Assert().ErrorIs(err, io.EOF)
	s.Assert().Equal([]byte{0x01}, head)
	s.Require().NoError(r2.Err())

	var v uint8
	r2.ReadUint8(&v)
	s.Require().NoError(r2.Err())
	s.Assert().Equal(uint8(0x01), v)
}

func (s *ReaderTestSuite) TestAlign() {
	r, _ := NewReader(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6}))
	var v uint8
	r.ReadUint8(&v)
	r.Align(4)
	s.Require().NoError(r.Err())
	s.Assert().EqualValues(4, r.Count())
	r.ReadUint8(&v)
	s.Require().NoError(r.Err())
	s.Assert().Equal(uint8(5), v)
}

func (s *ReaderTestSuite) TestDiscard() {
	r, _ := NewReader(bytes.NewReader([]byte{1, 2, 3, 4, 5}))
	r.Discard(3)
	s.Require().NoError(r.Err())
	s.Assert().EqualValues(3, r.Count())

	var v uint8
	r.ReadUint8(&v)
	s.Assert().Equal(uint8(4), v)

	// Running past the end of a fixed-size skip is a hard failure.
	r.Discard(10)
	s.Assert().ErrorIs(r.Err(), io.ErrUnexpectedEOF)

	r2, _ := NewReader(bytes.NewReader([]byte{1}))
	r2.Discard(-1)
	s.Assert().ErrorIs(r2.Err(), ErrNegativeCount)
}

// TestReader runs the ReaderTestSuite.
func TestReader(t *testing.T) {
	suite.Run(t, new(ReaderTestSuite))
}

// --- Standalone Codec Tests ---

func TestFixedSizeCache(t *testing.T) {
	c := &mockCodec{Payload: mockPayload{ID: 1}}
	expectedSize := 8 // uint32(4) + [4]byte(4)

	// The first call populates the cache.
	size1 := c.Size()
	assert.Equal(t, expectedSize, size1)

	// The second call should hit the cache. We verify by checking the value.
	size2 := c.Size()
	assert.Equal(t, expectedSize, size2)

	// Verify the cache is shared globally.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c2 := &mockCodec{Payload: mockPayload{ID: 2}}
			assert.Equal(t, expectedSize, c2.Size())
		}()
	}
	wg.Wait()
}

func TestFixedRoundtrip(t *testing.T) {
	src := &mockCodec{Payload: mockPayload{ID: 0x11223344, Data: [4]byte{9, 8, 7, 6}}}
	data, err := src.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x44, 0x33, 0x22, 0x11, 9, 8, 7, 6}, data)

	var dst mockCodec
	require.NoError(t, dst.UnmarshalBinary(data))
	assert.Equal(t, src.Payload, dst.Payload)
}

func TestFixedByteOrder(t *testing.T) {
	c := &mockCodec{Payload: mockPayload{ID: 0x11223344}, Order: BE}
	data, err := c.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0, 0, 0, 0}, data)

	dst := &mockCodec{Order: BE}
	require.NoError(t, dst.UnmarshalBinary(data))
	assert.Equal(t, c.Payload, dst.Payload)
}

func TestFixedErrors(t *testing.T) {
	t.Run("MarshalToShortBuffer", func(t *testing.T) {
		c := &mockCodec{}
		shortBuf := make([]byte, c.Size()-1)
		_, err := c.MarshalTo(shortBuf)
		assert.ErrorIs(t, err, ErrOutOfSpace)
	})

	t.Run("UnmarshalWithTruncatedData", func(t *testing.T) {
		c := &mockCodec{}
		validData, _ := c.MarshalBinary()
		truncatedData := validData[:len(validData)-1]

		err := c.UnmarshalBinary(truncatedData)
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("UnmarshalWithTrailingData", func(t *testing.T) {
		c := &mockCodec{}
		validData, _ := c.MarshalBinary()
		trailingData := append(validData, 0x01, 0x02, 0x03) // Append non-zero bytes

		err := c.UnmarshalBinary(trailingData)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTrailingData)
		assert.Contains(t, err.Error(), "non-zero byte")
	})

	t.Run("UnmarshalWithZeroPadding", func(t *testing.T) {
		c := &mockCodec{Payload: mockPayload{ID: 7}}
		validData, _ := c.MarshalBinary()
		padded := append(validData, 0x00, 0x00)

		var dst mockCodec
		require.NoError(t, dst.UnmarshalBinary(padded))
		assert.Equal(t, c.Payload, dst.Payload)
	})
}

func TestFixedStreaming(t *testing.T) {
	src := &mockCodec{Payload: mockPayload{ID: 42, Data: [4]byte{1, 1, 2, 3}}}

	var buf bytes.Buffer
	n, err := src.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, src.Size(), n)

	var dst mockCodec
	n, err = dst.ReadFrom(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, src.Size(), n)
	assert.Equal(t, src.Payload, dst.Payload)
}

// --- Generic Adapter Tests ---

func TestGenericAdapters(t *testing.T) {
	src := &mockCodec{Payload: mockPayload{ID: 0xCAFE, Data: [4]byte{4, 3, 2, 1}}}

	t.Run("MarshalBinaryGeneric", func(t *testing.T) {
		data, err := MarshalBinaryGeneric(src)
		require.NoError(t, err)
		direct, _ := src.MarshalBinary()
		assert.Equal(t, direct, data)
	})

	t.Run("UnmarshalBinaryGeneric", func(t *testing.T) {
		data, _ := src.MarshalBinary()
		var dst mockCodec
		require.NoError(t, UnmarshalBinaryGeneric(&dst, data))
		assert.Equal(t, src.Payload, dst.Payload)
	})

	t.Run("UnmarshalBinaryGenericRejectsGarbageTail", func(t *testing.T) {
		data, _ := src.MarshalBinary()
		data = append(data, 0xFF)
		var dst mockCodec
		err := UnmarshalBinaryGeneric(&dst, data)
		assert.ErrorIs(t, err, ErrTrailingData)
	})

	t.Run("ReadFromGeneric", func(t *testing.T) {
		data, _ := src.MarshalBinary()
		var dst mockCodec
		n, err := ReadFromGeneric(&dst, bytes.NewReader(data))
		require.NoError(t, err)
		assert.EqualValues(t, len(data), n)
		assert.Equal(t, src.Payload, dst.Payload)
	})

	t.Run("WriteToGeneric", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := WriteToGeneric(src, &buf)
		require.NoError(t, err)
		assert.EqualValues(t, src.Size(), n)
	})

	t.Run("MarshalToGeneric", func(t *testing.T) {
		p := make([]byte, src.Size())
		n, err := MarshalToGeneric(src, p)
		require.NoError(t, err)
		assert.Equal(t, src.Size(), n)

		_, err = MarshalToGeneric(src, make([]byte, src.Size()-1))
		assert.ErrorIs(t, err, ErrOutOfSpace)
	})
}
