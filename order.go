package byteconv

import (
	"encoding/binary"
	"math"

	"github.com/oy3o/byteconv/internal/bo"
)

var (
	// BE is big-endian byte order.
	BE = binary.ByteOrder(binary.BigEndian)

	// LE is little-endian byte order.
	LE = binary.ByteOrder(binary.LittleEndian)

	// NE is the byte order of the host CPU, resolved at build time to BE or LE.
	NE = bo.Native()

	// Order is the byte order used by constructors and package-level
	// functions when no explicit order is given. Little-endian is the
	// default so that encoded bytes are identical across hosts.
	Order = LE
)

// prefixMax returns the largest payload length a prefix of the given width
// can describe, or ErrPrefixWidth for an unsupported width.
func prefixMax(width int) (uint64, error) {
	switch width {
	case 1:
		return math.MaxUint8, nil
	case 2:
		return math.MaxUint16, nil
	case 4:
		return math.MaxUint32, nil
	case 8:
		return math.MaxUint64, nil
	}
	return 0, ErrPrefixWidth
}

// bigEndian reports whether order places the most significant byte first.
// It works for any ByteOrder implementation, not only the two stdlib values.
func bigEndian(order binary.ByteOrder) bool {
	switch order {
	case binary.BigEndian:
		return true
	case binary.LittleEndian:
		return false
	}
	var probe [2]byte
	order.PutUint16(probe[:], 0x0102)
	return probe[0] == 0x01
}

// putUintN encodes v into exactly len(p) bytes, 1 <= len(p) <= 8.
// The caller guarantees that v fits.
func putUintN(order binary.ByteOrder, p []byte, v uint64) {
	var tmp [8]byte
	order.PutUint64(tmp[:], v)
	if bigEndian(order) {
		copy(p, tmp[8-len(p):])
	} else {
		copy(p, tmp[:len(p)])
	}
}

// uintN decodes an unsigned integer from exactly len(p) bytes, 1 <= len(p) <= 8.
func uintN(order binary.ByteOrder, p []byte) uint64 {
	var tmp [8]byte
	if bigEndian(order) {
		copy(tmp[8-len(p):], p)
	} else {
		copy(tmp[:], p)
	}
	return order.Uint64(tmp[:])
}
