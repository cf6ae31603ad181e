// Package bo resolves the byte order of the host CPU to one of the two
// concrete encoding/binary orders. Unlike binary.NativeEndian, the value
// returned by Native compares equal to binary.LittleEndian or
// binary.BigEndian, so callers can branch on it.
package bo

import "encoding/binary"

// Native reports the host byte order as binary.LittleEndian or
// binary.BigEndian.
func Native() binary.ByteOrder { return native }
