//go:build s390x || ppc64 || mips || mips64

package bo

import "encoding/binary"

var native binary.ByteOrder = binary.BigEndian
