//go:build !amd64 && !arm64 && !386 && !riscv64 && !ppc64le && !mips64le && !mipsle && !loong64 && !wasm && !arm && !s390x && !ppc64 && !mips && !mips64

package bo

import "encoding/binary"

// Ports without a dedicated build tag probe the order at startup.
var native = probe()

func probe() binary.ByteOrder {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 0x0102)
	if b[0] == 0x01 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
