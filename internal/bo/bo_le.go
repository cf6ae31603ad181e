//go:build amd64 || arm64 || 386 || riscv64 || ppc64le || mips64le || mipsle || loong64 || wasm || arm

package bo

import "encoding/binary"

var native binary.ByteOrder = binary.LittleEndian
