package byteconv

import (
	"bytes"
	"sync"
)

// bytesBufPool reuses buffers for gathering variable-length payloads.
// This reduces GC pressure by avoiding frequent allocations. We pool *bytes.Buffer
// because they are easily reset and resized.
var bytesBufPool = sync.Pool{
	New: func() any {
		// A 4KB default is chosen to avoid re-allocations for common payload sizes.
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

const CHUNK_SIZE = 32 * 1024

// bufPool holds scratch slices for copying and for staging encoded values
// before they hit the underlying writer. 32KB is the chunk size io.Copy uses.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, CHUNK_SIZE)
		return &b
	},
}
