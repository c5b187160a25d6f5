package handler

import (
	"bytes"
	"sync"
)

// bufferPool recycles encode buffers across responses. State views with a
// full catalog of owned ids still fit comfortably in the initial capacity.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
