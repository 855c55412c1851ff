package logger

import (
	"bytes"
	"sync"
)

// bufferPool holds the per-call scratch buffers drains format into.
// Go has no thread-local storage; sync.Pool gives the same discipline
// the hot path needs: a goroutine gets exclusive use of one buffer for
// the duration of a log call, the buffer is reused instead of
// reallocated, and it is never handed to two concurrent calls at once.
var bufferPool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(128)
		return b
	},
}

// withBuffer runs f with exclusive use of a scratch buffer. The buffer
// arrives empty and is reset (length zero, capacity kept) on every
// exit path, including a panic inside f. Reset does not zero the
// underlying memory.
func withBuffer(f func(*bytes.Buffer)) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		// Don't keep very large buffers
		if buf.Cap() > 64*1024 {
			return
		}
		buf.Reset()
		bufferPool.Put(buf)
	}()
	f(buf)
}
