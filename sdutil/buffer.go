package sdutil

import (
	"io"
	"sync"
)

// Buffer is an io.Writer that can be written from multiple
// threads simultaneously.  It exists to support testing.
type Buffer struct {
	lock sync.Mutex
	b    []byte
}

var _ io.Writer = &Buffer{}

func (b *Buffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.b = append(b.b, p...)
	return len(p), nil
}

func (b *Buffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return string(b.b)
}

func (b *Buffer) Bytes() []byte {
	b.lock.Lock()
	defer b.lock.Unlock()
	c := make([]byte, len(b.b))
	copy(c, b.b)
	return c
}

func (b *Buffer) Reset() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.b = b.b[:0]
}
