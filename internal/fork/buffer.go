package fork

import (
	"bytes"
	"sync"
)

// buffer является синхронной оберткой над bytes.Buffer:
// процесс пишет в него, пока тест читает
type buffer struct {
	m   sync.RWMutex
	buf bytes.Buffer
}

// Write реализует интерфейс io.Writer
func (b *buffer) Write(p []byte) (n int, err error) {
	b.m.Lock()
	defer b.m.Unlock()
	return b.buf.Write(p)
}

// Bytes возвращает копию всех байт из буфера
func (b *buffer) Bytes() []byte {
	b.m.RLock()
	defer b.m.RUnlock()
	return bytes.Clone(b.buf.Bytes())
}
