package random

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand"
)

// rnd is seeded from crypto/rand once per process, so every test run sees new values.
// It is not safe for concurrent use.
var rnd = func() *mathrand.Rand {
	buf := make([]byte, 8)
	_, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		panic(err)
	}
	src := mathrand.NewSource(int64(binary.LittleEndian.Uint64(buf)))
	return mathrand.New(src)
}()
