// Package rand generates random test data.
package rand

import (
	"math/rand"
	"sync"
	"time"
)

const letterBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	seeded sync.Once
	mu     sync.Mutex
	src    *rand.Rand
)

func source() *rand.Rand {
	seeded.Do(func() {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	})
	return src
}

// LetterBytes returns a random slice of bytes picked in the [0-9]|[a-z] range
func LetterBytes(n int) []byte {
	mu.Lock()
	defer mu.Unlock()
	r := source()
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[r.Intn(len(letterBytes))]
	}
	return b
}

// LetterString returns a random string picked in the [0-9]|[a-z] range
func LetterString(n int) string {
	return string(LetterBytes(n))
}

// Intn returns a random int in [0,n)
func Intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return source().Intn(n)
}

// Lines returns n random lines of random length in [1,width]
func Lines(n, width int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = LetterString(1 + Intn(width))
	}
	return lines
}
