package rand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterString(t *testing.T) {
	s := LetterString(32)
	require.Len(t, s, 32)
	for _, c := range s {
		assert.True(t, (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9'))
	}
}

func TestLines(t *testing.T) {
	lines := Lines(10, 20)
	require.Len(t, lines, 10)
	for _, l := range lines {
		assert.NotEmpty(t, l)
		assert.LessOrEqual(t, len(l), 20)
	}
}
