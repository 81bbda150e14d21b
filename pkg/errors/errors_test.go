package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	sentinel := New("not found")
	cause := fmt.Errorf("row missing")

	wrapped := sentinel.Wrap(cause)
	require.Error(t, wrapped)
	assert.True(t, Is(wrapped, sentinel))
	assert.True(t, Is(wrapped, cause))
	assert.Contains(t, wrapped.Error(), "not found")
	assert.Contains(t, wrapped.Error(), "row missing")

	// sentinel itself is left untouched
	assert.NoError(t, sentinel.Unwrap())
}

func TestAs(t *testing.T) {
	sentinel := New("conflict")
	wrapped := fmt.Errorf("outer: %w", sentinel.Wrap(fmt.Errorf("inner")))

	var e *Error
	require.True(t, As(wrapped, &e))
	assert.True(t, Is(e, sentinel))
}
