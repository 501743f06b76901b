package ffi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCString(t *testing.T) {
	b, err := CString("ok")
	require.NoError(t, err)
	assert.Equal(t, []byte{'o', 'k', 0}, b)
}

func TestCString_Empty(t *testing.T) {
	b, err := CString("")
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, b)
}

func TestCString_InteriorNul(t *testing.T) {
	_, err := CString("a\x00b")
	assert.ErrorIs(t, err, ErrNul)
}

func TestSanitizedCString(t *testing.T) {
	b := SanitizedCString("a\x00b\x00", "?")
	assert.Equal(t, []byte("a?b?\x00"), b)
}

func TestGoString(t *testing.T) {
	b, err := CString("marker.name")
	require.NoError(t, err)
	assert.Equal(t, "marker.name", GoString(&b[0]))
	assert.Equal(t, "", GoString(nil))
}
