package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Cleanup(func() { Register(nil) })

	Register(nil)
	assert.ErrorIs(t, Load(newTestHost().host.Handle()), ErrNotRegistered)
	Unload()

	unloaded := false
	p := New(nil, func(*Context) { unloaded = true })
	Register(p)

	require.NoError(t, Load(newTestHost().host.Handle()))
	assert.True(t, p.Loaded())
	assert.Same(t, p.Context(), CurrentContext())

	Unload()
	assert.True(t, unloaded)
	assert.False(t, p.Loaded())
	assert.Nil(t, CurrentContext())
}
