package guid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	g, err := Parse("B957E018-9CB6-A30B-83CE-589AE85B9068")
	require.NoError(t, err)
	assert.Equal(t, uint64(0xB957E0189CB6A30B), g.High)
	assert.Equal(t, uint64(0x83CE589AE85B9068), g.Low)
}

func TestParse_LowerCase(t *testing.T) {
	g, err := Parse("9e7507fa-5b44-4d5d-92fb-979515ea83fc")
	require.NoError(t, err)
	assert.Equal(t, New(0x9E7507FA5B444D5D, 0x92FB979515EA83FC), g)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("not-a-guid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid GUID")
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("zz") })
}

func TestString_RoundTrip(t *testing.T) {
	g := New(0xB957E0189CB6A30B, 0x83CE589AE85B9068)
	assert.Equal(t, "B957E018-9CB6-A30B-83CE-589AE85B9068", g.String())

	back, err := Parse(g.String())
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

func TestIsZero(t *testing.T) {
	assert.True(t, GUID{}.IsZero())
	assert.False(t, New(0, 1).IsZero())
}
