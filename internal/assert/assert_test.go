//go:build !unity_release

package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThat_PassingConditionIsSilent(t *testing.T) {
	var got []string
	restore := SetHandler(func(msg string) { got = append(got, msg) })
	defer restore()

	That(true, "never")
	assert.Empty(t, got)
}

func TestThat_FailingConditionReportsOnce(t *testing.T) {
	var got []string
	restore := SetHandler(func(msg string) { got = append(got, msg) })
	defer restore()

	That(false, "marker %s broken", "frame")
	assert.Equal(t, []string{"marker frame broken"}, got)
}

func TestDefaultHandlerPanics(t *testing.T) {
	assert.PanicsWithValue(t, "unity-native: assertion failed: boom", func() {
		Fail("boom")
	})
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	restore := SetHandler(nil)
	defer restore()
	assert.Panics(t, func() { Fail("x") })
}
