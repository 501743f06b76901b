package hosttest

import (
	"sync"
	"testing"

	"github.com/reglet-dev/unity-native-go/internal/assert"
)

// Assertions collects SDK assertion failures instead of panicking.
type Assertions struct {
	messages []string
	mu       sync.Mutex
}

// CaptureAssertions records assertion failures for the rest of the test.
// The default handler is restored on cleanup. Assertion capture is global,
// so tests using it must not run in parallel.
func CaptureAssertions(t testing.TB) *Assertions {
	t.Helper()
	a := &Assertions{}
	restore := assert.SetHandler(func(msg string) {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.messages = append(a.messages, msg)
	})
	t.Cleanup(restore)
	return a
}

// Messages returns the recorded failures in order.
func (a *Assertions) Messages() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.messages))
	copy(out, a.messages)
	return out
}

// Count returns the number of recorded failures.
func (a *Assertions) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.messages)
}
