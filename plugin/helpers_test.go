package plugin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/unity-native-go/hosttest"
)

type testHost struct {
	host *hosttest.Host
	log  *hosttest.Log
	prof *hosttest.Profiler
}

func newTestHost() *testHost {
	h := &testHost{
		host: hosttest.NewHost(),
		log:  hosttest.NewLog(),
		prof: hosttest.NewProfiler(),
	}
	h.host.ProvideLog(h.log)
	h.host.ProvideProfiler(h.prof)
	return h
}

func (h *testHost) callsOf(op string) []hosttest.Call {
	var out []hosttest.Call
	for _, c := range h.prof.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// captureStderr redirects os.Stderr to a file for the rest of the test and
// returns a function reading what was written so far.
func captureStderr(t *testing.T) func() string {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "stderr"))
	require.NoError(t, err)
	orig := os.Stderr
	os.Stderr = f
	t.Cleanup(func() {
		os.Stderr = orig
		_ = f.Close()
	})
	return func() string {
		data, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		return string(data)
	}
}
