package profiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	unity "github.com/reglet-dev/unity-native-go"
	"github.com/reglet-dev/unity-native-go/hosttest"
)

func newTestProfiler(t *testing.T) (*Profiler, *hosttest.Profiler) {
	t.Helper()
	fake := hosttest.NewProfiler()
	return resolve(t, fake), fake
}

func resolve(t *testing.T, fake *hosttest.Profiler) *Profiler {
	t.Helper()
	host := hosttest.NewHost()
	host.ProvideProfiler(fake)
	ifaces, err := unity.New(host.Handle())
	require.NoError(t, err)
	p, err := FromInterfaces(ifaces)
	require.NoError(t, err)
	return p
}

func callsOf(fake *hosttest.Profiler, op string) []hosttest.Call {
	var out []hosttest.Call
	for _, c := range fake.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
