package log

import (
	"testing"

	"github.com/stretchr/testify/require"

	unity "github.com/reglet-dev/unity-native-go"
	"github.com/reglet-dev/unity-native-go/hosttest"
)

func newTestLogger(t *testing.T) (*Logger, *hosttest.Log) {
	t.Helper()
	fake := hosttest.NewLog()
	host := hosttest.NewHost()
	host.ProvideLog(fake)
	ifaces, err := unity.New(host.Handle())
	require.NoError(t, err)
	l, err := FromInterfaces(ifaces)
	require.NoError(t, err)
	return l, fake
}
