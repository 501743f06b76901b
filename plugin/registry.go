package plugin

import (
	"sync"

	"github.com/reglet-dev/unity-native-go/ffi"
)

var (
	registered *Plugin
	registryMu sync.Mutex
)

// Register sets the plugin driven by the package-level Load and Unload.
// Call it from init. A later call replaces the earlier plugin.
func Register(p *Plugin) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registered = p
}

func current() *Plugin {
	registryMu.Lock()
	defer registryMu.Unlock()
	return registered
}

// Load loads the registered plugin. The export layer calls it from the
// host's load entry point.
func Load(raw *ffi.Interfaces) error {
	p := current()
	if p == nil {
		return ErrNotRegistered
	}
	return p.Load(raw)
}

// Unload unloads the registered plugin, if any.
func Unload() {
	if p := current(); p != nil {
		p.Unload()
	}
}

// CurrentContext returns the registered plugin's context, or nil when it is
// not loaded.
func CurrentContext() *Context {
	if p := current(); p != nil {
		return p.Context()
	}
	return nil
}
