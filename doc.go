// Package unity is the entry point of the native plugin SDK.
//
// The host hands the plugin an opaque root table at load time. Interfaces
// wraps that table and resolves versioned capabilities, each keyed by a GUID,
// into typed facades:
//
//	ifaces, err := unity.New(raw)
//	if err != nil {
//	    return err
//	}
//	prof, err := unity.Get(ifaces, profiler.Descriptor)
//
// New capabilities are added by declaring a Descriptor; the registry itself
// never changes.
package unity
