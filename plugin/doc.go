// Package plugin drives a native plugin's load and unload hooks.
//
// The host calls the plugin's exported load entry point with its root
// interface table and the unload entry point before releasing the library.
// A thin cgo export layer forwards both to Load and Unload here, which build
// the registry, loggers and profiler once and hand them to the plugin's own
// hooks through a Context.
//
//	func init() {
//		plugin.Register(plugin.New(onLoad, onUnload,
//			plugin.WithConfigFile("Plugins/demo.yaml")))
//	}
package plugin
