//go:build !unity_release

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = true
