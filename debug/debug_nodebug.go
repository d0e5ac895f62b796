//go:build !debug

package debug

// Debug is false unless the binary is built with -tags=debug.
const Debug = false
