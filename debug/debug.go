// Package debug carries the build-tagged debug flag and cheap assertions
// used by the proving stack.
package debug

// Assert does nothing if the debug flag is not provided
// if the debug flag is provided, panics if condition is false.
func Assert(condition bool, message ...string) {
	if !Debug {
		return
	}
	if !condition {
		if len(message) > 0 {
			panic(message[0])
		}
		panic("assertion failed")
	}
}
