//go:build !release

package unreachable

// Checked reports whether reaching a marker panics with a diagnostic.
const Checked = true

// Here panics with Indicator.
func Here() {
	panic(Indicator)
}

// HereMsg panics with Indicator followed by msg.
func HereMsg(msg text) {
	panic(Indicator + ": " + string(msg))
}

// Value panics with Indicator. The result type is whatever the call site
// needs; no value is ever returned.
func Value[T any]() T {
	panic(Indicator)
}

// ValueMsg panics with Indicator followed by msg.
func ValueMsg[T any](msg text) T {
	panic(Indicator + ": " + string(msg))
}
