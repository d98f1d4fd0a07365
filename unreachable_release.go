//go:build release

package unreachable

// Checked reports whether reaching a marker panics with a diagnostic.
const Checked = false

// Here is undefined behavior if reached.
func Here() {
	trap()
}

// HereMsg is undefined behavior if reached. msg is discarded.
func HereMsg(_ text) {
	trap()
}

// Value is undefined behavior if reached.
func Value[T any]() T {
	trap()
	var zero T
	return zero
}

// ValueMsg is undefined behavior if reached. msg is discarded.
func ValueMsg[T any](_ text) T {
	trap()
	var zero T
	return zero
}

// trap faults on a nil store. It stands in for an assume-unreachable
// intrinsic, which gc does not provide.
func trap() {
	*(*int)(nil) = 0
}
