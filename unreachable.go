// Package unreachable marks code paths that can never execute.
//
// The marker has two builds, chosen by the release build tag:
//
//   - default (verified): reaching a marker panics with a diagnostic that
//     contains [Indicator] and the optional message.
//   - -tags release (optimized): reaching a marker is undefined behavior.
//     Go has no "assume unreachable" intrinsic, so the optimized build traps
//     instead. The trap costs the optimizer hint a C or LLVM toolchain would
//     give, it prints no Indicator, and it must not be relied on.
//
// Messages must be untyped string constants:
//
//	unreachable.HereMsg("the two arms above cover all possible cases")
//
// Variables and string-typed constants do not compile, so the optimized
// build never evaluates or keeps a message.
//
// Use [Value] or [ValueMsg] where an expression is required:
//
//	func (s Sign) String() string {
//		switch s {
//		case Negative:
//			return "negative"
//		case Positive:
//			return "positive"
//		}
//		return unreachable.Value[string]()
//	}
package unreachable

// Indicator is the fixed text every verified-build diagnostic starts with.
const Indicator = "internal error: entered unreachable code"

// text only accepts untyped string constants from outside the package.
type text string
