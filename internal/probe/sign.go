// Purpose: Classify integers with exhaustive arms guarded by unreachable markers.
// Exports: Sign, Classify, ParseInputs, Reach.
// Role: The code the demo command runs; every marker here is dead unless forced.
// Invariants: Classify and Sign.String never reach their markers for any input.
// Notes: Reach is the only way to execute a marked arm.
package probe

import (
	"fmt"
	"strconv"

	"github.com/sandover/unreachable"
)

// Sign is the sign of an integer.
type Sign int

const (
	Negative Sign = iota - 1
	Zero
	Positive
)

const armsCovered = "The two arms above cover all possible cases"

func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Zero:
		return "zero"
	case Positive:
		return "positive"
	}
	return unreachable.Value[string]()
}

// Classify returns the sign of n.
func Classify(n int) Sign {
	switch {
	case n >= 0:
		if n == 0 {
			return Zero
		}
		return Positive
	case n < 0:
		return Negative
	}
	return unreachable.ValueMsg[Sign](armsCovered)
}

// ParseInputs parses base-10 integers. Errors wrap ErrInvalidNumber.
func ParseInputs(args []string) ([]int, error) {
	nums := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, a)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// Reach executes the arm Classify marks unreachable. It does not return.
func Reach(bare bool) {
	if bare {
		unreachable.Here()
	} else {
		unreachable.HereMsg(armsCovered)
	}
}
