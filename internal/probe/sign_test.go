// Tests for exhaustive classification; the marked arms must stay dead.
package probe

import (
	"errors"
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		n    int
		want Sign
	}{
		{0, Zero},
		{1, Positive},
		{-1, Negative},
		{12, Positive},
		{math.MaxInt, Positive},
		{math.MinInt, Negative},
	}
	for _, tt := range tests {
		if got := Classify(tt.n); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestSignString(t *testing.T) {
	for s, want := range map[Sign]string{Negative: "negative", Zero: "zero", Positive: "positive"} {
		if got := s.String(); got != want {
			t.Errorf("Sign(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}

func TestParseInputs(t *testing.T) {
	got, err := ParseInputs([]string{"3", "-7", "0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{3, -7, 0}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	_, err = ParseInputs([]string{"1", "two"})
	if !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
}
