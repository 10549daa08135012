package main

import (
	"strings"
	"testing"
)

func TestTimeItFewIterations(t *testing.T) {
	for _, n := range []int{-5, 0, 1, 9} {
		calls := 0
		r := timeIt("noop", n/10, func() { calls++ })
		if r.iters < 1 || calls != r.iters {
			t.Fatalf("n=%d: iters=%d calls=%d", n, r.iters, calls)
		}
		if s := r.String(); strings.Contains(s, "NaN") || strings.Contains(s, "Inf") {
			t.Fatalf("n=%d: %q", n, s)
		}
	}
}
