package solve

import (
	"math"
	"sort"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func verifyRoots(t *testing.T, name string, roots, expected []float64, epsilon float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Errorf("%s: got %d roots %v, want %d roots %v", name, len(roots), roots, len(expected), expected)
		return
	}
	got := append([]float64(nil), roots...)
	want := append([]float64(nil), expected...)
	sort.Float64s(got)
	sort.Float64s(want)
	for i := range got {
		if !almostEqual(got[i], want[i], epsilon) {
			t.Errorf("%s: root[%d] = %v, want %v (roots=%v, expected=%v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestFindRootsQuadratic(t *testing.T) {
	s := Default
	tests := []struct {
		name     string
		a, b, c  float64
		expected []float64
	}{
		{"two roots", 1, 0, -5, []float64{-math.Sqrt(5), math.Sqrt(5)}},
		{"no real roots", 1, 0, 5, nil},
		{"linear fallback", 0, 1, 5, []float64{-5}},
		{"double root", 1, 2, 1, []float64{-1}},
		{"roots at 2 and 3", 1, -5, 6, []float64{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := s.FindRootsQuadratic(tt.a, tt.b, tt.c)
			verifyRoots(t, tt.name, roots, tt.expected, 1e-9)
		})
	}
}

func TestFindRootsCubic(t *testing.T) {
	s := Default
	tests := []struct {
		name       string
		a, b, c, d float64
		expected   []float64
	}{
		// (t-1)(t-2)(t-3) = t^3 - 6t^2 + 11t - 6
		{"three roots 1,2,3", 1, -6, 11, -6, []float64{1, 2, 3}},
		// (t-1)^3 = t^3 - 3t^2 + 3t - 1: the disc==0 branch reports the
		// triple root twice (it always returns a pair for a repeated root).
		{"triple root at 1", 1, -3, 3, -1, []float64{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := s.FindRootsCubic(tt.a, tt.b, tt.c, tt.d)
			verifyRoots(t, tt.name, roots, tt.expected, 1e-6)
		})
	}
}

func TestFindRootBrent(t *testing.T) {
	s := Default
	opts := DefaultOptions()

	// f(t) = t^2 - 2, root at sqrt(2) in [0, 2].
	f := func(t float64) float64 { return t*t - 2 }
	root, err := s.FindRootBrent(0, 2, f, opts)
	if err != nil {
		t.Fatalf("FindRootBrent returned error: %v", err)
	}
	if !almostEqual(root, math.Sqrt2, 1e-4) {
		t.Errorf("FindRootBrent() = %v, want %v", root, math.Sqrt2)
	}
}

func TestFindRootBrentNoBracket(t *testing.T) {
	s := Default
	opts := DefaultOptions()
	f := func(t float64) float64 { return t*t + 1 }
	if _, err := s.FindRootBrent(0, 2, f, opts); err == nil {
		t.Errorf("FindRootBrent() expected ErrRootNotFound for a non-bracketing interval")
	}
}
