package numerics

import (
	"math"
	"testing"
)

func TestSplineInterpolatesKnots(t *testing.T) {
	xs := []float64{0, 0.5, 1.2, 2.0, 3.1}
	ys := []float64{1.0, -0.5, 2.2, 0.0, 4.4}

	s, err := NewSpline(xs, ys)
	if err != nil {
		t.Fatalf("NewSpline failed: %v", err)
	}

	for i := range xs {
		got := s.At(xs[i])
		if math.Abs(got-ys[i]) > 1e-12 {
			t.Errorf("At(%v) = %v, want %v", xs[i], got, ys[i])
		}
	}
}

func TestSplineLinearData(t *testing.T) {
	// A natural spline through collinear points stays a straight line,
	// inside and outside the knot range.
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 3, 5, 7}

	s, err := NewSpline(xs, ys)
	if err != nil {
		t.Fatalf("NewSpline failed: %v", err)
	}

	for _, x := range []float64{0, 0.25, 1.5, 2.9, 3.0, -0.5, 3.5} {
		want := 2*x + 1
		if got := s.At(x); math.Abs(got-want) > 1e-10 {
			t.Errorf("At(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestSplineTwoKnots(t *testing.T) {
	s, err := NewSpline([]float64{0, 2}, []float64{0, 4})
	if err != nil {
		t.Fatalf("NewSpline failed: %v", err)
	}
	if got := s.At(1); math.Abs(got-2) > 1e-12 {
		t.Errorf("At(1) = %v, want 2", got)
	}
}

func TestSplineSmoothCurve(t *testing.T) {
	// Dense knots on a sine should interpolate well between them.
	n := 21
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) / float64(n-1) * math.Pi
		ys[i] = math.Sin(xs[i])
	}

	s, err := NewSpline(xs, ys)
	if err != nil {
		t.Fatalf("NewSpline failed: %v", err)
	}

	for _, x := range []float64{0.1, 0.7, 1.3, 2.0, 2.9} {
		if got := s.At(x); math.Abs(got-math.Sin(x)) > 1e-4 {
			t.Errorf("At(%v) = %v, want %v", x, got, math.Sin(x))
		}
	}
}

func TestSplineInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{"single knot", []float64{1}, []float64{1}},
		{"length mismatch", []float64{0, 1}, []float64{0}},
		{"repeated x", []float64{0, 1, 1, 2}, []float64{0, 1, 2, 3}},
		{"decreasing x", []float64{0, 2, 1}, []float64{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSpline(tt.xs, tt.ys); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
