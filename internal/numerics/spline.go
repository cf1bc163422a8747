package numerics

import "fmt"

// Spline is a natural cubic spline through strictly increasing knots.
// Evaluation outside the knot range extends the end segments, so the exact
// domain endpoints are always safe to evaluate.
type Spline struct {
	xs []float64
	ys []float64
	m  []float64 // second derivatives at the knots
}

func NewSpline(xs, ys []float64) (*Spline, error) {
	n := len(xs)
	if n < 2 {
		return nil, fmt.Errorf("spline needs at least 2 knots, got %d", n)
	}
	if len(ys) != n {
		return nil, fmt.Errorf("spline knot mismatch: %d x values, %d y values", n, len(ys))
	}
	for i := 1; i < n; i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("spline knots must be strictly increasing at index %d", i)
		}
	}

	s := &Spline{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		m:  make([]float64, n),
	}

	if n == 2 {
		// Two knots degenerate to a line; second derivatives stay zero.
		return s, nil
	}

	// Thomas algorithm on the interior second-derivative system with
	// natural boundary conditions m[0] = m[n-1] = 0.
	sub := make([]float64, n)
	diag := make([]float64, n)
	sup := make([]float64, n)
	rhs := make([]float64, n)

	for i := 1; i < n-1; i++ {
		hPrev := xs[i] - xs[i-1]
		hNext := xs[i+1] - xs[i]
		sub[i] = hPrev
		diag[i] = 2 * (hPrev + hNext)
		sup[i] = hNext
		rhs[i] = 6 * ((ys[i+1]-ys[i])/hNext - (ys[i]-ys[i-1])/hPrev)
	}

	for i := 2; i < n-1; i++ {
		w := sub[i] / diag[i-1]
		diag[i] -= w * sup[i-1]
		rhs[i] -= w * rhs[i-1]
	}

	for i := n - 2; i >= 1; i-- {
		s.m[i] = (rhs[i] - sup[i]*s.m[i+1]) / diag[i]
	}

	return s, nil
}

// At evaluates the spline at x. Outside [xs[0], xs[n-1]] the nearest end
// segment's cubic is used.
func (s *Spline) At(x float64) float64 {
	i := s.segment(x)
	h := s.xs[i+1] - s.xs[i]
	a := (s.xs[i+1] - x) / h
	b := (x - s.xs[i]) / h
	return a*s.ys[i] + b*s.ys[i+1] +
		((a*a*a-a)*s.m[i]+(b*b*b-b)*s.m[i+1])*h*h/6
}

func (s *Spline) segment(x float64) int {
	lo, hi := 0, len(s.xs)-2
	if x <= s.xs[0] {
		return 0
	}
	if x >= s.xs[hi] {
		return hi
	}
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.xs[mid] <= x {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
