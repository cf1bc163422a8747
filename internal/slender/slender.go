// Package slender derives a center-of-pressure contribution for an
// arbitrary axisymmetric profile using slender-body theory: normal force
// is proportional to the axial rate of change of cross-sectional area, so
// the CoP is the area-rate-weighted centroid of axial position.
package slender

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/barrow/internal/geometry"
	"github.com/san-kum/barrow/internal/numerics"
)

// FineSamples is the size of the uniform grid the sparse profile is
// resampled onto before differentiation and quadrature.
const FineSamples = 500

// DegenerateProfileError reports a profile that cannot be interpolated.
type DegenerateProfileError struct {
	Reason string
}

func (e DegenerateProfileError) Error() string {
	return fmt.Sprintf("degenerate profile: %s", e.Reason)
}

// Resample sorts the sparse profile, collapses duplicate axial positions,
// fits a natural cubic spline and evaluates it on a uniform grid of n
// points spanning the sampled axial range.
func Resample(points []geometry.ProfilePoint, n int) (xs, ys []float64, err error) {
	sorted := append([]geometry.ProfilePoint(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	// Repeated axial positions collapse to their mean radius so the
	// spline knots stay strictly increasing.
	var kx, ky []float64
	for i := 0; i < len(sorted); {
		j := i
		sum := 0.0
		for j < len(sorted) && sorted[j].X == sorted[i].X {
			sum += sorted[j].Y
			j++
		}
		kx = append(kx, sorted[i].X)
		ky = append(ky, sum/float64(j-i))
		i = j
	}

	if len(kx) < 2 {
		return nil, nil, DegenerateProfileError{
			Reason: fmt.Sprintf("need at least 2 distinct axial positions, got %d", len(kx)),
		}
	}
	allZero := true
	for _, r := range ky {
		if r != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil, nil, DegenerateProfileError{Reason: "all radii are zero"}
	}

	spline, err := numerics.NewSpline(kx, ky)
	if err != nil {
		return nil, nil, DegenerateProfileError{Reason: err.Error()}
	}

	xs = numerics.Linspace(kx[0], kx[len(kx)-1], n)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = spline.At(x)
	}
	return xs, ys, nil
}

// Integrate computes the slender-body CoP and relative normal-force slope
// for the fine-grid profile (xs, radii).
//
// The slope is the unscaled integral of (dA/dx)^2 and is only meaningful
// as a relative weight against other contributions; it is not on the same
// physical scale as the analytic Barrowman constants.
func Integrate(xs, radii []float64) (xcp, slope float64) {
	area := make([]float64, len(radii))
	for i, r := range radii {
		area[i] = math.Pi * r * r
	}
	rate := numerics.Gradient(area, xs)

	weight := make([]float64, len(rate))
	moment := make([]float64, len(rate))
	for i, d := range rate {
		weight[i] = d * d
		moment[i] = d * d * xs[i]
	}

	den := numerics.Simpson(weight, xs)
	if den == 0 {
		// Constant cross-section: no area change, no contribution.
		return numerics.Mean(xs), 0
	}
	return numerics.Simpson(moment, xs) / den, den
}

// Contribution runs the full pipeline on a sparse profile: resample onto
// the fine grid, then integrate.
func Contribution(points []geometry.ProfilePoint) (xcp, slope float64, err error) {
	xs, ys, err := Resample(points, FineSamples)
	if err != nil {
		return 0, 0, err
	}
	xcp, slope = Integrate(xs, ys)
	return xcp, slope, nil
}
