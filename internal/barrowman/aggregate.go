package barrowman

import (
	"fmt"

	"github.com/san-kum/barrow/internal/geometry"
	"github.com/san-kum/barrow/internal/slender"
)

// Warning annotates a component whose contribution was deliberately
// dropped, without failing the computation.
type Warning struct {
	Component string
	Message   string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Component, w.Message)
}

// Result is the outcome of one overall CoP computation: the weighted CoP,
// the per-component breakdown keyed by component label, and any advisory
// warnings collected along the way.
type Result struct {
	XCP           float64
	Contributions map[string]Contribution
	Warnings      []Warning
}

// ComputeComponent evaluates a single component's contribution. Body
// tubes, irregular bodies and non-custom fairings contribute nothing in
// the simplified Barrowman model.
func ComputeComponent(c geometry.Component, refDiameter float64) (Contribution, error) {
	switch comp := c.(type) {
	case geometry.NoseCone:
		return NoseConeContribution(comp)
	case geometry.FinSet:
		return FinSetContribution(comp, refDiameter)
	case geometry.BodyTube:
		return Contribution{}, nil
	case geometry.IrregularBody:
		return Contribution{}, nil
	case geometry.PayloadFairing:
		return fairingContribution(comp)
	default:
		// Unreachable while geometry.Component stays sealed.
		return Contribution{}, fmt.Errorf("%s: unknown component variant %T", c.Label(), c)
	}
}

func fairingContribution(pf geometry.PayloadFairing) (Contribution, error) {
	switch pf.ShapeType {
	case "conical", "ogive", "parabolic":
		return Contribution{}, nil
	case "custom":
		if len(pf.Profile) == 0 {
			// Insufficient data is a fallback, never an error.
			return Contribution{}, nil
		}
		xcp, slope, err := slender.Contribution(pf.Profile)
		if err != nil {
			return Contribution{}, fmt.Errorf("%s: %w", pf.Label(), err)
		}
		return Contribution{XCP: xcp, CNAlpha: slope}, nil
	default:
		return Contribution{}, UnsupportedGeometryError{Component: pf.Label(), Shape: pf.ShapeType}
	}
}

// ComputeOverall runs every component through its contribution model and
// combines the results into one CoP via a moment-weighted average. Any
// component error aborts the whole computation; the explicit zero-slope
// fallbacks are the only silent exclusions.
func ComputeOverall(r geometry.Rocket) (*Result, error) {
	res := &Result{
		Contributions: make(map[string]Contribution, len(r.Components)),
	}

	totalSlope := 0.0
	totalMoment := 0.0

	for i, comp := range r.Components {
		contrib, err := ComputeComponent(comp, r.ReferenceDiameter)
		if err != nil {
			return nil, err
		}

		key := comp.Label()
		if _, taken := res.Contributions[key]; taken {
			key = fmt.Sprintf("%s#%d", key, i)
		}
		res.Contributions[key] = contrib

		if pf, ok := comp.(geometry.PayloadFairing); ok &&
			pf.ShapeType == "custom" && len(pf.Profile) == 0 {
			res.Warnings = append(res.Warnings, Warning{
				Component: key,
				Message:   "custom fairing has no profile points; contribution ignored",
			})
		}

		totalSlope += contrib.CNAlpha
		totalMoment += contrib.CNAlpha * contrib.XCP
	}

	if totalSlope > 0 {
		res.XCP = totalMoment / totalSlope
	}
	return res, nil
}
