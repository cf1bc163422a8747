package barrowman

import (
	"math"

	"github.com/san-kum/barrow/internal/geometry"
)

// Contribution is one component's (CoP position, normal-force slope) pair.
// A zero slope means the component adds no aerodynamic moment.
type Contribution struct {
	XCP     float64
	CNAlpha float64
}

// noseCNAlpha is the Barrowman normal-force slope of any nose cone,
// independent of its geometry.
const noseCNAlpha = 2.0

// NoseConeContribution evaluates the closed-form nose contribution.
func NoseConeContribution(nc geometry.NoseCone) (Contribution, error) {
	switch nc.Shape {
	case "ogive":
		return Contribution{XCP: 0.466 * nc.Length, CNAlpha: noseCNAlpha}, nil
	case "cone":
		return Contribution{XCP: 0.666 * nc.Length, CNAlpha: noseCNAlpha}, nil
	default:
		return Contribution{}, UnsupportedGeometryError{Component: nc.Label(), Shape: nc.Shape}
	}
}

// FinSetContribution evaluates the Barrowman fin equations against the
// rocket's reference diameter.
func FinSetContribution(fs geometry.FinSet, refDiameter float64) (Contribution, error) {
	cr, ct := fs.RootChord, fs.TipChord
	if cr+ct == 0 {
		return Contribution{}, InvalidFinGeometryError{Component: fs.Label()}
	}

	midChordSweep := fs.Sweep + ct/2 - cr/2
	cna := (1 + refDiameter/(2*fs.Span+refDiameter)) *
		(4 * float64(fs.Count) * math.Pow(fs.Span/refDiameter, 2)) /
		(1 + math.Sqrt(1+math.Pow(2*midChordSweep/(cr+ct), 2)))

	xcp := fs.PositionFromNoseTip +
		(fs.Sweep*(cr+2*ct)+(cr*cr+ct*ct+cr*ct)/6)/(cr+ct)

	return Contribution{XCP: xcp, CNAlpha: cna}, nil
}
