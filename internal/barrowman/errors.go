package barrowman

import "fmt"

// UnsupportedGeometryError reports a nose-cone or fairing shape tag the
// engine has no formula for.
type UnsupportedGeometryError struct {
	Component string
	Shape     string
}

func (e UnsupportedGeometryError) Error() string {
	return fmt.Sprintf("%s: unsupported shape %q", e.Component, e.Shape)
}

// InvalidFinGeometryError reports a fin set whose chord sum is zero,
// which would divide out of the Barrowman fin equations.
type InvalidFinGeometryError struct {
	Component string
}

func (e InvalidFinGeometryError) Error() string {
	return fmt.Sprintf("%s: root and tip chords sum to zero", e.Component)
}
