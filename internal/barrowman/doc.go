// Package barrowman estimates the aerodynamic center of pressure of a
// subsonic slender rocket from its geometry.
//
// Simple shapes use the closed-form Barrowman contributions:
//
//   - nose cone: fixed normal-force slope of 2.0, CoP at 0.466 L (ogive)
//     or 0.666 L (cone)
//   - fin set: the Barrowman fin equations against the rocket's reference
//     diameter
//
// Custom payload fairings, which have no closed form, go through the
// numerical slender-body pipeline in [github.com/san-kum/barrow/internal/slender].
// Per-component (x_cp, C_Na) pairs combine into one overall CoP by a
// moment-weighted average.
//
// Every operation is a pure function of the rocket geometry; computing the
// same rocket twice yields bit-identical results.
package barrowman
