// Package numerics provides the small numerical kernels behind the
// slender-body pipeline: a natural cubic spline for profile fitting,
// a central-difference gradient, and composite Simpson quadrature.
// Everything operates on plain float64 slices and allocates only its
// result.
package numerics
