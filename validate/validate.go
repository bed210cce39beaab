// SPDX-License-Identifier: MIT

package validate

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/perron/matrix"
)

// DefaultTolerance matches the engine's default convergence epsilon.
const DefaultTolerance = 1e-3

// ErrNoEigen is returned when the reference eigen solver fails.
var ErrNoEigen = errors.New("validate: eigen decomposition failed")

// Close reports whether a and b agree within tol (absolute or relative).
func Close(a, b, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, tol, tol)
}

// VectorsClose reports whether a and b have equal length and agree
// element-wise within tol.
func VectorsClose(a, b []float64, tol float64) bool {
	return len(a) == len(b) && floats.EqualApprox(a, b, tol)
}

// MaxDeviation returns max_i |a[i]-b[i]|, or +Inf if lengths differ.
func MaxDeviation(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	if len(a) == 0 {
		return 0
	}

	return floats.Distance(a, b, math.Inf(1))
}

// SameDirection reports whether a and b are parallel: after scaling both to
// unit Euclidean norm and aligning their signs, they agree within tol.
func SameDirection(a, b []float64, tol float64) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	ua, ok := unit(a)
	if !ok {
		return false
	}
	ub, ok := unit(b)
	if !ok {
		return false
	}
	if floats.Dot(ua, ub) < 0 {
		floats.Scale(-1, ub)
	}

	return floats.EqualApprox(ua, ub, tol)
}

// unit returns a/‖a‖₂, or false for a zero or non-finite vector.
func unit(a []float64) ([]float64, bool) {
	norm := floats.Norm(a, 2)
	if norm == 0 || math.IsInf(norm, 0) || math.IsNaN(norm) {
		return nil, false
	}
	out := make([]float64, len(a))
	floats.ScaleTo(out, 1/norm, a)

	return out, true
}

// Residual returns the relative residual ‖m·v − λ·v‖₂ / (|λ|·‖v‖₂).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (from matrix).
func Residual(m matrix.Matrix, lambda float64, v []float64) (float64, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}
	a, err := toGonum(m)
	if err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}
	if err = matrix.ValidateVecLen(v, m.Cols()); err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}

	var av mat.VecDense
	av.MulVec(a, mat.NewVecDense(len(v), v))
	r := make([]float64, len(v))
	floats.AddScaledTo(r, av.RawVector().Data, -lambda, v)

	den := math.Abs(lambda) * floats.Norm(v, 2)
	if den == 0 {
		return math.Inf(1), nil
	}

	return floats.Norm(r, 2) / den, nil
}

// IsEigenpair reports whether (lambda, v) is an eigenpair of m with a relative
// residual of at most tol.
func IsEigenpair(m matrix.Matrix, lambda float64, v []float64, tol float64) (bool, error) {
	res, err := Residual(m, lambda, v)
	if err != nil {
		return false, err
	}

	return res <= tol, nil
}

// Dominant returns the eigenvalue of m with the largest modulus and its
// eigenvector (real part, unit norm, non-negative entry sum), computed by
// gonum's general eigen solver. For a positive matrix this is the Perron pair.
func Dominant(m matrix.Matrix) (float64, []float64, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, nil, fmt.Errorf("Dominant: %w", err)
	}
	a, err := toGonum(m)
	if err != nil {
		return 0, nil, fmt.Errorf("Dominant: %w", err)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenRight); !ok {
		return 0, nil, ErrNoEigen
	}
	values := eig.Values(nil)
	best := 0
	for i := range values {
		if cmplx.Abs(values[i]) > cmplx.Abs(values[best]) {
			best = i
		}
	}

	var vecs mat.CDense
	eig.VectorsTo(&vecs)
	n := len(values)
	vec := make([]float64, n)
	for i := 0; i < n; i++ {
		vec[i] = real(vecs.At(i, best))
	}
	if floats.Sum(vec) < 0 {
		floats.Scale(-1, vec)
	}
	if u, ok := unit(vec); ok {
		vec = u
	}

	return real(values[best]), vec, nil
}

// toGonum copies m into a *mat.Dense.
func toGonum(m matrix.Matrix) (*mat.Dense, error) {
	data, err := matrix.Flatten(m)
	if err != nil {
		return nil, err
	}

	return mat.NewDense(m.Rows(), m.Cols(), data), nil
}
