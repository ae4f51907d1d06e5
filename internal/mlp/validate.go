package mlp

import (
	"errors"
	"fmt"
	"math"

	"github.com/Hecramco/mlpgrad/internal/tensor"
)

// ErrNonFinite is returned when NaN or Inf appears in an input at call
// time. The fault is reported at the call site that introduced it rather
// than letting it surface as a finite-looking wrong answer downstream.
var ErrNonFinite = errors.New("non-finite input")

// checkShapes validates the dimension invariant shared by Forward and
// Backward: w1.rows == x.len and w1.cols == w2.len. It runs before any
// arithmetic so a mismatch can never produce a wrong-shaped output.
func checkShapes(op string, x *tensor.Vector, w1 *tensor.Matrix, w2 *tensor.Vector) error {
	if w1.Rows() != x.Len() {
		return fmt.Errorf("%s: w1 rows must match x: %w", op,
			&tensor.ShapeError{Op: op, Want: tensor.MatShape(x.Len(), w1.Cols()), Got: tensor.MatShape(w1.Rows(), w1.Cols())})
	}
	if w1.Cols() != w2.Len() {
		return fmt.Errorf("%s: w2 must match w1 columns: %w", op,
			&tensor.ShapeError{Op: op, Want: tensor.VecShape(w1.Cols()), Got: tensor.VecShape(w2.Len())})
	}
	return nil
}

// checkFiniteVec rejects NaN/Inf in a named vector argument.
func checkFiniteVec(op, name string, v *tensor.Vector) error {
	if v.HasNaNOrInf() {
		return fmt.Errorf("%s: %s contains NaN or Inf: %w", op, name, ErrNonFinite)
	}
	return nil
}

// checkFiniteMat rejects NaN/Inf in a named matrix argument.
func checkFiniteMat(op, name string, m *tensor.Matrix) error {
	if m.HasNaNOrInf() {
		return fmt.Errorf("%s: %s contains NaN or Inf: %w", op, name, ErrNonFinite)
	}
	return nil
}

// checkFiniteScalar rejects a NaN/Inf scalar argument.
func checkFiniteScalar(op, name string, x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("%s: %s is NaN or Inf: %w", op, name, ErrNonFinite)
	}
	return nil
}
