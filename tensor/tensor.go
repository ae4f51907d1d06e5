// Copyright 2026 mlpgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the fixed-shape numeric
// aggregates used by the mlpgrad engine.
//
// Exactly two aggregate kinds exist: Vector and Matrix, both float64
// and both dimension-checked at construction time. Elementwise and
// product operations are syntactically distinct (MulElem vs Dot vs
// MulVecT) and nothing broadcasts implicitly; a mismatched shape is a
// *ShapeError, never a truncated result.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{0.01, 0.02, 0.03, 0.04})
//	w1, _ := tensor.RandnMatrix(4, 5, rand.NewSource(42))
//	z1, err := w1.MulVecT(x) // transpose(w1) · x, length 5
package tensor

import (
	"golang.org/x/exp/rand"

	"github.com/Hecramco/mlpgrad/internal/tensor"
)

// Vector is a fixed-length 1-D aggregate of float64 values.
type Vector = tensor.Vector

// Matrix is a fixed-shape row-major 2-D aggregate of float64 values.
type Matrix = tensor.Matrix

// ShapeError reports a dimension incompatibility between operands.
type ShapeError = tensor.ShapeError

// NewVector creates a zero-filled vector of length n.
func NewVector(n int) (*Vector, error) {
	return tensor.NewVector(n)
}

// FromSlice creates a vector backed by a copy of data.
func FromSlice(data []float64) (*Vector, error) {
	return tensor.FromSlice(data)
}

// NewMatrix creates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	return tensor.NewMatrix(rows, cols)
}

// MatrixFromRows creates a matrix from a slice of equal-length rows.
func MatrixFromRows(rows [][]float64) (*Matrix, error) {
	return tensor.MatrixFromRows(rows)
}

// Outer computes the outer product x ⊗ y with shape (x.Len, y.Len).
func Outer(x, y *Vector) *Matrix {
	return tensor.Outer(x, y)
}

// Zeros creates a zero-filled vector of length n.
func Zeros(n int) (*Vector, error) {
	return tensor.Zeros(n)
}

// Ones creates a vector of length n with every element set to 1.
func Ones(n int) (*Vector, error) {
	return tensor.Ones(n)
}

// Randn creates a vector of length n drawn from N(0, 1) using the
// caller-supplied source.
func Randn(n int, src rand.Source) (*Vector, error) {
	return tensor.Randn(n, src)
}

// RandnMatrix creates a rows×cols matrix drawn from N(0, 1) using the
// caller-supplied source.
func RandnMatrix(rows, cols int, src rand.Source) (*Matrix, error) {
	return tensor.RandnMatrix(rows, cols, src)
}
