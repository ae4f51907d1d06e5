package tensor

import (
	"fmt"
	"math"
)

// Matrix is a fixed-shape 2-D aggregate of float64 values in row-major
// order. Dimensions are validated at construction time and never change.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix creates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid matrix shape %s (dimensions must be > 0)", MatShape(rows, cols))
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// MatrixFromRows creates a matrix from a slice of equal-length rows.
// The data is copied.
func MatrixFromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("invalid matrix shape %s (dimensions must be > 0)", MatShape(len(rows), 0))
	}
	cols := len(rows[0])
	m := &Matrix{rows: len(rows), cols: cols, data: make([]float64, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, shapeErr("MatrixFromRows", VecShape(cols), VecShape(len(row)))
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// Set stores x at row i, column j.
func (m *Matrix) Set(i, j int, x float64) {
	m.data[i*m.cols+j] = x
}

// Data returns the underlying row-major slice. The slice is shared, not
// copied; callers that need an independent copy should use Clone.
func (m *Matrix) Data() []float64 {
	return m.data
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(c.data, m.data)
	return c
}

// Equal reports whether both matrices have the same shape and elements.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// MulVecT computes transpose(m) · x, mapping a vector of length rows to
// a vector of length cols. This is the only matrix product the engine
// needs; there is no implicit transposition or broadcasting elsewhere.
func (m *Matrix) MulVecT(x *Vector) (*Vector, error) {
	if x.Len() != m.rows {
		return nil, shapeErr("MulVecT", VecShape(m.rows), VecShape(x.Len()))
	}
	out := &Vector{data: make([]float64, m.cols)}
	for i := 0; i < m.rows; i++ {
		xi := x.data[i]
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j, w := range row {
			out.data[j] += w * xi
		}
	}
	return out, nil
}

// Outer computes the outer product x ⊗ y with shape (x.Len, y.Len).
// Any pair of lengths is valid, so no error is possible.
func Outer(x, y *Vector) *Matrix {
	out := &Matrix{rows: x.Len(), cols: y.Len(), data: make([]float64, x.Len()*y.Len())}
	for i, xi := range x.data {
		row := out.data[i*out.cols : (i+1)*out.cols]
		for j, yj := range y.data {
			row[j] = xi * yj
		}
	}
	return out
}

// HasNaNOrInf reports whether any element is NaN or infinite.
func (m *Matrix) HasNaNOrInf() bool {
	for _, x := range m.data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return true
		}
	}
	return false
}

// String returns a compact representation for error messages and logs.
func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix%s", MatShape(m.rows, m.cols))
}
