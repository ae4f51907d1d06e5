package tensor

import (
	"fmt"
	"math"
)

// Vector is a fixed-length 1-D aggregate of float64 values.
//
// The length is validated at construction time and never changes.
// All operations that combine two vectors check lengths before touching
// any element; mismatches are reported as *ShapeError.
type Vector struct {
	data []float64
}

// NewVector creates a zero-filled vector of length n.
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid vector length %d (must be > 0)", n)
	}
	return &Vector{data: make([]float64, n)}, nil
}

// FromSlice creates a vector backed by a copy of data.
func FromSlice(data []float64) (*Vector, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("invalid vector length 0 (must be > 0)")
	}
	v := &Vector{data: make([]float64, len(data))}
	copy(v.data, data)
	return v, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return len(v.data)
}

// At returns the element at index i.
func (v *Vector) At(i int) float64 {
	return v.data[i]
}

// Set stores x at index i.
func (v *Vector) Set(i int, x float64) {
	v.data[i] = x
}

// Data returns the underlying slice. The slice is shared, not copied;
// callers that need an independent copy should use Clone.
func (v *Vector) Data() []float64 {
	return v.data
}

// Clone returns a deep copy of the vector.
func (v *Vector) Clone() *Vector {
	c := &Vector{data: make([]float64, len(v.data))}
	copy(c.data, v.data)
	return c
}

// Equal reports whether both vectors have the same length and elements.
func (v *Vector) Equal(other *Vector) bool {
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Dot computes the inner product with other.
func (v *Vector) Dot(other *Vector) (float64, error) {
	if len(v.data) != len(other.data) {
		return 0, shapeErr("Dot", VecShape(len(v.data)), VecShape(len(other.data)))
	}
	var sum float64
	for i := range v.data {
		sum += v.data[i] * other.data[i]
	}
	return sum, nil
}

// MulElem computes the elementwise (Hadamard) product with other.
// This is deliberately distinct from Dot so that elementwise and
// product semantics can never be confused at a call site.
func (v *Vector) MulElem(other *Vector) (*Vector, error) {
	if len(v.data) != len(other.data) {
		return nil, shapeErr("MulElem", VecShape(len(v.data)), VecShape(len(other.data)))
	}
	out := &Vector{data: make([]float64, len(v.data))}
	for i := range v.data {
		out.data[i] = v.data[i] * other.data[i]
	}
	return out, nil
}

// Scale returns v multiplied by the scalar c.
func (v *Vector) Scale(c float64) *Vector {
	out := &Vector{data: make([]float64, len(v.data))}
	for i := range v.data {
		out.data[i] = c * v.data[i]
	}
	return out
}

// HasNaNOrInf reports whether any element is NaN or infinite.
func (v *Vector) HasNaNOrInf() bool {
	for _, x := range v.data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return true
		}
	}
	return false
}

// String returns a compact representation for error messages and logs.
func (v *Vector) String() string {
	return fmt.Sprintf("Vector%s%v", VecShape(len(v.data)), v.data)
}
