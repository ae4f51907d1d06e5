package tensor

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Zeros creates a zero-filled vector of length n.
func Zeros(n int) (*Vector, error) {
	return NewVector(n)
}

// Ones creates a vector of length n with every element set to 1.
func Ones(n int) (*Vector, error) {
	v, err := NewVector(n)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = 1
	}
	return v, nil
}

// Randn creates a vector of length n with elements drawn from the
// standard normal distribution N(0, 1).
//
// The random source is supplied by the caller so that runs are
// reproducible; there is no process-global random state in this package.
func Randn(n int, src rand.Source) (*Vector, error) {
	v, err := NewVector(n)
	if err != nil {
		return nil, err
	}
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for i := range v.data {
		v.data[i] = dist.Rand()
	}
	return v, nil
}

// RandnMatrix creates a rows×cols matrix with elements drawn from the
// standard normal distribution N(0, 1), using the caller's source.
func RandnMatrix(rows, cols int, src rand.Source) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for i := range m.data {
		m.data[i] = dist.Rand()
	}
	return m, nil
}
