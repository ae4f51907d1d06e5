package mlp

import (
	"golang.org/x/exp/rand"

	"github.com/Hecramco/mlpgrad/internal/tensor"
)

// InitWeights draws hidden weights w1 (dIn×dHid) and output weights w2
// (dHid) from the standard normal distribution N(0, 1).
//
// The random source is supplied by the caller, so two calls with
// identically seeded sources produce identical weights. Forward and
// Backward themselves contain no randomness; this is the only place in
// the package that consumes entropy.
func InitWeights(dIn, dHid int, src rand.Source) (*tensor.Matrix, *tensor.Vector, error) {
	w1, err := tensor.RandnMatrix(dIn, dHid, src)
	if err != nil {
		return nil, nil, err
	}
	w2, err := tensor.Randn(dHid, src)
	if err != nil {
		return nil, nil, err
	}
	return w1, w2, nil
}
