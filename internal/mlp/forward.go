// Package mlp computes the output of a two-layer sigmoid network and the
// exact gradients of a squared-error loss with respect to both weight
// matrices, given one input vector and one scalar target.
//
// The network is
//
//	z1    = transpose(w1) · x
//	x1    = sigmoid(z1)
//	z2    = dot(w2, x1)
//	y_hat = sigmoid(z2)
//
// and the loss is L = 0.5 * (y - y_hat)².
//
// Forward and Backward are pure functions: no state is retained between
// calls, every output is a newly computed aggregate, and independent
// calls may run concurrently without coordination. A training loop that
// applies the gradients to the weights is an external concern.
package mlp

import (
	"github.com/Hecramco/mlpgrad/internal/tensor"
)

// ForwardResult holds the network output together with the
// pre-activation values the backward pass needs. Carrying z1 and z2
// forward guarantees Backward differentiates the exact forward
// evaluation instead of re-running it with different rounding.
type ForwardResult struct {
	YHat float64        // network output, strictly in (0, 1)
	Z1   *tensor.Vector // hidden pre-activation, length d_hid
	Z2   float64        // output pre-activation
}

// Forward evaluates the network on x with hidden weights w1 (d_in×d_hid)
// and output weights w2 (d_hid).
//
// Shapes are validated before any arithmetic: w1 must have x.Len() rows
// and w2.Len() columns. NaN or Inf in any argument is rejected with
// ErrNonFinite.
func Forward(x *tensor.Vector, w1 *tensor.Matrix, w2 *tensor.Vector) (*ForwardResult, error) {
	if err := checkShapes("Forward", x, w1, w2); err != nil {
		return nil, err
	}
	if err := checkFiniteVec("Forward", "x", x); err != nil {
		return nil, err
	}
	if err := checkFiniteMat("Forward", "w1", w1); err != nil {
		return nil, err
	}
	if err := checkFiniteVec("Forward", "w2", w2); err != nil {
		return nil, err
	}

	z1, err := w1.MulVecT(x)
	if err != nil {
		return nil, err
	}
	x1 := SigmoidVec(z1)
	z2, err := w2.Dot(x1)
	if err != nil {
		return nil, err
	}

	return &ForwardResult{
		YHat: Sigmoid(z2),
		Z1:   z1,
		Z2:   z2,
	}, nil
}

// Loss computes the squared-error loss 0.5 * (y - yHat)² that Backward
// differentiates.
func Loss(y, yHat float64) float64 {
	d := y - yHat
	return 0.5 * d * d
}
