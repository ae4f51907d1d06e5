// Copyright 2026 mlpgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mlp provides the public API for the two-layer sigmoid network
// forward/backward engine.
//
// Forward evaluates the network and returns the output together with
// the pre-activation values; Backward turns those into the exact
// closed-form gradients of the squared-error loss with respect to both
// weight aggregates. Both functions are pure and safe for concurrent
// use.
//
// Example:
//
//	src := rand.NewSource(42)
//	w1, w2, _ := mlp.InitWeights(4, 5, src)
//	x, _ := tensor.FromSlice([]float64{0.01, 0.02, 0.03, 0.04})
//
//	fwd, err := mlp.Forward(x, w1, w2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	grads, err := mlp.Backward(1, x, w2, fwd)
package mlp

import (
	"golang.org/x/exp/rand"

	"github.com/Hecramco/mlpgrad/internal/mlp"
	"github.com/Hecramco/mlpgrad/internal/tensor"
)

// ForwardResult holds the network output and the pre-activation values
// the backward pass needs.
type ForwardResult = mlp.ForwardResult

// Gradients holds the loss gradients for both weight aggregates.
type Gradients = mlp.Gradients

// ErrNonFinite is returned when NaN or Inf appears in an input.
var ErrNonFinite = mlp.ErrNonFinite

// Forward evaluates the network on x with weights w1 and w2.
func Forward(x *tensor.Vector, w1 *tensor.Matrix, w2 *tensor.Vector) (*ForwardResult, error) {
	return mlp.Forward(x, w1, w2)
}

// Backward computes the gradients of the squared-error loss given the
// target y, the input x, the output weights w2, and the matching
// Forward result.
func Backward(y float64, x *tensor.Vector, w2 *tensor.Vector, fwd *ForwardResult) (*Gradients, error) {
	return mlp.Backward(y, x, w2, fwd)
}

// Loss computes the squared-error loss 0.5 * (y - yHat)².
func Loss(y, yHat float64) float64 {
	return mlp.Loss(y, yHat)
}

// Sigmoid computes the logistic function 1 / (1 + exp(-t)).
func Sigmoid(t float64) float64 {
	return mlp.Sigmoid(t)
}

// SigmoidGrad computes the derivative of Sigmoid at t.
func SigmoidGrad(t float64) float64 {
	return mlp.SigmoidGrad(t)
}

// InitWeights draws w1 (dIn×dHid) and w2 (dHid) from N(0, 1) using the
// caller-supplied source.
func InitWeights(dIn, dHid int, src rand.Source) (*tensor.Matrix, *tensor.Vector, error) {
	return mlp.InitWeights(dIn, dHid, src)
}
