package mlp

import (
	"math"

	"github.com/Hecramco/mlpgrad/internal/tensor"
)

// Sigmoid computes the logistic function 1 / (1 + exp(-t)).
//
// Defined for all reals; the result lies in the open interval (0, 1).
// Very negative inputs saturate to 0 and very positive inputs saturate
// to 1 in float64, which is acceptable numeric behavior, not a fault.
func Sigmoid(t float64) float64 {
	return 1 / (1 + math.Exp(-t))
}

// SigmoidGrad computes the derivative of Sigmoid at t,
// sigmoid(t) * (1 - sigmoid(t)).
func SigmoidGrad(t float64) float64 {
	s := Sigmoid(t)
	return s * (1 - s)
}

// SigmoidVec applies Sigmoid elementwise, returning a new vector.
func SigmoidVec(v *tensor.Vector) *tensor.Vector {
	out := v.Clone()
	data := out.Data()
	for i, t := range data {
		data[i] = Sigmoid(t)
	}
	return out
}

// SigmoidGradVec applies SigmoidGrad elementwise, returning a new vector.
func SigmoidGradVec(v *tensor.Vector) *tensor.Vector {
	out := v.Clone()
	data := out.Data()
	for i, t := range data {
		data[i] = SigmoidGrad(t)
	}
	return out
}
