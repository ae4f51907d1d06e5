package mlp

import (
	"fmt"

	"github.com/Hecramco/mlpgrad/internal/tensor"
)

// Gradients holds the loss gradients with respect to both weight
// aggregates. Each matches its weight's shape exactly: DW1 is
// d_in×d_hid and DW2 has length d_hid.
type Gradients struct {
	DW1 *tensor.Matrix
	DW2 *tensor.Vector
}

// Backward computes the gradients of L = 0.5 * (y - y_hat)² with respect
// to w1 and w2, given the target y, the input x, the output weights w2,
// and the result of the matching Forward call.
//
// The chain rule is applied in closed form:
//
//	delta_2 = (y_hat - y) * sigmoid_grad(z2)
//	dw2     = delta_2 * sigmoid(z1)
//	delta_1 = delta_2 * w2 ⊙ sigmoid_grad(z1)
//	dw1     = x ⊗ delta_1
//
// delta_2 uses (y_hat - y), the derivative of the loss with respect to
// y_hat, so the returned gradients point in the gradient-descent
// direction without further sign adjustment.
func Backward(y float64, x *tensor.Vector, w2 *tensor.Vector, fwd *ForwardResult) (*Gradients, error) {
	if w2.Len() != fwd.Z1.Len() {
		return nil, fmt.Errorf("Backward: w2 must match z1: %w",
			&tensor.ShapeError{Op: "Backward", Want: tensor.VecShape(fwd.Z1.Len()), Got: tensor.VecShape(w2.Len())})
	}
	if err := checkFiniteScalar("Backward", "y", y); err != nil {
		return nil, err
	}
	if err := checkFiniteVec("Backward", "x", x); err != nil {
		return nil, err
	}
	if err := checkFiniteVec("Backward", "w2", w2); err != nil {
		return nil, err
	}

	delta2 := (fwd.YHat - y) * SigmoidGrad(fwd.Z2)

	x1 := SigmoidVec(fwd.Z1)
	dw2 := x1.Scale(delta2)

	// delta_1 = delta_2 * w2 ⊙ sigmoid_grad(z1), elementwise over d_hid
	sg, err := w2.MulElem(SigmoidGradVec(fwd.Z1))
	if err != nil {
		return nil, err
	}
	delta1 := sg.Scale(delta2)

	return &Gradients{
		DW1: tensor.Outer(x, delta1),
		DW2: dw2,
	}, nil
}
