// Package main provides the mlpgrad demo CLI.
//
// It runs the reference scenario: a length-4 input through a 4×5 hidden
// layer and a length-5 output layer, printing the prediction, the loss
// and the closed-form gradients.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/exp/rand"

	"github.com/Hecramco/mlpgrad/mlp"
	"github.com/Hecramco/mlpgrad/tensor"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("mlpgrad %s\n", version)
		return
	}

	seed := flag.Uint64("seed", 42, "seed for the weight initialization draw")
	target := flag.Float64("y", 1, "target label")
	flag.Parse()

	if err := run(*seed, *target); err != nil {
		fmt.Fprintf(os.Stderr, "mlpgrad: %v\n", err)
		os.Exit(1)
	}
}

func run(seed uint64, y float64) error {
	const (
		dIn  = 4
		dHid = 5
	)

	x, err := tensor.FromSlice([]float64{0.01, 0.02, 0.03, 0.04})
	if err != nil {
		return err
	}
	w1, w2, err := mlp.InitWeights(dIn, dHid, rand.NewSource(seed))
	if err != nil {
		return err
	}

	fwd, err := mlp.Forward(x, w1, w2)
	if err != nil {
		return err
	}
	grads, err := mlp.Backward(y, x, w2, fwd)
	if err != nil {
		return err
	}

	fmt.Printf("seed:  %d\n", seed)
	fmt.Printf("x:     %v\n", x.Data())
	fmt.Printf("y:     %g\n", y)
	fmt.Printf("y_hat: %.9f\n", fwd.YHat)
	fmt.Printf("loss:  %.9f\n", mlp.Loss(y, fwd.YHat))
	fmt.Println()

	fmt.Printf("dw1 (%d, %d):\n", grads.DW1.Rows(), grads.DW1.Cols())
	for i := 0; i < grads.DW1.Rows(); i++ {
		for j := 0; j < grads.DW1.Cols(); j++ {
			fmt.Printf("  % .9f", grads.DW1.At(i, j))
		}
		fmt.Println()
	}
	fmt.Printf("dw2 (%d):\n", grads.DW2.Len())
	for k := 0; k < grads.DW2.Len(); k++ {
		fmt.Printf("  % .9f", grads.DW2.At(k))
	}
	fmt.Println()

	return nil
}
