package nn

import (
	"fmt"
	"math"
)

// Activation is one of a fixed set of activation function variants: a value
// and its derivative, both over the node's total input.
type Activation interface {
	Output(x float64) float64
	Der(x float64) float64
	fmt.Stringer
}

// ActivationLookup resolves an activation by its command-line name.
var ActivationLookup = map[string]Activation{
	"identity": Identity{},
	"relu":     ReLU{},
	"sigmoid":  Sigmoid{},
	"tanh":     Tanh{},
}

type Identity struct{}

func (Identity) Output(x float64) float64 { return x }

func (Identity) Der(x float64) float64 { return 1 }

func (Identity) String() string { return "identity" }

type ReLU struct{}

func (ReLU) Output(x float64) float64 { return math.Max(0, x) }

func (ReLU) Der(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 1
}

func (ReLU) String() string { return "relu" }

type Sigmoid struct{}

func (Sigmoid) Output(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func (Sigmoid) Der(x float64) float64 {
	out := 1 / (1 + math.Exp(-x))
	return out * (1 - out)
}

func (Sigmoid) String() string { return "sigmoid" }

// Tanh saturates to exactly ±1 at ±Inf (math.Tanh guarantees this), so
// overflowing total inputs stay finite.
type Tanh struct{}

func (Tanh) Output(x float64) float64 { return math.Tanh(x) }

func (Tanh) Der(x float64) float64 {
	out := math.Tanh(x)
	return 1 - out*out
}

func (Tanh) String() string { return "tanh" }
