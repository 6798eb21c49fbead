package nn

import (
	"fmt"
	"math"
)

// Regularization penalizes a weight's magnitude; Der feeds the update step.
// A nil Regularization on a link means no penalty.
type Regularization interface {
	Output(w float64) float64
	Der(w float64) float64
	fmt.Stringer
}

// RegularizationLookup resolves a penalty by its command-line name; "none"
// maps to nil.
var RegularizationLookup = map[string]Regularization{
	"none": nil,
	"l1":   L1{},
	"l2":   L2{},
}

type L1 struct{}

func (L1) Output(w float64) float64 { return math.Abs(w) }

// Der is the sign of w, taken as 0 at w == 0.
func (L1) Der(w float64) float64 {
	if w == 0 {
		return 0
	}
	return math.Copysign(1, w)
}

func (L1) String() string { return "l1" }

type L2 struct{}

func (L2) Output(w float64) float64 { return 0.5 * w * w }

func (L2) Der(w float64) float64 { return w }

func (L2) String() string { return "l2" }
