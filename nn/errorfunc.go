package nn

import (
	"fmt"
	"math"
)

// ErrorFunction scores a network output against a target, and gives the
// derivative of that score with respect to the output.
type ErrorFunction interface {
	Error(output, target float64) float64
	Der(output, target float64) float64
	fmt.Stringer
}

// ErrorLookup resolves an error function by its command-line name.
var ErrorLookup = map[string]ErrorFunction{
	"square": SquareError{},
}

type SquareError struct{}

func (SquareError) Error(output, target float64) float64 {
	return 0.5 * math.Pow(output-target, 2)
}

func (SquareError) Der(output, target float64) float64 { return output - target }

func (SquareError) String() string { return "square" }
