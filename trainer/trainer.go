// Package trainer runs stochastic gradient descent over a network,
// one pass over the training set per step.
package trainer

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"playnet/dataset"
	"playnet/nn"
	"playnet/utils"
)

type Config struct {
	LearningRate       float64
	RegularizationRate float64
	BatchSize          int
	ErrorFunc          nn.ErrorFunction
}

type Trainer struct {
	Net      *nn.Network
	Features []dataset.Feature
	Config   Config
	Stats    *utils.TimingStats

	iter int
}

// New builds a trainer around an existing network. A non-positive batch
// size falls back to 1 and a nil error function to squared error.
func New(net *nn.Network, features []dataset.Feature, config Config) *Trainer {
	if config.BatchSize <= 0 {
		config.BatchSize = 1
	}
	if config.ErrorFunc == nil {
		config.ErrorFunc = nn.SquareError{}
	}
	return &Trainer{
		Net:      net,
		Features: features,
		Config:   config,
	}
}

// Iter returns the number of completed training steps.
func (t *Trainer) Iter() int {
	return t.iter
}

// Step runs one pass over the training examples. Every example is
// forward- and back-propagated; weights update after each full batch.
// Derivatives accumulated by a trailing partial batch carry over into
// the next step.
func (t *Trainer) Step(examples []dataset.Example) error {
	t.iter++
	for i, example := range examples {
		inputs := dataset.Inputs(t.Features, example.X, example.Y)

		start := time.Now()
		_, err := t.Net.Forward(inputs)
		if err != nil {
			return errors.Wrapf(err, "forward pass on example %d", i)
		}
		if t.Stats != nil {
			t.Stats.ForwardPassTime += time.Since(start)
		}

		start = time.Now()
		t.Net.Backward(example.Label, t.Config.ErrorFunc)
		if t.Stats != nil {
			t.Stats.BackwardPassTime += time.Since(start)
		}

		if (i+1)%t.Config.BatchSize == 0 {
			start = time.Now()
			t.Net.Update(t.Config.LearningRate, t.Config.RegularizationRate)
			if t.Stats != nil {
				t.Stats.UpdateTime += time.Since(start)
			}
		}
	}
	return nil
}

// Loss computes the mean error over the examples with a forward-only
// pass. Gradient accumulators are left untouched.
func (t *Trainer) Loss(examples []dataset.Example) (float64, error) {
	if len(examples) == 0 {
		return 0, nil
	}

	start := time.Now()
	losses := make([]float64, len(examples))
	for i, example := range examples {
		inputs := dataset.Inputs(t.Features, example.X, example.Y)
		output, err := t.Net.Forward(inputs)
		if err != nil {
			return 0, errors.Wrapf(err, "forward pass on example %d", i)
		}
		losses[i] = t.Config.ErrorFunc.Error(output, example.Label)
	}
	if t.Stats != nil {
		t.Stats.LossComputationTime += time.Since(start)
	}

	return stat.Mean(losses, nil), nil
}

// Train runs the given number of steps over the training set, reporting
// train and test loss after each step when utils.Verbose is set.
func (t *Trainer) Train(train, test []dataset.Example, steps int) error {
	trainingStart := time.Now()
	for step := 1; step <= steps; step++ {
		if err := t.Step(train); err != nil {
			return errors.Wrapf(err, "step %d", t.iter)
		}

		trainLoss, err := t.Loss(train)
		if err != nil {
			return errors.Wrap(err, "computing train loss")
		}
		testLoss, err := t.Loss(test)
		if err != nil {
			return errors.Wrap(err, "computing test loss")
		}

		if utils.Verbose {
			fmt.Fprintf(utils.Output, "Step %d of %d complete: train loss %.5f, test loss %.5f\n",
				step, steps, trainLoss, testLoss)
		}
	}
	if t.Stats != nil {
		t.Stats.TotalTime += time.Since(trainingStart)
	}

	return nil
}
