package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Config holds training configuration
type Config struct {
	Name               string
	Shape              []int
	Activation         string
	OutputActivation   string
	Regularization     string
	Dataset            string
	Features           []string
	BatchSize          int
	Steps              int
	LearningRate       float64
	RegularizationRate float64
	Samples            int
	Noise              float64
	TrainRatio         float64
	Seed               uint64
	ZeroInit           bool
}

// ParseShape parses a comma-separated shape string into layer sizes
func ParseShape(shapeStr string) ([]int, error) {
	parts := strings.Split(shapeStr, ",")
	shape := make([]int, len(parts))
	for i, s := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("parsing shape entry %d: %w", i, err)
		}
		shape[i] = n
	}
	return shape, nil
}

// ValidateConfig validates training configuration
func ValidateConfig(config *Config) error {
	if len(config.Shape) < 2 {
		return fmt.Errorf("shape must have at least 2 layers (input and output)")
	}

	for i, n := range config.Shape {
		if n <= 0 {
			return fmt.Errorf("layer %d must have at least 1 node", i)
		}
	}

	if config.Shape[0] != len(config.Features) {
		return fmt.Errorf("input layer has %d nodes but %d features are selected",
			config.Shape[0], len(config.Features))
	}

	if config.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive")
	}

	if config.Steps <= 0 {
		return fmt.Errorf("steps must be positive")
	}

	if config.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be positive")
	}

	if config.RegularizationRate < 0 {
		return fmt.Errorf("regularization rate must not be negative")
	}

	if config.Samples <= 0 {
		return fmt.Errorf("sample count must be positive")
	}

	if config.Noise < 0 || config.Noise > 0.5 {
		return fmt.Errorf("noise must be within [0, 0.5]")
	}

	if config.TrainRatio <= 0 || config.TrainRatio > 1 {
		return fmt.Errorf("train ratio must be within (0, 1]")
	}

	return nil
}
