package dataset

import (
	"fmt"
	"math"
)

// Feature derives one network input from a 2-D point. Its ID doubles as the
// input node id of a network fed by it.
type Feature struct {
	ID string
	F  func(x, y float64) float64
}

var (
	featureX    = Feature{ID: "x", F: func(x, y float64) float64 { return x }}
	featureY    = Feature{ID: "y", F: func(x, y float64) float64 { return y }}
	featureX2   = Feature{ID: "x2", F: func(x, y float64) float64 { return x * x }}
	featureY2   = Feature{ID: "y2", F: func(x, y float64) float64 { return y * y }}
	featureXY   = Feature{ID: "xy", F: func(x, y float64) float64 { return x * y }}
	featureSinX = Feature{ID: "sinx", F: func(x, y float64) float64 { return math.Sin(x) }}
	featureSinY = Feature{ID: "siny", F: func(x, y float64) float64 { return math.Sin(y) }}
)

// FeatureLookup resolves a feature by id.
var FeatureLookup = map[string]Feature{
	"x":    featureX,
	"y":    featureY,
	"x2":   featureX2,
	"y2":   featureY2,
	"xy":   featureXY,
	"sinx": featureSinX,
	"siny": featureSinY,
}

// DefaultFeatures is the raw coordinate pair.
func DefaultFeatures() []Feature {
	return []Feature{featureX, featureY}
}

// AllFeatures adds the squared coordinates, their product, and the sines.
func AllFeatures() []Feature {
	return []Feature{featureX, featureY, featureX2, featureY2, featureXY, featureSinX, featureSinY}
}

// SelectFeatures resolves a list of feature ids, keeping the given order.
func SelectFeatures(ids []string) ([]Feature, error) {
	features := make([]Feature, len(ids))
	for i, id := range ids {
		f, ok := FeatureLookup[id]
		if !ok {
			return nil, fmt.Errorf("unknown feature %q", id)
		}
		features[i] = f
	}
	return features, nil
}

// Inputs applies each feature to the point, in order.
func Inputs(features []Feature, x, y float64) []float64 {
	inputs := make([]float64, len(features))
	for i, f := range features {
		inputs[i] = f.F(x, y)
	}
	return inputs
}

// FeatureIDs lists the ids in order; these name the input nodes of a
// network built over the features.
func FeatureIDs(features []Feature) []string {
	ids := make([]string, len(features))
	for i, f := range features {
		ids[i] = f.ID
	}
	return ids
}
