// Package heatmap samples network outputs over a 2D grid, the raw
// material for decision boundary plots.
package heatmap

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"playnet/dataset"
	"playnet/nn"
)

// Extent is the rectangle of input space a grid covers.
type Extent struct {
	XMin float64 `json:"xMin"`
	XMax float64 `json:"xMax"`
	YMin float64 `json:"yMin"`
	YMax float64 `json:"yMax"`
}

// DefaultExtent covers the region the dataset generators draw from.
var DefaultExtent = Extent{XMin: -6, XMax: 6, YMin: -6, YMax: 6}

const DefaultDensity = 100

// Boundary samples the network output over a density x density grid.
// Row 0 holds the top of the extent (y = YMax) so the matrix prints the
// way the plane is drawn; columns run left to right.
func Boundary(net *nn.Network, features []dataset.Feature, extent Extent, density int) (*mat.Dense, error) {
	xs, ys, err := gridAxes(extent, density)
	if err != nil {
		return nil, err
	}

	grid := mat.NewDense(density, density, nil)
	for i := 0; i < density; i++ {
		for j := 0; j < density; j++ {
			out, err := net.Forward(dataset.Inputs(features, xs[j], ys[i]))
			if err != nil {
				return nil, fmt.Errorf("sampling grid point (%d,%d): %w", i, j, err)
			}
			grid.Set(i, j, out)
		}
	}
	return grid, nil
}

// NodeBoundaries samples every non-input node's output over the grid in
// a single forward pass per point, keyed by node id.
func NodeBoundaries(net *nn.Network, features []dataset.Feature, extent Extent, density int) (map[string]*mat.Dense, error) {
	xs, ys, err := gridAxes(extent, density)
	if err != nil {
		return nil, err
	}

	grids := make(map[string]*mat.Dense)
	for _, layer := range net.Layers[1:] {
		for _, ni := range layer {
			grids[net.Nodes[ni].ID] = mat.NewDense(density, density, nil)
		}
	}

	for i := 0; i < density; i++ {
		for j := 0; j < density; j++ {
			_, err := net.Forward(dataset.Inputs(features, xs[j], ys[i]))
			if err != nil {
				return nil, fmt.Errorf("sampling grid point (%d,%d): %w", i, j, err)
			}
			for _, layer := range net.Layers[1:] {
				for _, ni := range layer {
					node := &net.Nodes[ni]
					grids[node.ID].Set(i, j, node.Output)
				}
			}
		}
	}
	return grids, nil
}

func gridAxes(extent Extent, density int) (xs, ys []float64, err error) {
	if density < 2 {
		return nil, nil, fmt.Errorf("grid density must be at least 2, got %d", density)
	}
	xs = floats.Span(make([]float64, density), extent.XMin, extent.XMax)
	ys = floats.Span(make([]float64, density), extent.YMax, extent.YMin)
	return xs, ys, nil
}
