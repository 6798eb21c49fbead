package heatmap

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

// GridData is the serializable form of a sampled grid. Values are
// stored row-major.
type GridData struct {
	Extent Extent    `json:"extent"`
	Rows   int       `json:"rows"`
	Cols   int       `json:"cols"`
	Values []float64 `json:"values"`
}

// SaveGrid writes a sampled grid to a JSON file.
func SaveGrid(path string, extent Extent, grid *mat.Dense) error {
	rows, cols := grid.Dims()
	gd := GridData{
		Extent: extent,
		Rows:   rows,
		Cols:   cols,
		Values: make([]float64, 0, rows*cols),
	}
	for i := 0; i < rows; i++ {
		gd.Values = append(gd.Values, grid.RawRowView(i)...)
	}

	data, err := json.MarshalIndent(&gd, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal grid: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadGrid reads a grid written by SaveGrid.
func LoadGrid(path string) (Extent, *mat.Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Extent{}, nil, fmt.Errorf("failed to read grid file: %w", err)
	}
	var gd GridData
	if err := json.Unmarshal(data, &gd); err != nil {
		return Extent{}, nil, fmt.Errorf("failed to unmarshal grid: %w", err)
	}
	if gd.Rows*gd.Cols != len(gd.Values) {
		return Extent{}, nil, fmt.Errorf("grid is %dx%d but holds %d values", gd.Rows, gd.Cols, len(gd.Values))
	}
	return gd.Extent, mat.NewDense(gd.Rows, gd.Cols, gd.Values), nil
}
