// playnet-infer: Evaluates query points against an exported decision
// boundary grid, no network required.
//
// Usage:
//
//	playnet-infer --boundary=grid.json 1.2,-0.5 0,3
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"playnet/heatmap"
)

var boundaryPath = flag.String("boundary", "", "Boundary grid JSON file written by playnet-train")

func main() {
	flag.Parse()

	if *boundaryPath == "" {
		fmt.Fprintln(os.Stderr, "a boundary grid file must be specified")
		os.Exit(1)
	}
	points := flag.Args()
	if len(points) == 0 {
		fmt.Fprintln(os.Stderr, "at least one x,y query point must be specified")
		os.Exit(1)
	}

	extent, grid, err := heatmap.LoadGrid(*boundaryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading grid: %v\n", err)
		os.Exit(1)
	}
	rows, cols := grid.Dims()

	for _, point := range points {
		x, y, err := parsePoint(point)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing point %q: %v\n", point, err)
			os.Exit(1)
		}
		if x < extent.XMin || x > extent.XMax || y < extent.YMin || y > extent.YMax {
			fmt.Fprintf(os.Stderr, "Point (%v, %v) is outside the grid extent [%v, %v]x[%v, %v]\n",
				x, y, extent.XMin, extent.XMax, extent.YMin, extent.YMax)
			os.Exit(1)
		}

		// Row 0 holds y = YMax, so rows count downward.
		j := int(math.Round((x - extent.XMin) / (extent.XMax - extent.XMin) * float64(cols-1)))
		i := int(math.Round((extent.YMax - y) / (extent.YMax - extent.YMin) * float64(rows-1)))
		value := grid.At(i, j)

		label := "+1"
		if value < 0 {
			label = "-1"
		}
		fmt.Printf("(%g, %g) -> %.5f (label %s)\n", x, y, value, label)
	}
}

func parsePoint(s string) (x, y float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected x,y, got %d values", len(parts))
	}
	x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
