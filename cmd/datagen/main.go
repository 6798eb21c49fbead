// playnet-datagen: Generates synthetic 2D datasets as "x,y,label" lines.
//
// Usage:
//
//	playnet-datagen --dataset=spiral --n=500 --noise=0.25 --output=spiral.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/rand"

	"playnet/dataset"
)

var (
	datasetName = flag.String("dataset", "gauss", "Dataset: gauss, circle, xor, spiral, reg-plane, reg-gauss")
	n           = flag.Int("n", 500, "Number of samples")
	noise       = flag.Float64("noise", 0, "Noise in [0, 0.5]")
	seed        = flag.Uint64("seed", 42, "Random seed")
	shuffle     = flag.Bool("shuffle", true, "Shuffle samples before writing")
	outputFile  = flag.String("output", "", "Output file (default stdout)")
)

func main() {
	flag.Parse()

	generate, ok := dataset.Lookup[*datasetName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown dataset: %s\n", *datasetName)
		os.Exit(1)
	}
	if *n <= 0 {
		fmt.Fprintf(os.Stderr, "Sample count must be positive, got %d\n", *n)
		os.Exit(1)
	}
	if *noise < 0 || *noise > 0.5 {
		fmt.Fprintf(os.Stderr, "Noise must be within [0, 0.5], got %v\n", *noise)
		os.Exit(1)
	}

	src := rand.NewSource(*seed)
	examples := generate(*n, *noise, src)
	if *shuffle {
		dataset.Shuffle(examples, src)
	}

	var out io.Writer = os.Stdout
	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outputFile, err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}

	if err := dataset.WriteExamples(out, examples); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing examples: %v\n", err)
		os.Exit(1)
	}
	if *outputFile != "" {
		fmt.Printf("Wrote %d %s examples to %s\n", len(examples), *datasetName, *outputFile)
	}
}
