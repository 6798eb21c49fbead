// playnet-bestrun: Scans the analysis log and reports the best runs.
//
// Usage:
//
//	playnet-bestrun --analysis=data/out/analysis.csv my-run other-run
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"playnet/trainer"
)

var analysisPath = flag.String("analysis", filepath.Join("data", "out", "analysis.csv"), "Path to the csv run log")

func main() {
	flag.Parse()

	names := flag.Args()
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "at least one run name must be specified")
		os.Exit(1)
	}

	failed := false
	for _, name := range names {
		best, err := trainer.BestRun(*analysisPath, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error for %s: %v\n", name, err)
			failed = true
			continue
		}
		fmt.Printf("%s: test loss %.5f, train loss %.5f (dataset %s, shape %v, %s/%s, lr %.4f, %d steps)\n",
			best.Name, best.TestLoss, best.TrainLoss, best.Dataset, best.Shape,
			best.Activation, best.Regularization, best.LearningRate, best.Steps)
	}
	if failed {
		os.Exit(1)
	}
}
