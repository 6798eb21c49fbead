// playnet-train: Standalone single-process trainer for playnet
//
// Usage:
//
//	playnet-train --dataset=spiral --shape=2,8,8,1 --steps=300 --lr=0.03
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/rand"

	"playnet/dataset"
	"playnet/heatmap"
	"playnet/nn"
	"playnet/trainer"
	"playnet/utils"
)

var (
	runName        = flag.String("name", "run", "Run name used in the analysis log")
	datasetName    = flag.String("dataset", "gauss", "Dataset: gauss, circle, xor, spiral, reg-plane, reg-gauss")
	shapeStr       = flag.String("shape", "2,4,2,1", "Comma-separated nodes per layer, input layer first")
	activation     = flag.String("activation", "tanh", "Hidden activation: identity, relu, sigmoid, tanh")
	outActivation  = flag.String("output-activation", "tanh", "Output activation")
	regularization = flag.String("regularization", "none", "Link regularization: none, l1, l2")
	learningRate   = flag.Float64("lr", 0.03, "Learning rate")
	regRate        = flag.Float64("reg-rate", 0, "Regularization rate")
	batchSize      = flag.Int("batch", 10, "Batch size")
	steps          = flag.Int("steps", 100, "Training steps, one pass over the training set each")
	samples        = flag.Int("samples", 500, "Number of generated samples")
	noise          = flag.Float64("noise", 0, "Dataset noise in [0, 0.5]")
	trainRatio     = flag.Float64("train-ratio", 0.5, "Fraction of samples used for training")
	featureIDs     = flag.String("features", "x,y", "Comma-separated features: x, y, x2, y2, xy, sinx, siny")
	seed           = flag.Uint64("seed", 42, "Random seed")
	zeroInit       = flag.Bool("zero-init", false, "Start all weights and biases at zero")
	verbose        = flag.Bool("verbose", true, "Verbose output")
	analysisPath   = flag.String("analysis", "", "Append run results to this csv log")
	boundaryPath   = flag.String("boundary", "", "Write the decision boundary grid to this JSON file")
)

func main() {
	flag.Parse()
	utils.Verbose = *verbose

	features, err := dataset.SelectFeatures(strings.Split(*featureIDs, ","))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	shape, err := utils.ParseShape(*shapeStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing shape: %v\n", err)
		os.Exit(1)
	}

	config := &utils.Config{
		Name:               *runName,
		Shape:              shape,
		Activation:         *activation,
		OutputActivation:   *outActivation,
		Regularization:     *regularization,
		Dataset:            *datasetName,
		Features:           dataset.FeatureIDs(features),
		BatchSize:          *batchSize,
		Steps:              *steps,
		LearningRate:       *learningRate,
		RegularizationRate: *regRate,
		Samples:            *samples,
		Noise:              *noise,
		TrainRatio:         *trainRatio,
		Seed:               *seed,
		ZeroInit:           *zeroInit,
	}
	if err := utils.ValidateConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	generate, ok := dataset.Lookup[config.Dataset]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown dataset: %s\n", config.Dataset)
		os.Exit(1)
	}
	act, ok := nn.ActivationLookup[config.Activation]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown activation: %s\n", config.Activation)
		os.Exit(1)
	}
	outAct, ok := nn.ActivationLookup[config.OutputActivation]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown output activation: %s\n", config.OutputActivation)
		os.Exit(1)
	}
	reg, ok := nn.RegularizationLookup[config.Regularization]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown regularization: %s\n", config.Regularization)
		os.Exit(1)
	}

	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                       playnet Trainer                        ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")
	fmt.Printf("\nConfiguration:\n")
	fmt.Printf("  Dataset:       %s\n", config.Dataset)
	fmt.Printf("  Shape:         %v\n", config.Shape)
	fmt.Printf("  Features:      %s\n", strings.Join(config.Features, ","))
	fmt.Printf("  Activation:    %s / %s\n", config.Activation, config.OutputActivation)
	fmt.Printf("  Learning Rate: %.4f\n", config.LearningRate)
	fmt.Printf("  Reg / Rate:    %s / %.4f\n", config.Regularization, config.RegularizationRate)
	fmt.Printf("  Batch Size:    %d\n", config.BatchSize)
	fmt.Printf("  Steps:         %d\n", config.Steps)
	fmt.Printf("  Samples:       %d (noise %.2f)\n", config.Samples, config.Noise)
	fmt.Printf("  Seed:          %d\n", config.Seed)
	fmt.Println()

	stats := &utils.TimingStats{}
	src := rand.NewSource(config.Seed)

	fmt.Printf("Generating %d samples...\n", config.Samples)
	start := time.Now()
	examples := generate(config.Samples, config.Noise, src)
	dataset.Shuffle(examples, src)
	trainSet, testSet := dataset.Split(examples, config.TrainRatio)
	stats.DataGenTime = time.Since(start)
	fmt.Printf("Split into %d train / %d test examples\n", len(trainSet), len(testSet))

	start = time.Now()
	net, err := nn.Build(config.Shape, act, outAct, reg, config.Features, config.ZeroInit, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building network: %v\n", err)
		os.Exit(1)
	}
	stats.BuildTime = time.Since(start)
	fmt.Printf("Network: %d nodes, %d links\n", len(net.Nodes), len(net.Links))

	tr := trainer.New(net, features, trainer.Config{
		LearningRate:       config.LearningRate,
		RegularizationRate: config.RegularizationRate,
		BatchSize:          config.BatchSize,
	})
	tr.Stats = stats

	fmt.Println("\nStarting training...")
	var bar *progressbar.ProgressBar
	if !*verbose {
		bar = progressbar.Default(int64(config.Steps))
	}
	totalStart := time.Now()

	for step := 1; step <= config.Steps; step++ {
		stepStart := time.Now()
		if err := tr.Step(trainSet); err != nil {
			fmt.Fprintf(os.Stderr, "Error at step %d: %v\n", step, err)
			os.Exit(1)
		}

		if bar != nil {
			bar.Add(1)
			continue
		}

		trainLoss, err := tr.Loss(trainSet)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing train loss: %v\n", err)
			os.Exit(1)
		}
		testLoss, err := tr.Loss(testSet)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing test loss: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Step %d/%d | Train loss: %.6f | Test loss: %.6f | Time: %.2fs\n",
			step, config.Steps, trainLoss, testLoss, time.Since(stepStart).Seconds())
	}

	stats.TotalTime = time.Since(totalStart)

	trainLoss, err := tr.Loss(trainSet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing train loss: %v\n", err)
		os.Exit(1)
	}
	testLoss, err := tr.Loss(testSet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing test loss: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nTraining complete! Total time: %.2fs\n", stats.TotalTime.Seconds())
	fmt.Printf("Final train loss: %.6f | Final test loss: %.6f\n", trainLoss, testLoss)

	dead := 0
	for _, link := range net.Links {
		if link.IsDead {
			dead++
		}
	}
	if dead > 0 {
		fmt.Printf("Pruned links: %d of %d\n", dead, len(net.Links))
	}

	utils.PrintTimingStats(stats, config.Steps)

	if *analysisPath != "" {
		rec := trainer.RunRecord{
			Name:               config.Name,
			Dataset:            config.Dataset,
			Shape:              config.Shape,
			Activation:         config.Activation,
			Regularization:     config.Regularization,
			LearningRate:       config.LearningRate,
			RegularizationRate: config.RegularizationRate,
			BatchSize:          config.BatchSize,
			Steps:              tr.Iter(),
			EndTime:            time.Now().Unix(),
			TrainLoss:          trainLoss,
			TestLoss:           testLoss,
		}
		if err := trainer.AppendRunLog(*analysisPath, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing run log: %v\n", err)
			os.Exit(1)
		}
		best, err := trainer.BestRun(*analysisPath, config.Name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading run log: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Best run for %s so far: test loss %.5f (shape %v, %s)\n",
			config.Name, best.TestLoss, best.Shape, best.Activation)
	}

	if *boundaryPath != "" {
		fmt.Printf("Saving decision boundary to %s...\n", *boundaryPath)
		grid, err := heatmap.Boundary(net, features, heatmap.DefaultExtent, heatmap.DefaultDensity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error sampling boundary: %v\n", err)
			os.Exit(1)
		}
		if err := heatmap.SaveGrid(*boundaryPath, heatmap.DefaultExtent, grid); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving boundary: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Done!")
	}
}
