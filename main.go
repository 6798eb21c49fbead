package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"playnet/dataset"
	"playnet/nn"
	"playnet/trainer"
	"playnet/utils"
)

var analysisFilepath = filepath.Join("data", "out", "analysis.csv")

func main() {
	if len(os.Args) < 3 {
		fmt.Println("a command and a name must be specified, e.g. playnet train my-run")
		os.Exit(1)
	}
	subCommand := os.Args[1]
	name := os.Args[2]

	switch subCommand {
	case "train":
		trainFlags := flag.NewFlagSet("train", flag.ContinueOnError)
		flagDataset := trainFlags.String("dataset", "gauss", "dataset to generate: gauss, circle, xor, spiral, reg-plane, reg-gauss")
		flagShape := trainFlags.String("shape", "2,4,2,1", "comma-separated nodes per layer, input layer first")
		flagActivation := trainFlags.String("activation", "tanh", "hidden layer activation function")
		flagOutputActivation := trainFlags.String("output-activation", "tanh", "output layer activation function")
		flagRegularization := trainFlags.String("regularization", "none", "link regularization: none, l1, l2")
		flagLearningRate := trainFlags.Float64("rate", .03, "rate is the learning rate")
		flagRegRate := trainFlags.Float64("reg-rate", 0, "regularization rate")
		flagBatchSize := trainFlags.Int("batch", 10, "batch size")
		flagSteps := trainFlags.Int("steps", 100, "training steps, one pass over the training set each")
		flagSamples := trainFlags.Int("samples", 500, "number of samples to generate")
		flagNoise := trainFlags.Float64("noise", 0, "dataset noise in [0, 0.5]")
		flagTrainRatio := trainFlags.Float64("ratio", 0.5, "fraction of samples used for training")
		flagFeatures := trainFlags.String("features", "x,y", "comma-separated input features")
		flagAllFeatures := trainFlags.Bool("all-features", false, "use every input feature (overrides -features)")
		flagSeed := trainFlags.Uint64("seed", 0, "random seed (0 seeds from the clock)")
		flagZeroInit := trainFlags.Bool("zero-init", false, "start all weights and biases at zero")

		err := trainFlags.Parse(os.Args[3:])
		if err != nil {
			fmt.Printf("parsing train flags: %s\n", err.Error())
			os.Exit(1)
		}

		shape, err := utils.ParseShape(*flagShape)
		if err != nil {
			fmt.Println("Error parsing shape:", err)
			os.Exit(1)
		}

		featureIDs := strings.Split(*flagFeatures, ",")
		if *flagAllFeatures {
			featureIDs = dataset.FeatureIDs(dataset.AllFeatures())
		}
		if _, err := dataset.SelectFeatures(featureIDs); err != nil {
			fmt.Println("Error selecting features:", err)
			os.Exit(1)
		}

		if _, ok := dataset.Lookup[*flagDataset]; !ok {
			fmt.Println("invalid dataset")
			os.Exit(1)
		}
		if _, ok := nn.ActivationLookup[*flagActivation]; !ok {
			fmt.Println("invalid activation")
			os.Exit(1)
		}
		if _, ok := nn.ActivationLookup[*flagOutputActivation]; !ok {
			fmt.Println("invalid output activation")
			os.Exit(1)
		}
		if _, ok := nn.RegularizationLookup[*flagRegularization]; !ok {
			fmt.Println("invalid regularization")
			os.Exit(1)
		}

		seed := *flagSeed
		if seed == 0 {
			seed = uint64(time.Now().UTC().UnixNano())
		}

		config := utils.Config{
			Name:               name,
			Shape:              shape,
			Activation:         *flagActivation,
			OutputActivation:   *flagOutputActivation,
			Regularization:     *flagRegularization,
			Dataset:            *flagDataset,
			Features:           featureIDs,
			BatchSize:          *flagBatchSize,
			Steps:              *flagSteps,
			LearningRate:       *flagLearningRate,
			RegularizationRate: *flagRegRate,
			Samples:            *flagSamples,
			Noise:              *flagNoise,
			TrainRatio:         *flagTrainRatio,
			Seed:               seed,
			ZeroInit:           *flagZeroInit,
		}
		if err := utils.ValidateConfig(&config); err != nil {
			fmt.Printf("invalid configuration: %s\n", err.Error())
			os.Exit(1)
		}

		train(config)

	case "data":
		dataFlags := flag.NewFlagSet("data", flag.ContinueOnError)
		flagN := dataFlags.Int("n", 500, "number of samples")
		flagNoise := dataFlags.Float64("noise", 0, "dataset noise in [0, 0.5]")
		flagSeed := dataFlags.Uint64("seed", 42, "random seed")
		flagOutput := dataFlags.String("output", "", "output file (default stdout)")

		err := dataFlags.Parse(os.Args[3:])
		if err != nil {
			fmt.Printf("parsing data flags: %s\n", err.Error())
			os.Exit(1)
		}

		generate, ok := dataset.Lookup[name]
		if !ok {
			fmt.Println("invalid dataset")
			os.Exit(1)
		}

		examples := generate(*flagN, *flagNoise, rand.NewSource(*flagSeed))

		out := os.Stdout
		if *flagOutput != "" {
			file, err := os.Create(*flagOutput)
			if err != nil {
				fmt.Printf("creating output file: %s\n", err.Error())
				os.Exit(1)
			}
			defer file.Close()
			out = file
		}
		if err := dataset.WriteExamples(out, examples); err != nil {
			fmt.Printf("writing examples: %s\n", err.Error())
			os.Exit(1)
		}

	default:
		fmt.Printf("unknown command: %s\n", subCommand)
		os.Exit(1)
	}
}

func train(config utils.Config) {
	src := rand.NewSource(config.Seed)
	generate := dataset.Lookup[config.Dataset]

	examples := generate(config.Samples, config.Noise, src)
	dataset.Shuffle(examples, src)
	trainSet, testSet := dataset.Split(examples, config.TrainRatio)
	fmt.Printf("Generated %d examples (%d train, %d test)\n", len(examples), len(trainSet), len(testSet))

	features, err := dataset.SelectFeatures(config.Features)
	if err != nil {
		fmt.Printf("selecting features: %s\n", err.Error())
		os.Exit(1)
	}

	net, err := nn.Build(config.Shape,
		nn.ActivationLookup[config.Activation],
		nn.ActivationLookup[config.OutputActivation],
		nn.RegularizationLookup[config.Regularization],
		config.Features, config.ZeroInit, src)
	if err != nil {
		fmt.Printf("building network: %s\n", err.Error())
		os.Exit(1)
	}

	fmt.Println("Started training...")
	tr := trainer.New(net, features, trainer.Config{
		LearningRate:       config.LearningRate,
		RegularizationRate: config.RegularizationRate,
		BatchSize:          config.BatchSize,
	})
	if err := tr.Train(trainSet, testSet, config.Steps); err != nil {
		fmt.Printf("training network: %s\n", err.Error())
		os.Exit(1)
	}

	trainLoss, err := tr.Loss(trainSet)
	if err != nil {
		fmt.Printf("computing train loss: %s\n", err.Error())
		os.Exit(1)
	}
	testLoss, err := tr.Loss(testSet)
	if err != nil {
		fmt.Printf("computing test loss: %s\n", err.Error())
		os.Exit(1)
	}

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
	if err := trainer.AppendRunLog(analysisFilepath, rec); err != nil {
		fmt.Printf("writing run log: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Println("Training complete")
}
