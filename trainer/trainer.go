package trainer

import (
	"fmt"
	"math/rand"

	sb "github.com/Thomas-WG/skillbotml"
	"github.com/Thomas-WG/skillbotml/costfuncs"
	"github.com/Thomas-WG/skillbotml/dataset"
	"github.com/Thomas-WG/skillbotml/hyperparams"
	"github.com/Thomas-WG/skillbotml/operators"
	"github.com/Thomas-WG/skillbotml/optimizers"
	"github.com/Thomas-WG/skillbotml/penalties"
	"github.com/pkg/errors"
)

// Run executes a full training run described by cfg: load, split, build, train with
// per-epoch validation, save. It returns the per-epoch History.
func Run(cfg Config) (*History, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rand.Seed(cfg.Seed)

	ds, err := dataset.Load(cfg.InputPath, cfg.TargetColumn)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to load dataset\n")
	}

	fmt.Printf("Loaded %d rows with %d features from %q\n", ds.NumRows(), ds.NumFeatures(), cfg.InputPath)

	train, val, err := ds.Split(cfg.HeldOutFraction, cfg.Seed)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to split dataset\n")
	}

	fmt.Printf("Split into %d training rows and %d validation rows\n", train.NumRows(), val.NumRows())

	net, err := buildNetwork(cfg, ds.NumFeatures())
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to build network\n")
	}

	trainSup, err := train.Supplier(cfg.BatchSize)
	if err != nil {
		return nil, err
	}

	valSup, err := val.Supplier(1)
	if err != nil {
		return nil, err
	}

	hist := new(History)
	nTrain := train.NumRows()

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		var trainCost, trainCorrect float64

		err := net.Train(sb.TrainArgs{
			TrainData:    trainSup,
			RunCondition: sb.TrainUntil(nTrain),
			SendStatus:   sb.Every(nTrain),
			IsCorrect:    sb.CorrectRound,
			Update: func(r sb.Result) {
				trainCost, trainCorrect = r.Cost, r.Correct
			},
		})
		if err != nil {
			return nil, errors.Wrapf(err, "Training failed during epoch %d\n", epoch)
		}

		valCost, valCorrect, err := net.Test(valSup, sb.CorrectRound)
		if err != nil {
			return nil, errors.Wrapf(err, "Validation failed after epoch %d\n", epoch)
		}

		hist.add(Epoch{
			TrainCost:     trainCost,
			TrainAccuracy: trainCorrect,
			ValCost:       valCost,
			ValAccuracy:   valCorrect,
		})

		fmt.Printf("Epoch %d/%d -- cost: %.4f, accuracy: %.4f, val cost: %.4f, val accuracy: %.4f\n",
			epoch, cfg.Epochs, trainCost, trainCorrect, valCost, valCorrect)
	}

	if err := net.Save(cfg.OutputPath, true); err != nil {
		return nil, errors.Wrapf(err, "Failed to save model to %q\n", cfg.OutputPath)
	}

	fmt.Printf("Saved model to %q\n", cfg.OutputPath)

	if cfg.HistoryPath != "" {
		if err := hist.SavePlot(cfg.HistoryPath); err != nil {
			return nil, errors.Wrapf(err, "Failed to plot history to %q\n", cfg.HistoryPath)
		}
	}

	return hist, nil
}

func newOptimizer(cfg Config) sb.Optimizer {
	rate := hyperparams.Constant(cfg.LearningRate)

	if cfg.Optimizer == "sgd" {
		return optimizers.SGD().Rate(rate)
	}

	return optimizers.Adam().Rate(rate)
}

func newCostFunction(cfg Config) sb.CostFunction {
	if cfg.Loss == "mean-squared-error" {
		return costfuncs.MeanSquaredError()
	}

	return costfuncs.BinaryCrossEntropy()
}

func activation(name string) sb.Operator {
	switch name {
	case "relu":
		return operators.ReLU()
	case "leaky-relu":
		return operators.LeakyReLU(0.01)
	case "tanh":
		return operators.Tanh()
	case "identity":
		return operators.Identity()
	default:
		return operators.Logistic()
	}
}

func newDense(cfg Config) sb.Operator {
	d := operators.Dense(newOptimizer(cfg))
	if cfg.WeightDecay > 0 {
		d = d.Penalize(penalties.Ridge(cfg.WeightDecay))
	}

	return d
}

// buildNetwork constructs the dense stack cfg describes: each hidden layer followed by its
// activation, then a single logistic output.
func buildNetwork(cfg Config, numFeatures int) (*sb.Network, error) {
	net := new(sb.Network)

	if err := net.AddInput(numFeatures); err != nil {
		return nil, err
	}

	for i, size := range cfg.HiddenSizes {
		name := fmt.Sprintf("hidden %d", i+1)
		if err := net.Add(name, newDense(cfg), size); err != nil {
			return nil, err
		}

		act := cfg.Activations[i]
		if err := net.Add(name+" "+act, activation(act), size); err != nil {
			return nil, err
		}
	}

	if err := net.Add("outputs", newDense(cfg), 1); err != nil {
		return nil, err
	}
	if err := net.Add("outputs logistic", operators.Logistic(), 1); err != nil {
		return nil, err
	}

	if err := net.Finalize(newCostFunction(cfg)); err != nil {
		return nil, err
	}

	return net, nil
}
