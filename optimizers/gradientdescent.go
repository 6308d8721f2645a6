package optimizers

import (
	"encoding/json"
	"os"

	sb "github.com/Thomas-WG/skillbotml"
	"github.com/Thomas-WG/skillbotml/hyperparams"
	"github.com/pkg/errors"
)

type gradientdescent struct {
	rate sb.HyperParameter

	// the number of completed weight updates, used to evaluate the learning rate
	T int
}

const defaultSGDRate float64 = 0.01

// SGD returns a plain stochastic gradient descent Optimizer, stepping each weight against its
// gradient by the learning rate.
func SGD() *gradientdescent {
	return &gradientdescent{rate: hyperparams.Constant(defaultSGDRate)}
}

// GradientDescent is a proxy for SGD
func GradientDescent() *gradientdescent {
	return SGD()
}

// Rate sets the learning rate of the Optimizer, returning it.
func (g *gradientdescent) Rate(rate sb.HyperParameter) *gradientdescent {
	g.rate = rate
	return g
}

func (g *gradientdescent) TypeString() string {
	return "gradient-descent"
}

func (g *gradientdescent) Run(l *sb.Layer, size int, grad func(int) float64, add func(int, float64)) error {
	g.T++
	lr := g.rate.Value(g.T)

	for i := 0; i < size; i++ {
		add(i, -1*lr*grad(i))
	}

	return nil
}

type sgdJSON struct {
	T    int
	Rate string
}

func (g *gradientdescent) Save(l *sb.Layer, dirPath string) error {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Errorf("Failed to create directory %q", dirPath)
	}

	f, err := os.Create(dirPath + "/sgd.txt")
	if err != nil {
		return errors.Errorf("Failed to create file %q in %q", "sgd.txt", dirPath)
	}

	defer f.Close()

	enc := json.NewEncoder(f)
	if err = enc.Encode(sgdJSON{T: g.T, Rate: g.rate.TypeString()}); err != nil {
		return errors.Wrapf(err, "Failed to encode JSON to file %q in %q\n", "sgd.txt", dirPath)
	}

	return g.rate.Save(dirPath + "/rate")
}

func (g *gradientdescent) Load(l *sb.Layer, dirPath string) error {
	f, err := os.Open(dirPath + "/sgd.txt")
	if err != nil {
		return errors.Errorf("Failed to open file %q in %q", "sgd.txt", dirPath)
	}

	defer f.Close()

	var j sgdJSON
	dec := json.NewDecoder(f)
	if err = dec.Decode(&j); err != nil {
		return errors.Wrapf(err, "Failed to decode JSON from file %q in %q\n", "sgd.txt", dirPath)
	}

	g.T = j.T
	if g.rate, err = sb.HyperParameterFromString(j.Rate); err != nil {
		return errors.Wrapf(err, "Failed to remake learning rate\n")
	}

	return g.rate.Load(dirPath + "/rate")
}
