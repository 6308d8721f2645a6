package optimizers

import (
	"encoding/json"
	"math"
	"os"

	sb "github.com/Thomas-WG/skillbotml"
	"github.com/Thomas-WG/skillbotml/hyperparams"
	"github.com/pkg/errors"
)

type adam struct {
	rate sb.HyperParameter

	Beta1, Beta2, Epsilon float64

	// first and second moment estimates, lazily sized to the number of weights
	M, V []float64
	T    int
}

const (
	defaultAdamRate  float64 = 0.001
	defaultBeta1     float64 = 0.9
	defaultBeta2     float64 = 0.999
	defaultAdamEps   float64 = 1e-8
)

// Adam returns the Adam Optimizer, which adapts a separate step size for each weight from
// running estimates of the first and second moments of its gradient.
func Adam() *adam {
	return &adam{
		rate:    hyperparams.Constant(defaultAdamRate),
		Beta1:   defaultBeta1,
		Beta2:   defaultBeta2,
		Epsilon: defaultAdamEps,
	}
}

// Rate sets the learning rate of the Optimizer, returning it.
func (a *adam) Rate(rate sb.HyperParameter) *adam {
	a.rate = rate
	return a
}

// Betas sets the decay rates of the two moment estimates, returning the Optimizer.
func (a *adam) Betas(beta1, beta2 float64) *adam {
	a.Beta1, a.Beta2 = beta1, beta2
	return a
}

func (a *adam) TypeString() string {
	return "adam"
}

func (a *adam) Run(l *sb.Layer, size int, grad func(int) float64, add func(int, float64)) error {
	if a.M == nil {
		a.M = make([]float64, size)
		a.V = make([]float64, size)
	} else if len(a.M) != size {
		return errors.Errorf("Optimizer was previously run with a different number of weights (%d != %d)", len(a.M), size)
	}

	a.T++
	lr := a.rate.Value(a.T)

	b1Corr := 1 - math.Pow(a.Beta1, float64(a.T))
	b2Corr := 1 - math.Pow(a.Beta2, float64(a.T))

	for i := 0; i < size; i++ {
		g := grad(i)

		a.M[i] = a.Beta1*a.M[i] + (1-a.Beta1)*g
		a.V[i] = a.Beta2*a.V[i] + (1-a.Beta2)*g*g

		mHat := a.M[i] / b1Corr
		vHat := a.V[i] / b2Corr

		add(i, -1*lr*mHat/(math.Sqrt(vHat)+a.Epsilon))
	}

	return nil
}

type adamJSON struct {
	Beta1, Beta2, Epsilon float64
	M, V                  []float64
	T                     int
	Rate                  string
}

func (a *adam) Save(l *sb.Layer, dirPath string) error {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Errorf("Failed to create directory %q", dirPath)
	}

	f, err := os.Create(dirPath + "/adam.txt")
	if err != nil {
		return errors.Errorf("Failed to create file %q in %q", "adam.txt", dirPath)
	}

	defer f.Close()

	j := adamJSON{
		Beta1: a.Beta1, Beta2: a.Beta2, Epsilon: a.Epsilon,
		M: a.M, V: a.V, T: a.T,
		Rate: a.rate.TypeString(),
	}

	enc := json.NewEncoder(f)
	if err = enc.Encode(j); err != nil {
		return errors.Wrapf(err, "Failed to encode JSON to file %q in %q\n", "adam.txt", dirPath)
	}

	return a.rate.Save(dirPath + "/rate")
}

func (a *adam) Load(l *sb.Layer, dirPath string) error {
	f, err := os.Open(dirPath + "/adam.txt")
	if err != nil {
		return errors.Errorf("Failed to open file %q in %q", "adam.txt", dirPath)
	}

	defer f.Close()

	var j adamJSON
	dec := json.NewDecoder(f)
	if err = dec.Decode(&j); err != nil {
		return errors.Wrapf(err, "Failed to decode JSON from file %q in %q\n", "adam.txt", dirPath)
	}

	a.Beta1, a.Beta2, a.Epsilon = j.Beta1, j.Beta2, j.Epsilon
	a.M, a.V, a.T = j.M, j.V, j.T

	if a.rate, err = sb.HyperParameterFromString(j.Rate); err != nil {
		return errors.Wrapf(err, "Failed to remake learning rate\n")
	}

	return a.rate.Load(dirPath + "/rate")
}
