package penalties

import (
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"
)

// **********************************************
// L1 (Lasso)
// **********************************************

type l1 float64

// λ is a small value close to 0 where λ > 0
func L1(λ float64) *l1 {
	p := l1(λ)
	return &p
}

// λ is a small value close to 0 where λ > 0
func Lasso(λ float64) *l1 {
	return L1(λ)
}

func (p *l1) TypeString() string {
	return "l1-lasso"
}

func (p *l1) Deriv(weight float64) float64 {
	return float64(*p) * math.Copysign(1, weight)
}

func (p *l1) Save(dirPath string) error {
	return saveLambda(dirPath, float64(*p))
}

func (p *l1) Load(dirPath string) error {
	λ, err := loadLambda(dirPath)
	*p = l1(λ)
	return err
}

// **********************************************
// L2 (Ridge)
// **********************************************

type l2 float64

// λ is a small value close to 0 where λ > 0
func L2(λ float64) *l2 {
	p := l2(λ)
	return &p
}

// λ is a small value close to 0 where λ > 0
func Ridge(λ float64) *l2 {
	return L2(λ)
}

func (p *l2) TypeString() string {
	return "l2-ridge"
}

func (p *l2) Deriv(weight float64) float64 {
	return 2 * float64(*p) * weight
}

func (p *l2) Save(dirPath string) error {
	return saveLambda(dirPath, float64(*p))
}

func (p *l2) Load(dirPath string) error {
	λ, err := loadLambda(dirPath)
	*p = l2(λ)
	return err
}

func saveLambda(dirPath string, λ float64) error {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Errorf("Failed to create directory %q", dirPath)
	}

	f, err := os.Create(dirPath + "/lambda.txt")
	if err != nil {
		return errors.Errorf("Failed to create file %q in %q", "lambda.txt", dirPath)
	}

	defer f.Close()

	enc := json.NewEncoder(f)
	if err = enc.Encode(λ); err != nil {
		return errors.Errorf("Failed to encode JSON to file %q in %q", "lambda.txt", dirPath)
	}

	return nil
}

func loadLambda(dirPath string) (float64, error) {
	f, err := os.Open(dirPath + "/lambda.txt")
	if err != nil {
		return 0, errors.Errorf("Failed to open file %q in %q", "lambda.txt", dirPath)
	}

	defer f.Close()

	var λ float64

	dec := json.NewDecoder(f)
	if err = dec.Decode(&λ); err != nil {
		return 0, errors.Wrapf(err, "Failed to decode JSON from file %q in %q\n", "lambda.txt", dirPath)
	}

	return λ, nil
}
