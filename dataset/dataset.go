// Package dataset loads labeled CSV files into the matrix and vector forms used for training,
// and provides the deterministic train/validation split.
package dataset

import (
	"context"
	"math/rand"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
	"gonum.org/v1/gonum/mat"
)

// Dataset is an in-memory feature matrix with its matching label vector. Row i of X
// corresponds to y[i].
type Dataset struct {
	x        *mat.Dense
	y        []float64
	features []string
}

// Load reads the CSV file at path and separates the named target column from the rest. The
// remaining columns become the feature matrix, in file order. Every cell must parse as a
// number; the target column must exist.
func Load(path, targetColumn string) (*Dataset, error) {
	df, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	names := df.Names()
	targetIdx := -1
	for i, n := range names {
		if n == targetColumn {
			targetIdx = i
			break
		}
	}

	if targetIdx == -1 {
		return nil, errors.Errorf("Target column %q is not present in %q (columns: %v)", targetColumn, path, names)
	}

	nRows := df.NRows()
	if nRows == 0 {
		return nil, errors.Errorf("File %q has no data rows", path)
	}

	features := make([]string, 0, len(names)-1)
	for i, n := range names {
		if i != targetIdx {
			features = append(features, n)
		}
	}

	x := mat.NewDense(nRows, len(features), nil)
	y := make([]float64, nRows)

	for r := 0; r < nRows; r++ {
		c := 0
		for i, s := range df.Series {
			v, err := toFloat(s.Value(r))
			if err != nil {
				return nil, errors.Wrapf(err, "Failed to parse column %q, row %d of %q\n", names[i], r, path)
			}

			if i == targetIdx {
				y[r] = v
			} else {
				x.Set(r, c, v)
				c++
			}
		}
	}

	return &Dataset{x: x, y: y, features: features}, nil
}

// LoadFeatures reads a CSV file that has no target column, returning every column as a
// feature. It is used for running a trained network on new data.
func LoadFeatures(path string) (*mat.Dense, []string, error) {
	df, err := readCSV(path)
	if err != nil {
		return nil, nil, err
	}

	names := df.Names()
	nRows := df.NRows()
	if nRows == 0 {
		return nil, nil, errors.Errorf("File %q has no data rows", path)
	}

	x := mat.NewDense(nRows, len(names), nil)
	for r := 0; r < nRows; r++ {
		for i, s := range df.Series {
			v, err := toFloat(s.Value(r))
			if err != nil {
				return nil, nil, errors.Wrapf(err, "Failed to parse column %q, row %d of %q\n", names[i], r, path)
			}

			x.Set(r, i, v)
		}
	}

	return x, names, nil
}

func readCSV(path string) (*dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open file %q\n", path)
	}

	defer f.Close()

	df, err := imports.LoadFromCSV(context.Background(), f)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read CSV from %q\n", path)
	}

	return df, nil
}

func toFloat(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int64:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, errors.Errorf("Value %q is not numeric", t)
		}
		return f, nil
	case nil:
		return 0, errors.Errorf("Value is missing")
	default:
		return 0, errors.Errorf("Value %v has unsupported type %T", v, v)
	}
}

// NumRows returns the number of samples in the Dataset.
func (ds *Dataset) NumRows() int {
	r, _ := ds.x.Dims()
	return r
}

// NumFeatures returns the number of feature columns in the Dataset.
func (ds *Dataset) NumFeatures() int {
	_, c := ds.x.Dims()
	return c
}

// FeatureNames returns the names of the feature columns, in the order they appear in X.
func (ds *Dataset) FeatureNames() []string {
	return ds.features
}

// X returns the feature matrix.
func (ds *Dataset) X() *mat.Dense {
	return ds.x
}

// Labels returns the label vector, aligned with the rows of X.
func (ds *Dataset) Labels() []float64 {
	return ds.y
}

// Row returns the features of sample i.
func (ds *Dataset) Row(i int) []float64 {
	return ds.x.RawRowView(i)
}

// Label returns the label of sample i.
func (ds *Dataset) Label(i int) float64 {
	return ds.y[i]
}

// Split divides the Dataset into train and validation subsets. heldOut is the fraction of
// rows (rounded down) put into the validation set, and must be in (0, 1). The selection is
// a seeded shuffle, so the same seed always produces the same split.
func (ds *Dataset) Split(heldOut float64, seed int64) (train, val *Dataset, err error) {
	if heldOut <= 0 || heldOut >= 1 {
		return nil, nil, errors.Errorf("Held-out fraction must be in (0, 1) (%g)", heldOut)
	}

	n := ds.NumRows()
	nVal := int(heldOut * float64(n))
	if nVal == 0 || nVal == n {
		return nil, nil, errors.Errorf("Held-out fraction %g leaves an empty subset for %d rows", heldOut, n)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)

	val = ds.subset(perm[:nVal])
	train = ds.subset(perm[nVal:])
	return train, val, nil
}

func (ds *Dataset) subset(rows []int) *Dataset {
	x := mat.NewDense(len(rows), ds.NumFeatures(), nil)
	y := make([]float64, len(rows))

	for i, r := range rows {
		x.SetRow(i, ds.Row(r))
		y[i] = ds.y[r]
	}

	return &Dataset{x: x, y: y, features: ds.features}
}
