package dataset

import (
	sb "github.com/Thomas-WG/skillbotml"
	"github.com/pkg/errors"
)

type supplier struct {
	ds        *Dataset
	batchSize int
}

// Supplier wraps the Dataset as a DataSupplier. Samples are given in row order, wrapping
// around once the end is reached, in mini-batches of the given size. The final batch of each
// pass may be smaller if batchSize does not divide the number of rows.
func (ds *Dataset) Supplier(batchSize int) (sb.DataSupplier, error) {
	if batchSize < 1 {
		return nil, errors.Errorf("Batch size must be >= 1 (%d)", batchSize)
	}

	return supplier{ds, batchSize}, nil
}

func (s supplier) Get(iter int) (sb.Datum, error) {
	i := iter % s.ds.NumRows()
	return sb.Datum{
		Inputs:  s.ds.Row(i),
		Outputs: []float64{s.ds.Label(i)},
	}, nil
}

func (s supplier) BatchEnded(iter int) bool {
	return (iter+1)%s.batchSize == 0 || (iter+1)%s.ds.NumRows() == 0
}

func (s supplier) DoneTesting(iter int) bool {
	return iter >= s.ds.NumRows()
}
