package trainer

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Epoch records the metrics of a single pass over the training data, plus the validation
// metrics measured right after it.
type Epoch struct {
	TrainCost     float64
	TrainAccuracy float64
	ValCost       float64
	ValAccuracy   float64
}

// History is the epoch-by-epoch record of a training run.
type History struct {
	Epochs []Epoch
}

func (h *History) add(e Epoch) {
	h.Epochs = append(h.Epochs, e)
}

// SavePlot renders the train and validation cost curves to an image file at path. The format
// follows the extension (.png, .svg, .pdf, ...).
func (h *History) SavePlot(path string) error {
	p := plot.New()
	p.Title.Text = "Training history"
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = "Cost"

	trainXY := make(plotter.XYs, len(h.Epochs))
	valXY := make(plotter.XYs, len(h.Epochs))
	for i, e := range h.Epochs {
		trainXY[i] = plotter.XY{X: float64(i + 1), Y: e.TrainCost}
		valXY[i] = plotter.XY{X: float64(i + 1), Y: e.ValCost}
	}

	if err := plotutil.AddLines(p, "train", trainXY, "validation", valXY); err != nil {
		return errors.Wrapf(err, "Failed to add cost curves to plot\n")
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "Failed to save plot to %q\n", path)
	}

	return nil
}
