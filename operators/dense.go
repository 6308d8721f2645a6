package operators

import (
	"encoding/json"
	"os"

	sb "github.com/Thomas-WG/skillbotml"
	"github.com/Thomas-WG/skillbotml/initializers"
	"github.com/Thomas-WG/skillbotml/utils"
	"github.com/pkg/errors"
)

const threadSizeMultiplier int = 1

type dense struct {
	opt  sb.Optimizer
	init sb.Initializer
	pen  sb.Penalty

	Weights [][]float64 // [value][input]
	Biases  []float64

	// gradients accumulated over the current mini-batch
	gradWeights [][]float64
	gradBiases  []float64
	batchCount  int
}

// Dense returns a fully-connected layer of neurons, which implements skillbotml.Operator. The
// given Optimizer will be run on the accumulated gradients at the end of each mini-batch.
//
// Weights default to Xavier initialization and biases to zero; the initialization can be
// changed with Initializer(). opt may be nil only for Operators that are about to be loaded
// from file.
func Dense(opt sb.Optimizer) *dense {
	d := new(dense)
	d.opt = opt
	d.init = initializers.Xavier()
	return d
}

// Initializer sets the Initializer used for the weights, returning the Operator.
func (d *dense) Initializer(init sb.Initializer) *dense {
	d.init = init
	return d
}

// Penalize attaches a regularization Penalty to the weights (not the biases), returning the
// Operator.
func (d *dense) Penalize(pen sb.Penalty) *dense {
	d.pen = pen
	return d
}

func (d *dense) TypeString() string {
	return "dense"
}

func (d *dense) Init(l *sb.Layer) error {
	if l.NumInputs() == 0 {
		return errors.Errorf("Can't initialize dense Operator, layer has no inputs")
	}

	d.Weights = make([][]float64, l.Size())
	d.gradWeights = make([][]float64, l.Size())
	d.Biases = make([]float64, l.Size())
	d.gradBiases = make([]float64, l.Size())

	for v := range d.Weights {
		d.Weights[v] = make([]float64, l.NumInputs())
		d.gradWeights[v] = make([]float64, l.NumInputs())
		d.init.Set(l, d.Weights[v])
	}

	return nil
}

type denseJSON struct {
	Weights [][]float64
	Biases  []float64
	Opt     string
	Pen     string
}

// encodes the weights via JSON into 'weights.txt', with the Optimizer state beside it
func (d *dense) Save(l *sb.Layer, dirPath string) error {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Errorf("Couldn't save operator: failed to create directory to house save file")
	}

	f, err := os.Create(dirPath + "/weights.txt")
	if err != nil {
		return errors.Errorf("Couldn't save operator: failed to create file 'weights.txt'")
	}

	defer f.Close()

	j := denseJSON{Weights: d.Weights, Biases: d.Biases, Opt: d.opt.TypeString()}
	if d.pen != nil {
		j.Pen = d.pen.TypeString()
	}

	enc := json.NewEncoder(f)
	if err = enc.Encode(j); err != nil {
		return errors.Wrapf(err, "Couldn't save operator: failed to encode JSON to file\n")
	}

	if err = d.opt.Save(l, dirPath+"/opt"); err != nil {
		return errors.Wrapf(err, "Couldn't save optimizer after saving operator\n")
	}

	if d.pen != nil {
		if err = d.pen.Save(dirPath + "/pen"); err != nil {
			return errors.Wrapf(err, "Couldn't save penalty after saving operator\n")
		}
	}

	return nil
}

// decodes JSON from 'weights.txt', remaking the Optimizer (and Penalty, if any) from the
// registered constructors
func (d *dense) Load(l *sb.Layer, dirPath string) error {
	f, err := os.Open(dirPath + "/weights.txt")
	if err != nil {
		return errors.Errorf("Couldn't load operator: could not open file 'weights.txt'")
	}

	defer f.Close()

	var j denseJSON
	dec := json.NewDecoder(f)
	if err = dec.Decode(&j); err != nil {
		return errors.Wrapf(err, "Couldn't load operator: failed to decode JSON from file\n")
	}

	if l.Size() != len(j.Weights) || l.Size() != len(j.Biases) {
		return errors.Errorf("Couldn't load operator: !(l.Size() == len(weights) == len(biases)) (%d, %d, %d)", l.Size(), len(j.Weights), len(j.Biases))
	}
	for i := range j.Weights {
		if l.NumInputs() != len(j.Weights[i]) {
			return errors.Errorf("Couldn't load operator: l.NumInputs() != len(weights[%d]) (%d != %d)", i, l.NumInputs(), len(j.Weights[i]))
		}
	}

	d.Weights = j.Weights
	d.Biases = j.Biases

	if d.opt, err = sb.OptimizerFromString(j.Opt); err != nil {
		return errors.Wrapf(err, "Couldn't load operator: no Optimizer\n")
	}
	if err = d.opt.Load(l, dirPath+"/opt"); err != nil {
		return errors.Wrapf(err, "Couldn't load optimizer after loading operator\n")
	}

	if j.Pen != "" {
		if d.pen, err = sb.PenaltyFromString(j.Pen); err != nil {
			return errors.Wrapf(err, "Couldn't load operator: no Penalty\n")
		}
		if err = d.pen.Load(dirPath + "/pen"); err != nil {
			return errors.Wrapf(err, "Couldn't load penalty after loading operator\n")
		}
	}

	return nil
}

func (d *dense) Evaluate(l *sb.Layer, values []float64) error {
	inputs := l.CopyOfInputs()

	calculateValue := func(v int) {
		var sum float64
		for in := range inputs {
			sum += d.Weights[v][in] * inputs[in]
		}

		values[v] = sum + d.Biases[v]
	}

	opsPerThread, threadsPerCPU := len(inputs)*threadSizeMultiplier, 1
	utils.MultiThread(0, len(values), calculateValue, opsPerThread, threadsPerCPU)

	return nil
}

func (d *dense) InputDeltas(l *sb.Layer, add func(int, float64)) error {
	sendDelta := func(in int) {
		var sum float64
		for v := 0; v < l.Size(); v++ {
			sum += l.Delta(v) * d.Weights[v][in]
		}

		add(in, sum)
	}

	opsPerThread, threadsPerCPU := l.Size()*threadSizeMultiplier, 1
	utils.MultiThread(0, l.NumInputs(), sendDelta, opsPerThread, threadsPerCPU)

	return nil
}

func (d *dense) CanBeAdjusted(l *sb.Layer) bool {
	return true
}

func (d *dense) Adjust(l *sb.Layer) error {
	inputs := l.CopyOfInputs()

	for v := 0; v < l.Size(); v++ {
		delta := l.Delta(v)
		for in := range inputs {
			d.gradWeights[v][in] += delta * inputs[in]
		}
		d.gradBiases[v] += delta
	}

	d.batchCount++
	return nil
}

func (d *dense) AddWeights(l *sb.Layer) error {
	if d.batchCount == 0 {
		return nil
	} else if d.opt == nil {
		return errors.Errorf("Can't apply weight changes to layer %v, Operator has no Optimizer", l)
	}

	numIn := l.NumInputs()
	numWeights := l.Size() * numIn
	scale := 1 / float64(d.batchCount)

	// weights are indexed [0, numWeights), biases [numWeights, numWeights+l.Size())
	grad := func(index int) float64 {
		if index < numWeights {
			in := index % numIn
			v := index / numIn

			g := d.gradWeights[v][in] * scale
			if d.pen != nil {
				g += d.pen.Deriv(d.Weights[v][in])
			}
			return g
		}

		return d.gradBiases[index-numWeights] * scale
	}

	add := func(index int, addend float64) {
		if index < numWeights {
			in := index % numIn
			v := index / numIn

			d.Weights[v][in] += addend
			return
		}

		d.Biases[index-numWeights] += addend
	}

	if err := d.opt.Run(l, numWeights+l.Size(), grad, add); err != nil {
		return errors.Wrapf(err, "Couldn't adjust layer %v, running optimizer failed\n", l)
	}

	for v := range d.gradWeights {
		for in := range d.gradWeights[v] {
			d.gradWeights[v][in] = 0
		}
		d.gradBiases[v] = 0
	}
	d.batchCount = 0

	return nil
}
