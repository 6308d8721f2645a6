package skillbotml_test

import (
	"math"
	"math/rand"
	"path/filepath"
	"testing"

	sb "github.com/Thomas-WG/skillbotml"
	"github.com/Thomas-WG/skillbotml/costfuncs"
	"github.com/Thomas-WG/skillbotml/hyperparams"
	"github.com/Thomas-WG/skillbotml/operators"
	"github.com/Thomas-WG/skillbotml/optimizers"
	"gonum.org/v1/gonum/mat"
)

func fastAdam() sb.Optimizer {
	return optimizers.Adam().Rate(hyperparams.Constant(0.05))
}

// inputs and expected outputs of the OR function
var orData = [][][]float64{
	{{0, 0}, {0}},
	{{0, 1}, {1}},
	{{1, 0}, {1}},
	{{1, 1}, {1}},
}

func newTestNet(t *testing.T) *sb.Network {
	t.Helper()

	net := new(sb.Network)

	if err := net.AddInput(2); err != nil {
		t.Fatalf("AddInput failed: %v", err)
	}
	if err := net.Add("hidden", operators.Dense(fastAdam()), 3); err != nil {
		t.Fatalf("failed to add hidden layer: %v", err)
	}
	if err := net.Add("hidden tanh", operators.Tanh(), 3); err != nil {
		t.Fatalf("failed to add hidden activation: %v", err)
	}
	if err := net.Add("outputs", operators.Dense(fastAdam()), 1); err != nil {
		t.Fatalf("failed to add output layer: %v", err)
	}
	if err := net.Add("outputs logistic", operators.Logistic(), 1); err != nil {
		t.Fatalf("failed to add output activation: %v", err)
	}
	if err := net.Finalize(costfuncs.BinaryCrossEntropy()); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	return net
}

func TestNetworkLearnsOR(t *testing.T) {
	rand.Seed(42)
	net := newTestNet(t)

	data, err := sb.Data(orData, 4)
	if err != nil {
		t.Fatalf("Data failed: %v", err)
	}

	before, _, err := net.Test(data, sb.CorrectRound)
	if err != nil {
		t.Fatalf("Test before training failed: %v", err)
	}

	err = net.Train(sb.TrainArgs{
		TrainData:    data,
		RunCondition: sb.TrainUntil(2000),
		IsCorrect:    sb.CorrectRound,
	})
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	after, correct, err := net.Test(data, sb.CorrectRound)
	if err != nil {
		t.Fatalf("Test after training failed: %v", err)
	}

	if after >= before {
		t.Errorf("cost did not decrease: %g -> %g", before, after)
	}
	if correct != 1 {
		t.Errorf("network did not learn OR: %g correct", correct)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	rand.Seed(17)
	net := newTestNet(t)

	data, err := sb.Data(orData, 2)
	if err != nil {
		t.Fatalf("Data failed: %v", err)
	}

	err = net.Train(sb.TrainArgs{
		TrainData:    data,
		RunCondition: sb.TrainUntil(100),
	})
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "model")
	if err := net.Save(dir, false); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := sb.Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.InputSize() != net.InputSize() || loaded.OutputSize() != net.OutputSize() {
		t.Fatalf("loaded network has dims (%d, %d), want (%d, %d)",
			loaded.InputSize(), loaded.OutputSize(), net.InputSize(), net.OutputSize())
	}

	for _, d := range orData {
		want, err := net.GetOutputs(d[0])
		if err != nil {
			t.Fatalf("GetOutputs on original failed: %v", err)
		}

		got, err := loaded.GetOutputs(d[0])
		if err != nil {
			t.Fatalf("GetOutputs on loaded failed: %v", err)
		}

		for i := range want {
			if math.Abs(want[i]-got[i]) > 1e-12 {
				t.Errorf("outputs for %v differ: got %g, want %g", d[0], got[i], want[i])
			}
		}
	}
}

func TestSaveNoOverwrite(t *testing.T) {
	net := newTestNet(t)

	dir := filepath.Join(t.TempDir(), "model")
	if err := net.Save(dir, false); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := net.Save(dir, false); err == nil {
		t.Errorf("expected an error when saving over an existing directory")
	}
	if err := net.Save(dir, true); err != nil {
		t.Errorf("Save with overwrite failed: %v", err)
	}
}

func TestPredict(t *testing.T) {
	net := newTestNet(t)

	x := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})

	preds, err := net.Predict(x)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	r, c := preds.Dims()
	if r != 4 || c != 1 {
		t.Fatalf("dims: got (%d, %d), want (4, 1)", r, c)
	}

	for i := 0; i < r; i++ {
		if v := preds.At(i, 0); v < 0 || v > 1 {
			t.Errorf("prediction %d out of [0, 1]: %g", i, v)
		}
	}

	// column count mismatch must be rejected
	if _, err := net.Predict(mat.NewDense(2, 3, nil)); err == nil {
		t.Errorf("expected an error for mismatched input columns")
	}
}

func TestTrainRejectsMisfitData(t *testing.T) {
	net := newTestNet(t)

	// three inputs instead of the two the network expects
	data, err := sb.Data([][][]float64{{{0, 0, 0}, {0}}}, 1)
	if err != nil {
		t.Fatalf("Data failed: %v", err)
	}

	err = net.Train(sb.TrainArgs{
		TrainData:    data,
		RunCondition: sb.TrainUntil(10),
	})
	if err == nil {
		t.Errorf("expected an error for training data that does not fit")
	}
}

func TestNetworkConstructionErrors(t *testing.T) {
	net := new(sb.Network)

	if err := net.Add("first", operators.Identity(), 1); err != sb.ErrNoInput {
		t.Errorf("Add before AddInput: got %v, want ErrNoInput", err)
	}

	if err := net.AddInput(0); err == nil {
		t.Errorf("expected an error for input size 0")
	}
	if err := net.AddInput(2); err != nil {
		t.Fatalf("AddInput failed: %v", err)
	}
	if err := net.AddInput(2); err == nil {
		t.Errorf("expected an error for a second input layer")
	}

	if err := net.Add("a", operators.Identity(), 2); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := net.Add("a", operators.Identity(), 2); err == nil {
		t.Errorf("expected an error for a duplicate layer name")
	}
	if err := net.Add(`with"quote`, operators.Identity(), 2); err == nil {
		t.Errorf("expected an error for a name containing a double-quote")
	}
	if err := net.Add("nil op", nil, 2); err == nil {
		t.Errorf("expected an error for a nil Operator")
	}

	if err := net.Finalize(nil); err == nil {
		t.Errorf("expected an error for a nil CostFunction")
	}
	if err := net.Finalize(costfuncs.MeanSquaredError()); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if err := net.Add("late", operators.Identity(), 2); err != sb.ErrNetFinalized {
		t.Errorf("Add after Finalize: got %v, want ErrNetFinalized", err)
	}
}
