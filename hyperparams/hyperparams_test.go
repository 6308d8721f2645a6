package hyperparams

import (
	"path/filepath"
	"testing"
)

func TestConstant(t *testing.T) {
	c := Constant(0.01)

	for _, iter := range []int{0, 1, 1000} {
		if v := c.Value(iter); v != 0.01 {
			t.Errorf("Value(%d): got %g, want 0.01", iter, v)
		}
	}
}

func TestStep(t *testing.T) {
	s := Step(0.1).Add(100, 0.01).Add(1000, 0.001)

	cases := []struct {
		iter int
		want float64
	}{
		{0, 0.1},
		{99, 0.1},
		{100, 0.01},
		{999, 0.01},
		{1000, 0.001},
		{5000, 0.001},
	}

	for _, c := range cases {
		if v := s.Value(c.iter); v != c.want {
			t.Errorf("Value(%d): got %g, want %g", c.iter, v, c.want)
		}
	}
}

func TestStepSaveLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "rate")

	s := Step(0.1).Add(50, 0.05)
	if err := s.Save(dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Step(0)
	if err := loaded.Load(dir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, iter := range []int{0, 49, 50, 200} {
		if loaded.Value(iter) != s.Value(iter) {
			t.Errorf("Value(%d): got %g, want %g", iter, loaded.Value(iter), s.Value(iter))
		}
	}
}
