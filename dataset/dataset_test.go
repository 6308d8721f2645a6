package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write test CSV: %v", err)
	}

	return path
}

// synthetic file with n rows, 5 features, and a label column in the middle
func syntheticCSV(t *testing.T, n int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("a,b,label,c,d,e\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d,%g,%d,%g,%d,%g\n", i, float64(i)*0.5, i%2, float64(i)*1.5, -i, float64(i)*0.25)
	}

	return writeCSV(t, b.String())
}

func TestLoad(t *testing.T) {
	ds, err := Load(syntheticCSV(t, 10), "label")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if ds.NumRows() != 10 {
		t.Errorf("NumRows: got %d, want 10", ds.NumRows())
	}
	if ds.NumFeatures() != 5 {
		t.Errorf("NumFeatures: got %d, want 5", ds.NumFeatures())
	}

	wantNames := []string{"a", "b", "c", "d", "e"}
	names := ds.FeatureNames()
	if len(names) != len(wantNames) {
		t.Fatalf("FeatureNames: got %v, want %v", names, wantNames)
	}
	for i := range names {
		if names[i] != wantNames[i] {
			t.Errorf("FeatureNames[%d]: got %q, want %q", i, names[i], wantNames[i])
		}
	}

	// the label column must not leak into the features
	for i := 0; i < 10; i++ {
		if ds.Label(i) != float64(i%2) {
			t.Errorf("Label(%d): got %g, want %g", i, ds.Label(i), float64(i%2))
		}

		row := ds.Row(i)
		if row[0] != float64(i) || row[2] != float64(i)*1.5 {
			t.Errorf("Row(%d): got %v", i, row)
		}
	}
}

func TestLoadMissingTarget(t *testing.T) {
	if _, err := Load(syntheticCSV(t, 5), "outcome"); err == nil {
		t.Errorf("expected an error for a missing target column")
	}
}

func TestLoadNonNumeric(t *testing.T) {
	path := writeCSV(t, "a,label\n1,0\noops,1\n")
	if _, err := Load(path, "label"); err == nil {
		t.Errorf("expected an error for a non-numeric cell")
	}
}

func TestLoadNoRows(t *testing.T) {
	path := writeCSV(t, "a,label\n")
	if _, err := Load(path, "label"); err == nil {
		t.Errorf("expected an error for a file with no data rows")
	}
}

func TestSplitSizes(t *testing.T) {
	ds, err := Load(syntheticCSV(t, 100), "label")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	train, val, err := ds.Split(0.2, 42)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	if train.NumRows() != 80 {
		t.Errorf("train rows: got %d, want 80", train.NumRows())
	}
	if val.NumRows() != 20 {
		t.Errorf("validation rows: got %d, want 20", val.NumRows())
	}
	if train.NumFeatures() != 5 || val.NumFeatures() != 5 {
		t.Errorf("features: got %d and %d, want 5", train.NumFeatures(), val.NumFeatures())
	}
}

func TestSplitDeterministic(t *testing.T) {
	ds, err := Load(syntheticCSV(t, 50), "label")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	t1, v1, err := ds.Split(0.2, 42)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	t2, v2, err := ds.Split(0.2, 42)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	for i := 0; i < t1.NumRows(); i++ {
		if t1.Row(i)[0] != t2.Row(i)[0] {
			t.Fatalf("training split differs at row %d with the same seed", i)
		}
	}
	for i := 0; i < v1.NumRows(); i++ {
		if v1.Row(i)[0] != v2.Row(i)[0] {
			t.Fatalf("validation split differs at row %d with the same seed", i)
		}
	}
}

func TestSplitDisjoint(t *testing.T) {
	ds, err := Load(syntheticCSV(t, 40), "label")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	train, val, err := ds.Split(0.25, 7)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	// feature "a" is unique per row, so it identifies the row
	seen := make(map[float64]bool)
	for i := 0; i < train.NumRows(); i++ {
		seen[train.Row(i)[0]] = true
	}
	for i := 0; i < val.NumRows(); i++ {
		if seen[val.Row(i)[0]] {
			t.Errorf("row with a=%g appears in both subsets", val.Row(i)[0])
		}
	}

	if train.NumRows()+val.NumRows() != 40 {
		t.Errorf("subsets cover %d rows, want 40", train.NumRows()+val.NumRows())
	}
}

func TestSplitBadFraction(t *testing.T) {
	ds, err := Load(syntheticCSV(t, 10), "label")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, f := range []float64{0, 1, -0.5, 1.5, 0.01} {
		if _, _, err := ds.Split(f, 42); err == nil {
			t.Errorf("expected an error for held-out fraction %g on 10 rows", f)
		}
	}
}

func TestLoadFeatures(t *testing.T) {
	path := writeCSV(t, "a,b\n1,2\n3,4\n5,6\n")

	x, names, err := LoadFeatures(path)
	if err != nil {
		t.Fatalf("LoadFeatures failed: %v", err)
	}

	r, c := x.Dims()
	if r != 3 || c != 2 {
		t.Fatalf("dims: got (%d, %d), want (3, 2)", r, c)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names: got %v", names)
	}
	if x.At(1, 0) != 3 || x.At(2, 1) != 6 {
		t.Errorf("values: got %v and %v", x.At(1, 0), x.At(2, 1))
	}
}

func TestSupplierBatches(t *testing.T) {
	ds, err := Load(syntheticCSV(t, 10), "label")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	sup, err := ds.Supplier(4)
	if err != nil {
		t.Fatalf("Supplier failed: %v", err)
	}

	// batches of 4 over 10 rows: ends after iterations 3, 7, and 9 (partial)
	wantEnds := map[int]bool{3: true, 7: true, 9: true}
	for i := 0; i < 10; i++ {
		if sup.BatchEnded(i) != wantEnds[i] {
			t.Errorf("BatchEnded(%d): got %v, want %v", i, sup.BatchEnded(i), wantEnds[i])
		}
	}

	if sup.DoneTesting(9) {
		t.Errorf("DoneTesting(9) should be false for 10 rows")
	}
	if !sup.DoneTesting(10) {
		t.Errorf("DoneTesting(10) should be true for 10 rows")
	}

	d, err := sup.Get(12)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(d.Inputs) != 5 || len(d.Outputs) != 1 {
		t.Errorf("Datum dims: got (%d, %d), want (5, 1)", len(d.Inputs), len(d.Outputs))
	}
	if d.Inputs[0] != 2 { // iteration 12 wraps to row 2
		t.Errorf("Get(12) should wrap to row 2; got a=%g", d.Inputs[0])
	}

	if _, err := ds.Supplier(0); err == nil {
		t.Errorf("expected an error for batch size 0")
	}
}
