package dataset

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func randomTable(t *testing.T, nGenes, nSamples int, seed int64) *Table {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	genes := make([]string, nGenes)
	for i := range genes {
		genes[i] = "G" + string(rune('A'+i))
	}
	samples := make([]string, nSamples)
	for i := range samples {
		samples[i] = "S" + string(rune('a'+i))
	}
	data := mat.NewDense(nGenes, nSamples, nil)
	for i := 0; i < nGenes; i++ {
		for j := 0; j < nSamples; j++ {
			data.Set(i, j, rng.NormFloat64())
		}
	}

	table, err := NewTable(genes, samples, data)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return table
}

func TestSplit_FoldsPartitionSamples(t *testing.T) {
	tests := []struct {
		name     string
		nSamples int
		fraction float64
		wantTest int
	}{
		{"ten samples default", 10, 0.2, 2},
		{"five samples", 5, 0.2, 1},
		{"fraction rounds up", 7, 0.2, 2},
		{"half split", 10, 0.5, 5},
		{"two samples", 2, 0.2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := randomTable(t, 4, tt.nSamples, 1)
			res, err := Split(table, "GA", WithSeed(7), WithTestFraction(tt.fraction))
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}

			if len(res.TestIndex) != tt.wantTest {
				t.Errorf("test fold size = %d, want %d", len(res.TestIndex), tt.wantTest)
			}
			if len(res.TrainIndex)+len(res.TestIndex) != tt.nSamples {
				t.Errorf("fold sizes %d+%d do not sum to %d",
					len(res.TrainIndex), len(res.TestIndex), tt.nSamples)
			}

			seen := make(map[int]bool)
			for _, idx := range append(append([]int(nil), res.TrainIndex...), res.TestIndex...) {
				if seen[idx] {
					t.Errorf("sample index %d appears in both folds", idx)
				}
				seen[idx] = true
			}
			if len(seen) != tt.nSamples {
				t.Errorf("folds cover %d samples, want %d", len(seen), tt.nSamples)
			}
		})
	}
}

func TestSplit_ShapesAlign(t *testing.T) {
	table := randomTable(t, 5, 12, 2)
	res, err := Split(table, "GC", WithSeed(11))
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	trainRows, trainCols := res.XTrain.Dims()
	testRows, testCols := res.XTest.Dims()

	if trainCols != 4 || testCols != 4 {
		t.Errorf("feature columns = (%d, %d), want 4 (all genes but the target)", trainCols, testCols)
	}
	if trainRows != res.YTrain.Len() {
		t.Errorf("XTrain rows %d != YTrain length %d", trainRows, res.YTrain.Len())
	}
	if testRows != res.YTest.Len() {
		t.Errorf("XTest rows %d != YTest length %d", testRows, res.YTest.Len())
	}
	if len(res.Regulators) != trainCols {
		t.Errorf("regulator labels %d != feature columns %d", len(res.Regulators), trainCols)
	}
	for _, gene := range res.Regulators {
		if gene == "GC" {
			t.Error("target gene leaked into regulator columns")
		}
	}
}

func TestSplit_FeatureValuesMatchTable(t *testing.T) {
	table := testTable(t)
	res, err := Split(table, "G2", WithSeed(3), WithTestFraction(0.25))
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	g1, _ := table.Row("G1")
	g2, _ := table.Row("G2")

	// Column 0 must be G1 (first remaining row), labels must track samples.
	for i, sampleIdx := range res.TrainIndex {
		if got := res.XTrain.At(i, 0); got != g1[sampleIdx] {
			t.Errorf("XTrain(%d,0) = %v, want table G1[%d] = %v", i, got, sampleIdx, g1[sampleIdx])
		}
		if got := res.YTrain.AtVec(i); got != g2[sampleIdx] {
			t.Errorf("YTrain(%d) = %v, want table G2[%d] = %v", i, got, sampleIdx, g2[sampleIdx])
		}
	}
}

func TestSplit_SeededReproducible(t *testing.T) {
	table := randomTable(t, 4, 20, 5)

	first, err := Split(table, "GB", WithSeed(42))
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	second, err := Split(table, "GB", WithSeed(42))
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	for i := range first.TestIndex {
		if first.TestIndex[i] != second.TestIndex[i] {
			t.Fatalf("seeded splits differ at test index %d: %d vs %d",
				i, first.TestIndex[i], second.TestIndex[i])
		}
	}
}

func TestSplit_Errors(t *testing.T) {
	table := testTable(t)

	if _, err := Split(table, "G9", WithSeed(1)); err == nil {
		t.Error("expected error for unknown target gene")
	}
	if _, err := Split(table, "G1", WithTestFraction(0)); err == nil {
		t.Error("expected validation error for zero test fraction")
	}
	if _, err := Split(table, "G1", WithTestFraction(1)); err == nil {
		t.Error("expected validation error for test fraction of 1")
	}
}
