package ensemble

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// signalData builds y = 3*x0 + small noise over independent standard-normal
// features, so only feature 0 carries predictive signal.
func signalData(t *testing.T, nSamples, nFeatures int, seed int64) (*mat.Dense, *mat.Dense) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	X := mat.NewDense(nSamples, nFeatures, nil)
	y := mat.NewDense(nSamples, 1, nil)
	for i := 0; i < nSamples; i++ {
		for j := 0; j < nFeatures; j++ {
			X.Set(i, j, rng.NormFloat64())
		}
		y.Set(i, 0, 3.0*X.At(i, 0)+0.1*rng.NormFloat64())
	}
	return X, y
}

func TestRandomForest_ImportanceConcentratesOnSignal(t *testing.T) {
	X, y := signalData(t, 300, 4, 1)

	forest := NewRandomForestRegressor(WithRandomState(7))
	if err := forest.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	importances := forest.FeatureImportances()
	if len(importances) != 4 {
		t.Fatalf("got %d importances, want 4", len(importances))
	}

	if importances[0] <= 0 {
		t.Fatal("signal feature importance must be strictly positive")
	}
	for j := 1; j < 4; j++ {
		if importances[j] >= importances[0] {
			t.Errorf("noise feature %d importance %v >= signal importance %v",
				j, importances[j], importances[0])
		}
	}

	// Importances are normalized.
	total := 0.0
	for _, v := range importances {
		total += v
	}
	if total < 0.999 || total > 1.001 {
		t.Errorf("importances sum to %v, want 1", total)
	}
}

func TestRandomForest_PredictTracksSignal(t *testing.T) {
	X, y := signalData(t, 300, 3, 2)

	forest := NewRandomForestRegressor(WithRandomState(3))
	if err := forest.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	score, err := forest.Score(X, y)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if score < 0.5 {
		t.Errorf("training R² = %v, want > 0.5 on a strong linear signal", score)
	}
}

func TestRandomForest_SeededReproducible(t *testing.T) {
	X, y := signalData(t, 200, 3, 4)

	first := NewRandomForestRegressor(WithRandomState(11))
	if err := first.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	second := NewRandomForestRegressor(WithRandomState(11))
	if err := second.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	a := first.FeatureImportances()
	b := second.FeatureImportances()
	for j := range a {
		if a[j] != b[j] {
			t.Fatalf("importance %d differs between identically seeded fits: %v vs %v", j, a[j], b[j])
		}
	}
}

func TestRandomForest_ConstantTarget(t *testing.T) {
	// No split can reduce variance on a constant target: every importance
	// stays zero and predictions equal the constant.
	rng := rand.New(rand.NewSource(5))
	X := mat.NewDense(60, 2, nil)
	y := mat.NewDense(60, 1, nil)
	for i := 0; i < 60; i++ {
		X.Set(i, 0, rng.NormFloat64())
		X.Set(i, 1, rng.NormFloat64())
		y.Set(i, 0, 4.2)
	}

	forest := NewRandomForestRegressor(WithRandomState(1))
	if err := forest.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	for j, v := range forest.FeatureImportances() {
		if v != 0 {
			t.Errorf("importance %d = %v, want 0 for constant target", j, v)
		}
	}

	pred, err := forest.Predict(X)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got := pred.At(0, 0); math.Abs(got-4.2) > 1e-9 {
		t.Errorf("prediction = %v, want 4.2", got)
	}
}

func TestRandomForest_Validation(t *testing.T) {
	X, y := signalData(t, 50, 2, 6)

	tests := []struct {
		name   string
		forest *RandomForestRegressor
	}{
		{"zero trees", NewRandomForestRegressor(WithNEstimators(0))},
		{"bad max features", NewRandomForestRegressor(WithMaxFeatures(1.5))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.forest.Fit(X, y); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}

	forest := NewRandomForestRegressor()
	if _, err := forest.Predict(X); err == nil {
		t.Error("expected NotFittedError from Predict before Fit")
	}
}
