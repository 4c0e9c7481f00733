package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStandardScaler_FitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1.0, 10.0,
		2.0, 20.0,
		3.0, 30.0,
		4.0, 40.0,
	})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	r, c := scaled.Dims()
	if r != 4 || c != 2 {
		t.Fatalf("unexpected shape (%d, %d)", r, c)
	}

	// Each column should have mean 0 and standard deviation 1.
	const tolerance = 1e-10
	for j := 0; j < c; j++ {
		var sum, sumSq float64
		for i := 0; i < r; i++ {
			sum += scaled.At(i, j)
		}
		mean := sum / float64(r)
		if math.Abs(mean) > tolerance {
			t.Errorf("column %d mean = %v, want 0", j, mean)
		}
		for i := 0; i < r; i++ {
			d := scaled.At(i, j) - mean
			sumSq += d * d
		}
		std := math.Sqrt(sumSq / float64(r))
		if math.Abs(std-1.0) > tolerance {
			t.Errorf("column %d std = %v, want 1", j, std)
		}
	}
}

func TestStandardScaler_InverseRoundTrip(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		5.0, -1.0,
		7.0, 0.5,
		9.0, 2.0,
	})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	restored, err := scaler.InverseTransform(scaled)
	if err != nil {
		t.Fatalf("InverseTransform() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(restored.At(i, j)-X.At(i, j)) > 1e-9 {
				t.Errorf("restored(%d,%d) = %v, want %v", i, j, restored.At(i, j), X.At(i, j))
			}
		}
	}
}

func TestStandardScaler_ConstantFeature(t *testing.T) {
	// A constant column must not cause a division by zero.
	X := mat.NewDense(3, 1, []float64{2.0, 2.0, 2.0})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		if v := scaled.At(i, 0); v != 0.0 {
			t.Errorf("scaled(%d,0) = %v, want 0", i, v)
		}
	}
}

func TestStandardScaler_NotFitted(t *testing.T) {
	scaler := NewStandardScalerDefault()
	if _, err := scaler.Transform(mat.NewDense(1, 1, []float64{1})); err == nil {
		t.Error("expected NotFittedError from Transform before Fit")
	}
}
