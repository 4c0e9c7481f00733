package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "perfect prediction",
			yTrue: []float64{1, 2, 3},
			yPred: []float64{1, 2, 3},
			want:  0,
		},
		{
			name:  "unit errors",
			yTrue: []float64{1, 2, 3},
			yPred: []float64{2, 3, 4},
			want:  1,
		},
		{
			name:  "mixed errors",
			yTrue: []float64{0, 0},
			yPred: []float64{1, 3},
			want:  5,
		},
		{
			name:    "dimension mismatch",
			yTrue:   []float64{1, 2, 3},
			yPred:   []float64{1, 2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yTrue := mat.NewVecDense(len(tt.yTrue), tt.yTrue)
			yPred := mat.NewVecDense(len(tt.yPred), tt.yPred)

			got, err := MSE(yTrue, yPred)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("MSE = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRMSE(t *testing.T) {
	yTrue := mat.NewVecDense(2, []float64{0, 0})
	yPred := mat.NewVecDense(2, []float64{3, 4})

	got, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Sqrt(12.5)
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("RMSE = %v, want %v", got, want)
	}
}

func TestR2Score(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "perfect prediction",
			yTrue: []float64{1, 2, 3, 4},
			yPred: []float64{1, 2, 3, 4},
			want:  1,
		},
		{
			name:  "mean prediction scores zero",
			yTrue: []float64{1, 2, 3},
			yPred: []float64{2, 2, 2},
			want:  0,
		},
		{
			name:    "constant target is undefined",
			yTrue:   []float64{5, 5, 5},
			yPred:   []float64{4, 5, 6},
			wantErr: true,
		},
		{
			name:    "dimension mismatch",
			yTrue:   []float64{1, 2, 3},
			yPred:   []float64{1, 2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yTrue := mat.NewVecDense(len(tt.yTrue), tt.yTrue)
			yPred := mat.NewVecDense(len(tt.yPred), tt.yPred)

			got, err := R2Score(yTrue, yPred)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("R2Score = %v, want %v", got, tt.want)
			}
		})
	}
}
