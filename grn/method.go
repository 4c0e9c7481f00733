package grn

import (
	"github.com/YuminosukeSato/genet/dataset"
)

// TargetFit is the outcome of regressing one target gene on its candidate
// regulators: the regulators the model selected, plus fit quality on the
// train and test folds. Scores can be NaN when a fold has no variance.
type TargetFit struct {
	Target     string
	Regulators map[string]struct{}
	TrainR2    float64
	TestR2     float64
}

// Method fits a regression of the target gene on its candidate regulators
// and reports which regulators it selected. Implementations must be safe
// for concurrent use; the predictor calls Infer for many targets at once.
type Method interface {
	// Name identifies the method in logs and reports ("lasso", "forest").
	Name() string

	// Infer fits on the train fold of the split and selects regulators.
	Infer(target string, split *dataset.SplitResult) (*TargetFit, error)
}
