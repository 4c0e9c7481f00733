package grn

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/genet/dataset"
	"github.com/YuminosukeSato/genet/linear"
	"github.com/YuminosukeSato/genet/pkg/errors"
	"github.com/YuminosukeSato/genet/pkg/log"
	"github.com/YuminosukeSato/genet/preprocessing"
)

// LassoMethod selects regulators by L1-regularized linear regression.
// Features are standardized before fitting so the penalty treats all
// candidate regulators equally; a regulator is selected when its
// coefficient survives the penalty (is nonzero).
type LassoMethod struct {
	alpha   float64
	maxIter int
	tol     float64
	logger  log.Logger
}

// LassoMethodOption configures a LassoMethod.
type LassoMethodOption func(*LassoMethod)

// WithLassoAlpha sets the L1 regularization strength.
func WithLassoAlpha(alpha float64) LassoMethodOption {
	return func(m *LassoMethod) {
		m.alpha = alpha
	}
}

// WithLassoMaxIter sets the coordinate descent iteration cap.
func WithLassoMaxIter(maxIter int) LassoMethodOption {
	return func(m *LassoMethod) {
		m.maxIter = maxIter
	}
}

// WithLassoTol sets the convergence tolerance.
func WithLassoTol(tol float64) LassoMethodOption {
	return func(m *LassoMethod) {
		m.tol = tol
	}
}

// NewLassoMethod creates a LassoMethod with alpha=0.1, maxIter=1000 and
// tol=1e-4 unless overridden.
func NewLassoMethod(opts ...LassoMethodOption) *LassoMethod {
	m := &LassoMethod{
		alpha:   0.1,
		maxIter: 1000,
		tol:     1e-4,
		logger:  log.GetLoggerWithName("grn.lasso"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name implements Method.
func (m *LassoMethod) Name() string { return "lasso" }

// Infer implements Method.
func (m *LassoMethod) Infer(target string, split *dataset.SplitResult) (*TargetFit, error) {
	scaler := preprocessing.NewStandardScalerDefault()
	xTrain, err := scaler.FitTransform(split.XTrain)
	if err != nil {
		return nil, errors.Wrapf(err, "grn: lasso: scale train features for %q", target)
	}
	xTest, err := scaler.Transform(split.XTest)
	if err != nil {
		return nil, errors.Wrapf(err, "grn: lasso: scale test features for %q", target)
	}

	est := linear.NewLasso(
		linear.WithAlpha(m.alpha),
		linear.WithMaxIter(m.maxIter),
		linear.WithTol(m.tol),
	)
	if err := est.Fit(xTrain, split.YTrain); err != nil {
		return nil, errors.Wrapf(err, "grn: lasso: fit target %q", target)
	}

	fit := &TargetFit{
		Target:     target,
		Regulators: make(map[string]struct{}),
		TrainR2:    scoreOrNaN(est, xTrain, split.YTrain),
		TestR2:     scoreOrNaN(est, xTest, split.YTest),
	}
	for j, w := range est.GetWeights() {
		if w != 0 {
			fit.Regulators[split.Regulators[j]] = struct{}{}
		}
	}

	m.logger.Debug("target fitted",
		log.TargetGeneKey, target,
		log.RegulatorsKey, len(fit.Regulators),
		log.TrainScoreKey, fit.TrainR2,
		log.TestScoreKey, fit.TestR2,
	)
	return fit, nil
}

type scorer interface {
	Score(X, y mat.Matrix) (float64, error)
}

// scoreOrNaN returns the R2 score, or NaN when the score is undefined
// (for example a zero-variance fold).
func scoreOrNaN(est scorer, X, y mat.Matrix) float64 {
	score, err := est.Score(X, y)
	if err != nil {
		return math.NaN()
	}
	return score
}
