package grn

import (
	"github.com/YuminosukeSato/genet/dataset"
	"github.com/YuminosukeSato/genet/ensemble"
	"github.com/YuminosukeSato/genet/pkg/errors"
	"github.com/YuminosukeSato/genet/pkg/log"
)

// ForestMethod selects regulators by random-forest feature importance.
// A regulator is selected when it contributed any variance reduction to
// the ensemble, that is its normalized importance is above zero. Tree
// ensembles are scale-invariant so features are used unstandardized.
type ForestMethod struct {
	nEstimators    int
	maxDepth       int
	minSamplesLeaf int
	seed           int64
	hasSeed        bool
	logger         log.Logger
}

// ForestMethodOption configures a ForestMethod.
type ForestMethodOption func(*ForestMethod)

// WithForestTrees sets the number of trees in the ensemble.
func WithForestTrees(n int) ForestMethodOption {
	return func(m *ForestMethod) {
		m.nEstimators = n
	}
}

// WithForestMaxDepth sets the per-tree depth cap.
func WithForestMaxDepth(depth int) ForestMethodOption {
	return func(m *ForestMethod) {
		m.maxDepth = depth
	}
}

// WithForestMinSamplesLeaf sets the minimum samples per leaf.
func WithForestMinSamplesLeaf(n int) ForestMethodOption {
	return func(m *ForestMethod) {
		m.minSamplesLeaf = n
	}
}

// WithForestSeed fixes the ensemble's random state for reproducible runs.
func WithForestSeed(seed int64) ForestMethodOption {
	return func(m *ForestMethod) {
		m.seed = seed
		m.hasSeed = true
	}
}

// NewForestMethod creates a ForestMethod with 10 trees, depth 8 and
// 10 samples per leaf unless overridden.
func NewForestMethod(opts ...ForestMethodOption) *ForestMethod {
	m := &ForestMethod{
		nEstimators:    10,
		maxDepth:       8,
		minSamplesLeaf: 10,
		logger:         log.GetLoggerWithName("grn.forest"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name implements Method.
func (m *ForestMethod) Name() string { return "forest" }

// Infer implements Method.
func (m *ForestMethod) Infer(target string, split *dataset.SplitResult) (*TargetFit, error) {
	forestOpts := []ensemble.ForestOption{
		ensemble.WithNEstimators(m.nEstimators),
		ensemble.WithMaxDepth(m.maxDepth),
		ensemble.WithMinSamplesLeaf(m.minSamplesLeaf),
	}
	if m.hasSeed {
		forestOpts = append(forestOpts, ensemble.WithRandomState(m.seed))
	}

	est := ensemble.NewRandomForestRegressor(forestOpts...)
	if err := est.Fit(split.XTrain, split.YTrain); err != nil {
		return nil, errors.Wrapf(err, "grn: forest: fit target %q", target)
	}

	fit := &TargetFit{
		Target:     target,
		Regulators: make(map[string]struct{}),
		TrainR2:    scoreOrNaN(est, split.XTrain, split.YTrain),
		TestR2:     scoreOrNaN(est, split.XTest, split.YTest),
	}
	for j, importance := range est.FeatureImportances() {
		if importance > 0 {
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
