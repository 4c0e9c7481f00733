// Package ensemble implements a random-forest regressor used as the
// tree-based edge-inference backend.
//
// The forest averages CART-style regression trees grown by variance
// reduction on bootstrap resamples of the training data. After fitting,
// per-feature importances aggregate the variance-reduction gain of every
// split across the ensemble; features that never host a useful split keep
// an importance of exactly zero.
package ensemble

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/genet/core/model"
	"github.com/YuminosukeSato/genet/core/parallel"
	"github.com/YuminosukeSato/genet/pkg/errors"
)

// RandomForestRegressor is an ensemble of bootstrap-aggregated regression
// trees with gain-based feature importances.
type RandomForestRegressor struct {
	model.BaseEstimator

	// Hyperparameters
	nEstimators    int
	maxDepth       int
	minSamplesLeaf int
	maxFeatures    float64 // fraction of features scanned per split
	bootstrap      bool
	randomState    int64 // negative means unseeded

	// Fitted state
	trees       []*regressionTree
	importances []float64
	NFeatures   int
}

// ForestOption is a functional option for RandomForestRegressor.
type ForestOption func(*RandomForestRegressor)

// WithNEstimators sets the number of trees (default 10).
func WithNEstimators(n int) ForestOption {
	return func(f *RandomForestRegressor) {
		f.nEstimators = n
	}
}

// WithMaxDepth sets the maximum tree depth (default 8).
func WithMaxDepth(depth int) ForestOption {
	return func(f *RandomForestRegressor) {
		f.maxDepth = depth
	}
}

// WithMinSamplesLeaf sets the minimum samples per leaf (default 10).
func WithMinSamplesLeaf(n int) ForestOption {
	return func(f *RandomForestRegressor) {
		f.minSamplesLeaf = n
	}
}

// WithMaxFeatures sets the fraction of features examined per split
// (default 1.0, all features).
func WithMaxFeatures(fraction float64) ForestOption {
	return func(f *RandomForestRegressor) {
		f.maxFeatures = fraction
	}
}

// WithBootstrap toggles bootstrap resampling per tree (default true).
func WithBootstrap(bootstrap bool) ForestOption {
	return func(f *RandomForestRegressor) {
		f.bootstrap = bootstrap
	}
}

// WithRandomState sets the random seed; a negative value keeps the forest
// unseeded.
func WithRandomState(seed int64) ForestOption {
	return func(f *RandomForestRegressor) {
		f.randomState = seed
	}
}

// NewRandomForestRegressor creates a forest with GRN-inference defaults:
// 10 trees, depth 8, at least 10 samples per leaf, bootstrap enabled.
func NewRandomForestRegressor(opts ...ForestOption) *RandomForestRegressor {
	f := &RandomForestRegressor{
		nEstimators:    10,
		maxDepth:       8,
		minSamplesLeaf: 10,
		maxFeatures:    1.0,
		bootstrap:      true,
		randomState:    -1,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fit trains the forest. Trees are grown in parallel; each tree draws its
// own deterministic RNG stream from the forest seed so results are
// reproducible when a random state is set.
func (f *RandomForestRegressor) Fit(X, y mat.Matrix) error {
	rows, cols := X.Dims()
	ry, cy := y.Dims()

	if rows == 0 || cols == 0 {
		return errors.NewModelError("RandomForestRegressor.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != rows {
		return errors.NewDimensionError("RandomForestRegressor.Fit", rows, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("RandomForestRegressor.Fit", "y must be a column vector")
	}
	if f.nEstimators < 1 {
		return errors.NewValidationError("n_estimators", "must be at least 1", f.nEstimators)
	}
	if f.maxFeatures <= 0 || f.maxFeatures > 1 {
		return errors.NewValidationError("max_features", "must be in (0, 1]", f.maxFeatures)
	}

	f.NFeatures = cols

	// Row-major copies keep the hot split-scanning loops free of
	// interface dispatch.
	xRows := make([][]float64, rows)
	yVals := make([]float64, rows)
	for i := 0; i < rows; i++ {
		xRows[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			xRows[i][j] = X.At(i, j)
		}
		yVals[i] = y.At(i, 0)
	}

	maxFeatures := int(f.maxFeatures * float64(cols))
	if maxFeatures < 1 {
		maxFeatures = 1
	}

	masterSeed := f.randomState
	if masterSeed < 0 {
		masterSeed = rand.Int63()
	}
	seeder := rand.New(rand.NewSource(masterSeed))
	treeSeeds := make([]int64, f.nEstimators)
	for b := range treeSeeds {
		treeSeeds[b] = seeder.Int63()
	}

	trees := make([]*regressionTree, f.nEstimators)
	parallel.Parallelize(f.nEstimators, func(start, end int) {
		for b := start; b < end; b++ {
			rng := rand.New(rand.NewSource(treeSeeds[b]))

			index := make([]int, rows)
			if f.bootstrap {
				for i := range index {
					index[i] = rng.Intn(rows)
				}
			} else {
				for i := range index {
					index[i] = i
				}
			}

			tree := newRegressionTree(f.maxDepth, f.minSamplesLeaf, maxFeatures, cols, rng)
			tree.fit(xRows, yVals, index)
			trees[b] = tree
		}
	})
	f.trees = trees

	// Aggregate and normalize gain importances across the ensemble.
	f.importances = make([]float64, cols)
	total := 0.0
	for _, tree := range f.trees {
		for j, gain := range tree.importances {
			f.importances[j] += gain
			total += gain
		}
	}
	if total > 0 {
		for j := range f.importances {
			f.importances[j] /= total
		}
	}

	f.SetFitted()
	return nil
}

// Predict returns the ensemble-average prediction for each input row.
func (f *RandomForestRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !f.IsFitted() {
		return nil, errors.NewNotFittedError("RandomForestRegressor", "Predict")
	}

	rows, cols := X.Dims()
	if cols != f.NFeatures {
		return nil, errors.NewDimensionError("RandomForestRegressor.Predict", f.NFeatures, cols, 1)
	}

	predictions := mat.NewDense(rows, 1, nil)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			row[j] = X.At(i, j)
		}
		sum := 0.0
		for _, tree := range f.trees {
			sum += tree.predict(row)
		}
		predictions.Set(i, 0, sum/float64(len(f.trees)))
	}
	return predictions, nil
}

// Score returns the coefficient of determination R² on the given data.
func (f *RandomForestRegressor) Score(X, y mat.Matrix) (float64, error) {
	if !f.IsFitted() {
		return 0, errors.NewNotFittedError("RandomForestRegressor", "Score")
	}

	yPred, err := f.Predict(X)
	if err != nil {
		return 0, err
	}

	rows, _ := y.Dims()
	var yMean float64
	for i := 0; i < rows; i++ {
		yMean += y.At(i, 0)
	}
	yMean /= float64(rows)

	var tss, rss float64
	for i := 0; i < rows; i++ {
		yTrue := y.At(i, 0)
		yPredVal := yPred.At(i, 0)
		tss += (yTrue - yMean) * (yTrue - yMean)
		rss += (yTrue - yPredVal) * (yTrue - yPredVal)
	}

	if tss == 0 {
		return 0, errors.Newf("total sum of squares is zero")
	}
	return 1 - rss/tss, nil
}

// FeatureImportances returns the normalized gain importance of each
// feature. Importances sum to 1 when any split was made; a feature the
// ensemble never split on has importance exactly 0.
func (f *RandomForestRegressor) FeatureImportances() []float64 {
	if f.importances == nil {
		return nil
	}
	return append([]float64(nil), f.importances...)
}
