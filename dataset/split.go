package dataset

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/genet/pkg/errors"
)

// defaultTestFraction is the held-out share of samples when no option
// overrides it.
const defaultTestFraction = 0.2

// SplitResult holds one prepared train/test partition for a single target
// gene. Feature columns align 1:1 with Regulators.
type SplitResult struct {
	XTrain *mat.Dense
	XTest  *mat.Dense
	YTrain *mat.VecDense
	YTest  *mat.VecDense

	// Regulators are the candidate-regulator gene labels, one per feature
	// column, in the table's original row order.
	Regulators []string

	// TrainIndex and TestIndex are the sample column indices assigned to
	// each fold. They are disjoint and together cover every sample.
	TrainIndex []int
	TestIndex  []int
}

type splitConfig struct {
	testFraction float64
	seed         int64
	seeded       bool
}

// SplitOption configures Split.
type SplitOption func(*splitConfig)

// WithSeed makes the random sample partition reproducible. Without this
// option each call draws a fresh partition.
func WithSeed(seed int64) SplitOption {
	return func(c *splitConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// WithTestFraction overrides the held-out share of samples (default 0.2).
func WithTestFraction(fraction float64) SplitOption {
	return func(c *splitConfig) {
		c.testFraction = fraction
	}
}

// Split prepares the supervised dataset for one target gene: the target row
// becomes the label vector, the remaining rows are transposed into a
// samples × regulators feature matrix, and samples are randomly partitioned
// into train and test folds. The folds are disjoint and their union covers
// every sample.
func Split(table *Table, target string, opts ...SplitOption) (*SplitResult, error) {
	cfg := splitConfig{testFraction: defaultTestFraction}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.testFraction <= 0 || cfg.testFraction >= 1 {
		return nil, errors.NewValidationError("test_fraction", "must be in (0, 1)", cfg.testFraction)
	}
	if table.NumGenes() < 2 {
		return nil, errors.NewValueError("dataset.Split", "table needs at least two gene rows (one candidate regulator)")
	}
	if table.NumSamples() < 2 {
		return nil, errors.NewValueError("dataset.Split", "table needs at least two samples to split")
	}

	y, err := table.Row(target)
	if err != nil {
		return nil, err
	}
	regulators, err := table.Regulators(target)
	if err != nil {
		return nil, err
	}

	// Transpose the remaining rows: one row per sample, one column per
	// candidate regulator, preserving the table's gene order.
	nSamples := table.NumSamples()
	features := mat.NewDense(nSamples, len(regulators), nil)
	for j, gene := range regulators {
		row, err := table.Row(gene)
		if err != nil {
			return nil, err
		}
		for i := 0; i < nSamples; i++ {
			features.Set(i, j, row[i])
		}
	}

	rng := newRand(cfg)
	perm := rng.Perm(nSamples)

	nTest := int(math.Ceil(cfg.testFraction * float64(nSamples)))
	if nTest >= nSamples {
		nTest = nSamples - 1
	}
	if nTest < 1 {
		nTest = 1
	}

	testIdx := append([]int(nil), perm[:nTest]...)
	trainIdx := append([]int(nil), perm[nTest:]...)

	return &SplitResult{
		XTrain:     selectRows(features, trainIdx),
		XTest:      selectRows(features, testIdx),
		YTrain:     selectVec(y, trainIdx),
		YTest:      selectVec(y, testIdx),
		Regulators: regulators,
		TrainIndex: trainIdx,
		TestIndex:  testIdx,
	}, nil
}

func newRand(cfg splitConfig) *rand.Rand {
	if cfg.seeded {
		return rand.New(rand.NewSource(cfg.seed))
	}
	return rand.New(rand.NewSource(rand.Int63()))
}

func selectRows(m *mat.Dense, idx []int) *mat.Dense {
	_, c := m.Dims()
	out := mat.NewDense(len(idx), c, nil)
	for i, srcRow := range idx {
		for j := 0; j < c; j++ {
			out.Set(i, j, m.At(srcRow, j))
		}
	}
	return out
}

func selectVec(values []float64, idx []int) *mat.VecDense {
	out := mat.NewVecDense(len(idx), nil)
	for i, src := range idx {
		out.SetVec(i, values[src])
	}
	return out
}
