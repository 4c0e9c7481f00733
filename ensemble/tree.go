package ensemble

import (
	"math/rand"
	"sort"
)

// node is a single split or leaf of a regression tree.
type node struct {
	feature   int
	threshold float64
	left      *node
	right     *node
	value     float64
	isLeaf    bool
}

// splitInfo describes the best split found for one node.
type splitInfo struct {
	feature    int
	threshold  float64
	gain       float64
	leftIndex  []int
	rightIndex []int
}

// regressionTree is a CART-style tree grown by variance reduction.
type regressionTree struct {
	root           *node
	maxDepth       int
	minSamplesLeaf int
	maxFeatures    int
	rng            *rand.Rand

	// importances accumulates the total variance-reduction gain credited
	// to each feature during growth.
	importances []float64
}

func newRegressionTree(maxDepth, minSamplesLeaf, maxFeatures, nFeatures int, rng *rand.Rand) *regressionTree {
	return &regressionTree{
		maxDepth:       maxDepth,
		minSamplesLeaf: minSamplesLeaf,
		maxFeatures:    maxFeatures,
		rng:            rng,
		importances:    make([]float64, nFeatures),
	}
}

// fit grows the tree on the sample rows selected by index.
func (t *regressionTree) fit(X [][]float64, y []float64, index []int) {
	t.root = t.grow(X, y, index, 0)
}

func (t *regressionTree) grow(X [][]float64, y []float64, index []int, depth int) *node {
	if depth >= t.maxDepth || len(index) < 2*t.minSamplesLeaf {
		return &node{isLeaf: true, value: meanAt(y, index)}
	}

	best := t.bestSplit(X, y, index)
	if best == nil {
		return &node{isLeaf: true, value: meanAt(y, index)}
	}

	t.importances[best.feature] += best.gain

	return &node{
		feature:   best.feature,
		threshold: best.threshold,
		left:      t.grow(X, y, best.leftIndex, depth+1),
		right:     t.grow(X, y, best.rightIndex, depth+1),
	}
}

// bestSplit scans a random subset of features for the variance-reduction
// maximizing threshold. Returns nil when no split improves on the parent.
func (t *regressionTree) bestSplit(X [][]float64, y []float64, index []int) *splitInfo {
	nFeatures := len(t.importances)
	candidates := t.rng.Perm(nFeatures)
	if t.maxFeatures < nFeatures {
		candidates = candidates[:t.maxFeatures]
	}

	parentSSE := sseAt(y, index)

	var best *splitInfo
	sorted := make([]int, len(index))
	for _, feature := range candidates {
		copy(sorted, index)
		f := feature
		sort.Slice(sorted, func(a, b int) bool {
			return X[sorted[a]][f] < X[sorted[b]][f]
		})

		// Prefix statistics allow O(1) SSE evaluation of every cut point.
		var leftSum, leftSumSq float64
		totalSum, totalSumSq := sumsAt(y, index)

		for i := 0; i < len(sorted)-1; i++ {
			yv := y[sorted[i]]
			leftSum += yv
			leftSumSq += yv * yv

			nLeft := i + 1
			nRight := len(sorted) - nLeft
			if nLeft < t.minSamplesLeaf || nRight < t.minSamplesLeaf {
				continue
			}
			// Cannot cut between identical feature values.
			if X[sorted[i]][f] == X[sorted[i+1]][f] {
				continue
			}

			leftSSE := leftSumSq - leftSum*leftSum/float64(nLeft)
			rightSum := totalSum - leftSum
			rightSSE := (totalSumSq - leftSumSq) - rightSum*rightSum/float64(nRight)

			gain := parentSSE - leftSSE - rightSSE
			if gain <= 0 {
				continue
			}
			if best == nil || gain > best.gain {
				threshold := (X[sorted[i]][f] + X[sorted[i+1]][f]) / 2
				best = &splitInfo{
					feature:    f,
					threshold:  threshold,
					gain:       gain,
					leftIndex:  append([]int(nil), sorted[:nLeft]...),
					rightIndex: append([]int(nil), sorted[nLeft:]...),
				}
			}
		}
	}
	return best
}

// predict returns the leaf value reached by one sample row.
func (t *regressionTree) predict(row []float64) float64 {
	n := t.root
	for !n.isLeaf {
		if row[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

func meanAt(y []float64, index []int) float64 {
	if len(index) == 0 {
		return 0
	}
	sum := 0.0
	for _, i := range index {
		sum += y[i]
	}
	return sum / float64(len(index))
}

func sumsAt(y []float64, index []int) (sum, sumSq float64) {
	for _, i := range index {
		sum += y[i]
		sumSq += y[i] * y[i]
	}
	return sum, sumSq
}

func sseAt(y []float64, index []int) float64 {
	sum, sumSq := sumsAt(y, index)
	return sumSq - sum*sum/float64(len(index))
}
