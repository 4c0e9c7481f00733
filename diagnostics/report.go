// Package diagnostics collects per-target fit quality during network
// inference and renders it as plots for quick visual inspection.
package diagnostics

import (
	"math"
	"sort"
	"sync"
)

// TargetScore holds the fit quality of the regression for one target gene.
type TargetScore struct {
	Gene    string
	TrainR2 float64
	TestR2  float64
}

// FitReport aggregates TargetScores across an inference run. Add is safe
// for concurrent use so workers can report as they finish.
type FitReport struct {
	mu      sync.Mutex
	method  string
	targets []TargetScore
}

// NewFitReport creates an empty report labelled with the inference method.
func NewFitReport(method string) *FitReport {
	return &FitReport{method: method}
}

// Method returns the inference method label the report was created with.
func (r *FitReport) Method() string { return r.method }

// Add records the fit scores for one target gene.
func (r *FitReport) Add(gene string, trainR2, testR2 float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets = append(r.targets, TargetScore{Gene: gene, TrainR2: trainR2, TestR2: testR2})
}

// Targets returns the recorded scores sorted by gene name.
func (r *FitReport) Targets() []TargetScore {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]TargetScore, len(r.targets))
	copy(out, r.targets)
	sort.Slice(out, func(i, j int) bool { return out[i].Gene < out[j].Gene })
	return out
}

// MeanTestR2 returns the average test R2 over all targets with a defined
// score. NaN scores (for example from zero-variance test folds) are
// skipped; with no defined scores the mean itself is NaN.
func (r *FitReport) MeanTestR2() float64 {
	var sum float64
	var n int
	for _, ts := range r.Targets() {
		if math.IsNaN(ts.TestR2) {
			continue
		}
		sum += ts.TestR2
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
