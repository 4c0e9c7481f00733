// Package genet infers gene regulatory networks (GRNs) from gene-expression
// matrices using supervised regression, and scores predicted edge sets
// against a gold-standard reference.
//
// GeNet treats GRN inference as a per-gene regression problem: for each
// target gene, a model is fitted that predicts the target's expression from
// the expression of every other gene, and the genes with non-zero influence
// on the fit are reported as predicted regulators of the target.
//
// # Features
//
// - Two interchangeable inference strategies: L1-regularized (Lasso) linear
// regression and a random-forest regression ensemble
// - Intersection-over-union scoring of predicted edge sets against a
// gold-standard edge list
// - Reproducible runs through explicit seed configuration
// - Optional parallel fan-out across target genes
// - Robust error handling with structured warnings
//
// # Quick Start
//
// Predict a network from a tab-separated expression matrix and score it:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/genet/grn"
//	)
//
//	func main() {
//	    pred := grn.NewPredictor(grn.NewLassoMethod(), grn.WithSeed(42))
//	    edges, _, err := pred.PredictNetworkFile("expression.tsv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    score, err := grn.ScoreAgainstFile(edges, "gold_standard.tsv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("IOU: %.4f\n", score.IOU)
//	}
//
// # Packages
//
// The module is organized into several packages:
//
//   - dataset: expression table loading and train/test splits
//   - linear: Lasso regression via coordinate descent
//   - ensemble: random-forest regression with feature importances
//   - grn: inference strategies, network prediction, edge sets
//   - metrics: evaluation metrics (MSE, R², edge-set IOU)
//   - preprocessing: data preprocessing utilities
//   - diagnostics: fit-quality plots
//   - core/model: core interfaces and base types
//   - core/parallel: parallel processing utilities
package genet
