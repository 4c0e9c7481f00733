// Package model provides the base types and interfaces shared by GeNet's
// regression estimators.
package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を行う
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the coefficient of determination R^2 of the prediction.
	Score(X mat.Matrix, y mat.Matrix) (float64, error)
}

// Estimator is the minimal contract of a fittable model with observable
// training state.
type Estimator interface {
	Fitter
	IsFitted() bool
}

// Regressor combines the interfaces of a supervised regression model.
// Both of GeNet's edge-inference backends (Lasso, random forest) satisfy it.
type Regressor interface {
	Estimator
	Predictor
	Scorer
}

// FeatureImportancer is implemented by models that expose a per-feature
// influence measure after fitting. Lasso reports absolute coefficients,
// tree ensembles report accumulated split gain.
type FeatureImportancer interface {
	// FeatureImportances returns one non-negative value per input feature.
	FeatureImportances() []float64
}

// Transformer はデータ変換のインターフェース
type Transformer interface {
	// Fit は変換に必要なパラメータを学習する
	Fit(X mat.Matrix) error

	// Transform はデータを変換する
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}
