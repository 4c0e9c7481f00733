// Package linear はGRN推論に用いる線形回帰モデルを提供します。
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/genet/core/model"
	"github.com/YuminosukeSato/genet/core/parallel"
	"github.com/YuminosukeSato/genet/pkg/errors"
)

// Lasso はL1正則化付き線形回帰モデル
// 座標降下法で目的関数 (1/(2n))·||y - Xw||² + α·||w||₁ を最小化する。
// L1ペナルティにより無関係な特徴量の係数は正確に0となるため、
// 非ゼロ係数の特徴量集合がそのままregulator候補になる。
type Lasso struct {
	model.BaseEstimator
	Weights   *mat.VecDense // 重み（係数）
	Intercept float64       // 切片
	NFeatures int           // 特徴量の数
	NIter     int           // 実際に実行したイテレーション数

	alpha        float64
	maxIter      int
	tol          float64
	fitIntercept bool
}

// LassoOption はLassoを設定する関数
type LassoOption func(*Lasso)

// WithAlpha は正則化の強さを設定する（デフォルト: 0.1）
func WithAlpha(alpha float64) LassoOption {
	return func(l *Lasso) {
		l.alpha = alpha
	}
}

// WithMaxIter は座標降下の最大イテレーション数を設定する（デフォルト: 1000）
func WithMaxIter(maxIter int) LassoOption {
	return func(l *Lasso) {
		l.maxIter = maxIter
	}
}

// WithTol は収束判定の許容誤差を設定する（デフォルト: 1e-4）
func WithTol(tol float64) LassoOption {
	return func(l *Lasso) {
		l.tol = tol
	}
}

// WithFitIntercept は切片を学習するかどうかを設定する（デフォルト: true）
func WithFitIntercept(fit bool) LassoOption {
	return func(l *Lasso) {
		l.fitIntercept = fit
	}
}

// NewLasso は新しいLassoモデルを作成する
func NewLasso(opts ...LassoOption) *Lasso {
	l := &Lasso{
		alpha:        0.1,
		maxIter:      1000,
		tol:          1e-4,
		fitIntercept: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Alpha は設定された正則化の強さを返す
func (l *Lasso) Alpha() float64 { return l.alpha }

// Fit はモデルを訓練データで学習させる
// 座標降下法を使用し、収束しなかった場合はConvergenceWarningを発生させる
func (l *Lasso) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("Lasso.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("Lasso.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("Lasso.Fit", "y must be a column vector")
	}
	if l.alpha < 0 {
		return errors.NewValidationError("alpha", "must be non-negative", l.alpha)
	}

	l.NFeatures = c
	n := float64(r)

	// 切片項のためにXとyを中心化する
	xMeans := make([]float64, c)
	yMean := 0.0
	if l.fitIntercept {
		for j := 0; j < c; j++ {
			sum := 0.0
			for i := 0; i < r; i++ {
				sum += X.At(i, j)
			}
			xMeans[j] = sum / n
		}
		for i := 0; i < r; i++ {
			yMean += y.At(i, 0)
		}
		yMean /= n
	}

	// 並列処理の閾値（この値以下の行数では逐次処理を使用）
	const parallelThreshold = 1000

	centered := mat.NewDense(r, c, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				centered.Set(i, j, X.At(i, j)-xMeans[j])
			}
		}
	})

	// 各列の二乗和（座標更新の分母）
	colSS := make([]float64, c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			v := centered.At(i, j)
			colSS[j] += v * v
		}
	}

	weights := make([]float64, c)
	residual := make([]float64, r)
	for i := 0; i < r; i++ {
		residual[i] = y.At(i, 0) - yMean
	}

	threshold := l.alpha * n
	converged := false
	iter := 0
	for ; iter < l.maxIter; iter++ {
		maxDelta := 0.0
		for j := 0; j < c; j++ {
			if colSS[j] == 0 {
				continue
			}

			// 特徴量jの寄与を除いた残差との相関
			rho := 0.0
			for i := 0; i < r; i++ {
				rho += centered.At(i, j) * residual[i]
			}
			rho += weights[j] * colSS[j]

			updated := errors.SoftThreshold(rho, threshold) / colSS[j]
			delta := updated - weights[j]
			if delta != 0 {
				for i := 0; i < r; i++ {
					residual[i] -= delta * centered.At(i, j)
				}
				weights[j] = updated
			}
			if abs := absFloat(delta); abs > maxDelta {
				maxDelta = abs
			}
		}
		if maxDelta < l.tol {
			converged = true
			iter++
			break
		}
	}
	l.NIter = iter

	if !converged {
		errors.Warn(errors.NewConvergenceWarning("Lasso", l.maxIter,
			"coordinate descent did not reach tolerance"))
	}
	if err := errors.CheckNumericalStability("coordinate_descent", weights, l.NIter); err != nil {
		return err
	}

	l.Weights = mat.NewVecDense(c, weights)
	l.Intercept = 0
	if l.fitIntercept {
		l.Intercept = yMean
		for j := 0; j < c; j++ {
			l.Intercept -= weights[j] * xMeans[j]
		}
	}

	l.SetFitted()
	return nil
}

// Predict は入力データに対する予測を行う
func (l *Lasso) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !l.IsFitted() {
		return nil, errors.NewNotFittedError("Lasso", "Predict")
	}

	r, c := X.Dims()
	if c != l.NFeatures {
		return nil, errors.NewDimensionError("Lasso.Predict", l.NFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		pred := l.Intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * l.Weights.AtVec(j)
		}
		predictions.Set(i, 0, pred)
	}
	return predictions, nil
}

// Score はモデルの決定係数（R²）を計算する
func (l *Lasso) Score(X, y mat.Matrix) (float64, error) {
	if !l.IsFitted() {
		return 0, errors.NewNotFittedError("Lasso", "Score")
	}

	yPred, err := l.Predict(X)
	if err != nil {
		return 0, err
	}

	r, _ := y.Dims()
	var yMean float64
	for i := 0; i < r; i++ {
		yMean += y.At(i, 0)
	}
	yMean /= float64(r)

	var tss, rss float64
	for i := 0; i < r; i++ {
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

// GetWeights は学習された重み（係数）を返す
func (l *Lasso) GetWeights() []float64 {
	if l.Weights == nil {
		return nil
	}
	weights := make([]float64, l.Weights.Len())
	for i := 0; i < l.Weights.Len(); i++ {
		weights[i] = l.Weights.AtVec(i)
	}
	return weights
}

// GetIntercept は学習された切片を返す
func (l *Lasso) GetIntercept() float64 {
	if !l.IsFitted() {
		return 0
	}
	return l.Intercept
}

// FeatureImportances は係数の絶対値を特徴量の影響度として返す
func (l *Lasso) FeatureImportances() []float64 {
	weights := l.GetWeights()
	for i, w := range weights {
		weights[i] = absFloat(w)
	}
	return weights
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
