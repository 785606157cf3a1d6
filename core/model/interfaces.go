// Package model は推定器の共通インターフェースと学習済みパラメータの型を提供する。
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は各行の予測ラベルを返す
	Predict(X mat.Matrix) (*mat.VecDense, error)
}

// Scorer はモデルの評価値を計算するインターフェース
type Scorer interface {
	// Score は分類器では正解率を返す
	Score(X, y mat.Matrix) (float64, error)
}

// LinearClassifier は重みとバイアスを公開する二値線形分類器
type LinearClassifier interface {
	Fitter
	Predictor
	Scorer

	// Parameters は学習済みの重みとバイアスのコピーを返す
	Parameters() Parameters
}
