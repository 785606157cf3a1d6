package model

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Parameters は線形モデルの学習済みパラメータ（重みベクトルとバイアス）
// 学習中はTrainerだけが更新し、学習完了後は読み取り専用として扱う。
type Parameters struct {
	// Weights は特徴量ごとの重み
	Weights []float64 `json:"weights"`

	// Bias は重み付き和に加算される閾値オフセット
	Bias float64 `json:"bias"`
}

// NewParameters はdim個のゼロ重みとbiasで初期化したParametersを返す
func NewParameters(dim int, bias float64) Parameters {
	return Parameters{Weights: make([]float64, dim), Bias: bias}
}

// Dim は重みの数（特徴量数）を返す
func (p Parameters) Dim() int {
	return len(p.Weights)
}

// Clone はParametersのディープコピーを作成
func (p Parameters) Clone() Parameters {
	weights := make([]float64, len(p.Weights))
	copy(weights, p.Weights)
	return Parameters{Weights: weights, Bias: p.Bias}
}

// IsZero はパラメータが未設定かどうかを返す
func (p Parameters) IsZero() bool {
	return p.Weights == nil && p.Bias == 0
}

// String は "weights=[0.7500 0.5250] bias=-0.1000" 形式で返す
func (p Parameters) String() string {
	parts := make([]string, len(p.Weights))
	for i, w := range p.Weights {
		parts[i] = fmt.Sprintf("%.4f", w)
	}
	return fmt.Sprintf("weights=[%s] bias=%.4f", strings.Join(parts, " "), p.Bias)
}

// MarshalZerologObject はzerologのイベントにパラメータを追加します。
func (p Parameters) MarshalZerologObject(e *zerolog.Event) {
	e.Floats64("weights", p.Weights).Float64("bias", p.Bias)
}
