package metrics

import (
	"github.com/YuminosukeSato/gopla/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// checkBinaryPair は二値ラベルベクトルの組を検証する
func checkBinaryPair(op string, yTrue, yPred *mat.VecDense) (int, error) {
	if yTrue == nil || yPred == nil || yTrue.Len() == 0 {
		return 0, errors.NewValueError(op, "empty vector")
	}
	n := yTrue.Len()
	if yPred.Len() != n {
		return 0, errors.NewDimensionError(op, n, yPred.Len(), 0)
	}
	for i := 0; i < n; i++ {
		for _, v := range [2]float64{yTrue.AtVec(i), yPred.AtVec(i)} {
			if v != 0 && v != 1 {
				return 0, errors.NewValueError(op, "labels must be 0 or 1")
			}
		}
	}
	return n, nil
}

// MisclassifiedCount はラベルが一致しないサンプル数を返す
func MisclassifiedCount(yTrue, yPred *mat.VecDense) (int, error) {
	n, err := checkBinaryPair("MisclassifiedCount", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) != yPred.AtVec(i) {
			count++
		}
	}
	return count, nil
}

// Accuracy は正解率（一致したサンプルの割合）を計算する
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	missed, err := MisclassifiedCount(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	n := yTrue.Len()
	return float64(n-missed) / float64(n), nil
}

// HalfSquaredError は 0.5 * Σ(yTrue - yPred)² を計算する
// 0/1ラベルでは誤分類数の半分に等しい
func HalfSquaredError(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkBinaryPair("HalfSquaredError", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return 0.5 * sum, nil
}

// ConfusionMatrix は二値分類の混同行列を返す
// 行が正解ラベル、列が予測ラベル: [[TN, FP], [FN, TP]]
func ConfusionMatrix(yTrue, yPred *mat.VecDense) (*mat.Dense, error) {
	n, err := checkBinaryPair("ConfusionMatrix", yTrue, yPred)
	if err != nil {
		return nil, err
	}

	cm := mat.NewDense(2, 2, nil)
	for i := 0; i < n; i++ {
		r, c := int(yTrue.AtVec(i)), int(yPred.AtVec(i))
		cm.Set(r, c, cm.At(r, c)+1)
	}
	return cm, nil
}
