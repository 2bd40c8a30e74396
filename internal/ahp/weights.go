package ahp

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ColumnSumEpsilon is added to every column sum so an all-zero column normalises
// to zeros instead of NaN.
const ColumnSumEpsilon = 1e-10

// EstimateWeights derives one priority weight per criterion. Each column is
// divided by its sum and the weight of criterion i is the mean of row i of the
// normalised matrix. This is the normalize-and-average approximation of the
// principal eigenvector, not power iteration.
//
// Only an empty, ragged or non-square matrix is rejected. Non-positive or
// non-reciprocal entries flow through as numeric artifacts.
func EstimateWeights(m ComparisonMatrix) ([]float64, error) {
	a, err := m.dense()
	if err != nil {
		return nil, &EvaluationError{Kind: KindWeightCalculation, Err: err}
	}
	n, _ := a.Dims()

	colSums := make([]float64, n)
	col := make([]float64, n)
	for j := range colSums {
		colSums[j] = floats.Sum(mat.Col(col, j, a)) + ColumnSumEpsilon
	}

	var normalized mat.Dense
	normalized.Apply(func(_, j int, v float64) float64 {
		return v / colSums[j]
	}, a)

	weights := make([]float64, n)
	for i := range weights {
		weights[i] = stat.Mean(normalized.RawRowView(i), nil)
	}
	return weights, nil
}
