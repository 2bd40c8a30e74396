package ahp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// RandomIndexTable holds the mean consistency index of random reciprocal
// matrices. Entry k is the benchmark for a (k+1)×(k+1) matrix.
type RandomIndexTable []float64

var saatyRandomIndex = [...]float64{0, 0, 0.58, 0.9, 1.12, 1.24, 1.32, 1.41, 1.45, 1.49}

// DefaultRandomIndex returns a fresh copy of Saaty's table for dimensions 1-10.
func DefaultRandomIndex() RandomIndexTable {
	t := make(RandomIndexTable, len(saatyRandomIndex))
	copy(t, saatyRandomIndex[:])
	return t
}

// Lookup returns the random index for an n×n matrix. ok is false when the table
// does not cover n or holds zero for it, in which case no ratio can be formed.
func (t RandomIndexTable) Lookup(n int) (ri float64, ok bool) {
	if n < 1 || n-1 >= len(t) || t[n-1] == 0 {
		return 0, false
	}
	return t[n-1], true
}

// Validate rejects negative or non-finite entries.
func (t RandomIndexTable) Validate() error {
	for i, v := range t {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("random index for n=%d is %g, must be a non-negative number", i+1, v)
		}
	}
	return nil
}

// Consistency is the breakdown behind a consistency check.
type Consistency struct {
	LambdaMax   float64 `json:"lambda_max"`
	Index       float64 `json:"consistency_index"`
	RandomIndex float64 `json:"random_index,omitempty"`
	// Ratio is CI/RI when a random index exists for the dimension, otherwise
	// it equals Index.
	Ratio      float64 `json:"consistency_ratio"`
	Normalized bool    `json:"normalized"`
}

// Finite reports whether the metric can be compared against a threshold.
func (c Consistency) Finite() bool {
	return !math.IsNaN(c.Ratio) && !math.IsInf(c.Ratio, 0)
}

// CheckConsistency estimates lambda_max as the mean of (A·w)_i / w_i and derives
// CI = (lambda_max - n) / (n - 1). A single criterion is always consistent.
// Zero weights are not guarded and surface as NaN or Inf in the result.
func CheckConsistency(m ComparisonMatrix, weights []float64, ri RandomIndexTable) (Consistency, error) {
	n := len(weights)
	if n <= 1 {
		return Consistency{}, nil
	}
	a, err := m.dense()
	if err != nil {
		return Consistency{}, err
	}
	if r, _ := a.Dims(); r != n {
		return Consistency{}, fmt.Errorf("weight vector has %d entries for a %dx%d matrix", n, r, r)
	}

	w := mat.NewVecDense(n, weights)
	var weighted, lambda mat.VecDense
	weighted.MulVec(a, w)
	lambda.DivElemVec(&weighted, w)

	c := Consistency{LambdaMax: stat.Mean(lambda.RawVector().Data, nil)}
	c.Index = (c.LambdaMax - float64(n)) / float64(n-1)
	c.Ratio = c.Index
	if v, ok := ri.Lookup(n); ok {
		c.RandomIndex = v
		c.Ratio = c.Index / v
		c.Normalized = true
	}
	return c, nil
}

// ConsistencyRatio returns CR for the matrix, or the bare CI when the table has
// no meaningful random index for its dimension.
func ConsistencyRatio(m ComparisonMatrix, weights []float64, ri RandomIndexTable) (float64, error) {
	c, err := CheckConsistency(m, weights, ri)
	if err != nil {
		return 0, err
	}
	return c.Ratio, nil
}
