package ahp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ReciprocityTolerance is the default allowed deviation of a_ij*a_ji from 1 before
// Warnings flags a pair. Judgments entered as rounded decimals (0.333 for 1/3)
// stay within it.
const ReciprocityTolerance = 0.01

// ComparisonMatrix is an n×n grid of pairwise judgments. Entry (i,j) states how
// many times more important criterion i is than criterion j.
type ComparisonMatrix [][]float64

// Dim returns the number of criteria compared by the matrix.
func (m ComparisonMatrix) Dim() int { return len(m) }

// dense checks the matrix is square and non-empty and copies it into a gonum
// Dense. Entry values are not checked.
func (m ComparisonMatrix) dense() (*mat.Dense, error) {
	n := len(m)
	if n == 0 {
		return nil, fmt.Errorf("comparison matrix is empty")
	}
	data := make([]float64, 0, n*n)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("comparison matrix must be %dx%d, row %d has %d values", n, n, i+1, len(row))
		}
		data = append(data, row...)
	}
	return mat.NewDense(n, n, data), nil
}

// Warnings lists judgments that break the AHP conventions without invalidating
// the computation: diagonal entries other than 1 and pairs whose product strays
// from 1 by more than tolerance. A malformed shape yields no warnings; that is
// reported by EstimateWeights instead.
func (m ComparisonMatrix) Warnings(tolerance float64) []string {
	n := len(m)
	for _, row := range m {
		if len(row) != n {
			return nil
		}
	}

	var warnings []string
	for i := 0; i < n; i++ {
		if m[i][i] != 1 {
			warnings = append(warnings, fmt.Sprintf("diagonal entry (%d,%d) is %g, expected 1", i+1, i+1, m[i][i]))
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m[i][j]*m[j][i]-1) > tolerance {
				warnings = append(warnings, fmt.Sprintf("entries (%d,%d)=%g and (%d,%d)=%g are not reciprocal",
					i+1, j+1, m[i][j], j+1, i+1, m[j][i]))
			}
		}
	}
	return warnings
}
