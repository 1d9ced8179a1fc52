package ml

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Tiny negative likelihood-ratio statistics are float roundoff from
// the optimizer and are clamped to 0; anything below this threshold
// means the effect fit ended up worse than the null fit.
const dtol = 1e-6

// TestResult holds the outcome of a likelihood-ratio test between
// two nested models.
type TestResult struct {
	D   float64 `json:"d"`
	DoF int     `json:"dof"`
	P   float64 `json:"p"`
}

// Significant reports whether the test rejects the null hypothesis
// at the given significance level.
func (r TestResult) Significant(alpha float64) bool {
	return r.P < alpha
}

// ChiSquareTest computes the likelihood-ratio statistic
// D = 2 * (nullNLL - effectNLL) and its upper-tail p-value under a
// chi-square distribution with dof degrees of freedom.  A negative D
// beyond float roundoff indicates a failed optimization and is
// returned as an error.
func ChiSquareTest(nullNLL, effectNLL float64, dof int) (TestResult, error) {
	if dof < 1 {
		return TestResult{}, fmt.Errorf("chiSquareTest: bad degrees of freedom %d", dof)
	}
	d := 2 * (nullNLL - effectNLL)
	if d < -dtol {
		return TestResult{}, fmt.Errorf(
			"chiSquareTest: negative likelihood-ratio statistic %g", d)
	}
	if d < 0 {
		d = 0
	}
	chi2 := distuv.ChiSquared{K: float64(dof)}
	return TestResult{D: d, DoF: dof, P: chi2.Survival(d)}, nil
}
