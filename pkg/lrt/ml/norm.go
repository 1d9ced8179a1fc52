package ml

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// NullModel is the feed-independent model.  Every observation shares
// one expected weight; the parameter vector is (mean, sigma).
type NullModel struct{}

// NParams returns the number of parameters of the null model.
func (NullModel) NParams() int { return 2 }

// NLL returns the negative summed normal log-density of the dataset's
// weights under a single mean.  A non-positive sigma yields +Inf.
func (m NullModel) NLL(params []float64, d *Dataset) float64 {
	checkParams(m, params)
	mean, sigma := params[0], params[1]
	if sigma <= 0 {
		return math.Inf(1)
	}
	norm := distuv.Normal{Mu: mean, Sigma: sigma}
	var nll float64
	for i := 0; i < d.y.Len(); i++ {
		nll -= norm.LogProb(d.y.AtVec(i))
	}
	return nll
}

// EffectModel is the feed-dependent model.  The expected weight of an
// observation is intercept + slope * group indicator; the parameter
// vector is (intercept, slope, sigma).
type EffectModel struct{}

// NParams returns the number of parameters of the effect model.
func (EffectModel) NParams() int { return 3 }

// NLL returns the negative summed normal log-density of the dataset's
// weights under the per-group expected values.  A non-positive sigma
// yields +Inf.
func (m EffectModel) NLL(params []float64, d *Dataset) float64 {
	checkParams(m, params)
	sigma := params[2]
	if sigma <= 0 {
		return math.Inf(1)
	}
	var mu mat.VecDense
	mu.MulVec(d.x, mat.NewVecDense(2, params[:2]))
	var nll float64
	for i := 0; i < d.y.Len(); i++ {
		norm := distuv.Normal{Mu: mu.AtVec(i), Sigma: sigma}
		nll -= norm.LogProb(d.y.AtVec(i))
	}
	return nll
}

func checkParams(m Model, params []float64) {
	if len(params) != m.NParams() {
		panic(fmt.Sprintf("bad parameter count: %d/%d", len(params), m.NParams()))
	}
}
