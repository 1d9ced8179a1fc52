package ml

import (
	"testing"
)

func fit(t *testing.T, m Model, d *Dataset) Result {
	t.Helper()
	res, err := Fit(m, d, 1, 0)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if !res.Converged {
		t.Fatalf("fit did not converge: %v", res)
	}
	return res
}

func TestFitSeparatedGroups(t *testing.T) {
	d := mkdataset(t,
		[]float64{10, 12, 11, 20, 22, 21},
		[]float64{0, 0, 0, 1, 1, 1})
	null := fit(t, NullModel{}, d)
	effect := fit(t, EffectModel{}, d)
	// Maximum-likelihood estimates: group means 11 and 21, residual
	// standard deviation sqrt(2/3).
	if !floatArrayEqual(effect.Params, []float64{11, 10, 0.8165}, 1e-2) {
		t.Fatalf("expected [11 10 0.8165]; got %v", effect.Params)
	}
	if !floatArrayEqual(null.Params[:1], []float64{16}, 1e-2) {
		t.Fatalf("expected mean 16; got %v", null.Params)
	}
	if effect.NLL > null.NLL {
		t.Fatalf("effect NLL %v larger than null NLL %v", effect.NLL, null.NLL)
	}
}

func TestFitIdenticalGroups(t *testing.T) {
	d := mkdataset(t,
		[]float64{10, 12, 11, 10, 12, 11},
		[]float64{0, 0, 0, 1, 1, 1})
	null := fit(t, NullModel{}, d)
	effect := fit(t, EffectModel{}, d)
	// The slope buys nothing; both models end at the same optimum.
	if !floatEqual(effect.Params[1], 0, 1e-2) {
		t.Fatalf("expected slope 0; got %v", effect.Params)
	}
	if !floatEqual(null.NLL, effect.NLL, 1e-3) {
		t.Fatalf("expected equal NLLs; got %v and %v", null.NLL, effect.NLL)
	}
}

func TestFitStartSizedPerModel(t *testing.T) {
	// The shared scalar start must expand to each model's own
	// parameter count; a length mismatch panics in NLL.
	d := mkdataset(t, []float64{10, 12, 11, 20}, []float64{0, 0, 0, 1})
	for _, m := range []Model{NullModel{}, EffectModel{}} {
		if _, err := Fit(m, d, 1, 0); err != nil {
			t.Fatalf("got error: %v", err)
		}
	}
}

func TestFitIterationBudget(t *testing.T) {
	d := mkdataset(t,
		[]float64{10, 12, 11, 20, 22, 21},
		[]float64{0, 0, 0, 1, 1, 1})
	res, err := Fit(EffectModel{}, d, 1, 1)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if res.Converged {
		t.Fatalf("expected non-convergence after one iteration; got %v", res)
	}
}
