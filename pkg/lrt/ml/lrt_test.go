package ml

import (
	"fmt"
	"testing"
)

func TestChiSquareTest(t *testing.T) {
	for _, tc := range []struct {
		d float64
		p float64
	}{
		{0, 1},
		{3.841458820694124, 0.05},
		{6.634896601021213, 0.01},
		{21.904, 2.8786e-06},
	} {
		t.Run(fmt.Sprintf("%g", tc.d), func(t *testing.T) {
			got, err := ChiSquareTest(tc.d/2, 0, 1)
			if err != nil {
				t.Fatalf("got error: %v", err)
			}
			if !floatEqual(got.P, tc.p, 1e-6) {
				t.Fatalf("expected p=%v; got %v", tc.p, got.P)
			}
			if got.D != tc.d || got.DoF != 1 {
				t.Fatalf("expected D=%v, dof=1; got %v", tc.d, got)
			}
		})
	}
}

func TestChiSquareTestErrors(t *testing.T) {
	if _, err := ChiSquareTest(10, 11, 1); err == nil {
		t.Fatalf("expected error for negative statistic")
	}
	if _, err := ChiSquareTest(11, 10, 0); err == nil {
		t.Fatalf("expected error for zero degrees of freedom")
	}
}

func TestChiSquareTestClampsRoundoff(t *testing.T) {
	got, err := ChiSquareTest(10, 10+1e-9, 1)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if got.D != 0 || got.P != 1 {
		t.Fatalf("expected D=0, p=1; got %v", got)
	}
}

func TestSignificant(t *testing.T) {
	r := TestResult{P: 0.04}
	if !r.Significant(0.05) {
		t.Fatalf("expected significance at alpha=0.05")
	}
	if r.Significant(0.01) {
		t.Fatalf("expected no significance at alpha=0.01")
	}
}

func TestLikelihoodRatioPipeline(t *testing.T) {
	d := mkdataset(t,
		[]float64{10, 12, 11, 20, 22, 21},
		[]float64{0, 0, 0, 1, 1, 1})
	null := fit(t, NullModel{}, d)
	effect := fit(t, EffectModel{}, d)
	res, err := ChiSquareTest(null.NLL, effect.NLL, DegreesOfFreedom(NullModel{}, EffectModel{}))
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if res.P > 1e-4 {
		t.Fatalf("expected p near 0; got %v", res.P)
	}
	if !floatEqual(res.D, 21.904, 1e-2) {
		t.Fatalf("expected D=21.904; got %v", res.D)
	}
}

func TestSwappedEncoding(t *testing.T) {
	weights := []float64{10, 12, 11, 20, 22, 21}
	groups := []float64{0, 0, 0, 1, 1, 1}
	swapped := make([]float64, len(groups))
	for i, g := range groups {
		swapped[i] = 1 - g
	}
	test := func(gs []float64) (TestResult, float64) {
		d := mkdataset(t, weights, gs)
		null := fit(t, NullModel{}, d)
		effect := fit(t, EffectModel{}, d)
		res, err := ChiSquareTest(null.NLL, effect.NLL, 1)
		if err != nil {
			t.Fatalf("got error: %v", err)
		}
		return res, effect.Params[1]
	}
	a, slopeA := test(groups)
	b, slopeB := test(swapped)
	// The slope flips sign, the test outcome does not change.
	if !floatEqual(slopeA, -slopeB, 1e-2) {
		t.Fatalf("expected opposite slopes; got %v and %v", slopeA, slopeB)
	}
	if !floatEqual(a.D, b.D, 1e-3) || !floatEqual(a.P, b.P, 1e-4) {
		t.Fatalf("expected %v; got %v", a, b)
	}
}
