package ml

import (
	"fmt"

	"gonum.org/v1/gonum/optimize"
)

// Result holds the outcome of fitting one model to a dataset.
type Result struct {
	Params    []float64 `json:"params"`
	NLL       float64   `json:"nll"`
	Converged bool      `json:"converged"`
}

// Fit minimizes the model's negative log-likelihood over the dataset
// using Nelder-Mead simplex search.  The initial guess is the start
// value repeated for each of the model's parameters; maxiter bounds
// the number of major iterations, with 0 meaning no bound.  A fit
// that stops without converging is returned with the Converged flag
// unset rather than as an error.
func Fit(m Model, d *Dataset, start float64, maxiter int) (Result, error) {
	x0 := make([]float64, m.NParams())
	for i := range x0 {
		x0[i] = start
	}
	problem := optimize.Problem{
		Func: func(x []float64) float64 { return m.NLL(x, d) },
	}
	settings := &optimize.Settings{MajorIterations: maxiter}
	res, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil {
		return Result{}, fmt.Errorf("fit: %v", err)
	}
	return Result{
		Params:    res.X,
		NLL:       res.F,
		Converged: converged(res.Status),
	}, nil
}

func converged(s optimize.Status) bool {
	switch s {
	case optimize.Success,
		optimize.FunctionThreshold,
		optimize.FunctionConvergence,
		optimize.GradientThreshold,
		optimize.StepConvergence:
		return true
	}
	return false
}
