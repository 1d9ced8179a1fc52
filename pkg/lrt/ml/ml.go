package ml

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Predefined encoding values for the two feed groups.
const (
	False = float64(0)
	True  = float64(1)
)

// Bool converts a bool to a value representing false or true.
func Bool(t bool) float64 {
	if t {
		return True
	}
	return False
}

// Model is the interface of a candidate generative model.  NLL
// evaluates the negative log-likelihood of the dataset under the
// given parameter vector, which must have exactly NParams entries.
type Model interface {
	NParams() int
	NLL(params []float64, d *Dataset) float64
}

// Dataset holds the encoded two-group observations together with the
// design matrix used for the models' mean predictions.  The first
// column of the design matrix is the intercept, the second the
// group indicator.
type Dataset struct {
	y *mat.VecDense
	x *mat.Dense
}

// NewDataset builds a dataset from the given weights and group
// indicators.  Both slices must have the same non-zero length and
// each group indicator must be either 0 or 1.
func NewDataset(weights, groups []float64) (*Dataset, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("newDataset: empty dataset")
	}
	if len(weights) != len(groups) {
		return nil, fmt.Errorf("newDataset: %d weights for %d group indicators",
			len(weights), len(groups))
	}
	x := mat.NewDense(len(weights), 2, nil)
	for i, g := range groups {
		if g != False && g != True {
			return nil, fmt.Errorf("newDataset: bad group indicator %g", g)
		}
		x.Set(i, 0, 1)
		x.Set(i, 1, g)
	}
	return &Dataset{
		y: mat.NewVecDense(len(weights), weights),
		x: x,
	}, nil
}

// Len returns the number of observations in the dataset.
func (d *Dataset) Len() int {
	return d.y.Len()
}

// Weights returns the observed weights.
func (d *Dataset) Weights() []float64 {
	return d.y.RawVector().Data
}

// Groups returns the group indicator column of the design matrix.
func (d *Dataset) Groups() []float64 {
	gs := make([]float64, d.Len())
	for i := range gs {
		gs[i] = d.x.At(i, 1)
	}
	return gs
}

// DegreesOfFreedom returns the parameter-count difference between the
// effect model and the null model it nests.
func DegreesOfFreedom(null, effect Model) int {
	return effect.NParams() - null.NParams()
}
