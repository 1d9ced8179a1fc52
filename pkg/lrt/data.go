package lrt

import (
	"fmt"

	"git.sr.ht/~flobar/lrt/pkg/lrt/ml"
)

// Observation pairs one measured weight with its feed label.
type Observation struct {
	Weight float64
	Feed   string
}

// GroupBy partitions the observations by their feed label.
func GroupBy(obs []Observation) map[string][]Observation {
	groups := make(map[string][]Observation)
	for _, o := range obs {
		groups[o.Feed] = append(groups[o.Feed], o)
	}
	return groups
}

// Feeds returns the distinct feed labels in first-seen order.
func Feeds(obs []Observation) []string {
	var feeds []string
	seen := make(map[string]bool)
	for _, o := range obs {
		if !seen[o.Feed] {
			seen[o.Feed] = true
			feeds = append(feeds, o.Feed)
		}
	}
	return feeds
}

// Encode maps the feed labels a and b to the group indicators 0 and 1
// and builds the two-group dataset for the models.  Any observation
// with a different feed label is an error; the direction of the
// mapping does not change the outcome of the likelihood-ratio test.
func Encode(obs []Observation, a, b string) (*ml.Dataset, error) {
	if a == b {
		return nil, fmt.Errorf("encode: equal feed labels %q", a)
	}
	weights := make([]float64, 0, len(obs))
	groups := make([]float64, 0, len(obs))
	for _, o := range obs {
		switch o.Feed {
		case a:
			groups = append(groups, ml.False)
		case b:
			groups = append(groups, ml.True)
		default:
			return nil, fmt.Errorf("encode: unknown feed label %q", o.Feed)
		}
		weights = append(weights, o.Weight)
	}
	d, err := ml.NewDataset(weights, groups)
	if err != nil {
		return nil, fmt.Errorf("encode: %v", err)
	}
	return d, nil
}
