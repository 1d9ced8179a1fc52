package lrt

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// StreamFunc is a type def for stream funcs.
type StreamFunc func(context.Context, *errgroup.Group, <-chan Observation) <-chan Observation

// Pipe pipes multiple stream funcs together.  The first function in
// the list (the reader) is called with a nil channel.
func Pipe(ctx context.Context, g *errgroup.Group, r StreamFunc, ps ...StreamFunc) <-chan Observation {
	out := r(ctx, g, nil)
	for _, p := range ps {
		out = p(ctx, g, out)
	}
	return out
}

// EachObservation iterates over the observations in the input channel
// and calls the callback function for each observation.
func EachObservation(ctx context.Context, in <-chan Observation, f func(Observation) error) error {
	for {
		o, ok, err := ReadObservation(ctx, in)
		if err != nil {
			return fmt.Errorf("eachObservation: %v", err)
		}
		if !ok {
			return nil
		}
		if err := f(o); err != nil {
			return fmt.Errorf("eachObservation: %v", err)
		}
	}
}

// ReadObservation reads one observation from the given channel.
func ReadObservation(ctx context.Context, in <-chan Observation) (Observation, bool, error) {
	select {
	case o, ok := <-in:
		if !ok {
			return o, false, nil
		}
		return o, true, nil
	case <-ctx.Done():
		return Observation{}, false, fmt.Errorf("readObservation: %v", ctx.Err())
	}
}

// SendObservations writes observations into the given output channel.
func SendObservations(ctx context.Context, out chan<- Observation, obs ...Observation) error {
	for _, o := range obs {
		select {
		case out <- o:
		case <-ctx.Done():
			return fmt.Errorf("sendObservation: %v", ctx.Err())
		}
	}
	return nil
}

// ReadCSV returns a stream func that reads observations from a
// comma-separated table with a header row.  The header must contain
// the columns weight and feed (any case); other columns are ignored.
func ReadCSV(in io.Reader) StreamFunc {
	return func(ctx context.Context, g *errgroup.Group, _ <-chan Observation) <-chan Observation {
		out := make(chan Observation)
		g.Go(func() error {
			defer close(out)
			fail := func(err error) error {
				return fmt.Errorf("readCSV: %v", err)
			}
			r := csv.NewReader(in)
			header, err := r.Read()
			if err != nil {
				return fail(err)
			}
			wi, fi := -1, -1
			for i, name := range header {
				switch strings.ToLower(strings.TrimSpace(name)) {
				case "weight":
					wi = i
				case "feed":
					fi = i
				}
			}
			if wi < 0 || fi < 0 {
				return fail(fmt.Errorf("missing weight or feed column in %q", header))
			}
			for line := 2; ; line++ {
				record, err := r.Read()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return fail(err)
				}
				w, err := strconv.ParseFloat(record[wi], 64)
				if err != nil {
					return fail(fmt.Errorf("line %d: bad weight %q", line, record[wi]))
				}
				o := Observation{Weight: w, Feed: record[fi]}
				if err := SendObservations(ctx, out, o); err != nil {
					return fail(err)
				}
			}
		})
		return out
	}
}

// FilterFeeds filters all observations whose feed label is not in the
// given list from the stream.  With an empty list every observation
// passes.
func FilterFeeds(feeds ...string) StreamFunc {
	keep := make(map[string]bool)
	for _, f := range feeds {
		keep[f] = true
	}
	return func(ctx context.Context, g *errgroup.Group, in <-chan Observation) <-chan Observation {
		out := make(chan Observation)
		g.Go(func() error {
			defer close(out)
			err := EachObservation(ctx, in, func(o Observation) error {
				if len(keep) > 0 && !keep[o.Feed] {
					return nil
				}
				if err := SendObservations(ctx, out, o); err != nil {
					return fmt.Errorf("filterFeeds: %v", err)
				}
				return nil
			})
			if err != nil {
				return fmt.Errorf("filterFeeds: %v", err)
			}
			return nil
		})
		return out
	}
}
