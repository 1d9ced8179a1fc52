package lrt

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"
)

func collect(r StreamFunc, ps ...StreamFunc) ([]Observation, error) {
	g, ctx := errgroup.WithContext(context.Background())
	out := Pipe(ctx, g, r, ps...)
	var obs []Observation
	g.Go(func() error {
		return EachObservation(ctx, out, func(o Observation) error {
			obs = append(obs, o)
			return nil
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return obs, nil
}

func TestReadCSV(t *testing.T) {
	for _, tc := range []struct {
		test string
		want []Observation
	}{
		{
			"weight,feed\n179,horsebean\n309,linseed",
			[]Observation{{179, "horsebean"}, {309, "linseed"}},
		},
		{
			"feed,weight\nhorsebean,179",
			[]Observation{{179, "horsebean"}},
		},
		{
			"id,Weight,Feed\n1,42.5,casein",
			[]Observation{{42.5, "casein"}},
		},
		{
			"weight,feed",
			nil,
		},
	} {
		t.Run(tc.test, func(t *testing.T) {
			got, err := collect(ReadCSV(strings.NewReader(tc.test)))
			if err != nil {
				t.Fatalf("got error: %v", err)
			}
			if !reflect.DeepEqual(tc.want, got) {
				t.Fatalf("expected %v; got %v", tc.want, got)
			}
		})
	}
}

func TestReadCSVErrors(t *testing.T) {
	for _, tc := range []string{
		"weight\n179",
		"feed\nhorsebean",
		"weight,feed\nheavy,horsebean",
	} {
		t.Run(tc, func(t *testing.T) {
			if _, err := collect(ReadCSV(strings.NewReader(tc))); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestFilterFeeds(t *testing.T) {
	const table = "weight,feed\n1,a\n2,b\n3,c\n4,a"
	for _, tc := range []struct {
		feeds []string
		want  int
	}{
		{nil, 4},
		{[]string{"a"}, 2},
		{[]string{"a", "b"}, 3},
		{[]string{"d"}, 0},
	} {
		t.Run(fmt.Sprintf("%v", tc.feeds), func(t *testing.T) {
			got, err := collect(ReadCSV(strings.NewReader(table)), FilterFeeds(tc.feeds...))
			if err != nil {
				t.Fatalf("got error: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d observations; got %v", tc.want, got)
			}
		})
	}
}
