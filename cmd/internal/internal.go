package internal

import (
	"context"
	"fmt"
	"os"
	"strings"

	"git.sr.ht/~flobar/lrt/pkg/lrt"
	"git.sr.ht/~flobar/lrt/pkg/lrt/ml"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// lrt version
const Version = "v0.0.1"

// Flags is used to define the standard command-line parameters for
// lrt sub commands.
type Flags struct {
	Params string // Path to the configuration file
	Data   string // Path to the observation table
	Feeds  string // Comma-separated pair of feed labels
}

// Init initializes the standard commandline arguments for the given
// subcommand.
func (flags *Flags) Init(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flags.Params, "parameters", "P", "", "set path to configuration file")
	cmd.Flags().StringVarP(&flags.Data, "data", "d", "", "set path to the observation table (overwrites the setting in the configuration file)")
	cmd.Flags().StringVarP(&flags.Feeds, "feeds", "f", "", "set the comma-separated feed label pair to compare (overwrites the setting in the configuration file)")
}

// Setup reads the configuration file and overwrites its settings with
// the set command-line arguments.  If args is non-empty, its first
// entry overwrites the data path.
func (flags *Flags) Setup(args []string) (*Config, error) {
	c, err := ReadConfig(flags.Params)
	if err != nil {
		return nil, fmt.Errorf("setup: %v", err)
	}
	UpdateInConfig(&c.Data, flags.Data)
	if flags.Feeds != "" {
		c.Feeds = strings.Split(flags.Feeds, ",")
	}
	if len(args) > 0 {
		c.Data = args[0]
	}
	if c.Data == "" {
		return nil, fmt.Errorf("setup: no observation table given")
	}
	return c, nil
}

// Observations assembles the read and filter stream funcs over the
// given file and collects the resulting observations.  An empty feed
// list lets every observation pass.
func Observations(ctx context.Context, path string, feeds ...string) ([]lrt.Observation, error) {
	fail := func(err error) error {
		return fmt.Errorf("observations %s: %v", path, err)
	}
	in, err := os.Open(path)
	if err != nil {
		return nil, fail(err)
	}
	defer in.Close()
	g, gctx := errgroup.WithContext(ctx)
	out := lrt.Pipe(gctx, g, lrt.ReadCSV(in), lrt.FilterFeeds(feeds...))
	var obs []lrt.Observation
	g.Go(func() error {
		return lrt.EachObservation(gctx, out, func(o lrt.Observation) error {
			obs = append(obs, o)
			return nil
		})
	})
	if err := g.Wait(); err != nil {
		return nil, fail(err)
	}
	lrt.Log("read %d observations from %s", len(obs), path)
	return obs, nil
}

// FitPair reads the observations of the configured feed pair, encodes
// them and fits the null and the effect model.  The returned result
// does not contain a test outcome yet.
func FitPair(ctx context.Context, c *Config) (*lrt.Result, error) {
	fail := func(err error) error {
		return fmt.Errorf("fitPair: %v", err)
	}
	a, b, err := c.FeedPair()
	if err != nil {
		return nil, fail(err)
	}
	obs, err := Observations(ctx, c.Data, a, b)
	if err != nil {
		return nil, fail(err)
	}
	d, err := lrt.Encode(obs, a, b)
	if err != nil {
		return nil, fail(err)
	}
	null, err := ml.Fit(ml.NullModel{}, d, c.Start, c.MaxIter)
	if err != nil {
		return nil, fail(err)
	}
	effect, err := ml.Fit(ml.EffectModel{}, d, c.Start, c.MaxIter)
	if err != nil {
		return nil, fail(err)
	}
	return &lrt.Result{
		Data:   c.Data,
		Feeds:  [2]string{a, b},
		N:      d.Len(),
		Null:   null,
		Effect: effect,
	}, nil
}

// PrintResult writes one fitted comparison in the standard text
// format to stdout.
func PrintResult(r *lrt.Result) {
	fmt.Printf("data               = %s\n", r.Data)
	fmt.Printf("feeds              = %s/%s\n", r.Feeds[0], r.Feeds[1])
	fmt.Printf("observations       = %d\n", r.N)
	fmt.Printf("null (mean,sigma)  = %g (nll=%g, converged=%t)\n",
		r.Null.Params, r.Null.NLL, r.Null.Converged)
	fmt.Printf("effect (b0,b1,sigma) = %g (nll=%g, converged=%t)\n",
		r.Effect.Params, r.Effect.NLL, r.Effect.Converged)
	if r.Test != nil {
		fmt.Printf("D                  = %g\n", r.Test.D)
		fmt.Printf("dof                = %d\n", r.Test.DoF)
		fmt.Printf("p-value            = %g\n", r.Test.P)
	}
	if !r.Reliable() {
		fmt.Printf("warning: a fit did not converge; the result is unreliable\n")
	}
}
