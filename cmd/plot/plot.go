package plot

import (
	"context"
	"log"

	"git.sr.ht/~flobar/lrt/cmd/internal"
	"git.sr.ht/~flobar/lrt/pkg/lrt"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func init() {
	flags.Init(CMD)
	CMD.Flags().StringVarP(&flags.out, "out", "o", "weights.png", "set output file")
}

var flags = struct {
	internal.Flags
	out string
}{}

// CMD runs the lrt plot command.
var CMD = &cobra.Command{
	Use:   "plot [TABLE]",
	Short: "Write a scatter plot of weight by feed",
	Run:   run,
}

func run(_ *cobra.Command, args []string) {
	c, err := flags.Setup(args)
	chk(err)
	obs, err := internal.Observations(context.Background(), c.Data, c.Feeds...)
	chk(err)
	feeds := lrt.Feeds(obs)
	groups := lrt.GroupBy(obs)

	p := plot.New()
	p.Title.Text = "weight by feed"
	p.Y.Label.Text = "weight"
	p.NominalX(feeds...)
	for i, feed := range feeds {
		xys := make(plotter.XYs, len(groups[feed]))
		for j, o := range groups[feed] {
			xys[j].X = float64(i)
			xys[j].Y = o.Weight
		}
		s, err := plotter.NewScatter(xys)
		chk(err)
		p.Add(s)
	}
	chk(p.Save(6*vg.Inch, 4*vg.Inch, flags.out))
	lrt.Log("wrote %s", flags.out)
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
