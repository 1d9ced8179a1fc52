package stats

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"git.sr.ht/~flobar/lrt/cmd/internal"
	"git.sr.ht/~flobar/lrt/pkg/lrt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func init() {
	flags.Init(CMD)
	CMD.Flags().BoolVarP(&flags.csv, "csv", "c", false, "output csv data")
}

var flags = struct {
	internal.Flags
	csv bool
}{}

// CMD runs the lrt stats command.
var CMD = &cobra.Command{
	Use:   "stats [TABLE]",
	Short: "Print per-feed summary statistics",
	Run:   run,
}

func run(_ *cobra.Command, args []string) {
	c, err := flags.Setup(args)
	chk(err)
	obs, err := internal.Observations(context.Background(), c.Data, c.Feeds...)
	chk(err)
	groups := lrt.GroupBy(obs)
	rows := make([]row, 0, len(groups))
	for _, feed := range lrt.Feeds(obs) {
		rows = append(rows, stats(feed, groups[feed]))
	}
	if flags.csv {
		writeCSV(rows)
		return
	}
	writeTable(rows)
}

type row struct {
	feed                           string
	n                              int
	mean, stddev, min, median, max float64
}

func stats(feed string, obs []lrt.Observation) row {
	ws := make([]float64, len(obs))
	for i, o := range obs {
		ws[i] = o.Weight
	}
	sort.Float64s(ws)
	return row{
		feed:   feed,
		n:      len(ws),
		mean:   stat.Mean(ws, nil),
		stddev: stat.StdDev(ws, nil),
		min:    floats.Min(ws),
		median: stat.Quantile(0.5, stat.Empirical, ws, nil),
		max:    floats.Max(ws),
	}
}

func writeCSV(rows []row) {
	fmt.Printf("# feed,n,mean,stddev,min,median,max\n")
	for _, r := range rows {
		fmt.Printf("%s,%d,%g,%g,%g,%g,%g\n",
			r.feed, r.n, r.mean, r.stddev, r.min, r.median, r.max)
	}
}

func writeTable(rows []row) {
	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{"FEED", "N", "MEAN", "STDDEV", "MIN", "MEDIAN", "MAX"})
	w.SetAutoWrapText(false)
	for _, r := range rows {
		w.Append([]string{
			r.feed,
			fmt.Sprintf("%d", r.n),
			fmt.Sprintf("%.2f", r.mean),
			fmt.Sprintf("%.2f", r.stddev),
			fmt.Sprintf("%.2f", r.min),
			fmt.Sprintf("%.2f", r.median),
			fmt.Sprintf("%.2f", r.max),
		})
	}
	w.Render()
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
