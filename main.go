package main

import (
	"git.sr.ht/~flobar/lrt/cmd/fit"
	"git.sr.ht/~flobar/lrt/cmd/plot"
	"git.sr.ht/~flobar/lrt/cmd/print"
	"git.sr.ht/~flobar/lrt/cmd/stats"
	"git.sr.ht/~flobar/lrt/cmd/test"
	"git.sr.ht/~flobar/lrt/cmd/version"
	"git.sr.ht/~flobar/lrt/pkg/lrt"
	"github.com/spf13/cobra"
)

var root = &cobra.Command{
	Use:   "lrt",
	Short: "L̲ikelihood-r̲atio t̲esting of feed effects on weight",
}

var logFlag bool

func init() {
	root.PersistentFlags().BoolVarP(&logFlag, "log", "l", false, "enable logging")
	root.AddCommand(
		fit.CMD,
		plot.CMD,
		print.CMD,
		stats.CMD,
		test.CMD,
		version.CMD,
	)
	cobra.OnInitialize(func() { lrt.SetLog(logFlag) })
}

func main() {
	root.Execute()
}
