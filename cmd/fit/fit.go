package fit

import (
	"context"
	"log"

	"git.sr.ht/~flobar/lrt/cmd/internal"
	"github.com/spf13/cobra"
)

func init() {
	flags.Init(CMD)
	CMD.Flags().StringVarP(&flags.result, "result", "M", "",
		"write the result to the given file (overwrites the setting in the configuration file)")
}

var flags = struct {
	internal.Flags
	result string
}{}

// CMD runs the lrt fit command.
var CMD = &cobra.Command{
	Use:   "fit [TABLE]",
	Short: "Fit the null and effect models for a feed pair",
	Run:   run,
}

func run(_ *cobra.Command, args []string) {
	c, err := flags.Setup(args)
	chk(err)
	internal.UpdateInConfig(&c.Result, flags.result)
	r, err := internal.FitPair(context.Background(), c)
	chk(err)
	internal.PrintResult(r)
	if c.Result != "" {
		chk(r.Write(c.Result))
	}
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
