package test

import (
	"context"
	"fmt"
	"log"

	"git.sr.ht/~flobar/lrt/cmd/internal"
	"git.sr.ht/~flobar/lrt/pkg/lrt/ml"
	"github.com/spf13/cobra"
)

func init() {
	flags.Init(CMD)
	CMD.Flags().StringVarP(&flags.result, "result", "M", "",
		"write the result to the given file (overwrites the setting in the configuration file)")
	CMD.Flags().Float64VarP(&flags.alpha, "alpha", "a", 0,
		"set the significance level (overwrites the setting in the configuration file)")
}

var flags = struct {
	internal.Flags
	result string
	alpha  float64
}{}

// CMD runs the lrt test command.
var CMD = &cobra.Command{
	Use:   "test [TABLE]",
	Short: "Test a feed pair for a significant weight effect",
	Run:   run,
}

func run(_ *cobra.Command, args []string) {
	c, err := flags.Setup(args)
	chk(err)
	internal.UpdateInConfig(&c.Result, flags.result)
	internal.UpdateInConfig(&c.Alpha, flags.alpha)
	r, err := internal.FitPair(context.Background(), c)
	chk(err)
	dof := ml.DegreesOfFreedom(ml.NullModel{}, ml.EffectModel{})
	test, err := ml.ChiSquareTest(r.Null.NLL, r.Effect.NLL, dof)
	chk(err)
	r.Test = &test
	internal.PrintResult(r)
	if test.Significant(c.Alpha) {
		fmt.Printf("feed effect significant at alpha=%g\n", c.Alpha)
	} else {
		fmt.Printf("no significant feed effect at alpha=%g\n", c.Alpha)
	}
	if c.Result != "" {
		chk(r.Write(c.Result))
	}
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
