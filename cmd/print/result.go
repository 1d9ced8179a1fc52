package print

import (
	"encoding/json"
	"os"

	"git.sr.ht/~flobar/lrt/cmd/internal"
	"git.sr.ht/~flobar/lrt/pkg/lrt"
	"github.com/spf13/cobra"
)

// resultCMD runs the lrt print result command.
var resultCMD = &cobra.Command{
	Use:   "result [RESULT...]",
	Short: "Print information about saved results",
	Run:   runResult,
}

func runResult(_ *cobra.Command, args []string) {
	for _, name := range args {
		r, err := lrt.ReadResult(name)
		chk(err)
		if flags.json {
			chk(json.NewEncoder(os.Stdout).Encode(r))
			continue
		}
		internal.PrintResult(r)
	}
}
