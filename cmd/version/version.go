package version

import (
	"fmt"
	"os"
	"runtime"

	"git.sr.ht/~flobar/lrt/cmd/internal"
	"github.com/spf13/cobra"
)

// CMD defines the lrt version command.
var CMD = &cobra.Command{
	Use:   "version",
	Short: "Print lrt's version",
	Run:   run,
}

func run(_ *cobra.Command, args []string) {
	fmt.Printf("%s version: %s [%s/%s]\n", os.Args[0], internal.Version, runtime.GOOS, runtime.GOARCH)
}
