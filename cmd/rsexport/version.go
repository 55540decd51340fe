package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/rsexport/internal/rtabi"
)

// Version is the rsexport release.
const Version = "0.1.0-dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rsexport version %s\n", Version)
			fmt.Fprintf(out, "go version %s\n", runtime.Version())
			fmt.Fprintf(out, "target %s\n", rtabi.TargetTriple)
			fmt.Fprintf(out, "data layout %s\n", rtabi.DataLayout)
		},
	}
}
