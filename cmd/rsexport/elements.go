package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/rsexport/internal/element"
)

func newElementsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "elements [name...]",
		Short: "List the registered element names",
		Long: `Without arguments, list every registered element. With arguments,
look each name up and fail if any is not registered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runElements(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts.cfg.Format)
		},
	}
}

func runElements(stdout, stderr io.Writer, names []string, format string) error {
	entries := []element.Entry{}
	missing := 0

	if len(names) == 0 {
		for _, d := range element.DefaultRegistry().Descriptors() {
			entries = append(entries, d.Entry())
		}
	}
	for _, name := range names {
		d, ok := element.FindDescriptor(name)
		if !ok {
			fmt.Fprintf(stderr, "%s: not an element\n", name)
			missing++
			continue
		}
		entries = append(entries, d.Entry())
	}

	err := writeOutput(stdout, format, entries, func() {
		for _, e := range entries {
			norm := ""
			if e.Normalized {
				norm = " normalized"
			}
			fmt.Fprintf(stdout, "%-16s %-10s x%d%s\n", e.Name, e.DataKind, e.VectorSize, norm)
		}
	})
	if err != nil {
		return &exitError{code: exitSysError, err: err}
	}
	if missing > 0 {
		return failed(exitUserError)
	}
	return nil
}
