package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/rsexport/internal/config"
	"github.com/you-not-fish/rsexport/internal/syntax"
)

func newASTCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the syntax tree of a declaration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts.cfg.Format)
		},
	}
}

// runAST prints the tree even when the file has syntax errors.
func runAST(stdout, stderr io.Writer, filename, format string) error {
	file, perr := parseFile(filename, stderr)
	if file == nil {
		return perr
	}

	switch format {
	case config.FormatJSON:
		if err := syntax.FprintJSON(stdout, file); err != nil {
			return &exitError{code: exitSysError, err: err}
		}
	default:
		syntax.Fprint(stdout, file)
	}
	return perr
}
