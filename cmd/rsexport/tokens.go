package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/rsexport/internal/syntax"
)

func newTokensCmd() *cobra.Command {
	var noASI bool
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a declaration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], !noASI)
		},
	}
	cmd.Flags().BoolVar(&noASI, "no-asi", false, "disable automatic semicolon insertion")
	return cmd
}

// runTokens scans filename and prints all tokens with positions.
func runTokens(stdout, stderr io.Writer, filename string, asi bool) error {
	f, err := os.Open(filename)
	if err != nil {
		return &exitError{code: exitUserError, err: err}
	}
	defer f.Close()

	nerrs := 0
	errh := func(line, col uint32, msg string) {
		fmt.Fprintf(stderr, "%s:%d:%d: %s\n", filename, line, col, msg)
		nerrs++
	}

	s := syntax.NewScanner(filename, f, errh)
	s.SetASIEnabled(asi)

	fmt.Fprintf(stdout, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(stdout, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for {
		s.Next()
		tok := s.Token()
		fmt.Fprintf(stdout, "%-20s %-12s %s\n", s.Pos(), tok, formatLiteral(s.Literal()))
		if tok.IsEOF() {
			break
		}
	}

	if nerrs > 0 {
		return failed(exitUserError)
	}
	return nil
}

// formatLiteral quotes literals containing characters that would break
// the column layout.
func formatLiteral(lit string) string {
	if strings.ContainsAny(lit, " \t\n\r") {
		return strconv.Quote(lit)
	}
	return lit
}
