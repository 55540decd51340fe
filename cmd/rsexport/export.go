package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/rsexport/internal/config"
	"github.com/you-not-fish/rsexport/internal/diag"
	"github.com/you-not-fish/rsexport/internal/element"
	"github.com/you-not-fish/rsexport/internal/export"
	"github.com/you-not-fish/rsexport/internal/syntax"
	"github.com/you-not-fish/rsexport/internal/types"
	"github.com/you-not-fish/rsexport/internal/types2"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export the types of the declared variables",
		Long: `Parse and check a declaration file, then export the type of every
top-level variable. Diagnostics are printed to stderr; variables whose
type is not exportable are left out of the output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts.cfg)
		},
	}
}

// exportedVar is the export result of one variable.
type exportedVar struct {
	Name string             `json:"name" yaml:"name"`
	Pos  string             `json:"pos" yaml:"pos"`
	Type export.Description `json:"type" yaml:"type"`
}

func runExport(stdout, stderr io.Writer, filename string, cfg config.Config) error {
	file, err := parseFile(filename, stderr)
	if err != nil {
		return err
	}

	conf := &types2.Config{
		Error: func(pos syntax.Pos, msg string) {
			fmt.Fprintf(stderr, "%s: %s\n", pos, msg)
		},
	}
	pkg, err := types2.Check(filename, file, conf, nil)
	if err != nil {
		return failed(exitUserError)
	}

	var diags diag.List
	vars, err := exportVars(pkg, &diags)
	diags.Fprint(stderr)
	if err != nil {
		return &exitError{code: exitSysError, err: fmt.Errorf("internal error: %w", err)}
	}

	if err := writeVars(stdout, cfg.Format, vars); err != nil {
		return &exitError{code: exitSysError, err: err}
	}
	if cfg.Strict && diags.Len() > 0 {
		return failed(exitUserError)
	}
	return nil
}

// exportVars exports the type of every package-level variable in
// declaration order. Variables whose type is not exportable are reported
// to diags and left out. An element table that disagrees with the
// declared types is returned as an *element.InvariantError.
func exportVars(pkg *types.Package, diags *diag.List) (vars []exportedVar, err error) {
	defer element.Recover(&err)

	ctx := export.NewContext(nil, diags)
	r := element.NewResolver(nil, nil)
	ctx.SetResolver(r)

	decls := pkg.Vars()
	if len(decls) == 0 {
		diags.Warnf(syntax.Pos{}, "no variables to export")
	}

	for _, v := range decls {
		diags.SetPos(v.Pos())
		t, rerr := r.ResolveDecl(ctx, v)
		if errors.Is(rerr, element.ErrNotExportable) {
			continue
		}
		if rerr != nil {
			return nil, rerr
		}
		vars = append(vars, exportedVar{
			Name: v.Name(),
			Pos:  v.Pos().String(),
			Type: export.Describe(t),
		})
	}
	return vars, nil
}

func writeVars(w io.Writer, format string, vars []exportedVar) error {
	if vars == nil {
		vars = []exportedVar{}
	}
	return writeOutput(w, format, vars, func() {
		for i := range vars {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "var %s\n", vars[i].Name)
			export.FprintDescription(w, &vars[i].Type)
		}
	})
}

// parseFile parses filename, printing syntax errors to stderr.
func parseFile(filename string, stderr io.Writer) (*syntax.File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &exitError{code: exitUserError, err: err}
	}
	defer f.Close()

	errh := func(pos syntax.Pos, msg string) {
		fmt.Fprintf(stderr, "%s: %s\n", pos, msg)
	}
	p := syntax.NewParser(filename, f, errh)
	file := p.Parse()
	if p.Errors() > 0 {
		return file, failed(exitUserError)
	}
	return file, nil
}
