package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/you-not-fish/rsexport/internal/config"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries a process exit code out of a command.
// A nil err means the command already reported the failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// failed returns an exit error for a failure that was already printed.
func failed(code int) error {
	return &exitError{code: code}
}

// rootOptions holds the settings shared by all subcommands.
type rootOptions struct {
	configFile string
	cfg        config.Config
}

// flag names bound to config keys.
var boundFlags = []struct {
	key, flag string
}{
	{config.KeyFormat, "format"},
	{config.KeyLogLevel, "log-level"},
	{config.KeyStrict, "strict"},
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   "rsexport",
		Short: "Resolve the exported form of script header types",
		Long: `rsexport checks a declaration file and reports how each declared
variable's type is exported. Typedef names registered as elements
(rs_pixel_rgba, ...) are exported as elements; everything else goes
through the generic export rules.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default: .rsexport.yaml in . or $HOME)")
	flags.String("format", config.DefaultFormat, "output format (text, json or yaml)")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn or error)")
	flags.Bool("strict", false, "fail when any diagnostic is reported")

	cmd.AddCommand(
		newExportCmd(opts),
		newElementsCmd(opts),
		newASTCmd(opts),
		newTokensCmd(),
		newVersionCmd(),
	)
	return cmd
}

// load reads the configuration, applies flag overrides and installs the
// package loggers.
func (o *rootOptions) load(cmd *cobra.Command) error {
	v := config.New(o.configFile)
	if err := bindFlags(v, cmd); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	o.cfg = cfg

	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	installLogger(logger)
	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for _, b := range boundFlags {
		f := cmd.Flags().Lookup(b.flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(b.key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", b.flag, err)
		}
	}
	return nil
}
