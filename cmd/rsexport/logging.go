package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/you-not-fish/rsexport/internal/config"
	"github.com/you-not-fish/rsexport/internal/diag"
	"github.com/you-not-fish/rsexport/internal/element"
	"github.com/you-not-fish/rsexport/internal/export"
)

// newLogger returns a console logger writing to w at the given level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidLogLevel, level)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core).Named("rsexport"), nil
}

// installLogger hands l to every package that logs.
func installLogger(l *zap.Logger) {
	export.SetLogger(l.Named("export"))
	element.SetLogger(l.Named("element"))
	diag.SetLogger(l.Named("diag"))
}
