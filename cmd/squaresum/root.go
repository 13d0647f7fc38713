// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/milliams/square-sum/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:          "squaresum",
		Short:        "Search for square-sum Hamiltonian paths",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&gf.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&gf.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&gf.logFormat, "log-format", "", "log format (text, json)")

	root.AddCommand(newRunCmd(gf), newCheckCmd(), newGraphCmd())

	return root
}

// loadConfig reads the config file (or defaults) and applies the global
// flag overrides.
func (gf *globalFlags) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if gf.configPath != "" {
		cfg, err = config.Load(gf.configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.Default()
	}
	if gf.logLevel != "" {
		cfg.Log.Level = gf.logLevel
	}
	if gf.logFormat != "" {
		cfg.Log.Format = gf.logFormat
	}

	return cfg, nil
}

// newLogger builds the process logger from cfg.
func newLogger(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
