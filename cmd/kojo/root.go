// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kojo-dev/kojo/env"
	"github.com/kojo-dev/kojo/logger"
	"github.com/kojo-dev/kojo/logging"
)

type rootOptions struct {
	owner   string
	debug   bool
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "kojo",
		Short: "Print sample lines at every kojo log level",
		Long: `kojo prints one line per log level so terminal colors and
log scrapers can be checked against the real output.

Environment:
  KOJO_LOG_LEVELS  comma separated visible levels (all, none, debug, info, ...)
  KOJO_DEBUG       show debug lines
  KOJO_VERBOSE     show verbose lines
  NO_COLOR         disable colors`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(opts.newLogger(cmd))
		},
	}

	opts.addFlags(cmd.PersistentFlags())
	cmd.AddCommand(newCodesCmd(opts), newAskCmd(opts))
	return cmd
}

func (o *rootOptions) addFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.owner, "owner", "kojo", "owner name printed in every line")
	flags.BoolVar(&o.debug, "debug", false, "show debug lines")
	flags.BoolVar(&o.verbose, "verbose", false, "show verbose lines")
	flags.BoolVar(&o.noColor, "no-color", false, "disable colors")
}

// newLogger builds the logger for cmd. Explicit flags win over the environment.
func (o *rootOptions) newLogger(cmd *cobra.Command) *logger.Logger {
	opts := []logger.Option{
		logger.WithOutput(cmd.OutOrStdout()),
		logger.WithInput(cmd.InOrStdin()),
		logger.WithEnv(&env.OSReader{}),
	}
	flags := cmd.Flags()
	if flags.Changed("debug") {
		opts = append(opts, logger.WithDebug(o.debug))
	}
	if flags.Changed("verbose") {
		opts = append(opts, logger.WithVerbose(o.verbose))
	}
	if o.noColor || (cmd.OutOrStdout() == os.Stdout && color.NoColor) {
		opts = append(opts, logger.WithColor(false))
	}
	return logger.New(o.owner, opts...)
}

func runDemo(log *logger.Logger) error {
	log.Debug("resolved configuration")
	log.Info("listening on 8080")
	log.Verbose("worker pool sized to 4")
	log.Warn(logger.StatusVersion, "archive written by v1", "re-save it to upgrade")
	log.Error(logger.StatusBadValue, "port out of range", "use 1-65535")
	log.Info("nested " + color.New(color.FgGreen).Sprint("green") + " text keeps the line color")

	slogger := logging.New(log)
	slogger.Info("via slog", "adapter", "log/slog")

	log.Fatal(logger.StatusNullPointer, "demo fatal line", "nothing to do, the program keeps running")
	return nil
}

func newCodesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the status codes and their phrases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := opts.newLogger(cmd)
			for _, code := range logger.AllStatuses() {
				log.Infof("code %s: %s", code.Code(), code)
			}
			return nil
		},
	}
}

func newAskCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <prompt>",
		Short: "Prompt for one line of input and log the answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.newLogger(cmd)
			answer, err := log.GetInput(args[0] + " ")
			if err != nil {
				return fmt.Errorf("reading answer: %w", err)
			}
			log.Infof("answer: %q", answer)
			return nil
		},
	}
}
