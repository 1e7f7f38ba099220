// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"io"
	"os"
	"strings"

	"github.com/kojo-dev/kojo/env"
)

// Environment variables honored by WithEnv.
const (
	// EnvLevels lists the visible levels, comma separated. "all" and "none" are accepted.
	EnvLevels = "KOJO_LOG_LEVELS"
	// EnvDebug toggles debug visibility.
	EnvDebug = "KOJO_DEBUG"
	// EnvVerbose toggles verbose visibility.
	EnvVerbose = "KOJO_VERBOSE"
	// EnvNoColor disables color when present, whatever its value (https://no-color.org/).
	EnvNoColor = "NO_COLOR"
)

// config holds the resolved configuration for creating a logger.
type config struct {
	visible [levelCount]bool
	color   bool
	output  io.Writer
	input   io.Reader
}

func defaultConfig() *config {
	return &config{
		visible: [levelCount]bool{
			LevelDebug:   false,
			LevelInfo:    true,
			LevelVerbose: false,
			LevelWarn:    true,
			LevelError:   true,
			LevelFatal:   true,
		},
		color:  true,
		output: os.Stdout,
		input:  os.Stdin,
	}
}

// Option configures the logger created by [New]. Options apply in order.
type Option func(*config)

// WithVisibility sets the initial visibility of lvl. Unknown levels are ignored.
func WithVisibility(lvl Level, visible bool) Option {
	return func(c *config) {
		if lvl.valid() {
			c.visible[lvl] = visible
		}
	}
}

// WithDebug sets the initial debug visibility. The default is off.
func WithDebug(visible bool) Option { return WithVisibility(LevelDebug, visible) }

// WithInfo sets the initial info visibility. The default is on.
func WithInfo(visible bool) Option { return WithVisibility(LevelInfo, visible) }

// WithVerbose sets the initial verbose visibility. The default is off.
func WithVerbose(visible bool) Option { return WithVisibility(LevelVerbose, visible) }

// WithWarn sets the initial warn visibility. The default is on.
func WithWarn(visible bool) Option { return WithVisibility(LevelWarn, visible) }

// WithError sets the initial error visibility. The default is on.
func WithError(visible bool) Option { return WithVisibility(LevelError, visible) }

// WithFatal sets the initial fatal visibility. The default is on.
func WithFatal(visible bool) Option { return WithVisibility(LevelFatal, visible) }

// WithOutput sets the destination writer for log lines and prompts.
// The default is [os.Stdout]. A nil writer discards output.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w == nil {
			w = io.Discard
		}
		c.output = w
	}
}

// WithInput sets the reader GetInput reads answers from. The default is [os.Stdin].
func WithInput(r io.Reader) Option {
	return func(c *config) {
		c.input = r
	}
}

// WithColor enables or disables ANSI color. The default is enabled.
func WithColor(enabled bool) Option {
	return func(c *config) {
		c.color = enabled
	}
}

// WithEnv applies overrides from the environment, in this order:
// [EnvLevels], [EnvDebug], [EnvVerbose] and [EnvNoColor].
// Unset or unparsable variables leave the current setting untouched.
func WithEnv(r env.Reader) Option {
	return func(c *config) {
		if levels := strings.TrimSpace(r.Getenv(EnvLevels)); levels != "" {
			if visible, ok := parseVisibility(levels); ok {
				c.visible = visible
			}
		}
		c.visible[LevelDebug] = env.Bool(r, EnvDebug, c.visible[LevelDebug])
		c.visible[LevelVerbose] = env.Bool(r, EnvVerbose, c.visible[LevelVerbose])
		if env.Present(r, EnvNoColor) {
			c.color = false
		}
	}
}

// parseVisibility turns a comma separated level list into visibility flags.
// Unknown names are skipped; ok is false when no name was recognized.
func parseVisibility(s string) (visible [levelCount]bool, ok bool) {
	for _, name := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "all":
			for i := range visible {
				visible[i] = true
			}
			ok = true
			continue
		case "none":
			visible = [levelCount]bool{}
			ok = true
			continue
		}
		if lvl, err := ParseLevel(name); err == nil {
			visible[lvl] = true
			ok = true
		}
	}
	return visible, ok
}
