// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package logger provides a small leveled, colored console logger.

Each [Logger] speaks for one owner, usually a subsystem name, and writes one
line per call to standard output:

	ESC[<color>m> [<owner>; <file>:<line>] [<LEVEL>] <message>ESC[0m

The file and line are those of the caller and are resolved automatically.

# Levels

Six levels exist, each with its own visibility flag:

  - debug (hidden by default, light blue)
  - info (shown, default color)
  - verbose (hidden by default, light blue)
  - warn (shown, yellow)
  - error (shown, light red)
  - fatal (shown, dark red)

A hidden level costs a flag check: nothing is formatted and nothing is written.

# Basic Usage

	log := logger.New("net", logger.WithDebug(true))
	log.Info("listening on 8080")
	log.Debugf("accepted %d connections", n)

Warn, error and fatal calls carry a [Status] code with details and a
suggestion, printed as an indented block:

	log.Error(logger.StatusBadValue, "port out of range", "use 1-65535")

	> [net; server.go:42] [ERROR] code 006: bad value
		port out of range
		use 1-65535

Fatal only logs. Ending the program is the caller's decision.

# Nested Colors

A message may hold already colored text. Every reset sequence inside the
message is rewritten to the color of the current level so the line keeps its
color up to the end.

# Configuration

Options set the initial visibility, the output and input streams and color.
[WithEnv] reads overrides from the environment:

	KOJO_LOG_LEVELS=info,warn,error ./app
	KOJO_DEBUG=true ./app
	NO_COLOR=1 ./app

Flags can also be flipped at any time with SetDebug, SetInfo and friends.

# Default Logger

Package-level functions such as [Info] and [Warn] use a default logger named
after the executable. [Initialize] reconfigures it from the environment.

# Concurrency

A Logger may be shared between goroutines. Writes are serialized so lines never
interleave, and visibility flags are atomic.
*/
package logger
