// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package logger_test

import (
	"os"

	"github.com/kojo-dev/kojo/logger"
)

func ExampleLogger_Error() {
	log := logger.New("net", logger.WithOutput(os.Stdout), logger.WithColor(false))
	_ = log.OutputAt(logger.CallSite{File: "server.go", Line: 42}, logger.LevelError,
		logger.StatusMessage(logger.StatusBadValue, "port out of range", "use 1-65535"))
	// Output:
	// > [net; server.go:42] [ERROR] code 006: bad value
	// 	port out of range
	// 	use 1-65535
}

func ExampleLogger_Debug() {
	log := logger.New("net", logger.WithOutput(os.Stdout), logger.WithColor(false))
	log.Debug("hidden by default")
	log.SetDebug(true)
	_ = log.OutputAt(logger.CallSite{}, logger.LevelDebug, "shown once enabled")
	// Output:
	// > [net] [DEBUG] shown once enabled
}
