// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/kojo-dev/kojo/env"
)

// EnvOwner overrides the owner name of the default logger.
const EnvOwner = "KOJO_LOG_OWNER"

var std atomic.Pointer[Logger]

func init() {
	std.Store(New(defaultOwner()))
}

func defaultOwner() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "main"
	}
	return filepath.Base(os.Args[0])
}

// Default returns the logger behind the package-level functions.
func Default() *Logger {
	return std.Load()
}

// SetDefault replaces the logger behind the package-level functions. Nil is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		std.Store(l)
	}
}

// DebugProvider is an interface for checking if debug mode is enabled.
// This allows different projects to plug in their own debug flag implementation.
type DebugProvider interface {
	IsDebug() bool
}

// defaultDebugProvider provides a default implementation that returns false.
type defaultDebugProvider struct{}

func (*defaultDebugProvider) IsDebug() bool {
	return false
}

// Initialize configures the default logger from the process environment.
// See [WithEnv] for the variables read; [EnvOwner] renames the owner.
func Initialize() {
	InitializeWithOptions(&env.OSReader{}, &defaultDebugProvider{})
}

// InitializeWithDebug configures the default logger with a custom debug provider.
// This allows callers to plug in their own debug flag implementation (e.g., a CLI flag).
func InitializeWithDebug(debugProvider DebugProvider) {
	InitializeWithOptions(&env.OSReader{}, debugProvider)
}

// InitializeWithOptions configures the default logger with a custom environment
// reader and debug provider. An enabled debug provider wins over the environment.
func InitializeWithOptions(envReader env.Reader, debugProvider DebugProvider, opts ...Option) {
	owner := envReader.Getenv(EnvOwner)
	if owner == "" {
		owner = defaultOwner()
	}

	opts = append([]Option{WithEnv(envReader)}, opts...)
	if debugProvider.IsDebug() {
		opts = append(opts, WithDebug(true))
	}
	SetDefault(New(owner, opts...))
}

// Debug logs a message at debug level using the default logger.
func Debug(msg string) {
	if l := Default(); l.Enabled(LevelDebug) {
		_ = l.Output(2, LevelDebug, msg)
	}
}

// Debugf logs a formatted message at debug level using the default logger.
func Debugf(format string, args ...any) {
	if l := Default(); l.Enabled(LevelDebug) {
		_ = l.Output(2, LevelDebug, fmt.Sprintf(format, args...))
	}
}

// Info logs a message at info level using the default logger.
func Info(msg string) {
	if l := Default(); l.Enabled(LevelInfo) {
		_ = l.Output(2, LevelInfo, msg)
	}
}

// Infof logs a formatted message at info level using the default logger.
func Infof(format string, args ...any) {
	if l := Default(); l.Enabled(LevelInfo) {
		_ = l.Output(2, LevelInfo, fmt.Sprintf(format, args...))
	}
}

// Verbose logs a message at verbose level using the default logger.
func Verbose(msg string) {
	if l := Default(); l.Enabled(LevelVerbose) {
		_ = l.Output(2, LevelVerbose, msg)
	}
}

// Verbosef logs a formatted message at verbose level using the default logger.
func Verbosef(format string, args ...any) {
	if l := Default(); l.Enabled(LevelVerbose) {
		_ = l.Output(2, LevelVerbose, fmt.Sprintf(format, args...))
	}
}

// Warn logs a status code at warn level using the default logger.
func Warn(code Status, details, suggestion string) {
	if l := Default(); l.Enabled(LevelWarn) {
		_ = l.Output(2, LevelWarn, StatusMessage(code, details, suggestion))
	}
}

// Error logs a status code at error level using the default logger.
func Error(code Status, details, suggestion string) {
	if l := Default(); l.Enabled(LevelError) {
		_ = l.Output(2, LevelError, StatusMessage(code, details, suggestion))
	}
}

// Fatal logs a status code at fatal level using the default logger.
// The program keeps running.
func Fatal(code Status, details, suggestion string) {
	if l := Default(); l.Enabled(LevelFatal) {
		_ = l.Output(2, LevelFatal, StatusMessage(code, details, suggestion))
	}
}
