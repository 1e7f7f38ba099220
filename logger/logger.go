// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Logger writes leveled, colored lines on behalf of one owner.
// It is safe for concurrent use; a Logger must not be copied after first use.
type Logger struct {
	owner   string
	color   bool
	visible [levelCount]atomic.Bool

	mu  sync.Mutex // serializes writes to out
	out io.Writer

	inMu sync.Mutex
	in   *bufio.Reader
}

// New creates a logger speaking for owner. Without options debug and verbose
// are hidden, every other level is shown, output goes to [os.Stdout] in color.
func New(owner string, opts ...Option) *Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	l := &Logger{
		owner: owner,
		color: cfg.color,
		out:   cfg.output,
	}
	if cfg.input != nil {
		l.in = bufio.NewReader(cfg.input)
	}
	for lvl, v := range cfg.visible {
		l.visible[lvl].Store(v)
	}
	return l
}

// Owner returns the display name given at construction.
func (l *Logger) Owner() string {
	return l.owner
}

// Enabled reports whether lines at lvl are currently emitted.
func (l *Logger) Enabled(lvl Level) bool {
	return lvl.valid() && l.visible[lvl].Load()
}

// SetVisible shows or hides lvl from the next call on. Unknown levels are ignored.
func (l *Logger) SetVisible(lvl Level, visible bool) {
	if lvl.valid() {
		l.visible[lvl].Store(visible)
	}
}

// SetDebug shows or hides debug lines.
func (l *Logger) SetDebug(visible bool) { l.SetVisible(LevelDebug, visible) }

// SetInfo shows or hides info lines.
func (l *Logger) SetInfo(visible bool) { l.SetVisible(LevelInfo, visible) }

// SetVerbose shows or hides verbose lines.
func (l *Logger) SetVerbose(visible bool) { l.SetVisible(LevelVerbose, visible) }

// SetWarn shows or hides warn lines.
func (l *Logger) SetWarn(visible bool) { l.SetVisible(LevelWarn, visible) }

// SetError shows or hides error lines.
func (l *Logger) SetError(visible bool) { l.SetVisible(LevelError, visible) }

// SetFatal shows or hides fatal lines.
func (l *Logger) SetFatal(visible bool) { l.SetVisible(LevelFatal, visible) }

// Output emits msg at lvl. Calldepth counts the frames to skip when resolving
// the call site; 1 is the caller of Output. Hidden levels return nil without
// writing. The error is the one returned by the output writer.
func (l *Logger) Output(calldepth int, lvl Level, msg string) error {
	if !l.Enabled(lvl) {
		return nil
	}
	return l.OutputAt(Caller(calldepth), lvl, msg)
}

// OutputAt is like Output with an explicit call site, for adapters that
// resolve the location themselves.
func (l *Logger) OutputAt(site CallSite, lvl Level, msg string) error {
	if !l.Enabled(lvl) {
		return nil
	}
	line := l.Format(lvl, site, msg)

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := io.WriteString(l.out, line); err != nil {
		return fmt.Errorf("writing %s line: %w", lvl, err)
	}
	return nil
}

// Like the standard library log package, the level methods below drop the
// writer error. Use Output when it matters.

// Debug logs msg at debug level.
func (l *Logger) Debug(msg string) {
	if !l.Enabled(LevelDebug) {
		return
	}
	_ = l.Output(2, LevelDebug, msg)
}

// Debugf logs at debug level. The message is only formatted when debug is visible.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.Enabled(LevelDebug) {
		return
	}
	_ = l.Output(2, LevelDebug, fmt.Sprintf(format, args...))
}

// Info logs msg at info level.
func (l *Logger) Info(msg string) {
	if !l.Enabled(LevelInfo) {
		return
	}
	_ = l.Output(2, LevelInfo, msg)
}

// Infof logs at info level. The message is only formatted when info is visible.
func (l *Logger) Infof(format string, args ...any) {
	if !l.Enabled(LevelInfo) {
		return
	}
	_ = l.Output(2, LevelInfo, fmt.Sprintf(format, args...))
}

// Verbose logs msg at verbose level.
func (l *Logger) Verbose(msg string) {
	if !l.Enabled(LevelVerbose) {
		return
	}
	_ = l.Output(2, LevelVerbose, msg)
}

// Verbosef logs at verbose level. The message is only formatted when verbose is visible.
func (l *Logger) Verbosef(format string, args ...any) {
	if !l.Enabled(LevelVerbose) {
		return
	}
	_ = l.Output(2, LevelVerbose, fmt.Sprintf(format, args...))
}

// Warn logs a status code with details and a suggestion at warn level.
func (l *Logger) Warn(code Status, details, suggestion string) {
	if !l.Enabled(LevelWarn) {
		return
	}
	_ = l.Output(2, LevelWarn, StatusMessage(code, details, suggestion))
}

// Warnf is like Warn with details built from format and args.
func (l *Logger) Warnf(code Status, suggestion, format string, args ...any) {
	if !l.Enabled(LevelWarn) {
		return
	}
	_ = l.Output(2, LevelWarn, StatusMessage(code, fmt.Sprintf(format, args...), suggestion))
}

// Error logs a status code with details and a suggestion at error level.
func (l *Logger) Error(code Status, details, suggestion string) {
	if !l.Enabled(LevelError) {
		return
	}
	_ = l.Output(2, LevelError, StatusMessage(code, details, suggestion))
}

// Errorf is like Error with details built from format and args.
func (l *Logger) Errorf(code Status, suggestion, format string, args ...any) {
	if !l.Enabled(LevelError) {
		return
	}
	_ = l.Output(2, LevelError, StatusMessage(code, fmt.Sprintf(format, args...), suggestion))
}

// Fatal logs a status code with details and a suggestion at fatal level.
// It does not stop the program; exiting is up to the caller.
func (l *Logger) Fatal(code Status, details, suggestion string) {
	if !l.Enabled(LevelFatal) {
		return
	}
	_ = l.Output(2, LevelFatal, StatusMessage(code, details, suggestion))
}

// Fatalf is like Fatal with details built from format and args.
func (l *Logger) Fatalf(code Status, suggestion, format string, args ...any) {
	if !l.Enabled(LevelFatal) {
		return
	}
	_ = l.Output(2, LevelFatal, StatusMessage(code, fmt.Sprintf(format, args...), suggestion))
}
