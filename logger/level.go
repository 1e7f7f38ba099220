// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Level is the severity or category tag of a log call. Levels are ordered by
// convention only and are never compared numerically.
type Level int

const (
	// LevelDebug is intended for debugging purposes only.
	LevelDebug Level = iota
	// LevelInfo is the standard log.
	LevelInfo
	// LevelVerbose carries more information than necessary, but potentially useful.
	LevelVerbose
	// LevelWarn is a recommendation or non-crucial alert.
	LevelWarn
	// LevelError is a partial, non-fatal error that allows execution to continue.
	LevelError
	// LevelFatal is a program-terminating error. Terminating is left to the caller.
	LevelFatal

	levelCount
)

// ErrUnknownLevel is returned by ParseLevel for names that match no level.
var ErrUnknownLevel = errors.New("unknown log level")

// AllLevels returns every level in conventional severity order.
func AllLevels() []Level {
	return []Level{LevelDebug, LevelInfo, LevelVerbose, LevelWarn, LevelError, LevelFatal}
}

// String returns the uppercase label printed in every log line.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelVerbose:
		return "VERBOSE"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	}
	return "UNKNOWN"
}

// levelAttributes holds the SGR attributes of each level.
var levelAttributes = [levelCount][]color.Attribute{
	LevelDebug:   {color.Bold, color.FgBlue},   // light blue
	LevelInfo:    {color.Reset},                // default
	LevelVerbose: {color.Bold, color.FgBlue},   // light blue
	LevelWarn:    {color.Bold, color.FgYellow}, // yellow
	LevelError:   {color.Bold, color.FgRed},    // light red
	LevelFatal:   {color.Reset, color.FgRed},   // dark red
}

var levelColors = func() (codes [levelCount]string) {
	for lvl, attrs := range levelAttributes {
		parts := make([]string, len(attrs))
		for i, a := range attrs {
			parts[i] = strconv.Itoa(int(a))
		}
		codes[lvl] = strings.Join(parts, ";")
	}
	return codes
}()

// Color returns the SGR parameter string of the level, e.g. "1;33" for warn.
// Unknown levels use the terminal default "0".
func (l Level) Color() string {
	if !l.valid() {
		return "0"
	}
	return levelColors[l]
}

// HasStatus reports whether calls at this level carry a Status code body.
func (l Level) HasStatus() bool {
	return l == LevelWarn || l == LevelError || l == LevelFatal
}

func (l Level) valid() bool {
	return l >= 0 && l < levelCount
}

// ParseLevel returns the level named by s, ignoring case and surrounding spaces.
// "warning" is accepted as an alias of warn.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "verbose":
		return LevelVerbose, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Status is a structured diagnostic code attached to warn, error and fatal
// messages. It is payload, never a call failure.
//
// Adding a code requires adding its phrase to String as well.
type Status int

const (
	// StatusOK reports no problem.
	StatusOK Status = iota
	// StatusNullFile reports a missing or empty file.
	StatusNullFile
	// StatusFileMagic reports a file whose signature does not match its format.
	StatusFileMagic
	// StatusVersion reports an unsupported version.
	StatusVersion
	// StatusNullPointer reports a nil reference.
	StatusNullPointer
	// StatusTypeMismatch reports a value of an unexpected type.
	StatusTypeMismatch
	// StatusBadValue reports a value outside its valid range or form.
	StatusBadValue
	// StatusNullData reports missing or empty data.
	StatusNullData
	// StatusMissingField reports a required field that is absent.
	StatusMissingField
	// StatusValueMismatch reports two values that should agree but do not.
	StatusValueMismatch
)

// AllStatuses returns every status code in numeric order.
func AllStatuses() []Status {
	return []Status{
		StatusOK,
		StatusNullFile,
		StatusFileMagic,
		StatusVersion,
		StatusNullPointer,
		StatusTypeMismatch,
		StatusBadValue,
		StatusNullData,
		StatusMissingField,
		StatusValueMismatch,
	}
}

// String returns the human-readable phrase of the code.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNullFile:
		return "null file"
	case StatusFileMagic:
		return "file magic/signature"
	case StatusVersion:
		return "version"
	case StatusNullPointer:
		return "null pointer"
	case StatusTypeMismatch:
		return "type mismatch"
	case StatusBadValue:
		return "bad value"
	case StatusNullData:
		return "null data"
	case StatusMissingField:
		return "missing field"
	case StatusValueMismatch:
		return "value mismatch"
	}
	return "unknown code"
}

// Code returns the zero-padded three digit numeric value, e.g. "006".
func (s Status) Code() string {
	return fmt.Sprintf("%03d", int(s))
}
