// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

const (
	escape = "\x1b["
	reset  = escape + "0m"
)

var (
	// resetPattern matches an SGR sequence whose leading parameter is a reset:
	// "0m", "00m", bare "m", and compound forms such as "0;1m" or ";1m".
	// The parameters after the reset are captured.
	resetPattern = regexp.MustCompile(`\x1b\[0*(;[0-9;]*)?m`)
	sgrPattern   = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

// CallSite is the source location a log call was made from.
// The zero value means the location is unknown.
type CallSite struct {
	File string
	Line int
}

// NewCallSite returns the call site for file and line, keeping only the base name of file.
func NewCallSite(file string, line int) CallSite {
	if file == "" {
		return CallSite{}
	}
	return CallSite{File: filepath.Base(file), Line: line}
}

// Caller returns the call site skip frames above the caller of Caller.
// Caller(0) is the function calling Caller.
func Caller(skip int) CallSite {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{}
	}
	return NewCallSite(file, line)
}

// Known reports whether the location was resolved.
func (c CallSite) Known() bool {
	return c.File != ""
}

func (c CallSite) String() string {
	return c.File + ":" + strconv.Itoa(c.Line)
}

// StatusMessage composes the body of a warn, error or fatal line:
//
//	code NNN: <phrase>
//		<details>
//		<suggestion>
func StatusMessage(code Status, details, suggestion string) string {
	return fmt.Sprintf("code %s: %s\n\t%s\n\t%s", code.Code(), code, details, suggestion)
}

// StripANSI removes every SGR escape sequence from s.
func StripANSI(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// repairResets rewrites the reset of every SGR sequence embedded in msg to
// re-assert the color of lvl, so nested colored text does not end the outer
// color early. Attributes following a leading reset are kept.
func repairResets(msg string, lvl Level) string {
	if !strings.Contains(msg, escape) {
		return msg
	}
	return resetPattern.ReplaceAllString(msg, escape+lvl.Color()+"${1}m")
}

// Format renders one complete output line, terminator included:
//
//	ESC[<color>m> [<owner>; <file>:<line>] [<LEVEL>] <message>ESC[0m
//
// The "; <file>:<line>" segment is left out when site is unknown. With color
// disabled no escape sequence is written and those found in msg are stripped.
func (l *Logger) Format(lvl Level, site CallSite, msg string) string {
	var b strings.Builder
	b.Grow(len(l.owner) + len(msg) + 48)

	if l.color {
		b.WriteString(escape)
		b.WriteString(lvl.Color())
		b.WriteByte('m')
		msg = repairResets(msg, lvl)
	} else {
		msg = StripANSI(msg)
	}

	b.WriteString("> [")
	b.WriteString(l.owner)
	if site.Known() {
		b.WriteString("; ")
		b.WriteString(site.String())
	}
	b.WriteString("] [")
	b.WriteString(lvl.String())
	b.WriteString("] ")
	b.WriteString(msg)

	if l.color {
		b.WriteString(reset)
	}
	b.WriteByte('\n')
	return b.String()
}
