// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned by GetInput when the logger was built without an input reader.
var ErrNoInput = errors.New("logger has no input")

// GetInput writes prompt as is, then blocks until one line is read from the
// input. The returned line has its "\n" or "\r\n" terminator removed. A final
// line without terminator is returned as read, without error.
func (l *Logger) GetInput(prompt string) (string, error) {
	if l.in == nil {
		return "", ErrNoInput
	}

	l.mu.Lock()
	_, err := io.WriteString(l.out, prompt)
	l.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	l.inMu.Lock()
	defer l.inMu.Unlock()
	line, err := l.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
		line = strings.TrimSuffix(trimmed, "\r")
	}
	return line, nil
}

// GetInputf is like GetInput with the prompt built from format and args.
func (l *Logger) GetInputf(format string, args ...any) (string, error) {
	return l.GetInput(fmt.Sprintf(format, args...))
}
