// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

// Package statuserr provides error types carrying a logger.Status and a suggestion,
// so failures can travel up the call stack and be logged in one place.
package statuserr

import (
	"errors"

	"github.com/kojo-dev/kojo/logger"
)

// CodedError wraps an error with a status code and a suggestion for the reader.
type CodedError struct {
	err        error
	status     logger.Status
	suggestion string
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *CodedError) Unwrap() error {
	return e.err
}

// Status returns the status code associated with this error.
func (e *CodedError) Status() logger.Status {
	return e.status
}

// Suggestion returns the hint printed under the error details.
func (e *CodedError) Suggestion() string {
	return e.suggestion
}

// WithStatus wraps an error with a status code and a suggestion.
// If err is nil, WithStatus returns nil.
func WithStatus(err error, status logger.Status, suggestion string) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, status: status, suggestion: suggestion}
}

// New creates a new error with the given message, status code and suggestion.
func New(message string, status logger.Status, suggestion string) error {
	return &CodedError{err: errors.New(message), status: status, suggestion: suggestion}
}

// Status extracts the status code from an error.
// It unwraps the error chain looking for a CodedError.
// A nil error is ok; an error without a code is a bad value.
func Status(err error) logger.Status {
	if err == nil {
		return logger.StatusOK
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.status
	}

	return logger.StatusBadValue
}

// Suggestion extracts the suggestion of the first CodedError in the chain, if any.
func Suggestion(err error) string {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.suggestion
	}
	return ""
}

// Log writes err to l at lvl, with the call site of the caller of Log.
// At warn, error and fatal level the status code and suggestion come from err;
// at other levels only the error text is written. A nil error logs nothing.
func Log(l *logger.Logger, lvl logger.Level, err error) {
	if err == nil || !l.Enabled(lvl) {
		return
	}
	msg := err.Error()
	if lvl.HasStatus() {
		msg = logger.StatusMessage(Status(err), msg, Suggestion(err))
	}
	_ = l.Output(2, lvl, msg)
}
