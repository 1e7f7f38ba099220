// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"github.com/kojo-dev/kojo/logger"
	"github.com/kojo-dev/kojo/statuserr"
)

// Middleware returns an HTTP middleware that recovers from panics.
// The panic is logged to l at error level and the client receives a
// 500 Internal Server Error, preventing the panic from crashing the server.
// http.ErrAbortHandler is re-raised, as net/http expects.
func Middleware(l *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared as net/http does
					panic(rec)
				}
				err := fmt.Errorf("panic serving %s %s: %w", r.Method, r.URL.Path, PanicError(rec))
				statuserr.Log(l, logger.LevelError, err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// LogPanic logs a panic in progress at fatal level, then panics again with the
// same value. It must be deferred directly:
//
//	defer recovery.LogPanic(log)
func LogPanic(l *logger.Logger) {
	rec := recover()
	if rec == nil {
		return
	}
	statuserr.Log(l, logger.LevelFatal, fmt.Errorf("panic: %w", PanicError(rec)))
	panic(rec)
}

// PanicError turns a recovered panic value into an error carrying a status:
// errors that already have one keep it, nil pointer dereferences are null
// pointers and anything else is a bad value.
func PanicError(rec any) error {
	err, ok := rec.(error)
	if !ok {
		return statuserr.New(fmt.Sprint(rec), logger.StatusBadValue, "")
	}

	var coded *statuserr.CodedError
	if errors.As(err, &coded) {
		return err
	}

	var rtErr runtime.Error
	if errors.As(err, &rtErr) && strings.Contains(rtErr.Error(), "nil pointer dereference") {
		return statuserr.WithStatus(err, logger.StatusNullPointer, "check for nil before dereferencing")
	}
	return statuserr.WithStatus(err, logger.StatusBadValue, "")
}
