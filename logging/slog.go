// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/kojo-dev/kojo/logger"
)

// Extra slog levels for the logger levels slog has no name for.
const (
	// LevelVerbose maps to logger.LevelVerbose.
	LevelVerbose = slog.LevelDebug - 4
	// LevelFatal maps to logger.LevelFatal.
	LevelFatal = slog.LevelError + 4
)

// FromSlogLevel maps a slog level to the logger level it is emitted at.
func FromSlogLevel(lvl slog.Level) logger.Level {
	switch {
	case lvl <= LevelVerbose:
		return logger.LevelVerbose
	case lvl < slog.LevelInfo:
		return logger.LevelDebug
	case lvl < slog.LevelWarn:
		return logger.LevelInfo
	case lvl < slog.LevelError:
		return logger.LevelWarn
	case lvl < LevelFatal:
		return logger.LevelError
	default:
		return logger.LevelFatal
	}
}

// StatusAttr returns the attribute selecting the status code of a warn, error or fatal line.
func StatusAttr(code logger.Status) slog.Attr {
	return slog.Int(StatusKey, int(code))
}

// SuggestionAttr returns the attribute filling the suggestion line.
func SuggestionAttr(s string) slog.Attr {
	return slog.String(SuggestionKey, s)
}

type field struct {
	key   string
	value any
}

// Handler is a [log/slog.Handler] writing through a [*logger.Logger].
// Visibility is decided by the logger flags, not by slog levels.
type Handler struct {
	l      *logger.Logger
	fields []field
	prefix string
}

// NewHandler returns a slog handler emitting through l.
func NewHandler(l *logger.Logger) *Handler {
	return &Handler{l: l}
}

// New returns a [*log/slog.Logger] emitting through l.
func New(l *logger.Logger) *slog.Logger {
	return slog.New(NewHandler(l))
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, lvl slog.Level) bool {
	return h.l.Enabled(FromSlogLevel(lvl))
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	lvl := FromSlogLevel(r.Level)

	fields := make(map[string]any, len(h.fields)+r.NumAttrs())
	for _, f := range h.fields {
		fields[f.key] = f.value
	}
	r.Attrs(func(a slog.Attr) bool {
		for _, f := range flatten(h.prefix, a, nil) {
			fields[f.key] = f.value
		}
		return true
	})

	return h.l.OutputAt(recordSite(r.PC), lvl, render(lvl, r.Message, fields))
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.fields = append([]field(nil), h.fields...)
	for _, a := range attrs {
		clone.fields = flatten(h.prefix, a, clone.fields)
	}
	return &clone
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// flatten appends a to dst, qualifying keys with prefix and expanding groups.
func flatten(prefix string, a slog.Attr, dst []field) []field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			dst = flatten(groupPrefix, ga, dst)
		}
		return dst
	}
	return append(dst, field{key: prefix + a.Key, value: a.Value.Any()})
}

func recordSite(pc uintptr) logger.CallSite {
	if pc == 0 {
		return logger.CallSite{}
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	return logger.NewCallSite(frame.File, frame.Line)
}
