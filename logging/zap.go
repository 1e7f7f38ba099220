// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"slices"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kojo-dev/kojo/logger"
)

// FromZapLevel maps a zap level to the logger level it is emitted at.
// Levels below debug, such as logr V(2) and beyond, map to verbose.
func FromZapLevel(lvl zapcore.Level) logger.Level {
	switch {
	case lvl < zapcore.DebugLevel:
		return logger.LevelVerbose
	case lvl == zapcore.DebugLevel:
		return logger.LevelDebug
	case lvl == zapcore.InfoLevel:
		return logger.LevelInfo
	case lvl == zapcore.WarnLevel:
		return logger.LevelWarn
	case lvl == zapcore.ErrorLevel:
		return logger.LevelError
	default:
		return logger.LevelFatal
	}
}

// StatusField returns the zap field selecting the status code of a warn, error or fatal line.
func StatusField(code logger.Status) zap.Field {
	return zap.Int(StatusKey, int(code))
}

// SuggestionField returns the zap field filling the suggestion line.
func SuggestionField(s string) zap.Field {
	return zap.String(SuggestionKey, s)
}

type core struct {
	l      *logger.Logger
	fields []zapcore.Field
}

// NewCore returns a zapcore.Core emitting through l.
func NewCore(l *logger.Logger) zapcore.Core {
	return &core{l: l}
}

// NewZap returns a *zap.Logger emitting through l with caller annotation,
// so lines carry the location of the zap call.
//
// zap still applies its own semantics to Panic and Fatal entries: they are
// written at fatal level, then zap panics or exits.
func NewZap(l *logger.Logger, opts ...zap.Option) *zap.Logger {
	return zap.New(NewCore(l), append([]zap.Option{zap.AddCaller()}, opts...)...)
}

// NewLogr returns a logr.Logger which uses a zap logger emitting through l.
func NewLogr(l *logger.Logger) logr.Logger {
	return zapr.NewLogger(NewZap(l))
}

func (c *core) Enabled(lvl zapcore.Level) bool {
	return c.l.Enabled(FromZapLevel(lvl))
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	if len(fields) == 0 {
		return c
	}
	return &core{l: c.l, fields: append(slices.Clip(c.fields), fields...)}
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	msg := ent.Message
	if ent.LoggerName != "" {
		msg = ent.LoggerName + ": " + msg
	}

	var site logger.CallSite
	if ent.Caller.Defined {
		site = logger.NewCallSite(ent.Caller.File, ent.Caller.Line)
	}

	lvl := FromZapLevel(ent.Level)
	return c.l.OutputAt(site, lvl, render(lvl, msg, enc.Fields))
}

func (*core) Sync() error {
	return nil
}
