// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/kojo-dev/kojo/logger"
)

// Field keys with a meaning of their own for warn, error and fatal lines.
const (
	// StatusKey selects the logger.Status of the line.
	StatusKey = "status"
	// SuggestionKey fills the suggestion line.
	SuggestionKey = "suggestion"
)

// render builds the message body handed to the logger. Fields other than
// StatusKey and SuggestionKey are appended to msg as sorted key=value pairs.
// For levels carrying a status, the body takes the status block shape.
func render(lvl logger.Level, msg string, fields map[string]any) string {
	status := logger.StatusOK
	suggestion := ""
	if lvl.HasStatus() {
		if v, ok := fields[StatusKey]; ok {
			status = toStatus(v)
			delete(fields, StatusKey)
		}
		if v, ok := fields[SuggestionKey]; ok {
			suggestion = fmt.Sprint(v)
			delete(fields, SuggestionKey)
		}
	}

	details := msg
	if len(fields) > 0 {
		var b strings.Builder
		b.WriteString(msg)
		for _, k := range slices.Sorted(maps.Keys(fields)) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(formatValue(fields[k]))
		}
		details = b.String()
	}

	if lvl.HasStatus() {
		return logger.StatusMessage(status, details, suggestion)
	}
	return details
}

func toStatus(v any) logger.Status {
	switch s := v.(type) {
	case logger.Status:
		return s
	case int:
		return logger.Status(s)
	case int8:
		return logger.Status(s)
	case int16:
		return logger.Status(s)
	case int32:
		return logger.Status(s)
	case int64:
		return logger.Status(s)
	case uint:
		return logger.Status(s)
	case uint8:
		return logger.Status(s)
	case uint16:
		return logger.Status(s)
	case uint32:
		return logger.Status(s)
	case uint64:
		return logger.Status(s)
	case uintptr:
		return logger.Status(s)
	case string:
		for _, code := range logger.AllStatuses() {
			if code.String() == s || code.Code() == s {
				return code
			}
		}
	}
	return logger.StatusBadValue
}

func formatValue(v any) string {
	s := fmt.Sprint(v)
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
