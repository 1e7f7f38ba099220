// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_StringAndColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		label string
		color string
	}{
		{LevelDebug, "DEBUG", "1;34"},
		{LevelInfo, "INFO", "0"},
		{LevelVerbose, "VERBOSE", "1;34"},
		{LevelWarn, "WARN", "1;33"},
		{LevelError, "ERROR", "1;31"},
		{LevelFatal, "FATAL", "0;31"},
		{Level(-1), "UNKNOWN", "0"},
		{levelCount, "UNKNOWN", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.label, tt.level.String())
			assert.Equal(t, tt.color, tt.level.Color())
		})
	}
}

func TestLevel_HasStatus(t *testing.T) {
	t.Parallel()

	want := map[Level]bool{
		LevelDebug:   false,
		LevelInfo:    false,
		LevelVerbose: false,
		LevelWarn:    true,
		LevelError:   true,
		LevelFatal:   true,
	}
	for _, lvl := range AllLevels() {
		assert.Equal(t, want[lvl], lvl.HasStatus(), "level %s", lvl)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" Verbose ", LevelVerbose, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"fatal", LevelFatal, false},
		{"trace", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevel_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, lvl := range AllLevels() {
		got, err := ParseLevel(lvl.String())
		require.NoError(t, err)
		assert.Equal(t, lvl, got)
	}
}

func TestStatus_Phrases(t *testing.T) {
	t.Parallel()

	seen := make(map[string]Status)
	for _, code := range AllStatuses() {
		phrase := code.String()
		assert.NotEmpty(t, phrase, "status %d", int(code))
		assert.NotEqual(t, "unknown code", phrase, "status %d has no phrase", int(code))
		if prev, dup := seen[phrase]; dup {
			t.Errorf("status %d and %d share the phrase %q", prev, code, phrase)
		}
		seen[phrase] = code
	}
	assert.Len(t, seen, 10)
}

func TestStatus_KnownPhrases(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "file magic/signature", StatusFileMagic.String())
	assert.Equal(t, "bad value", StatusBadValue.String())
	assert.Equal(t, "value mismatch", StatusValueMismatch.String())
	assert.Equal(t, "unknown code", Status(42).String())
}

func TestStatus_Code(t *testing.T) {
	t.Parallel()

	threeDigits := regexp.MustCompile(`^\d{3}$`)
	for i, code := range AllStatuses() {
		assert.Regexp(t, threeDigits, code.Code())
		assert.Equal(t, i, int(code), "statuses must be numbered in declaration order")
	}
	assert.Equal(t, "000", StatusOK.Code())
	assert.Equal(t, "006", StatusBadValue.Code())
	assert.Equal(t, "009", StatusValueMismatch.Code())
}
