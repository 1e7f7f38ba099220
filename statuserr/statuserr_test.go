// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package statuserr

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kojo-dev/kojo/logger"
)

func TestWithStatus(t *testing.T) {
	t.Parallel()

	t.Run("wraps error with status", func(t *testing.T) {
		t.Parallel()

		err := WithStatus(fs.ErrNotExist, logger.StatusNullFile, "check the path")

		var coded *CodedError
		require.ErrorAs(t, err, &coded)
		require.Equal(t, logger.StatusNullFile, coded.Status())
		require.Equal(t, "check the path", coded.Suggestion())
		require.Equal(t, fs.ErrNotExist.Error(), coded.Error())
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, WithStatus(nil, logger.StatusNullFile, ""))
	})
}

func TestStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want logger.Status
	}{
		{"nil is ok", nil, logger.StatusOK},
		{"plain error is a bad value", errors.New("plain"), logger.StatusBadValue},
		{"direct", New("bad magic", logger.StatusFileMagic, ""), logger.StatusFileMagic},
		{"wrapped", fmt.Errorf("loading: %w", New("v9", logger.StatusVersion, "")), logger.StatusVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestSuggestion(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Suggestion(nil))
	assert.Empty(t, Suggestion(errors.New("plain")))
	assert.Equal(t, "upgrade", Suggestion(fmt.Errorf("outer: %w", New("v9", logger.StatusVersion, "upgrade"))))
}

func TestLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.New("store", logger.WithOutput(&buf), logger.WithColor(false))

	err := fmt.Errorf("reading header: %w", New("want KOJO, got ZIP", logger.StatusFileMagic, "pass a .kojo file"))
	Log(l, logger.LevelError, err)
	_, _, line, _ := runtime.Caller(0)

	want := fmt.Sprintf("> [store; statuserr_test.go:%d] [ERROR] code 002: file magic/signature\n"+
		"\treading header: want KOJO, got ZIP\n\tpass a .kojo file\n", line-1)
	assert.Equal(t, want, buf.String())

	buf.Reset()
	l.SetDebug(true)
	Log(l, logger.LevelDebug, err)
	assert.Contains(t, buf.String(), "[DEBUG] reading header: want KOJO, got ZIP\n")

	buf.Reset()
	Log(l, logger.LevelError, nil)
	l.SetWarn(false)
	Log(l, logger.LevelWarn, err)
	assert.Zero(t, buf.Len())
}
