// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockDebugProvider implements DebugProvider for testing
type mockDebugProvider struct {
	debug bool
}

func (m *mockDebugProvider) IsDebug() bool {
	return m.debug
}

func swapDefault(t *testing.T, l *Logger) {
	t.Helper()
	prev := Default()
	SetDefault(l)
	t.Cleanup(func() { SetDefault(prev) })
}

func TestDefault_IsNeverNil(t *testing.T) { //nolint:paralleltest // Uses global logger state
	require.NotNil(t, Default())
	SetDefault(nil)
	require.NotNil(t, Default())
}

func TestPackageFunctions(t *testing.T) { //nolint:paralleltest // Uses global logger state
	var buf bytes.Buffer
	swapDefault(t, New("pkg", WithOutput(&buf), WithDebug(true), WithVerbose(true)))

	tests := []struct {
		name string
		call func()
		want string
	}{
		{"Debug", func() { Debug("d") }, "[DEBUG] d"},
		{"Debugf", func() { Debugf("d%d", 1) }, "[DEBUG] d1"},
		{"Info", func() { Info("i") }, "[INFO] i"},
		{"Infof", func() { Infof("i%d", 2) }, "[INFO] i2"},
		{"Verbose", func() { Verbose("v") }, "[VERBOSE] v"},
		{"Verbosef", func() { Verbosef("v%d", 3) }, "[VERBOSE] v3"},
		{"Warn", func() { Warn(StatusVersion, "d", "s") }, "[WARN] code 003: version"},
		{"Error", func() { Error(StatusTypeMismatch, "d", "s") }, "[ERROR] code 005: type mismatch"},
		{"Fatal", func() { Fatal(StatusValueMismatch, "d", "s") }, "[FATAL] code 009: value mismatch"},
	}

	for _, tc := range tests { //nolint:paralleltest // Uses global logger state
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			tc.call()
			assert.Contains(t, buf.String(), tc.want)
			assert.Contains(t, buf.String(), "[pkg; default_test.go:", "call site must be the test, not the package function")
		})
	}
}

func TestPackageFunctions_CallSite(t *testing.T) { //nolint:paralleltest // Uses global logger state
	var buf bytes.Buffer
	swapDefault(t, New("pkg", WithOutput(&buf)))

	Info("here")
	line := currentLine() - 1

	assert.Contains(t, buf.String(), fmt.Sprintf("[pkg; default_test.go:%d]", line))
}

func TestInitializeWithOptions(t *testing.T) { //nolint:paralleltest // Uses global logger state
	tests := []struct {
		name      string
		owner     string
		debug     bool
		wantOwner string
	}{
		{"owner from environment", "worker", false, "worker"},
		{"debug provider enables debug", "worker", true, "worker"},
		{"owner falls back to executable", "", false, defaultOwner()},
	}

	for _, tt := range tests { //nolint:paralleltest // Uses global logger state
		t.Run(tt.name, func(t *testing.T) {
			swapDefault(t, Default())
			ctrl := gomock.NewController(t)
			mockEnv := expectEnv(ctrl, "", "", "", false)
			mockEnv.EXPECT().Getenv(EnvOwner).Return(tt.owner)

			var buf bytes.Buffer
			InitializeWithOptions(mockEnv, &mockDebugProvider{debug: tt.debug}, WithOutput(&buf))

			l := Default()
			assert.Equal(t, tt.wantOwner, l.Owner())
			assert.Equal(t, tt.debug, l.Enabled(LevelDebug))

			Debug("visible only with debug")
			assert.Equal(t, tt.debug, buf.Len() > 0)
		})
	}
}

func TestInitializeWithDebug(t *testing.T) { //nolint:paralleltest // Uses global logger state
	swapDefault(t, Default())
	t.Setenv(EnvLevels, "")
	t.Setenv(EnvDebug, "")

	InitializeWithDebug(&mockDebugProvider{debug: true})
	assert.True(t, Default().Enabled(LevelDebug))

	Initialize()
	assert.False(t, Default().Enabled(LevelDebug))
}
