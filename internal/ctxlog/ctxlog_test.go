// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNilLoggerUsesDefault(t *testing.T) {
	ctx := New(context.Background(), nil)

	assert.Same(t, DefaultLogger, Logger(ctx), "nil logger should fall back to DefaultLogger")
}

func TestNewCustomLogger(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := New(context.Background(), logger)

	assert.Same(t, logger, Logger(ctx))
}

func TestLoggerFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
	}{
		{
			name: "background context",
			ctx:  context.Background(),
		},
		{
			name: "nil logger value",
			ctx:  context.WithValue(context.Background(), loggerKey{}, nil),
		},
		{
			name: "wrong type value",
			ctx:  context.WithValue(context.Background(), loggerKey{}, "not a logger"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, DefaultLogger, Logger(tt.ctx))
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx := New(context.Background(), logger)

	tests := []struct {
		name    string
		logFunc func(context.Context, string, ...any)
		message string
		level   string
	}{
		{
			name:    "info",
			logFunc: Info,
			message: "test info message",
			level:   "INFO",
		},
		{
			name:    "debug",
			logFunc: Debug,
			message: "test debug message",
			level:   "DEBUG",
		},
		{
			name:    "warn",
			logFunc: Warn,
			message: "test warning message",
			level:   "WARN",
		},
		{
			name:    "error",
			logFunc: Error,
			message: "test error message",
			level:   "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(ctx, tt.message, "key", "value")

			output := buf.String()
			assert.Contains(t, output, tt.level)
			assert.Contains(t, output, tt.message)
		})
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		want     slog.Level
	}{
		{
			name:     "debug",
			envValue: "DEBUG",
			want:     slog.LevelDebug,
		},
		{
			name:     "info",
			envValue: "INFO",
			want:     slog.LevelInfo,
		},
		{
			name:     "warn",
			envValue: "WARN",
			want:     slog.LevelWarn,
		},
		{
			name:     "error",
			envValue: "ERROR",
			want:     slog.LevelError,
		},
		{
			name:     "invalid defaults to warn",
			envValue: "INVALID",
			want:     slog.LevelWarn,
		},
		{
			name:     "empty defaults to warn",
			envValue: "",
			want:     slog.LevelWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubs := gostub.New()
			defer stubs.Reset()

			stubs.SetEnv(logLevelEnvVar, tt.envValue)

			if tt.envValue == "" {
				stubs.UnsetEnv(logLevelEnvVar)
			}

			assert.Equal(t, tt.want, logLevelFromEnv())
		})
	}
}

func TestDefaultLoggers(t *testing.T) {
	require.NotNil(t, DefaultLogger)
	require.NotNil(t, JSONLogger)

	originalLevel := LevelVar.Level()
	defer LevelVar.Set(originalLevel)

	LevelVar.Set(slog.LevelDebug)

	assert.True(t, DefaultLogger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, JSONLogger.Enabled(context.Background(), slog.LevelInfo))
}

func TestLoggingWithDefaultLogger(t *testing.T) {
	// Must not panic when the context carries no logger.
	ctx := context.Background()

	Info(ctx, "test info")
	Debug(ctx, "test debug")
	Warn(ctx, "test warn")
	Error(ctx, "test error")
}
