package logger_test

import (
	"context"
	"testing"
	"triangle/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGet_DefaultIsUsableBeforeSetup(t *testing.T) {
	require.NotNil(t, logger.Get(context.Background()))
	require.NotPanics(t, func() {
		logger.Info(context.Background(), "before setup")
	})
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		debug       bool
		wantErr     bool
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "production defaults to info", environment: logger.ProductionEnvironment},
		{name: "level override", environment: logger.DevelopmentEnvironment, level: "warn"},
		{name: "invalid level", environment: logger.ProductionEnvironment, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.debug, logger.IsDebug(context.Background()))
		})
	}
}

func TestWithLogger(t *testing.T) {
	custom := zap.NewExample()
	ctx := logger.WithLogger(context.Background(), custom)
	require.Equal(t, custom, logger.Get(ctx))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("caseID", "P1"), zap.Int("line", 2))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	entries := logs.All()
	require.Len(t, entries, 4)
	for _, e := range entries {
		fields := e.ContextMap()
		require.Equal(t, "P1", fields["caseID"])
		require.EqualValues(t, 2, fields["line"])
	}
	require.Equal(t, zapcore.WarnLevel, entries[2].Level)
}
