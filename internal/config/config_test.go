package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"triangle/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "data/input.csv", cfg.Harness.InputPath)
	require.Equal(t, "data/expected.csv", cfg.Harness.ExpectedPath)
	require.Equal(t, "results/actual.csv", cfg.Harness.ActualPath)
	require.Equal(t, "results/report.txt", cfg.Harness.ReportPath)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
environment: production
harness:
  inputPath: vectors/in.csv
http:
  addr: ":9090"
  maxBatchSize: 12
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("HARNESS_REPORT_PATH", "out/report.txt")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "vectors/in.csv", cfg.Harness.InputPath)
	require.Equal(t, "data/expected.csv", cfg.Harness.ExpectedPath)
	require.Equal(t, "out/report.txt", cfg.Harness.ReportPath)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 12, cfg.HTTP.MaxBatchSize)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http: [not, a, map"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
