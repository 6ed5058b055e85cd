package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/docforge/internal/pkg/metrics"
	"github.com/Kargones/docforge/internal/pkg/testutil"
)

// withArgs подменяет os.Args на время теста.
func withArgs(t *testing.T, args ...string) {
	t.Helper()
	saved := os.Args
	os.Args = append([]string{"docforge"}, args...)
	t.Cleanup(func() { os.Args = saved })
}

// clearEnv сбрасывает переменные окружения приложения,
// чтобы окружение CI не влияло на тесты.
func clearEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"DF_COMMAND", "DF_OUTPUT_FORMAT", "DF_PATH", "DF_ROLE", "DF_APP_ID",
		"DF_SUBDIRS", "DF_FILENAME", "DF_ALIAS", "DF_POLICY", "DF_CONTENT",
		"DF_MANIFEST", "DF_CONFIG", "DF_LOG_LEVEL", "DF_DRY_RUN", "DF_VERBOSE",
		"DF_METRICS_ENABLED", "DF_TRACING_ENABLED",
	}
	for _, v := range vars {
		t.Setenv(v, "")
		require.NoError(t, os.Unsetenv(v))
	}
}

func TestRun_Version(t *testing.T) {
	clearEnv(t)
	withArgs(t, "version")

	var code int
	out := testutil.CaptureStdout(t, func() {
		code = run()
	})

	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "docforge version")
}

func TestRun_EmptyCommandShowsHelp(t *testing.T) {
	clearEnv(t)
	withArgs(t)

	var code int
	out := testutil.CaptureStdout(t, func() {
		code = run()
	})

	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "Команды:")
}

func TestRun_UnknownCommand(t *testing.T) {
	clearEnv(t)
	withArgs(t, "teleport")

	var code int
	_ = testutil.CaptureStdout(t, func() {
		code = run()
	})

	assert.Equal(t, exitUnknownCommand, code)
}

func TestRun_CreateEndToEnd(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "report.txt")
	t.Setenv("DF_PATH", path)
	t.Setenv("DF_POLICY", "if-absent")
	t.Setenv("DF_CONTENT", "данные")
	withArgs(t, "create")

	var code int
	out := testutil.CaptureStdout(t, func() {
		code = run()
	})

	assert.Equal(t, exitOK, code)
	assert.FileExists(t, path)
	assert.Contains(t, out, path)

	content, err := os.ReadFile(path) //nolint:gosec // путь из t.TempDir
	require.NoError(t, err)
	assert.Equal(t, "данные", string(content))
}

func TestRun_CommandError(t *testing.T) {
	clearEnv(t)
	t.Setenv("DF_PATH", filepath.Join(t.TempDir(), "нет.txt"))
	t.Setenv("DF_POLICY", "never")
	withArgs(t, "create")

	var code int
	_ = testutil.CaptureStdout(t, func() {
		code = run()
	})

	assert.Equal(t, exitCommandError, code)
}

func TestRun_EnvCommandFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("DF_COMMAND", "version")
	withArgs(t)

	var code int
	out := testutil.CaptureStdout(t, func() {
		code = run()
	})

	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "docforge version")
}

func TestRecordMetrics(t *testing.T) {
	collector := metrics.NewNopCollector()
	assert.NotPanics(t, func() {
		recordMetrics(context.Background(), collector, "create", time.Now(), true)
	})
}
