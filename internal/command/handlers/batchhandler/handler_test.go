package batchhandler

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/docforge/internal/config"
	"github.com/Kargones/docforge/internal/constants"
	"github.com/Kargones/docforge/internal/pkg/output"
	"github.com/Kargones/docforge/internal/pkg/testutil"
)

// writeManifest записывает YAML-манифест во временную директорию.
func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBatchHandler_NameDescription(t *testing.T) {
	h := &BatchHandler{}
	assert.Equal(t, "batch", h.Name())
	assert.NotEmpty(t, h.Description())
}

func TestBatchHandler_Execute_CreatesFiles(t *testing.T) {
	t.Setenv(constants.EnvOutputFormat, output.FormatText)
	t.Setenv(constants.EnvDryRun, "")

	dir := t.TempDir()
	manifest := writeManifest(t, fmt.Sprintf(`
entries:
  - path: %s/report.txt
    alias: report
    policy: if-absent
    content: "итоги квартала"
  - path: %s/data.csv
    alias: data
    policy: if-absent
`, dir, dir))

	cfg := &config.Config{Manifest: manifest}

	h := &BatchHandler{}
	var err error
	out := testutil.CaptureStdout(t, func() {
		err = h.Execute(context.Background(), cfg)
	})

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "report.txt"))
	assert.FileExists(t, filepath.Join(dir, "data.csv"))
	assert.Contains(t, out, "[+] report → "+filepath.Join(dir, "report.txt"))
	assert.Contains(t, out, "[+] data → "+filepath.Join(dir, "data.csv"))
	assert.Contains(t, out, "Создано файлов: 2 из 2")

	content, readErr := os.ReadFile(filepath.Join(dir, "report.txt")) //nolint:gosec // путь из t.TempDir
	require.NoError(t, readErr)
	assert.Equal(t, "итоги квартала", string(content))
}

func TestBatchHandler_Execute_JSON(t *testing.T) {
	t.Setenv(constants.EnvOutputFormat, output.FormatJSON)
	t.Setenv(constants.EnvDryRun, "")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.png"), []byte{}, 0o600))

	manifest := writeManifest(t, fmt.Sprintf(`
entries:
  - path: %s/photo.png
    alias: photo
    policy: auto-rename
  - path: %s/readme.md
    policy: if-absent
`, dir, dir))

	cfg := &config.Config{Manifest: manifest}

	h := &BatchHandler{}
	var err error
	out := testutil.CaptureStdout(t, func() {
		err = h.Execute(context.Background(), cfg)
	})

	require.NoError(t, err)

	var result output.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, output.StatusSuccess, result.Status)
	assert.Equal(t, "batch", result.Command)

	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, float64(2), data["created_count"])

	files, ok := data["files"].([]any)
	require.True(t, ok)
	require.Len(t, files, 2)

	first, ok := files[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "photo", first["alias"])
	assert.Equal(t, filepath.Join(dir, "photo(1).png"), first["path"])
	assert.Equal(t, true, first["renamed"])

	second, ok := files[1].(map[string]any)
	require.True(t, ok)
	// Алиас по умолчанию — имя файла.
	assert.Equal(t, "readme.md", second["alias"])
	assert.Equal(t, false, second["renamed"])

	// Summary с предупреждением о переименовании скопирован в metadata.
	require.NotNil(t, result.Metadata)
	require.NotNil(t, result.Metadata.Summary)
	require.Len(t, result.Metadata.Summary.KeyMetrics, 1)
	assert.Equal(t, "Файлов создано", result.Metadata.Summary.KeyMetrics[0].Name)
	assert.Equal(t, "2", result.Metadata.Summary.KeyMetrics[0].Value)
	assert.Equal(t, 1, result.Metadata.Summary.WarningsCount)
}

func TestBatchHandler_Execute_SequentialCollisions(t *testing.T) {
	t.Setenv(constants.EnvOutputFormat, output.FormatText)
	t.Setenv(constants.EnvDryRun, "")

	dir := t.TempDir()
	manifest := writeManifest(t, fmt.Sprintf(`
entries:
  - path: %s/log.txt
    alias: first
    policy: auto-rename
  - path: %s/log.txt
    alias: second
    policy: auto-rename
`, dir, dir))

	cfg := &config.Config{Manifest: manifest}

	h := &BatchHandler{}
	var err error
	_ = testutil.CaptureStdout(t, func() {
		err = h.Execute(context.Background(), cfg)
	})

	require.NoError(t, err)
	// Вторая запись видит файл, созданный первой.
	assert.FileExists(t, filepath.Join(dir, "log.txt"))
	assert.FileExists(t, filepath.Join(dir, "log(1).txt"))
}

func TestBatchHandler_Execute_SkipAlias(t *testing.T) {
	t.Setenv(constants.EnvOutputFormat, output.FormatText)
	t.Setenv(constants.EnvDryRun, "")

	dir := t.TempDir()
	manifest := writeManifest(t, fmt.Sprintf(`
entries:
  - path: %s/scratch.tmp
    alias: "_"
    policy: if-absent
`, dir))

	cfg := &config.Config{Manifest: manifest}

	h := &BatchHandler{}
	var err error
	out := testutil.CaptureStdout(t, func() {
		err = h.Execute(context.Background(), cfg)
	})

	require.NoError(t, err)
	// Файл создан, но в сессии не отслеживается.
	assert.FileExists(t, filepath.Join(dir, "scratch.tmp"))
	assert.Contains(t, out, "[+] _ → ")
}

func TestBatchHandler_Execute_ConstructionError(t *testing.T) {
	t.Setenv(constants.EnvOutputFormat, output.FormatJSON)
	t.Setenv(constants.EnvDryRun, "")

	dir := t.TempDir()
	manifest := writeManifest(t, fmt.Sprintf(`
entries:
  - path: %s/нет.txt
    policy: never
`, dir))

	cfg := &config.Config{Manifest: manifest}

	h := &BatchHandler{}
	var err error
	out := testutil.CaptureStdout(t, func() {
		err = h.Execute(context.Background(), cfg)
	})

	require.Error(t, err)

	var result output.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, output.StatusError, result.Status)
	require.NotNil(t, result.Error)
	assert.Equal(t, "FILE.NOT_FOUND", result.Error.Code)
}

func TestBatchHandler_Execute_ManifestErrors(t *testing.T) {
	t.Setenv(constants.EnvOutputFormat, output.FormatText)
	t.Setenv(constants.EnvDryRun, "")

	tests := []struct {
		name     string
		wantCode string
		manifest func(t *testing.T) string
	}{
		{
			name:     "отсутствующий файл",
			wantCode: "MANIFEST.READ_FAILED",
			manifest: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "нет.yaml")
			},
		},
		{
			name:     "невалидный YAML",
			wantCode: "MANIFEST.PARSE_FAILED",
			manifest: func(t *testing.T) string {
				t.Helper()
				return writeManifest(t, "entries: [что-то: сломанное")
			},
		},
		{
			name:     "пустой манифест",
			wantCode: "MANIFEST.VALIDATION_FAILED",
			manifest: func(t *testing.T) string {
				t.Helper()
				return writeManifest(t, "entries: []")
			},
		},
		{
			name:     "role и path одновременно",
			wantCode: "MANIFEST.VALIDATION_FAILED",
			manifest: func(t *testing.T) string {
				t.Helper()
				return writeManifest(t, "entries:\n  - role: documents\n    path: /tmp/a\n    name: a.txt\n")
			},
		},
	}

	h := &BatchHandler{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Manifest: tt.manifest(t)}
			var err error
			_ = testutil.CaptureStdout(t, func() {
				err = h.Execute(context.Background(), cfg)
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantCode)
		})
	}
}

func TestBatchHandler_Execute_NoManifest(t *testing.T) {
	t.Setenv(constants.EnvOutputFormat, output.FormatText)
	t.Setenv(constants.EnvDryRun, "")

	h := &BatchHandler{}
	var err error
	out := testutil.CaptureStdout(t, func() {
		err = h.Execute(context.Background(), &config.Config{})
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "COMMAND.INVALID_PARAMS")
	assert.Contains(t, out, "DF_MANIFEST")
}

func TestBatchHandler_Execute_DryRun(t *testing.T) {
	t.Setenv(constants.EnvOutputFormat, output.FormatJSON)
	t.Setenv(constants.EnvDryRun, "true")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.png"), []byte{}, 0o600))

	manifest := writeManifest(t, fmt.Sprintf(`
entries:
  - path: %s/photo.png
    alias: photo
    policy: auto-rename
  - path: %s/readme.md
    policy: never
  - path: %s/new.txt
    policy: if-absent
    content: "привет"
`, dir, dir, dir))

	cfg := &config.Config{Manifest: manifest}

	h := &BatchHandler{}
	var err error
	out := testutil.CaptureStdout(t, func() {
		err = h.Execute(context.Background(), cfg)
	})

	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "photo(1).png"))
	assert.NoFileExists(t, filepath.Join(dir, "new.txt"))

	var result output.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.DryRun)
	require.NotNil(t, result.Plan)
	require.Len(t, result.Plan.Steps, 3)

	// auto-rename против занятого имени — будет создан photo(1).png.
	assert.Contains(t, result.Plan.Steps[0].Parameters["path"], "photo(1).png")
	// never против отсутствующего файла — шаг пропущен с причиной.
	assert.True(t, result.Plan.Steps[1].Skipped)
	// if-absent против свободного имени — обычное создание.
	assert.False(t, result.Plan.Steps[2].Skipped)
	assert.Contains(t, result.Plan.Summary, "будет создано 2")
}
