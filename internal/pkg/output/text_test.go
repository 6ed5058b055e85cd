package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextWriter_Write(t *testing.T) {
	t.Run("успешный результат", func(t *testing.T) {
		var buf bytes.Buffer
		result := &Result{
			Status:  StatusSuccess,
			Command: "create",
			Data:    map[string]any{"path": "/tmp/report.txt"},
		}

		require.NoError(t, NewTextWriter().Write(&buf, result))

		out := buf.String()
		assert.Contains(t, out, "create: success")
		assert.Contains(t, out, "/tmp/report.txt")
	})

	t.Run("результат с ошибкой", func(t *testing.T) {
		var buf bytes.Buffer
		result := &Result{
			Status:  StatusError,
			Command: "resolve",
			Error:   &ErrorInfo{Code: "DIR.PROJECT_ID_NOT_FOUND", Message: "пустой идентификатор"},
		}

		require.NoError(t, NewTextWriter().Write(&buf, result))

		out := buf.String()
		assert.Contains(t, out, "resolve: error")
		assert.Contains(t, out, "Error [DIR.PROJECT_ID_NOT_FOUND]: пустой идентификатор")
	})

	t.Run("nil результат не пишет ничего", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewTextWriter().Write(&buf, nil))
		assert.Empty(t, buf.String())
	})

	t.Run("summary блок с метриками и предупреждениями", func(t *testing.T) {
		var buf bytes.Buffer
		summary := NewSummaryInfo()
		summary.AddMetric("Файлов создано", "3", "шт")
		summary.AddWarning("file.txt занят, создан file(1).txt")
		result := &Result{
			Status:   StatusSuccess,
			Command:  "batch",
			Metadata: &Metadata{DurationMs: 1500, APIVersion: "v1"},
			Summary:  summary,
		}

		require.NoError(t, NewTextWriter().Write(&buf, result))

		out := buf.String()
		assert.Contains(t, out, "📊 Сводка")
		assert.Contains(t, out, "Время выполнения: 1.5с")
		assert.Contains(t, out, "📈 Файлов создано: 3 шт")
		assert.Contains(t, out, "Предупреждений: 1")
		assert.Contains(t, out, "file(1).txt")
	})

	t.Run("summary блок не выводится без метрик и длительности", func(t *testing.T) {
		var buf bytes.Buffer
		result := &Result{Status: StatusSuccess, Command: "help"}

		require.NoError(t, NewTextWriter().Write(&buf, result))
		assert.NotContains(t, buf.String(), "Сводка")
	})

	t.Run("summary блок не выводится при ошибке", func(t *testing.T) {
		var buf bytes.Buffer
		summary := NewSummaryInfo()
		summary.AddMetric("Файлов создано", "0", "шт")
		result := &Result{
			Status:   StatusError,
			Command:  "batch",
			Error:    &ErrorInfo{Code: "MANIFEST.READ_FAILED", Message: "нет файла"},
			Metadata: &Metadata{DurationMs: 10, APIVersion: "v1"},
			Summary:  summary,
		}

		require.NoError(t, NewTextWriter().Write(&buf, result))
		assert.NotContains(t, buf.String(), "Сводка")
	})
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{"миллисекунды", 350, "350мс"},
		{"секунды", 2500, "2.5с"},
		{"минуты", 125000, "2м 5с"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.ms))
		})
	}
}

func TestNewWriter(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   any
	}{
		{"json", "json", &JSONWriter{}},
		{"JSON uppercase", "JSON", &JSONWriter{}},
		{"text", "text", &TextWriter{}},
		{"пустой формат — text по умолчанию", "", &TextWriter{}},
		{"неизвестный формат — text по умолчанию", "xml", &TextWriter{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, NewWriter(tt.format))
		})
	}
}
