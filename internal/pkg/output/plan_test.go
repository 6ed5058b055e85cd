package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDryRunPlan_WriteText(t *testing.T) {
	t.Run("полный план с параметрами и изменениями", func(t *testing.T) {
		plan := &DryRunPlan{
			Command:          "create",
			ValidationPassed: true,
			Steps: []PlanStep{
				{
					Order:     1,
					Operation: "Разрешение пути",
					Parameters: map[string]any{
						"role":     "downloads",
						"filename": "report.txt",
					},
				},
				{
					Order:           2,
					Operation:       "Создание файла",
					Parameters:      map[string]any{"path": "/home/user/Downloads/report(1).txt"},
					ExpectedChanges: []string{"будет создан файл report(1).txt"},
				},
			},
			Summary: "1 файл будет создан",
		}

		var buf bytes.Buffer
		require.NoError(t, plan.WriteText(&buf))

		out := buf.String()
		assert.Contains(t, out, "=== DRY RUN ===")
		assert.Contains(t, out, "=== END DRY RUN ===")
		assert.Contains(t, out, "Команда: create")
		assert.Contains(t, out, "✅ Пройдена")
		assert.Contains(t, out, "1. Разрешение пути")
		assert.Contains(t, out, "filename: report.txt")
		assert.Contains(t, out, "будет создан файл report(1).txt")
		assert.Contains(t, out, "Итого: 1 файл будет создан")
	})

	t.Run("параметры выводятся в отсортированном порядке", func(t *testing.T) {
		plan := &DryRunPlan{
			Command: "create",
			Steps: []PlanStep{
				{Order: 1, Operation: "op", Parameters: map[string]any{"zzz": 1, "aaa": 2, "mmm": 3}},
			},
		}

		var buf bytes.Buffer
		require.NoError(t, plan.WriteText(&buf))

		out := buf.String()
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("aaa")), bytes.Index(buf.Bytes(), []byte("mmm")))
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("mmm")), bytes.Index(buf.Bytes(), []byte("zzz")))
		assert.Contains(t, out, "❌ Не пройдена")
	})

	t.Run("пропущенный шаг с причиной", func(t *testing.T) {
		plan := &DryRunPlan{
			Command:          "create",
			ValidationPassed: true,
			Steps: []PlanStep{
				{Order: 1, Operation: "Создание файла", Skipped: true, SkipReason: "файл уже существует"},
			},
		}

		var buf bytes.Buffer
		require.NoError(t, plan.WriteText(&buf))
		assert.Contains(t, buf.String(), "[SKIP] Создание файла — файл уже существует")
	})

	t.Run("verbose заголовок", func(t *testing.T) {
		plan := &DryRunPlan{Command: "batch", ValidationPassed: true}

		var buf bytes.Buffer
		require.NoError(t, plan.WritePlanText(&buf))

		out := buf.String()
		assert.Contains(t, out, "=== OPERATION PLAN ===")
		assert.Contains(t, out, "=== END OPERATION PLAN ===")
		assert.NotContains(t, out, "DRY RUN")
	})
}

func TestSanitizeValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"обычная строка", "file.txt", "file.txt"},
		{"число", 42, "42"},
		{"ANSI цвет удаляется", "\x1b[31mкрасный\x1b[0m", "красный"},
		{"перевод строки заменяется пробелом", "a\nb", "a b"},
		{"табуляция заменяется пробелом", "a\tb", "a b"},
		{"управляющие символы удаляются", "a\x07b\x00c", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeValue(tt.input))
		})
	}
}
