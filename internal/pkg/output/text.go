package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// summaryDivider — разделитель для summary блока в текстовом выводе.
const summaryDivider = "══════════════════════════════════════════════════════"

// TextWriter форматирует Result в человекочитаемый текст.
type TextWriter struct{}

// NewTextWriter создаёт новый TextWriter.
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// Write форматирует result в текст и записывает в w.
func (t *TextWriter) Write(w io.Writer, result *Result) error {
	if result == nil {
		return nil
	}

	if _, err := fmt.Fprintf(w, "%s: %s\n", result.Command, result.Status); err != nil {
		return err
	}

	if result.Error != nil {
		if _, err := fmt.Fprintf(w, "Error [%s]: %s\n", result.Error.Code, result.Error.Message); err != nil {
			return err
		}
	}

	// Data — выводим как JSON если не пустое
	if result.Data != nil {
		dataJSON, err := json.MarshalIndent(result.Data, "", "  ")
		if err != nil {
			return fmt.Errorf("не удалось сериализовать Data: %w", err)
		}
		if _, err := fmt.Fprintf(w, "Data: %s\n", dataJSON); err != nil {
			return err
		}
	}

	// Summary полезен только для успешных операций с метриками —
	// для ошибок он перегружает вывод.
	if result.Status != StatusError {
		if err := t.writeSummary(w, result); err != nil {
			return err
		}
	}

	return nil
}

// writeSummary выводит summary блок в конце text output,
// визуально отделённый двойной линией.
func (t *TextWriter) writeSummary(w io.Writer, result *Result) error {
	// Без метрик и без длительности блок не выводится.
	hasDuration := result.Metadata != nil && result.Metadata.DurationMs > 0
	hasSummary := result.Summary != nil && (len(result.Summary.KeyMetrics) > 0 || result.Summary.WarningsCount > 0)
	if !hasDuration && !hasSummary {
		return nil
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", summaryDivider); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "📊 Сводка\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", summaryDivider); err != nil {
		return err
	}

	if hasDuration {
		if _, err := fmt.Fprintf(w, "⏱️  Время выполнения: %s\n", formatDuration(result.Metadata.DurationMs)); err != nil {
			return err
		}
	}

	if result.Summary != nil {
		for _, m := range result.Summary.KeyMetrics {
			if m.Unit != "" {
				if _, err := fmt.Fprintf(w, "📈 %s: %s %s\n", m.Name, m.Value, m.Unit); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintf(w, "📈 %s: %s\n", m.Name, m.Value); err != nil {
					return err
				}
			}
		}

		if result.Summary.WarningsCount > 0 {
			if _, err := fmt.Fprintf(w, "\n⚠️  Предупреждений: %d\n", result.Summary.WarningsCount); err != nil {
				return err
			}
			for _, warn := range result.Summary.Warnings {
				if _, err := fmt.Fprintf(w, "   • %s\n", warn); err != nil {
					return err
				}
			}
		}
	}

	if _, err := fmt.Fprintf(w, "%s\n", summaryDivider); err != nil {
		return err
	}

	return nil
}

// formatDuration форматирует duration в человекочитаемый вид:
// миллисекунды, секунды или минуты.
func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dмс", ms)
	}
	sec := ms / 1000
	if sec < 60 {
		return fmt.Sprintf("%.1fс", float64(ms)/1000)
	}
	return fmt.Sprintf("%dм %dс", sec/60, sec%60)
}
