package batchhandler

import (
	"fmt"

	"github.com/Kargones/docforge/document"
	"github.com/Kargones/docforge/internal/constants"
	"github.com/Kargones/docforge/internal/pkg/dryrun"
	"github.com/Kargones/docforge/internal/pkg/output"
)

// buildPlan строит план dry-run для манифеста: по шагу на запись.
//
// Probe каждой записи выполняется против текущего состояния диска —
// план не учитывает файлы, которые создали бы ПРЕДЫДУЩИЕ записи того же
// манифеста, поэтому для пересекающихся имён реальные итоговые имена
// могут сместиться на шаг счётчика.
func (h *BatchHandler) buildPlan(manifestPath string, m *Manifest) (*output.DryRunPlan, error) {
	steps := make([]output.PlanStep, 0, len(m.Entries))
	willCreate := 0

	for i := range m.Entries {
		entry := &m.Entries[i]

		target, exists, err := entry.probeTarget()
		if err != nil {
			return nil, err
		}

		step := output.PlanStep{
			Order:     i + 1,
			Operation: fmt.Sprintf("Создание файла %q", entry.requestedName()),
			Parameters: map[string]any{
				"alias":  entry.alias(),
				"policy": entry.Policy.String(),
				"path":   target,
			},
		}

		switch {
		case exists && entry.Policy == document.CreateNever:
			step.Skipped = true
			step.SkipReason = "файл уже существует, политика never"
		case exists && entry.Policy == document.CreateIfAbsent:
			step.Skipped = true
			step.SkipReason = "файл уже существует, политика if-absent оставляет его как есть"
		case exists && entry.Policy == document.CreateAutoRename:
			suggested, suggestErr := document.Suggest(target)
			if suggestErr != nil {
				return nil, suggestErr
			}
			step.Parameters["path"] = suggested
			step.ExpectedChanges = []string{
				fmt.Sprintf("Имя %q занято — будет создан %s", entry.requestedName(), suggested),
			}
			willCreate++
		case !exists && entry.Policy == document.CreateNever:
			step.Skipped = true
			step.SkipReason = "файл отсутствует — политика never завершится ошибкой FILE.NOT_FOUND"
		default:
			changes := []string{fmt.Sprintf("Будет создан файл %s", target)}
			if entry.Content != "" {
				changes = append(changes, fmt.Sprintf("Будет записано %d байт содержимого", len(entry.Content)))
			}
			step.ExpectedChanges = changes
			willCreate++
		}

		steps = append(steps, step)
	}

	summary := fmt.Sprintf("Манифест %s: %d записей, будет создано %d файлов", manifestPath, len(m.Entries), willCreate)
	return dryrun.BuildPlanWithSummary(constants.ActBatch, steps, summary), nil
}
