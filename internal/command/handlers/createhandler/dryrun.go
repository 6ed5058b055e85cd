package createhandler

import (
	"fmt"
	"path/filepath"

	"github.com/Kargones/docforge/document"
	"github.com/Kargones/docforge/internal/config"
	"github.com/Kargones/docforge/internal/constants"
	"github.com/Kargones/docforge/internal/pkg/dryrun"
	"github.com/Kargones/docforge/internal/pkg/output"
)

// buildPlan строит план dry-run для команды create: какой путь будет
// разрешён, будет ли файл создан и под каким именем при коллизии.
func (h *CreateHandler) buildPlan(cfg *config.Config, target string, existsBefore bool, policy document.CreatePolicy) (*output.DryRunPlan, error) {
	location := cfg.Path
	if location == "" {
		location = fmt.Sprintf("роль %q", cfg.Role)
	}

	steps := []output.PlanStep{
		{
			Order:     1,
			Operation: "Разрешение целевого пути",
			Parameters: map[string]any{
				"location": location,
				"filename": filepath.Base(target),
				"policy":   policy.String(),
			},
			ExpectedChanges: []string{fmt.Sprintf("Целевой путь: %s", target)},
		},
	}

	switch {
	case !existsBefore && policy == document.CreateNever:
		steps = append(steps, output.PlanStep{
			Order:      2,
			Operation:  "Создание файла",
			Parameters: map[string]any{"path": target},
			Skipped:    true,
			SkipReason: "файл не существует, политика never завершится ошибкой FILE.NOT_FOUND",
		})
	case existsBefore && policy == document.CreateNever:
		steps = append(steps, output.PlanStep{
			Order:      2,
			Operation:  "Создание файла",
			Parameters: map[string]any{"path": target},
			Skipped:    true,
			SkipReason: "файл уже существует, политика never",
		})
	case existsBefore && policy == document.CreateIfAbsent:
		steps = append(steps, output.PlanStep{
			Order:      2,
			Operation:  "Создание файла",
			Parameters: map[string]any{"path": target},
			Skipped:    true,
			SkipReason: "файл уже существует, политика if-absent оставляет его как есть",
		})
	case existsBefore && policy == document.CreateAutoRename:
		suggested, err := document.Suggest(target)
		if err != nil {
			return nil, err
		}
		steps = append(steps, output.PlanStep{
			Order:      2,
			Operation:  "Создание файла",
			Parameters: map[string]any{"path": suggested},
			ExpectedChanges: []string{
				fmt.Sprintf("Имя %q занято — будет создан %s", filepath.Base(target), suggested),
			},
		})
	default:
		changes := []string{fmt.Sprintf("Будет создан файл %s", target)}
		if cfg.Content != "" {
			changes = append(changes, fmt.Sprintf("Будет записано %d байт содержимого", len(cfg.Content)))
		}
		steps = append(steps, output.PlanStep{
			Order:           2,
			Operation:       "Создание файла",
			Parameters:      map[string]any{"path": target},
			ExpectedChanges: changes,
		})
	}

	summary := fmt.Sprintf("Создание файла %s (политика %s)", filepath.Base(target), policy.String())
	return dryrun.BuildPlanWithSummary(constants.ActCreate, steps, summary), nil
}
