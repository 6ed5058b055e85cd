// Package dryrun предоставляет функции для работы с dry-run режимом.
// В dry-run режиме команды возвращают план действий без реального выполнения.
package dryrun

import (
	"os"
	"strings"

	"github.com/Kargones/docforge/internal/constants"
	"github.com/Kargones/docforge/internal/pkg/output"
)

// IsDryRun проверяет включён ли dry-run режим.
// Возвращает true если переменная окружения DF_DRY_RUN равна "true" или "1".
// Проверка case-insensitive через strings.EqualFold.
func IsDryRun() bool {
	val := os.Getenv(constants.EnvDryRun)
	return strings.EqualFold(val, "true") || val == "1"
}

// IsVerbose проверяет включён ли verbose режим.
// Возвращает true если переменная окружения DF_VERBOSE равна "true" или "1".
// В verbose режиме команда выводит план операций перед реальным выполнением.
func IsVerbose() bool {
	val := os.Getenv(constants.EnvVerbose)
	return strings.EqualFold(val, "true") || val == "1"
}

// EffectiveMode возвращает текущий приоритетный режим выполнения.
// Приоритет: "dry-run" > "verbose" > "normal".
// DF_DRY_RUN перекрывает DF_VERBOSE.
func EffectiveMode() string {
	if IsDryRun() {
		return "dry-run"
	}
	if IsVerbose() {
		return "verbose"
	}
	return "normal"
}

// BuildPlan создаёт план операций для dry-run режима.
func BuildPlan(command string, steps []output.PlanStep) *output.DryRunPlan {
	return &output.DryRunPlan{
		Command:          command,
		Steps:            steps,
		ValidationPassed: true,
	}
}

// BuildPlanWithSummary создаёт план операций с кратким описанием.
func BuildPlanWithSummary(command string, steps []output.PlanStep, summary string) *output.DryRunPlan {
	return &output.DryRunPlan{
		Command:          command,
		Steps:            steps,
		Summary:          summary,
		ValidationPassed: true,
	}
}
