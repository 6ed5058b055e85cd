// Package createhandler реализует команду create: создание файла
// в well-known локации или по явному пути согласно политике создания.
package createhandler

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Kargones/docforge/document"
	"github.com/Kargones/docforge/internal/command"
	"github.com/Kargones/docforge/internal/command/handlers/shared"
	"github.com/Kargones/docforge/internal/config"
	"github.com/Kargones/docforge/internal/constants"
	"github.com/Kargones/docforge/internal/pkg/dryrun"
	"github.com/Kargones/docforge/internal/pkg/metrics"
	"github.com/Kargones/docforge/internal/pkg/output"
	"github.com/Kargones/docforge/internal/pkg/tracing"
)

// RegisterCmd регистрирует обработчик в глобальном реестре команд.
func RegisterCmd() {
	command.Register(&CreateHandler{})
}

// CreateData содержит результат создания файла для JSON вывода.
type CreateData struct {
	// Alias — псевдоним документа в сессии.
	Alias string `json:"alias"`
	// Path — итоговый абсолютный путь файла.
	Path string `json:"path"`
	// Requested — запрошенное имя файла (до разрешения коллизий).
	Requested string `json:"requested"`
	// Created — был ли файл создан этим вызовом.
	Created bool `json:"created"`
	// Renamed — было ли имя изменено разрешителем коллизий.
	Renamed bool `json:"renamed"`
	// Policy — применённая политика создания.
	Policy string `json:"policy"`
}

// writeText выводит результат в человекочитаемом формате.
func (d *CreateData) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Путь: %s\n", d.Path); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Псевдоним: %s\n", d.Alias); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Политика: %s\n", d.Policy); err != nil {
		return err
	}
	status := "файл уже существовал"
	if d.Created {
		status = "файл создан"
	}
	if _, err := fmt.Fprintf(w, "Результат: %s\n", status); err != nil {
		return err
	}
	if d.Renamed {
		if _, err := fmt.Fprintf(w, "Имя %q было занято — выбран свободный вариант\n", d.Requested); err != nil {
			return err
		}
	}
	return nil
}

// CreateHandler обрабатывает команду create.
type CreateHandler struct{}

// Name возвращает имя команды.
func (h *CreateHandler) Name() string {
	return constants.ActCreate
}

// Description возвращает описание команды для вывода в help.
func (h *CreateHandler) Description() string {
	return "Создание файла по роли директории или явному пути согласно политике"
}

// Execute выполняет команду create.
func (h *CreateHandler) Execute(ctx context.Context, cfg *config.Config) error {
	start := time.Now()

	traceID := tracing.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = tracing.GenerateTraceID()
	}

	format := os.Getenv(constants.EnvOutputFormat)

	if err := validateParams(cfg); err != nil {
		return h.writeError(format, traceID, start, shared.ErrInvalidParams, err.Error())
	}

	policy, err := document.ParsePolicy(cfg.Policy)
	if err != nil {
		return h.writeError(format, traceID, start, shared.ErrInvalidParams, err.Error())
	}

	// Разрешаем целевой путь без побочных эффектов — он нужен и для
	// dry-run плана, и для определения факта создания/переименования.
	target, existsBefore, err := resolveTarget(cfg)
	if err != nil {
		return h.writeError(format, traceID, start, errorCode(err), err.Error())
	}

	if dryrun.IsDryRun() {
		plan, planErr := h.buildPlan(cfg, target, existsBefore, policy)
		if planErr != nil {
			return h.writeError(format, traceID, start, errorCode(planErr), planErr.Error())
		}
		return output.WriteDryRunResult(os.Stdout, format, constants.ActCreate, traceID, constants.APIVersion, start, plan)
	}

	if dryrun.IsVerbose() {
		if plan, planErr := h.buildPlan(cfg, target, existsBefore, policy); planErr == nil {
			_ = plan.WritePlanText(os.Stderr) //nolint:errcheck // предпросмотр не влияет на выполнение
		}
	}

	res := construct(cfg, policy)
	if cfg.Alias != "" {
		res = res.WithAlias(cfg.Alias)
	}

	doc, err := res.Document()
	if err != nil {
		return h.writeError(format, traceID, start, errorCode(err), err.Error())
	}

	created := !existsBefore || doc.Path() != target
	renamed := doc.Path() != target

	collector := collectorOrNop(cfg)
	if created {
		collector.RecordFileCreated(policy.String())
	}
	if renamed {
		collector.RecordCollision()
	}

	// Содержимое записывается только во вновь созданный файл:
	// create не перезаписывает существующие данные.
	if cfg.Content != "" && created {
		if _, err = doc.ReplaceWith([]byte(cfg.Content)); err != nil {
			return h.writeError(format, traceID, start, errorCode(err), err.Error())
		}
	}

	data := &CreateData{
		Alias:     doc.Alias(),
		Path:      doc.Path(),
		Requested: filepath.Base(target),
		Created:   created,
		Renamed:   renamed,
		Policy:    policy.String(),
	}

	if format != output.FormatJSON {
		return data.writeText(os.Stdout)
	}

	result := &output.Result{
		Status:  output.StatusSuccess,
		Command: constants.ActCreate,
		Data:    data,
		Metadata: &output.Metadata{
			DurationMs: time.Since(start).Milliseconds(),
			TraceID:    traceID,
			APIVersion: constants.APIVersion,
		},
	}

	writer := output.NewWriter(format)
	return writer.Write(os.Stdout, result)
}

// validateParams проверяет обязательные параметры команды.
func validateParams(cfg *config.Config) error {
	if cfg.Path == "" && cfg.Role == "" {
		return fmt.Errorf("требуется DF_PATH или DF_ROLE")
	}
	if cfg.Path != "" && cfg.Role != "" {
		return fmt.Errorf("DF_PATH и DF_ROLE взаимоисключающие")
	}
	if cfg.Path == "" && cfg.Filename == "" {
		return fmt.Errorf("требуется DF_FILENAME")
	}
	return nil
}

// construct конструирует Result по параметрам конфигурации.
func construct(cfg *config.Config, policy document.CreatePolicy) *document.Result {
	if cfg.Path != "" {
		alias := cfg.Alias
		if alias == "" {
			alias = filepath.Base(cfg.Path)
		}
		return document.AtPath(cfg.Path, alias, policy)
	}
	folder, err := shared.FolderForRole(cfg.Role, cfg.AppID, cfg.Subdirs)
	if err != nil {
		// Роль уже проверена resolveTarget — сюда попасть нельзя.
		return document.AtPath("", cfg.Alias, policy)
	}
	return document.At(folder, cfg.Filename, policy)
}

// resolveTarget разрешает запрошенный путь без побочных эффектов
// и сообщает, существует ли файл.
func resolveTarget(cfg *config.Config) (string, bool, error) {
	if cfg.Path != "" {
		_, statErr := os.Stat(cfg.Path)
		return cfg.Path, statErr == nil, nil
	}

	folder, err := shared.FolderForRole(cfg.Role, cfg.AppID, cfg.Subdirs)
	if err != nil {
		return "", false, err
	}

	// Probe с CreateNever: успех — файл существует, FILE.NOT_FOUND — путь
	// разрешён, но файла нет. Остальные ошибки (DIR.*) фатальны.
	probe := document.At(folder, cfg.Filename, document.CreateNever)
	if probe.Err() == nil {
		return probe.Path(), true, nil
	}
	if document.CodeOf(probe.Err()) == document.ErrCodeFileNotFound {
		return probe.SuggestRename(), false, nil
	}
	return "", false, probe.Err()
}

// collectorOrNop возвращает коллектор метрик из конфигурации или NopCollector.
func collectorOrNop(cfg *config.Config) metrics.Collector {
	if cfg != nil && cfg.Metrics != nil {
		return cfg.Metrics
	}
	return metrics.NewNopCollector()
}

// errorCode извлекает машиночитаемый код из ошибки.
func errorCode(err error) string {
	return shared.CodeForError(err)
}

// writeError выводит структурированную ошибку и возвращает error.
func (h *CreateHandler) writeError(format, traceID string, start time.Time, code, message string) error {
	if format != output.FormatJSON {
		return shared.HandleError(message, code)
	}

	result := &output.Result{
		Status:  output.StatusError,
		Command: constants.ActCreate,
		Error: &output.ErrorInfo{
			Code:    code,
			Message: message,
		},
		Metadata: &output.Metadata{
			DurationMs: time.Since(start).Milliseconds(),
			TraceID:    traceID,
			APIVersion: constants.APIVersion,
		},
	}

	writer := output.NewWriter(format)
	_ = writer.Write(os.Stdout, result) //nolint:errcheck // ошибка записи не должна маскировать исходную
	return fmt.Errorf("%s: %s", code, message)
}
