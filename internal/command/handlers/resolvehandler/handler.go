// Package resolvehandler реализует команду resolve: разрешение роли
// директории или явного пути в абсолютный путь без побочных эффектов.
package resolvehandler

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Kargones/docforge/document"
	"github.com/Kargones/docforge/internal/command"
	"github.com/Kargones/docforge/internal/command/handlers/shared"
	"github.com/Kargones/docforge/internal/config"
	"github.com/Kargones/docforge/internal/constants"
	"github.com/Kargones/docforge/internal/pkg/output"
	"github.com/Kargones/docforge/internal/pkg/tracing"
)

// RegisterCmd регистрирует обработчик в глобальном реестре команд.
func RegisterCmd() {
	command.Register(&ResolveHandler{})
}

// ResolveData содержит результат разрешения пути для JSON вывода.
type ResolveData struct {
	// Path — разрешённый абсолютный путь.
	Path string `json:"path"`
	// Exists — существует ли файл (или директория при разрешении роли без имени).
	Exists bool `json:"exists"`
	// Suggestion — имя, которое выбрал бы разрешитель коллизий.
	// Совпадает с Path, если путь свободен.
	Suggestion string `json:"suggestion,omitempty"`
}

// writeText выводит результат в человекочитаемом формате.
func (d *ResolveData) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Путь: %s\n", d.Path); err != nil {
		return err
	}
	status := "нет"
	if d.Exists {
		status = "да"
	}
	if _, err := fmt.Fprintf(w, "Существует: %s\n", status); err != nil {
		return err
	}
	if d.Suggestion != "" && d.Suggestion != d.Path {
		if _, err := fmt.Fprintf(w, "Свободное имя: %s\n", d.Suggestion); err != nil {
			return err
		}
	}
	return nil
}

// ResolveHandler обрабатывает команду resolve.
type ResolveHandler struct{}

// Name возвращает имя команды.
func (h *ResolveHandler) Name() string {
	return constants.ActResolve
}

// Description возвращает описание команды для вывода в help.
func (h *ResolveHandler) Description() string {
	return "Разрешение роли директории или пути в абсолютный путь без побочных эффектов"
}

// Execute выполняет команду resolve.
func (h *ResolveHandler) Execute(ctx context.Context, cfg *config.Config) error {
	start := time.Now()

	traceID := tracing.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = tracing.GenerateTraceID()
	}

	format := os.Getenv(constants.EnvOutputFormat)

	if err := validateParams(cfg); err != nil {
		return h.writeError(format, traceID, start, shared.ErrInvalidParams, err.Error())
	}

	data, err := resolve(cfg)
	if err != nil {
		return h.writeError(format, traceID, start, shared.CodeForError(err), err.Error())
	}

	if format != output.FormatJSON {
		return data.writeText(os.Stdout)
	}

	result := &output.Result{
		Status:  output.StatusSuccess,
		Command: constants.ActResolve,
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
	return nil
}

// resolve разрешает локацию в путь. Файловая система не модифицируется:
// существование проверяется probe-конструированием с политикой never.
func resolve(cfg *config.Config) (*ResolveData, error) {
	target, exists, err := resolveTarget(cfg)
	if err != nil {
		return nil, err
	}

	data := &ResolveData{Path: target, Exists: exists}

	// Подсказка свободного имени имеет смысл только для файла.
	if cfg.Path != "" || cfg.Filename != "" {
		suggestion, err := document.Suggest(target)
		if err != nil {
			return nil, err
		}
		data.Suggestion = suggestion
	}
	return data, nil
}

// resolveTarget возвращает разрешённый путь и факт существования файла.
func resolveTarget(cfg *config.Config) (string, bool, error) {
	if cfg.Path != "" {
		_, statErr := os.Stat(cfg.Path)
		return cfg.Path, statErr == nil, nil
	}

	folder, err := shared.FolderForRole(cfg.Role, cfg.AppID, cfg.Subdirs)
	if err != nil {
		return "", false, err
	}

	// Без имени файла разрешается сама директория роли.
	if cfg.Filename == "" {
		path := folder.Path()
		if path == "" {
			return "", false, fmt.Errorf("роль %q не разрешается на этой системе", cfg.Role)
		}
		return path, folder.Exists(), nil
	}

	probe := document.At(folder, cfg.Filename, document.CreateNever)
	if probe.Err() == nil {
		return probe.Path(), true, nil
	}
	if document.CodeOf(probe.Err()) == document.ErrCodeFileNotFound {
		return probe.SuggestRename(), false, nil
	}
	return "", false, probe.Err()
}

// writeError выводит структурированную ошибку и возвращает error.
func (h *ResolveHandler) writeError(format, traceID string, start time.Time, code, message string) error {
	if format != output.FormatJSON {
		return shared.HandleError(message, code)
	}

	result := &output.Result{
		Status:  output.StatusError,
		Command: constants.ActResolve,
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
