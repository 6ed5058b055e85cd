// Package version реализует команду version: вывод информации
// о сборке приложения.
package version

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/Kargones/docforge/internal/command"
	"github.com/Kargones/docforge/internal/config"
	"github.com/Kargones/docforge/internal/constants"
	"github.com/Kargones/docforge/internal/pkg/output"
	"github.com/Kargones/docforge/internal/pkg/tracing"
)

// RegisterCmd регистрирует обработчик в глобальном реестре команд.
func RegisterCmd() {
	command.Register(&VersionHandler{})
}

// VersionData содержит информацию о версии для JSON вывода.
type VersionData struct {
	// Version — версия приложения (задаётся при сборке через ldflags).
	Version string `json:"version"`
	// Commit — хеш коммита на момент сборки.
	Commit string `json:"commit"`
	// GoVersion — версия Go, которой собрано приложение.
	GoVersion string `json:"go_version"`
}

// writeText выводит информацию о версии в человекочитаемом формате.
func (d *VersionData) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s version %s\n", constants.AppName, d.Version); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  commit: %s\n", d.Commit); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  go: %s\n", d.GoVersion); err != nil {
		return err
	}
	return nil
}

// VersionHandler обрабатывает команду version.
type VersionHandler struct{}

// Name возвращает имя команды.
func (h *VersionHandler) Name() string {
	return constants.ActVersion
}

// Description возвращает описание команды для вывода в help.
func (h *VersionHandler) Description() string {
	return "Вывод версии приложения"
}

// Execute выполняет команду version.
func (h *VersionHandler) Execute(ctx context.Context, _ *config.Config) error {
	start := time.Now()

	traceID := tracing.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = tracing.GenerateTraceID()
	}

	data := &VersionData{
		Version:   constants.Version,
		Commit:    constants.CommitHash,
		GoVersion: runtime.Version(),
	}

	format := os.Getenv(constants.EnvOutputFormat)
	if format != output.FormatJSON {
		return data.writeText(os.Stdout)
	}

	result := &output.Result{
		Status:  output.StatusSuccess,
		Command: constants.ActVersion,
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
