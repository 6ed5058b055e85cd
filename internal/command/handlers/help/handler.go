// Package help реализует команду help: вывод списка доступных команд
// из глобального реестра.
package help

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Kargones/docforge/internal/command"
	"github.com/Kargones/docforge/internal/config"
	"github.com/Kargones/docforge/internal/constants"
	"github.com/Kargones/docforge/internal/pkg/output"
	"github.com/Kargones/docforge/internal/pkg/tracing"
)

// RegisterCmd регистрирует обработчик в глобальном реестре команд.
func RegisterCmd() {
	command.Register(&HelpHandler{})
}

// CommandInfo описывает одну команду в выводе help.
type CommandInfo struct {
	// Name — имя команды.
	Name string `json:"name"`
	// Description — краткое описание команды.
	Description string `json:"description"`
}

// HelpData содержит список команд для JSON вывода.
type HelpData struct {
	// Commands — команды в алфавитном порядке.
	Commands []CommandInfo `json:"commands"`
}

// writeText выводит список команд в человекочитаемом формате.
func (d *HelpData) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Использование: %s <команда>\n\n", constants.AppName); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Команды:\n"); err != nil {
		return err
	}
	for _, cmd := range d.Commands {
		if _, err := fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Description); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nКоманда задаётся первым аргументом или переменной %s.\n", constants.EnvCommand); err != nil {
		return err
	}
	return nil
}

// HelpHandler обрабатывает команду help.
type HelpHandler struct{}

// Name возвращает имя команды.
func (h *HelpHandler) Name() string {
	return constants.ActHelp
}

// Description возвращает описание команды для вывода в help.
func (h *HelpHandler) Description() string {
	return "Вывод списка доступных команд"
}

// Execute выполняет команду help.
func (h *HelpHandler) Execute(ctx context.Context, _ *config.Config) error {
	start := time.Now()

	traceID := tracing.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = tracing.GenerateTraceID()
	}

	data := &HelpData{}
	for _, name := range command.Names() {
		handler, ok := command.Get(name)
		if !ok {
			continue
		}
		data.Commands = append(data.Commands, CommandInfo{
			Name:        name,
			Description: handler.Description(),
		})
	}

	format := os.Getenv(constants.EnvOutputFormat)
	if format != output.FormatJSON {
		return data.writeText(os.Stdout)
	}

	result := &output.Result{
		Status:  output.StatusSuccess,
		Command: constants.ActHelp,
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
