// Package main содержит точку входа приложения docforge —
// CLI для разрешения путей и безопасного к коллизиям создания файлов.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/docforge/internal/command"
	"github.com/Kargones/docforge/internal/command/handlers"
	"github.com/Kargones/docforge/internal/config"
	"github.com/Kargones/docforge/internal/constants"
	"github.com/Kargones/docforge/internal/di"
	"github.com/Kargones/docforge/internal/pkg/apperrors"
	"github.com/Kargones/docforge/internal/pkg/metrics"
	"github.com/Kargones/docforge/internal/pkg/tracing"
)

// Exit codes приложения.
const (
	exitOK             = 0
	exitCommandError   = 1
	exitUnknownCommand = 2
	exitConfigError    = 5
)

func main() {
	os.Exit(run())
}

// recordMetrics записывает завершение команды и отправляет метрики в Pushgateway.
func recordMetrics(ctx context.Context, collector metrics.Collector, command string, start time.Time, success bool) {
	collector.RecordCommandEnd(command, time.Since(start), success)
	_ = collector.Push(ctx) //nolint:errcheck // ошибки push логируются внутри, не критичны
}

// run содержит основную логику приложения и возвращает exit code.
// Вынесена из main(), чтобы os.Exit() вызывался ПОСЛЕ отработки всех
// defer-ов (tracerShutdown, span.End) — иначе трейсы ошибочных
// выполнений теряются.
func run() int {
	ctx := context.Background()

	cfg, err := config.MustLoad()
	if err != nil || cfg == nil {
		fmt.Fprintf(os.Stderr, "Не удалось загрузить конфигурацию приложения: %v\n", err)
		return exitConfigError
	}
	l := cfg.Logger
	l.Debug("Информация о сборке",
		slog.String("version", constants.Version),
		slog.String("commit_hash", constants.CommitHash),
	)

	handlers.RegisterAll()

	// Первый аргумент CLI имеет приоритет над DF_COMMAND.
	if len(os.Args) > 1 {
		cfg.Command = os.Args[1]
	}
	// Пустая команда → help
	if cfg.Command == "" {
		cfg.Command = constants.ActHelp
	}

	// Генерируем trace_id для корреляции логов и связываем его
	// с OTel span context — все span-ы используют этот trace ID.
	traceID := tracing.GenerateTraceID()
	ctx = tracing.WithTraceID(ctx, traceID)
	ctx = tracing.ContextWithOTelTraceID(ctx, traceID)
	l = l.With(slog.String("trace_id", traceID))

	app, err := di.InitializeApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось инициализировать приложение: %v\n", err)
		return exitConfigError
	}
	cfg.Metrics = app.MetricsCollector

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := app.TracerShutdown(shutdownCtx); shutdownErr != nil {
			l.Error("ошибка завершения tracing",
				slog.String("error", shutdownErr.Error()),
				slog.String("command", cfg.Command),
			)
		}
	}()

	handler, ok := command.Get(cfg.Command)
	if !ok {
		l.Error("Неизвестная команда",
			slog.String("command", cfg.Command),
			slog.String(constants.MsgErrProcessing, constants.MsgAppExit),
		)
		fmt.Fprintf(os.Stderr, "Ошибка [%s]: неизвестная команда %q. Список команд: %s help\n",
			apperrors.ErrCommandNotFound, cfg.Command, constants.AppName)
		return exitUnknownCommand
	}

	tracer := otel.Tracer(constants.AppName)
	ctx, span := tracer.Start(ctx, cfg.Command,
		trace.WithAttributes(
			attribute.String("command", cfg.Command),
			attribute.String("trace_id", traceID),
		),
	)
	defer span.End()

	app.MetricsCollector.RecordCommandStart(cfg.Command)
	start := time.Now()

	l.Debug("Выполнение команды", slog.String("command", cfg.Command))
	execErr := handler.Execute(ctx, cfg)

	recordMetrics(ctx, app.MetricsCollector, cfg.Command, start, execErr == nil)

	if execErr != nil {
		l.Error("Ошибка выполнения команды",
			slog.String("command", cfg.Command),
			slog.String("error", execErr.Error()),
			slog.String(constants.MsgErrProcessing, constants.MsgAppExit),
		)
		return exitCommandError
	}
	return exitOK
}
