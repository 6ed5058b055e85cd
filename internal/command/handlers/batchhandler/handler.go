// Package batchhandler реализует команду batch: пакетное создание файлов
// из YAML-манифеста с отображением алиас→путь через единую сессию.
package batchhandler

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
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
	command.Register(&BatchHandler{})
}

// BatchFile — итог обработки одной записи манифеста.
type BatchFile struct {
	// Alias — алиас документа в сессии ("_" для неотслеживаемых).
	Alias string `json:"alias"`
	// Path — итоговый абсолютный путь файла.
	Path string `json:"path"`
	// Created — был ли файл создан этим вызовом.
	Created bool `json:"created"`
	// Renamed — было ли имя изменено разрешителем коллизий.
	Renamed bool `json:"renamed"`
}

// BatchData содержит результат пакетного создания для JSON вывода.
type BatchData struct {
	// Manifest — путь обработанного манифеста.
	Manifest string `json:"manifest"`
	// Files — итоги по записям в порядке манифеста.
	Files []BatchFile `json:"files"`
	// Total — количество записей манифеста.
	Total int `json:"total"`
	// CreatedCount — количество созданных файлов.
	CreatedCount int `json:"created_count"`
}

// writeText выводит результат в человекочитаемом формате.
func (d *BatchData) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Манифест: %s\n", d.Manifest); err != nil {
		return err
	}
	for _, f := range d.Files {
		marker := "="
		if f.Created {
			marker = "+"
		}
		if _, err := fmt.Fprintf(w, "  [%s] %s → %s\n", marker, f.Alias, f.Path); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Создано файлов: %d из %d\n", d.CreatedCount, d.Total); err != nil {
		return err
	}
	return nil
}

// BatchHandler обрабатывает команду batch.
type BatchHandler struct{}

// Name возвращает имя команды.
func (h *BatchHandler) Name() string {
	return constants.ActBatch
}

// Description возвращает описание команды для вывода в help.
func (h *BatchHandler) Description() string {
	return "Пакетное создание файлов из YAML-манифеста"
}

// Execute выполняет команду batch.
func (h *BatchHandler) Execute(ctx context.Context, cfg *config.Config) error {
	start := time.Now()

	traceID := tracing.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = tracing.GenerateTraceID()
	}

	format := os.Getenv(constants.EnvOutputFormat)

	if cfg.Manifest == "" {
		return h.writeError(format, traceID, start, shared.ErrInvalidParams, "требуется DF_MANIFEST")
	}

	manifest, err := loadManifest(cfg.Manifest)
	if err != nil {
		return h.writeError(format, traceID, start, shared.CodeForError(err), err.Error())
	}

	if dryrun.IsDryRun() {
		plan, planErr := h.buildPlan(cfg.Manifest, manifest)
		if planErr != nil {
			return h.writeError(format, traceID, start, shared.CodeForError(planErr), planErr.Error())
		}
		return output.WriteDryRunResult(os.Stdout, format, constants.ActBatch, traceID, constants.APIVersion, start, plan)
	}

	collector := collectorOrNop(cfg)

	// Записи обрабатываются строго по порядку: probe перед конструированием
	// видит файлы, созданные предыдущими записями того же манифеста.
	files := make([]BatchFile, 0, len(manifest.Entries))
	results := make([]*document.Result, 0, len(manifest.Entries))
	created := 0

	for i := range manifest.Entries {
		entry := &manifest.Entries[i]

		target, existsBefore, probeErr := entry.probeTarget()
		if probeErr != nil {
			return h.writeError(format, traceID, start, shared.CodeForError(probeErr), probeErr.Error())
		}

		res, constructErr := entry.construct()
		if constructErr != nil {
			return h.writeError(format, traceID, start, shared.CodeForError(constructErr), constructErr.Error())
		}
		if res.Err() != nil {
			message := fmt.Sprintf("запись %d (%s): %s", i, entry.requestedName(), res.Err().Error())
			return h.writeError(format, traceID, start, shared.CodeForError(res.Err()), message)
		}

		file := BatchFile{
			Alias:   entry.alias(),
			Path:    res.Path(),
			Created: !existsBefore || res.Path() != target,
			Renamed: res.Path() != target,
		}
		if file.Created {
			created++
			collector.RecordFileCreated(entry.Policy.String())
		}
		if file.Renamed {
			collector.RecordCollision()
		}

		files = append(files, file)
		results = append(results, res)
	}

	// Содержимое пишется через Session: batch — основной потребитель
	// пакетной единицы работы With.
	var writeErr error
	document.With(cfg.Logger, func(s document.Session) error {
		for i := range manifest.Entries {
			entry := &manifest.Entries[i]
			if entry.Content == "" || !files[i].Created || entry.alias() == document.SkipAlias {
				continue
			}
			doc, ok := s.Lookup(files[i].Alias)
			if !ok {
				continue
			}
			if _, err := doc.ReplaceWith([]byte(entry.Content)); err != nil {
				writeErr = err
				return err
			}
		}
		return nil
	}, results...)
	if writeErr != nil {
		return h.writeError(format, traceID, start, shared.CodeForError(writeErr), writeErr.Error())
	}

	data := &BatchData{
		Manifest:     cfg.Manifest,
		Files:        files,
		Total:        len(files),
		CreatedCount: created,
	}

	summary := output.NewSummaryInfo()
	summary.AddMetric("Файлов создано", strconv.Itoa(created), "шт")
	for _, f := range files {
		if f.Renamed {
			summary.AddWarning(fmt.Sprintf("Имя занято — %s создан как %s", f.Alias, f.Path))
		}
	}

	if format != output.FormatJSON {
		return data.writeText(os.Stdout)
	}

	result := &output.Result{
		Status:  output.StatusSuccess,
		Command: constants.ActBatch,
		Data:    data,
		Summary: summary,
		Metadata: &output.Metadata{
			DurationMs: time.Since(start).Milliseconds(),
			TraceID:    traceID,
			APIVersion: constants.APIVersion,
		},
	}

	writer := output.NewWriter(format)
	return writer.Write(os.Stdout, result)
}

// collectorOrNop возвращает коллектор метрик из конфигурации или NopCollector.
func collectorOrNop(cfg *config.Config) metrics.Collector {
	if cfg != nil && cfg.Metrics != nil {
		return cfg.Metrics
	}
	return metrics.NewNopCollector()
}

// writeError выводит структурированную ошибку и возвращает error.
func (h *BatchHandler) writeError(format, traceID string, start time.Time, code, message string) error {
	if format != output.FormatJSON {
		return shared.HandleError(message, code)
	}

	result := &output.Result{
		Status:  output.StatusError,
		Command: constants.ActBatch,
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
