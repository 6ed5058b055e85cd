// Package output предоставляет структуры и интерфейсы для форматирования
// результатов команд в JSON и текстовом формате.
package output

// StatusSuccess и StatusError — возможные значения поля Status в Result.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result представляет структурированный результат выполнения команды.
// Используется для сериализации в JSON (DF_OUTPUT_FORMAT=json)
// или для формирования человекочитаемого вывода (DF_OUTPUT_FORMAT=text).
type Result struct {
	// Status содержит статус выполнения: "success" или "error".
	Status string `json:"status"`

	// Command содержит имя выполненной команды.
	Command string `json:"command"`

	// Data содержит command-specific payload.
	// Для каждой команды определяется свой типизированный struct.
	Data any `json:"data,omitempty"`

	// Error содержит информацию об ошибке (только при status="error").
	Error *ErrorInfo `json:"error,omitempty"`

	// Metadata содержит метаданные выполнения.
	Metadata *Metadata `json:"metadata,omitempty"`

	// DryRun указывает что результат — это dry-run план, а не реальное выполнение.
	DryRun bool `json:"dry_run,omitempty"`

	// Plan содержит план операций для dry-run режима.
	Plan *DryRunPlan `json:"plan,omitempty"`

	// Summary содержит сводку с ключевыми метриками (опционально).
	// В JSON не сериализуется напрямую — JSONWriter копирует его
	// в Metadata.Summary.
	Summary *SummaryInfo `json:"-"`
}

// ErrorInfo содержит информацию об ошибке в структурированном виде.
// Code — машиночитаемый код ошибки (например, "FILE.NOT_FOUND").
// Message — человекочитаемое описание ошибки.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Metadata содержит метаданные выполнения команды.
type Metadata struct {
	// DurationMs — время выполнения команды в миллисекундах.
	DurationMs int64 `json:"duration_ms"`

	// TraceID — идентификатор трассировки для корреляции логов.
	// Заполняется через tracing.TraceIDFromContext(ctx) при формировании результата.
	TraceID string `json:"trace_id,omitempty"`

	// APIVersion — версия формата API для backward compatibility.
	// Текущая версия: "v1".
	APIVersion string `json:"api_version"`

	// Summary содержит сводку результатов для JSON output.
	// Заполняется из Result.Summary при сериализации в JSONWriter.
	Summary *SummaryInfo `json:"summary,omitempty"`
}
