// Package apperrors предоставляет структурированные ошибки приложения.
// Переименован из errors чтобы избежать конфликта со стандартной библиотекой.
package apperrors

import "fmt"

// Коды ошибок в иерархическом формате: CATEGORY.SPECIFIC_ERROR.
// Позволяет grep по категориям: `grep "MANIFEST\."` для всех ошибок манифеста.
const (
	// Category: CONFIG — ошибки загрузки и парсинга конфигурации.
	ErrConfigLoad  = "CONFIG.LOAD_FAILED"
	ErrConfigParse = "CONFIG.PARSE_FAILED"

	// Category: COMMAND — ошибки выполнения команд.
	ErrCommandNotFound    = "COMMAND.NOT_FOUND"
	ErrCommandExec        = "COMMAND.EXEC_FAILED"
	ErrCommandParams      = "COMMAND.INVALID_PARAMS"
	ErrCommandUnknownRole = "COMMAND.UNKNOWN_ROLE"

	// Category: MANIFEST — ошибки batch-манифестов.
	ErrManifestRead     = "MANIFEST.READ_FAILED"
	ErrManifestParse    = "MANIFEST.PARSE_FAILED"
	ErrManifestValidate = "MANIFEST.VALIDATION_FAILED"
)

// AppError представляет структурированную ошибку приложения.
// Реализует error interface и поддерживает wrapping через Unwrap().
//
// Пример использования:
//
//	return apperrors.NewAppError(apperrors.ErrManifestParse,
//	    "не удалось разобрать манифест", err)
type AppError struct {
	// Code — машиночитаемый код ошибки в формате CATEGORY.SPECIFIC.
	Code string `json:"code"`

	// Message — человекочитаемое описание ошибки.
	Message string `json:"message"`

	// Cause — wrapped оригинальная ошибка.
	// Не сериализуется в JSON (может содержать системные детали).
	Cause error `json:"-"`
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap возвращает wrapped ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError создаёт новый AppError с заданным кодом, сообщением и причиной.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
