package document

import (
	"errors"
	"fmt"
)

// Коды ошибок в иерархическом формате: CATEGORY.SPECIFIC_ERROR.
// Позволяет grep по категориям: `grep "FILE\."` для всех файловых ошибок.
const (
	// Category: DIR — ошибки разрешения well-known директорий.
	ErrCodeUserDirs      = "DIR.USER_NOT_FOUND"
	ErrCodeDocumentsDir  = "DIR.DOCUMENTS_NOT_FOUND"
	ErrCodePicturesDir   = "DIR.PICTURES_NOT_FOUND"
	ErrCodeVideosDir     = "DIR.VIDEOS_NOT_FOUND"
	ErrCodeDownloadsDir  = "DIR.DOWNLOADS_NOT_FOUND"
	ErrCodeProjectID     = "DIR.PROJECT_ID_NOT_FOUND"

	// Category: FILE — ошибки создания и открытия файлов.
	ErrCodeFileNotFound = "FILE.NOT_FOUND"
	ErrCodeCreateParent = "FILE.CREATE_PARENT_FAILED"
	ErrCodeOpenFile     = "FILE.OPEN_FAILED"
	ErrCodeLaunchFile   = "FILE.LAUNCH_FAILED"
	ErrCodeNotWritable  = "FILE.NOT_WRITABLE"
	ErrCodeNotOpen      = "FILE.NOT_OPEN"
	ErrCodeNotText      = "FILE.NOT_TEXT"
)

// Error представляет структурированную ошибку пакета document.
// Реализует error interface и поддерживает wrapping через Unwrap().
// Все fallible операции пакета возвращают именно этот тип, чтобы
// вызывающий код мог сопоставлять ошибки по коду через CodeOf().
type Error struct {
	// Code — машиночитаемый код ошибки в формате CATEGORY.SPECIFIC.
	Code string `json:"code"`

	// Path — путь файла или директории, к которым относится ошибка.
	// Может быть пустым для ошибок разрешения ролей.
	Path string `json:"path,omitempty"`

	// Cause — wrapped оригинальная ошибка ОС.
	// Не сериализуется в JSON (может содержать системные детали).
	Cause error `json:"-"`
}

// Error реализует интерфейс error.
func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Path, e.Cause)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Path)
	case e.Cause != nil:
		return fmt.Sprintf("%s (%v)", e.Code, e.Cause)
	default:
		return e.Code
	}
}

// Unwrap возвращает wrapped ошибку для errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// newError создаёт Error с заданным кодом, путём и причиной.
func newError(code, path string, cause error) *Error {
	return &Error{Code: code, Path: path, Cause: cause}
}

// CodeOf возвращает код ошибки, если err (или любая ошибка в её цепочке)
// является *Error. Для посторонних ошибок возвращает пустую строку.
//
// Пример сопоставления по виду ошибки:
//
//	if document.CodeOf(err) == document.ErrCodeFileNotFound {
//	    // файл отсутствует
//	}
func CodeOf(err error) string {
	var docErr *Error
	if errors.As(err, &docErr) {
		return docErr.Code
	}
	return ""
}
