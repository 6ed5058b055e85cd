// Package shared содержит общие компоненты для всех command handlers:
// коды ошибок, вывод ошибок и разбор параметров локации.
package shared

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Kargones/docforge/document"
	"github.com/Kargones/docforge/internal/pkg/apperrors"
)

// Общие коды ошибок команд.
const (
	// ErrInvalidParams — невалидные параметры команды.
	ErrInvalidParams = apperrors.ErrCommandParams
	// ErrUnknownRole — неизвестная роль директории.
	ErrUnknownRole = apperrors.ErrCommandUnknownRole
)

// HandleError пишет стандартизированное сообщение об ошибке в stdout
// и возвращает отформатированную ошибку.
// Используется хендлерами в текстовом формате вывода.
func HandleError(message, code string) error {
	_, _ = fmt.Fprintf(os.Stdout, "Ошибка: %s\nКод: %s\n", message, code)
	return fmt.Errorf("%s: %s", code, message)
}

// CodeForError извлекает машиночитаемый код из ошибки: сначала коды
// пакета document, затем коды AppError, иначе generic код выполнения.
func CodeForError(err error) string {
	if code := document.CodeOf(err); code != "" {
		return code
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return apperrors.ErrCommandExec
}

// FolderForRole конструирует document.Folder по строковой роли.
// Роли app-config и app-data требуют непустого appID — его валидирует
// сам document (DIR.PROJECT_ID_NOT_FOUND при разрешении).
func FolderForRole(role, appID string, subdirs []string) (document.Folder, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "downloads":
		return document.Downloads(subdirs...), nil
	case "documents":
		return document.Documents(subdirs...), nil
	case "pictures":
		return document.Pictures(subdirs...), nil
	case "videos":
		return document.Videos(subdirs...), nil
	case "home":
		return document.Home(subdirs...), nil
	case "app-config":
		return document.AppConfig(parseAppID(appID), subdirs...), nil
	case "app-data":
		return document.AppData(parseAppID(appID), subdirs...), nil
	default:
		return document.Folder{}, apperrors.NewAppError(ErrUnknownRole,
			fmt.Sprintf("неизвестная роль директории: %q", role), nil)
	}
}

// parseAppID разбирает идентификатор приложения из reverse-DNS формата
// "com.example.App". Короткие формы допустимы: "example.App" и просто "App".
func parseAppID(raw string) document.AppID {
	parts := strings.Split(raw, ".")
	switch len(parts) {
	case 1:
		return document.AppID{Application: parts[0]}
	case 2:
		return document.AppID{Organization: parts[0], Application: parts[1]}
	default:
		return document.AppID{
			Qualifier:    parts[0],
			Organization: strings.Join(parts[1:len(parts)-1], "."),
			Application:  parts[len(parts)-1],
		}
	}
}
