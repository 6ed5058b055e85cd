package batchhandler

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Kargones/docforge/document"
	"github.com/Kargones/docforge/internal/command/handlers/shared"
	"github.com/Kargones/docforge/internal/pkg/apperrors"
)

// Manifest — YAML-манифест пакетного создания файлов.
type Manifest struct {
	// Entries — записи манифеста, обрабатываются по порядку.
	Entries []ManifestEntry `yaml:"entries"`
}

// ManifestEntry описывает один файл манифеста. Локация задаётся либо
// ролью директории (role + name), либо явным путём (path) —
// взаимоисключающе, как у команды create.
type ManifestEntry struct {
	// Role — роль well-known директории (documents, downloads, ...).
	Role string `yaml:"role,omitempty"`
	// AppID — идентификатор приложения для ролей app-config/app-data.
	AppID string `yaml:"app_id,omitempty"`
	// Subdirs — поддиректории внутри роли.
	Subdirs []string `yaml:"subdirs,omitempty"`
	// Name — имя файла (для записей с ролью).
	Name string `yaml:"name,omitempty"`
	// Path — явный путь файла (альтернатива role+name).
	Path string `yaml:"path,omitempty"`
	// Alias — алиас документа в сессии. По умолчанию — имя файла.
	// Алиас "_" создаёт файл, но не отслеживает его в сессии.
	Alias string `yaml:"alias,omitempty"`
	// Policy — политика создания. По умолчанию never.
	Policy document.CreatePolicy `yaml:"policy,omitempty"`
	// Content — содержимое, записываемое во вновь созданный файл.
	Content string `yaml:"content,omitempty"`
}

// validate проверяет согласованность записи.
func (e *ManifestEntry) validate(index int) error {
	if e.Path == "" && e.Role == "" {
		return fmt.Errorf("запись %d: требуется role или path", index)
	}
	if e.Path != "" && e.Role != "" {
		return fmt.Errorf("запись %d: role и path взаимоисключающие", index)
	}
	if e.Path == "" && e.Name == "" {
		return fmt.Errorf("запись %d: для записи с ролью требуется name", index)
	}
	return nil
}

// alias возвращает эффективный алиас записи.
func (e *ManifestEntry) alias() string {
	if e.Alias != "" {
		return e.Alias
	}
	if e.Path != "" {
		return filepath.Base(e.Path)
	}
	return e.Name
}

// requestedName возвращает запрошенное имя файла до разрешения коллизий.
func (e *ManifestEntry) requestedName() string {
	if e.Path != "" {
		return filepath.Base(e.Path)
	}
	return e.Name
}

// construct конструирует document.Result по записи манифеста.
func (e *ManifestEntry) construct() (*document.Result, error) {
	if e.Path != "" {
		return document.AtPath(e.Path, e.alias(), e.Policy), nil
	}
	folder, err := shared.FolderForRole(e.Role, e.AppID, e.Subdirs)
	if err != nil {
		return nil, err
	}
	res := document.At(folder, e.Name, e.Policy)
	if e.Alias != "" {
		res = res.WithAlias(e.Alias)
	}
	return res, nil
}

// probeTarget разрешает целевой путь записи без побочных эффектов
// и сообщает, существует ли файл на момент вызова.
func (e *ManifestEntry) probeTarget() (string, bool, error) {
	if e.Path != "" {
		_, statErr := os.Stat(e.Path)
		return e.Path, statErr == nil, nil
	}
	folder, err := shared.FolderForRole(e.Role, e.AppID, e.Subdirs)
	if err != nil {
		return "", false, err
	}
	probe := document.At(folder, e.Name, document.CreateNever)
	if probe.Err() == nil {
		return probe.Path(), true, nil
	}
	if document.CodeOf(probe.Err()) == document.ErrCodeFileNotFound {
		return probe.SuggestRename(), false, nil
	}
	return "", false, probe.Err()
}

// loadManifest читает и разбирает YAML-манифест.
// Коды MANIFEST.* различают этапы: чтение, парсинг, валидация.
func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // путь задаётся оператором через DF_MANIFEST
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrManifestRead,
			fmt.Sprintf("не удалось прочитать манифест %s", path), err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrManifestParse,
			fmt.Sprintf("не удалось разобрать манифест %s", path), err)
	}
	if len(m.Entries) == 0 {
		return nil, apperrors.NewAppError(apperrors.ErrManifestValidate,
			fmt.Sprintf("манифест %s не содержит записей", path), nil)
	}

	for i := range m.Entries {
		if err := m.Entries[i].validate(i); err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrManifestValidate, err.Error(), nil)
		}
	}
	return &m, nil
}
