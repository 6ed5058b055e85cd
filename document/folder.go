package document

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppID — идентификатор приложения в reverse-DNS формате "com.example.App":
// "com" — Qualifier, "example" — Organization, "App" — Application.
// Требуется для app-scoped ролей (AppConfig, AppData): операционная система
// выделяет приложению изолированные директории по этому идентификатору.
type AppID struct {
	Qualifier    string
	Organization string
	Application  string
}

// valid проверяет, что идентификатор пригоден для разрешения директории.
// Минимальное требование — непустое имя приложения.
func (id AppID) valid() bool {
	return id.Application != ""
}

// roleKind — символическая роль well-known директории.
type roleKind int

const (
	roleDocuments roleKind = iota
	rolePictures
	roleVideos
	roleDownloads
	roleHome
	roleAppConfig
	roleAppData
)

// String возвращает имя роли для логов и сообщений об ошибках.
func (r roleKind) String() string {
	switch r {
	case roleDocuments:
		return "documents"
	case rolePictures:
		return "pictures"
	case roleVideos:
		return "videos"
	case roleDownloads:
		return "downloads"
	case roleHome:
		return "home"
	case roleAppConfig:
		return "app-config"
	case roleAppData:
		return "app-data"
	default:
		return "unknown"
	}
}

// Folder представляет well-known директорию ОС плюс опциональные
// поддиректории: локацию, в которой размещается файл.
//
// Пример: Pictures("Screenshots", "July") — поддиректория Screenshots/July
// в пользовательской папке изображений.
//
// Разрешение роли в конкретный путь выполняется заново при каждом
// обращении — состояние между вызовами не кэшируется.
type Folder struct {
	kind    roleKind
	subdirs []string
	id      AppID
}

// Documents — пользовательская папка документов.
func Documents(subdirs ...string) Folder {
	return Folder{kind: roleDocuments, subdirs: subdirs}
}

// Pictures — пользовательская папка изображений.
func Pictures(subdirs ...string) Folder {
	return Folder{kind: rolePictures, subdirs: subdirs}
}

// Videos — пользовательская папка видео.
func Videos(subdirs ...string) Folder {
	return Folder{kind: roleVideos, subdirs: subdirs}
}

// Downloads — пользовательская папка загрузок.
func Downloads(subdirs ...string) Folder {
	return Folder{kind: roleDownloads, subdirs: subdirs}
}

// Home — домашняя директория пользователя.
func Home(subdirs ...string) Folder {
	return Folder{kind: roleHome, subdirs: subdirs}
}

// AppConfig — конфигурационная директория приложения id
// (настройки, параметры).
//
// ВНИМАНИЕ: если приложение не зарегистрировано в ОС, директории может
// не существовать — она будет создана политиками CreateIfAbsent и
// CreateAutoRename, но CreateNever завершится ошибкой.
func AppConfig(id AppID, subdirs ...string) Folder {
	return Folder{kind: roleAppConfig, subdirs: subdirs, id: id}
}

// AppData — директория данных приложения id
// (внутренние файлы, кэши фильтров и т.п.).
func AppData(id AppID, subdirs ...string) Folder {
	return Folder{kind: roleAppData, subdirs: subdirs, id: id}
}

// resolve разрешает роль в абсолютный путь и присоединяет filename.
// Пустой filename допустим — возвращается путь самой директории.
// Возвращает role-specific ошибку DIR.*, если роль не имеет отображения
// на уровне ОС или подсистема пользовательских директорий недоступна.
func (f Folder) resolve(filename string) (string, error) {
	base, err := f.baseDir()
	if err != nil {
		return "", err
	}

	parts := append([]string{base}, f.subdirs...)
	if filename != "" {
		parts = append(parts, filename)
	}
	return filepath.Join(parts...), nil
}

// baseDir возвращает корневую директорию роли.
// Запросы к ОС выполняются при каждом вызове, без кэширования.
func (f Folder) baseDir() (string, error) {
	switch f.kind {
	case roleDocuments:
		if xdg.UserDirs.Documents == "" {
			return "", newError(ErrCodeDocumentsDir, "", nil)
		}
		return xdg.UserDirs.Documents, nil
	case rolePictures:
		if xdg.UserDirs.Pictures == "" {
			return "", newError(ErrCodePicturesDir, "", nil)
		}
		return xdg.UserDirs.Pictures, nil
	case roleVideos:
		if xdg.UserDirs.Videos == "" {
			return "", newError(ErrCodeVideosDir, "", nil)
		}
		return xdg.UserDirs.Videos, nil
	case roleDownloads:
		if xdg.UserDirs.Download == "" {
			return "", newError(ErrCodeDownloadsDir, "", nil)
		}
		return xdg.UserDirs.Download, nil
	case roleHome:
		if xdg.Home == "" {
			return "", newError(ErrCodeUserDirs, "", nil)
		}
		return xdg.Home, nil
	case roleAppConfig:
		if !f.id.valid() {
			return "", newError(ErrCodeProjectID, "", nil)
		}
		return filepath.Join(xdg.ConfigHome, f.id.Application), nil
	case roleAppData:
		if !f.id.valid() {
			return "", newError(ErrCodeProjectID, "", nil)
		}
		return filepath.Join(xdg.DataHome, f.id.Application), nil
	default:
		return "", newError(ErrCodeUserDirs, "", nil)
	}
}

// Path возвращает путь директории роли. Пустая строка при недоступной роли.
func (f Folder) Path() string {
	path, err := f.resolve("")
	if err != nil {
		return ""
	}
	return path
}

// Name возвращает имя директории роли. Пустая строка при недоступной роли.
func (f Folder) Name() string {
	path := f.Path()
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

// Exists сообщает, существует ли директория роли на диске.
func (f Folder) Exists() bool {
	path := f.Path()
	return path != "" && pathExists(path)
}
