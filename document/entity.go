package document

import (
	"os"
	"path/filepath"
)

// FileSystemEntity — общие возможности сущностей файловой системы:
// Document, Folder, Result и произвольных путей (PathEntity).
//
// Все методы деградируют до пустой строки / false вместо ошибки,
// если значение получить невозможно. Интерфейс пригоден для
// полиморфного использования:
//
//	entities := []document.FileSystemEntity{doc, folder, document.PathEntity("/tmp/x")}
//	for _, e := range entities {
//	    logger.Info("сущность", "path", e.Path(), "exists", e.Exists())
//	}
type FileSystemEntity interface {
	// Path возвращает полный путь сущности.
	// ВНИМАНИЕ: формат путей различается между системами.
	Path() string

	// Name возвращает имя сущности (с расширением, если применимо).
	Name() string

	// Exists сообщает, существует ли сущность на диске.
	Exists() bool
}

// PathEntity оборачивает произвольный путь в FileSystemEntity.
type PathEntity string

// Path возвращает путь как есть.
func (p PathEntity) Path() string {
	return string(p)
}

// Name возвращает последний компонент пути.
func (p PathEntity) Name() string {
	if p == "" {
		return ""
	}
	return filepath.Base(string(p))
}

// Exists сообщает, существует ли путь на диске.
func (p PathEntity) Exists() bool {
	return pathExists(string(p))
}

// pathExists проверяет существование пути.
// Любая ошибка stat трактуется как "не существует".
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
