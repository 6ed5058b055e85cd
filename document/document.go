// Package document предоставляет слой разрешения путей и безопасного
// к коллизиям создания файлов: логическая локация (well-known директория ОС
// плюс поддиректории) и желаемое имя детерминированно разрешаются
// в абсолютный путь, файл опционально создаётся согласно объявленной
// политике, а коллизии имён разрешаются инкрементом счётчика дубликатов
// "(1)", "(2)", ... до первого свободного имени.
//
// Document — это НЕ сам файл, а его in-memory идентичность
// (алиас, путь, политика создания). Конструирование Document создаёт
// файл только если этого требует политика.
//
// Конструкторы: At (от роли-локации) и AtPath (от явного пути).
// Для пакетной работы с несколькими файлами в рамках одной логической
// операции используйте With.
package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/browser"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Document представляет файл: неизменяемая идентичность из алиаса,
// разрешённого абсолютного пути и политики создания, зафиксированной
// при конструировании.
//
// Сырые файловые дескрипторы открываются заново для каждой логической
// операции (Append/ReplaceWith/Content/Lines) и не удерживаются между
// вызовами — явного Close у Document нет.
type Document struct {
	// alias — имя Document в Session, по которому он извлекается.
	alias string
	// path — разрешённый путь файла.
	path string
	// policy — политика создания, применённая при конструировании.
	policy CreatePolicy
}

// At конструирует Document в локации location с именем filename
// согласно политике create.
//
// filename используется как алиас по умолчанию; изменить его можно
// через Result.WithAlias до вставки в Session.
//
// Если роль локации не разрешается, файл не существует (CreateNever)
// или политику невозможно выполнить — Result несёт ошибку.
func At(location Folder, filename string, create CreatePolicy) *Result {
	path, err := location.resolve(filename)
	if err != nil {
		return &Result{err: err}
	}
	originalName := filepath.Base(path)
	final, err := setup(path, create, false)
	if err != nil {
		return &Result{err: err}
	}
	return &Result{doc: &Document{alias: originalName, path: final, policy: create}}
}

// AtPath конструирует Document по явному пути.
//
// ВНИМАНИЕ: формат путей и конкретное расположение файлов различаются
// между машинами. Предпочитайте At с well-known локациями; AtPath
// уместен когда путь предоставлен внешней библиотекой или пользователем.
func AtPath(path, alias string, create CreatePolicy) *Result {
	final, err := setup(path, create, false)
	if err != nil {
		return &Result{err: err}
	}
	return &Result{doc: &Document{alias: alias, path: final, policy: create}}
}

// Suggest возвращает имя, которое выбрал бы разрешитель коллизий для path:
// если "picture.png" занято — "picture(1).png", если занято и оно —
// "picture(2).png" и т.д. Файловая система не модифицируется.
// Для свободного пути возвращается он сам.
func Suggest(path string) (string, error) {
	return setup(path, CreateAutoRename, true)
}

// Alias возвращает алиас Document.
func (d *Document) Alias() string {
	return d.alias
}

// Policy возвращает политику создания, применённую при конструировании.
func (d *Document) Policy() CreatePolicy {
	return d.policy
}

// Path возвращает разрешённый абсолютный путь файла.
func (d *Document) Path() string {
	return d.path
}

// Name возвращает имя файла с расширением.
func (d *Document) Name() string {
	if d.path == "" {
		return ""
	}
	return filepath.Base(d.path)
}

// Extension возвращает расширение файла без точки.
// Пустая строка если расширения нет.
func (d *Document) Extension() string {
	ext := filepath.Ext(d.path)
	return strings.TrimPrefix(ext, ".")
}

// Exists сообщает, существует ли файл на диске.
func (d *Document) Exists() bool {
	return pathExists(d.path)
}

// String реализует fmt.Stringer: "имя at путь".
func (d *Document) String() string {
	return fmt.Sprintf("%s at %s", d.Name(), d.Path())
}

// File открывает файл в режиме mode и возвращает сырой *os.File.
// Полезно когда другие функции или библиотеки ожидают именно *os.File
// либо нужна операция, не покрытая методами Document.
// Закрытие возвращённого файла — обязанность вызывающего.
//
// Любая ошибка уровня ОС сворачивается в FILE.OPEN_FAILED.
func (d *Document) File(mode Mode) (*os.File, error) {
	f, err := os.OpenFile(d.path, mode.flags(), filePermReadWrite)
	if err != nil {
		return nil, newError(ErrCodeOpenFile, d.path, err)
	}
	return f, nil
}

// Append дописывает content в конец файла.
// Возвращает тот же Document для chaining.
func (d *Document) Append(content []byte) (*Document, error) {
	return d.writeAll(ModeAppend, content)
}

// ReplaceWith замещает содержимое файла на content.
//
// ВНИМАНИЕ: необратимо стирает файл целиком перед записью.
func (d *Document) ReplaceWith(content []byte) (*Document, error) {
	return d.writeAll(ModeReplace, content)
}

// writeAll открывает файл в mode, записывает content полностью и закрывает.
func (d *Document) writeAll(mode Mode, content []byte) (*Document, error) {
	f, err := d.File(mode)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // вторичное закрытие после записи

	if _, err := f.Write(content); err != nil {
		return nil, newError(ErrCodeNotWritable, d.path, err)
	}
	return d, nil
}

// Content возвращает содержимое файла одной строкой.
// Завершается ошибкой FILE.NOT_TEXT, если байты — не валидный UTF-8.
func (d *Document) Content() (string, error) {
	f, err := d.File(ModeRead)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // read-only дескриптор

	data, err := io.ReadAll(f)
	if err != nil {
		return "", newError(ErrCodeOpenFile, d.path, err)
	}
	if !utf8.Valid(data) {
		return "", newError(ErrCodeNotText, d.path, nil)
	}
	return string(data), nil
}

// ContentIn возвращает содержимое файла, декодированное из legacy
// кодировки enc (например, charmap.Windows1251) в UTF-8.
// Для файлов, уже записанных в UTF-8, используйте Content.
func (d *Document) ContentIn(enc encoding.Encoding) (string, error) {
	f, err := d.File(ModeRead)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // read-only дескриптор

	data, err := io.ReadAll(transform.NewReader(f, enc.NewDecoder()))
	if err != nil {
		return "", newError(ErrCodeNotText, d.path, err)
	}
	return string(data), nil
}

// Lines возвращает однопроходный итератор строк файла.
// Итератор конечен и не перезапускаем: чтобы пройти файл повторно,
// вызовите Lines ещё раз. Вызывающий обязан вызвать Close.
func (d *Document) Lines() (*Lines, error) {
	f, err := d.File(ModeRead)
	if err != nil {
		return nil, err
	}
	return newLines(f, d.path), nil
}

// LaunchWithDefaultApp открывает файл приложением по умолчанию —
// эквивалент открытия файла из файлового менеджера.
// Возвращает тот же Document для chaining.
func (d *Document) LaunchWithDefaultApp() (*Document, error) {
	if err := browser.OpenFile(d.path); err != nil {
		return nil, newError(ErrCodeLaunchFile, d.path, err)
	}
	return d, nil
}

// documentJSON — сериализуемое представление Document.
type documentJSON struct {
	Alias  string       `json:"alias"`
	Path   string       `json:"path"`
	Policy CreatePolicy `json:"policy"`
}

// MarshalJSON сериализует идентичность Document (алиас, путь, политику).
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(documentJSON{Alias: d.alias, Path: d.path, Policy: d.policy})
}

// UnmarshalJSON восстанавливает идентичность Document из JSON.
// Файл на диске при этом не проверяется и не создаётся.
func (d *Document) UnmarshalJSON(data []byte) error {
	var dj documentJSON
	if err := json.Unmarshal(data, &dj); err != nil {
		return err
	}
	d.alias = dj.Alias
	d.path = dj.Path
	d.policy = dj.Policy
	return nil
}

// clone возвращает независимую копию Document.
func (d *Document) clone() *Document {
	c := *d
	return &c
}
