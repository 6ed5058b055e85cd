package document

import (
	"bufio"
	"fmt"
	"os"
	"unicode/utf8"
)

// Lines — однопроходный итератор строк файла.
// Конечен и не перезапускаем: после исчерпания нужно открыть файл заново
// через Document.Lines.
//
//	lines, err := doc.Lines()
//	if err != nil { ... }
//	defer lines.Close()
//	for lines.Next() {
//	    fmt.Println(lines.Text())
//	}
//	if err := lines.Err(); err != nil { ... }
type Lines struct {
	f       *os.File
	scanner *bufio.Scanner
	path    string
	current string
	err     error
}

// newLines создаёт итератор поверх открытого файла.
// Владение файлом переходит к итератору — его закрывает Close.
func newLines(f *os.File, path string) *Lines {
	return &Lines{f: f, scanner: bufio.NewScanner(f), path: path}
}

// Next продвигает итератор к следующей строке.
// Возвращает false при конце файла или первой ошибке — после этого
// проверьте Err.
func (l *Lines) Next() bool {
	if l.err != nil {
		return false
	}
	if !l.scanner.Scan() {
		l.err = l.scanner.Err()
		return false
	}
	line := l.scanner.Bytes()
	if !utf8.Valid(line) {
		l.err = newError(ErrCodeNotText, l.path, nil)
		return false
	}
	l.current = string(line)
	return true
}

// Text возвращает текущую строку (без завершающего перевода строки).
func (l *Lines) Text() string {
	return l.current
}

// Err возвращает первую ошибку, встреченную итератором.
// nil после штатного исчерпания файла.
func (l *Lines) Err() error {
	return l.err
}

// Close закрывает подлежащий файл. Безопасен при повторном вызове.
func (l *Lines) Close() error {
	if l.f == nil {
		return nil
	}
	f := l.f
	l.f = nil
	return f.Close()
}

// Print печатает оставшиеся строки файла в stdout построчно и закрывает
// итератор. Возвращает ошибку чтения, если строка не может быть прочитана.
func (l *Lines) Print() error {
	defer l.Close() //nolint:errcheck // итератор дочитан до конца

	for l.Next() {
		fmt.Println(l.Text())
	}
	return l.Err()
}
