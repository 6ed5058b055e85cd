package document

import (
	"path/filepath"
	"strconv"
	"strings"
)

// parsedName — результат разбора имени файла на составные части.
// Инвариант: Stem + "(Counter)" (если HasCounter) + Ext точно
// восстанавливают исходное имя.
type parsedName struct {
	// Stem — имя без расширения и без счётчика дубликатов.
	Stem string

	// Counter — счётчик дубликатов из суффикса "(n)".
	Counter int64

	// HasCounter — распознан ли счётчик дубликатов.
	HasCounter bool

	// Ext — расширение файла вместе с ведущей точкой ("" если отсутствует).
	Ext string
}

// parseFilename разбирает имя файла (без компонент директорий) на
// (stem, счётчик дубликатов, расширение).
//
// Расширение — всё от последней точки до конца, включая точку.
// Если точки нет или после последней точки пусто — расширение отсутствует.
//
// Счётчик дубликатов: ищутся ПОСЛЕДНЯЯ "(" и ПОСЛЕДНЯЯ ")" независимо
// друг от друга; если открывающая стоит раньше закрывающей и подстрока
// строго между ними парсится как целое, а "(<counter>)" в канонической
// десятичной записи является истинным суффиксом stem — счётчик распознаётся
// и суффикс отрезается. Во всех остальных случаях (скобки в обратном
// порядке, непарсящееся содержимое, неканоническая запись вроде "(007)")
// счётчик не распознаётся и stem остаётся нетронутым.
//
// Это эвристика, а не формальная грамматика: имена с посторонними скобками
// могут быть разобраны неожиданно. Функция не имеет режима отказа —
// в худшем случае возвращается (полное имя, без счётчика, без расширения).
func parseFilename(name string) parsedName {
	p := parsedName{Stem: name}

	ext := filepath.Ext(name)
	if ext != "" && ext != "." {
		p.Ext = ext
		p.Stem = strings.TrimSuffix(p.Stem, ext)
	}

	open := strings.LastIndex(p.Stem, "(")
	closing := strings.LastIndex(p.Stem, ")")
	if open < 0 || closing < 0 || open >= closing {
		return p
	}

	counter, err := strconv.ParseInt(p.Stem[open+1:closing], 10, 64)
	if err != nil {
		return p
	}

	// Отрезаем только канонический суффикс "(n)": для "photo(007)" парсинг
	// даёт 7, но "(7)" не является суффиксом — счётчик не распознаётся,
	// иначе нарушился бы инвариант восстановления исходного имени.
	suffix := "(" + strconv.FormatInt(counter, 10) + ")"
	if !strings.HasSuffix(p.Stem, suffix) {
		return p
	}

	p.Stem = strings.TrimSuffix(p.Stem, suffix)
	p.Counter = counter
	p.HasCounter = true
	return p
}

// fileName собирает имя файла из stem, счётчика и расширения.
// Расширение опускается если оно пустое или состоит из одной точки.
func fileName(stem string, counter int64, ext string) string {
	name := stem + "(" + strconv.FormatInt(counter, 10) + ")"
	if ext != "" && ext != "." {
		name += ext
	}
	return name
}
