package document

import (
	"log/slog"
	"sort"
)

// SkipAlias — сигнальный алиас "не отслеживать меня": Document с таким
// алиасом конструируется (и файл создаётся согласно политике), но
// в Session не вставляется.
const SkipAlias = "_"

// Session — keyed-коллекция Document, собираемая один раз на пакет
// и передаваемая ровно в одну единицу работы (см. With).
// Ключ — алиас Document; порядок вставки значения не имеет; при
// совпадении алиасов молча побеждает последняя вставка — уникальность
// алиасов лежит на вызывающем.
type Session struct {
	docs map[string]*Document
}

// Get возвращает Document по алиасу.
// Паникует при неизвестном алиасе — это programming error:
// вызывающий обязан знать собственные алиасы. Для осторожного
// доступа используйте Lookup.
func (s Session) Get(alias string) *Document {
	doc, ok := s.docs[alias]
	if !ok {
		panic("document: неизвестный алиас в Session: " + alias)
	}
	return doc
}

// Lookup возвращает Document по алиасу и признак его наличия.
func (s Session) Lookup(alias string) (*Document, bool) {
	doc, ok := s.docs[alias]
	return doc, ok
}

// Len возвращает количество Document в Session.
func (s Session) Len() int {
	return len(s.docs)
}

// Aliases возвращает отсортированный список алиасов Session.
func (s Session) Aliases() []string {
	aliases := make([]string, 0, len(s.docs))
	for alias := range s.docs {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// With собирает Session из исходов конструирования и передаёт её
// в единицу работы fn.
//
// Контракт "всё или ничего": results обходятся по порядку, и первая же
// ошибка конструирования логируется, после чего With возвращается —
// fn не вызывается никогда, частичная Session наружу не отдаётся.
//
// Document с алиасом SkipAlias пропускаются при вставке (их файлы при
// этом уже созданы на диске согласно политике). Остальные клонируются
// в Session — мутации исходных Document на единицу работы не влияют.
//
// Ошибка fn логируется и НЕ пробрасывается дальше: это политика
// "fail loud, stop quiet" convenience-слоя, а не компонуемая
// библиотека обработки ошибок. При l == nil используется slog.Default().
func With(l *slog.Logger, fn func(Session) error, results ...*Result) {
	if l == nil {
		l = slog.Default()
	}

	docs := make(map[string]*Document, len(results))
	for _, res := range results {
		doc, err := res.Document()
		if err != nil {
			l.Error("Ошибка конструирования Document",
				slog.String("error", err.Error()),
			)
			return
		}
		if doc.alias == SkipAlias {
			continue
		}
		docs[doc.alias] = doc.clone()
	}

	if err := fn(Session{docs: docs}); err != nil {
		l.Error("Ошибка выполнения единицы работы",
			slog.String("error", err.Error()),
		)
	}
}
