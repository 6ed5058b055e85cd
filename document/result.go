package document

import "errors"

// Result — исход конструирования Document: либо готовый Document,
// либо ошибка. Fluent-методы (WithAlias, SuggestRename) работают
// поверх Result, поэтому цепочку можно строить не разворачивая ошибку:
//
//	res := document.At(document.Downloads(), "report.txt", document.CreateIfAbsent).
//	    WithAlias("report")
//	doc, err := res.Document()
type Result struct {
	doc *Document
	err error
}

// Document возвращает сконструированный Document или ошибку конструирования.
func (r *Result) Document() (*Document, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.doc, nil
}

// Err возвращает ошибку конструирования (nil при успехе).
func (r *Result) Err() error {
	return r.err
}

// WithAlias задаёт алиас Document, если конструирование прошло успешно.
// Алиас используется для извлечения Document из Session — не присваивайте
// один алиас нескольким Document. Алиас SkipAlias ("_") исключает
// Document из Session при вставке.
//
// На Result с ошибкой вызов не имеет эффекта — ошибка сохраняется.
func (r *Result) WithAlias(alias string) *Result {
	if r.err == nil {
		r.doc.alias = alias
	}
	return r
}

// SuggestRename предлагает переименование, если путь Document уже занят:
// для "picture.png" вернёт "picture(1).png", для занятого "picture(1).png" —
// "picture(2).png" и т.д. Разрешение выполняется в dry-run режиме —
// файловая система не модифицируется. Для свободного пути возвращается
// он сам.
//
// Для Result с ошибкой: если конструирование упало именно с FILE.NOT_FOUND
// (CreateNever против отсутствующего файла) — возвращается исходный путь
// без изменений: коллизии там быть не может. Любая другая ошибка даёт
// пустую строку.
func (r *Result) SuggestRename() string {
	if r.err != nil {
		var docErr *Error
		if errors.As(r.err, &docErr) && docErr.Code == ErrCodeFileNotFound {
			return docErr.Path
		}
		return ""
	}
	suggestion, err := setup(r.doc.path, CreateAutoRename, true)
	if err != nil {
		return ""
	}
	return suggestion
}

// Path возвращает путь Document. Пустая строка при ошибке конструирования.
func (r *Result) Path() string {
	if r.err != nil {
		return ""
	}
	return r.doc.Path()
}

// Name возвращает имя Document. Пустая строка при ошибке конструирования.
func (r *Result) Name() string {
	if r.err != nil {
		return ""
	}
	return r.doc.Name()
}

// Exists сообщает, существует ли файл Document.
// false при ошибке конструирования.
func (r *Result) Exists() bool {
	if r.err != nil {
		return false
	}
	return r.doc.Exists()
}
