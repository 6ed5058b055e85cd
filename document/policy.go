package document

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CreatePolicy определяет правило создания файла при конструировании Document.
//
// CreateNever: файл не создаётся ни при каких условиях. Если файла нет —
// конструирование завершается ошибкой FILE.NOT_FOUND.
//
// CreateIfAbsent: файл создаётся только если отсутствует. Родительские
// директории создаются рекурсивно. Существующий файл не изменяется.
//
// CreateAutoRename: всегда создаётся НОВЫЙ файл. Если имя занято —
// к stem добавляется счётчик "(1)", "(2)", ... (перед расширением)
// до первого свободного имени.
type CreatePolicy int

const (
	// CreateNever — не создавать файл (политика по умолчанию).
	CreateNever CreatePolicy = iota
	// CreateIfAbsent — создать файл если отсутствует.
	CreateIfAbsent
	// CreateAutoRename — создать новый файл, подбирая свободное имя.
	CreateAutoRename
)

// Строковые представления политик. Используются в YAML-манифестах
// batch-команды и в JSON-выводе.
const (
	policyNever      = "never"
	policyIfAbsent   = "if-absent"
	policyAutoRename = "auto-rename"
)

// String возвращает строковое представление политики.
func (p CreatePolicy) String() string {
	switch p {
	case CreateIfAbsent:
		return policyIfAbsent
	case CreateAutoRename:
		return policyAutoRename
	default:
		return policyNever
	}
}

// ParsePolicy разбирает строковое представление политики (case-insensitive).
// Пустая строка трактуется как CreateNever (значение по умолчанию).
func ParsePolicy(s string) (CreatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case policyNever, "":
		return CreateNever, nil
	case policyIfAbsent:
		return CreateIfAbsent, nil
	case policyAutoRename:
		return CreateAutoRename, nil
	default:
		return CreateNever, fmt.Errorf("document: неизвестная политика создания %q", s)
	}
}

// MarshalJSON сериализует политику как строку.
func (p CreatePolicy) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON десериализует политику из строки.
func (p *CreatePolicy) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// UnmarshalYAML десериализует политику из YAML-строки.
// Используется batch-манифестами.
func (p *CreatePolicy) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
