package command

import (
	"regexp"
	"sort"
	"sync"
)

var (
	// registry хранит зарегистрированные обработчики команд.
	// Ключ — имя команды, значение — обработчик.
	registry = make(map[string]Handler)
	// mu обеспечивает потокобезопасный доступ к registry.
	mu sync.RWMutex
	// commandNamePattern валидирует формат имени команды (kebab-case).
	// Допустимы: буквы a-z, цифры 0-9, дефис. Должно начинаться с буквы.
	// Запрещён завершающий дефис и двойные дефисы (strict kebab-case).
	commandNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
)

// Register регистрирует обработчик команды в глобальном реестре.
// Вызывается из RegisterCmd() функций пакетов-обработчиков.
//
// Паникует если:
//   - h == nil (programming error)
//   - h.Name() == "" (programming error)
//   - h.Name() не соответствует формату kebab-case (programming error)
//   - команда с таким именем уже зарегистрирована (programming error)
//
// Пример использования:
//
//	func RegisterCmd() {
//	    command.Register(&MyHandler{})
//	}
func Register(h Handler) {
	if h == nil {
		panic("command: nil handler")
	}
	name := h.Name()
	if name == "" {
		panic("command: empty handler name")
	}
	if !commandNamePattern.MatchString(name) {
		panic("command: invalid handler name format (must be kebab-case): " + name)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[name]; exists {
		panic("command: duplicate handler registration for " + name)
	}
	registry[name] = h
}

// Get возвращает обработчик команды по имени.
// Возвращает (nil, false) если команда не зарегистрирована.
func Get(name string) (Handler, bool) {
	mu.RLock()
	defer mu.RUnlock()
	h, ok := registry[name]
	return h, ok
}

// All возвращает копию всех зарегистрированных обработчиков.
// Возвращает новую map, изменения которой не влияют на registry.
func All() map[string]Handler {
	mu.RLock()
	defer mu.RUnlock()
	result := make(map[string]Handler, len(registry))
	for k, v := range registry {
		result[k] = v
	}
	return result
}

// Names возвращает отсортированный список имён всех зарегистрированных команд.
// Результат всегда отсортирован по алфавиту для детерминированного вывода.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// clearRegistry очищает реестр. Используется только в тестах
// для обеспечения изоляции между тестами.
func clearRegistry() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Handler)
}
