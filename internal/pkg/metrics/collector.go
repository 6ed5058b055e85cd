// Package metrics предоставляет интерфейсы и реализации для сбора и отправки метрик
// в Prometheus Pushgateway.
//
// Пакет следует паттернам проекта docforge:
//   - Interface Segregation: Collector interface для абстракции
//   - Factory pattern: NewCollector выбирает реализацию на основе конфигурации
//   - Graceful degradation: NopCollector при отключённых метриках
package metrics

import (
	"context"
	"time"
)

// Collector определяет интерфейс для сбора метрик.
// Реализации: PrometheusCollector (активный) и NopCollector (no-op).
type Collector interface {
	// RecordCommandStart записывает начало выполнения команды.
	// Для CLI не требуется отслеживать "in-flight" — метод может быть no-op.
	RecordCommandStart(command string)

	// RecordCommandEnd записывает завершение команды с результатом.
	// duration — время выполнения команды.
	// success — успешно ли завершилась команда.
	RecordCommandEnd(command string, duration time.Duration, success bool)

	// RecordFileCreated записывает факт создания файла с указанной политикой.
	RecordFileCreated(policy string)

	// RecordCollision записывает факт коллизии имени, разрешённой через счётчик.
	RecordCollision()

	// Push отправляет метрики в Pushgateway.
	// Возвращает nil даже при ошибке — ошибки логируются внутри реализации:
	// недоступность Pushgateway не должна ломать основную операцию.
	Push(ctx context.Context) error
}
