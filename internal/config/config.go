// Package config содержит конфигурацию приложения.
package config

import (
	"log/slog"

	"github.com/Kargones/docforge/internal/pkg/metrics"
)

// AppConfig представляет настройки приложения из файла app.yaml.
// Файл опционален — путь задаётся через DF_CONFIG. Содержит настройки
// логирования, метрик и трейсинга; переменные окружения DF_* имеют приоритет.
type AppConfig struct {
	LogLevel string `yaml:"logLevel"`

	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// Config хранит настройки для работы приложения.
// Параметры команд передаются через переменные окружения DF_*.
type Config struct {
	// Command — имя выполняемой команды. Может быть передано также
	// первым аргументом CLI (аргумент имеет приоритет).
	Command string `env:"DF_COMMAND" env-default:""`

	// OutputFormat — формат вывода результатов: "text" или "json".
	OutputFormat string `env:"DF_OUTPUT_FORMAT" env-default:"text"`

	// Path — явный путь к файлу (для create по абсолютному пути).
	Path string `env:"DF_PATH" env-default:""`

	// Role — роль базовой директории: downloads, documents, app-config, app-data.
	Role string `env:"DF_ROLE" env-default:""`

	// AppID — идентификатор приложения для ролей app-config и app-data.
	AppID string `env:"DF_APP_ID" env-default:""`

	// Subdirs — подкаталоги внутри базовой директории, разделённые запятой.
	// Без env-default: пустое значение должно давать nil, а не [""].
	Subdirs []string `env:"DF_SUBDIRS" env-separator:","`

	// Filename — желаемое имя файла.
	Filename string `env:"DF_FILENAME" env-default:""`

	// Alias — псевдоним документа. Если пуст — используется Filename.
	Alias string `env:"DF_ALIAS" env-default:""`

	// Policy — политика создания: never, if-absent, auto-rename.
	Policy string `env:"DF_POLICY" env-default:"if-absent"`

	// Content — содержимое, записываемое в файл при создании (create).
	Content string `env:"DF_CONTENT" env-default:""`

	// Manifest — путь к YAML-манифесту для команды batch.
	Manifest string `env:"DF_MANIFEST" env-default:""`

	// ConfigPath — путь к опциональному файлу app.yaml.
	ConfigPath string `env:"DF_CONFIG" env-default:""`

	// LogLevel — уровень логирования (debug, info, warn, error).
	LogLevel string `env:"DF_LOG_LEVEL" env-default:""`

	// DryRun — режим плана без выполнения.
	DryRun bool `env:"DF_DRY_RUN" env-default:"false"`

	Logger *slog.Logger

	// Metrics — коллектор доменных метрик. Устанавливается в main после
	// инициализации приложения; nil трактуется хендлерами как NopCollector.
	Metrics metrics.Collector

	// Настройки приложения (из app.yaml), nil если файл не задан.
	AppConfig *AppConfig

	// Logging настройки
	LoggingConfig *LoggingConfig

	// Metrics настройки
	MetricsConfig *MetricsConfig

	// Tracing настройки (OpenTelemetry)
	TracingConfig *TracingConfig
}
