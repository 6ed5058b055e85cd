package config

import (
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
)

// LoggingConfig содержит настройки для логирования.
//
// TODO: Dual source of truth — LoggingConfig здесь и logging.Config
// в internal/pkg/logging/config.go дублируют поля. При добавлении новых опций
// нужно менять оба места и синхронизировать defaults.
type LoggingConfig struct {
	// Level - уровень логирования (debug, info, warn, error)
	Level string `yaml:"level" env:"DF_LOG_LEVEL" env-default:"info"`

	// Format - формат логов (json, text)
	Format string `yaml:"format" env:"DF_LOG_FORMAT" env-default:"text"`

	// Output - вывод логов (stderr, file)
	Output string `yaml:"output" env:"DF_LOG_OUTPUT" env-default:"stderr"`

	// FilePath - путь к файлу логов (если output=file)
	FilePath string `yaml:"filePath" env:"DF_LOG_FILE_PATH"`

	// MaxSize - максимальный размер файла лога в MB
	MaxSize int `yaml:"maxSize" env:"DF_LOG_MAX_SIZE" env-default:"100"`

	// MaxBackups - максимальное количество backup файлов
	MaxBackups int `yaml:"maxBackups" env:"DF_LOG_MAX_BACKUPS" env-default:"3"`

	// MaxAge - максимальный возраст backup файлов в днях
	MaxAge int `yaml:"maxAge" env:"DF_LOG_MAX_AGE" env-default:"7"`

	// Compress - сжимать ли backup файлы
	Compress bool `yaml:"compress" env:"DF_LOG_COMPRESS" env-default:"true"`
}

// getDefaultLoggingConfig возвращает конфигурацию логирования по умолчанию.
// ВАЖНО: значения ДОЛЖНЫ совпадать с константами logging.DefaultXxx из
// internal/pkg/logging/config.go — единственный источник истины для defaults.
func getDefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:      "info",                  // logging.DefaultLevel
		Format:     "text",                  // logging.DefaultFormat
		Output:     "stderr",                // logging.DefaultOutput
		FilePath:   "/var/log/docforge.log", // logging.DefaultFilePath
		MaxSize:    100,                     // logging.DefaultMaxSize
		MaxBackups: 3,                       // logging.DefaultMaxBackups
		MaxAge:     7,                       // logging.DefaultMaxAge
		Compress:   true,                    // logging.DefaultCompress
	}
}

// loadLoggingConfig загружает конфигурацию логирования из AppConfig,
// переменных окружения или устанавливает значения по умолчанию.
// Переменные окружения DF_LOG_* переопределяют значения из AppConfig.
func loadLoggingConfig(l *slog.Logger, cfg *Config) (*LoggingConfig, error) {
	if cfg.AppConfig != nil && (cfg.AppConfig.Logging != LoggingConfig{}) {
		loggingConfig := &cfg.AppConfig.Logging
		if err := cleanenv.ReadEnv(loggingConfig); err != nil {
			l.Warn("Ошибка загрузки Logging конфигурации из переменных окружения",
				slog.String("error", err.Error()),
			)
		}
		l.Info("Logging конфигурация загружена из AppConfig",
			slog.String("level", loggingConfig.Level),
			slog.String("format", loggingConfig.Format),
		)
		return loggingConfig, nil
	}

	loggingConfig := getDefaultLoggingConfig()

	if err := cleanenv.ReadEnv(loggingConfig); err != nil {
		l.Warn("Ошибка загрузки Logging конфигурации из переменных окружения",
			slog.String("error", err.Error()),
		)
	}

	l.Debug("Logging конфигурация: используются значения по умолчанию",
		slog.String("level", loggingConfig.Level),
		slog.String("format", loggingConfig.Format),
	)

	return loggingConfig, nil
}
