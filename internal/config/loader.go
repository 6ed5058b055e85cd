package config

import (
	"log/slog"
	"os"
	"path"

	"github.com/Kargones/docforge/internal/constants"
	"github.com/Kargones/docforge/internal/pkg/apperrors"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// MustLoad загружает конфигурацию приложения из переменных окружения
// и опционального файла app.yaml (путь в DF_CONFIG).
// Возвращает:
//   - *Config: указатель на загруженную конфигурацию приложения
//   - error: ошибка загрузки конфигурации или nil при успехе
func MustLoad() (*Config, error) {
	var cfg Config
	var err error

	// Читаем переменные окружения в структуру Config
	if err = cleanenv.ReadEnv(&cfg); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
			"не удалось прочитать переменные окружения в Config", err)
	}

	// Инициализируем bootstrap логгер
	l := getSlog(cfg.LogLevel)
	cfg.Logger = l

	// Загрузка конфигурации приложения (app.yaml опционален)
	if cfg.ConfigPath != "" {
		if cfg.AppConfig, err = loadAppConfig(cfg.ConfigPath); err != nil {
			l.Warn("ошибка загрузки конфигурации приложения", slog.String("error", err.Error()))
			cfg.AppConfig = nil
		}
	}

	// Загрузка конфигурации логирования
	if cfg.LoggingConfig, err = loadLoggingConfig(l, &cfg); err != nil {
		l.Warn("ошибка загрузки конфигурации логирования", slog.String("error", err.Error()))
		cfg.LoggingConfig = getDefaultLoggingConfig()
	}

	// Загрузка конфигурации метрик
	if cfg.MetricsConfig, err = loadMetricsConfig(l, &cfg); err != nil {
		l.Warn("ошибка загрузки конфигурации метрик", slog.String("error", err.Error()))
		cfg.MetricsConfig = getDefaultMetricsConfig()
	}
	// Fail-fast валидация: обнаруживаем невалидную конфигурацию при загрузке,
	// а не при первом использовании Collector в runtime.
	if cfg.MetricsConfig != nil && cfg.MetricsConfig.Enabled {
		if valErr := validateMetricsConfig(cfg.MetricsConfig); valErr != nil {
			l.Warn("невалидная конфигурация метрик, метрики отключены",
				slog.String("error", valErr.Error()),
				slog.String("reason", "validation_failed"),
			)
			cfg.MetricsConfig.Enabled = false
		}
	}

	// Загрузка конфигурации трейсинга
	if cfg.TracingConfig, err = loadTracingConfig(l, &cfg); err != nil {
		l.Warn("ошибка загрузки конфигурации трейсинга", slog.String("error", err.Error()))
		cfg.TracingConfig = getDefaultTracingConfig()
	}
	// Fail-fast валидация: обнаруживаем невалидную конфигурацию при загрузке.
	if cfg.TracingConfig != nil && cfg.TracingConfig.Enabled {
		if valErr := validateTracingConfig(cfg.TracingConfig); valErr != nil {
			l.Warn("невалидная конфигурация трейсинга, трейсинг отключён",
				slog.String("error", valErr.Error()),
				slog.String("reason", "validation_failed"),
			)
			cfg.TracingConfig.Enabled = false
		}
	}

	return &cfg, nil
}

// loadAppConfig загружает конфигурацию приложения из app.yaml.
func loadAppConfig(configPath string) (*AppConfig, error) {
	data, err := os.ReadFile(configPath) // #nosec G304 -- путь задаётся оператором через DF_CONFIG
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad, "ошибка чтения app.yaml", err)
	}

	var appConfig AppConfig
	if err = yaml.Unmarshal(data, &appConfig); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigParse, "ошибка парсинга app.yaml", err)
	}

	return &appConfig, nil
}

// getSlog создаёт bootstrap логгер для процесса загрузки конфигурации.
// Пишет в stderr — stdout зарезервирован под результаты команд.
// После загрузки LoggingConfig основной логгер создаётся через logging.NewLogger.
func getSlog(logLevel string) *slog.Logger {
	var programLevel = new(slog.LevelVar)

	switch logLevel {
	default:
		programLevel.Set(slog.LevelInfo)
	case "debug":
		programLevel.Set(slog.LevelDebug)
	case "info":
		programLevel.Set(slog.LevelInfo)
	case "warn":
		programLevel.Set(slog.LevelWarn)
	case "error":
		programLevel.Set(slog.LevelError)
	}

	l := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     programLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				s := a.Value.Any().(*slog.Source)
				s.File = path.Base(s.File)
			}
			return a
		},
	}))
	l = l.With(slog.Group("App info",
		slog.String("version", constants.Version),
	))
	return l
}
