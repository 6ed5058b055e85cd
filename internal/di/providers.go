package di

import (
	"context"
	"log/slog"
	"os"

	"github.com/Kargones/docforge/internal/config"
	"github.com/Kargones/docforge/internal/constants"
	"github.com/Kargones/docforge/internal/pkg/logging"
	"github.com/Kargones/docforge/internal/pkg/metrics"
	"github.com/Kargones/docforge/internal/pkg/output"
	"github.com/Kargones/docforge/internal/pkg/tracing"
)

// ProvideLogger создаёт Logger на основе LoggingConfig из Config.
// Использует logging.NewLogger() для создания SlogAdapter.
//
// Провайдер извлекает настройки из Config.LoggingConfig:
//   - Level: уровень логирования (debug, info, warn, error)
//   - Format: формат вывода (json, text)
//   - Output: куда выводить логи (stderr, file)
//   - FilePath, MaxSize, MaxBackups, MaxAge, Compress: параметры ротации файлов
//
// Если LoggingConfig == nil или поля пусты, используются значения по умолчанию.
func ProvideLogger(cfg *config.Config) logging.Logger {
	logCfg := logging.DefaultConfig()

	if cfg != nil && cfg.LoggingConfig != nil {
		if cfg.LoggingConfig.Level != "" {
			logCfg.Level = cfg.LoggingConfig.Level
		}
		if cfg.LoggingConfig.Format != "" {
			logCfg.Format = cfg.LoggingConfig.Format
		}
		if cfg.LoggingConfig.Output != "" {
			logCfg.Output = cfg.LoggingConfig.Output
		}
		if cfg.LoggingConfig.FilePath != "" {
			logCfg.FilePath = cfg.LoggingConfig.FilePath
		}
		// Нулевой размер лог-файла не имеет практического смысла
		// для lumberjack — игнорируется в пользу default.
		if cfg.LoggingConfig.MaxSize > 0 {
			logCfg.MaxSize = cfg.LoggingConfig.MaxSize
		}
		if cfg.LoggingConfig.MaxBackups > 0 {
			logCfg.MaxBackups = cfg.LoggingConfig.MaxBackups
		}
		if cfg.LoggingConfig.MaxAge > 0 {
			logCfg.MaxAge = cfg.LoggingConfig.MaxAge
		}
		// Compress передаётся всегда — false может быть задано явно.
		logCfg.Compress = cfg.LoggingConfig.Compress
	}

	return logging.NewLogger(logCfg)
}

// ProvideOutputWriter создаёт OutputWriter на основе DF_OUTPUT_FORMAT.
//
// Не зависит от Config — формат вывода определяется переменной окружения
// для гибкости переключения формата без перезагрузки конфигурации.
func ProvideOutputWriter() output.Writer {
	format := os.Getenv(constants.EnvOutputFormat)
	if format == "" {
		format = output.FormatText
	}
	return output.NewWriter(format)
}

// ProvideTraceID генерирует уникальный trace_id для корреляции логов.
//
// Формат: 32-символьный hex string (16 байт). Генерируется один раз
// при инициализации App и используется для всех логов запуска команды.
func ProvideTraceID() string {
	return tracing.GenerateTraceID()
}

// ProvideMetricsCollector создаёт Collector на основе MetricsConfig из Config.
// Если MetricsConfig == nil или Enabled=false, возвращает NopCollector.
// При ошибке создания Collector возвращает NopCollector и логирует ошибку.
func ProvideMetricsCollector(cfg *config.Config, logger logging.Logger) metrics.Collector {
	if cfg == nil || cfg.MetricsConfig == nil {
		return metrics.NewNopCollector()
	}

	metricsCfg := metrics.Config{
		Enabled:        cfg.MetricsConfig.Enabled,
		PushgatewayURL: cfg.MetricsConfig.PushgatewayURL,
		JobName:        cfg.MetricsConfig.JobName,
		Timeout:        cfg.MetricsConfig.Timeout,
		InstanceLabel:  cfg.MetricsConfig.InstanceLabel,
	}

	collector, err := metrics.NewCollector(metricsCfg, logger)
	if err != nil {
		logger.Error("ошибка создания MetricsCollector, используется NopCollector",
			slog.String("error", err.Error()),
		)
		return metrics.NewNopCollector()
	}

	return collector
}

// ProvideTracerProvider создаёт и инициализирует OTel TracerProvider.
// Возвращает shutdown function для graceful завершения.
// Если TracingConfig == nil или Enabled=false, возвращает nop shutdown.
// При ошибке создания TracerProvider возвращает nop shutdown и логирует ошибку.
func ProvideTracerProvider(cfg *config.Config, logger logging.Logger) func(context.Context) error {
	if cfg == nil || cfg.TracingConfig == nil {
		return tracing.NewNopTracerProvider()
	}

	tracingCfg := tracing.Config{
		Enabled:      cfg.TracingConfig.Enabled,
		Endpoint:     cfg.TracingConfig.Endpoint,
		ServiceName:  cfg.TracingConfig.ServiceName,
		Version:      constants.Version,
		Environment:  cfg.TracingConfig.Environment,
		Insecure:     cfg.TracingConfig.Insecure,
		Timeout:      cfg.TracingConfig.Timeout,
		SamplingRate: cfg.TracingConfig.SamplingRate,
	}

	shutdown, err := tracing.NewTracerProvider(tracingCfg, logger)
	if err != nil {
		logger.Error("ошибка инициализации tracing, используется nop provider",
			slog.String("error", err.Error()),
		)
		return tracing.NewNopTracerProvider()
	}

	return shutdown
}
