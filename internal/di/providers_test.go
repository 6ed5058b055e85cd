package di

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/docforge/internal/config"
	"github.com/Kargones/docforge/internal/constants"
	"github.com/Kargones/docforge/internal/pkg/metrics"
	"github.com/Kargones/docforge/internal/pkg/output"
)

func TestProvideLogger(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "пустой config", cfg: &config.Config{}},
		{
			name: "config с настройками логирования",
			cfg: &config.Config{
				LoggingConfig: &config.LoggingConfig{
					Level:  "debug",
					Format: "json",
				},
			},
		},
		{
			name: "нулевые размеры ротации игнорируются",
			cfg: &config.Config{
				LoggingConfig: &config.LoggingConfig{
					MaxSize:    0,
					MaxBackups: 0,
					MaxAge:     0,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := ProvideLogger(tt.cfg)
			require.NotNil(t, logger)
			assert.NotPanics(t, func() {
				logger.Info("тест", "key", "value")
			})
		})
	}
}

func TestProvideOutputWriter(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   any
	}{
		{name: "json", format: "json", want: &output.JSONWriter{}},
		{name: "text", format: "text", want: &output.TextWriter{}},
		{name: "пустой формат — text по умолчанию", format: "", want: &output.TextWriter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(constants.EnvOutputFormat, tt.format)
			writer := ProvideOutputWriter()
			assert.IsType(t, tt.want, writer)
		})
	}
}

func TestProvideTraceID(t *testing.T) {
	id1 := ProvideTraceID()
	id2 := ProvideTraceID()

	assert.Len(t, id1, 32)
	assert.Len(t, id2, 32)
	assert.NotEqual(t, id1, id2)
}

func TestProvideMetricsCollector(t *testing.T) {
	logger := ProvideLogger(nil)

	tests := []struct {
		name    string
		cfg     *config.Config
		wantNop bool
	}{
		{name: "nil config", cfg: nil, wantNop: true},
		{name: "без MetricsConfig", cfg: &config.Config{}, wantNop: true},
		{
			name: "метрики отключены",
			cfg: &config.Config{
				MetricsConfig: &config.MetricsConfig{Enabled: false},
			},
			wantNop: true,
		},
		{
			name: "невалидная конфигурация — fallback на Nop",
			cfg: &config.Config{
				MetricsConfig: &config.MetricsConfig{Enabled: true},
			},
			wantNop: true,
		},
		{
			name: "включённые метрики",
			cfg: &config.Config{
				MetricsConfig: &config.MetricsConfig{
					Enabled:        true,
					PushgatewayURL: "http://pushgateway:9091",
					JobName:        "docforge",
					Timeout:        10 * time.Second,
				},
			},
			wantNop: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := ProvideMetricsCollector(tt.cfg, logger)
			require.NotNil(t, collector)
			if tt.wantNop {
				assert.IsType(t, &metrics.NopCollector{}, collector)
			} else {
				assert.IsType(t, &metrics.PrometheusCollector{}, collector)
			}
		})
	}
}

func TestProvideTracerProvider(t *testing.T) {
	logger := ProvideLogger(nil)

	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "без TracingConfig", cfg: &config.Config{}},
		{
			name: "трейсинг отключён",
			cfg: &config.Config{
				TracingConfig: &config.TracingConfig{Enabled: false},
			},
		},
		{
			name: "невалидная конфигурация — fallback на nop",
			cfg: &config.Config{
				TracingConfig: &config.TracingConfig{Enabled: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shutdown := ProvideTracerProvider(tt.cfg, logger)
			require.NotNil(t, shutdown)
			assert.NoError(t, shutdown(context.Background()))
		})
	}
}
