package tracing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/docforge/internal/pkg/logging"

	"go.opentelemetry.io/otel/trace"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	shutdown, err := NewTracerProvider(Config{Enabled: false}, logging.NewNopLogger())
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NoError(t, shutdown(context.Background()))
}

func TestNewTracerProvider_InvalidConfig(t *testing.T) {
	cfg := Config{
		Enabled:      true,
		Endpoint:     "",
		ServiceName:  "docforge",
		Timeout:      5 * time.Second,
		SamplingRate: 1.0,
	}

	shutdown, err := NewTracerProvider(cfg, logging.NewNopLogger())
	assert.ErrorIs(t, err, ErrTracingEndpointRequired)
	assert.Nil(t, shutdown)
}

func TestContextWithOTelTraceID(t *testing.T) {
	t.Run("валидный trace ID попадает в span context", func(t *testing.T) {
		traceID := "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"

		ctx := ContextWithOTelTraceID(context.Background(), traceID)

		sc := trace.SpanContextFromContext(ctx)
		assert.True(t, sc.IsValid() || sc.TraceID().IsValid())
		assert.Equal(t, traceID, sc.TraceID().String())
		assert.True(t, sc.IsRemote())
		assert.True(t, sc.IsSampled())
	})

	t.Run("невалидный trace ID оставляет контекст без изменений", func(t *testing.T) {
		ctx := context.Background()
		result := ContextWithOTelTraceID(ctx, "not-a-hex-id")

		sc := trace.SpanContextFromContext(result)
		assert.False(t, sc.TraceID().IsValid())
	})
}

func TestNewSampler(t *testing.T) {
	// ParentBased описание содержит вложенные sampler-ы
	s := newSampler(0.5)
	assert.Contains(t, s.Description(), "ParentBased")
}
