// Package otel wires OpenTelemetry tracing for the landing binaries.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/zarazaex69/zik-landing/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Settings controls trace export.
type Settings struct {
	Endpoint    string  `env:"ZIK_OTEL_ENDPOINT"`
	Enabled     string  `env:"ZIK_OTEL_ENABLED"`
	SampleRatio float64 `env:"ZIK_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// Active reports whether spans should be exported.
func (s Settings) Active() bool {
	if strings.EqualFold(strings.TrimSpace(s.Enabled), "false") {
		return false
	}
	return strings.TrimSpace(s.Endpoint) != ""
}

func (s Settings) sampler() sdktrace.Sampler {
	switch {
	case s.SampleRatio >= 1:
		return sdktrace.AlwaysSample()
	case s.SampleRatio <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(s.SampleRatio))
	}
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var settings Settings
	if err := config.ParseEnv(&settings); err != nil {
		return Settings{}, fmt.Errorf("otel settings: %w", err)
	}
	return settings, nil
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when ZIK_OTEL_ENDPOINT is empty or ZIK_OTEL_ENABLED is
// "false", Setup returns a no-op shutdown function and no global provider
// is registered.
//
// The returned shutdown function flushes pending spans and should be
// deferred by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	settings, err := LoadSettings()
	if err != nil {
		return noop, err
	}
	return SetupWithSettings(ctx, serviceName, settings)
}

// SetupWithSettings is Setup with explicit settings.
func SetupWithSettings(ctx context.Context, serviceName string, settings Settings) (func(context.Context) error, error) {
	if !settings.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(settings.Endpoint)),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(settings.sampler()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func noop(context.Context) error { return nil }
