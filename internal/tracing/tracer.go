// Package tracing wires OpenTelemetry into registry lookups: provider
// construction, a JSONL file exporter for local debugging, attribute names,
// and request-id propagation through context.
package tracing

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/leifetch/internal/log"
)

// Exporter names accepted by Config.Exporter.
const (
	ExporterNone   = "none"
	ExporterFile   = "file"
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

const (
	// DefaultServiceName identifies leifetch in exported traces.
	DefaultServiceName  = "leifetch"
	defaultOTLPEndpoint = "localhost:4317"
)

// Config describes how lookup spans are sampled and where they go.
type Config struct {
	Enabled      bool
	Exporter     string  // none, file, stdout or otlp
	FilePath     string  // file exporter only
	OTLPEndpoint string  // otlp exporter only, host:port
	SampleRate   float64 // 0 <= rate <= 1
	ServiceName  string
}

// DefaultConfig returns tracing disabled with the file exporter preselected.
func DefaultConfig() Config {
	return Config{
		Exporter:     ExporterFile,
		OTLPEndpoint: defaultOTLPEndpoint,
		SampleRate:   1.0,
		ServiceName:  DefaultServiceName,
	}
}

// normalized fills zero values that have a usable default and clamps the
// sample rate to [0, 1]. A zero rate samples nothing.
func (c Config) normalized() Config {
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	c.SampleRate = min(max(c.SampleRate, 0), 1)
	if c.OTLPEndpoint == "" {
		c.OTLPEndpoint = defaultOTLPEndpoint
	}
	return c
}

// exporterFactory builds a span exporter. A nil exporter with a nil error
// means spans are recorded but never exported.
type exporterFactory func(Config) (sdktrace.SpanExporter, error)

var exporterFactories = map[string]exporterFactory{
	"":             discardSpans,
	ExporterNone:   discardSpans,
	ExporterFile:   fileSpans,
	ExporterStdout: stdoutSpans,
	ExporterOTLP:   otlpSpans,
}

func discardSpans(Config) (sdktrace.SpanExporter, error) { return nil, nil }

func fileSpans(c Config) (sdktrace.SpanExporter, error) {
	if c.FilePath == "" {
		return nil, errors.New("file_path required for file exporter")
	}
	return NewFileExporter(c.FilePath)
}

func stdoutSpans(Config) (sdktrace.SpanExporter, error) {
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

func otlpSpans(c Config) (sdktrace.SpanExporter, error) {
	return otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(c.OTLPEndpoint),
		otlptracegrpc.WithInsecure(),
	)
}

// Provider owns the SDK tracer provider, or a no-op tracer when disabled.
type Provider struct {
	sdk    *sdktrace.TracerProvider
	tracer trace.Tracer
}

// NewProvider builds the provider described by cfg and installs it as the
// global otel provider. A disabled cfg yields a no-op Provider.
func NewProvider(cfg Config) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(DefaultServiceName)}, nil
	}
	cfg = cfg.normalized()

	factory, ok := exporterFactories[cfg.Exporter]
	if !ok {
		return nil, fmt.Errorf("unsupported exporter type: %s", cfg.Exporter)
	}
	exporter, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("create %s exporter: %w", cfg.Exporter, err)
	}

	opts := []sdktrace.TracerProviderOption{
		// Schemaless avoids schema URL conflicts with resource.Default().
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRate))),
	}
	if exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	sdk := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(sdk)
	log.Info(log.CatTrace, "tracing enabled", "exporter", cfg.Exporter, "sample_rate", cfg.SampleRate)

	return &Provider{sdk: sdk, tracer: sdk.Tracer(cfg.ServiceName)}, nil
}

// Tracer returns the tracer lookups start spans on.
func (p *Provider) Tracer() trace.Tracer { return p.tracer }

// Enabled reports whether spans are sampled and exported.
func (p *Provider) Enabled() bool { return p.sdk != nil }

// Shutdown flushes pending spans. It is a no-op when disabled.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
