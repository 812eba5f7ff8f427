// Package api configures and exposes the HTTP server, routes, metrics, docs
// and middlewares of the triangle classifier service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"time"
	"triangle/internal/api/handler/v1handler"
	"triangle/internal/classifier"
	"triangle/internal/config"
	"triangle/pkg/controller"
	"triangle/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// V1Spec returns the embedded OpenAPI document.
func V1Spec() []byte {
	return v1Spec
}

// Options holds configuration for the HTTP server. Zero durations fall back
// to net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the handling of a single request via http.TimeoutHandler. Zero disables it.
	RequestTimeout time.Duration
	// MaxHeaderBytes limits the size of request headers.
	MaxHeaderBytes int
	// MaxBodyBytes limits the size of request bodies.
	MaxBodyBytes int64
	// MaxBatchSize limits the number of cases of a batch request.
	MaxBatchSize int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigin is the CORS origin allowed to call the API.
	AllowedOrigin string
	// EnablePprof mounts profiling handlers under /debug/pprof/.
	EnablePprof bool
}

// NewOptions maps the HTTP section of the application config to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MaxBatchSize:      cfg.HTTP.MaxBatchSize,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigin:     cfg.HTTP.AllowedOrigin,
		EnablePprof:       cfg.HTTP.EnablePprof,
	}
}

type Deps struct {
	Classifier classifier.Classifier
}

// NewServer wires up and returns a configured *http.Server. It sets up:
//   - Prometheus metrics at MetricsPath, fed by an OpenTelemetry meter provider
//   - the embedded OpenAPI v1 document and its Swagger UI
//   - the v1 routes
//   - pprof endpoints when enabled
//
// Handlers are wrapped with recovery, CORS, logging and a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	// prometheus
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	mux.Handle("GET "+metricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	recorder, err := metrics.NewRecorder(mp.Meter(metrics.MeterName))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics recorder: %w", err)
	}

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Triangle Classifier",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	v1handler.New(v1handler.Deps{
		Classifier:   deps.Classifier,
		Metrics:      recorder,
		MaxBatchSize: opts.MaxBatchSize,
		MaxBodyBytes: opts.MaxBodyBytes,
	}).Register(mux)

	if opts.EnablePprof {
		mux.Handle(controller.PprofPrefix, controller.Pprof())
	}

	var handler http.Handler = mux
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"INTERNAL","message":"request timed out"}`)
	}
	handler = controller.WithRecover(handler)
	handler = controller.WithCORS(opts.AllowedOrigin, handler)
	handler = controller.WithLogger(handler)

	server := &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}
	server.RegisterOnShutdown(func() {
		_ = mp.Shutdown(context.Background())
	})

	return server, nil
}
