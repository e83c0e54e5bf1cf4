package observability

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// setupPrometheus registers an exporter on a registry owned by this manager
// and, when a port is configured, starts a dedicated metrics server
func (m *Manager) setupPrometheus() (sdkmetric.Reader, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, err
	}

	m.registry = registry
	m.metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: promLogger{m},
	})

	if m.config.Prometheus.Port != "" {
		m.startMetricsServer()
	}
	return exporter, nil
}

// MetricsHandler serves the Prometheus endpoint. It is nil when the
// exporter is disabled or already served on its own port.
func (m *Manager) MetricsHandler() http.Handler {
	if !m.Enabled() || m.metricsServer != nil {
		return nil
	}
	return m.metricsHandler
}

// MetricsEndpoint is the path the Prometheus handler is mounted on
func (m *Manager) MetricsEndpoint() string {
	if m == nil || m.config.Prometheus.Endpoint == "" {
		return "/metrics"
	}
	return m.config.Prometheus.Endpoint
}

func (m *Manager) startMetricsServer() {
	mux := http.NewServeMux()
	mux.Handle(m.MetricsEndpoint(), m.metricsHandler)

	server := &http.Server{
		Addr:              net.JoinHostPort("", m.config.Prometheus.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	m.metricsServer = server

	m.logger.Info("Starting Prometheus metrics server",
		"addr", server.Addr,
		"endpoint", m.MetricsEndpoint())

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.logger.LogError(err, "Prometheus server error")
		}
	}()

	m.shutdownFuncs = append(m.shutdownFuncs, func(ctx context.Context) error {
		return server.Shutdown(ctx)
	})
}

// promLogger adapts the manager logger to promhttp's Println interface
type promLogger struct{ m *Manager }

func (l promLogger) Println(v ...any) {
	l.m.logger.Warn("Prometheus handler error", "detail", v)
}
