// Package metrics expone contadores Prometheus del impianto en un registro propio.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Reciclaje-api/internal/application/quality"
	appstock "github.com/jhoicas/Reciclaje-api/internal/application/stock"
)

var _ quality.Metrics = (*Metrics)(nil)
var _ appstock.Metrics = (*Metrics)(nil)

// Metrics agrupa los colectores de la aplicación.
type Metrics struct {
	registry         *prometheus.Registry
	samplesValidated *prometheus.CounterVec
	stockRefreshes   prometheus.Counter
	lowStock         prometheus.Gauge
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New registra los colectores (más los de runtime Go y proceso).
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		samplesValidated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reciclaje_samples_validated_total",
			Help: "Análisis de calidad validados, por resultado de conformidad.",
		}, []string{"conforming"}),
		stockRefreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reciclaje_stock_refresh_total",
			Help: "Recálculos de existencias ejecutados.",
		}),
		lowStock: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "reciclaje_low_stock_materials",
			Help: "Materiales bajo el umbral de stock bajo en el último recálculo.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reciclaje_http_requests_total",
			Help: "Peticiones HTTP por método, ruta y estado.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reciclaje_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.samplesValidated, m.stockRefreshes, m.lowStock, m.httpRequests, m.httpDuration,
	)
	return m
}

// SampleValidated cuenta una validación.
func (m *Metrics) SampleValidated(conforming bool) {
	m.samplesValidated.WithLabelValues(strconv.FormatBool(conforming)).Inc()
}

// StockRefreshed cuenta un recálculo y publica cuántos materiales quedaron bajo umbral.
func (m *Metrics) StockRefreshed(lowStock int) {
	m.stockRefreshes.Inc()
	m.lowStock.Set(float64(lowStock))
}

// Middleware mide cada petición usando la ruta registrada (no la URL) como etiqueta.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		m.httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone el registro en formato Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
