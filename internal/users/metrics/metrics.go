package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Requests   *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	ImportRows *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		Requests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "usersvc",
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"}),
		Duration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "usersvc",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"}),
		ImportRows: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "usersvc",
				Name:      "import_rows_total",
				Help:      "Bulk import rows by outcome.",
			},
			[]string{"outcome"}),
	}
}

// ObserveImport records the outcome counts of one bulk import.
func (m *Metrics) ObserveImport(inserted, updated, failed int) {
	m.ImportRows.WithLabelValues("inserted").Add(float64(inserted))
	m.ImportRows.WithLabelValues("updated").Add(float64(updated))
	m.ImportRows.WithLabelValues("failed").Add(float64(failed))
}

// Middleware instruments every request with count and latency.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			method := c.Request().Method
			status := c.Response().Status
			if err != nil {
				// The error handler has not written the response yet;
				// anything that is not an *echo.HTTPError becomes a 500
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.Duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
