package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request handling time in seconds by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Metrics собирает счётчик запросов и гистограмму длительности.
// В качестве route используется шаблон маршрута chi (а не сырой путь),
// чтобы не раздувать кардинальность: /transactions/{id}, а не конкретные UUID.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)
			dur := time.Since(start)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}

			httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(r.Method, route).Observe(dur.Seconds())
		})
	}
}
