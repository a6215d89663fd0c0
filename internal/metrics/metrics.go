package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "itesa"

// Metrics коллекторы Prometheus для сайта.
// Методы безопасно вызывать на nil.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	contactSubmissions prometheus.Counter
	subscriptions      prometheus.Counter
	newsletters        prometheus.Counter
	hierarchyIssues    *prometheus.CounterVec
}

// New создает и регистрирует коллекторы в отдельном реестре
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		contactSubmissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions received",
		}),
		subscriptions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "newsletter_subscriptions_total",
			Help:      "Newsletter subscriptions created",
		}),
		newsletters: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "newsletters_requested_total",
			Help:      "Newsletter issues handed to the mail worker",
		}),
		hierarchyIssues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "team_hierarchy_issues_total",
			Help:      "Team members left out of the hierarchy",
		}, []string{"reason"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.requestDuration,
		m.contactSubmissions,
		m.subscriptions,
		m.newsletters,
		m.hierarchyIssues,
	)

	return m
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware считает запросы по шаблону маршрута chi
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) ContactSubmitted() {
	if m == nil {
		return
	}
	m.contactSubmissions.Inc()
}

func (m *Metrics) Subscribed() {
	if m == nil {
		return
	}
	m.subscriptions.Inc()
}

func (m *Metrics) NewsletterRequested() {
	if m == nil {
		return
	}
	m.newsletters.Inc()
}

// HierarchyIssues учитывает участников, не попавших в иерархию
func (m *Metrics) HierarchyIssues(reason string, count int) {
	if m == nil || count == 0 {
		return
	}
	m.hierarchyIssues.WithLabelValues(reason).Add(float64(count))
}
