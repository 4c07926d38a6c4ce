package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 未匹配到路由的请求统一记为一个 route, 避免 url 撑爆标签基数
const unmatchedRoute = "unmatched"

// Metrics 按路由模板和状态码段统计请求
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inflight prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "HTTP requests by route template and status class.",
		}, []string{"route", "status_class"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency by route template.",
			Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 2, 5},
		}, []string{"route"}),
		inflight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "portfolio_http_requests_in_flight",
			Help: "HTTP requests currently being served.",
		}),
	}
}

var defaultMetrics = NewMetrics(prometheus.DefaultRegisterer)

// PrometheusMiddleware 使用默认 registry, /metrics 自身不计入
func PrometheusMiddleware() gin.HandlerFunc {
	return defaultMetrics.Handler("/metrics")
}

func (m *Metrics) Handler(skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skipped[c.FullPath()]; ok {
			c.Next()
			return
		}

		m.inflight.Inc()
		start := time.Now()
		c.Next()
		m.inflight.Dec()

		route := unmatchedRoute
		if p := c.FullPath(); p != "" {
			route = c.Request.Method + " " + p
		}
		m.requests.WithLabelValues(route, statusClass(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// statusClass 200 -> 2xx, 404 -> 4xx
func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
