package providers

import (
	"sdn/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncPollsTotal(outcome string)
	ObservePollDuration(duration time.Duration)
	IncNotificationsTotal(backend, reason string)
	IncNotifyFailuresTotal(backend string)
	SetPersonaState(state int)
	SetInGame(inGame bool)
}

type MetricsProvider struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	pollsTotal         *prometheus.CounterVec
	pollDuration       prometheus.Histogram
	notificationsTotal *prometheus.CounterVec
	notifyFailures     *prometheus.CounterVec
	personaState       prometheus.Gauge
	inGame             prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncPollsTotal(outcome string) {
	m.pollsTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) ObservePollDuration(duration time.Duration) {
	m.pollDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncNotificationsTotal(backend, reason string) {
	m.notificationsTotal.WithLabelValues(backend, reason).Inc()
}

func (m *MetricsProvider) IncNotifyFailuresTotal(backend string) {
	m.notifyFailures.WithLabelValues(backend).Inc()
}

func (m *MetricsProvider) SetPersonaState(state int) {
	m.personaState.Set(float64(state))
}

func (m *MetricsProvider) SetInGame(inGame bool) {
	if inGame {
		m.inGame.Set(1)
		return
	}
	m.inGame.Set(0)
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sdn_requests_total",
			Help: "Total number of HTTP requests served by the keepalive server",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sdn_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		pollsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sdn_polls_total",
			Help: "Total number of Steam summary polls by outcome",
		}, []string{"outcome"}),

		pollDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "sdn_poll_duration_seconds",
			Help:    "Duration of Steam summary polls in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		notificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sdn_notifications_total",
			Help: "Total number of Discord notifications sent",
		}, []string{"backend", "reason"}),

		notifyFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sdn_notify_failures_total",
			Help: "Total number of failed Discord sends",
		}, []string{"backend"}),

		personaState: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "sdn_persona_state",
			Help: "Last observed persona state code of the tracked user",
		}),

		inGame: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "sdn_in_game",
			Help: "Whether the tracked user was in a game at the last poll",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncPollsTotal(_ string)                           {}
func (n *noopMetrics) ObservePollDuration(_ time.Duration)              {}
func (n *noopMetrics) IncNotificationsTotal(_, _ string)                {}
func (n *noopMetrics) IncNotifyFailuresTotal(_ string)                  {}
func (n *noopMetrics) SetPersonaState(_ int)                            {}
func (n *noopMetrics) SetInGame(_ bool)                                 {}
