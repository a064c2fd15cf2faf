package readthrough

import "github.com/prometheus/client_golang/prometheus"

const (
	resultHit    = "hit"
	resultMiss   = "miss"
	resultBypass = "bypass"
	resultError  = "error"
)

// Metrics counts cache lookups by cache name and result
type Metrics struct {
	requests *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_cache_requests_total",
		Help: "Read-through cache lookups by result",
	}, []string{"cache", "result"})

	if reg != nil {
		reg.MustRegister(requests)
	}

	return &Metrics{requests: requests}
}

func (m *Metrics) observe(cache, result string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(cache, result).Inc()
}
