package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Funding path labels.
const (
	PathExisting           = "existing"
	PathSponsored          = "sponsored"
	PathFriendbotDirect    = "friendbot_direct"
	PathFriendbotBootstrap = "friendbot_bootstrap"
)

// Metrics holds all Prometheus metrics for the funder.
type Metrics struct {
	FundingsTotal   *prometheus.CounterVec
	FundingFailures *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		FundingsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lumenfund_fundings_total",
			Help: "Successful funding outcomes by path taken",
		}, []string{"path"}),
		FundingFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lumenfund_funding_failures_total",
			Help: "Failed funding attempts by error category",
		}, []string{"category"}),
	}
}

// ObserveOutcome increments the success counter for the path taken.
func (m *Metrics) ObserveOutcome(path string) {
	m.FundingsTotal.WithLabelValues(path).Inc()
}

// ObserveFailure increments the failure counter for an error category.
func (m *Metrics) ObserveFailure(category string) {
	m.FundingFailures.WithLabelValues(category).Inc()
}
