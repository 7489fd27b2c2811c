package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	errorsmod "cosmossdk.io/errors"

	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/types"
)

const metricsNamespace = "hbarsign"

var _ types.ReviewObserver = (*Metrics)(nil)

// Metrics counts review outcomes.
type Metrics struct {
	Registry *prometheus.Registry

	Reviewed *prometheus.CounterVec
	Rejected *prometheus.CounterVec
}

// NewMetrics registers the review counters in registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)
	return &Metrics{
		Registry: registry,
		Reviewed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "transactions_reviewed_total",
			Help:      "Transactions accepted for signing, by type",
		}, []string{"type"}),
		Rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "transactions_rejected_total",
			Help:      "Transactions rejected as malformed, by the codespace of the reason",
		}, []string{"codespace"}),
	}
}

// ObserveReview implements types.ReviewObserver.
func (m *Metrics) ObserveReview(review *types.Review) {
	m.Reviewed.WithLabelValues(review.TypeName()).Inc()
}

// ObserveRejection implements types.ReviewObserver.
func (m *Metrics) ObserveRejection(reason error) {
	codespace, _, _ := errorsmod.ABCIInfo(reason, false)
	m.Rejected.WithLabelValues(codespace).Inc()
}
