package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics tracks the donation pipeline end to end.
type BusinessMetrics struct {
	// DonationsSubmittedTotal counts broadcast attempts per kind (buy/send).
	DonationsSubmittedTotal *prometheus.CounterVec
	// ConfirmationsTotal counts poller verdicts per outcome (success/reverted/timeout).
	ConfirmationsTotal *prometheus.CounterVec
	// ConfirmationDuration measures how long receipts took to finalize.
	ConfirmationDuration prometheus.Histogram
	// HistoryRefreshTotal counts ledger re-fetches per result (ok/error).
	HistoryRefreshTotal *prometheus.CounterVec
}

// Global Metrics Instance
var Business *BusinessMetrics

// InitBusinessMetrics registers the business metrics with the default registry.
func InitBusinessMetrics() {
	Business = &BusinessMetrics{
		DonationsSubmittedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "coffee_donations_submitted_total",
			Help: "The total number of donation transactions handed to the wallet",
		}, []string{"kind"}),
		ConfirmationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "coffee_confirmations_total",
			Help: "The total number of confirmation outcomes",
		}, []string{"outcome"}),
		ConfirmationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "coffee_confirmation_duration_seconds",
			Help:    "Time from broadcast to finalized receipt",
			Buckets: prometheus.DefBuckets,
		}),
		HistoryRefreshTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "coffee_history_refresh_total",
			Help: "The total number of donation history refreshes",
		}, []string{"result"}),
	}
}
