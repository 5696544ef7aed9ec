package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ClaimsTotal counts claim requests by outcome
	// (approved, cooldown, invalid, error).
	ClaimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faucet_claims_total",
			Help: "Total number of faucet claim requests",
		},
		[]string{"outcome"},
	)

	// TransfersTotal counts payout transfers by status (completed, rejected, failed)
	TransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faucet_transfers_total",
			Help: "Total number of faucet payout transfers",
		},
		[]string{"status"},
	)

	// TransferDuration tracks the initiate + sign round trip to the ledger node
	TransferDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "faucet_transfer_duration_seconds",
			Help:    "Payout transfer duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	// ReplenishmentsTotal counts reserve checks by status (skipped, minted, rejected, failed)
	ReplenishmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faucet_replenishments_total",
			Help: "Total number of faucet reserve replenishment checks",
		},
		[]string{"status"},
	)

	// FaucetBalance is the last observed RBT balance of the faucet account
	FaucetBalance = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "faucet_balance_rbt",
			Help: "Last observed RBT balance of the faucet account",
		},
	)

	// SideCounter is the current value of the side counter
	SideCounter = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "faucet_side_counter",
			Help: "Current value of the faucet side counter",
		},
	)

	// RateLimitedTotal counts requests rejected by the per-IP throttle
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "faucet_rate_limited_total",
			Help: "Total number of requests rejected by the per-IP throttle",
		},
	)
)
