package store

import (
	"context"
	"time"

	"github.com/chainsafe/rbt-faucet/pkg/faucet"
)

// ClaimStore persists the last approved claim of every claimant.
type ClaimStore interface {
	// ReserveClaim checks the cooldown of identifier and, when it has elapsed,
	// records now as the new claim time. The check and the write are atomic
	// for a given identifier. A *faucet.CooldownError is returned when the
	// claimant must wait; nothing is written in that case.
	ReserveClaim(ctx context.Context, identifier string, now time.Time, cooldown time.Duration) (*faucet.ClaimRecord, error)
	GetClaim(ctx context.Context, identifier string) (*faucet.ClaimRecord, error)
}

// CounterStore persists the bookkeeping counters of a faucet.
type CounterStore interface {
	EnsureCounters(ctx context.Context, faucetID string) error
	GetCounters(ctx context.Context, faucetID string) (*faucet.Counters, error)
	SetCounters(ctx context.Context, faucetID string, tokenLevel, lastTokenNum, totalCount int64) error
	IncrementTransferred(ctx context.Context, faucetID string, amount int64) error
	IncrementTotalCount(ctx context.Context, faucetID string, amount int64) error
}

// PayoutStore keeps the audit trail of payouts.
type PayoutStore interface {
	CreatePayout(ctx context.Context, p *faucet.Payout) error
	UpdatePayout(ctx context.Context, id string, status faucet.PayoutStatus, transactionID, message string) error
	ListPayouts(ctx context.Context, claimant string) ([]*faucet.Payout, error)
}

// Store defines the interface for faucet data persistence
type Store interface {
	ClaimStore
	CounterStore
	PayoutStore
}
