// Package faucet holds the domain model of the token faucet: claim records,
// faucet counters, payout audit entries and the errors of the claim workflow.
package faucet

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrInvalidIdentifier is returned when the claimant identifier is empty or
	// does not carry the configured prefix.
	ErrInvalidIdentifier = errors.New("invalid claimant identifier")

	// ErrCountersNotFound is returned when no counters row exists for a faucet id.
	ErrCountersNotFound = errors.New("faucet counters not found")

	// ErrTransferTransport is returned when the ledger node could not be reached or
	// answered with a malformed response during initiate or sign.
	ErrTransferTransport = errors.New("transfer transport error")
)

// CooldownError reports a claim rejected because the claimant is inside the
// cooldown window. No state is changed when it is returned.
type CooldownError struct {
	Identifier string
	Remaining  time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active for %s: retry in %d minute(s)", e.Identifier, e.RemainingMinutes())
}

// RemainingMinutes is the residual cooldown rounded up to whole minutes.
func (e *CooldownError) RemainingMinutes() int {
	return int(math.Ceil(e.Remaining.Minutes()))
}

// ClaimRecord is the last approved claim of a claimant.
type ClaimRecord struct {
	Identifier string
	// LastClaimMs is the approval time in milliseconds since the Unix epoch.
	LastClaimMs int64
}

// LastClaim returns LastClaimMs as a time.Time.
func (r *ClaimRecord) LastClaim() time.Time {
	return time.UnixMilli(r.LastClaimMs)
}

// Remaining returns how much of the cooldown is left at now, or zero.
func (r *ClaimRecord) Remaining(now time.Time, cooldown time.Duration) time.Duration {
	elapsed := time.Duration(now.UnixMilli()-r.LastClaimMs) * time.Millisecond
	if elapsed >= cooldown {
		return 0
	}
	return cooldown - elapsed
}

// Counters is the bookkeeping row of a faucet.
type Counters struct {
	FaucetID          string
	TokenLevel        int64
	LastTokenNum      int64
	TotalCount        int64
	TokensTransferred int64
	UpdatedAt         time.Time
}

// Reserve is the number of minted tokens not yet paid out.
func (c *Counters) Reserve() int64 {
	return c.TotalCount - c.TokensTransferred
}

// PayoutStatus is the state of a payout attempt.
type PayoutStatus string

const (
	PayoutInitiated PayoutStatus = "initiated"
	PayoutCompleted PayoutStatus = "completed"
	PayoutRejected  PayoutStatus = "rejected"
	PayoutFailed    PayoutStatus = "failed"
)

// Payout is the audit entry of a claim that reached the payout stage.
type Payout struct {
	ID            string
	Claimant      string
	Counter       uint64
	TokenHash     string
	TransactionID string
	Status        PayoutStatus
	Message       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ClaimRequest is the body of POST /increment
type ClaimRequest struct {
	Username string `json:"username"`
}

// ClaimResult is returned for an approved claim.
type ClaimResult struct {
	Success bool   `json:"success"`
	Hash    string `json:"hash"`
}

// TokenValue is the wire shape of the faucet counters used by the admin endpoints.
type TokenValue struct {
	TokenLevel         int64  `json:"token_level" validate:"gte=0"`
	FaucetID           string `json:"faucet_id" validate:"required"`
	CurrentTokenNumber int64  `json:"current_token_number" validate:"gte=0"`
	TotalCount         int64  `json:"total_count" validate:"gte=0"`
}

// NewTokenValue maps counters to their wire shape.
func NewTokenValue(c *Counters) *TokenValue {
	return &TokenValue{
		TokenLevel:         c.TokenLevel,
		FaucetID:           c.FaucetID,
		CurrentTokenNumber: c.LastTokenNum,
		TotalCount:         c.TotalCount,
	}
}
