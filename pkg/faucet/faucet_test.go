package faucet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenHash_KnownVectors(t *testing.T) {
	// SHA3-256("1") and SHA3-256("2")
	assert.Equal(t, "67b176705b46206614219f47a05aee7ae6a3edbe850bbbe214c536b989aea4d2", TokenHash(1))
	assert.Equal(t, "b1b1bd1ed240b1496c81ccf19ceccf2af6fd24fac10ae42023628abbe2687310", TokenHash(2))
	assert.Equal(t, TokenHash(42), TokenHash(42))
	assert.NotEqual(t, TokenHash(42), TokenHash(43))
	assert.Len(t, TokenHash(7), 64)
}

func TestClaimRecord_Remaining(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rec := &ClaimRecord{Identifier: "bafybabc", LastClaimMs: t0.UnixMilli()}

	assert.Equal(t, time.Minute, rec.Remaining(t0.Add(59*time.Minute), time.Hour))
	assert.Zero(t, rec.Remaining(t0.Add(time.Hour), time.Hour))
	assert.Zero(t, rec.Remaining(t0.Add(61*time.Minute), time.Hour))
	assert.Equal(t, t0.UnixMilli(), rec.LastClaim().UnixMilli())
}

func TestCooldownError_RemainingMinutesRoundsUp(t *testing.T) {
	cases := []struct {
		remaining time.Duration
		want      int
	}{
		{time.Minute, 1},
		{time.Second, 1},
		{59*time.Minute + time.Second, 60},
		{30 * time.Minute, 30},
	}
	for _, tc := range cases {
		err := &CooldownError{Identifier: "bafyb1", Remaining: tc.remaining}
		assert.Equal(t, tc.want, err.RemainingMinutes(), tc.remaining.String())
	}
}

func TestCounters_Reserve(t *testing.T) {
	c := &Counters{TotalCount: 120, TokensTransferred: 75}
	assert.Equal(t, int64(45), c.Reserve())

	tv := NewTokenValue(&Counters{FaucetID: "f", TokenLevel: 2, LastTokenNum: 9, TotalCount: 120})
	assert.Equal(t, &TokenValue{TokenLevel: 2, FaucetID: "f", CurrentTokenNumber: 9, TotalCount: 120}, tv)
}
