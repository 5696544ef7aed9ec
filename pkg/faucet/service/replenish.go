package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/chainsafe/rbt-faucet/internal/metrics"
	"github.com/chainsafe/rbt-faucet/pkg/config"
	"github.com/chainsafe/rbt-faucet/pkg/rubix"
)

// ReplenishOutcome is the result of one reserve check.
type ReplenishOutcome string

const (
	ReplenishSkipped  ReplenishOutcome = "skipped"
	ReplenishMinted   ReplenishOutcome = "minted"
	ReplenishRejected ReplenishOutcome = "rejected"
	ReplenishFailed   ReplenishOutcome = "failed"
)

// ReserveStore records minted tokens in the faucet counters.
type ReserveStore interface {
	IncrementTotalCount(ctx context.Context, faucetID string, amount int64) error
}

// Replenisher tops up the faucet account when its balance falls below the
// low-water mark. Concurrent checks share a single in-flight check, so one
// low balance condition mints once.
type Replenisher struct {
	store        ReserveStore
	ledger       Ledger
	faucetID     string
	senderDID    string
	signPassword string
	lowWaterMark decimal.Decimal
	topUpAmount  int64
	marker       string
	timeout      time.Duration
	logger       *zap.Logger

	group   singleflight.Group
	wg      sync.WaitGroup
	mu      sync.Mutex
	stopped bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewReplenisher creates a Replenisher for the faucet described by cfg.
func NewReplenisher(store ReserveStore, ledger Ledger, cfg *config.Config, logger *zap.Logger) *Replenisher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Replenisher{
		store:        store,
		ledger:       ledger,
		faucetID:     cfg.Faucet.ID,
		senderDID:    cfg.Faucet.SenderDID,
		signPassword: cfg.Faucet.SignPassword,
		lowWaterMark: decimal.NewFromFloat(cfg.Replenish.LowWaterMark),
		topUpAmount:  cfg.Replenish.TopUpAmount,
		marker:       cfg.ReplenishMarker(),
		timeout:      cfg.Replenish.Timeout,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Trigger runs a reserve check in the background with its own timeout.
// It is a no-op after Stop.
func (r *Replenisher) Trigger() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(r.ctx, r.timeout)
		defer cancel()

		outcome, err := r.Check(ctx)
		if err != nil {
			r.logger.Error("Reserve replenishment failed",
				zap.String("faucet_id", r.faucetID),
				zap.String("outcome", string(outcome)),
				zap.Error(err),
			)
		}
	}()
}

// Stop cancels in-flight checks and waits for them to return.
func (r *Replenisher) Stop() {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()

	r.cancel()
	r.wg.Wait()
}

// Check queries the faucet balance and mints the top-up amount when it is
// below the low-water mark. Callers arriving while a check is running get
// that check's result.
func (r *Replenisher) Check(ctx context.Context) (ReplenishOutcome, error) {
	v, err, shared := r.group.Do(r.faucetID, func() (any, error) {
		outcome, err := r.check(ctx)
		metrics.ReplenishmentsTotal.WithLabelValues(string(outcome)).Inc()
		return outcome, err
	})
	if shared {
		r.logger.Debug("Joined in-flight reserve check", zap.String("faucet_id", r.faucetID))
	}
	return v.(ReplenishOutcome), err
}

func (r *Replenisher) check(ctx context.Context) (ReplenishOutcome, error) {
	info, err := r.ledger.GetAccountInfo(ctx, r.senderDID)
	if err != nil {
		return ReplenishFailed, fmt.Errorf("get faucet balance: %w", err)
	}
	metrics.FaucetBalance.Set(info.RBTAmount.InexactFloat64())

	if !info.RBTAmount.LessThan(r.lowWaterMark) {
		return ReplenishSkipped, nil
	}

	r.logger.Info("Faucet balance below low-water mark, minting",
		zap.String("faucet_id", r.faucetID),
		zap.Stringer("balance", info.RBTAmount),
		zap.Stringer("low_water_mark", r.lowWaterMark),
		zap.Int64("top_up_amount", r.topUpAmount),
	)

	initiated, err := r.ledger.GenerateFaucetToken(ctx, &rubix.MintRequest{
		DID:        r.senderDID,
		TokenCount: r.topUpAmount,
	})
	if err != nil {
		return ReplenishFailed, fmt.Errorf("generate faucet tokens: %w", err)
	}

	signed, err := r.ledger.SignatureResponse(ctx, &rubix.SignatureRequest{
		ID:       initiated.ID,
		Password: r.signPassword,
	})
	if err != nil {
		return ReplenishFailed, fmt.Errorf("sign faucet token generation: %w", err)
	}

	if !strings.Contains(signed.Message, r.marker) {
		r.logger.Warn("Faucet token generation not confirmed by ledger node",
			zap.String("transaction_id", initiated.ID),
			zap.String("node_message", signed.Message),
		)
		return ReplenishRejected, nil
	}

	if err := r.store.IncrementTotalCount(ctx, r.faucetID, r.topUpAmount); err != nil {
		return ReplenishFailed, fmt.Errorf("record minted tokens: %w", err)
	}

	r.logger.Info("Faucet reserve replenished",
		zap.String("faucet_id", r.faucetID),
		zap.String("transaction_id", initiated.ID),
		zap.Int64("amount", r.topUpAmount),
	)
	return ReplenishMinted, nil
}
