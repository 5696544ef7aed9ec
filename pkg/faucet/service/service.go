package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/rbt-faucet/internal/metrics"
	apperrors "github.com/chainsafe/rbt-faucet/pkg/app/errors"
	"github.com/chainsafe/rbt-faucet/pkg/config"
	"github.com/chainsafe/rbt-faucet/pkg/faucet"
	"github.com/chainsafe/rbt-faucet/pkg/rubix"
)

// Store is the narrow data-access interface of the claim service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	ReserveClaim(ctx context.Context, identifier string, now time.Time, cooldown time.Duration) (*faucet.ClaimRecord, error)
	GetCounters(ctx context.Context, faucetID string) (*faucet.Counters, error)
	SetCounters(ctx context.Context, faucetID string, tokenLevel, lastTokenNum, totalCount int64) error
	IncrementTransferred(ctx context.Context, faucetID string, amount int64) error
	IncrementTotalCount(ctx context.Context, faucetID string, amount int64) error
	CreatePayout(ctx context.Context, p *faucet.Payout) error
	UpdatePayout(ctx context.Context, id string, status faucet.PayoutStatus, transactionID, message string) error
}

// Counter is the side counter incremented once per claim reaching the payout stage.
//
//go:generate mockery --name Counter --output mocks --outpkg mocks --filename mock_counter.go --with-expecter
type Counter interface {
	Increment() (uint64, error)
}

// Ledger is the subset of the ledger node API used by the faucet.
//
//go:generate mockery --name Ledger --output mocks --outpkg mocks --filename mock_ledger.go --with-expecter
type Ledger interface {
	InitiateTransfer(ctx context.Context, req *rubix.TransferRequest) (*rubix.Initiated, error)
	SignatureResponse(ctx context.Context, req *rubix.SignatureRequest) (*rubix.Signed, error)
	GetAccountInfo(ctx context.Context, did string) (*rubix.AccountInfo, error)
	GenerateFaucetToken(ctx context.Context, req *rubix.MintRequest) (*rubix.Initiated, error)
}

// Trigger schedules a reserve replenishment check without blocking the caller.
//
//go:generate mockery --name Trigger --output mocks --outpkg mocks --filename mock_trigger.go --with-expecter
type Trigger interface {
	Trigger()
}

// Service defines the faucet business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// Claim runs the claim workflow for identifier and returns the token hash.
	Claim(ctx context.Context, identifier string) (*faucet.ClaimResult, error)
	GetCounters(ctx context.Context, faucetID string) (*faucet.Counters, error)
	SetCounters(ctx context.Context, faucetID string, tokenLevel, lastTokenNum, totalCount int64) error
	Quorums(ctx context.Context) ([]string, error)
}

type faucetService struct {
	store      Store
	counter    Counter
	ledger     Ledger
	replenish  Trigger
	cfg        config.FaucetConfig
	claimUnits int64
	logger     *zap.Logger
	now        func() time.Time
}

// Option configures the faucet service
type Option func(*faucetService)

// WithClock overrides the time source used for cooldown checks.
func WithClock(now func() time.Time) Option {
	return func(s *faucetService) {
		s.now = now
	}
}

// WithReplenisher sets the trigger fired after every claim that reached the
// payout stage. Without it no replenishment happens.
func WithReplenisher(t Trigger) Option {
	return func(s *faucetService) {
		s.replenish = t
	}
}

// NewService creates a new faucet service
func NewService(
	store Store,
	counter Counter,
	ledger Ledger,
	cfg *config.FaucetConfig,
	logger *zap.Logger,
	opts ...Option,
) Service {
	s := &faucetService{
		store:   store,
		counter: counter,
		ledger:  ledger,
		cfg:     *cfg,
		// Counters are kept in whole tokens.
		claimUnits: decimal.NewFromFloat(cfg.ClaimAmount).Ceil().IntPart(),
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Claim pays one claim to identifier.
//
// The cooldown slot is committed before the transfer is attempted, so a failed
// transfer still consumes it. A transfer the node answers without the success
// marker still returns the hash; only the transferred counter is left alone.
func (s *faucetService) Claim(ctx context.Context, identifier string) (*faucet.ClaimResult, error) {
	identifier = strings.TrimSpace(identifier)
	if msg := s.validateIdentifier(identifier); msg != "" {
		metrics.ClaimsTotal.WithLabelValues("invalid").Inc()
		return nil, apperrors.BadRequestError(faucet.ErrInvalidIdentifier, msg)
	}

	if _, err := s.store.ReserveClaim(ctx, identifier, s.now(), s.cfg.Cooldown); err != nil {
		var cdErr *faucet.CooldownError
		if errors.As(err, &cdErr) {
			metrics.ClaimsTotal.WithLabelValues("cooldown").Inc()
			msg := fmt.Sprintf("Request denied. Try again in %d minute(s).", cdErr.RemainingMinutes())
			return nil, apperrors.TooManyRequestsError(err, msg, cdErr.Remaining)
		}
		metrics.ClaimsTotal.WithLabelValues("error").Inc()
		return nil, apperrors.GeneralError(fmt.Errorf("failed to reserve claim: %w", err))
	}

	n, err := s.counter.Increment()
	if err != nil {
		metrics.ClaimsTotal.WithLabelValues("error").Inc()
		return nil, apperrors.GeneralError(fmt.Errorf("failed to increment side counter: %w", err))
	}
	metrics.SideCounter.Set(float64(n))
	hash := faucet.TokenHash(n)

	defer s.triggerReplenish()

	// The cooldown slot is spent; finish the payout even if the caller goes away,
	// but answer before the HTTP server gives up on the request.
	ctx = context.WithoutCancel(ctx)
	if s.cfg.TransferTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.TransferTimeout)
		defer cancel()
	}

	payout := &faucet.Payout{
		ID:        uuid.NewString(),
		Claimant:  identifier,
		Counter:   n,
		TokenHash: hash,
		Status:    faucet.PayoutInitiated,
	}
	s.audit(func() error { return s.store.CreatePayout(ctx, payout) })

	if err := s.transfer(ctx, payout); err != nil {
		metrics.ClaimsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.ClaimsTotal.WithLabelValues("approved").Inc()
	return &faucet.ClaimResult{Success: true, Hash: hash}, nil
}

// transfer pays the claim amount to the claimant of p through the
// initiate + signature-response exchange and records the outcome.
func (s *faucetService) transfer(ctx context.Context, p *faucet.Payout) error {
	start := time.Now()
	defer func() {
		metrics.TransferDuration.Observe(time.Since(start).Seconds())
	}()

	initiated, err := s.ledger.InitiateTransfer(ctx, &rubix.TransferRequest{
		Comment:    s.cfg.TransferComment,
		Receiver:   p.Claimant,
		Sender:     s.cfg.SenderDID,
		TokenCount: s.cfg.ClaimAmount,
		Type:       s.cfg.TransferType,
	})
	if err != nil {
		return s.transferFailed(ctx, p, "", fmt.Errorf("initiate transfer: %w", err))
	}

	signed, err := s.ledger.SignatureResponse(ctx, &rubix.SignatureRequest{
		ID:       initiated.ID,
		Password: s.cfg.SignPassword,
	})
	if err != nil {
		return s.transferFailed(ctx, p, initiated.ID, fmt.Errorf("sign transfer: %w", err))
	}

	if !strings.Contains(signed.Message, s.cfg.SuccessMarker) {
		metrics.TransfersTotal.WithLabelValues(string(faucet.PayoutRejected)).Inc()
		s.logger.Warn("Transfer rejected by ledger node",
			zap.String("claimant", p.Claimant),
			zap.String("transaction_id", initiated.ID),
			zap.String("node_message", signed.Message),
		)
		s.audit(func() error {
			return s.store.UpdatePayout(ctx, p.ID, faucet.PayoutRejected, initiated.ID, signed.Message)
		})
		return nil
	}

	metrics.TransfersTotal.WithLabelValues(string(faucet.PayoutCompleted)).Inc()
	if err := s.store.IncrementTransferred(ctx, s.cfg.ID, s.claimUnits); err != nil {
		s.logger.Error("Failed to record transferred tokens",
			zap.String("faucet_id", s.cfg.ID),
			zap.String("transaction_id", initiated.ID),
			zap.Error(err),
		)
	}
	s.audit(func() error {
		return s.store.UpdatePayout(ctx, p.ID, faucet.PayoutCompleted, initiated.ID, signed.Message)
	})
	return nil
}

func (s *faucetService) transferFailed(ctx context.Context, p *faucet.Payout, txID string, err error) error {
	metrics.TransfersTotal.WithLabelValues(string(faucet.PayoutFailed)).Inc()
	// The transfer deadline may already be spent; the audit row still gets its outcome.
	auditCtx := context.WithoutCancel(ctx)
	s.audit(func() error {
		return s.store.UpdatePayout(auditCtx, p.ID, faucet.PayoutFailed, txID, err.Error())
	})

	err = fmt.Errorf("%w: %w", faucet.ErrTransferTransport, err)
	if rubix.IsTimeout(err) {
		return apperrors.TimeoutError(err, "transfer failed")
	}
	return apperrors.DependencyError(err, "transfer failed")
}

// audit runs a payout bookkeeping write. Failures are logged only.
func (s *faucetService) audit(write func() error) {
	if err := write(); err != nil {
		s.logger.Warn("Failed to write payout audit entry", zap.Error(err))
	}
}

func (s *faucetService) triggerReplenish() {
	if s.replenish != nil {
		s.replenish.Trigger()
	}
}

// validateIdentifier returns the client-facing reason identifier is rejected,
// or "" when it is acceptable.
func (s *faucetService) validateIdentifier(identifier string) string {
	if identifier == "" {
		return "Username is required"
	}
	if s.cfg.IdentifierPrefix != "" && !strings.HasPrefix(identifier, s.cfg.IdentifierPrefix) {
		return fmt.Sprintf("Username must start with %s", s.cfg.IdentifierPrefix)
	}
	return ""
}

func (s *faucetService) GetCounters(ctx context.Context, faucetID string) (*faucet.Counters, error) {
	if faucetID == "" {
		faucetID = s.cfg.ID
	}
	c, err := s.store.GetCounters(ctx, faucetID)
	if err != nil {
		if errors.Is(err, faucet.ErrCountersNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "Faucet not found")
		}
		return nil, apperrors.GeneralError(fmt.Errorf("failed to get counters: %w", err))
	}
	return c, nil
}

func (s *faucetService) SetCounters(ctx context.Context, faucetID string, tokenLevel, lastTokenNum, totalCount int64) error {
	if faucetID == "" {
		return apperrors.BadRequestError(nil, "faucet_id is required")
	}
	if tokenLevel < 0 || lastTokenNum < 0 || totalCount < 0 {
		return apperrors.BadRequestError(nil, "counter values must not be negative")
	}
	if err := s.store.SetCounters(ctx, faucetID, tokenLevel, lastTokenNum, totalCount); err != nil {
		return apperrors.GeneralError(fmt.Errorf("failed to set counters: %w", err))
	}
	return nil
}

func (s *faucetService) Quorums(_ context.Context) ([]string, error) {
	out := make([]string, len(s.cfg.Quorums))
	copy(out, s.cfg.Quorums)
	return out, nil
}
