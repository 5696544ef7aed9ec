package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/rbt-faucet/pkg/faucet"
)

// ErrClaimNotFound is returned when a claimant has no recorded claim.
var ErrClaimNotFound = errors.New("claim not found")

// ErrPayoutNotFound is returned when updating a payout that does not exist.
var ErrPayoutNotFound = errors.New("payout not found")

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the faucet store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) ReserveClaim(
	ctx context.Context,
	identifier string,
	now time.Time,
	cooldown time.Duration,
) (*faucet.ClaimRecord, error) {
	var rec *faucet.ClaimRecord

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		// Serialises concurrent claims of one identifier until commit.
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext(?))", identifier); err != nil {
			return fmt.Errorf("failed to lock claim: %w", err)
		}

		existing := new(ClaimDao)
		err := tx.NewSelect().
			Model(existing).
			Where("identifier = ?", identifier).
			Scan(ctx)
		switch {
		case errors.Is(err, sql.ErrNoRows):
		case err != nil:
			return fmt.Errorf("failed to get claim: %w", err)
		default:
			if remaining := toClaimRecord(existing).Remaining(now, cooldown); remaining > 0 {
				return &faucet.CooldownError{Identifier: identifier, Remaining: remaining}
			}
		}

		dao := &ClaimDao{
			Identifier:  identifier,
			LastClaimMs: now.UnixMilli(),
			UpdatedAt:   now.UTC(),
		}
		_, err = tx.NewInsert().
			Model(dao).
			On("CONFLICT (identifier) DO UPDATE").
			Set("last_claim_ms = EXCLUDED.last_claim_ms").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to record claim: %w", err)
		}

		rec = toClaimRecord(dao)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *pgStore) GetClaim(ctx context.Context, identifier string) (*faucet.ClaimRecord, error) {
	dao := new(ClaimDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("identifier = ?", identifier).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClaimNotFound
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	return toClaimRecord(dao), nil
}

func (s *pgStore) EnsureCounters(ctx context.Context, faucetID string) error {
	_, err := s.db.NewInsert().
		Model(&CountersDao{FaucetID: faucetID}).
		On("CONFLICT (faucet_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed counters for %s: %w", faucetID, err)
	}
	return nil
}

func (s *pgStore) GetCounters(ctx context.Context, faucetID string) (*faucet.Counters, error) {
	dao := new(CountersDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("faucet_id = ?", faucetID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, faucet.ErrCountersNotFound
		}
		return nil, fmt.Errorf("failed to get counters: %w", err)
	}
	return toCounters(dao), nil
}

// SetCounters overwrites the admin-managed counters of faucetID, creating the
// row when needed. tokens_transferred is left as is.
func (s *pgStore) SetCounters(ctx context.Context, faucetID string, tokenLevel, lastTokenNum, totalCount int64) error {
	dao := &CountersDao{
		FaucetID:     faucetID,
		TokenLevel:   tokenLevel,
		LastTokenNum: lastTokenNum,
		TotalCount:   totalCount,
		UpdatedAt:    time.Now().UTC(),
	}
	_, err := s.db.NewInsert().
		Model(dao).
		Column("faucet_id", "token_level", "last_token_num", "total_count", "updated_at").
		On("CONFLICT (faucet_id) DO UPDATE").
		Set("token_level = EXCLUDED.token_level").
		Set("last_token_num = EXCLUDED.last_token_num").
		Set("total_count = EXCLUDED.total_count").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set counters: %w", err)
	}
	return nil
}

func (s *pgStore) IncrementTransferred(ctx context.Context, faucetID string, amount int64) error {
	return s.incrementColumn(ctx, faucetID, "tokens_transferred", amount)
}

func (s *pgStore) IncrementTotalCount(ctx context.Context, faucetID string, amount int64) error {
	return s.incrementColumn(ctx, faucetID, "total_count", amount)
}

func (s *pgStore) incrementColumn(ctx context.Context, faucetID, col string, amount int64) error {
	res, err := s.db.NewUpdate().
		Model((*CountersDao)(nil)).
		Set("? = ? + ?", bun.Ident(col), bun.Ident(col), amount).
		Set("updated_at = NOW()").
		Where("faucet_id = ?", faucetID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", col, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", col, err)
	}
	if n == 0 {
		return faucet.ErrCountersNotFound
	}
	return nil
}

// CreatePayout inserts p and fills in its generated id and timestamps.
func (s *pgStore) CreatePayout(ctx context.Context, p *faucet.Payout) error {
	dao, err := toPayoutDao(p)
	if err != nil {
		return fmt.Errorf("invalid payout id %q: %w", p.ID, err)
	}

	_, err = s.db.NewInsert().
		Model(dao).
		Returning("created_at, updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create payout: %w", err)
	}

	p.ID = dao.ID.String()
	p.CreatedAt = dao.CreatedAt
	p.UpdatedAt = dao.UpdatedAt
	return nil
}

func (s *pgStore) UpdatePayout(
	ctx context.Context,
	id string,
	status faucet.PayoutStatus,
	transactionID, message string,
) error {
	q := s.db.NewUpdate().
		Model((*PayoutDao)(nil)).
		Set("status = ?", string(status)).
		Set("updated_at = NOW()").
		Where("id = ?", id)
	if transactionID != "" {
		q = q.Set("transaction_id = ?", transactionID)
	}
	if message != "" {
		q = q.Set("message = ?", message)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update payout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update payout: %w", err)
	}
	if n == 0 {
		return ErrPayoutNotFound
	}
	return nil
}

func (s *pgStore) ListPayouts(ctx context.Context, claimant string) ([]*faucet.Payout, error) {
	var daos []PayoutDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("claimant = ?", claimant).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	payouts := make([]*faucet.Payout, len(daos))
	for i := range daos {
		payouts[i] = toPayout(&daos[i])
	}
	return payouts, nil
}
