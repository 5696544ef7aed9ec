// Package store is the Postgres persistence of the faucet: claim records,
// faucet counters and payout audit entries.
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/rbt-faucet/pkg/faucet"
)

// ClaimDao maps to the 'claims' table.
type ClaimDao struct {
	bun.BaseModel `bun:"table:claims,alias:c"`
	Identifier    string    `bun:"identifier,pk,type:varchar(255)"`
	LastClaimMs   int64     `bun:"last_claim_ms,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toClaimRecord(dao *ClaimDao) *faucet.ClaimRecord {
	return &faucet.ClaimRecord{
		Identifier:  dao.Identifier,
		LastClaimMs: dao.LastClaimMs,
	}
}

// CountersDao maps to the 'faucet_counters' table.
type CountersDao struct {
	bun.BaseModel     `bun:"table:faucet_counters,alias:fc"`
	FaucetID          string    `bun:"faucet_id,pk,type:varchar(255)"`
	TokenLevel        int64     `bun:"token_level,notnull,default:0"`
	LastTokenNum      int64     `bun:"last_token_num,notnull,default:0"`
	TotalCount        int64     `bun:"total_count,notnull,default:0"`
	TokensTransferred int64     `bun:"tokens_transferred,notnull,default:0"`
	UpdatedAt         time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toCounters(dao *CountersDao) *faucet.Counters {
	return &faucet.Counters{
		FaucetID:          dao.FaucetID,
		TokenLevel:        dao.TokenLevel,
		LastTokenNum:      dao.LastTokenNum,
		TotalCount:        dao.TotalCount,
		TokensTransferred: dao.TokensTransferred,
		UpdatedAt:         dao.UpdatedAt,
	}
}

// PayoutDao maps to the 'payouts' table.
type PayoutDao struct {
	bun.BaseModel `bun:"table:payouts,alias:p"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	Claimant      string    `bun:"claimant,notnull,type:varchar(255)"`
	Counter       int64     `bun:"counter,notnull"`
	TokenHash     string    `bun:"token_hash,notnull,type:varchar(64)"`
	TransactionID *string   `bun:"transaction_id,type:varchar(255)"`
	Status        string    `bun:"status,notnull,type:varchar(20)"`
	Message       *string   `bun:"message,type:text"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toPayoutDao(p *faucet.Payout) (*PayoutDao, error) {
	id := uuid.New()
	if p.ID != "" {
		var err error
		if id, err = uuid.Parse(p.ID); err != nil {
			return nil, err
		}
	}

	dao := &PayoutDao{
		ID:        id,
		Claimant:  p.Claimant,
		Counter:   int64(p.Counter),
		TokenHash: p.TokenHash,
		Status:    string(p.Status),
	}
	if p.TransactionID != "" {
		dao.TransactionID = &p.TransactionID
	}
	if p.Message != "" {
		dao.Message = &p.Message
	}
	return dao, nil
}

func toPayout(dao *PayoutDao) *faucet.Payout {
	p := &faucet.Payout{
		ID:        dao.ID.String(),
		Claimant:  dao.Claimant,
		Counter:   uint64(dao.Counter),
		TokenHash: dao.TokenHash,
		Status:    faucet.PayoutStatus(dao.Status),
		CreatedAt: dao.CreatedAt,
		UpdatedAt: dao.UpdatedAt,
	}
	if dao.TransactionID != nil {
		p.TransactionID = *dao.TransactionID
	}
	if dao.Message != nil {
		p.Message = *dao.Message
	}
	return p
}
