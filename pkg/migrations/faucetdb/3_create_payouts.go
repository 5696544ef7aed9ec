package faucetdb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/chainsafe/rbt-faucet/pkg/faucet/store"
	mghelper "github.com/chainsafe/rbt-faucet/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateSchema(ctx, db, &store.PayoutDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &store.PayoutDao{}, "claimant", "status")
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &store.PayoutDao{})
	})
}
