package faucetdb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/chainsafe/rbt-faucet/pkg/faucet/store"
	mghelper "github.com/chainsafe/rbt-faucet/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return mghelper.CreateSchema(ctx, db, &store.ClaimDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &store.ClaimDao{})
	})
}
