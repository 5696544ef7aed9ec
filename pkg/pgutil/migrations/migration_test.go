package migrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/chainsafe/rbt-faucet/pkg/config"
	"github.com/chainsafe/rbt-faucet/pkg/pgutil"
)

type testDao struct {
	bun.BaseModel `bun:"table:test_table"`
	ID            int64  `bun:",pk,autoincrement"`
	Name          string `bun:",notnull,type:varchar(100)"`
	Age           int    `bun:",nullzero"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(context.Background(), cfg, nil)
	if err == nil {
		_ = db.Close()
		t.Fatal("ConnectDB() should fail with invalid host")
	}
}

func TestSchemaHelpers(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, CreateSchema(ctx, db, &testDao{}))
	pgutil.AssertTableExists(t, db, "test_table")

	// Idempotent.
	require.NoError(t, CreateSchema(ctx, db, &testDao{}))

	require.NoError(t, CreateModelIndexes(ctx, db, &testDao{}, "name", "age"))
	pgutil.AssertIndexExists(t, db, "idx_test_table_name")
	pgutil.AssertIndexExists(t, db, "idx_test_table_age")

	require.NoError(t, DropTables(ctx, db, &testDao{}))
	pgutil.AssertTableNotExists(t, db, "test_table")
}

func TestModelIndexName(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()

	name, err := modelIndexName(db, &testDao{}, "name")
	require.NoError(t, err)
	assert.Equal(t, "idx_test_table_name", name)

	_, err = modelIndexName(db, nil, "name")
	require.Error(t, err)
}
