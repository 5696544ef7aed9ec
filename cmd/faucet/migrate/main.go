package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/chainsafe/rbt-faucet/pkg/config"
	"github.com/chainsafe/rbt-faucet/pkg/migrations/faucetdb"
	"github.com/chainsafe/rbt-faucet/pkg/pgutil"
	mghelper "github.com/chainsafe/rbt-faucet/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading configuration file: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Running migrations for faucet database", zap.String("database", cfg.Database.Database))

	migrator := migrate.NewMigrator(db, faucetdb.Migrations)
	if err := mghelper.RunMigrations(ctx, migrator, logger, flag.Args()...); err != nil {
		mghelper.Exitf(err.Error())
	}
}
