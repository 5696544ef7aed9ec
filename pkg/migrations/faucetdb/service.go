// Package faucetdb holds all the migrations for the faucet database
package faucetdb

import "github.com/uptrace/bun/migrate"

// Migrations is the ordered migration collection of the faucet database.
var Migrations = migrate.NewMigrations()
