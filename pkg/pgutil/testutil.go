package pgutil

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"

	"github.com/chainsafe/rbt-faucet/pkg/config"
)

// RequireDockerAccess skips the test when no docker daemon socket is reachable.
func RequireDockerAccess(t *testing.T) {
	t.Helper()

	candidates := []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	}

	for _, sock := range candidates {
		if _, err := os.Stat(sock); err != nil {
			continue
		}
		conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", sock)
		if err == nil {
			_ = conn.Close()
			return
		}
	}

	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed tests")
}

// SetupTestDB starts a PostgreSQL testcontainer and returns a connection to it
// together with a cleanup function.
func SetupTestDB(t *testing.T) (*bun.DB, func()) {
	t.Helper()
	RequireDockerAccess(t)
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("faucet_test"),
		postgres.WithUsername("faucet"),
		postgres.WithPassword("faucet"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		t.Fatalf("failed to get container port: %v", err)
	}

	cfg := &config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     "faucet",
		Password: "faucet",
		Database: "faucet_test",
		SSLMode:  "disable",
	}

	var db *bun.DB
	const maxRetries = 8
	for i := 0; i < maxRetries; i++ {
		if db, err = ConnectDB(ctx, cfg, nil); err == nil {
			break
		}
		if i == maxRetries-1 {
			_ = testcontainers.TerminateContainer(container)
			t.Fatalf("failed to connect to test database after %d attempts: %v", maxRetries, err)
		}
		time.Sleep(time.Duration(100*(1<<uint(i))) * time.Millisecond)
	}

	cleanup := func() {
		_ = db.Close()
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
	return db, cleanup
}

func relationExists(t *testing.T, db bun.IDB, query, name string) bool {
	t.Helper()

	var exists bool
	err := db.NewSelect().
		ColumnExpr(query, "public", name).
		Scan(context.Background(), &exists)
	if err != nil {
		t.Fatalf("failed to look up %s: %v", name, err)
	}
	return exists
}

// AssertTableExists checks if a table exists in the database
func AssertTableExists(t *testing.T, db bun.IDB, tableName string) {
	t.Helper()
	if !relationExists(t, db,
		"EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = ? AND table_name = ?)", tableName) {
		t.Errorf("table %s does not exist", tableName)
	}
}

// AssertTableNotExists checks that a table is absent from the database
func AssertTableNotExists(t *testing.T, db bun.IDB, tableName string) {
	t.Helper()
	if relationExists(t, db,
		"EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = ? AND table_name = ?)", tableName) {
		t.Errorf("table %s should not exist but it does", tableName)
	}
}

// AssertIndexExists checks if an index exists in the database
func AssertIndexExists(t *testing.T, db bun.IDB, indexName string) {
	t.Helper()
	if !relationExists(t, db,
		"EXISTS (SELECT 1 FROM pg_indexes WHERE schemaname = ? AND indexname = ?)", indexName) {
		t.Errorf("index %s does not exist", indexName)
	}
}
