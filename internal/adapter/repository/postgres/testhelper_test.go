package postgres_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/database"
)

// AttachmentDB is a migrated postgres container holding the attachments
// table. It is torn down when the test finishes.
type AttachmentDB struct {
	Pool *pgxpool.Pool
}

func SetupAttachmentDB(t *testing.T) *AttachmentDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("thumbgate"),
		postgres.WithUsername("thumbgate"),
		postgres.WithPassword("thumbgate"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.RunMigrations(ctx, pool, getMigrationsPath()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return &AttachmentDB{Pool: pool}
}

// Reset empties the attachments table between subtests.
func (db *AttachmentDB) Reset(t *testing.T) {
	t.Helper()
	if _, err := db.Pool.Exec(context.Background(), "TRUNCATE TABLE attachments"); err != nil {
		t.Fatalf("failed to reset attachments: %v", err)
	}
}

func (db *AttachmentDB) Count(t *testing.T) int {
	t.Helper()
	var n int
	if err := db.Pool.QueryRow(context.Background(), "SELECT count(*) FROM attachments").Scan(&n); err != nil {
		t.Fatalf("failed to count attachments: %v", err)
	}
	return n
}

func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "..", "..", "migrations")
}
