package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/pledge-customizer/internal/migrations"
)

// setupTestDatabase поднимает PostgreSQL в контейнере и применяет миграции, включая каталог пакетов.
func setupTestDatabase(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	migrationsPath, err := filepath.Abs(filepath.Join("..", "..", "..", "migrations"))
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))

	return storage
}

// addPeriod добавляет период опции пакета.
func addPeriod(t *testing.T, s *Storage, pkgName, templateID string, kind string, begin, end time.Time) {
	t.Helper()
	_, err := s.DB.Exec(`INSERT INTO option_periods (option_id, kind, begin_date, end_date)
		SELECT o.id, $3, $4, $5 FROM package_options o
		JOIN packages p ON p.id = o.package_id
		WHERE p.name = $1 AND o.template_id = $2`,
		pkgName, templateID, kind, begin, end)
	require.NoError(t, err)
}
