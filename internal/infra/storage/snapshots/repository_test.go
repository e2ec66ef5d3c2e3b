package snapshots

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-CourtAvailability/internal/infra/storage/schema"
	"github.com/m04kA/SMC-CourtAvailability/pkg/psqlbuilder"
)

func TestRepositoryGetByDate(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "snapshots.sqlite3"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, schema.EnsureSQLite(ctx, db))

	_, err = db.Exec(`
		INSERT INTO court_availability_snapshots (court_id, snapshot_date, captured_at, title, address, available_dates, google_map_url)
		VALUES
			(1, '2025-01-15', '2025-01-15 08:00:00', 'Court A', NULL, '2025-01-15 09:00:00-10:00:00', NULL),
			(1, '2025-01-15', '2025-01-15 12:00:00', 'Court A', NULL, '2025-01-15 13:00:00-14:00:00', NULL),
			(2, '2025-01-15', '2025-01-15 08:00:00', NULL, '1 Main St', NULL, 'https://maps.example/2'),
			(1, '2025-01-16', '2025-01-16 08:00:00', 'Court A', NULL, '', NULL)
	`)
	require.NoError(t, err)

	repo := NewRepository(db, psqlbuilder.DriverSQLite)

	got, err := repo.GetByDate(ctx, "2025-01-15")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, int64(1), got[0].CourtID)
	assert.Equal(t, "2025-01-15", got[0].SnapshotDate)
	assert.True(t, got[0].CapturedAt.Equal(time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)))
	require.NotNil(t, got[1].AvailableDatesRaw)
	assert.Equal(t, "2025-01-15 13:00:00-14:00:00", *got[1].AvailableDatesRaw)

	assert.Nil(t, got[2].Title)
	assert.Nil(t, got[2].AvailableDatesRaw)
	require.NotNil(t, got[2].Address)
	assert.Equal(t, "1 Main St", *got[2].Address)

	none, err := repo.GetByDate(ctx, "2024-12-31")
	require.NoError(t, err)
	assert.Empty(t, none)
}
