package snapshots

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
	"github.com/m04kA/SMC-CourtAvailability/internal/infra/storage/dbutil"
	"github.com/m04kA/SMC-CourtAvailability/pkg/psqlbuilder"
)

const tableSnapshots = "court_availability_snapshots"

// Repository репозиторий исторических снимков расписания
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория снимков
func NewRepository(db DBExecutor, driver string) *Repository {
	return &Repository{
		db: db,
		sb: psqlbuilder.ForDriver(driver),
	}
}

// GetByDate получает все снимки за дату (YYYY-MM-DD).
// Несколько снимков одного корта возвращаются как есть; выбор последнего
// делает слой выше по captured_at.
func (r *Repository) GetByDate(ctx context.Context, date string) ([]domain.CourtSnapshot, error) {
	query, args, err := r.sb.Select(
		"court_id",
		"snapshot_date",
		"captured_at",
		"title",
		"address",
		"available_dates",
		"google_map_url",
	).
		From(tableSnapshots).
		Where(squirrel.Eq{"snapshot_date": date}).
		OrderBy("court_id", "captured_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.CourtSnapshot, 0)
	for rows.Next() {
		var (
			s                                      domain.CourtSnapshot
			snapshotDate, capturedAt               dbutil.FlexTime
			title, address, availableDates, mapURL sql.NullString
		)

		if err := rows.Scan(
			&s.CourtID,
			&snapshotDate,
			&capturedAt,
			&title,
			&address,
			&availableDates,
			&mapURL,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan snapshot: %v", ErrScanRow, err)
		}

		s.SnapshotDate = date
		if snapshotDate.Valid {
			s.SnapshotDate = snapshotDate.Time.Format(domain.DateFormat)
		}
		s.CapturedAt = capturedAt.Time
		s.Title = dbutil.StringPtr(title)
		s.Address = dbutil.StringPtr(address)
		s.AvailableDatesRaw = dbutil.StringPtr(availableDates)
		s.MapURL = dbutil.StringPtr(mapURL)

		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}
