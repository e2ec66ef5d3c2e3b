package courts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
	"github.com/m04kA/SMC-CourtAvailability/internal/infra/storage/dbutil"
	"github.com/m04kA/SMC-CourtAvailability/pkg/psqlbuilder"
)

const tableCourts = "tennis_courts"

var courtColumns = []string{
	"id",
	"title",
	"address",
	"available_dates",
	"lights",
	"hitting_wall",
	"pickleball_lined",
	"ball_machine",
	"google_map_url",
}

// Repository репозиторий "живой" таблицы кортов
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor, driver string) *Repository {
	return &Repository{
		db: db,
		sb: psqlbuilder.ForDriver(driver),
	}
}

// GetAll получает все корты с текущим расписанием
func (r *Repository) GetAll(ctx context.Context) ([]domain.CourtRecord, error) {
	query, args, err := r.sb.Select(courtColumns...).
		From(tableCourts).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetAll", query, args)
}

// GetCurrentByID получает текущие данные всех кортов, проиндексированные по ID.
// Используется для исторических дат: расписание из снимка, удобства отсюда.
func (r *Repository) GetCurrentByID(ctx context.Context) (map[int64]domain.CourtRecord, error) {
	query, args, err := r.sb.Select(courtColumns...).
		From(tableCourts).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCurrentByID - build select query: %v", ErrBuildQuery, err)
	}

	courts, err := r.query(ctx, "GetCurrentByID", query, args)
	if err != nil {
		return nil, err
	}

	result := make(map[int64]domain.CourtRecord, len(courts))
	for _, c := range courts {
		result[c.ID] = c
	}

	return result, nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]domain.CourtRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	courts := make([]domain.CourtRecord, 0)
	for rows.Next() {
		court, err := scanCourt(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan court: %v", ErrScanRow, op, err)
		}
		courts = append(courts, court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}

	return courts, nil
}

func scanCourt(rows *sql.Rows) (domain.CourtRecord, error) {
	var (
		court                                        domain.CourtRecord
		title, address, availableDates, mapURL       sql.NullString
		lights, hittingWall, pickleball, ballMachine sql.NullBool
	)

	err := rows.Scan(
		&court.ID,
		&title,
		&address,
		&availableDates,
		&lights,
		&hittingWall,
		&pickleball,
		&ballMachine,
		&mapURL,
	)
	if err != nil {
		return domain.CourtRecord{}, err
	}

	court.Title = domain.DefaultCourtTitle
	if title.Valid && title.String != "" {
		court.Title = title.String
	}
	court.Address = dbutil.StringPtr(address)
	court.AvailableDatesRaw = availableDates.String
	court.MapURL = dbutil.StringPtr(mapURL)

	// NULL -> false
	court.Amenities = domain.Amenities{
		Lights:          lights.Bool,
		HittingWall:     hittingWall.Bool,
		PickleballLined: pickleball.Bool,
		BallMachine:     ballMachine.Bool,
	}

	return court, nil
}
