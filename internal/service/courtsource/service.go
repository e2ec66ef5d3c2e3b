// Package courtsource picks the data source for a date and returns court rows
// in the shape the aggregator expects.
package courtsource

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
	"github.com/m04kA/SMC-CourtAvailability/internal/service/availability"
)

// Service источник строк кортов для даты
type Service struct {
	courtRepo    CourtRepository
	snapshotRepo SnapshotRepository
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса.
// location задает часовой пояс, в котором определяется "сегодня"; nil означает UTC.
func NewService(
	courtRepo CourtRepository,
	snapshotRepo SnapshotRepository,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		courtRepo:    courtRepo,
		snapshotRepo: snapshotRepo,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// ParseDate проверяет, что строка это реальная календарная дата YYYY-MM-DD
func ParseDate(raw string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, raw, err)
	}
	return date, nil
}

// Today текущая дата в часовом поясе сервиса
func (s *Service) Today() string {
	return s.timeProvider.Now().In(s.location).Format(domain.DateFormat)
}

// Yesterday вчерашняя дата в часовом поясе сервиса
func (s *Service) Yesterday() string {
	return s.timeProvider.Now().In(s.location).AddDate(0, 0, -1).Format(domain.DateFormat)
}

// SourceFor возвращает источник данных для даты (YYYY-MM-DD).
// Сегодня и будущие даты читаются из живой таблицы, прошлые из снимков.
func (s *Service) SourceFor(date string) domain.DataSource {
	if date < s.Today() {
		return domain.SourceHistorical
	}
	return domain.SourceLive
}

// Load возвращает строки кортов для даты и источник, из которого они получены
func (s *Service) Load(ctx context.Context, date string) ([]domain.CourtRecord, domain.DataSource, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, "", err
	}

	source := s.SourceFor(date)
	if source == domain.SourceLive {
		courts, err := s.courtRepo.GetAll(ctx)
		if err != nil {
			s.logger.Error("Load: failed to get live courts for date=%s: %v", date, err)
			return nil, source, fmt.Errorf("%w: Load - live courts: %v", ErrInternal, err)
		}
		s.logger.Info("Load: date=%s source=%s courts=%d", date, source, len(courts))
		return courts, source, nil
	}

	courts, err := s.loadHistorical(ctx, date)
	if err != nil {
		s.logger.Error("Load: failed to get historical courts for date=%s: %v", date, err)
		return nil, source, fmt.Errorf("%w: Load - historical courts: %v", ErrInternal, err)
	}
	s.logger.Info("Load: date=%s source=%s courts=%d", date, source, len(courts))

	return courts, source, nil
}

// loadHistorical запрашивает снимки и текущие удобства параллельно
func (s *Service) loadHistorical(ctx context.Context, date string) ([]domain.CourtRecord, error) {
	var (
		snapshots []domain.CourtSnapshot
		current   map[int64]domain.CourtRecord
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		snapshots, err = s.snapshotRepo.GetByDate(gctx, date)
		if err != nil {
			return fmt.Errorf("snapshots: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		current, err = s.courtRepo.GetCurrentByID(gctx)
		if err != nil {
			return fmt.Errorf("current amenities: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	missing := 0
	for _, snap := range snapshots {
		if _, ok := current[snap.CourtID]; !ok {
			missing++
		}
	}
	if missing > 0 {
		s.logger.Warn("loadHistorical: date=%s, %d snapshot rows have no current court, amenities default to false", date, missing)
	}

	return availability.MergeHistorical(snapshots, current), nil
}
