package get_court_timeline

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtAvailability/internal/service/availability"
)

// UseCase use case получения почасовой сетки кортов
type UseCase struct {
	source  CourtSource
	builder TimelineBuilder
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(source CourtSource, builder TimelineBuilder, logger Logger) *UseCase {
	return &UseCase{
		source:  source,
		builder: builder,
		logger:  logger,
	}
}

// Execute выполняет use case получения сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCourtTimeline: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetCourtTimeline: date=%s, facility=%q", req.Date, req.Facility)

	// 2. Получаем строки кортов
	courts, source, err := uc.source.Load(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetCourtTimeline: failed to load courts for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load courts: %v", ErrInternal, err)
	}

	// 3. Строим сетку
	timelines := uc.builder.Timelines(courts, req.Date, req.Facility)
	if req.Facility != "" && len(timelines) == 0 {
		uc.logger.Warn("GetCourtTimeline: facility %q has no courts on date=%s", req.Facility, req.Date)
		return nil, ErrFacilityNotFound
	}

	uc.logger.Info("GetCourtTimeline: generated %d court timelines for date=%s", len(timelines), req.Date)

	return &Response{
		Date:   req.Date,
		Source: source,
		Labels: availability.TimeLabels(),
		Courts: timelines,
	}, nil
}
