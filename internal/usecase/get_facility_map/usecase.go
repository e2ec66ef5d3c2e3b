package get_facility_map

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtAvailability/internal/service/availability"
	getAvailability "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_availability"
)

// UseCase use case получения маркеров площадок для карты.
// Цвет маркера считается по доле кортов со свободным временем,
// а не по доле свободных часов, как в сводке доступности.
type UseCase struct {
	availability AvailabilityProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityProvider, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		logger:       logger,
	}
}

// Execute выполняет use case получения маркеров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Date == "" {
		uc.logger.Warn("GetFacilityMap: validation failed: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	summary, err := uc.availability.Execute(ctx, &getAvailability.Request{Date: req.Date})
	if err != nil {
		if errors.Is(err, getAvailability.ErrInvalidDate) {
			uc.logger.Warn("GetFacilityMap: invalid date=%q: %v", req.Date, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		uc.logger.Error("GetFacilityMap: failed to get availability for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	markers := make([]Marker, len(summary.Facilities))
	for i, f := range summary.Facilities {
		markers[i] = Marker{
			Name:           f.Name,
			Address:        f.Address,
			Coordinates:    f.Coordinates,
			AvailableCount: f.AvailableCount,
			TotalCount:     f.TotalCount,
			Color:          availability.CountRatioColor(f.AvailableCount, f.TotalCount),
		}
	}

	uc.logger.Info("GetFacilityMap: date=%s markers=%d", req.Date, len(markers))

	return &Response{
		Date:    summary.Date,
		Source:  summary.Source,
		Markers: markers,
	}, nil
}
