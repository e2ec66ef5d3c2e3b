package get_facility_map

import (
	"context"

	getFacilityMap "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_facility_map"
)

type GetFacilityMapUseCase interface {
	Execute(ctx context.Context, req *getFacilityMap.Request) (*getFacilityMap.Response, error)
}

// TodayProvider текущая дата сервиса, если date не передана
type TodayProvider interface {
	Today() string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
