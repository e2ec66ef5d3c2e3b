package get_facility_map

import (
	"context"

	getAvailability "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_availability"
)

// AvailabilityProvider интерфейс получения сводки доступности (с кэшем прошлых дат)
type AvailabilityProvider interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
