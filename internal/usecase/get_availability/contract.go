package get_availability

import (
	"context"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
	"github.com/m04kA/SMC-CourtAvailability/internal/service/availability"
)

// CourtSource интерфейс источника строк кортов для даты
type CourtSource interface {
	Load(ctx context.Context, date string) ([]domain.CourtRecord, domain.DataSource, error)
	SourceFor(date string) domain.DataSource
}

// Aggregator интерфейс агрегатора доступности
type Aggregator interface {
	Aggregate(courts []domain.CourtRecord, targetDate string) availability.Result
}

// Cache интерфейс кэша ответов для прошлых дат
type Cache interface {
	Get(key string, dest interface{}) (bool, error)
	Set(key string, value interface{}) error
}

// Metrics интерфейс метрик use case
type Metrics interface {
	ObserveCache(result string)
	ObserveAggregation(source string, served, unresolved int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
