package get_court_timeline

import (
	"context"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
)

// CourtSource интерфейс источника строк кортов для даты
type CourtSource interface {
	Load(ctx context.Context, date string) ([]domain.CourtRecord, domain.DataSource, error)
}

// TimelineBuilder интерфейс построения почасовой сетки по кортам
type TimelineBuilder interface {
	Timelines(courts []domain.CourtRecord, targetDate, facilityKey string) []domain.CourtTimeline
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
