package courtsource

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
)

// CourtRepository интерфейс "живой" таблицы кортов
type CourtRepository interface {
	GetAll(ctx context.Context) ([]domain.CourtRecord, error)
	GetCurrentByID(ctx context.Context) (map[int64]domain.CourtRecord, error)
}

// SnapshotRepository интерфейс репозитория исторических снимков
type SnapshotRepository interface {
	GetByDate(ctx context.Context, date string) ([]domain.CourtSnapshot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
