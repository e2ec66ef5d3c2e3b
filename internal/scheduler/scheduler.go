// Package scheduler precomputes yesterday's availability once a day so the
// first request for it is served from the cache.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	getAvailability "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_availability"
	"github.com/m04kA/SMC-CourtAvailability/pkg/metrics"
)

const runTimeout = 2 * time.Minute

// Warmer пересчитывает и кэширует доступность на дату
type Warmer interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

// DateProvider текущие даты в часовом поясе сервиса
type DateProvider interface {
	Yesterday() string
}

// Metrics интерфейс метрик прогрева
type Metrics interface {
	ObserveWarmup(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler cron-обертка над прогревом кэша
type Scheduler struct {
	c        *cron.Cron
	cronSpec string
	warmer   Warmer
	dates    DateProvider
	metrics  Metrics
	logger   Logger
}

// New создает планировщик; cronSpec в стандартном 5-полевом формате,
// исполняется в часовом поясе location
func New(
	cronSpec string,
	location *time.Location,
	warmer Warmer,
	dates DateProvider,
	metrics Metrics,
	logger Logger,
) (*Scheduler, error) {
	if location == nil {
		location = time.UTC
	}

	s := &Scheduler{
		c:        cron.New(cron.WithLocation(location)),
		cronSpec: cronSpec,
		warmer:   warmer,
		dates:    dates,
		metrics:  metrics,
		logger:   logger,
	}

	if _, err := s.c.AddFunc(cronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		_ = s.RunOnce(ctx)
	}); err != nil {
		return nil, fmt.Errorf("scheduler: invalid cron spec %q: %w", cronSpec, err)
	}

	return s, nil
}

// RunOnce пересчитывает вчерашний день и записывает его в кэш
func (s *Scheduler) RunOnce(ctx context.Context) error {
	date := s.dates.Yesterday()
	s.logger.Info("Scheduler tick: warming availability cache for date=%s", date)

	resp, err := s.warmer.Execute(ctx, &getAvailability.Request{Date: date, Refresh: true})
	if err != nil {
		s.logger.Error("Scheduler warmup failed for date=%s: %v", date, err)
		s.observe(metrics.ResultError)
		return err
	}

	s.observe(metrics.ResultSuccess)
	s.logger.Info("Scheduler warmup done: date=%s, facilities=%d", date, len(resp.Facilities))
	return nil
}

// Start запускает cron в фоне
func (s *Scheduler) Start() {
	s.logger.Info("Starting scheduler (cron=%s)", s.cronSpec)
	s.c.Start()
}

// Stop останавливает cron и ждет завершения текущего запуска
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.c.Stop().Done():
	case <-ctx.Done():
		s.logger.Error("Scheduler stop timed out: %v", ctx.Err())
	}
}

// Entries количество зарегистрированных заданий
func (s *Scheduler) Entries() int {
	return len(s.c.Entries())
}

func (s *Scheduler) observe(result string) {
	if s.metrics != nil {
		s.metrics.ObserveWarmup(result)
	}
}
