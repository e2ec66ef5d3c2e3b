package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
	"github.com/m04kA/SMC-CourtAvailability/internal/infra/cache"
	"github.com/m04kA/SMC-CourtAvailability/pkg/metrics"
)

// UseCase use case получения доступности площадок на дату
type UseCase struct {
	source     CourtSource
	aggregator Aggregator
	cache      Cache
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case.
// cache может быть nil, тогда прошлые даты пересчитываются каждый раз.
func NewUseCase(
	source CourtSource,
	aggregator Aggregator,
	cache Cache,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		source:     source,
		aggregator: aggregator,
		cache:      cache,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailability: date=%s, refresh=%t", req.Date, req.Refresh)

	// 2. Прошлые даты неизменны, пробуем кэш
	cacheable := uc.cache != nil && uc.source.SourceFor(req.Date) == domain.SourceHistorical
	if cacheable && !req.Refresh {
		if resp, ok := uc.fromCache(req.Date); ok {
			return resp, nil
		}
	}

	// 3. Получаем строки кортов из нужного источника
	courts, source, err := uc.source.Load(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load courts for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load courts: %v", ErrInternal, err)
	}

	// 4. Агрегируем по площадкам
	result := uc.aggregator.Aggregate(courts, req.Date)
	if len(result.Unresolved) > 0 {
		uc.logger.Warn("GetAvailability: date=%s, %d facilities without coordinates dropped: %v",
			req.Date, len(result.Unresolved), result.Unresolved)
	}
	uc.observeAggregation(source, len(result.Facilities), len(result.Unresolved))

	resp := &Response{
		Date:       req.Date,
		Source:     source,
		Facilities: result.Facilities,
	}

	// 5. Сохраняем в кэш; ошибка кэша не ломает ответ
	if cacheable {
		if err := uc.cache.Set(cache.AvailabilityKey(req.Date), resp); err != nil {
			uc.logger.Warn("GetAvailability: failed to cache date=%s: %v", req.Date, err)
		}
	}

	uc.logger.Info("GetAvailability: date=%s source=%s courts=%d facilities=%d",
		req.Date, source, len(courts), len(resp.Facilities))

	return resp, nil
}

func (uc *UseCase) fromCache(date string) (*Response, bool) {
	var cached Response
	found, err := uc.cache.Get(cache.AvailabilityKey(date), &cached)
	switch {
	case err != nil:
		uc.logger.Warn("GetAvailability: cache read failed for date=%s: %v", date, err)
		uc.observeCache(metrics.ResultError)
		return nil, false
	case !found:
		uc.observeCache(metrics.ResultMiss)
		return nil, false
	}

	uc.observeCache(metrics.ResultHit)
	uc.logger.Info("GetAvailability: date=%s served from cache (facilities=%d)", date, len(cached.Facilities))

	cached.Cached = true
	return &cached, true
}

func (uc *UseCase) observeCache(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveCache(result)
	}
}

func (uc *UseCase) observeAggregation(source domain.DataSource, served, unresolved int) {
	if uc.metrics != nil {
		uc.metrics.ObserveAggregation(string(source), served, unresolved)
	}
}
