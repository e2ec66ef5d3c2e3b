package get_availability

import (
	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
)

// Request модель запроса доступности на дату
type Request struct {
	Date string // Дата YYYY-MM-DD
	// Refresh пересчитывает ответ для прошлой даты, не читая кэш (запись в кэш остается)
	Refresh bool
}

// Response модель ответа со сводкой по площадкам
type Response struct {
	Date       string            // Запрошенная дата
	Source     domain.DataSource // live или historical
	Facilities []domain.Facility // Площадки с координатами, по имени
	Cached     bool              // Ответ прочитан из кэша
}
