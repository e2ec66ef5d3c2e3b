package get_court_timeline

import (
	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
	"github.com/m04kA/SMC-CourtAvailability/pkg/types"
)

// Request модель запроса почасовой сетки
type Request struct {
	Date     string // Дата YYYY-MM-DD
	Facility string // Необязательный фильтр: нормализованное или отображаемое имя площадки
}

// Response модель ответа с сеткой по кортам
type Response struct {
	Date   string                 // Запрошенная дата
	Source domain.DataSource      // live или historical
	Labels []types.TimeLabel      // Метки часов, общие для всех кортов
	Courts []domain.CourtTimeline // Сетки кортов, по площадке и названию
}
