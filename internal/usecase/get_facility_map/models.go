package get_facility_map

import (
	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
)

// Request модель запроса маркеров карты
type Request struct {
	Date string // Дата YYYY-MM-DD
}

// Response модель ответа с маркерами
type Response struct {
	Date    string
	Source  domain.DataSource
	Markers []Marker
}

// Marker площадка на карте
type Marker struct {
	Name           string
	Address        string
	Coordinates    domain.Coordinates
	AvailableCount int
	TotalCount     int
	Color          domain.AvailabilityColor // По доле кортов со свободным временем
}
