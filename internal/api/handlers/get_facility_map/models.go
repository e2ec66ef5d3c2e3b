package get_facility_map

import (
	getFacilityMap "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_facility_map"
)

// FacilityMapResponse HTTP response model
type FacilityMapResponse struct {
	Date       string   `json:"date"`
	Source     string   `json:"source"`
	Facilities []Marker `json:"facilities"`
}

// Marker маркер площадки
type Marker struct {
	Name           string      `json:"name"`
	Address        string      `json:"address"`
	Coordinates    Coordinates `json:"coordinates"`
	AvailableCount int         `json:"availableCount"`
	TotalCount     int         `json:"totalCount"`
	Color          string      `json:"color"`
}

// Coordinates координаты площадки
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFacilityMap.Response) *FacilityMapResponse {
	markers := make([]Marker, len(resp.Markers))
	for i, m := range resp.Markers {
		markers[i] = Marker{
			Name:           m.Name,
			Address:        m.Address,
			Coordinates:    Coordinates{Lat: m.Coordinates.Lat, Lon: m.Coordinates.Lon},
			AvailableCount: m.AvailableCount,
			TotalCount:     m.TotalCount,
			Color:          string(m.Color),
		}
	}

	return &FacilityMapResponse{
		Date:       resp.Date,
		Source:     string(resp.Source),
		Facilities: markers,
	}
}
