package get_availability

import (
	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
	getAvailability "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date       string     `json:"date"`
	Source     string     `json:"source"`
	Cached     bool       `json:"cached"`
	Facilities []Facility `json:"facilities"`
}

// Facility сводка по площадке
type Facility struct {
	Name           string      `json:"name"`
	Address        string      `json:"address"`
	Coordinates    Coordinates `json:"coordinates"`
	Courts         []Court     `json:"courts"`
	AvailableCount int         `json:"availableCount"`
	TotalCount     int         `json:"totalCount"`
	AvailableHours float64     `json:"availableHours"`
	Color          string      `json:"color"`
}

// Coordinates координаты площадки
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Court корт со свободными окнами на дату
type Court struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Address         *string    `json:"address"`
	Amenities       Amenities  `json:"amenities"`
	MapURL          *string    `json:"mapUrl"`
	Intervals       []Interval `json:"intervals"`
	HasAvailability bool       `json:"hasAvailability"`
	AvailableHours  float64    `json:"availableHours"`
}

// Amenities удобства корта
type Amenities struct {
	Lights          bool `json:"lights"`
	HittingWall     bool `json:"hittingWall"`
	PickleballLined bool `json:"pickleballLined"`
	BallMachine     bool `json:"ballMachine"`
}

// Interval свободное окно
type Interval struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	facilities := make([]Facility, len(resp.Facilities))
	for i, f := range resp.Facilities {
		facilities[i] = fromDomainFacility(f)
	}

	return &AvailabilityResponse{
		Date:       resp.Date,
		Source:     string(resp.Source),
		Cached:     resp.Cached,
		Facilities: facilities,
	}
}

func fromDomainFacility(f domain.Facility) Facility {
	courts := make([]Court, len(f.Courts))
	for i, c := range f.Courts {
		intervals := make([]Interval, len(c.Intervals))
		for j, iv := range c.Intervals {
			intervals[j] = Interval{
				Date:  iv.Date,
				Start: iv.Start.String(),
				End:   iv.End.String(),
			}
		}

		courts[i] = Court{
			ID:      c.Court.ID,
			Title:   c.Court.Title,
			Address: c.Court.Address,
			Amenities: Amenities{
				Lights:          c.Court.Amenities.Lights,
				HittingWall:     c.Court.Amenities.HittingWall,
				PickleballLined: c.Court.Amenities.PickleballLined,
				BallMachine:     c.Court.Amenities.BallMachine,
			},
			MapURL:          c.Court.MapURL,
			Intervals:       intervals,
			HasAvailability: c.HasAvailability,
			AvailableHours:  c.AvailableHours,
		}
	}

	return Facility{
		Name:           f.Name,
		Address:        f.Address,
		Coordinates:    Coordinates{Lat: f.Coordinates.Lat, Lon: f.Coordinates.Lon},
		Courts:         courts,
		AvailableCount: f.AvailableCount,
		TotalCount:     f.TotalCount,
		AvailableHours: f.AvailableHours,
		Color:          string(f.Color),
	}
}
