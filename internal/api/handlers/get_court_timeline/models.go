package get_court_timeline

import (
	getCourtTimeline "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_court_timeline"
)

// TimelineResponse HTTP response model
type TimelineResponse struct {
	Date   string          `json:"date"`
	Source string          `json:"source"`
	Labels []string        `json:"labels"`
	Courts []CourtTimeline `json:"courts"`
}

// CourtTimeline почасовая сетка корта
type CourtTimeline struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Facility string `json:"facility"`
	Slots    []Slot `json:"slots"`
}

// Slot статус часа: full, first_half, second_half или none
type Slot struct {
	Label  string `json:"label"`
	Status string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCourtTimeline.Response) *TimelineResponse {
	labels := make([]string, len(resp.Labels))
	for i, l := range resp.Labels {
		labels[i] = l.String()
	}

	courts := make([]CourtTimeline, len(resp.Courts))
	for i, c := range resp.Courts {
		slots := make([]Slot, len(c.Slots))
		for j, s := range c.Slots {
			slots[j] = Slot{Label: s.Label.String(), Status: string(s.Status)}
		}
		courts[i] = CourtTimeline{
			ID:       c.CourtID,
			Title:    c.Title,
			Facility: c.Facility,
			Slots:    slots,
		}
	}

	return &TimelineResponse{
		Date:   resp.Date,
		Source: string(resp.Source),
		Labels: labels,
		Courts: courts,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(date, facility string) *getCourtTimeline.Request {
	return &getCourtTimeline.Request{
		Date:     date,
		Facility: facility,
	}
}
