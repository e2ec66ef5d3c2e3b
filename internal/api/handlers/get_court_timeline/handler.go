package get_court_timeline

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtAvailability/internal/api/handlers"
	getCourtTimeline "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_court_timeline"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректная дата, ожидается YYYY-MM-DD"
	msgFacilityNotFound = "площадка не найдена"
)

type Handler struct {
	useCase GetCourtTimelineUseCase
	logger  Logger
}

func NewHandler(useCase GetCourtTimelineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{date}/timeline
// Query params: facility (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	if date == "" {
		h.logger.Warn("GET /availability/{date}/timeline - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	facility := r.URL.Query().Get("facility")

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(date, facility))
	if err != nil {
		switch {
		case errors.Is(err, getCourtTimeline.ErrInvalidDate):
			h.logger.Warn("GET /availability/{date}/timeline - Invalid date: date=%q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getCourtTimeline.ErrFacilityNotFound):
			h.logger.Warn("GET /availability/{date}/timeline - Facility not found: date=%s, facility=%q", date, facility)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		default:
			h.logger.Error("GET /availability/{date}/timeline - Failed to build timeline: date=%s, facility=%q, error=%v",
				date, facility, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability/{date}/timeline - Timeline retrieved successfully: date=%s, courts=%d",
		date, len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, response)
}
