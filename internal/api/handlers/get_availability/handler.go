package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtAvailability/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_availability"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректная дата, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	if date == "" {
		h.logger.Warn("GET /availability/{date} - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /availability/{date} - Invalid date: date=%q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability/{date} - Failed to get availability: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability/{date} - Availability retrieved successfully: date=%s, source=%s, facilities=%d",
		date, result.Source, len(result.Facilities))
	handlers.RespondJSON(w, http.StatusOK, response)
}
