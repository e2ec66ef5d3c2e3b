package get_facility_map

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtAvailability/internal/api/handlers"
	getFacilityMap "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_facility_map"
)

const msgInvalidDate = "некорректная дата, ожидается YYYY-MM-DD"

type Handler struct {
	useCase GetFacilityMapUseCase
	today   TodayProvider
	logger  Logger
}

func NewHandler(useCase GetFacilityMapUseCase, today TodayProvider, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		today:   today,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities
// Query params: date (optional, YYYY-MM-DD, default today)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.today.Today()
	}

	result, err := h.useCase.Execute(r.Context(), &getFacilityMap.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getFacilityMap.ErrInvalidDate):
			h.logger.Warn("GET /facilities - Invalid date: date=%q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /facilities - Failed to get facility map: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /facilities - Facility map retrieved successfully: date=%s, markers=%d", date, len(result.Markers))
	handlers.RespondJSON(w, http.StatusOK, response)
}
