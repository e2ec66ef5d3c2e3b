package get_court_timeline

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CourtAvailability/internal/service/courtsource"
)

// validateRequest валидирует и нормализует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil || req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if _, err := courtsource.ParseDate(req.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	req.Facility = strings.TrimSpace(req.Facility)

	return nil
}
