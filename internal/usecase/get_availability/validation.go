package get_availability

import (
	"fmt"

	"github.com/m04kA/SMC-CourtAvailability/internal/service/courtsource"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil || req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if _, err := courtsource.ParseDate(req.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return nil
}
