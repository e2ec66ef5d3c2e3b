package get_court_timeline

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrFacilityNotFound возвращается, когда у площадки нет ни одного корта
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
