package courtsource

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD или не существует
	ErrInvalidDate = errors.New("invalid date")

	// ErrInternal возвращается при ошибках источника данных
	ErrInternal = errors.New("courtsource: internal error")
)
