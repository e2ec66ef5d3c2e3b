package facilitytable

import "errors"

var (
	// ErrReadFile возвращается, когда файл таблицы не удалось прочитать
	ErrReadFile = errors.New("facilitytable: failed to read file")

	// ErrInvalidTable возвращается при некорректном содержимом таблицы
	ErrInvalidTable = errors.New("facilitytable: invalid table")

	// ErrCoordinateConflict возвращается, когда одно имя встречается с разными координатами
	ErrCoordinateConflict = errors.New("facilitytable: conflicting coordinates")
)
