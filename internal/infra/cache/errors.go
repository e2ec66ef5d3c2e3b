package cache

import "errors"

var (
	// ErrOpen возвращается при ошибке открытия файла кэша
	ErrOpen = errors.New("cache: failed to open store")

	// ErrRead возвращается при ошибке чтения записи
	ErrRead = errors.New("cache: failed to read entry")

	// ErrWrite возвращается при ошибке записи
	ErrWrite = errors.New("cache: failed to write entry")
)
