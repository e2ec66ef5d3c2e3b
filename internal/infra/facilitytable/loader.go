// Package facilitytable loads the facility coordinate and display-name table.
package facilitytable

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
)

//go:embed facilities.yaml
var defaultTable []byte

type fileEntry struct {
	Name        string  `yaml:"name"`
	Lat         float64 `yaml:"lat"`
	Lon         float64 `yaml:"lon"`
	DisplayName string  `yaml:"display_name"`
}

type tableFile struct {
	Facilities   []fileEntry       `yaml:"facilities"`
	DisplayNames map[string]string `yaml:"display_names"`
}

// Load читает таблицу из YAML файла; пустой путь - встроенная таблица
func Load(path string) (*domain.FacilityTable, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}

	return Parse(data)
}

// Default возвращает встроенную таблицу
func Default() (*domain.FacilityTable, error) {
	return Parse(defaultTable)
}

// Parse разбирает YAML и проверяет таблицу.
// Повтор имени с теми же координатами схлопывается, с другими - ошибка
// ErrCoordinateConflict со списком всех конфликтов.
func Parse(data []byte) (*domain.FacilityTable, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidTable, err)
	}

	if len(f.Facilities) == 0 {
		return nil, fmt.Errorf("%w: no facilities", ErrInvalidTable)
	}

	entries := make([]domain.FacilityEntry, 0, len(f.Facilities))
	seen := make(map[string]domain.Coordinates, len(f.Facilities))
	displayNames := make(map[string]string, len(f.DisplayNames)+len(f.Facilities))
	var conflicts []string

	for i, fe := range f.Facilities {
		name := strings.TrimSpace(fe.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidTable, i)
		}
		if fe.Lat < -90 || fe.Lat > 90 || fe.Lon < -180 || fe.Lon > 180 {
			return nil, fmt.Errorf("%w: %q has out of range coordinates (%f, %f)", ErrInvalidTable, name, fe.Lat, fe.Lon)
		}

		coords := domain.Coordinates{Lat: fe.Lat, Lon: fe.Lon}
		if prev, ok := seen[name]; ok {
			if prev != coords {
				conflicts = append(conflicts, fmt.Sprintf("%q: (%f, %f) vs (%f, %f)",
					name, prev.Lat, prev.Lon, coords.Lat, coords.Lon))
			}
			continue
		}
		seen[name] = coords
		entries = append(entries, domain.FacilityEntry{Name: name, Coordinates: coords})

		if display := strings.TrimSpace(fe.DisplayName); display != "" {
			displayNames[name] = display
		}
	}

	if len(conflicts) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrCoordinateConflict, strings.Join(conflicts, "; "))
	}

	for name, display := range f.DisplayNames {
		name, display = strings.TrimSpace(name), strings.TrimSpace(display)
		if name == "" || display == "" {
			continue
		}
		if inline, ok := displayNames[name]; ok && inline != display {
			return nil, fmt.Errorf("%w: %q has two display names: %q and %q", ErrInvalidTable, name, inline, display)
		}
		displayNames[name] = display
	}

	return domain.NewFacilityTable(entries, displayNames), nil
}
