// Package facilities groups courts into physical facilities and resolves
// their coordinates and display names from an injected lookup table.
package facilities

import (
	"strings"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
)

// Resolver resolves facility names against an immutable lookup table.
// Safe for concurrent use.
type Resolver struct {
	table *domain.FacilityTable
}

// NewResolver creates a resolver over the given table
func NewResolver(table *domain.FacilityTable) *Resolver {
	if table == nil {
		table = domain.NewFacilityTable(nil, nil)
	}
	return &Resolver{table: table}
}

// FindCoords looks up coordinates for a normalized facility name.
// Exact match first, then a prefix match in either direction walking the
// table in declared order; first hit wins.
func (r *Resolver) FindCoords(name string) (domain.Coordinates, bool) {
	if name == "" {
		return domain.Coordinates{}, false
	}

	if coords, ok := r.table.Lookup(name); ok {
		return coords, true
	}

	for _, entry := range r.table.Entries() {
		if strings.HasPrefix(entry.Name, name) || strings.HasPrefix(name, entry.Name) {
			return entry.Coordinates, true
		}
	}

	return domain.Coordinates{}, false
}

// DisplayName returns the display name for a facility, or the name unchanged
func (r *Resolver) DisplayName(name string) string {
	if display, ok := r.table.DisplayName(name); ok {
		return display
	}
	return name
}

// Group is courts sharing one normalized facility name
type Group struct {
	Key     string
	Address string
	Courts  []domain.CourtRecord
}

// Group assigns every court to exactly one group keyed by ExtractParkName.
// The address comes from the first court that populated the group.
// Groups are returned in first-seen order.
func (r *Resolver) Group(courts []domain.CourtRecord) []*Group {
	groups := make([]*Group, 0)
	byKey := make(map[string]*Group)

	for _, court := range courts {
		key := ExtractParkName(court.Title)

		g, ok := byKey[key]
		if !ok {
			g = &Group{
				Key:     key,
				Address: court.AddressOrEmpty(),
			}
			byKey[key] = g
			groups = append(groups, g)
		}

		g.Courts = append(g.Courts, court)
	}

	return groups
}
