package domain

// Coordinates approximate geographic position of a facility
type Coordinates struct {
	Lat float64
	Lon float64
}

// FacilityEntry is one row of the facility lookup table
type FacilityEntry struct {
	Name        string
	Coordinates Coordinates
}

// FacilityTable is immutable lookup configuration for facilities.
// Entries keep their declared order: the prefix fallback of the coordinate
// lookup walks them in that order and the first hit wins.
type FacilityTable struct {
	entries      []FacilityEntry
	index        map[string]int
	displayNames map[string]string
}

// NewFacilityTable builds a table from ordered entries and a display-name map.
// Later duplicates of a name are ignored. Both arguments are copied.
func NewFacilityTable(entries []FacilityEntry, displayNames map[string]string) *FacilityTable {
	t := &FacilityTable{
		entries:      make([]FacilityEntry, 0, len(entries)),
		index:        make(map[string]int, len(entries)),
		displayNames: make(map[string]string, len(displayNames)),
	}

	for _, e := range entries {
		if _, exists := t.index[e.Name]; exists {
			continue
		}
		t.index[e.Name] = len(t.entries)
		t.entries = append(t.entries, e)
	}

	for name, display := range displayNames {
		t.displayNames[name] = display
	}

	return t
}

// Entries returns a copy of the ordered entries
func (t *FacilityTable) Entries() []FacilityEntry {
	out := make([]FacilityEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup returns coordinates for an exact name
func (t *FacilityTable) Lookup(name string) (Coordinates, bool) {
	i, ok := t.index[name]
	if !ok {
		return Coordinates{}, false
	}
	return t.entries[i].Coordinates, true
}

// DisplayName returns the configured display name for a facility, if any
func (t *FacilityTable) DisplayName(name string) (string, bool) {
	display, ok := t.displayNames[name]
	return display, ok
}

// Len number of entries
func (t *FacilityTable) Len() int {
	return len(t.entries)
}

// CourtAvailability is a court bundled with its parsed intervals for one date
type CourtAvailability struct {
	Court           CourtRecord
	Intervals       []ParsedInterval
	HasAvailability bool
	AvailableHours  float64
}

// Facility is a physical park grouping one or more courts
type Facility struct {
	Key            string // normalized park name used for grouping
	Name           string // display name
	Address        string
	Coordinates    Coordinates
	Courts         []CourtAvailability
	AvailableCount int
	TotalCount     int
	AvailableHours float64
	Color          AvailabilityColor
}
