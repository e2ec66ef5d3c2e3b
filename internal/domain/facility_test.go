package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacilityTable(t *testing.T) {
	entries := []FacilityEntry{
		{Name: "B", Coordinates: Coordinates{Lat: 2, Lon: 2}},
		{Name: "A", Coordinates: Coordinates{Lat: 1, Lon: 1}},
		{Name: "B", Coordinates: Coordinates{Lat: 9, Lon: 9}},
	}
	table := NewFacilityTable(entries, map[string]string{"A": "Alpha"})

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []FacilityEntry{entries[0], entries[1]}, table.Entries())

	coords, ok := table.Lookup("B")
	assert.True(t, ok)
	assert.Equal(t, Coordinates{Lat: 2, Lon: 2}, coords)

	_, ok = table.Lookup("C")
	assert.False(t, ok)

	display, ok := table.DisplayName("A")
	assert.True(t, ok)
	assert.Equal(t, "Alpha", display)

	// the table does not alias caller data
	entries[0].Name = "mutated"
	got := table.Entries()
	got[1].Name = "mutated"
	assert.Equal(t, "B", table.Entries()[0].Name)
	assert.Equal(t, "A", table.Entries()[1].Name)
}
