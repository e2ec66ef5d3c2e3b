package facilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
)

func strPtr(s string) *string { return &s }

func testTable() *domain.FacilityTable {
	return domain.NewFacilityTable(
		[]domain.FacilityEntry{
			{Name: "Jefferson Park", Coordinates: domain.Coordinates{Lat: 47.5707, Lon: -122.3106}},
			{Name: "Green Lake Park West", Coordinates: domain.Coordinates{Lat: 47.6801, Lon: -122.3428}},
			{Name: "Green Lake Park East", Coordinates: domain.Coordinates{Lat: 47.6816, Lon: -122.3259}},
			{Name: "Volunteer Park", Coordinates: domain.Coordinates{Lat: 47.6302, Lon: -122.3149}},
		},
		map[string]string{
			"Volunteer Park": "Volunteer Park (Capitol Hill)",
		},
	)
}

func TestResolverFindCoords(t *testing.T) {
	r := NewResolver(testTable())

	tests := []struct {
		name   string
		input  string
		want   domain.Coordinates
		wantOK bool
	}{
		{"exact match", "Jefferson Park", domain.Coordinates{Lat: 47.5707, Lon: -122.3106}, true},
		{"name is prefix of key, first entry wins", "Green Lake Park", domain.Coordinates{Lat: 47.6801, Lon: -122.3428}, true},
		{"key is prefix of name", "Volunteer Park Conservatory", domain.Coordinates{Lat: 47.6302, Lon: -122.3149}, true},
		{"exact beats prefix", "Green Lake Park East", domain.Coordinates{Lat: 47.6816, Lon: -122.3259}, true},
		{"unknown", "Totally Unknown Park", domain.Coordinates{}, false},
		{"empty name", "", domain.Coordinates{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.FindCoords(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolverDisplayName(t *testing.T) {
	r := NewResolver(testTable())

	assert.Equal(t, "Volunteer Park (Capitol Hill)", r.DisplayName("Volunteer Park"))
	assert.Equal(t, "Jefferson Park", r.DisplayName("Jefferson Park"))
	assert.Equal(t, "Nowhere", r.DisplayName("Nowhere"))
}

func TestResolverNilTable(t *testing.T) {
	r := NewResolver(nil)

	_, ok := r.FindCoords("Jefferson Park")
	assert.False(t, ok)
	assert.Equal(t, "Jefferson Park", r.DisplayName("Jefferson Park"))
}

func TestResolverGroup(t *testing.T) {
	r := NewResolver(testTable())

	courts := []domain.CourtRecord{
		{ID: 1, Title: "Jefferson Park Lid Tennis Court 1", Address: strPtr("3801 Beacon Ave S")},
		{ID: 2, Title: "Volunteer Park Upper Court 1", Address: nil},
		{ID: 3, Title: "Jefferson Park Lid Tennis Court 2", Address: strPtr("somewhere else")},
		{ID: 4, Title: "Volunteer Park Lower Court 1", Address: strPtr("1247 15th Ave E")},
	}

	groups := r.Group(courts)
	require.Len(t, groups, 2)

	assert.Equal(t, "Jefferson Park", groups[0].Key)
	assert.Equal(t, "3801 Beacon Ave S", groups[0].Address)
	require.Len(t, groups[0].Courts, 2)
	assert.Equal(t, int64(1), groups[0].Courts[0].ID)
	assert.Equal(t, int64(3), groups[0].Courts[1].ID)

	// first court had no address; first-wins keeps it empty
	assert.Equal(t, "Volunteer Park", groups[1].Key)
	assert.Equal(t, "", groups[1].Address)
	require.Len(t, groups[1].Courts, 2)
}

func TestResolverGroupAssignsEachCourtOnce(t *testing.T) {
	r := NewResolver(testTable())

	courts := []domain.CourtRecord{
		{ID: 1, Title: "Green Lake Park West Tennis Court 1"},
		{ID: 2, Title: "Green Lake Park West Tennis Court 2"},
		{ID: 3, Title: "Bitter Lake Playfield Court 1"},
		{ID: 4, Title: "Totally Unknown Park Court 1"},
	}

	seen := make(map[int64]int)
	for _, g := range r.Group(courts) {
		for _, c := range g.Courts {
			seen[c.ID]++
		}
	}

	assert.Len(t, seen, len(courts))
	for id, count := range seen {
		assert.Equal(t, 1, count, "court %d", id)
	}
}
