package get_court_timeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
	"github.com/m04kA/SMC-CourtAvailability/internal/service/availability"
	"github.com/m04kA/SMC-CourtAvailability/internal/service/facilities"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSource struct {
	courts []domain.CourtRecord
	err    error
}

func (f *fakeSource) Load(context.Context, string) ([]domain.CourtRecord, domain.DataSource, error) {
	return f.courts, domain.SourceLive, f.err
}

func newUseCase(source CourtSource) *UseCase {
	table := domain.NewFacilityTable([]domain.FacilityEntry{
		{Name: "Jefferson Park", Coordinates: domain.Coordinates{Lat: 47.5703, Lon: -122.3105}},
		{Name: "Volunteer Park", Coordinates: domain.Coordinates{Lat: 47.6302, Lon: -122.3158}},
	}, map[string]string{"Jefferson Park": "Jefferson Park Lid"})
	return NewUseCase(source, availability.NewAggregator(facilities.NewResolver(table)), nopLogger{})
}

func statuses(slots []domain.TimelineSlot) map[string]domain.SlotStatus {
	out := make(map[string]domain.SlotStatus, len(slots))
	for _, s := range slots {
		out[string(s.Label)] = s.Status
	}
	return out
}

func TestExecute(t *testing.T) {
	source := &fakeSource{courts: []domain.CourtRecord{
		{ID: 2, Title: "Volunteer Park Court 1", AvailableDatesRaw: "2025-01-15 09:30:00-11:00:00"},
		{ID: 1, Title: "Jefferson Park Lid Tennis Court 1", AvailableDatesRaw: "2025-01-15 07:00:00-08:00:00\n2025-01-16 09:00:00-10:00:00"},
	}}
	uc := newUseCase(source)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-01-15"})
	require.NoError(t, err)

	assert.Len(t, resp.Labels, 16)
	require.Len(t, resp.Courts, 2)

	jefferson := resp.Courts[0]
	assert.Equal(t, "Jefferson Park Lid", jefferson.Facility)
	st := statuses(jefferson.Slots)
	assert.Equal(t, domain.SlotFull, st["7:00 AM"])
	assert.Equal(t, domain.SlotNone, st["9:00 AM"], "other dates never leak into the grid")

	volunteer := statuses(resp.Courts[1].Slots)
	assert.Equal(t, domain.SlotSecondHalf, volunteer["9:00 AM"])
	assert.Equal(t, domain.SlotFull, volunteer["10:00 AM"])
	assert.Equal(t, domain.SlotNone, volunteer["11:00 AM"])
}

func TestExecuteFacilityFilter(t *testing.T) {
	source := &fakeSource{courts: []domain.CourtRecord{
		{ID: 1, Title: "Volunteer Park Court 1"},
		{ID: 2, Title: "Jefferson Park Lid Tennis Court 1"},
	}}
	uc := newUseCase(source)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-01-15", Facility: " Jefferson Park Lid "})
	require.NoError(t, err)
	require.Len(t, resp.Courts, 1)
	assert.Equal(t, int64(2), resp.Courts[0].CourtID)

	_, err = uc.Execute(context.Background(), &Request{Date: "2025-01-15", Facility: "Green Lake"})
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecuteErrors(t *testing.T) {
	uc := newUseCase(&fakeSource{err: errors.New("timeout")})

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-01-15"})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = uc.Execute(context.Background(), &Request{Date: "2025-15-01"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
