package get_facility_map

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
	getAvailability "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_availability"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAvailability struct {
	resp *getAvailability.Response
	err  error
}

func (f *fakeAvailability) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	resp := *f.resp
	resp.Date = req.Date
	return &resp, nil
}

func TestExecuteUsesCountRatioColor(t *testing.T) {
	provider := &fakeAvailability{resp: &getAvailability.Response{
		Source: domain.SourceLive,
		Facilities: []domain.Facility{
			// hours color would be red (1h of 24h), count color is green (1 of 2)
			{Name: "Volunteer Park", AvailableCount: 1, TotalCount: 2, AvailableHours: 1, Color: domain.ColorRed},
			{Name: "Green Lake", AvailableCount: 1, TotalCount: 3, Color: domain.ColorRed},
			{Name: "Rainier Beach", AvailableCount: 0, TotalCount: 4, Color: domain.ColorRed},
		},
	}}
	uc := NewUseCase(provider, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-01-15"})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", resp.Date)
	require.Len(t, resp.Markers, 3)
	assert.Equal(t, domain.ColorGreen, resp.Markers[0].Color)
	assert.Equal(t, domain.ColorOrange, resp.Markers[1].Color)
	assert.Equal(t, domain.ColorRed, resp.Markers[2].Color)
}

func TestExecuteErrors(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{err: fmt.Errorf("%w: bad", getAvailability.ErrInvalidDate)}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{Date: "2025-02-30"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidDate)

	uc = NewUseCase(&fakeAvailability{err: errors.New("db down")}, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{Date: "2025-01-15"})
	assert.ErrorIs(t, err, ErrInternal)
}
