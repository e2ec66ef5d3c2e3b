package get_court_timeline

import (
	"context"

	getCourtTimeline "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_court_timeline"
)

type GetCourtTimelineUseCase interface {
	Execute(ctx context.Context, req *getCourtTimeline.Request) (*getCourtTimeline.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
