package availability

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
	"github.com/m04kA/SMC-CourtAvailability/internal/service/facilities"
	"github.com/m04kA/SMC-CourtAvailability/internal/service/schedule"
)

// FacilityResolver resolves grouping, coordinates and display names
type FacilityResolver interface {
	Group(courts []domain.CourtRecord) []*facilities.Group
	FindCoords(name string) (domain.Coordinates, bool)
	DisplayName(name string) string
}

// Result aggregated availability for one date
type Result struct {
	Facilities []domain.Facility
	// Unresolved normalized names dropped for lack of coordinates
	Unresolved []string
}

// Aggregator builds per-facility availability summaries.
// Holds no mutable state; safe for concurrent use.
type Aggregator struct {
	resolver FacilityResolver
	tag      language.Tag
}

// NewAggregator creates an aggregator that sorts names by English collation
func NewAggregator(resolver FacilityResolver) *Aggregator {
	return &Aggregator{
		resolver: resolver,
		tag:      language.English,
	}
}

// Aggregate groups courts into facilities and summarizes availability on targetDate.
// Facilities without coordinates are dropped. Courts are sorted by title and
// facilities by name.
func (a *Aggregator) Aggregate(courts []domain.CourtRecord, targetDate string) Result {
	normalized := make([]domain.CourtRecord, len(courts))
	for i, court := range courts {
		if court.Title == "" {
			court.Title = domain.DefaultCourtTitle
		}
		normalized[i] = court
	}

	// collate.Collator keeps internal buffers, one per call
	col := collate.New(a.tag)

	result := Result{
		Facilities: make([]domain.Facility, 0),
		Unresolved: make([]string, 0),
	}

	for _, group := range a.resolver.Group(normalized) {
		coords, ok := a.resolver.FindCoords(group.Key)
		if !ok {
			result.Unresolved = append(result.Unresolved, group.Key)
			continue
		}

		facility := domain.Facility{
			Key:         group.Key,
			Name:        a.resolver.DisplayName(group.Key),
			Address:     group.Address,
			Coordinates: coords,
			Courts:      make([]domain.CourtAvailability, 0, len(group.Courts)),
			TotalCount:  len(group.Courts),
		}

		for _, court := range group.Courts {
			ca := Court(court, targetDate)
			if ca.HasAvailability {
				facility.AvailableCount++
			}
			facility.AvailableHours += ca.AvailableHours
			facility.Courts = append(facility.Courts, ca)
		}

		slices.SortStableFunc(facility.Courts, func(x, y domain.CourtAvailability) int {
			return col.CompareString(x.Court.Title, y.Court.Title)
		})

		facility.Color = HoursRatioColor(facility.AvailableHours, facility.TotalCount)
		result.Facilities = append(result.Facilities, facility)
	}

	slices.SortStableFunc(result.Facilities, func(x, y domain.Facility) int {
		return col.CompareString(x.Name, y.Name)
	})

	return result
}

// Court parses one court's schedule and summarizes it for targetDate.
// Intervals are filtered to the date.
func Court(court domain.CourtRecord, targetDate string) domain.CourtAvailability {
	intervals := schedule.FilterByDate(schedule.ParseIntervals(court.AvailableDatesRaw), targetDate)

	return domain.CourtAvailability{
		Court:           court,
		Intervals:       intervals,
		HasAvailability: HasAvailabilityForDate(intervals, targetDate),
		AvailableHours:  AvailableHoursForDate(intervals, targetDate),
	}
}

// Timelines computes slot statuses for every court on targetDate.
// facilityKey, when non-empty, keeps only courts of that facility (matched
// against the normalized or the display name). Sorted by facility then title.
func (a *Aggregator) Timelines(courts []domain.CourtRecord, targetDate, facilityKey string) []domain.CourtTimeline {
	col := collate.New(a.tag)
	timelines := make([]domain.CourtTimeline, 0, len(courts))

	for _, court := range courts {
		if court.Title == "" {
			court.Title = domain.DefaultCourtTitle
		}

		key := facilities.ExtractParkName(court.Title)
		display := a.resolver.DisplayName(key)
		if facilityKey != "" && facilityKey != key && facilityKey != display {
			continue
		}

		intervals := schedule.FilterByDate(schedule.ParseIntervals(court.AvailableDatesRaw), targetDate)
		timelines = append(timelines, domain.CourtTimeline{
			CourtID:  court.ID,
			Title:    court.Title,
			Facility: display,
			Slots:    Timeline(intervals),
		})
	}

	slices.SortStableFunc(timelines, func(x, y domain.CourtTimeline) int {
		if c := col.CompareString(x.Facility, y.Facility); c != 0 {
			return c
		}
		return col.CompareString(x.Title, y.Title)
	})

	return timelines
}
