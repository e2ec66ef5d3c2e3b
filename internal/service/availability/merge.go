package availability

import (
	"slices"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
)

// MergeHistorical builds court records for a past date.
//
// Schedule fields come from the snapshots; when a court has several snapshots
// the one with the latest CapturedAt wins regardless of slice order. Amenities
// and missing descriptive fields come from current, keyed by court id; a court
// absent from current gets all amenities false. Output is ordered by id.
func MergeHistorical(snapshots []domain.CourtSnapshot, current map[int64]domain.CourtRecord) []domain.CourtRecord {
	latest := make(map[int64]domain.CourtSnapshot, len(snapshots))
	for _, s := range snapshots {
		prev, ok := latest[s.CourtID]
		if !ok || s.CapturedAt.After(prev.CapturedAt) {
			latest[s.CourtID] = s
		}
	}

	courts := make([]domain.CourtRecord, 0, len(latest))
	for id, s := range latest {
		cur, hasCurrent := current[id]

		court := domain.CourtRecord{
			ID:      id,
			Title:   domain.DefaultCourtTitle,
			Address: s.Address,
			MapURL:  s.MapURL,
		}

		switch {
		case s.Title != nil && *s.Title != "":
			court.Title = *s.Title
		case hasCurrent && cur.Title != "":
			court.Title = cur.Title
		}

		if s.AvailableDatesRaw != nil {
			court.AvailableDatesRaw = *s.AvailableDatesRaw
		}

		if hasCurrent {
			court.Amenities = cur.Amenities
			if court.Address == nil {
				court.Address = cur.Address
			}
			if court.MapURL == nil {
				court.MapURL = cur.MapURL
			}
		}

		courts = append(courts, court)
	}

	slices.SortFunc(courts, func(x, y domain.CourtRecord) int {
		switch {
		case x.ID < y.ID:
			return -1
		case x.ID > y.ID:
			return 1
		default:
			return 0
		}
	})

	return courts
}
