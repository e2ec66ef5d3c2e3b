package domain

import "time"

// DefaultCourtTitle is used when the source row has no title
const DefaultCourtTitle = "Unknown Court"

// Amenities describes court features. Missing values default to false.
type Amenities struct {
	Lights          bool
	HittingWall     bool
	PickleballLined bool
	BallMachine     bool
}

// CourtRecord represents one physical court as supplied by a data source.
// Read-only snapshot; the core never mutates it.
type CourtRecord struct {
	ID                int64
	Title             string
	Address           *string
	AvailableDatesRaw string
	Amenities         Amenities
	MapURL            *string
}

// AddressOrEmpty returns the court address or "" when unknown
func (c *CourtRecord) AddressOrEmpty() string {
	if c.Address == nil {
		return ""
	}
	return *c.Address
}

// CourtSnapshot is one historical capture of a court's schedule
type CourtSnapshot struct {
	CourtID           int64
	SnapshotDate      string // YYYY-MM-DD
	CapturedAt        time.Time
	Title             *string
	Address           *string
	AvailableDatesRaw *string
	MapURL            *string
}

// DataSource tells where court rows came from
type DataSource string

const (
	SourceLive       DataSource = "live"
	SourceHistorical DataSource = "historical"
)
