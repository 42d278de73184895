package venues

import (
	"time"

	"venueplan/internal/layout"
	"venueplan/internal/numbering"
)

type LayoutResponse struct {
	EventID  string        `json:"event_id"`
	Version  uint64        `json:"version"`
	Zones    []layout.Zone `json:"zones"`
	Seats    []layout.Seat `json:"seats"`
	Stats    LayoutStats   `json:"stats"`
	HasDraft bool          `json:"has_draft"`
}

type LayoutStats struct {
	Zones            int `json:"zones"`
	Seats            int `json:"seats"`
	AvailableSeats   int `json:"available_seats"`
	BlockedSeats     int `json:"blocked_seats"`
	SoldSeats        int `json:"sold_seats"`
	GeneralAdmission int `json:"general_admission"`
}

type SaveLayoutResponse struct {
	LayoutResponse
	// Stale is set when the layout was edited while the save was in flight.
	// The edits are kept and the persisted copy is behind them.
	Stale bool `json:"stale"`
}

type ZoneResponse struct {
	EventID string        `json:"event_id"`
	Version uint64        `json:"version"`
	Zone    layout.Zone   `json:"zone"`
	Seats   []layout.Seat `json:"seats"`
}

type GestureResponse struct {
	ZoneID  string              `json:"zone_id"`
	State   layout.GestureState `json:"state"`
	Layout  layout.Rect         `json:"layout"`
	Guides  []layout.Guide      `json:"guides,omitempty"`
	Version uint64              `json:"version"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SeatGestureResponse struct {
	Positions map[string]Position `json:"positions"`
	Version   uint64              `json:"version"`
}

type DeleteSeatsResponse struct {
	Removed int           `json:"removed"`
	Seats   []layout.Seat `json:"seats"`
	Version uint64        `json:"version"`
}

type DraftResponse struct {
	EventID string          `json:"event_id"`
	Version uint64          `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	Zones   int             `json:"zones"`
	Seats   int             `json:"seats"`
	Layout  layout.Snapshot `json:"layout"`
}

type TemplateSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Zones       int       `json:"zones"`
	Seats       int       `json:"seats"`
	CreatedAt   time.Time `json:"created_at"`
}

type TemplateResponse struct {
	TemplateSummary
	Layout layout.Snapshot `json:"layout"`
}

type PaginatedTemplates struct {
	Templates  []TemplateSummary `json:"templates"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

type NumberingPreviewResponse struct {
	Rows      int                 `json:"rows"`
	Cols      int                 `json:"cols"`
	Preset    string              `json:"preset"`
	Numbering numbering.Config    `json:"numbering"`
	Labels    [][]numbering.Label `json:"labels"`
}
