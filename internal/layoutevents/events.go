package layoutevents

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventLayoutSaved   EventType = "layout.saved"
	EventTemplateSaved EventType = "template.saved"
)

// LayoutSaved is emitted after a layout has been persisted. Downstream consumers
// (ticket sale, statistics) re-read the layout; the message only carries totals.
type LayoutSaved struct {
	ID             uuid.UUID `json:"id"`
	Type           EventType `json:"type"`
	EventID        string    `json:"event_id"`
	Version        uint64    `json:"version"`
	Zones          int       `json:"zones"`
	Seats          int       `json:"seats"`
	AvailableSeats int       `json:"available_seats"`
	Stale          bool      `json:"stale"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// TemplateSaved is emitted after a layout template has been stored.
type TemplateSaved struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	TemplateID string    `json:"template_id"`
	Name       string    `json:"name"`
	Zones      int       `json:"zones"`
	Seats      int       `json:"seats"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *LayoutSaved) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func (e *TemplateSaved) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
