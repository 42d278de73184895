package venues

import (
	"errors"
	"fmt"
	"net/http"

	"venueplan/internal/drafts"
	"venueplan/internal/layout"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func parseEventID(id string) (uuid.UUID, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrInvalidEventID, id)
	}
	return eventID, nil
}

// confirmWith answers every prompt with accept and records the last reason asked.
func confirmWith(accept bool, asked *layout.ConfirmReason) layout.Confirm {
	return func(reason layout.ConfirmReason) bool {
		*asked = reason
		return accept
	}
}

func outcomeError(o layout.Outcome, asked layout.ConfirmReason) error {
	switch o {
	case layout.OutcomeNotFound:
		return layout.ErrZoneNotFound
	case layout.OutcomeDeclined:
		return &ConfirmationError{Reason: asked}
	case layout.OutcomeUnsupported:
		return ErrUnsupportedEdit
	}
	return nil
}

func statsOf(snap layout.Snapshot) LayoutStats {
	st := LayoutStats{Zones: len(snap.Zones), Seats: len(snap.Seats)}
	for _, seat := range snap.Seats {
		switch seat.Status {
		case layout.SeatStatusBlocked:
			st.BlockedSeats++
		case layout.SeatStatusSold:
			st.SoldSeats++
		default:
			st.AvailableSeats++
		}
	}
	for _, z := range snap.Zones {
		if z.Type == layout.ZoneTypeSale {
			st.GeneralAdmission += z.Capacity
		}
	}
	return st
}

// cloneWithFreshIDs copies a template layout for a new event. Zone and seat ids are
// regenerated and every seat starts out AVAILABLE.
func cloneWithFreshIDs(snap layout.Snapshot, newID func() string) layout.Snapshot {
	out := snap.Clone()
	zoneIDs := make(map[string]string, len(out.Zones))
	for i := range out.Zones {
		id := newID()
		zoneIDs[out.Zones[i].ID] = id
		out.Zones[i].ID = id
	}
	for i := range out.Seats {
		out.Seats[i].ID = newID()
		out.Seats[i].ZoneID = zoneIDs[out.Seats[i].ZoneID]
		out.Seats[i].Status = layout.SeatStatusAvailable
	}
	return out
}

// withImportDefaults fills the enums older exports leave empty.
func withImportDefaults(snap layout.Snapshot) layout.Snapshot {
	out := snap.Clone()
	for i := range out.Zones {
		if out.Zones[i].Type == "" {
			out.Zones[i].Type = layout.ZoneTypeSale
		}
		out.Zones[i].Numbering = out.Zones[i].Numbering.Normalize()
	}
	for i := range out.Seats {
		if out.Seats[i].Status == "" {
			out.Seats[i].Status = layout.SeatStatusAvailable
		}
		if out.Seats[i].Type == "" {
			out.Seats[i].Type = layout.SeatTypeRegular
		}
	}
	return out
}

type zoneCheck struct {
	ID     string  `validate:"required,max=64"`
	Type   string  `validate:"oneof=SALE INFO STAGE"`
	Width  float64 `validate:"gte=0"`
	Height float64 `validate:"gte=0"`
	Rows   int     `validate:"gte=0,lte=500"`
	Cols   int     `validate:"gte=0,lte=500"`
}

type seatCheck struct {
	ID     string `validate:"required,max=64"`
	ZoneID string `validate:"required,max=64"`
	Status string `validate:"oneof=AVAILABLE BLOCKED SOLD"`
	Type   string `validate:"oneof=REGULAR VIP ACCESSIBLE"`
}

// validateSnapshot checks an externally supplied layout before it replaces a session.
// Seats without an address are accepted here; legacy ids are backfilled afterwards and
// requireAddresses rejects whatever is still unaddressed.
func validateSnapshot(v *validator.Validate, snap layout.Snapshot) error {
	zones := make(map[string]bool, len(snap.Zones))
	for _, z := range snap.Zones {
		if err := v.Struct(zoneCheck{ID: z.ID, Type: string(z.Type), Width: z.Layout.Width,
			Height: z.Layout.Height, Rows: z.Rows, Cols: z.Cols}); err != nil {
			return fmt.Errorf("%w: zone %q: %v", ErrInvalidRequest, z.ID, err)
		}
		if zones[z.ID] {
			return fmt.Errorf("%w: duplicate zone id %q", ErrInvalidRequest, z.ID)
		}
		zones[z.ID] = true
	}

	seen := make(map[string]bool, len(snap.Seats))
	cells := make(map[string]bool, len(snap.Seats))
	for _, s := range snap.Seats {
		if err := v.Struct(seatCheck{ID: s.ID, ZoneID: s.ZoneID, Status: string(s.Status), Type: string(s.Type)}); err != nil {
			return fmt.Errorf("%w: seat %q: %v", ErrInvalidRequest, s.ID, err)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate seat id %q", ErrInvalidRequest, s.ID)
		}
		seen[s.ID] = true
		if !zones[s.ZoneID] {
			return fmt.Errorf("%w: seat %q references unknown zone %q", ErrInvalidRequest, s.ID, s.ZoneID)
		}
		if c, ok := s.Cell(); ok {
			key := fmt.Sprintf("%s/%d/%d", s.ZoneID, c.Row, c.Col)
			if cells[key] {
				return fmt.Errorf("%w: two seats at row %d col %d of zone %q", ErrInvalidRequest, c.Row, c.Col, s.ZoneID)
			}
			cells[key] = true
		}
	}
	return nil
}

// requireAddresses rejects seats that have neither a grid cell nor a point, which
// is what is left of an unaddressed seat after legacy migration.
func requireAddresses(snap layout.Snapshot) error {
	for _, seat := range snap.Seats {
		if seat.Address == nil {
			return fmt.Errorf("%w: seat %q has no grid cell or position", ErrInvalidRequest, seat.ID)
		}
	}
	return nil
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidEventID),
		errors.Is(err, ErrInvalidTemplateID),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, layout.ErrUnknownStrategy):
		return http.StatusBadRequest
	case errors.Is(err, layout.ErrZoneNotFound),
		errors.Is(err, layout.ErrSeatNotFound),
		errors.Is(err, ErrTemplateNotFound),
		errors.Is(err, drafts.ErrNoDraft):
		return http.StatusNotFound
	case errors.Is(err, ErrConfirmationRequired),
		errors.Is(err, ErrTemplateNameTaken),
		errors.Is(err, layout.ErrGestureInProgress),
		errors.Is(err, layout.ErrNoGesture):
		return http.StatusConflict
	case errors.Is(err, ErrUnsupportedEdit),
		errors.Is(err, layout.ErrNotFreeform),
		errors.Is(err, layout.ErrMixedSelection):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
