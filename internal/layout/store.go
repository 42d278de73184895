// Package layout owns the zones and seats of one venue plan and applies every edit
// to them: zone updates with seat reconciliation, mode conversion, seat deletion with
// renumbering, and the drag/resize/rotate geometry.
//
// A Store is not safe for concurrent use; callers serialize access.
package layout

import (
	"fmt"
	"strconv"

	"venueplan/internal/numbering"
)

type Store struct {
	opts    Options
	zones   []Zone
	seats   []Seat
	version uint64
}

// NewStore builds a store over a copy of snapshot.
func NewStore(snapshot Snapshot, opts Options) *Store {
	s := snapshot.Clone()
	return &Store{
		opts:  opts.withDefaults(),
		zones: s.Zones,
		seats: s.Seats,
	}
}

func (s *Store) Options() Options { return s.opts }

// Version increases on every committed edit.
func (s *Store) Version() uint64 { return s.version }

func (s *Store) bump() { s.version++ }

func (s *Store) Snapshot() Snapshot {
	return Snapshot{Zones: s.zones, Seats: s.seats}.Clone()
}

// Replace swaps the whole content, e.g. with the canonical form returned by a save.
func (s *Store) Replace(snapshot Snapshot) {
	c := snapshot.Clone()
	s.zones, s.seats = c.Zones, c.Seats
	s.bump()
}

func (s *Store) Zones() []Zone {
	out := make([]Zone, len(s.zones))
	copy(out, s.zones)
	return out
}

func (s *Store) Seats() []Seat {
	out := make([]Seat, len(s.seats))
	copy(out, s.seats)
	return out
}

func (s *Store) Zone(id string) (Zone, bool) {
	if i := s.zoneIndex(id); i >= 0 {
		return s.zones[i], true
	}
	return Zone{}, false
}

func (s *Store) Seat(id string) (Seat, bool) {
	if i := s.seatIndex(id); i >= 0 {
		return s.seats[i], true
	}
	return Seat{}, false
}

// SeatsOf returns the seats of a zone in store order.
func (s *Store) SeatsOf(zoneID string) []Seat {
	var out []Seat
	for _, seat := range s.seats {
		if seat.ZoneID == zoneID {
			out = append(out, seat)
		}
	}
	return out
}

func (s *Store) zoneIndex(id string) int {
	for i := range s.zones {
		if s.zones[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) seatIndex(id string) int {
	for i := range s.seats {
		if s.seats[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) hasSeats(zoneID string) bool {
	for _, seat := range s.seats {
		if seat.ZoneID == zoneID {
			return true
		}
	}
	return false
}

// replaceZoneSeats drops every seat of zoneID and appends seats.
func (s *Store) replaceZoneSeats(zoneID string, seats []Seat) {
	kept := s.seats[:0:0]
	for _, seat := range s.seats {
		if seat.ZoneID != zoneID {
			kept = append(kept, seat)
		}
	}
	s.seats = append(kept, seats...)
}

// AddZone creates a default SALE grid and materializes its seats.
func (s *Store) AddZone() Zone {
	rows, cols := s.opts.DefaultRows, s.opts.DefaultCols
	gap := s.opts.DefaultGap
	offset := float64(len(s.zones)) * s.opts.DuplicateOffset

	z := Zone{
		ID:   s.opts.NewID(),
		Name: fmt.Sprintf("Zone %d", len(s.zones)+1),
		Type: ZoneTypeSale,
		Layout: Rect{
			X:      s.opts.Padding + offset,
			Y:      s.opts.Padding + offset,
			Width:  2*s.opts.Padding + float64(cols)*s.opts.SeatSize + float64(cols-1)*gap,
			Height: 2*s.opts.Padding + float64(rows)*s.opts.SeatSize + float64(rows-1)*gap,
		},
		SeatGapX:  gap,
		SeatGapY:  gap,
		Rows:      rows,
		Cols:      cols,
		Numbering: numbering.Default(),
		Color:     s.opts.DefaultColor,
	}

	s.zones = append(s.zones, z)
	s.replaceZoneSeats(z.ID, s.reconcile(z, nil))
	s.bump()
	return z
}

// UpdateZone merges patch into the zone. Touching rows, cols or any numbering field
// regenerates the zone's seats; a dimension change or a type change away from SALE on
// a populated zone must be confirmed, and declining leaves everything untouched.
func (s *Store) UpdateZone(id string, patch ZonePatch, confirm Confirm) Outcome {
	idx := s.zoneIndex(id)
	if idx < 0 {
		return OutcomeNotFound
	}

	old := s.zones[idx]
	next := old
	patch.apply(&next)

	populated := s.hasSeats(id)
	dimsChanged := next.Rows != old.Rows || next.Cols != old.Cols
	leavesSale := old.Type == ZoneTypeSale && next.Type != ZoneTypeSale

	if populated && dimsChanged && !confirm.ask(ReasonDimensionChange) {
		return OutcomeDeclined
	}
	if populated && leavesSale && !confirm.ask(ReasonTypeChange) {
		return OutcomeDeclined
	}

	s.zones[idx] = next

	switch {
	case next.Type != ZoneTypeSale:
		s.replaceZoneSeats(id, nil)
	case patch.touchesSeating() || old.Type != ZoneTypeSale:
		s.replaceZoneSeats(id, s.reconcile(next, s.SeatsOf(id)))
	}

	s.bump()
	return OutcomeApplied
}

// DuplicateZone copies a zone and its seats with fresh ids, shifted by the duplicate offset.
// Copied seats keep labels, addresses and type; their status starts over as AVAILABLE.
func (s *Store) DuplicateZone(id string) (Zone, bool) {
	src, ok := s.Zone(id)
	if !ok {
		return Zone{}, false
	}

	dup := src
	dup.ID = s.opts.NewID()
	dup.Name = src.Name + " (copy)"
	dup.Layout.X += s.opts.DuplicateOffset
	dup.Layout.Y += s.opts.DuplicateOffset

	var seats []Seat
	for _, seat := range s.SeatsOf(id) {
		seat.ID = s.opts.NewID()
		seat.ZoneID = dup.ID
		seat.Status = SeatStatusAvailable
		seats = append(seats, seat)
	}

	s.zones = append(s.zones, dup)
	s.seats = append(s.seats, seats...)
	s.bump()
	return dup, true
}

// DeleteZone removes the zone and all of its seats.
func (s *Store) DeleteZone(id string) bool {
	idx := s.zoneIndex(id)
	if idx < 0 {
		return false
	}
	s.zones = append(s.zones[:idx:idx], s.zones[idx+1:]...)
	s.replaceZoneSeats(id, nil)
	s.bump()
	return true
}

// CreateSeatAt fills an empty cell of a SALE grid zone.
func (s *Store) CreateSeatAt(zoneID string, row, col int) (Seat, bool) {
	z, ok := s.Zone(zoneID)
	if !ok || z.Type != ZoneTypeSale || z.Mode() != ModeGrid {
		return Seat{}, false
	}
	if row < 0 || col < 0 || row >= z.Rows || col >= z.Cols {
		return Seat{}, false
	}
	cell := GridCell{Row: row, Col: col}
	for _, seat := range s.SeatsOf(zoneID) {
		if c, ok := seat.Cell(); ok && c == cell {
			return Seat{}, false
		}
	}

	label := numbering.ComputeLabel(z.Numbering, row, col, z.Rows, z.Cols)
	seat := Seat{
		ID:       s.opts.NewID(),
		ZoneID:   zoneID,
		RowLabel: label.Row,
		ColLabel: label.Seat,
		Status:   SeatStatusAvailable,
		Type:     SeatTypeRegular,
		Address:  cell,
	}
	s.seats = append(s.seats, seat)
	s.bump()
	return seat, true
}

// PlaceSeat adds a seat at (x, y) in a freeform SALE zone. It is labeled in the first row
// with the next number after the highest numeric label of the zone.
func (s *Store) PlaceSeat(zoneID string, x, y float64) (Seat, bool) {
	z, ok := s.Zone(zoneID)
	if !ok || z.Type != ZoneTypeSale || z.Mode() != ModeFreeform {
		return Seat{}, false
	}

	cfg := z.Numbering.Normalize()
	next := cfg.StartNumber
	for _, seat := range s.SeatsOf(zoneID) {
		if n, ok := numericLabel(seat.ColLabel); ok && n >= next {
			next = n + 1
		}
	}

	seat := Seat{
		ID:       s.opts.NewID(),
		ZoneID:   zoneID,
		RowLabel: numbering.RowLabel(cfg.RowLabelType, 0),
		ColLabel: strconv.Itoa(next),
		Status:   SeatStatusAvailable,
		Type:     SeatTypeRegular,
		Address:  Point{X: x, Y: y},
	}
	s.seats = append(s.seats, seat)
	s.bump()
	return seat, true
}

func (s *Store) UpdateSeat(id string, patch SeatPatch) (Seat, bool) {
	idx := s.seatIndex(id)
	if idx < 0 {
		return Seat{}, false
	}
	patch.apply(&s.seats[idx])
	s.bump()
	return s.seats[idx], true
}
