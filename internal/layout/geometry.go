package layout

import "math"

// Corner is the resize handle being dragged.
type Corner string

const (
	CornerTopLeft     Corner = "top-left"
	CornerTopRight    Corner = "top-right"
	CornerBottomLeft  Corner = "bottom-left"
	CornerBottomRight Corner = "bottom-right"
)

func (c Corner) Valid() bool {
	switch c {
	case CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight:
		return true
	}
	return false
}

// NormalizeRotation maps any angle in degrees into (-180, 180].
func NormalizeRotation(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	r := math.Mod(deg, 360)
	if r <= -180 {
		r += 360
	} else if r > 180 {
		r -= 360
	}
	return r
}

// MoveRect translates r by the pointer delta.
func MoveRect(r Rect, dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// ResizeRect applies a corner-handle delta. Width and height are snapped to step and
// clamped to min; the edges opposite the handle stay where they were.
func (o Options) ResizeRect(r Rect, corner Corner, dx, dy float64) Rect {
	right, bottom := r.X+r.Width, r.Y+r.Height

	w, h := r.Width, r.Height
	switch corner {
	case CornerTopLeft:
		w, h = r.Width-dx, r.Height-dy
	case CornerTopRight:
		w, h = r.Width+dx, r.Height-dy
	case CornerBottomLeft:
		w, h = r.Width-dx, r.Height+dy
	case CornerBottomRight:
		w, h = r.Width+dx, r.Height+dy
	}
	w = o.snapSize(w)
	h = o.snapSize(h)

	out := Rect{X: r.X, Y: r.Y, Width: w, Height: h}
	if corner == CornerTopLeft || corner == CornerBottomLeft {
		out.X = right - w
	}
	if corner == CornerTopLeft || corner == CornerTopRight {
		out.Y = bottom - h
	}
	return out
}

func (o Options) snapSize(v float64) float64 {
	v = math.Round(v/o.ResizeStep) * o.ResizeStep
	return math.Max(v, o.MinZoneSize)
}

// MoveZone shifts a zone's layout. Seats are zone-relative and do not move.
func (s *Store) MoveZone(id string, dx, dy float64) Outcome {
	idx := s.zoneIndex(id)
	if idx < 0 {
		return OutcomeNotFound
	}
	if dx == 0 && dy == 0 {
		return OutcomeUnchanged
	}
	s.zones[idx].Layout = MoveRect(s.zones[idx].Layout, dx, dy)
	s.bump()
	return OutcomeApplied
}

// SetZoneLayout commits a final rectangle, as produced by a finished gesture.
func (s *Store) SetZoneLayout(id string, r Rect) Outcome {
	idx := s.zoneIndex(id)
	if idx < 0 {
		return OutcomeNotFound
	}
	if s.zones[idx].Layout == r {
		return OutcomeUnchanged
	}
	s.zones[idx].Layout = r
	s.bump()
	return OutcomeApplied
}

func (s *Store) ResizeZone(id string, corner Corner, dx, dy float64) Outcome {
	z, ok := s.Zone(id)
	if !ok {
		return OutcomeNotFound
	}
	if !corner.Valid() {
		return OutcomeUnsupported
	}
	return s.SetZoneLayout(id, s.opts.ResizeRect(z.Layout, corner, dx, dy))
}

// RotateZone sets the rendering rotation. Seat addresses are not rewritten.
func (s *Store) RotateZone(id string, deg float64) Outcome {
	idx := s.zoneIndex(id)
	if idx < 0 {
		return OutcomeNotFound
	}
	r := NormalizeRotation(deg)
	if s.zones[idx].Rotation == r {
		return OutcomeUnchanged
	}
	s.zones[idx].Rotation = r
	s.bump()
	return OutcomeApplied
}

// MoveSeats shifts freeform seats by one shared delta. Every seat must exist and be
// point-addressed, otherwise nothing moves.
func (s *Store) MoveSeats(ids []string, dx, dy float64) error {
	moves := make(map[string]Point, len(ids))
	for _, id := range ids {
		seat, ok := s.Seat(id)
		if !ok {
			return ErrSeatNotFound
		}
		p, ok := seat.Point()
		if !ok {
			return ErrNotFreeform
		}
		moves[id] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return s.placeSeats(moves)
}

// placeSeats sets absolute zone-relative positions for freeform seats.
func (s *Store) placeSeats(positions map[string]Point) error {
	for id := range positions {
		seat, ok := s.Seat(id)
		if !ok {
			return ErrSeatNotFound
		}
		if _, ok := seat.Point(); !ok {
			return ErrNotFreeform
		}
	}
	if len(positions) == 0 {
		return nil
	}
	for i := range s.seats {
		if p, ok := positions[s.seats[i].ID]; ok {
			s.seats[i].Address = p
		}
	}
	s.bump()
	return nil
}
