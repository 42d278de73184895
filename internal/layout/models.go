package layout

import (
	"encoding/json"
	"fmt"

	"venueplan/internal/numbering"
)

type ZoneType string

const (
	ZoneTypeSale  ZoneType = "SALE"
	ZoneTypeInfo  ZoneType = "INFO"
	ZoneTypeStage ZoneType = "STAGE"
)

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "AVAILABLE"
	SeatStatusBlocked   SeatStatus = "BLOCKED"
	SeatStatusSold      SeatStatus = "SOLD"
)

type SeatType string

const (
	SeatTypeRegular    SeatType = "REGULAR"
	SeatTypeVIP        SeatType = "VIP"
	SeatTypeAccessible SeatType = "ACCESSIBLE"
)

// Mode is how a zone addresses its seats.
type Mode string

const (
	ModeGrid     Mode = "GRID"
	ModeFreeform Mode = "FREEFORM"
)

// Rect is a zone's bounding box in layout pixels.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Zone is a rectangular region of the venue plan.
type Zone struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Type      ZoneType         `json:"type"`
	Layout    Rect             `json:"layout"`
	Rotation  float64          `json:"rotation"`
	SeatGapX  float64          `json:"seat_gap_x"`
	SeatGapY  float64          `json:"seat_gap_y"`
	Rows      int              `json:"rows"`
	Cols      int              `json:"cols"`
	Capacity  int              `json:"capacity"`
	Numbering numbering.Config `json:"numbering"`
	Color     string           `json:"color"`
	Price     float64          `json:"price"`
}

// Mode reports grid mode only when both dimensions are positive.
func (z Zone) Mode() Mode {
	if z.Rows > 0 && z.Cols > 0 {
		return ModeGrid
	}
	return ModeFreeform
}

// Center is the pivot rotation is rendered around.
func (z Zone) Center() (float64, float64) {
	return z.Layout.X + z.Layout.Width/2, z.Layout.Y + z.Layout.Height/2
}

// Address locates a seat inside its zone. It is either a GridCell or a Point.
type Address interface {
	isAddress()
}

// GridCell addresses a seat in a grid zone.
type GridCell struct {
	Row int
	Col int
}

// Point addresses a seat in a freeform zone, relative to the zone origin.
type Point struct {
	X float64
	Y float64
}

func (GridCell) isAddress() {}
func (Point) isAddress()    {}

// Seat is a single sellable or blocked unit belonging to one zone.
type Seat struct {
	ID       string
	ZoneID   string
	RowLabel string
	ColLabel string
	Status   SeatStatus
	Type     SeatType
	Address  Address
}

// Cell returns the seat's grid cell when it is grid-addressed.
func (s Seat) Cell() (GridCell, bool) {
	c, ok := s.Address.(GridCell)
	return c, ok
}

// Point returns the seat's coordinates when it is freeform-addressed.
func (s Seat) Point() (Point, bool) {
	p, ok := s.Address.(Point)
	return p, ok
}

// seatJSON is the wire shape; exactly one address pair is set.
type seatJSON struct {
	ID       string     `json:"id"`
	ZoneID   string     `json:"zone_id"`
	RowLabel string     `json:"row_label"`
	ColLabel string     `json:"col_label"`
	Status   SeatStatus `json:"status"`
	Type     SeatType   `json:"type"`
	GridRow  *int       `json:"grid_row,omitempty"`
	GridCol  *int       `json:"grid_col,omitempty"`
	X        *float64   `json:"x,omitempty"`
	Y        *float64   `json:"y,omitempty"`
}

func (s Seat) MarshalJSON() ([]byte, error) {
	out := seatJSON{
		ID:       s.ID,
		ZoneID:   s.ZoneID,
		RowLabel: s.RowLabel,
		ColLabel: s.ColLabel,
		Status:   s.Status,
		Type:     s.Type,
	}
	switch a := s.Address.(type) {
	case GridCell:
		out.GridRow, out.GridCol = &a.Row, &a.Col
	case Point:
		out.X, out.Y = &a.X, &a.Y
	}
	return json.Marshal(out)
}

func (s *Seat) UnmarshalJSON(data []byte) error {
	var in seatJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*s = Seat{
		ID:       in.ID,
		ZoneID:   in.ZoneID,
		RowLabel: in.RowLabel,
		ColLabel: in.ColLabel,
		Status:   in.Status,
		Type:     in.Type,
	}
	switch {
	case in.GridRow != nil && in.GridCol != nil:
		s.Address = GridCell{Row: *in.GridRow, Col: *in.GridCol}
	case in.X != nil && in.Y != nil:
		s.Address = Point{X: *in.X, Y: *in.Y}
	case in.GridRow != nil || in.GridCol != nil || in.X != nil || in.Y != nil:
		return fmt.Errorf("seat %s: incomplete address", in.ID)
	}
	return nil
}

// Snapshot is the full zone + seat list exchanged with persistence.
type Snapshot struct {
	Zones []Zone `json:"zones"`
	Seats []Seat `json:"seats"`
}

// Clone deep-copies the snapshot. Addresses are values, so a slice copy suffices.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Zones: make([]Zone, len(s.Zones)),
		Seats: make([]Seat, len(s.Seats)),
	}
	copy(out.Zones, s.Zones)
	copy(out.Seats, s.Seats)
	return out
}
