package venues

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"venueplan/internal/layout"
	"venueplan/internal/numbering"

	"github.com/google/uuid"
)

// ZoneRow is one zone of an event layout. Zones are rewritten as a whole on every save,
// Position keeps their editor order.
type ZoneRow struct {
	EventID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ID       string    `gorm:"size:64;primaryKey"`
	Position int       `gorm:"not null"`
	Name     string    `gorm:"not null"`
	Type     string    `gorm:"size:16;not null"`
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64
	SeatGapX float64
	SeatGapY float64
	Rows     int
	Cols     int
	Capacity int
	Color    string `gorm:"size:32"`
	Price    float64

	NumberingDirection  string `gorm:"size:8"`
	VerticalDirection   string `gorm:"size:8"`
	NumberingMode       string `gorm:"size:8"`
	ContinuousNumbering bool
	NumberingSnake      bool
	StartNumber         int
	RowLabelType        string `gorm:"size:16"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ZoneRow) TableName() string { return "layout_zones" }

// SeatRow is one seat. Exactly one of (GridRow, GridCol) and (X, Y) is set.
type SeatRow struct {
	EventID  uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex:idx_layout_seat_event_cell,priority:1"`
	ID       string    `gorm:"size:64;primaryKey"`
	ZoneID   string    `gorm:"size:64;not null;index;uniqueIndex:idx_layout_seat_event_cell,priority:2"`
	Position int       `gorm:"not null"`
	RowLabel string    `gorm:"size:16"`
	ColLabel string    `gorm:"size:16"`
	Status   string    `gorm:"size:16;not null;default:AVAILABLE"`
	Type     string    `gorm:"size:16;not null;default:REGULAR"`
	GridRow  *int      `gorm:"uniqueIndex:idx_layout_seat_event_cell,priority:3"`
	GridCol  *int      `gorm:"uniqueIndex:idx_layout_seat_event_cell,priority:4"`
	X        *float64
	Y        *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SeatRow) TableName() string { return "layout_seats" }

// TemplateRow is a named layout snapshot with no event linkage.
type TemplateRow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description string
	Zones       int
	Seats       int
	Snapshot    SnapshotJSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TemplateRow) TableName() string { return "layout_templates" }

// SnapshotJSON stores a layout snapshot in a jsonb column.
type SnapshotJSON layout.Snapshot

func (s SnapshotJSON) Value() (driver.Value, error) {
	b, err := json.Marshal(layout.Snapshot(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *SnapshotJSON) Scan(value interface{}) error {
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	case nil:
		*s = SnapshotJSON{}
		return nil
	default:
		return fmt.Errorf("unsupported snapshot column type %T", value)
	}
	var snap layout.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return err
	}
	*s = SnapshotJSON(snap)
	return nil
}

func toRows(eventID uuid.UUID, snap layout.Snapshot) ([]ZoneRow, []SeatRow) {
	zones := make([]ZoneRow, 0, len(snap.Zones))
	for i, z := range snap.Zones {
		n := z.Numbering
		zones = append(zones, ZoneRow{
			EventID:  eventID,
			ID:       z.ID,
			Position: i,
			Name:     z.Name,
			Type:     string(z.Type),
			X:        z.Layout.X,
			Y:        z.Layout.Y,
			Width:    z.Layout.Width,
			Height:   z.Layout.Height,
			Rotation: z.Rotation,
			SeatGapX: z.SeatGapX,
			SeatGapY: z.SeatGapY,
			Rows:     z.Rows,
			Cols:     z.Cols,
			Capacity: z.Capacity,
			Color:    z.Color,
			Price:    z.Price,

			NumberingDirection:  string(n.Direction),
			VerticalDirection:   string(n.Vertical),
			NumberingMode:       string(n.Mode),
			ContinuousNumbering: n.Continuous,
			NumberingSnake:      n.Snake,
			StartNumber:         n.StartNumber,
			RowLabelType:        string(n.RowLabelType),
		})
	}

	seats := make([]SeatRow, 0, len(snap.Seats))
	for i, s := range snap.Seats {
		row := SeatRow{
			EventID:  eventID,
			ID:       s.ID,
			ZoneID:   s.ZoneID,
			Position: i,
			RowLabel: s.RowLabel,
			ColLabel: s.ColLabel,
			Status:   string(s.Status),
			Type:     string(s.Type),
		}
		switch a := s.Address.(type) {
		case layout.GridCell:
			r, c := a.Row, a.Col
			row.GridRow, row.GridCol = &r, &c
		case layout.Point:
			x, y := a.X, a.Y
			row.X, row.Y = &x, &y
		}
		seats = append(seats, row)
	}
	return zones, seats
}

func fromRows(zoneRows []ZoneRow, seatRows []SeatRow) layout.Snapshot {
	snap := layout.Snapshot{
		Zones: make([]layout.Zone, 0, len(zoneRows)),
		Seats: make([]layout.Seat, 0, len(seatRows)),
	}
	for _, r := range zoneRows {
		snap.Zones = append(snap.Zones, layout.Zone{
			ID:       r.ID,
			Name:     r.Name,
			Type:     layout.ZoneType(r.Type),
			Layout:   layout.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height},
			Rotation: r.Rotation,
			SeatGapX: r.SeatGapX,
			SeatGapY: r.SeatGapY,
			Rows:     r.Rows,
			Cols:     r.Cols,
			Capacity: r.Capacity,
			Color:    r.Color,
			Price:    r.Price,
			Numbering: numbering.Config{
				Direction:    numbering.Direction(r.NumberingDirection),
				Vertical:     numbering.VerticalDirection(r.VerticalDirection),
				Mode:         numbering.Mode(r.NumberingMode),
				Continuous:   r.ContinuousNumbering,
				Snake:        r.NumberingSnake,
				StartNumber:  r.StartNumber,
				RowLabelType: numbering.RowLabelType(r.RowLabelType),
			}.Normalize(),
		})
	}
	for _, r := range seatRows {
		seat := layout.Seat{
			ID:       r.ID,
			ZoneID:   r.ZoneID,
			RowLabel: r.RowLabel,
			ColLabel: r.ColLabel,
			Status:   layout.SeatStatus(r.Status),
			Type:     layout.SeatType(r.Type),
		}
		switch {
		case r.GridRow != nil && r.GridCol != nil:
			seat.Address = layout.GridCell{Row: *r.GridRow, Col: *r.GridCol}
		case r.X != nil && r.Y != nil:
			seat.Address = layout.Point{X: *r.X, Y: *r.Y}
		}
		snap.Seats = append(snap.Seats, seat)
	}
	return snap
}
