package venues

import (
	"math"
	"strconv"
	"strings"

	"venueplan/internal/layout"
	"venueplan/internal/numbering"
)

// FlexInt decodes a JSON number or numeric string. Malformed input decodes to 0.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*f = 0
		return nil
	}
	*f = FlexInt(math.Trunc(v))
	return nil
}

func (f *FlexInt) intPtr() *int {
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}

type ImportLayoutRequest struct {
	Zones []layout.Zone `json:"zones"`
	Seats []layout.Seat `json:"seats"`
}

func (r ImportLayoutRequest) snapshot() layout.Snapshot {
	return layout.Snapshot{Zones: r.Zones, Seats: r.Seats}.Clone()
}

type UpdateZoneRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Type     *string  `json:"type" binding:"omitempty,oneof=SALE INFO STAGE"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Width    *float64 `json:"width" binding:"omitempty,gte=0"`
	Height   *float64 `json:"height" binding:"omitempty,gte=0"`
	Rotation *float64 `json:"rotation"`
	SeatGapX *float64 `json:"seat_gap_x" binding:"omitempty,gte=0"`
	SeatGapY *float64 `json:"seat_gap_y" binding:"omitempty,gte=0"`
	Rows     *FlexInt `json:"rows" binding:"omitempty,max=500"`
	Cols     *FlexInt `json:"cols" binding:"omitempty,max=500"`
	Capacity *FlexInt `json:"capacity"`
	Color    *string  `json:"color" binding:"omitempty,hexcolor"`
	Price    *float64 `json:"price" binding:"omitempty,gte=0"`

	NumberingDirection  *string  `json:"numbering_direction" binding:"omitempty,oneof=LTR RTL"`
	VerticalDirection   *string  `json:"vertical_direction" binding:"omitempty,oneof=TTB BTT"`
	NumberingMode       *string  `json:"numbering_mode" binding:"omitempty,oneof=ROW COLUMN"`
	ContinuousNumbering *bool    `json:"continuous_numbering"`
	NumberingSnake      *bool    `json:"numbering_snake"`
	StartNumber         *FlexInt `json:"start_number"`
	RowLabelType        *string  `json:"row_label_type" binding:"omitempty,oneof=Alpha Numeric Roman"`

	// Preset applies a named quick pattern before the explicit numbering fields
	Preset *string `json:"preset"`

	Confirm bool `json:"confirm"`
}

func (r UpdateZoneRequest) patch() (layout.ZonePatch, error) {
	p := layout.ZonePatch{
		Name:     r.Name,
		X:        r.X,
		Y:        r.Y,
		Width:    r.Width,
		Height:   r.Height,
		Rotation: r.Rotation,
		SeatGapX: r.SeatGapX,
		SeatGapY: r.SeatGapY,
		Rows:     r.Rows.intPtr(),
		Cols:     r.Cols.intPtr(),
		Capacity: r.Capacity.intPtr(),
		Color:    r.Color,
		Price:    r.Price,

		Continuous:  r.ContinuousNumbering,
		Snake:       r.NumberingSnake,
		StartNumber: r.StartNumber.intPtr(),
	}
	if r.Type != nil {
		t := layout.ZoneType(*r.Type)
		p.Type = &t
	}

	if r.Preset != nil {
		preset, ok := numbering.LookupPreset(*r.Preset)
		if !ok {
			return layout.ZonePatch{}, ErrInvalidRequest
		}
		dir, mode, snake, vertical := preset.Direction, preset.Mode, preset.Snake, numbering.VerticalTTB
		p.Direction, p.Mode, p.Vertical = &dir, &mode, &vertical
		if p.Snake == nil {
			p.Snake = &snake
		}
	}

	if r.NumberingDirection != nil {
		d := numbering.Direction(*r.NumberingDirection)
		p.Direction = &d
	}
	if r.VerticalDirection != nil {
		v := numbering.VerticalDirection(*r.VerticalDirection)
		p.Vertical = &v
	}
	if r.NumberingMode != nil {
		m := numbering.Mode(*r.NumberingMode)
		p.Mode = &m
	}
	if r.RowLabelType != nil {
		t := numbering.RowLabelType(*r.RowLabelType)
		p.RowLabelType = &t
	}
	return p, nil
}

type ConvertZoneRequest struct {
	Target  string `json:"target" binding:"required,oneof=FREEFORM GRID"`
	Confirm bool   `json:"confirm"`
}

// ZoneGestureRequest drives one step of a pointer gesture. Drag and resize run
// begin, update*, release with deltas measured from the begin position; rotate and
// nudge commit at once.
type ZoneGestureRequest struct {
	Phase   string  `json:"phase" binding:"omitempty,oneof=begin update release"`
	Kind    string  `json:"kind" binding:"omitempty,oneof=drag resize rotate nudge"`
	Corner  string  `json:"corner" binding:"omitempty,oneof=top-left top-right bottom-left bottom-right"`
	DX      float64 `json:"dx"`
	DY      float64 `json:"dy"`
	Degrees float64 `json:"degrees"`
}

type GuidesRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width" binding:"gte=0"`
	Height float64 `json:"height" binding:"gte=0"`
}

// CreateSeatRequest fills a grid cell (row, col) or places a freeform seat at (x, y).
type CreateSeatRequest struct {
	Row *FlexInt `json:"row"`
	Col *FlexInt `json:"col"`
	X   *float64 `json:"x"`
	Y   *float64 `json:"y"`
}

type DeleteSeatsRequest struct {
	SeatIDs  []string `json:"seat_ids" binding:"required,min=1"`
	Strategy string   `json:"strategy" binding:"required"`
}

type UpdateSeatRequest struct {
	Status   *string `json:"status" binding:"omitempty,oneof=AVAILABLE BLOCKED SOLD"`
	Type     *string `json:"type" binding:"omitempty,oneof=REGULAR VIP ACCESSIBLE"`
	RowLabel *string `json:"row_label" binding:"omitempty,max=16"`
	ColLabel *string `json:"col_label" binding:"omitempty,max=16"`
}

func (r UpdateSeatRequest) patch() layout.SeatPatch {
	p := layout.SeatPatch{RowLabel: r.RowLabel, ColLabel: r.ColLabel}
	if r.Status != nil {
		st := layout.SeatStatus(*r.Status)
		p.Status = &st
	}
	if r.Type != nil {
		t := layout.SeatType(*r.Type)
		p.Type = &t
	}
	return p
}

// SeatGestureRequest moves freeform seats. Begin, update and release follow the
// primary seat to (x, y); nudge shifts the selection by (dx, dy).
type SeatGestureRequest struct {
	Phase     string   `json:"phase" binding:"required,oneof=begin update release nudge"`
	Primary   string   `json:"primary"`
	Selection []string `json:"selection"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	DX        float64  `json:"dx"`
	DY        float64  `json:"dy"`
}

type CreateTemplateRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=255"`
	Description string `json:"description" binding:"max=1000"`
	// EventID copies the event's current layout; otherwise Layout is stored.
	EventID string               `json:"event_id" binding:"omitempty,uuid"`
	Layout  *ImportLayoutRequest `json:"layout"`
}

type ApplyTemplateRequest struct {
	TemplateID string `json:"template_id" binding:"required,uuid"`
	Confirm    bool   `json:"confirm"`
}

type TemplateFilters struct {
	Search    string `form:"search"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=created_at name seats"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

type NumberingPreviewRequest struct {
	Rows      int               `json:"rows" binding:"required,min=1,max=100"`
	Cols      int               `json:"cols" binding:"required,min=1,max=100"`
	Numbering *numbering.Config `json:"numbering"`
	Preset    string            `json:"preset"`
}
