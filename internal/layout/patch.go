package layout

import "venueplan/internal/numbering"

// Outcome reports what an edit did. Lookup misses and declined confirmations
// are outcomes, not errors.
type Outcome string

const (
	OutcomeApplied     Outcome = "applied"
	OutcomeUnchanged   Outcome = "unchanged"
	OutcomeDeclined    Outcome = "declined"
	OutcomeNotFound    Outcome = "not_found"
	OutcomeUnsupported Outcome = "unsupported"
)

// ConfirmReason names the destructive edit a confirmation is asked for.
type ConfirmReason string

const (
	ReasonDimensionChange ConfirmReason = "dimension_change"
	ReasonTypeChange      ConfirmReason = "type_change"
	ReasonModeConversion  ConfirmReason = "mode_conversion"
)

// Confirm is asked before a destructive edit on a populated zone.
// A nil Confirm declines.
type Confirm func(reason ConfirmReason) bool

// Confirmed accepts every prompt.
func Confirmed(ConfirmReason) bool { return true }

// Declined refuses every prompt.
func Declined(ConfirmReason) bool { return false }

func (c Confirm) ask(reason ConfirmReason) bool {
	return c != nil && c(reason)
}

// ZonePatch carries the fields of an UpdateZone call; nil fields are left as they are.
type ZonePatch struct {
	Name     *string
	Type     *ZoneType
	X        *float64
	Y        *float64
	Width    *float64
	Height   *float64
	Rotation *float64
	SeatGapX *float64
	SeatGapY *float64
	Rows     *int
	Cols     *int
	Capacity *int
	Color    *string
	Price    *float64

	Direction    *numbering.Direction
	Vertical     *numbering.VerticalDirection
	Mode         *numbering.Mode
	Continuous   *bool
	Snake        *bool
	StartNumber  *int
	RowLabelType *numbering.RowLabelType
}

// touchesSeating reports whether the patch names a field seat labels depend on.
func (p ZonePatch) touchesSeating() bool {
	return p.Rows != nil || p.Cols != nil ||
		p.Direction != nil || p.Vertical != nil || p.Mode != nil ||
		p.Continuous != nil || p.Snake != nil || p.StartNumber != nil || p.RowLabelType != nil
}

func (p ZonePatch) apply(z *Zone) {
	setIf(&z.Name, p.Name)
	setIf(&z.Type, p.Type)
	setIf(&z.Layout.X, p.X)
	setIf(&z.Layout.Y, p.Y)
	setIf(&z.Layout.Width, p.Width)
	setIf(&z.Layout.Height, p.Height)
	setIf(&z.SeatGapX, p.SeatGapX)
	setIf(&z.SeatGapY, p.SeatGapY)
	setIf(&z.Rows, p.Rows)
	setIf(&z.Cols, p.Cols)
	setIf(&z.Capacity, p.Capacity)
	setIf(&z.Color, p.Color)
	setIf(&z.Price, p.Price)
	if p.Rotation != nil {
		z.Rotation = NormalizeRotation(*p.Rotation)
	}

	setIf(&z.Numbering.Direction, p.Direction)
	setIf(&z.Numbering.Vertical, p.Vertical)
	setIf(&z.Numbering.Mode, p.Mode)
	setIf(&z.Numbering.Continuous, p.Continuous)
	setIf(&z.Numbering.Snake, p.Snake)
	setIf(&z.Numbering.StartNumber, p.StartNumber)
	setIf(&z.Numbering.RowLabelType, p.RowLabelType)
	z.Numbering = z.Numbering.Normalize()

	if z.Rows < 0 {
		z.Rows = 0
	}
	if z.Cols < 0 {
		z.Cols = 0
	}
	if z.Rows == 0 || z.Cols == 0 {
		z.Rows, z.Cols = 0, 0
	}
	if z.Capacity < 0 {
		z.Capacity = 0
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// SeatPatch edits a single seat; nil fields are left as they are.
type SeatPatch struct {
	Status   *SeatStatus
	Type     *SeatType
	RowLabel *string
	ColLabel *string
}

func (p SeatPatch) apply(s *Seat) {
	setIf(&s.Status, p.Status)
	setIf(&s.Type, p.Type)
	setIf(&s.RowLabel, p.RowLabel)
	setIf(&s.ColLabel, p.ColLabel)
}
