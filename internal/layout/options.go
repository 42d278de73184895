package layout

import (
	"math"

	"github.com/google/uuid"
)

// Options are the geometry constants of the editor. Units are layout pixels.
type Options struct {
	SeatSize        float64
	Padding         float64
	DefaultGap      float64
	ResizeStep      float64
	MinZoneSize     float64
	DuplicateOffset float64
	BucketTolerance float64
	GuideThreshold  float64
	DefaultRows     int
	DefaultCols     int
	DefaultColor    string

	NewID func() string
}

func DefaultOptions() Options {
	return Options{
		SeatSize:        24,
		Padding:         12,
		DefaultGap:      4,
		ResizeStep:      20,
		MinZoneSize:     40,
		DuplicateOffset: 20,
		BucketTolerance: 10,
		GuideThreshold:  5,
		DefaultRows:     5,
		DefaultCols:     10,
		DefaultColor:    "#4f46e5",
		NewID:           uuid.NewString,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SeatSize <= 0 {
		o.SeatSize = d.SeatSize
	}
	if o.Padding < 0 {
		o.Padding = d.Padding
	}
	if o.DefaultGap < 0 {
		o.DefaultGap = d.DefaultGap
	}
	if o.ResizeStep <= 0 {
		o.ResizeStep = d.ResizeStep
	}
	if o.MinZoneSize <= 0 {
		o.MinZoneSize = d.MinZoneSize
	}
	if o.BucketTolerance <= 0 {
		o.BucketTolerance = d.BucketTolerance
	}
	if o.GuideThreshold <= 0 {
		o.GuideThreshold = d.GuideThreshold
	}
	if o.DefaultRows <= 0 {
		o.DefaultRows = d.DefaultRows
	}
	if o.DefaultCols <= 0 {
		o.DefaultCols = d.DefaultCols
	}
	if o.DefaultColor == "" {
		o.DefaultColor = d.DefaultColor
	}
	if o.NewID == nil {
		o.NewID = d.NewID
	}
	return o
}

// CellOrigin is the top-left pixel of grid cell (row, col) inside a zone.
func (o Options) CellOrigin(z Zone, c GridCell) Point {
	return Point{
		X: o.Padding + float64(c.Col)*(o.SeatSize+z.SeatGapX),
		Y: o.Padding + float64(c.Row)*(o.SeatSize+z.SeatGapY),
	}
}

// CellAt is the inverse of CellOrigin: the grid cell whose origin is nearest to p.
// Points left or above the first cell report false.
func (o Options) CellAt(z Zone, p Point) (GridCell, bool) {
	stepX, stepY := o.SeatSize+z.SeatGapX, o.SeatSize+z.SeatGapY
	if stepX <= 0 || stepY <= 0 {
		return GridCell{}, false
	}
	col := int(math.Round((p.X - o.Padding) / stepX))
	row := int(math.Round((p.Y - o.Padding) / stepY))
	if row < 0 || col < 0 {
		return GridCell{}, false
	}
	return GridCell{Row: row, Col: col}, true
}
