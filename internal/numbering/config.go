package numbering

// Direction is the horizontal reading direction of seat numbers.
type Direction string

const (
	DirectionLTR Direction = "LTR"
	DirectionRTL Direction = "RTL"
)

// VerticalDirection is the order in which rows are walked.
type VerticalDirection string

const (
	VerticalTTB VerticalDirection = "TTB"
	VerticalBTT VerticalDirection = "BTT"
)

// Mode selects which axis the seat number runs along.
type Mode string

const (
	ModeRow    Mode = "ROW"
	ModeColumn Mode = "COLUMN"
)

// RowLabelType controls how row labels are rendered.
type RowLabelType string

const (
	RowLabelAlpha   RowLabelType = "Alpha"
	RowLabelNumeric RowLabelType = "Numeric"
	RowLabelRoman   RowLabelType = "Roman"
)

// Config holds every input of the labeling algorithm for one zone.
type Config struct {
	Direction    Direction         `json:"numbering_direction"`
	Vertical     VerticalDirection `json:"vertical_direction"`
	Mode         Mode              `json:"numbering_mode"`
	Continuous   bool              `json:"continuous_numbering"`
	Snake        bool              `json:"numbering_snake"`
	StartNumber  int               `json:"start_number"`
	RowLabelType RowLabelType      `json:"row_label_type"`
}

// Default is the configuration new zones start with.
func Default() Config {
	return Config{
		Direction:    DirectionLTR,
		Vertical:     VerticalTTB,
		Mode:         ModeRow,
		StartNumber:  1,
		RowLabelType: RowLabelAlpha,
	}
}

// Normalize replaces unknown enum values with their defaults.
func (c Config) Normalize() Config {
	if c.Direction != DirectionRTL {
		c.Direction = DirectionLTR
	}
	if c.Vertical != VerticalBTT {
		c.Vertical = VerticalTTB
	}
	if c.Mode != ModeColumn {
		c.Mode = ModeRow
	}
	switch c.RowLabelType {
	case RowLabelNumeric, RowLabelRoman:
	default:
		c.RowLabelType = RowLabelAlpha
	}
	return c
}

// Label is the human readable identity of a seat.
type Label struct {
	Row  string `json:"row_label"`
	Seat string `json:"col_label"`
}
