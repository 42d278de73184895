package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRotation(t *testing.T) {
	for in, want := range map[float64]float64{
		0:    0,
		90:   90,
		180:  180,
		-180: 180,
		270:  -90,
		-270: 90,
		540:  180,
		725:  5,
	} {
		assert.Equal(t, want, NormalizeRotation(in), "rotation %v", in)
	}
}

func TestResizeRect(t *testing.T) {
	opts := DefaultOptions()
	r := Rect{X: 100, Y: 100, Width: 200, Height: 100}

	got := opts.ResizeRect(r, CornerBottomRight, 33, -8)
	assert.Equal(t, Rect{X: 100, Y: 100, Width: 240, Height: 100}, got)

	got = opts.ResizeRect(r, CornerTopLeft, 55, 5)
	assert.Equal(t, Rect{X: 160, Y: 100, Width: 140, Height: 100}, got)

	got = opts.ResizeRect(r, CornerTopRight, -500, 500)
	assert.Equal(t, Rect{X: 100, Y: 160, Width: 40, Height: 40}, got, "clamped to minimum, bottom edge anchored")
}

func TestMoveAndRotateZone(t *testing.T) {
	s, z := gridStore(t, 1, 2)
	seats := s.SeatsOf(z.ID)

	assert.Equal(t, OutcomeApplied, s.MoveZone(z.ID, 15, -5))
	assert.Equal(t, OutcomeUnchanged, s.MoveZone(z.ID, 0, 0))
	assert.Equal(t, OutcomeApplied, s.RotateZone(z.ID, 450))

	got, _ := s.Zone(z.ID)
	assert.Equal(t, z.Layout.X+15, got.Layout.X)
	assert.Equal(t, z.Layout.Y-5, got.Layout.Y)
	assert.Equal(t, 90.0, got.Rotation)
	assert.Equal(t, seats, s.SeatsOf(z.ID), "geometry edits never touch seats")

	assert.Equal(t, OutcomeNotFound, s.RotateZone("missing", 10))
	assert.Equal(t, OutcomeUnsupported, s.ResizeZone(z.ID, Corner("middle"), 10, 10))
}

func TestMoveSeats(t *testing.T) {
	s, z := gridStore(t, 1, 2)
	ids := idsOf(s.SeatsOf(z.ID))

	assert.ErrorIs(t, s.MoveSeats(ids, 5, 5), ErrNotFreeform)
	assert.ErrorIs(t, s.MoveSeats([]string{"missing"}, 5, 5), ErrSeatNotFound)

	require.Equal(t, OutcomeApplied, s.ConvertMode(z.ID, ModeFreeform, Confirmed))
	require.NoError(t, s.MoveSeats(ids, 5, -2))

	p, _ := s.SeatsOf(z.ID)[0].Point()
	assert.Equal(t, Point{X: 17, Y: 10}, p)
}

func TestGuides(t *testing.T) {
	zones := []Zone{
		{ID: "dragged", Layout: Rect{X: 0, Y: 0, Width: 100, Height: 100}},
		{ID: "other", Layout: Rect{X: 200, Y: 300, Width: 100, Height: 50}},
	}

	// Shifted 3px right of other's vertical lines, top 2px below other's bottom.
	guides := Guides(zones, "dragged", Rect{X: 203, Y: 352, Width: 100, Height: 100}, 5)

	assert.Equal(t, []Guide{
		{Orientation: Vertical, Position: 200},
		{Orientation: Vertical, Position: 250},
		{Orientation: Vertical, Position: 300},
		{Orientation: Horizontal, Position: 350},
	}, guides)

	assert.Empty(t, Guides(zones, "dragged", Rect{X: 500, Y: 500, Width: 10, Height: 10}, 5))
	assert.Empty(t, Guides(zones[:1], "dragged", zones[0].Layout, 5), "a zone never guides itself")
}

func TestGuides_Deduplicated(t *testing.T) {
	zones := []Zone{
		{ID: "a", Layout: Rect{X: 0, Y: 0, Width: 50, Height: 50}},
		{ID: "b", Layout: Rect{X: 0, Y: 100, Width: 50, Height: 50}},
	}

	guides := Guides(zones, "", Rect{X: 1, Y: 500, Width: 50, Height: 50}, 5)

	assert.Equal(t, []Guide{
		{Orientation: Vertical, Position: 0},
		{Orientation: Vertical, Position: 25},
		{Orientation: Vertical, Position: 50},
	}, guides)
}
