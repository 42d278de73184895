package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManipulator_DragCommitsOnRelease(t *testing.T) {
	s, z := gridStore(t, 1, 2)
	m := NewManipulator(s)

	require.NoError(t, m.BeginDrag(z.ID))
	assert.Equal(t, StateDragging, m.State(z.ID))

	preview, _, err := m.Update(z.ID, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, z.Layout.X+10, preview.X)
	unchanged, _ := s.Zone(z.ID)
	assert.Equal(t, z.Layout, unchanged.Layout, "previews do not commit")

	final, err := m.Release(z.ID, 30, -10)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, m.State(z.ID))

	got, _ := s.Zone(z.ID)
	assert.Equal(t, final, got.Layout)
	assert.Equal(t, z.Layout.X+30, got.Layout.X)
	assert.Equal(t, z.Layout.Y-10, got.Layout.Y)
}

func TestManipulator_GesturesAreExclusive(t *testing.T) {
	s, z := gridStore(t, 1, 2)
	m := NewManipulator(s)

	require.NoError(t, m.BeginResize(z.ID, CornerBottomRight))
	assert.ErrorIs(t, m.BeginDrag(z.ID), ErrGestureInProgress)
	assert.ErrorIs(t, m.BeginResize(z.ID, CornerTopLeft), ErrGestureInProgress)
	assert.Equal(t, StateResizing, m.State(z.ID))

	_, err := m.Release(z.ID, 100, 0)
	require.NoError(t, err)

	_, err = m.Release(z.ID, 0, 0)
	assert.ErrorIs(t, err, ErrNoGesture)
	assert.ErrorIs(t, m.BeginDrag("missing"), ErrZoneNotFound)
}

func TestManipulator_ResizeSnaps(t *testing.T) {
	s, z := gridStore(t, 1, 2)
	m := NewManipulator(s)

	require.NoError(t, m.BeginResize(z.ID, CornerBottomRight))
	r, err := m.Release(z.ID, 1000, -1000)
	require.NoError(t, err)

	assert.Zero(t, int(r.Width)%20)
	assert.Equal(t, 40.0, r.Height)
	assert.Len(t, s.SeatsOf(z.ID), 2, "resizing does not regenerate seats")
}

func TestManipulator_DragReportsGuides(t *testing.T) {
	s := NewStore(Snapshot{Zones: []Zone{
		{ID: "a", Type: ZoneTypeStage, Layout: Rect{X: 0, Y: 0, Width: 100, Height: 40}},
		{ID: "b", Type: ZoneTypeInfo, Layout: Rect{X: 0, Y: 200, Width: 60, Height: 40}},
	}}, testOptions())
	m := NewManipulator(s)

	require.NoError(t, m.BeginDrag("b"))
	_, guides, err := m.Update("b", 2, 0)
	require.NoError(t, err)

	assert.Contains(t, guides, Guide{Orientation: Vertical, Position: 0})

	r, err := m.Release("b", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, r.X, "guides never snap the drop position")
}

func TestManipulator_SeatDragKeepsOffsets(t *testing.T) {
	s, z := gridStore(t, 1, 3)
	require.Equal(t, OutcomeApplied, s.ConvertMode(z.ID, ModeFreeform, Confirmed))
	seats := s.SeatsOf(z.ID)
	m := NewManipulator(s)

	require.NoError(t, m.BeginSeatDrag(seats[0].ID, []string{seats[2].ID}))
	assert.ErrorIs(t, m.BeginSeatDrag(seats[1].ID, nil), ErrGestureInProgress)

	positions, err := m.ReleaseSeatDrag(100, 100)
	require.NoError(t, err)
	assert.Len(t, positions, 2)

	p0, _ := s.SeatsOf(z.ID)[0].Point()
	p1, _ := s.SeatsOf(z.ID)[1].Point()
	p2, _ := s.SeatsOf(z.ID)[2].Point()
	assert.Equal(t, Point{X: 100, Y: 100}, p0)
	assert.Equal(t, Point{X: 40, Y: 12}, p1, "unselected seat stays put")
	assert.Equal(t, Point{X: 156, Y: 100}, p2)
}

func TestManipulator_SeatDragRequiresFreeform(t *testing.T) {
	s, z := gridStore(t, 1, 2)
	m := NewManipulator(s)

	assert.ErrorIs(t, m.BeginSeatDrag(s.SeatsOf(z.ID)[0].ID, nil), ErrNotFreeform)
	_, err := m.ReleaseSeatDrag(0, 0)
	assert.ErrorIs(t, err, ErrNoGesture)
}

func TestManipulator_SeatDragRejectsMixedZones(t *testing.T) {
	s, z := gridStore(t, 1, 2)
	require.Equal(t, OutcomeApplied, s.ConvertMode(z.ID, ModeFreeform, Confirmed))
	other := s.AddZone()
	require.Equal(t, OutcomeApplied, s.UpdateZone(other.ID, ZonePatch{Rows: ptr(1), Cols: ptr(1)}, Confirmed))
	require.Equal(t, OutcomeApplied, s.ConvertMode(other.ID, ModeFreeform, Confirmed))
	m := NewManipulator(s)

	err := m.BeginSeatDrag(s.SeatsOf(z.ID)[0].ID, []string{s.SeatsOf(other.ID)[0].ID})
	assert.ErrorIs(t, err, ErrMixedSelection)
	_, err = m.ReleaseSeatDrag(0, 0)
	assert.ErrorIs(t, err, ErrNoGesture)
}
