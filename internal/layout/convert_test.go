package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMode_GridToFreeform(t *testing.T) {
	s, z := gridStore(t, 2, 2)
	before := s.SeatsOf(z.ID)

	require.Equal(t, OutcomeApplied, s.ConvertMode(z.ID, ModeFreeform, Confirmed))

	got, _ := s.Zone(z.ID)
	assert.Equal(t, ModeFreeform, got.Mode())

	after := s.SeatsOf(z.ID)
	require.Len(t, after, len(before))
	positions := make(map[Point]bool)
	for i, seat := range after {
		assert.Equal(t, before[i].ID, seat.ID)
		assert.Equal(t, before[i].RowLabel, seat.RowLabel)
		assert.Equal(t, before[i].ColLabel, seat.ColLabel)
		p, ok := seat.Point()
		require.True(t, ok)
		positions[p] = true
	}
	assert.Len(t, positions, 4)
	assert.True(t, positions[Point{X: 12, Y: 12}])
	assert.True(t, positions[Point{X: 40, Y: 40}])
}

func TestConvertMode_Declined(t *testing.T) {
	s, z := gridStore(t, 2, 2)
	before := s.Snapshot()

	assert.Equal(t, OutcomeDeclined, s.ConvertMode(z.ID, ModeFreeform, nil))
	assert.Equal(t, before, s.Snapshot())
}

func TestConvertMode_Outcomes(t *testing.T) {
	s, z := gridStore(t, 2, 2)

	assert.Equal(t, OutcomeUnchanged, s.ConvertMode(z.ID, ModeGrid, Confirmed))
	assert.Equal(t, OutcomeNotFound, s.ConvertMode("missing", ModeFreeform, Confirmed))

	require.Equal(t, OutcomeApplied, s.ConvertMode(z.ID, ModeFreeform, Confirmed))
	assert.Equal(t, OutcomeUnsupported, s.ConvertMode(z.ID, ModeGrid, Confirmed))
}

func TestMigrateLegacySeats(t *testing.T) {
	snap := Snapshot{
		Zones: []Zone{{ID: "z1", Type: ZoneTypeSale, Rows: 2, Cols: 2}},
		Seats: []Seat{
			{ID: "z1-0-1", ZoneID: "z1"},
			{ID: "z1-1-1", ZoneID: "z1", Address: GridCell{Row: 1, Col: 1}},
			{ID: "z1-dup-1-1", ZoneID: "z1"},
			{ID: "z1-5-0", ZoneID: "z1"},
			{ID: "plain", ZoneID: "z1"},
		},
	}

	out, n := MigrateLegacySeats(snap)

	assert.Equal(t, 1, n)
	assert.Equal(t, GridCell{Row: 0, Col: 1}, out.Seats[0].Address)
	assert.Nil(t, out.Seats[2].Address, "cell already taken")
	assert.Nil(t, out.Seats[3].Address, "outside the grid")
	assert.Nil(t, out.Seats[4].Address)
	assert.Nil(t, snap.Seats[0].Address, "input is not modified")
}

func TestSeatJSON(t *testing.T) {
	grid := Seat{ID: "s1", ZoneID: "z1", RowLabel: "A", ColLabel: "1", Address: GridCell{Row: 0, Col: 2}}
	data, err := grid.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"s1","zone_id":"z1","row_label":"A","col_label":"1","status":"","type":"","grid_row":0,"grid_col":2}`, string(data))

	var back Seat
	require.NoError(t, back.UnmarshalJSON([]byte(`{"id":"s2","x":1.5,"y":3}`)))
	assert.Equal(t, Point{X: 1.5, Y: 3}, back.Address)

	assert.Error(t, back.UnmarshalJSON([]byte(`{"id":"s3","grid_row":1}`)))
}

func TestConvertMode_RoundTripKeepsSeatIdentity(t *testing.T) {
	s, z := gridStore(t, 1, 2)
	seats := s.SeatsOf(z.ID)
	sold, ok := s.UpdateSeat(seats[0].ID, SeatPatch{Status: ptr(SeatStatusSold), Type: ptr(SeatTypeVIP)})
	require.True(t, ok)

	require.Equal(t, OutcomeApplied, s.ConvertMode(z.ID, ModeFreeform, Confirmed))
	require.Equal(t, OutcomeApplied, s.UpdateZone(z.ID, ZonePatch{Rows: ptr(1), Cols: ptr(2)}, Confirmed))

	after := s.SeatsOf(z.ID)
	require.Len(t, after, 2)
	assert.Equal(t, idsOf(seats), idsOf(after))

	back := after[0]
	assert.Equal(t, sold.ID, back.ID)
	assert.Equal(t, SeatStatusSold, back.Status)
	assert.Equal(t, SeatTypeVIP, back.Type)
	cell, ok := back.Cell()
	require.True(t, ok)
	assert.Equal(t, GridCell{Row: 0, Col: 0}, cell)
}

func TestCellAt_InvertsCellOrigin(t *testing.T) {
	opts := testOptions()
	z := Zone{SeatGapX: 4, SeatGapY: 6}

	for _, c := range []GridCell{{0, 0}, {0, 3}, {2, 1}, {7, 9}} {
		got, ok := opts.CellAt(z, opts.CellOrigin(z, c))
		require.True(t, ok)
		assert.Equal(t, c, got)
	}

	nudged := opts.CellOrigin(z, GridCell{Row: 1, Col: 1})
	nudged.X += 3
	got, ok := opts.CellAt(z, nudged)
	require.True(t, ok)
	assert.Equal(t, GridCell{Row: 1, Col: 1}, got)

	_, ok = opts.CellAt(z, Point{X: -100, Y: 0})
	assert.False(t, ok)
}
