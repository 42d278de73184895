package venues

import (
	"encoding/json"
	"sync"
	"testing"

	"venueplan/internal/layout"
	"venueplan/internal/numbering"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestRows_PreserveAddressesAndOrder(t *testing.T) {
	snap := layout.Snapshot{
		Zones: []layout.Zone{
			{ID: "b", Name: "Balcony", Type: layout.ZoneTypeSale, Rows: 1, Cols: 2, Numbering: numbering.Default()},
			{ID: "a", Name: "Stage", Type: layout.ZoneTypeStage, Numbering: numbering.Default()},
		},
		Seats: []layout.Seat{
			{ID: "s2", ZoneID: "b", RowLabel: "A", ColLabel: "2", Status: layout.SeatStatusSold, Type: layout.SeatTypeVIP, Address: layout.GridCell{Row: 0, Col: 1}},
			{ID: "s1", ZoneID: "b", RowLabel: "A", ColLabel: "1", Status: layout.SeatStatusAvailable, Type: layout.SeatTypeRegular, Address: layout.Point{X: 12.5, Y: 40}},
		},
	}

	zones, seats := toRows(uuid.New(), snap)
	require.Len(t, zones, 2)
	assert.Equal(t, 1, zones[1].Position)
	assert.Nil(t, seats[0].X)
	assert.Nil(t, seats[1].GridRow)

	assert.Equal(t, snap, fromRows(zones, seats))
}

func TestFromRows_NormalizesEmptyNumbering(t *testing.T) {
	snap := fromRows([]ZoneRow{{ID: "z", Name: "Old", Type: "SALE", Rows: 1, Cols: 1}}, nil)

	cfg := snap.Zones[0].Numbering
	assert.Equal(t, numbering.DirectionLTR, cfg.Direction)
	assert.Equal(t, numbering.VerticalTTB, cfg.Vertical)
	assert.Equal(t, numbering.ModeRow, cfg.Mode)
	assert.Equal(t, numbering.RowLabelAlpha, cfg.RowLabelType)
}

func TestSnapshotJSON_ValueScan(t *testing.T) {
	in := SnapshotJSON(layout.Snapshot{
		Zones: []layout.Zone{{ID: "z", Name: "Floor", Type: layout.ZoneTypeSale, Numbering: numbering.Default()}},
		Seats: []layout.Seat{{ID: "s", ZoneID: "z", Status: layout.SeatStatusAvailable, Type: layout.SeatTypeRegular, Address: layout.GridCell{Row: 0, Col: 0}}},
	})

	v, err := in.Value()
	require.NoError(t, err)

	var out SnapshotJSON
	require.NoError(t, out.Scan([]byte(v.(string))))
	assert.Equal(t, in, out)

	require.NoError(t, out.Scan(nil))
	assert.Empty(t, out.Zones)
	assert.Error(t, out.Scan(42))
}

func TestFlexInt(t *testing.T) {
	var req struct {
		A *FlexInt `json:"a"`
		B *FlexInt `json:"b"`
		C *FlexInt `json:"c"`
		D *FlexInt `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 4, "b": "7", "c": "abc", "d": 3.9}`), &req))

	assert.Equal(t, 4, *req.A.intPtr())
	assert.Equal(t, 7, *req.B.intPtr())
	assert.Equal(t, 0, *req.C.intPtr())
	assert.Equal(t, 3, *req.D.intPtr())
	assert.Nil(t, (*FlexInt)(nil).intPtr())
}

func TestSeatRow_CellIndexIsScopedToEvent(t *testing.T) {
	sch, err := schema.Parse(&SeatRow{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	idx, ok := sch.ParseIndexes()["idx_layout_seat_event_cell"]
	require.True(t, ok)
	assert.Equal(t, "UNIQUE", idx.Class)

	var columns []string
	for _, f := range idx.Fields {
		columns = append(columns, f.DBName)
	}
	assert.Equal(t, []string{"event_id", "zone_id", "grid_row", "grid_col"}, columns)
}
