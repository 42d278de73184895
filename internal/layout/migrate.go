package layout

import (
	"strconv"
	"strings"
)

// MigrateLegacySeats backfills grid cells for seats loaded without an address.
// Older plans encoded the cell in the seat id as "<zoneID>-<row>-<col>"; a seat whose id
// parses that way and lies inside its grid zone gets the cell. Other unaddressed seats
// are returned untouched, together with the number of seats migrated.
func MigrateLegacySeats(snapshot Snapshot) (Snapshot, int) {
	out := snapshot.Clone()

	zones := make(map[string]Zone, len(out.Zones))
	for _, z := range out.Zones {
		zones[z.ID] = z
	}

	taken := make(map[string]map[GridCell]bool)
	for _, seat := range out.Seats {
		if c, ok := seat.Cell(); ok {
			if taken[seat.ZoneID] == nil {
				taken[seat.ZoneID] = make(map[GridCell]bool)
			}
			taken[seat.ZoneID][c] = true
		}
	}

	migrated := 0
	for i := range out.Seats {
		seat := &out.Seats[i]
		if seat.Address != nil {
			continue
		}
		z, ok := zones[seat.ZoneID]
		if !ok || z.Mode() != ModeGrid {
			continue
		}
		cell, ok := parseLegacyID(seat.ID)
		if !ok || cell.Row >= z.Rows || cell.Col >= z.Cols {
			continue
		}
		if taken[z.ID] == nil {
			taken[z.ID] = make(map[GridCell]bool)
		}
		if taken[z.ID][cell] {
			continue
		}
		taken[z.ID][cell] = true
		seat.Address = cell
		migrated++
	}
	return out, migrated
}

func parseLegacyID(id string) (GridCell, bool) {
	parts := strings.Split(id, "-")
	if len(parts) < 3 {
		return GridCell{}, false
	}
	row, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil || row < 0 {
		return GridCell{}, false
	}
	col, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || col < 0 {
		return GridCell{}, false
	}
	return GridCell{Row: row, Col: col}, true
}
