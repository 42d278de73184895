package layout

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"venueplan/internal/numbering"
)

// Strategy decides how the remaining seats are relabeled after a deletion.
type Strategy string

const (
	// StrategyLeaveGap removes seats and relabels nothing.
	StrategyLeaveGap Strategy = "LEAVE_GAP"
	// StrategyReorderRow densely renumbers each affected row by its current numeric order.
	StrategyReorderRow Strategy = "REORDER_ROW"
	// StrategyGlobalRenumber relabels the whole zone from scratch over the survivors.
	StrategyGlobalRenumber Strategy = "GLOBAL_RENUMBER"
)

func (st Strategy) Valid() bool {
	switch st {
	case StrategyLeaveGap, StrategyReorderRow, StrategyGlobalRenumber:
		return true
	}
	return false
}

// DeleteSeats removes the given seats of one zone and applies the strategy to the rest.
// Ids that are unknown or belong to another zone are ignored. It returns the number of
// seats removed.
func (s *Store) DeleteSeats(zoneID string, seatIDs []string, strategy Strategy) (int, error) {
	if !strategy.Valid() {
		return 0, ErrUnknownStrategy
	}
	z, ok := s.Zone(zoneID)
	if !ok {
		return 0, nil
	}

	doomed := make(map[string]bool, len(seatIDs))
	for _, id := range seatIDs {
		doomed[id] = true
	}

	var survivors []Seat
	affectedRows := make(map[string]bool)
	removed := 0
	for _, seat := range s.SeatsOf(zoneID) {
		if doomed[seat.ID] {
			affectedRows[seat.RowLabel] = true
			removed++
			continue
		}
		survivors = append(survivors, seat)
	}
	if removed == 0 {
		return 0, nil
	}

	switch strategy {
	case StrategyReorderRow:
		reorderRows(survivors, affectedRows, z.Numbering.Normalize().StartNumber)
	case StrategyGlobalRenumber:
		s.relabelZone(z, survivors)
	}

	s.replaceZoneSeats(zoneID, survivors)
	s.bump()
	return removed, nil
}

// Renumber applies the global strategy to a zone without deleting anything.
func (s *Store) Renumber(zoneID string) bool {
	z, ok := s.Zone(zoneID)
	if !ok {
		return false
	}
	seats := s.SeatsOf(zoneID)
	s.relabelZone(z, seats)
	s.replaceZoneSeats(zoneID, seats)
	s.bump()
	return true
}

// reorderRows renumbers start, start+1, ... in each affected row, ordered by the
// current numeric label. A row with any non-numeric label is left alone.
func reorderRows(seats []Seat, rows map[string]bool, start int) {
	byRow := make(map[string][]int)
	for i, seat := range seats {
		if rows[seat.RowLabel] {
			byRow[seat.RowLabel] = append(byRow[seat.RowLabel], i)
		}
	}

	for _, idx := range byRow {
		nums := make(map[int]int, len(idx))
		numeric := true
		for _, i := range idx {
			n, ok := numericLabel(seats[i].ColLabel)
			if !ok {
				numeric = false
				break
			}
			nums[i] = n
		}
		if !numeric {
			continue
		}

		sort.SliceStable(idx, func(a, b int) bool { return nums[idx[a]] < nums[idx[b]] })
		for pos, i := range idx {
			seats[i].ColLabel = strconv.Itoa(start + pos)
		}
	}
}

// relabelZone runs the numbering engine over the surviving seats in place.
// Grid seats use their cells and seats without one are left alone; freeform seats
// are bucketed into lines along the major axis using the store's bucket tolerance.
func (s *Store) relabelZone(z Zone, seats []Seat) {
	cfg := z.Numbering.Normalize()

	var cells []numbering.Cell
	var members []int
	if z.Mode() == ModeGrid {
		for i, seat := range seats {
			if c, ok := seat.Cell(); ok {
				cells = append(cells, numbering.Cell{Row: c.Row, Col: c.Col})
				members = append(members, i)
			}
		}
	} else {
		cells = bucketPoints(seats, cfg.Mode, s.opts.BucketTolerance)
		for i := range seats {
			members = append(members, i)
		}
	}

	labels := numbering.Relabel(cfg, cells)
	for k, i := range members {
		if l, ok := labels[cells[k]]; ok {
			seats[i].RowLabel = l.Row
			seats[i].ColLabel = l.Seat
		}
	}
}

// bucketPoints assigns each freeform seat a synthetic cell. In ROW mode seats are grouped
// into rows by y (a new row starts once y is more than tolerance past the row's first
// seat) and ranked by x within the row; COLUMN mode swaps the axes.
func bucketPoints(seats []Seat, mode numbering.Mode, tolerance float64) []numbering.Cell {
	type item struct {
		index        int
		major, minor float64
	}
	items := make([]item, 0, len(seats))
	for i, seat := range seats {
		p, _ := seat.Point()
		it := item{index: i, major: p.Y, minor: p.X}
		if mode == numbering.ModeColumn {
			it.major, it.minor = p.X, p.Y
		}
		items = append(items, it)
	}
	sort.SliceStable(items, func(a, b int) bool {
		if items[a].major != items[b].major {
			return items[a].major < items[b].major
		}
		return items[a].minor < items[b].minor
	})

	cells := make([]numbering.Cell, len(seats))
	line, anchor := -1, math.Inf(-1)
	var members []item
	flush := func() {
		sort.SliceStable(members, func(a, b int) bool { return members[a].minor < members[b].minor })
		for rank, m := range members {
			c := numbering.Cell{Row: line, Col: rank}
			if mode == numbering.ModeColumn {
				c = numbering.Cell{Row: rank, Col: line}
			}
			cells[m.index] = c
		}
		members = members[:0]
	}
	for _, it := range items {
		if it.major-anchor > tolerance {
			if len(members) > 0 {
				flush()
			}
			line++
			anchor = it.major
		}
		members = append(members, it)
	}
	if len(members) > 0 {
		flush()
	}
	return cells
}

func numericLabel(label string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(label))
	if err != nil {
		return 0, false
	}
	return n, true
}
