package layout

import "venueplan/internal/numbering"

// reconcile computes the full seat set of z from its dimensions and numbering and
// carries id, status and type over from previous seats on the same grid cell.
// Point-addressed seats left by a grid to freeform conversion are matched to the
// cell they are drawn in; a seat already on that cell wins.
// Freeform zones keep their point-addressed seats as they are.
func (s *Store) reconcile(z Zone, previous []Seat) []Seat {
	if z.Mode() == ModeFreeform {
		var kept []Seat
		for _, seat := range previous {
			if _, ok := seat.Point(); ok {
				kept = append(kept, seat)
			}
		}
		return kept
	}

	byCell := make(map[GridCell]Seat, len(previous))
	for _, seat := range previous {
		if c, ok := seat.Cell(); ok {
			byCell[c] = seat
		}
	}
	for _, seat := range previous {
		p, ok := seat.Point()
		if !ok {
			continue
		}
		c, ok := s.opts.CellAt(z, p)
		if !ok {
			continue
		}
		if _, taken := byCell[c]; !taken {
			byCell[c] = seat
		}
	}

	out := make([]Seat, 0, z.Rows*z.Cols)
	for r := 0; r < z.Rows; r++ {
		for c := 0; c < z.Cols; c++ {
			cell := GridCell{Row: r, Col: c}
			label := numbering.ComputeLabel(z.Numbering, r, c, z.Rows, z.Cols)

			seat, found := byCell[cell]
			if !found {
				seat = Seat{
					ID:     s.opts.NewID(),
					ZoneID: z.ID,
					Status: SeatStatusAvailable,
					Type:   SeatTypeRegular,
				}
			}
			seat.RowLabel = label.Row
			seat.ColLabel = label.Seat
			seat.Address = cell
			out = append(out, seat)
		}
	}
	return out
}
