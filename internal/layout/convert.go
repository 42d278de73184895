package layout

// ConvertMode switches a zone between grid and freeform addressing.
//
// Grid to freeform rewrites every seat's cell into the pixel position it is drawn at and
// clears rows and cols; ids, status, type and labels are kept. Freeform to grid is not a
// conversion: it goes through UpdateZone with positive rows and cols, which regenerates.
func (s *Store) ConvertMode(id string, target Mode, confirm Confirm) Outcome {
	idx := s.zoneIndex(id)
	if idx < 0 {
		return OutcomeNotFound
	}
	z := s.zones[idx]
	if z.Mode() == target {
		return OutcomeUnchanged
	}
	if target != ModeFreeform {
		return OutcomeUnsupported
	}
	if s.hasSeats(id) && !confirm.ask(ReasonModeConversion) {
		return OutcomeDeclined
	}

	for i := range s.seats {
		if s.seats[i].ZoneID != id {
			continue
		}
		if c, ok := s.seats[i].Cell(); ok {
			s.seats[i].Address = s.opts.CellOrigin(z, c)
		}
	}
	s.zones[idx].Rows, s.zones[idx].Cols = 0, 0

	s.bump()
	return OutcomeApplied
}
