package layout

// GestureState is the manipulation state of one zone.
type GestureState string

const (
	StateIdle     GestureState = "idle"
	StateDragging GestureState = "dragging"
	StateResizing GestureState = "resizing"
)

type zoneGesture struct {
	state  GestureState
	corner Corner
	start  Rect
}

// seatGesture follows the primary seat under the pointer; the rest of the selection
// keeps its offset to the primary.
type seatGesture struct {
	primary string
	offsets map[string]Point
}

// Manipulator tracks in-flight pointer gestures over a Store. A zone is either idle,
// dragging or resizing. Releasing always commits; there is no cancel.
type Manipulator struct {
	store *Store
	zones map[string]*zoneGesture
	seats *seatGesture
}

func NewManipulator(store *Store) *Manipulator {
	return &Manipulator{
		store: store,
		zones: make(map[string]*zoneGesture),
	}
}

func (m *Manipulator) State(zoneID string) GestureState {
	if g, ok := m.zones[zoneID]; ok {
		return g.state
	}
	return StateIdle
}

func (m *Manipulator) BeginDrag(zoneID string) error {
	return m.begin(zoneID, StateDragging, "")
}

func (m *Manipulator) BeginResize(zoneID string, corner Corner) error {
	if !corner.Valid() {
		corner = CornerBottomRight
	}
	return m.begin(zoneID, StateResizing, corner)
}

func (m *Manipulator) begin(zoneID string, state GestureState, corner Corner) error {
	z, ok := m.store.Zone(zoneID)
	if !ok {
		return ErrZoneNotFound
	}
	if _, busy := m.zones[zoneID]; busy {
		return ErrGestureInProgress
	}
	m.zones[zoneID] = &zoneGesture{state: state, corner: corner, start: z.Layout}
	return nil
}

// Update previews the gesture for a pointer delta measured from where it began.
// Drags also report alignment guides for the candidate position.
func (m *Manipulator) Update(zoneID string, dx, dy float64) (Rect, []Guide, error) {
	g, ok := m.zones[zoneID]
	if !ok {
		return Rect{}, nil, ErrNoGesture
	}
	r := m.candidate(g, dx, dy)
	if g.state == StateDragging {
		return r, m.store.Guides(zoneID, r), nil
	}
	return r, nil, nil
}

// Release commits the final delta and returns the zone to idle.
func (m *Manipulator) Release(zoneID string, dx, dy float64) (Rect, error) {
	g, ok := m.zones[zoneID]
	if !ok {
		return Rect{}, ErrNoGesture
	}
	delete(m.zones, zoneID)

	r := m.candidate(g, dx, dy)
	if m.store.SetZoneLayout(zoneID, r) == OutcomeNotFound {
		return Rect{}, ErrZoneNotFound
	}
	return r, nil
}

func (m *Manipulator) candidate(g *zoneGesture, dx, dy float64) Rect {
	if g.state == StateResizing {
		return m.store.opts.ResizeRect(g.start, g.corner, dx, dy)
	}
	return MoveRect(g.start, dx, dy)
}

// BeginSeatDrag starts moving primary together with the rest of selection. All seats
// must be freeform seats of the same zone.
func (m *Manipulator) BeginSeatDrag(primary string, selection []string) error {
	if m.seats != nil {
		return ErrGestureInProgress
	}
	p, err := m.freeformSeat(primary)
	if err != nil {
		return err
	}
	owner, _ := m.store.Seat(primary)

	offsets := map[string]Point{primary: {}}
	for _, id := range selection {
		q, err := m.freeformSeat(id)
		if err != nil {
			return err
		}
		if seat, _ := m.store.Seat(id); seat.ZoneID != owner.ZoneID {
			return ErrMixedSelection
		}
		offsets[id] = Point{X: q.X - p.X, Y: q.Y - p.Y}
	}
	m.seats = &seatGesture{primary: primary, offsets: offsets}
	return nil
}

func (m *Manipulator) freeformSeat(id string) (Point, error) {
	seat, ok := m.store.Seat(id)
	if !ok {
		return Point{}, ErrSeatNotFound
	}
	p, ok := seat.Point()
	if !ok {
		return Point{}, ErrNotFreeform
	}
	return p, nil
}

// UpdateSeatDrag previews positions with the primary seat at (x, y).
func (m *Manipulator) UpdateSeatDrag(x, y float64) (map[string]Point, error) {
	if m.seats == nil {
		return nil, ErrNoGesture
	}
	return m.seats.positions(x, y), nil
}

// ReleaseSeatDrag commits the positions with the primary seat at (x, y).
func (m *Manipulator) ReleaseSeatDrag(x, y float64) (map[string]Point, error) {
	if m.seats == nil {
		return nil, ErrNoGesture
	}
	positions := m.seats.positions(x, y)
	m.seats = nil
	if err := m.store.placeSeats(positions); err != nil {
		return nil, err
	}
	return positions, nil
}

func (g *seatGesture) positions(x, y float64) map[string]Point {
	out := make(map[string]Point, len(g.offsets))
	for id, off := range g.offsets {
		out[id] = Point{X: x + off.X, Y: y + off.Y}
	}
	return out
}
