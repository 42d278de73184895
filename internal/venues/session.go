package venues

import (
	"sync"

	"venueplan/internal/layout"

	"github.com/google/uuid"
)

// Session is the in-memory editor state of one event. Every edit runs under mu;
// saves release it while the database round trip is in flight.
type Session struct {
	mu      sync.Mutex
	eventID uuid.UUID
	store   *layout.Store
	manip   *layout.Manipulator
}

func newSession(eventID uuid.UUID, snapshot layout.Snapshot, opts layout.Options) *Session {
	store := layout.NewStore(snapshot, opts)
	return &Session{
		eventID: eventID,
		store:   store,
		manip:   layout.NewManipulator(store),
	}
}

// replace swaps the whole layout and drops in-flight gestures.
func (s *Session) replace(snapshot layout.Snapshot) {
	s.store.Replace(snapshot)
	s.manip = layout.NewManipulator(s.store)
}

// sessions indexes live sessions by event ID.
type sessions struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*Session
}

func newSessions() *sessions {
	return &sessions{byID: make(map[uuid.UUID]*Session)}
}

func (r *sessions) get(id uuid.UUID) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	return s, ok
}

// put registers s unless another session for the same event won the race, in which
// case that one is returned.
func (r *sessions) put(s *Session) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byID[s.eventID]; ok {
		return existing
	}
	r.byID[s.eventID] = s
	return s
}
