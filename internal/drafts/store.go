// Package drafts keeps the unsaved editor state of each event in Redis so an editor
// can restore it after a reload.
package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venueplan/internal/layout"
	"venueplan/internal/shared/constants"
	"venueplan/pkg/cache"
)

var ErrNoDraft = errors.New("no draft for event")

// Draft is an autosaved snapshot taken after a committed edit.
type Draft struct {
	EventID string          `json:"event_id"`
	Version uint64          `json:"version"`
	Layout  layout.Snapshot `json:"layout"`
	SavedAt time.Time       `json:"saved_at"`
	Zones   int             `json:"zones"`
	Seats   int             `json:"seats"`
}

type Store struct {
	cache cache.Service
	ttl   time.Duration
	now   func() time.Time
}

func NewStore(c cache.Service, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = constants.TTL_LAYOUT_DRAFT
	}
	return &Store{cache: c, ttl: ttl, now: time.Now}
}

// Save overwrites the event's draft and restarts its TTL.
func (s *Store) Save(ctx context.Context, eventID string, version uint64, snapshot layout.Snapshot) error {
	d := Draft{
		EventID: eventID,
		Version: version,
		Layout:  snapshot,
		SavedAt: s.now().UTC(),
		Zones:   len(snapshot.Zones),
		Seats:   len(snapshot.Seats),
	}
	if err := s.cache.Set(ctx, constants.BuildLayoutDraftKey(eventID), d, s.ttl); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, eventID string) (*Draft, error) {
	var d Draft
	if err := s.cache.Get(ctx, constants.BuildLayoutDraftKey(eventID), &d); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrNoDraft
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	return &d, nil
}

func (s *Store) Exists(ctx context.Context, eventID string) bool {
	return s.cache.Exists(ctx, constants.BuildLayoutDraftKey(eventID))
}

func (s *Store) Discard(ctx context.Context, eventID string) error {
	if err := s.cache.Delete(ctx, constants.BuildLayoutDraftKey(eventID)); err != nil {
		return fmt.Errorf("failed to discard draft: %w", err)
	}
	return nil
}
