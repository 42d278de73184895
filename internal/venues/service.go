package venues

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"venueplan/internal/drafts"
	"venueplan/internal/layout"
	"venueplan/internal/layoutevents"
	"venueplan/internal/numbering"
	"venueplan/internal/shared/constants"
	"venueplan/pkg/cache"
	"venueplan/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Service interface {
	// Event layouts
	GetLayout(ctx context.Context, eventID string) (*LayoutResponse, error)
	SaveLayout(ctx context.Context, eventID string) (*SaveLayoutResponse, error)
	ImportLayout(ctx context.Context, eventID string, req ImportLayoutRequest) (*LayoutResponse, error)

	// Zones
	AddZone(ctx context.Context, eventID string) (*ZoneResponse, error)
	UpdateZone(ctx context.Context, eventID, zoneID string, req UpdateZoneRequest) (*ZoneResponse, error)
	DuplicateZone(ctx context.Context, eventID, zoneID string) (*ZoneResponse, error)
	DeleteZone(ctx context.Context, eventID, zoneID string) error
	ConvertZone(ctx context.Context, eventID, zoneID string, req ConvertZoneRequest) (*ZoneResponse, error)
	RenumberZone(ctx context.Context, eventID, zoneID string) (*ZoneResponse, error)
	ZoneGesture(ctx context.Context, eventID, zoneID string, req ZoneGestureRequest) (*GestureResponse, error)
	ZoneGuides(ctx context.Context, eventID, zoneID string, req GuidesRequest) ([]layout.Guide, error)

	// Seats
	CreateSeat(ctx context.Context, eventID, zoneID string, req CreateSeatRequest) (*layout.Seat, error)
	DeleteSeats(ctx context.Context, eventID, zoneID string, req DeleteSeatsRequest) (*DeleteSeatsResponse, error)
	UpdateSeat(ctx context.Context, eventID, seatID string, req UpdateSeatRequest) (*layout.Seat, error)
	SeatGesture(ctx context.Context, eventID string, req SeatGestureRequest) (*SeatGestureResponse, error)

	// Drafts
	GetDraft(ctx context.Context, eventID string) (*DraftResponse, error)
	RestoreDraft(ctx context.Context, eventID string) (*LayoutResponse, error)
	DiscardDraft(ctx context.Context, eventID string) error

	// Templates
	CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*TemplateResponse, error)
	GetTemplates(ctx context.Context, filters TemplateFilters) (*PaginatedTemplates, error)
	GetTemplateByID(ctx context.Context, id string) (*TemplateResponse, error)
	ApplyTemplate(ctx context.Context, eventID string, req ApplyTemplateRequest) (*LayoutResponse, error)

	// Numbering
	PreviewNumbering(req NumberingPreviewRequest) (*NumberingPreviewResponse, error)
	Presets() []numbering.Preset
}

// DraftStore keeps autosaved editor state between sessions.
type DraftStore interface {
	Save(ctx context.Context, eventID string, version uint64, snapshot layout.Snapshot) error
	Load(ctx context.Context, eventID string) (*drafts.Draft, error)
	Exists(ctx context.Context, eventID string) bool
	Discard(ctx context.Context, eventID string) error
}

// ServiceConfig holds the editor constants and cache lifetimes.
type ServiceConfig struct {
	Layout         layout.Options
	LayoutCacheTTL time.Duration
}

type service struct {
	repo      Repository
	cache     cache.Service
	drafts    DraftStore
	publisher layoutevents.Publisher
	cfg       ServiceConfig
	validate  *validator.Validate
	sessions  *sessions
}

// NewService wires the layout service. cacheService and draftStore may be nil, which
// disables layout caching and draft autosave respectively.
func NewService(repo Repository, cacheService cache.Service, draftStore DraftStore, publisher layoutevents.Publisher, cfg ServiceConfig) Service {
	if publisher == nil {
		publisher = layoutevents.NopPublisher{}
	}
	if cfg.LayoutCacheTTL <= 0 {
		cfg.LayoutCacheTTL = constants.TTL_EVENT_LAYOUT
	}
	return &service{
		repo:      repo,
		cache:     cacheService,
		drafts:    draftStore,
		publisher: publisher,
		cfg:       cfg,
		validate:  validator.New(),
		sessions:  newSessions(),
	}
}

// ============= SESSIONS =============

// session returns the live session of an event, loading it on first use.
func (s *service) session(ctx context.Context, eventID string) (*Session, error) {
	id, err := parseEventID(eventID)
	if err != nil {
		return nil, err
	}
	if sess, ok := s.sessions.get(id); ok {
		return sess, nil
	}

	snap, source, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	migrated, n := layout.MigrateLegacySeats(snap)
	if n > 0 {
		logger.GetDefault().LogLegacySeatsMigrated(ctx, eventID, n)
	}
	logger.GetDefault().LogLayoutLoaded(ctx, eventID, source, len(migrated.Zones), len(migrated.Seats))

	return s.sessions.put(newSession(id, migrated, s.cfg.Layout)), nil
}

// load reads the persisted layout cache-aside.
func (s *service) load(ctx context.Context, id uuid.UUID) (layout.Snapshot, string, error) {
	source := "cache"
	fetch := func() (interface{}, error) {
		source = "database"
		return s.repo.LoadLayout(ctx, id)
	}

	var snap layout.Snapshot
	if s.cache == nil {
		v, err := fetch()
		if err != nil {
			return layout.Snapshot{}, source, fmt.Errorf("failed to load layout: %w", err)
		}
		return v.(layout.Snapshot), source, nil
	}

	if err := s.cache.GetOrSet(ctx, constants.BuildEventLayoutKey(id.String()), s.cfg.LayoutCacheTTL, fetch, &snap); err != nil {
		return layout.Snapshot{}, source, fmt.Errorf("failed to load layout: %w", err)
	}
	return snap, source, nil
}

// edit runs fn on the event's session under its lock. When the store version moved,
// the edit is logged and the new state is autosaved as a draft.
func (s *service) edit(ctx context.Context, eventID, operation, target string, fn func(sess *Session) error) (*Session, error) {
	sess, err := s.session(ctx, eventID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	before := sess.store.Version()
	err = fn(sess)
	after := sess.store.Version()
	var snap layout.Snapshot
	if after != before {
		snap = sess.store.Snapshot()
	}
	sess.mu.Unlock()

	outcome := string(layout.OutcomeApplied)
	switch {
	case err != nil:
		outcome = err.Error()
	case after == before:
		outcome = string(layout.OutcomeUnchanged)
	}
	logger.GetDefault().LogLayoutEdit(ctx, eventID, operation, target, outcome)

	if after != before {
		s.autosave(ctx, eventID, after, snap)
	}
	return sess, err
}

func (s *service) autosave(ctx context.Context, eventID string, version uint64, snap layout.Snapshot) {
	if s.drafts == nil {
		return
	}
	if err := s.drafts.Save(ctx, eventID, version, snap); err != nil {
		logger.GetDefault().WithError(err).WarnContext(ctx, "Draft autosave failed",
			slog.String("event_id", eventID))
	}
}

func (s *service) hasDraft(ctx context.Context, eventID string) bool {
	return s.drafts != nil && s.drafts.Exists(ctx, eventID)
}

func (s *service) layoutResponse(ctx context.Context, sess *Session) *LayoutResponse {
	sess.mu.Lock()
	snap := sess.store.Snapshot()
	version := sess.store.Version()
	sess.mu.Unlock()

	eventID := sess.eventID.String()
	return &LayoutResponse{
		EventID:  eventID,
		Version:  version,
		Zones:    snap.Zones,
		Seats:    snap.Seats,
		Stats:    statsOf(snap),
		HasDraft: s.hasDraft(ctx, eventID),
	}
}

// zoneResponse must be called with sess.mu held.
func zoneResponse(sess *Session, zoneID string) (*ZoneResponse, error) {
	z, ok := sess.store.Zone(zoneID)
	if !ok {
		return nil, layout.ErrZoneNotFound
	}
	return &ZoneResponse{
		EventID: sess.eventID.String(),
		Version: sess.store.Version(),
		Zone:    z,
		Seats:   sess.store.SeatsOf(zoneID),
	}, nil
}

// ============= EVENT LAYOUTS =============

func (s *service) GetLayout(ctx context.Context, eventID string) (*LayoutResponse, error) {
	sess, err := s.session(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return s.layoutResponse(ctx, sess), nil
}

// SaveLayout persists a version-stamped snapshot. The session lock is released while
// the database call runs; if the session moved on meanwhile, its edits are kept and
// the response is marked stale.
func (s *service) SaveLayout(ctx context.Context, eventID string) (*SaveLayoutResponse, error) {
	sess, err := s.session(ctx, eventID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	snap := sess.store.Snapshot()
	stamped := sess.store.Version()
	sess.mu.Unlock()

	canonical, err := s.repo.ReplaceLayout(ctx, sess.eventID, snap)
	if err != nil {
		return nil, fmt.Errorf("failed to save layout: %w", err)
	}

	sess.mu.Lock()
	stale := sess.store.Version() != stamped
	if !stale {
		sess.store.Replace(canonical)
	}
	version := sess.store.Version()
	sess.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Set(ctx, constants.BuildEventLayoutKey(eventID), canonical, s.cfg.LayoutCacheTTL); err != nil {
			logger.GetDefault().WithError(err).WarnContext(ctx, "Failed to cache saved layout",
				slog.String("event_id", eventID))
		}
	}
	if !stale && s.drafts != nil {
		if err := s.drafts.Discard(ctx, eventID); err != nil {
			logger.GetDefault().WithError(err).WarnContext(ctx, "Failed to discard draft after save",
				slog.String("event_id", eventID))
		}
	}

	stats := statsOf(canonical)
	if err := s.publisher.PublishLayoutSaved(ctx, &layoutevents.LayoutSaved{
		EventID:        eventID,
		Version:        version,
		Zones:          stats.Zones,
		Seats:          stats.Seats,
		AvailableSeats: stats.AvailableSeats,
		Stale:          stale,
	}); err != nil {
		logger.GetDefault().WithError(err).WarnContext(ctx, "Failed to publish layout saved event",
			slog.String("event_id", eventID))
	}

	logger.GetDefault().LogLayoutSaved(ctx, eventID, version, stale)
	return &SaveLayoutResponse{LayoutResponse: *s.layoutResponse(ctx, sess), Stale: stale}, nil
}

func (s *service) ImportLayout(ctx context.Context, eventID string, req ImportLayoutRequest) (*LayoutResponse, error) {
	snap := withImportDefaults(req.snapshot())
	if err := validateSnapshot(s.validate, snap); err != nil {
		return nil, err
	}

	migrated, n := layout.MigrateLegacySeats(snap)
	if err := requireAddresses(migrated); err != nil {
		return nil, err
	}

	sess, err := s.edit(ctx, eventID, "import", eventID, func(sess *Session) error {
		if n > 0 {
			logger.GetDefault().LogLegacySeatsMigrated(ctx, eventID, n)
		}
		sess.replace(migrated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.layoutResponse(ctx, sess), nil
}

// ============= ZONES =============

func (s *service) AddZone(ctx context.Context, eventID string) (*ZoneResponse, error) {
	var resp *ZoneResponse
	_, err := s.edit(ctx, eventID, "add_zone", "", func(sess *Session) error {
		z := sess.store.AddZone()
		var err error
		resp, err = zoneResponse(sess, z.ID)
		return err
	})
	return resp, err
}

func (s *service) UpdateZone(ctx context.Context, eventID, zoneID string, req UpdateZoneRequest) (*ZoneResponse, error) {
	patch, err := req.patch()
	if err != nil {
		return nil, fmt.Errorf("%w: unknown preset", err)
	}

	var resp *ZoneResponse
	_, err = s.edit(ctx, eventID, "update_zone", zoneID, func(sess *Session) error {
		var asked layout.ConfirmReason
		outcome := sess.store.UpdateZone(zoneID, patch, confirmWith(req.Confirm, &asked))
		if err := outcomeError(outcome, asked); err != nil {
			return err
		}
		var err error
		resp, err = zoneResponse(sess, zoneID)
		return err
	})
	return resp, err
}

func (s *service) DuplicateZone(ctx context.Context, eventID, zoneID string) (*ZoneResponse, error) {
	var resp *ZoneResponse
	_, err := s.edit(ctx, eventID, "duplicate_zone", zoneID, func(sess *Session) error {
		dup, ok := sess.store.DuplicateZone(zoneID)
		if !ok {
			return layout.ErrZoneNotFound
		}
		var err error
		resp, err = zoneResponse(sess, dup.ID)
		return err
	})
	return resp, err
}

func (s *service) DeleteZone(ctx context.Context, eventID, zoneID string) error {
	_, err := s.edit(ctx, eventID, "delete_zone", zoneID, func(sess *Session) error {
		if !sess.store.DeleteZone(zoneID) {
			return layout.ErrZoneNotFound
		}
		return nil
	})
	return err
}

func (s *service) ConvertZone(ctx context.Context, eventID, zoneID string, req ConvertZoneRequest) (*ZoneResponse, error) {
	var resp *ZoneResponse
	_, err := s.edit(ctx, eventID, "convert_zone", zoneID, func(sess *Session) error {
		var asked layout.ConfirmReason
		outcome := sess.store.ConvertMode(zoneID, layout.Mode(req.Target), confirmWith(req.Confirm, &asked))
		if err := outcomeError(outcome, asked); err != nil {
			return err
		}
		var err error
		resp, err = zoneResponse(sess, zoneID)
		return err
	})
	return resp, err
}

func (s *service) RenumberZone(ctx context.Context, eventID, zoneID string) (*ZoneResponse, error) {
	var resp *ZoneResponse
	_, err := s.edit(ctx, eventID, "renumber_zone", zoneID, func(sess *Session) error {
		if !sess.store.Renumber(zoneID) {
			return layout.ErrZoneNotFound
		}
		var err error
		resp, err = zoneResponse(sess, zoneID)
		return err
	})
	return resp, err
}

func (s *service) ZoneGesture(ctx context.Context, eventID, zoneID string, req ZoneGestureRequest) (*GestureResponse, error) {
	resp := &GestureResponse{ZoneID: zoneID}
	_, err := s.edit(ctx, eventID, "zone_gesture", zoneID, func(sess *Session) error {
		var err error
		switch req.Kind {
		case "rotate":
			err = outcomeError(sess.store.RotateZone(zoneID, req.Degrees), "")
		case "nudge":
			err = outcomeError(sess.store.MoveZone(zoneID, req.DX, req.DY), "")
		default:
			err = s.pointerGesture(sess, zoneID, req, resp)
		}
		if err != nil {
			return err
		}

		if req.Kind == "rotate" || req.Kind == "nudge" || req.Phase == "release" {
			z, _ := sess.store.Zone(zoneID)
			resp.Layout = z.Layout
		}
		resp.State = sess.manip.State(zoneID)
		resp.Version = sess.store.Version()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *service) pointerGesture(sess *Session, zoneID string, req ZoneGestureRequest, resp *GestureResponse) error {
	switch req.Phase {
	case "begin":
		var err error
		if req.Kind == "resize" {
			err = sess.manip.BeginResize(zoneID, layout.Corner(req.Corner))
		} else {
			err = sess.manip.BeginDrag(zoneID)
		}
		if err != nil {
			return err
		}
		z, _ := sess.store.Zone(zoneID)
		resp.Layout = z.Layout
		return nil
	case "update":
		r, guides, err := sess.manip.Update(zoneID, req.DX, req.DY)
		if err != nil {
			return err
		}
		resp.Layout, resp.Guides = r, guides
		return nil
	case "release":
		_, err := sess.manip.Release(zoneID, req.DX, req.DY)
		return err
	default:
		return fmt.Errorf("%w: gesture phase is required", ErrInvalidRequest)
	}
}

func (s *service) ZoneGuides(ctx context.Context, eventID, zoneID string, req GuidesRequest) ([]layout.Guide, error) {
	sess, err := s.session(ctx, eventID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if _, ok := sess.store.Zone(zoneID); !ok {
		return nil, layout.ErrZoneNotFound
	}
	guides := sess.store.Guides(zoneID, layout.Rect{X: req.X, Y: req.Y, Width: req.Width, Height: req.Height})
	if guides == nil {
		guides = []layout.Guide{}
	}
	return guides, nil
}

// ============= SEATS =============

func (s *service) CreateSeat(ctx context.Context, eventID, zoneID string, req CreateSeatRequest) (*layout.Seat, error) {
	var seat layout.Seat
	_, err := s.edit(ctx, eventID, "create_seat", zoneID, func(sess *Session) error {
		if _, ok := sess.store.Zone(zoneID); !ok {
			return layout.ErrZoneNotFound
		}

		var ok bool
		switch {
		case req.Row != nil && req.Col != nil:
			seat, ok = sess.store.CreateSeatAt(zoneID, int(*req.Row), int(*req.Col))
		case req.X != nil && req.Y != nil:
			seat, ok = sess.store.PlaceSeat(zoneID, *req.X, *req.Y)
		default:
			return fmt.Errorf("%w: either row/col or x/y is required", ErrInvalidRequest)
		}
		if !ok {
			return ErrUnsupportedEdit
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (s *service) DeleteSeats(ctx context.Context, eventID, zoneID string, req DeleteSeatsRequest) (*DeleteSeatsResponse, error) {
	resp := &DeleteSeatsResponse{}
	_, err := s.edit(ctx, eventID, "delete_seats", zoneID, func(sess *Session) error {
		removed, err := sess.store.DeleteSeats(zoneID, req.SeatIDs, layout.Strategy(req.Strategy))
		if err != nil {
			return err
		}
		if _, ok := sess.store.Zone(zoneID); !ok {
			return layout.ErrZoneNotFound
		}
		resp.Removed = removed
		resp.Seats = sess.store.SeatsOf(zoneID)
		resp.Version = sess.store.Version()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *service) UpdateSeat(ctx context.Context, eventID, seatID string, req UpdateSeatRequest) (*layout.Seat, error) {
	var seat layout.Seat
	_, err := s.edit(ctx, eventID, "update_seat", seatID, func(sess *Session) error {
		var ok bool
		seat, ok = sess.store.UpdateSeat(seatID, req.patch())
		if !ok {
			return layout.ErrSeatNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (s *service) SeatGesture(ctx context.Context, eventID string, req SeatGestureRequest) (*SeatGestureResponse, error) {
	resp := &SeatGestureResponse{}
	_, err := s.edit(ctx, eventID, "seat_gesture", req.Primary, func(sess *Session) error {
		var positions map[string]layout.Point
		var err error

		switch req.Phase {
		case "begin":
			if err = sess.manip.BeginSeatDrag(req.Primary, req.Selection); err != nil {
				return err
			}
			primary, _ := sess.store.Seat(req.Primary)
			p, _ := primary.Point()
			positions, err = sess.manip.UpdateSeatDrag(p.X, p.Y)
		case "update":
			positions, err = sess.manip.UpdateSeatDrag(req.X, req.Y)
		case "release":
			positions, err = sess.manip.ReleaseSeatDrag(req.X, req.Y)
		case "nudge":
			ids := append([]string{req.Primary}, req.Selection...)
			if err = sess.store.MoveSeats(ids, req.DX, req.DY); err != nil {
				return err
			}
			positions = make(map[string]layout.Point, len(ids))
			for _, id := range ids {
				seat, _ := sess.store.Seat(id)
				positions[id], _ = seat.Point()
			}
		default:
			return fmt.Errorf("%w: unknown gesture phase %q", ErrInvalidRequest, req.Phase)
		}
		if err != nil {
			return err
		}

		resp.Positions = make(map[string]Position, len(positions))
		for id, p := range positions {
			resp.Positions[id] = Position{X: p.X, Y: p.Y}
		}
		resp.Version = sess.store.Version()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ============= DRAFTS =============

func (s *service) GetDraft(ctx context.Context, eventID string) (*DraftResponse, error) {
	if _, err := parseEventID(eventID); err != nil {
		return nil, err
	}
	if s.drafts == nil {
		return nil, drafts.ErrNoDraft
	}

	d, err := s.drafts.Load(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &DraftResponse{
		EventID: d.EventID,
		Version: d.Version,
		SavedAt: d.SavedAt,
		Zones:   d.Zones,
		Seats:   d.Seats,
		Layout:  d.Layout,
	}, nil
}

// RestoreDraft replaces the session with the autosaved draft. The draft is kept until
// the layout is saved or the draft is discarded.
func (s *service) RestoreDraft(ctx context.Context, eventID string) (*LayoutResponse, error) {
	d, err := s.GetDraft(ctx, eventID)
	if err != nil {
		return nil, err
	}

	sess, err := s.edit(ctx, eventID, "restore_draft", eventID, func(sess *Session) error {
		sess.replace(d.Layout)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.layoutResponse(ctx, sess), nil
}

func (s *service) DiscardDraft(ctx context.Context, eventID string) error {
	if _, err := parseEventID(eventID); err != nil {
		return err
	}
	if s.drafts == nil {
		return nil
	}
	return s.drafts.Discard(ctx, eventID)
}

// ============= NUMBERING =============

func (s *service) PreviewNumbering(req NumberingPreviewRequest) (*NumberingPreviewResponse, error) {
	cfg := numbering.Default()
	if req.Numbering != nil {
		cfg = *req.Numbering
	}
	if req.Preset != "" {
		preset, ok := numbering.LookupPreset(req.Preset)
		if !ok {
			return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidRequest, req.Preset)
		}
		cfg = preset.Apply(cfg)
	}
	cfg = cfg.Normalize()

	return &NumberingPreviewResponse{
		Rows:      req.Rows,
		Cols:      req.Cols,
		Preset:    numbering.DetectPreset(cfg),
		Numbering: cfg,
		Labels:    numbering.Grid(cfg, req.Rows, req.Cols),
	}, nil
}

func (s *service) Presets() []numbering.Preset {
	return numbering.Presets()
}

var errNoTemplateSource = errors.New("either event_id or layout is required")
