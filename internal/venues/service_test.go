package venues

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"venueplan/internal/drafts"
	"venueplan/internal/layout"
	"venueplan/internal/layoutevents"
	"venueplan/internal/shared/constants"
	"venueplan/pkg/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRepo keeps layouts and templates in memory.
type fakeRepo struct {
	mu        sync.Mutex
	layouts   map[uuid.UUID]layout.Snapshot
	templates map[uuid.UUID]*TemplateRow
	loads     int

	// onReplace runs before a save is stored, outside the repo lock.
	onReplace func()
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		layouts:   make(map[uuid.UUID]layout.Snapshot),
		templates: make(map[uuid.UUID]*TemplateRow),
	}
}

func (r *fakeRepo) LoadLayout(_ context.Context, eventID uuid.UUID) (layout.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads++
	return r.layouts[eventID].Clone(), nil
}

func (r *fakeRepo) ReplaceLayout(_ context.Context, eventID uuid.UUID, snapshot layout.Snapshot) (layout.Snapshot, error) {
	if r.onReplace != nil {
		r.onReplace()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layouts[eventID] = snapshot.Clone()
	return snapshot.Clone(), nil
}

func (r *fakeRepo) stored(eventID uuid.UUID) layout.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.layouts[eventID].Clone()
}

func (r *fakeRepo) CreateTemplate(_ context.Context, template *TemplateRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	template.CreatedAt = time.Now()
	r.templates[template.ID] = template
	return nil
}

func (r *fakeRepo) GetTemplateByID(_ context.Context, id uuid.UUID) (*TemplateRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.templates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *fakeRepo) GetTemplateByName(_ context.Context, name string) (*TemplateRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.templates {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetTemplates(_ context.Context, filters TemplateFilters) (*PaginatedTemplates, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := &PaginatedTemplates{Page: filters.Page, Limit: filters.Limit}
	for _, t := range r.templates {
		out.Templates = append(out.Templates, toTemplateSummary(t))
	}
	out.TotalCount = int64(len(out.Templates))
	out.TotalPages = 1
	return out, nil
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu        sync.Mutex
	layouts   []layoutevents.LayoutSaved
	templates []layoutevents.TemplateSaved
}

func (p *recordingPublisher) PublishLayoutSaved(_ context.Context, e *layoutevents.LayoutSaved) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.layouts = append(p.layouts, *e)
	return nil
}

func (p *recordingPublisher) PublishTemplateSaved(_ context.Context, e *layoutevents.TemplateSaved) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.templates = append(p.templates, *e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type testEnv struct {
	svc       Service
	repo      *fakeRepo
	cache     cache.Service
	drafts    *drafts.Store
	publisher *recordingPublisher
	redis     *miniredis.Miniredis
}

func testLayoutOptions() layout.Options {
	var mu sync.Mutex
	n := 0
	opts := layout.DefaultOptions()
	opts.NewID = func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return opts
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	env := &testEnv{
		repo:      newFakeRepo(),
		cache:     cache.NewService(client),
		publisher: &recordingPublisher{},
		redis:     mr,
	}
	env.drafts = drafts.NewStore(env.cache, time.Hour)
	env.svc = env.newService()
	return env
}

// newService builds a second service over the same backing stores, as another
// process would.
func (e *testEnv) newService() Service {
	return NewService(e.repo, e.cache, e.drafts, e.publisher, ServiceConfig{
		Layout:         testLayoutOptions(),
		LayoutCacheTTL: time.Minute,
	})
}

func TestService_InvalidEventID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.GetLayout(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, ErrInvalidEventID)
	assert.Equal(t, http.StatusBadRequest, statusFor(err))
}

func TestService_EditAutosavesAndSaveDiscardsDraft(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	eventID := uuid.New()

	empty, err := env.svc.GetLayout(ctx, eventID.String())
	require.NoError(t, err)
	assert.Empty(t, empty.Zones)
	assert.False(t, empty.HasDraft)

	zone, err := env.svc.AddZone(ctx, eventID.String())
	require.NoError(t, err)
	assert.Len(t, zone.Seats, 50)

	current, err := env.svc.GetLayout(ctx, eventID.String())
	require.NoError(t, err)
	assert.True(t, current.HasDraft)
	assert.Equal(t, 50, current.Stats.AvailableSeats)

	draft, err := env.svc.GetDraft(ctx, eventID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, draft.Zones)
	assert.Equal(t, 50, draft.Seats)

	saved, err := env.svc.SaveLayout(ctx, eventID.String())
	require.NoError(t, err)
	assert.False(t, saved.Stale)
	assert.False(t, saved.HasDraft)
	assert.Len(t, env.repo.stored(eventID).Seats, 50)
	assert.True(t, env.redis.Exists(constants.BuildEventLayoutKey(eventID.String())))

	_, err = env.svc.GetDraft(ctx, eventID.String())
	require.ErrorIs(t, err, drafts.ErrNoDraft)

	require.Len(t, env.publisher.layouts, 1)
	assert.Equal(t, eventID.String(), env.publisher.layouts[0].EventID)
	assert.Equal(t, 50, env.publisher.layouts[0].AvailableSeats)
	assert.False(t, env.publisher.layouts[0].Stale)
}

func TestService_SaveIsStaleWhenEditedInFlight(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	eventID := uuid.New().String()

	_, err := env.svc.AddZone(ctx, eventID)
	require.NoError(t, err)

	env.repo.onReplace = func() {
		env.repo.onReplace = nil
		_, err := env.svc.AddZone(ctx, eventID)
		require.NoError(t, err)
	}

	saved, err := env.svc.SaveLayout(ctx, eventID)
	require.NoError(t, err)
	assert.True(t, saved.Stale)
	assert.Len(t, saved.Zones, 2, "in-flight edit must survive the save")
	assert.Len(t, env.repo.stored(uuid.MustParse(eventID)).Zones, 1)
	assert.True(t, saved.HasDraft, "draft is kept while edits are unsaved")

	require.Len(t, env.publisher.layouts, 1)
	assert.True(t, env.publisher.layouts[0].Stale)
}

func TestService_SecondServiceLoadsSavedLayoutFromCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	eventID := uuid.New().String()

	_, err := env.svc.AddZone(ctx, eventID)
	require.NoError(t, err)
	_, err = env.svc.SaveLayout(ctx, eventID)
	require.NoError(t, err)
	loadsBefore := env.repo.loads

	other := env.newService()
	got, err := other.GetLayout(ctx, eventID)
	require.NoError(t, err)
	assert.Len(t, got.Zones, 1)
	assert.Len(t, got.Seats, 50)
	assert.Equal(t, loadsBefore, env.repo.loads, "layout should come from the cache")
}

func TestService_UpdateZoneNeedsConfirmation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	eventID := uuid.New().String()

	zone, err := env.svc.AddZone(ctx, eventID)
	require.NoError(t, err)

	rows := FlexInt(2)
	_, err = env.svc.UpdateZone(ctx, eventID, zone.Zone.ID, UpdateZoneRequest{Rows: &rows})
	var confirmErr *ConfirmationError
	require.ErrorAs(t, err, &confirmErr)
	assert.Equal(t, layout.ReasonDimensionChange, confirmErr.Reason)
	assert.Equal(t, http.StatusConflict, statusFor(err))

	updated, err := env.svc.UpdateZone(ctx, eventID, zone.Zone.ID, UpdateZoneRequest{Rows: &rows, Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Zone.Rows)
	assert.Len(t, updated.Seats, 20)

	preset := "no-such-preset"
	_, err = env.svc.UpdateZone(ctx, eventID, zone.Zone.ID, UpdateZoneRequest{Preset: &preset})
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = env.svc.UpdateZone(ctx, eventID, "missing", UpdateZoneRequest{Rows: &rows})
	require.ErrorIs(t, err, layout.ErrZoneNotFound)
}

func TestService_DuplicateConvertAndDeleteZone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	eventID := uuid.New().String()

	zone, err := env.svc.AddZone(ctx, eventID)
	require.NoError(t, err)

	dup, err := env.svc.DuplicateZone(ctx, eventID, zone.Zone.ID)
	require.NoError(t, err)
	assert.NotEqual(t, zone.Zone.ID, dup.Zone.ID)
	assert.Len(t, dup.Seats, 50)

	_, err = env.svc.ConvertZone(ctx, eventID, dup.Zone.ID, ConvertZoneRequest{Target: "FREEFORM"})
	var confirmErr *ConfirmationError
	require.ErrorAs(t, err, &confirmErr)
	assert.Equal(t, layout.ReasonModeConversion, confirmErr.Reason)

	converted, err := env.svc.ConvertZone(ctx, eventID, dup.Zone.ID, ConvertZoneRequest{Target: "FREEFORM", Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, layout.ModeFreeform, converted.Zone.Mode())

	_, err = env.svc.ConvertZone(ctx, eventID, dup.Zone.ID, ConvertZoneRequest{Target: "GRID", Confirm: true})
	require.ErrorIs(t, err, ErrUnsupportedEdit)

	require.NoError(t, env.svc.DeleteZone(ctx, eventID, zone.Zone.ID))
	require.ErrorIs(t, env.svc.DeleteZone(ctx, eventID, zone.Zone.ID), layout.ErrZoneNotFound)

	current, err := env.svc.GetLayout(ctx, eventID)
	require.NoError(t, err)
	assert.Len(t, current.Zones, 1)
	assert.Len(t, current.Seats, 50)
}

func TestService_DeleteSeatsAndCreateSeat(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	eventID := uuid.New().String()

	zone, err := env.svc.AddZone(ctx, eventID)
	require.NoError(t, err)
	victim := zone.Seats[0]

	_, err = env.svc.DeleteSeats(ctx, eventID, zone.Zone.ID, DeleteSeatsRequest{SeatIDs: []string{victim.ID}, Strategy: "SHUFFLE"})
	require.ErrorIs(t, err, layout.ErrUnknownStrategy)

	deleted, err := env.svc.DeleteSeats(ctx, eventID, zone.Zone.ID, DeleteSeatsRequest{SeatIDs: []string{victim.ID}, Strategy: "LEAVE_GAP"})
	require.NoError(t, err)
	assert.Equal(t, 1, deleted.Removed)
	assert.Len(t, deleted.Seats, 49)

	cell, ok := victim.Cell()
	require.True(t, ok)
	row, col := FlexInt(cell.Row), FlexInt(cell.Col)
	seat, err := env.svc.CreateSeat(ctx, eventID, zone.Zone.ID, CreateSeatRequest{Row: &row, Col: &col})
	require.NoError(t, err)
	assert.Equal(t, victim.RowLabel, seat.RowLabel)
	assert.Equal(t, victim.ColLabel, seat.ColLabel)

	_, err = env.svc.CreateSeat(ctx, eventID, zone.Zone.ID, CreateSeatRequest{Row: &row, Col: &col})
	require.ErrorIs(t, err, ErrUnsupportedEdit, "cell is taken")

	_, err = env.svc.CreateSeat(ctx, eventID, zone.Zone.ID, CreateSeatRequest{})
	require.ErrorIs(t, err, ErrInvalidRequest)

	blocked := "BLOCKED"
	updated, err := env.svc.UpdateSeat(ctx, eventID, seat.ID, UpdateSeatRequest{Status: &blocked})
	require.NoError(t, err)
	assert.Equal(t, layout.SeatStatusBlocked, updated.Status)

	_, err = env.svc.UpdateSeat(ctx, eventID, "missing", UpdateSeatRequest{Status: &blocked})
	require.ErrorIs(t, err, layout.ErrSeatNotFound)
}

func TestService_ZoneDragGesture(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	eventID := uuid.New().String()

	zone, err := env.svc.AddZone(ctx, eventID)
	require.NoError(t, err)
	start := zone.Zone.Layout

	begun, err := env.svc.ZoneGesture(ctx, eventID, zone.Zone.ID, ZoneGestureRequest{Phase: "begin", Kind: "drag"})
	require.NoError(t, err)
	assert.Equal(t, layout.StateDragging, begun.State)
	assert.Equal(t, start, begun.Layout)

	_, err = env.svc.ZoneGesture(ctx, eventID, zone.Zone.ID, ZoneGestureRequest{Phase: "begin", Kind: "drag"})
	require.ErrorIs(t, err, layout.ErrGestureInProgress)

	preview, err := env.svc.ZoneGesture(ctx, eventID, zone.Zone.ID, ZoneGestureRequest{Phase: "update", DX: 30})
	require.NoError(t, err)
	assert.Equal(t, start.X+30, preview.Layout.X)
	assert.Equal(t, begun.Version, preview.Version, "previews do not commit")

	released, err := env.svc.ZoneGesture(ctx, eventID, zone.Zone.ID, ZoneGestureRequest{Phase: "release", DX: 40, DY: 10})
	require.NoError(t, err)
	assert.Equal(t, layout.StateIdle, released.State)
	assert.Equal(t, start.X+40, released.Layout.X)
	assert.Equal(t, start.Y+10, released.Layout.Y)
	assert.Greater(t, released.Version, begun.Version)

	_, err = env.svc.ZoneGesture(ctx, eventID, zone.Zone.ID, ZoneGestureRequest{Phase: "update", DX: 1})
	require.ErrorIs(t, err, layout.ErrNoGesture)

	_, err = env.svc.ZoneGesture(ctx, eventID, zone.Zone.ID, ZoneGestureRequest{Kind: "drag"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	rotated, err := env.svc.ZoneGesture(ctx, eventID, zone.Zone.ID, ZoneGestureRequest{Kind: "rotate", Degrees: 450})
	require.NoError(t, err)
	current, err := env.svc.GetLayout(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, 90.0, current.Zones[0].Rotation)
	assert.Equal(t, current.Version, rotated.Version)
}

func TestService_SeatDragGesture(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	eventID := uuid.New().String()

	zone, err := env.svc.AddZone(ctx, eventID)
	require.NoError(t, err)

	first, second := zone.Seats[0].ID, zone.Seats[1].ID
	_, err = env.svc.SeatGesture(ctx, eventID, SeatGestureRequest{Phase: "begin", Primary: first})
	require.ErrorIs(t, err, layout.ErrNotFreeform)

	converted, err := env.svc.ConvertZone(ctx, eventID, zone.Zone.ID, ConvertZoneRequest{Target: "FREEFORM", Confirm: true})
	require.NoError(t, err)
	var p1, p2 layout.Point
	for _, seat := range converted.Seats {
		switch seat.ID {
		case first:
			p1, _ = seat.Point()
		case second:
			p2, _ = seat.Point()
		}
	}

	begun, err := env.svc.SeatGesture(ctx, eventID, SeatGestureRequest{Phase: "begin", Primary: first, Selection: []string{second}})
	require.NoError(t, err)
	assert.Equal(t, Position{X: p1.X, Y: p1.Y}, begun.Positions[first])

	released, err := env.svc.SeatGesture(ctx, eventID, SeatGestureRequest{Phase: "release", X: 200, Y: 100})
	require.NoError(t, err)
	assert.Equal(t, Position{X: 200, Y: 100}, released.Positions[first])
	assert.Equal(t, Position{X: 200 + p2.X - p1.X, Y: 100 + p2.Y - p1.Y}, released.Positions[second])

	nudged, err := env.svc.SeatGesture(ctx, eventID, SeatGestureRequest{Phase: "nudge", Primary: first, DX: 5, DY: -5})
	require.NoError(t, err)
	assert.Equal(t, Position{X: 205, Y: 95}, nudged.Positions[first])
}

func TestService_SeatGestureUnknownPhase(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	eventID := uuid.New().String()

	_, err := env.svc.SeatGesture(ctx, eventID, SeatGestureRequest{Phase: "spin", Primary: "s1"})
	require.ErrorIs(t, err, ErrInvalidRequest)
	assert.Equal(t, http.StatusBadRequest, statusFor(err))
}

func TestService_ImportMigratesLegacySeats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	eventID := uuid.New().String()

	req := ImportLayoutRequest{
		Zones: []layout.Zone{{ID: "z1", Name: "Floor", Layout: layout.Rect{Width: 100, Height: 80}, Rows: 2, Cols: 2}},
		Seats: []layout.Seat{
			{ID: "z1-0-1", ZoneID: "z1", RowLabel: "A", ColLabel: "2"},
			{ID: "z1-1-0", ZoneID: "z1", RowLabel: "B", ColLabel: "1"},
		},
	}

	imported, err := env.svc.ImportLayout(ctx, eventID, req)
	require.NoError(t, err)
	require.Len(t, imported.Seats, 2)
	assert.Equal(t, layout.ZoneTypeSale, imported.Zones[0].Type)
	for _, seat := range imported.Seats {
		_, ok := seat.Cell()
		assert.True(t, ok, "seat %s should have its cell backfilled", seat.ID)
		assert.Equal(t, layout.SeatStatusAvailable, seat.Status)
	}

	bad := ImportLayoutRequest{
		Zones: req.Zones,
		Seats: []layout.Seat{{ID: "s1", ZoneID: "nowhere"}},
	}
	_, err = env.svc.ImportLayout(ctx, eventID, bad)
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestService_ImportRejectsUnaddressedSeats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	eventID := uuid.New().String()

	req := ImportLayoutRequest{
		Zones: []layout.Zone{{ID: "z1", Name: "Floor", Layout: layout.Rect{Width: 100, Height: 80}, Rows: 1, Cols: 4}},
		Seats: []layout.Seat{
			{ID: "a", ZoneID: "z1", RowLabel: "A", ColLabel: "1", Address: layout.GridCell{Row: 0, Col: 0}},
			{ID: "loose", ZoneID: "z1", RowLabel: "A", ColLabel: "9", Status: layout.SeatStatusSold},
		},
	}

	_, err := env.svc.ImportLayout(ctx, eventID, req)
	require.ErrorIs(t, err, ErrInvalidRequest)

	current, err := env.svc.GetLayout(ctx, eventID)
	require.NoError(t, err)
	assert.Empty(t, current.Seats)

	_, err = env.svc.CreateTemplate(ctx, CreateTemplateRequest{Name: "Loose seats", Layout: &req})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestService_Templates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	source := uuid.New().String()
	target := uuid.New().String()

	zone, err := env.svc.AddZone(ctx, source)
	require.NoError(t, err)

	tmpl, err := env.svc.CreateTemplate(ctx, CreateTemplateRequest{Name: "Small hall", EventID: source})
	require.NoError(t, err)
	assert.Equal(t, 1, tmpl.Zones)
	assert.Equal(t, 50, tmpl.Seats)
	require.Len(t, env.publisher.templates, 1)
	assert.Equal(t, tmpl.ID, env.publisher.templates[0].TemplateID)

	_, err = env.svc.CreateTemplate(ctx, CreateTemplateRequest{Name: "Small hall", EventID: source})
	require.ErrorIs(t, err, ErrTemplateNameTaken)

	_, err = env.svc.CreateTemplate(ctx, CreateTemplateRequest{Name: "Empty"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	fetched, err := env.svc.GetTemplateByID(ctx, tmpl.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Layout.Seats, 50)
	assert.True(t, env.redis.Exists(constants.BuildLayoutTemplateKey(tmpl.ID)))

	_, err = env.svc.GetTemplateByID(ctx, uuid.New().String())
	require.ErrorIs(t, err, ErrTemplateNotFound)
	_, err = env.svc.GetTemplateByID(ctx, "nope")
	require.ErrorIs(t, err, ErrInvalidTemplateID)

	listed, err := env.svc.GetTemplates(ctx, TemplateFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, listed.Page)
	assert.Equal(t, 20, listed.Limit)
	require.Len(t, listed.Templates, 1)

	_, err = env.svc.AddZone(ctx, target)
	require.NoError(t, err)

	_, err = env.svc.ApplyTemplate(ctx, target, ApplyTemplateRequest{TemplateID: tmpl.ID})
	var confirmErr *ConfirmationError
	require.ErrorAs(t, err, &confirmErr)
	assert.Equal(t, ReasonReplaceLayout, confirmErr.Reason)

	applied, err := env.svc.ApplyTemplate(ctx, target, ApplyTemplateRequest{TemplateID: tmpl.ID, Confirm: true})
	require.NoError(t, err)
	require.Len(t, applied.Zones, 1)
	assert.Len(t, applied.Seats, 50)
	assert.NotEqual(t, zone.Zone.ID, applied.Zones[0].ID, "applied zones get fresh ids")
	for _, seat := range applied.Seats {
		assert.Equal(t, applied.Zones[0].ID, seat.ZoneID)
	}
}

func TestService_PreviewNumbering(t *testing.T) {
	env := newTestEnv(t)

	preview, err := env.svc.PreviewNumbering(NumberingPreviewRequest{Rows: 2, Cols: 3, Preset: "rtl-rows"})
	require.NoError(t, err)
	assert.Equal(t, "rtl-rows", preview.Preset)
	require.Len(t, preview.Labels, 2)
	assert.Equal(t, "A", preview.Labels[0][0].Row)
	assert.Equal(t, "3", preview.Labels[0][0].Seat)
	assert.Equal(t, "1", preview.Labels[0][2].Seat)

	_, err = env.svc.PreviewNumbering(NumberingPreviewRequest{Rows: 1, Cols: 1, Preset: "diagonal"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	assert.NotEmpty(t, env.svc.Presets())
}

func TestService_WorksWithoutCacheOrDrafts(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, nil, ServiceConfig{Layout: testLayoutOptions()})
	ctx := context.Background()
	eventID := uuid.New().String()

	_, err := svc.AddZone(ctx, eventID)
	require.NoError(t, err)

	saved, err := svc.SaveLayout(ctx, eventID)
	require.NoError(t, err)
	assert.False(t, saved.HasDraft)

	_, err = svc.GetDraft(ctx, eventID)
	assert.True(t, errors.Is(err, drafts.ErrNoDraft))
	require.NoError(t, svc.DiscardDraft(ctx, eventID))
}
