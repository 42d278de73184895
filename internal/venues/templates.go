package venues

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"venueplan/internal/layout"
	"venueplan/internal/layoutevents"
	"venueplan/internal/shared/constants"
	"venueplan/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func toTemplateSummary(t *TemplateRow) TemplateSummary {
	return TemplateSummary{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		Zones:       t.Zones,
		Seats:       t.Seats,
		CreatedAt:   t.CreatedAt,
	}
}

func toTemplateResponse(t *TemplateRow) *TemplateResponse {
	return &TemplateResponse{
		TemplateSummary: toTemplateSummary(t),
		Layout:          layout.Snapshot(t.Snapshot),
	}
}

// CreateTemplate stores a reusable layout, copied from a live event or given inline.
func (s *service) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*TemplateResponse, error) {
	if _, err := s.repo.GetTemplateByName(ctx, req.Name); err == nil {
		return nil, ErrTemplateNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check template name: %w", err)
	}

	var snap layout.Snapshot
	switch {
	case req.EventID != "":
		sess, err := s.session(ctx, req.EventID)
		if err != nil {
			return nil, err
		}
		sess.mu.Lock()
		snap = sess.store.Snapshot()
		sess.mu.Unlock()
	case req.Layout != nil:
		snap = withImportDefaults(req.Layout.snapshot())
		if err := validateSnapshot(s.validate, snap); err != nil {
			return nil, err
		}
		snap, _ = layout.MigrateLegacySeats(snap)
		if err := requireAddresses(snap); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, errNoTemplateSource)
	}

	row := &TemplateRow{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Zones:       len(snap.Zones),
		Seats:       len(snap.Seats),
		Snapshot:    SnapshotJSON(snap),
	}
	if err := s.repo.CreateTemplate(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_TEMPLATES_ALL); err != nil {
			logger.GetDefault().WithError(err).WarnContext(ctx, "Failed to invalidate template cache")
		}
	}

	if err := s.publisher.PublishTemplateSaved(ctx, &layoutevents.TemplateSaved{
		TemplateID: row.ID.String(),
		Name:       row.Name,
		Zones:      row.Zones,
		Seats:      row.Seats,
	}); err != nil {
		logger.GetDefault().WithError(err).WarnContext(ctx, "Failed to publish template saved event",
			slog.String("template_id", row.ID.String()))
	}

	logger.GetDefault().LogTemplateSaved(ctx, row.ID.String(), row.Name)
	return toTemplateResponse(row), nil
}

func (s *service) GetTemplates(ctx context.Context, filters TemplateFilters) (*PaginatedTemplates, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}
	if filters.Limit > 100 {
		filters.Limit = 100
	}

	fetch := func() (interface{}, error) {
		return s.repo.GetTemplates(ctx, filters)
	}
	if s.cache == nil {
		return s.repo.GetTemplates(ctx, filters)
	}

	key := fmt.Sprintf("%s:%s:%d:%d:%s:%s", constants.CACHE_KEY_LAYOUT_TEMPLATES,
		filters.Search, filters.Page, filters.Limit, filters.SortBy, filters.SortOrder)

	var result PaginatedTemplates
	if err := s.cache.GetOrSet(ctx, key, constants.TTL_LAYOUT_TEMPLATES, fetch, &result); err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}
	return &result, nil
}

func (s *service) GetTemplateByID(ctx context.Context, id string) (*TemplateResponse, error) {
	row, err := s.template(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTemplateResponse(row), nil
}

// template reads a template row cache-aside.
func (s *service) template(ctx context.Context, id string) (*TemplateRow, error) {
	templateID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplateID, id)
	}

	fetch := func() (interface{}, error) {
		row, err := s.repo.GetTemplateByID(ctx, templateID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return row, err
	}

	if s.cache == nil {
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		return v.(*TemplateRow), nil
	}

	var row TemplateRow
	if err := s.cache.GetOrSet(ctx, constants.BuildLayoutTemplateKey(id), constants.TTL_LAYOUT_TEMPLATE, fetch, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// ApplyTemplate replaces the event's layout with a fresh copy of a template. A
// non-empty layout is only overwritten with confirmation.
func (s *service) ApplyTemplate(ctx context.Context, eventID string, req ApplyTemplateRequest) (*LayoutResponse, error) {
	row, err := s.template(ctx, req.TemplateID)
	if err != nil {
		return nil, err
	}

	sess, err := s.edit(ctx, eventID, "apply_template", req.TemplateID, func(sess *Session) error {
		if len(sess.store.Zones()) > 0 && !req.Confirm {
			return &ConfirmationError{Reason: ReasonReplaceLayout}
		}
		sess.replace(cloneWithFreshIDs(layout.Snapshot(row.Snapshot), sess.store.Options().NewID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.layoutResponse(ctx, sess), nil
}
