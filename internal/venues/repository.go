package venues

import (
	"context"
	"fmt"

	"venueplan/internal/layout"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for layout persistence
type Repository interface {
	// Event layouts
	LoadLayout(ctx context.Context, eventID uuid.UUID) (layout.Snapshot, error)
	ReplaceLayout(ctx context.Context, eventID uuid.UUID, snapshot layout.Snapshot) (layout.Snapshot, error)

	// Layout templates
	CreateTemplate(ctx context.Context, template *TemplateRow) error
	GetTemplateByID(ctx context.Context, id uuid.UUID) (*TemplateRow, error)
	GetTemplateByName(ctx context.Context, name string) (*TemplateRow, error)
	GetTemplates(ctx context.Context, filters TemplateFilters) (*PaginatedTemplates, error)
}

// repository implements Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new layout repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ============= EVENT LAYOUTS =============

func (r *repository) LoadLayout(ctx context.Context, eventID uuid.UUID) (layout.Snapshot, error) {
	return loadLayout(r.db.WithContext(ctx), eventID)
}

// ReplaceLayout deletes the event's zones and seats and inserts snapshot in one
// transaction, then reads back the canonical form.
func (r *repository) ReplaceLayout(ctx context.Context, eventID uuid.UUID, snapshot layout.Snapshot) (layout.Snapshot, error) {
	var canonical layout.Snapshot
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&SeatRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete seats: %w", err)
		}
		if err := tx.Where("event_id = ?", eventID).Delete(&ZoneRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete zones: %w", err)
		}

		zones, seats := toRows(eventID, snapshot)
		if len(zones) > 0 {
			if err := tx.CreateInBatches(zones, 100).Error; err != nil {
				return fmt.Errorf("failed to insert zones: %w", err)
			}
		}
		if len(seats) > 0 {
			if err := tx.CreateInBatches(seats, 500).Error; err != nil {
				return fmt.Errorf("failed to insert seats: %w", err)
			}
		}

		var err error
		canonical, err = loadLayout(tx, eventID)
		return err
	})
	if err != nil {
		return layout.Snapshot{}, err
	}
	return canonical, nil
}

func loadLayout(db *gorm.DB, eventID uuid.UUID) (layout.Snapshot, error) {
	var zones []ZoneRow
	if err := db.Where("event_id = ?", eventID).Order("position ASC").Find(&zones).Error; err != nil {
		return layout.Snapshot{}, fmt.Errorf("failed to load zones: %w", err)
	}

	var seats []SeatRow
	if err := db.Where("event_id = ?", eventID).Order("position ASC").Find(&seats).Error; err != nil {
		return layout.Snapshot{}, fmt.Errorf("failed to load seats: %w", err)
	}

	return fromRows(zones, seats), nil
}

// ============= LAYOUT TEMPLATES =============

func (r *repository) CreateTemplate(ctx context.Context, template *TemplateRow) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *repository) GetTemplateByID(ctx context.Context, id uuid.UUID) (*TemplateRow, error) {
	var template TemplateRow
	err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *repository) GetTemplateByName(ctx context.Context, name string) (*TemplateRow, error) {
	var template TemplateRow
	err := r.db.WithContext(ctx).First(&template, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

var templateSortColumns = map[string]bool{
	"created_at": true,
	"name":       true,
	"seats":      true,
}

func (r *repository) GetTemplates(ctx context.Context, filters TemplateFilters) (*PaginatedTemplates, error) {
	var templates []TemplateRow
	var total int64

	// The snapshot column is not needed for listings
	query := r.db.WithContext(ctx).Model(&TemplateRow{}).
		Select("id", "name", "description", "zones", "seats", "created_at", "updated_at")

	if filters.Search != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	sortBy := filters.SortBy
	if !templateSortColumns[sortBy] {
		sortBy = "created_at"
	}
	sortOrder := "desc"
	if filters.SortOrder == "asc" {
		sortOrder = "asc"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	offset := (filters.Page - 1) * filters.Limit
	if err := query.Offset(offset).Limit(filters.Limit).Find(&templates).Error; err != nil {
		return nil, err
	}

	summaries := make([]TemplateSummary, 0, len(templates))
	for _, t := range templates {
		summaries = append(summaries, toTemplateSummary(&t))
	}

	totalPages := int((total + int64(filters.Limit) - 1) / int64(filters.Limit))

	return &PaginatedTemplates{
		Templates:  summaries,
		TotalCount: total,
		Page:       filters.Page,
		Limit:      filters.Limit,
		TotalPages: totalPages,
	}, nil
}
