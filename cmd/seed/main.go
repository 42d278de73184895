package main

import (
	"context"
	"fmt"
	"log"

	"venueplan/internal/layout"
	"venueplan/internal/numbering"
	"venueplan/internal/shared/config"
	"venueplan/internal/shared/database"
	"venueplan/internal/venues"

	"github.com/google/uuid"
)

type Seeder struct {
	db   *database.DB
	repo venues.Repository
	opts layout.Options
}

func main() {
	fmt.Println("🌱 Starting Venueplan Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{
		db:   db,
		repo: venues.NewRepository(db.PostgreSQL),
		opts: layout.DefaultOptions(),
	}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(context.Background()); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates the layout tables
func (s *Seeder) CleanDatabase(ctx context.Context) error {
	tables := []string{
		"layout_seats",
		"layout_zones",
		"layout_templates",
	}

	tx := s.db.BeginTx(ctx)
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds templates and one demo event layout
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	theater := s.theaterLayout()
	conference := s.conferenceHallLayout()

	templates := []struct {
		name        string
		description string
		snapshot    layout.Snapshot
	}{
		{"Theater", "Stage with stalls and a snaking balcony", theater},
		{"Conference Hall", "Stage with two column-numbered wings", conference},
	}

	fmt.Println("  🏛️  Seeding layout templates...")
	for _, t := range templates {
		row := &venues.TemplateRow{
			ID:          uuid.New(),
			Name:        t.name,
			Description: t.description,
			Zones:       len(t.snapshot.Zones),
			Seats:       len(t.snapshot.Seats),
			Snapshot:    venues.SnapshotJSON(t.snapshot),
		}
		if err := s.repo.CreateTemplate(ctx, row); err != nil {
			return fmt.Errorf("failed to create template %s: %w", t.name, err)
		}
		fmt.Printf("    ✅ Created template: %s (%d zones, %d seats)\n", row.Name, row.Zones, row.Seats)
	}

	fmt.Println("  🎭 Seeding demo event layout...")
	eventID := uuid.New()
	saved, err := s.repo.ReplaceLayout(ctx, eventID, theater)
	if err != nil {
		return fmt.Errorf("failed to save demo layout: %w", err)
	}
	fmt.Printf("    ✅ Demo event %s (%d zones, %d seats)\n", eventID, len(saved.Zones), len(saved.Seats))

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// theaterLayout builds a stage, a grid of stalls and a snaking balcony with a few
// seats sold and the aisle seats blocked.
func (s *Seeder) theaterLayout() layout.Snapshot {
	store := layout.NewStore(layout.Snapshot{}, s.opts)

	stage := store.AddZone()
	store.UpdateZone(stage.ID, layout.ZonePatch{
		Name: ptr("Stage"),
		Type: ptr(layout.ZoneTypeStage),
	}, layout.Confirmed)
	store.SetZoneLayout(stage.ID, layout.Rect{X: 12, Y: 12, Width: 400, Height: 80})

	stalls := store.AddZone()
	store.UpdateZone(stalls.ID, layout.ZonePatch{
		Name:  ptr("Stalls"),
		Rows:  ptr(8),
		Cols:  ptr(14),
		Price: ptr(45.0),
	}, layout.Confirmed)
	store.MoveZone(stalls.ID, 0, 100)

	balcony := store.AddZone()
	store.UpdateZone(balcony.ID, layout.ZonePatch{
		Name:         ptr("Balcony"),
		Rows:         ptr(4),
		Cols:         ptr(12),
		Price:        ptr(30.0),
		Snake:        ptr(true),
		RowLabelType: ptr(numbering.RowLabelRoman),
	}, layout.Confirmed)
	store.MoveZone(balcony.ID, 0, 380)

	for i, seat := range store.SeatsOf(stalls.ID) {
		switch {
		case seat.ColLabel == "7" || seat.ColLabel == "8":
			store.UpdateSeat(seat.ID, layout.SeatPatch{Status: ptr(layout.SeatStatusBlocked)})
		case i%9 == 0:
			store.UpdateSeat(seat.ID, layout.SeatPatch{Status: ptr(layout.SeatStatusSold)})
		}
	}

	return store.Snapshot()
}

// conferenceHallLayout builds two column-numbered wings around a central stage.
func (s *Seeder) conferenceHallLayout() layout.Snapshot {
	store := layout.NewStore(layout.Snapshot{}, s.opts)

	stage := store.AddZone()
	store.UpdateZone(stage.ID, layout.ZonePatch{
		Name: ptr("Podium"),
		Type: ptr(layout.ZoneTypeStage),
	}, layout.Confirmed)

	for i, name := range []string{"Left Wing", "Right Wing"} {
		wing := store.AddZone()
		direction := numbering.DirectionLTR
		if i == 1 {
			direction = numbering.DirectionRTL
		}
		store.UpdateZone(wing.ID, layout.ZonePatch{
			Name:       ptr(name),
			Rows:       ptr(6),
			Cols:       ptr(8),
			Mode:       ptr(numbering.ModeColumn),
			Direction:  ptr(direction),
			Continuous: ptr(true),
		}, layout.Confirmed)
		store.MoveZone(wing.ID, float64(i)*260, 120)
	}

	return store.Snapshot()
}

func ptr[T any](v T) *T { return &v }
