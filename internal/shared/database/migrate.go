package database

import (
	"fmt"

	"venueplan/internal/venues"

	"gorm.io/gorm"
)

// legacySeatCellIndex was unique per zone id only, which collides once two events
// carry the same imported zone ids.
const legacySeatCellIndex = "idx_layout_seat_cell"

func Migrate(db *gorm.DB) error {
	m := db.Migrator()
	if m.HasTable(&venues.SeatRow{}) && m.HasIndex(&venues.SeatRow{}, legacySeatCellIndex) {
		if err := m.DropIndex(&venues.SeatRow{}, legacySeatCellIndex); err != nil {
			return fmt.Errorf("failed to drop %s: %w", legacySeatCellIndex, err)
		}
	}

	return db.AutoMigrate(
		&venues.ZoneRow{},
		&venues.SeatRow{},
		&venues.TemplateRow{},
	)
}
