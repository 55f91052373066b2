package database

import (
	"fmt"

	"gorm.io/gorm"
)

// MigrateSchema creates or updates the snapshot tables
func MigrateSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&Snapshot{}, &SnapshotPoint{}); err != nil {
		return fmt.Errorf("failed to migrate snapshot tables: %w", err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_snapshot_points_series
		ON snapshot_points(snapshot_id, period, category, position);
	`).Error; err != nil {
		return fmt.Errorf("failed to create series index: %w", err)
	}

	return nil
}

func (d *Database) RunMigrations() error {
	return MigrateSchema(d.db)
}
