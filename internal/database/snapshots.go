package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// SaveSnapshot stores points under a new snapshot in a single transaction
func (d *Database) SaveSnapshot(points []SnapshotPoint) (uint, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("failed to save snapshot: no points")
	}

	var id uint
	err := d.db.Transaction(func(tx *gorm.DB) error {
		snapshot := Snapshot{}
		if err := tx.Create(&snapshot).Error; err != nil {
			return fmt.Errorf("failed to create snapshot: %w", err)
		}

		rows := make([]SnapshotPoint, len(points))
		for i, p := range points {
			p.ID = 0
			p.SnapshotID = snapshot.ID
			rows[i] = p
		}
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return fmt.Errorf("failed to insert snapshot points: %w", err)
		}

		id = snapshot.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetSnapshotPoints returns the points of a snapshot ordered by series and position
func (d *Database) GetSnapshotPoints(id uint) ([]SnapshotPoint, error) {
	var snapshot Snapshot
	if err := d.db.First(&snapshot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrSnapshotNotFound, id)
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var points []SnapshotPoint
	err := d.db.
		Where("snapshot_id = ?", id).
		Order("period, category, position").
		Find(&points).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot points: %w", err)
	}
	return points, nil
}

// LatestSnapshotID returns the most recently created snapshot id
func (d *Database) LatestSnapshotID() (uint, error) {
	var snapshot Snapshot
	if err := d.db.Order("id DESC").First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrSnapshotNotFound
		}
		return 0, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return snapshot.ID, nil
}
