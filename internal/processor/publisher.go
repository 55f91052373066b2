package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"proprates/server/config"
	"proprates/server/internal/database"
	"proprates/server/internal/models"
	"proprates/server/internal/rates"
)

// SnapshotWriter persists a set of snapshot points and returns the snapshot id
type SnapshotWriter interface {
	SaveSnapshot(points []database.SnapshotPoint) (uint, error)
}

// SnapshotPublisher captures every period/property type series into the snapshot store
type SnapshotPublisher struct {
	store  SnapshotWriter
	logger *logrus.Logger
	config *config.Config
}

// PublishResult describes a stored snapshot
type PublishResult struct {
	SnapshotID uint `json:"snapshot_id"`
	Points     int  `json:"points"`
	Attempts   int  `json:"attempts"`
}

// NewSnapshotPublisher creates a new publisher instance
func NewSnapshotPublisher(store SnapshotWriter, cfg *config.Config, logger *logrus.Logger) *SnapshotPublisher {
	if logger == nil {
		logger = cfg.NewLogger()
	}
	return &SnapshotPublisher{
		store:  store,
		config: cfg,
		logger: logger,
	}
}

// CollectPoints flattens the series of every period and property type
func CollectPoints() []database.SnapshotPoint {
	var points []database.SnapshotPoint
	for _, period := range models.Periods {
		for _, category := range models.Categories {
			for i, p := range rates.GenerateSeries(period, category) {
				points = append(points, database.SnapshotPoint{
					Period:   string(period),
					Category: string(category),
					Position: i,
					Label:    p.Label,
					Rate:     p.Rate,
				})
			}
		}
	}
	return points
}

// Publish stores a snapshot, retrying failed writes until the retries run out
// or the context ends
func (p *SnapshotPublisher) Publish(ctx context.Context) (*PublishResult, error) {
	points := CollectPoints()
	maxRetries := p.config.Snapshots.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	delay := time.Duration(p.config.Snapshots.RetryDelay) * time.Millisecond

	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			p.logger.Infof("Retrying snapshot publish, attempt %d of %d", attempt, maxRetries)
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("snapshot publish cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}
		}

		var id uint
		id, err = p.store.SaveSnapshot(points)
		if err == nil {
			p.logger.WithFields(logrus.Fields{
				"snapshot_id": id,
				"points":      len(points),
			}).Info("Published rate snapshot")
			return &PublishResult{SnapshotID: id, Points: len(points), Attempts: attempt + 1}, nil
		}

		p.logger.WithError(err).Error("Snapshot publish failed")
	}

	return nil, fmt.Errorf("failed to publish snapshot after %d attempts: %w", maxRetries+1, err)
}
