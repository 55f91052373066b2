package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"proprates/server/config"
	"proprates/server/internal/database"
	"proprates/server/internal/geometry"
	"proprates/server/internal/models"
	"proprates/server/internal/processor"
	"proprates/server/internal/rates"
)

// SnapshotReader is the read side of the snapshot store
type SnapshotReader interface {
	GetSnapshotPoints(id uint) ([]database.SnapshotPoint, error)
	LatestSnapshotID() (uint, error)
}

// Publisher stores a snapshot of every rate series
type Publisher interface {
	Publish(ctx context.Context) (*processor.PublishResult, error)
}

type Handler struct {
	snapshots SnapshotReader
	publisher Publisher
	logger    *logrus.Logger
	strict    bool
}

func NewHandler(snapshots SnapshotReader, publisher Publisher, strict bool, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		snapshots: snapshots,
		publisher: publisher,
		logger:    logger,
		strict:    strict,
	}
}

// selection reads period and type from the query string. Unknown periods are
// passed through unless the handler is strict; unknown types are always rejected.
func (h *Handler) selection(c *gin.Context) (models.Period, models.Category, error) {
	rawPeriod := c.DefaultQuery("period", string(models.DefaultPeriod))
	rawCategory := c.DefaultQuery("type", string(models.DefaultCategory))

	category, err := models.ParseCategory(rawCategory)
	if err != nil {
		return "", "", err
	}

	period := models.Period(rawPeriod)
	if !period.Valid() {
		if h.strict {
			_, err := models.ParsePeriod(rawPeriod)
			return "", "", err
		}
		h.logger.WithField("period", rawPeriod).Warn("Unknown period, using last-5-years series")
	}
	return period, category, nil
}

func (h *Handler) badSelection(c *gin.Context, err error) {
	h.logger.WithError(err).Debug("Rejected rate selection")
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *Handler) GetRates(c *gin.Context) {
	period, category, err := h.selection(c)
	if err != nil {
		h.badSelection(c, err)
		return
	}

	c.JSON(http.StatusOK, rates.BuildView(period, category))
}

func (h *Handler) GetSeries(c *gin.Context) {
	period, category, err := h.selection(c)
	if err != nil {
		h.badSelection(c, err)
		return
	}

	c.JSON(http.StatusOK, rates.GenerateSeries(period, category))
}

func (h *Handler) GetSummary(c *gin.Context) {
	period, category, err := h.selection(c)
	if err != nil {
		h.badSelection(c, err)
		return
	}

	c.JSON(http.StatusOK, rates.ComputeSummary(category, period))
}

func (h *Handler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, rates.ListOptions())
}

func (h *Handler) ListMarkets(c *gin.Context) {
	fc, skipped := geometry.MarketCollection(config.SupportedMarkets)
	for _, slug := range skipped {
		h.logger.WithField("market", slug).Warn("Skipping market with invalid center")
	}
	c.JSON(http.StatusOK, fc)
}

func (h *Handler) GetMarket(c *gin.Context) {
	market := config.GetMarketBySlug(c.Param("slug"))
	if market == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Market not found"})
		return
	}

	feature, err := geometry.MarketFeature(*market)
	if err != nil {
		h.logger.WithError(err).Error("Failed to build market feature")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build market feature"})
		return
	}
	c.JSON(http.StatusOK, feature)
}

func (h *Handler) PublishSnapshot(c *gin.Context) {
	result, err := h.publisher.Publish(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to publish snapshot")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish snapshot"})
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *Handler) GetSnapshot(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid snapshot id"})
		return
	}

	h.writeSnapshot(c, uint(id))
}

// GetLatestSnapshot returns the most recently published snapshot
func (h *Handler) GetLatestSnapshot(c *gin.Context) {
	id, err := h.snapshots.LatestSnapshotID()
	if errors.Is(err, database.ErrSnapshotNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No snapshot published yet"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to get latest snapshot")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get snapshot"})
		return
	}

	h.writeSnapshot(c, id)
}

func (h *Handler) writeSnapshot(c *gin.Context, id uint) {
	points, err := h.snapshots.GetSnapshotPoints(id)
	if errors.Is(err, database.ErrSnapshotNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Snapshot not found"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to get snapshot")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get snapshot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshot_id": id,
		"points":      points,
	})
}
