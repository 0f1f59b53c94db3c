package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/demandcast/internal/domain/models"
	"github.com/mamadbah2/demandcast/internal/service/forecast"
	"github.com/mamadbah2/demandcast/internal/service/snapshot"
)

// defaultRangeDays mirrors the trends page, which opens on the last week.
const defaultRangeDays = 7

// DefaultMaxRangeDays caps a daily range when no limit is configured.
const DefaultMaxRangeDays = 3660

// ErrRangeTooLarge is returned for ranges spanning more days than allowed.
var ErrRangeTooLarge = errors.New("date range too large")

// SeriesGenerator produces fresh synthetic series.
type SeriesGenerator interface {
	GenerateDailySeries(start, end time.Time) []models.DailyRecord
	GenerateHourlySeries(date time.Time) []models.HourlyRecord
	GenerateAlerts(date time.Time) []models.AlertEntry
	LastActualDate() time.Time
}

// SnapshotReader exposes the cached dashboard series.
type SnapshotReader interface {
	History(start, end time.Time) ([]models.DailyRecord, error)
	Today() (string, []models.HourlyRecord, time.Time, error)
	CurrentDate() time.Time
}

// DailySeriesResponse is the body of the daily and trends endpoints.
type DailySeriesResponse struct {
	Start          string               `json:"start"`
	End            string               `json:"end"`
	LastActualDate string               `json:"lastActualDate"`
	Records        []models.DailyRecord `json:"records"`
	Insights       []models.Insight     `json:"insights,omitempty"`
}

// HourlySeriesResponse is the body of the hourly endpoints.
type HourlySeriesResponse struct {
	Date           string                `json:"date"`
	LastActualDate string                `json:"lastActualDate"`
	Records        []models.HourlyRecord `json:"records"`
	GeneratedAt    *time.Time            `json:"generatedAt,omitempty"`
}

// AlertsResponse is the body of the alerts endpoint.
type AlertsResponse struct {
	Date   string              `json:"date"`
	Alerts []models.AlertEntry `json:"alerts"`
}

type rangeQuery struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

type dateQuery struct {
	Date string `form:"date"`
}

// DashboardHandler serves demand series to the dashboard pages.
type DashboardHandler struct {
	gen          SeriesGenerator
	snapshot     SnapshotReader
	maxRangeDays int
	logger       *zap.Logger
}

// NewDashboardHandler constructs the HTTP handler adapter. Ranges longer than
// maxRangeDays are rejected; a non-positive limit falls back to DefaultMaxRangeDays.
func NewDashboardHandler(gen SeriesGenerator, snap SnapshotReader, maxRangeDays int, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRangeDays <= 0 {
		maxRangeDays = DefaultMaxRangeDays
	}
	return &DashboardHandler{gen: gen, snapshot: snap, maxRangeDays: maxRangeDays, logger: logger}
}

// DailySeries generates a fresh daily series for the requested range.
func (h *DashboardHandler) DailySeries(c *gin.Context) {
	start, end, ok := h.bindRange(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, DailySeriesResponse{
		Start:          forecast.FormatDate(start),
		End:            forecast.FormatDate(end),
		LastActualDate: forecast.FormatDate(h.gen.LastActualDate()),
		Records:        h.gen.GenerateDailySeries(start, end),
	})
}

// Trends returns the cached history for the requested range.
func (h *DashboardHandler) Trends(c *gin.Context) {
	start, end, ok := h.bindRange(c)
	if !ok {
		return
	}

	records, err := h.snapshot.History(start, end)
	if err != nil {
		h.snapshotError(c, err)
		return
	}

	c.JSON(http.StatusOK, DailySeriesResponse{
		Start:          forecast.FormatDate(start),
		End:            forecast.FormatDate(end),
		LastActualDate: forecast.FormatDate(h.gen.LastActualDate()),
		Records:        records,
		Insights:       forecast.Insights(),
	})
}

// HourlySeries generates a fresh hourly profile for one day.
func (h *DashboardHandler) HourlySeries(c *gin.Context) {
	date, ok := h.bindDate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, HourlySeriesResponse{
		Date:           forecast.FormatDate(date),
		LastActualDate: forecast.FormatDate(h.gen.LastActualDate()),
		Records:        h.gen.GenerateHourlySeries(date),
	})
}

// Today returns the cached hourly profile of the current day.
func (h *DashboardHandler) Today(c *gin.Context) {
	day, records, generatedAt, err := h.snapshot.Today()
	if err != nil {
		h.snapshotError(c, err)
		return
	}

	c.JSON(http.StatusOK, HourlySeriesResponse{
		Date:           day,
		LastActualDate: forecast.FormatDate(h.gen.LastActualDate()),
		Records:        records,
		GeneratedAt:    &generatedAt,
	})
}

// Alerts returns the advisories for one day.
func (h *DashboardHandler) Alerts(c *gin.Context) {
	date, ok := h.bindDate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, AlertsResponse{
		Date:   forecast.FormatDate(date),
		Alerts: h.gen.GenerateAlerts(date),
	})
}

// EnergySources returns the generation mix.
func (h *DashboardHandler) EnergySources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sources": forecast.EnergySourceBreakdown()})
}

func (h *DashboardHandler) bindRange(c *gin.Context) (time.Time, time.Time, bool) {
	var q rangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return time.Time{}, time.Time{}, false
	}

	end := h.snapshot.CurrentDate()
	if q.End != "" {
		parsed, err := forecast.ParseDate(q.End)
		if err != nil {
			h.badRequest(c, err)
			return time.Time{}, time.Time{}, false
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -defaultRangeDays)
	if q.Start != "" {
		parsed, err := forecast.ParseDate(q.Start)
		if err != nil {
			h.badRequest(c, err)
			return time.Time{}, time.Time{}, false
		}
		start = parsed
	}

	// inverted ranges count as zero days and produce an empty series
	if days := forecast.DaysBetween(start, end); days > h.maxRangeDays {
		h.badRequest(c, fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLarge, days, h.maxRangeDays))
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

func (h *DashboardHandler) bindDate(c *gin.Context) (time.Time, bool) {
	var q dateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return time.Time{}, false
	}
	if q.Date == "" {
		return h.snapshot.CurrentDate(), true
	}

	date, err := forecast.ParseDate(q.Date)
	if err != nil {
		h.badRequest(c, err)
		return time.Time{}, false
	}
	return date, true
}

func (h *DashboardHandler) badRequest(c *gin.Context, err error) {
	h.logger.Warn("invalid dashboard query", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *DashboardHandler) snapshotError(c *gin.Context, err error) {
	if errors.Is(err, snapshot.ErrNotReady) {
		h.logger.Warn("snapshot requested before first refresh")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "data not ready"})
		return
	}
	h.logger.Error("failed reading snapshot", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read snapshot"})
}
