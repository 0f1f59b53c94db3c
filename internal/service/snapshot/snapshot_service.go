package snapshot

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/demandcast/internal/domain/models"
	"github.com/mamadbah2/demandcast/internal/service/forecast"
)

// ErrNotReady is returned before the first successful refresh.
var ErrNotReady = errors.New("snapshot not refreshed yet")

// SeriesGenerator is the subset of the generator the snapshot relies on.
type SeriesGenerator interface {
	GenerateDailySeries(start, end time.Time) []models.DailyRecord
	GenerateHourlySeries(date time.Time) []models.HourlyRecord
}

// Window is the span of days kept in the cached history.
type Window struct {
	Start time.Time
	End   time.Time
}

// Service caches the historical series and today's hourly profile that the
// dashboard pages read from.
type Service struct {
	gen      SeriesGenerator
	window   Window
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time

	mu          sync.RWMutex
	history     []models.DailyRecord
	todayDate   string
	today       []models.HourlyRecord
	refreshedAt time.Time
}

// NewService wires a snapshot cache. A nil location means UTC.
func NewService(gen SeriesGenerator, window Window, location *time.Location, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}
	return &Service{
		gen:      gen,
		window:   window,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// Refresh regenerates the cached series.
func (s *Service) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := s.now().In(s.location)
	history := s.gen.GenerateDailySeries(s.window.Start, s.window.End)
	today := s.gen.GenerateHourlySeries(now)

	s.mu.Lock()
	s.history = history
	s.todayDate = forecast.FormatDate(now)
	s.today = today
	s.refreshedAt = now
	s.mu.Unlock()

	s.logger.Info("snapshot refreshed",
		zap.Int("history_records", len(history)),
		zap.String("today", forecast.FormatDate(now)))
	return nil
}

// Today returns the hourly profile computed for the current day.
func (s *Service) Today() (string, []models.HourlyRecord, time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.refreshedAt.IsZero() {
		return "", nil, time.Time{}, ErrNotReady
	}
	return s.todayDate, slices.Clone(s.today), s.refreshedAt, nil
}

// History returns the cached days within [start, end].
func (s *Service) History(start, end time.Time) ([]models.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.refreshedAt.IsZero() {
		return nil, ErrNotReady
	}
	return forecast.FilterRange(s.history, start, end), nil
}

// CurrentDate is today's calendar date in the configured timezone.
func (s *Service) CurrentDate() time.Time {
	return forecast.Day(s.now().In(s.location))
}
