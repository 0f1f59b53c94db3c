package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mamadbah2/demandcast/internal/domain/models"
)

// Presentation tuning constants for the synthetic charts.
const (
	BaseDemand        = 3000.0
	SeasonalAmplitude = 1000.0
	WeeklyAmplitude   = 200.0
	DailyAmplitude    = 1000.0

	PeakFactor   = 1.2
	LowestFactor = 0.7

	DailyActualNoise     = 200.0
	DailyPredictedNoise  = 300.0
	ExtremeActualNoise   = 200.0
	ExtremeForecastNoise = 300.0
	HourlyActualNoise    = 200.0
	HourlyPredictedNoise = 400.0

	PeakWindowStart = 14
	PeakWindowEnd   = 16

	HoursPerDay = 24
)

const offPeakTip = "Consider using heavy appliances during off-peak hours (11 PM - 5 AM)"

// Generator synthesises demand series around a fixed observed/forecast cutoff.
type Generator struct {
	lastActual time.Time
	noise      NoiseSource
	logger     *zap.Logger
}

// Option customises a Generator.
type Option func(*Generator)

// WithNoise replaces the default random source.
func WithNoise(src NoiseSource) Option {
	return func(g *Generator) {
		if src != nil {
			g.noise = src
		}
	}
}

// WithLogger attaches a logger for debug tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator wires a generator whose observed data ends on lastActual.
func NewGenerator(lastActual time.Time, opts ...Option) *Generator {
	g := &Generator{
		lastActual: Day(lastActual),
		noise:      DefaultSource(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LastActualDate returns the cutoff between observed and forecast-only data.
func (g *Generator) LastActualDate() time.Time {
	return g.lastActual
}

// Observed reports whether date falls on or before the cutoff.
func (g *Generator) Observed(date time.Time) bool {
	return !Day(date).After(g.lastActual)
}

// GenerateDailySeries returns one record per day from start to end inclusive.
// An inverted range yields an empty series.
func (g *Generator) GenerateDailySeries(start, end time.Time) []models.DailyRecord {
	records := make([]models.DailyRecord, 0, DaysBetween(start, end))
	for day := range DateRange(start, end) {
		records = append(records, g.dailyRecord(day))
	}

	g.logger.Debug("daily series generated",
		zap.String("start", FormatDate(start)),
		zap.String("end", FormatDate(end)),
		zap.Int("records", len(records)))
	return records
}

func (g *Generator) dailyRecord(day time.Time) models.DailyRecord {
	base := SeasonalBase(day)
	weekly := WeeklyVariation(day)
	observed := g.Observed(day)

	record := models.DailyRecord{
		Date:                 FormatDate(day),
		Predicted:            roundInt(base + weekly + symmetric(g.noise, DailyPredictedNoise)),
		PeakDemandForecast:   roundInt(base*PeakFactor + upward(g.noise, ExtremeForecastNoise)),
		LowestDemandForecast: roundInt(base*LowestFactor + upward(g.noise, ExtremeForecastNoise)),
	}
	if observed {
		record.Actual = lo.ToPtr(roundInt(base + weekly + symmetric(g.noise, DailyActualNoise)))
		record.PeakDemand = lo.ToPtr(roundInt(base*PeakFactor + upward(g.noise, ExtremeActualNoise)))
		record.LowestDemand = lo.ToPtr(roundInt(base*LowestFactor + upward(g.noise, ExtremeActualNoise)))
	}
	return record
}

// GenerateHourlySeries returns 24 hourly records for date.
func (g *Generator) GenerateHourlySeries(date time.Time) []models.HourlyRecord {
	observed := g.Observed(date)

	return lo.Times(HoursPerDay, func(hour int) models.HourlyRecord {
		daily := DailyVariation(hour)
		record := models.HourlyRecord{
			Hour:      hour,
			Predicted: roundInt(BaseDemand + daily + symmetric(g.noise, HourlyPredictedNoise)),
		}
		if observed {
			record.Actual = lo.ToPtr(roundInt(BaseDemand + daily + symmetric(g.noise, HourlyActualNoise)))
		}
		return record
	})
}

// GenerateAlerts returns the warning, info and tip advisories for date.
func (g *Generator) GenerateAlerts(date time.Time) []models.AlertEntry {
	peak := g.PeakHour()

	observedWord, windowWord := "expected", "forecasted"
	if g.Observed(date) {
		observedWord, windowWord = "observed", "recorded"
	}

	return []models.AlertEntry{
		{
			ID:       1,
			Kind:     models.AlertWarning,
			Message:  fmt.Sprintf("Peak demand %s at %d:00", observedWord, peak),
			Severity: models.SeverityHigh,
		},
		{
			ID:       2,
			Kind:     models.AlertInfo,
			Message:  fmt.Sprintf("High demand period %s between %d:00 - %d:00", windowWord, peak-1, peak+1),
			Severity: models.SeverityMedium,
		},
		{
			ID:       3,
			Kind:     models.AlertTip,
			Message:  offPeakTip,
			Severity: models.SeverityLow,
		},
	}
}

// PeakHour draws an afternoon hour from the peak window.
func (g *Generator) PeakHour() int {
	span := PeakWindowEnd - PeakWindowStart + 1
	offset := int(math.Floor(g.noise.Float64() * float64(span)))
	// a source returning exactly 1 must still land in the window
	return PeakWindowStart + min(offset, span-1)
}

// SeasonalBase is the annual cycle keyed on the zero-based month.
func SeasonalBase(day time.Time) float64 {
	month := float64(day.Month() - 1)
	return BaseDemand + SeasonalAmplitude*math.Sin(month*math.Pi/6)
}

// WeeklyVariation is keyed on the weekday, Sunday being 0.
func WeeklyVariation(day time.Time) float64 {
	return WeeklyAmplitude * math.Sin(float64(day.Weekday())*math.Pi/3.5)
}

// DailyVariation is keyed on the hour of day.
func DailyVariation(hour int) float64 {
	return DailyAmplitude * math.Sin(float64(hour-12)*math.Pi/12)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
