package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mamadbah2/demandcast/internal/domain/models"
	"github.com/mamadbah2/demandcast/internal/service/forecast"
	"github.com/mamadbah2/demandcast/internal/service/snapshot"
)

type fakeSnapshot struct {
	today   time.Time
	history []models.DailyRecord
	hourly  []models.HourlyRecord
	err     error
}

func (f *fakeSnapshot) History(start, end time.Time) ([]models.DailyRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return forecast.FilterRange(f.history, start, end), nil
}

func (f *fakeSnapshot) Today() (string, []models.HourlyRecord, time.Time, error) {
	if f.err != nil {
		return "", nil, time.Time{}, f.err
	}
	return forecast.FormatDate(f.today), f.hourly, f.today, nil
}

func (f *fakeSnapshot) CurrentDate() time.Time { return f.today }

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := forecast.ParseDate(value)
	require.NoError(t, err)
	return d
}

func newDashboardEngine(t *testing.T, snap *fakeSnapshot) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gen := forecast.NewGenerator(mustDate(t, "2024-12-10"))
	h := NewDashboardHandler(gen, snap, 0, zaptest.NewLogger(t))

	r := gin.New()
	r.GET("/daily", h.DailySeries)
	r.GET("/hourly", h.HourlySeries)
	r.GET("/today", h.Today)
	r.GET("/trends", h.Trends)
	r.GET("/alerts", h.Alerts)
	r.GET("/sources", h.EnergySources)
	return r
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestDailySeries(t *testing.T) {
	r := newDashboardEngine(t, &fakeSnapshot{today: mustDate(t, "2024-12-10")})

	rec := get(t, r, "/daily?start=2024-12-09&end=2024-12-11")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[DailySeriesResponse](t, rec)
	assert.Equal(t, "2024-12-09", body.Start)
	assert.Equal(t, "2024-12-11", body.End)
	assert.Equal(t, "2024-12-10", body.LastActualDate)
	require.Len(t, body.Records, 3)
	assert.NotNil(t, body.Records[0].Actual)
	assert.NotNil(t, body.Records[1].Actual)
	assert.Nil(t, body.Records[2].Actual)
	assert.Empty(t, body.Insights)
}

func TestDailySeries_DefaultsToLastWeek(t *testing.T) {
	r := newDashboardEngine(t, &fakeSnapshot{today: mustDate(t, "2024-12-10")})

	body := decode[DailySeriesResponse](t, get(t, r, "/daily"))
	assert.Equal(t, "2024-12-03", body.Start)
	assert.Equal(t, "2024-12-10", body.End)
	assert.Len(t, body.Records, defaultRangeDays+1)

	body = decode[DailySeriesResponse](t, get(t, r, "/daily?end=2025-01-10"))
	assert.Equal(t, "2025-01-03", body.Start)
}

func TestDailySeries_InvertedRangeIsEmpty(t *testing.T) {
	r := newDashboardEngine(t, &fakeSnapshot{today: mustDate(t, "2024-12-10")})

	rec := get(t, r, "/daily?start=2024-12-11&end=2024-12-09")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"records":[]`)
}

func TestDailySeries_RangeLimit(t *testing.T) {
	r := newDashboardEngine(t, &fakeSnapshot{today: mustDate(t, "2024-12-10")})
	start := mustDate(t, "2020-01-01")
	lastAllowed := forecast.FormatDate(start.AddDate(0, 0, DefaultMaxRangeDays-1))
	firstRejected := forecast.FormatDate(start.AddDate(0, 0, DefaultMaxRangeDays))

	rec := get(t, r, "/daily?start=2020-01-01&end="+lastAllowed)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[DailySeriesResponse](t, rec).Records, DefaultMaxRangeDays)

	for _, target := range []string{
		"/daily?start=2020-01-01&end=" + firstRejected,
		"/daily?start=0001-01-01&end=9999-12-31",
		"/trends?start=0001-01-01&end=9999-12-31",
	} {
		rec := get(t, r, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, rec.Body.String(), ErrRangeTooLarge.Error(), target)
	}
}

func TestDailySeries_ConfiguredRangeLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gen := forecast.NewGenerator(mustDate(t, "2024-12-10"))
	h := NewDashboardHandler(gen, &fakeSnapshot{today: mustDate(t, "2024-12-10")}, 7, zaptest.NewLogger(t))
	r := gin.New()
	r.GET("/daily", h.DailySeries)

	assert.Equal(t, http.StatusOK, get(t, r, "/daily?start=2024-12-01&end=2024-12-07").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, r, "/daily?start=2024-12-01&end=2024-12-08").Code)
	assert.Equal(t, http.StatusOK, get(t, r, "/daily?start=9999-12-31&end=0001-01-01").Code)
}

func TestDailySeries_MalformedDate(t *testing.T) {
	r := newDashboardEngine(t, &fakeSnapshot{today: mustDate(t, "2024-12-10")})

	for _, target := range []string{"/daily?start=12/09/2024", "/daily?end=tomorrow", "/hourly?date=2024-13-01", "/alerts?date=x", "/trends?start=2024-1-1"} {
		rec := get(t, r, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, rec.Body.String(), forecast.ErrInvalidDateInput.Error(), target)
	}
}

func TestHourlySeries(t *testing.T) {
	r := newDashboardEngine(t, &fakeSnapshot{today: mustDate(t, "2024-12-10")})

	body := decode[HourlySeriesResponse](t, get(t, r, "/hourly?date=2025-01-01"))
	assert.Equal(t, "2025-01-01", body.Date)
	require.Len(t, body.Records, 24)
	for i, rec := range body.Records {
		assert.Equal(t, i, rec.Hour)
		assert.Nil(t, rec.Actual)
		assert.NotZero(t, rec.Predicted)
	}
	assert.Nil(t, body.GeneratedAt)

	body = decode[HourlySeriesResponse](t, get(t, r, "/hourly"))
	assert.Equal(t, "2024-12-10", body.Date)
	for _, rec := range body.Records {
		assert.NotNil(t, rec.Actual)
	}
}

func TestToday(t *testing.T) {
	today := mustDate(t, "2024-12-10")
	hourly := forecast.NewGenerator(today).GenerateHourlySeries(today)
	r := newDashboardEngine(t, &fakeSnapshot{today: today, hourly: hourly})

	body := decode[HourlySeriesResponse](t, get(t, r, "/today"))
	assert.Equal(t, "2024-12-10", body.Date)
	assert.Equal(t, hourly, body.Records)
	require.NotNil(t, body.GeneratedAt)
	assert.True(t, body.GeneratedAt.Equal(today))
}

func TestTrends(t *testing.T) {
	today := mustDate(t, "2024-12-10")
	history := forecast.NewGenerator(today).GenerateDailySeries(mustDate(t, "2024-12-01"), mustDate(t, "2024-12-31"))
	r := newDashboardEngine(t, &fakeSnapshot{today: today, history: history})

	body := decode[DailySeriesResponse](t, get(t, r, "/trends?start=2024-12-09&end=2024-12-11"))
	assert.Equal(t, history[8:11], body.Records)
	assert.Equal(t, forecast.Insights(), body.Insights)
}

func TestSnapshotNotReady(t *testing.T) {
	r := newDashboardEngine(t, &fakeSnapshot{today: mustDate(t, "2024-12-10"), err: snapshot.ErrNotReady})

	assert.Equal(t, http.StatusServiceUnavailable, get(t, r, "/trends").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(t, r, "/today").Code)
}

func TestAlerts(t *testing.T) {
	r := newDashboardEngine(t, &fakeSnapshot{today: mustDate(t, "2024-12-10")})

	body := decode[AlertsResponse](t, get(t, r, "/alerts?date=2024-12-11"))
	assert.Equal(t, "2024-12-11", body.Date)
	require.Len(t, body.Alerts, 3)
	assert.Equal(t, models.AlertWarning, body.Alerts[0].Kind)
	assert.Contains(t, body.Alerts[0].Message, "expected")
	assert.Equal(t, models.AlertInfo, body.Alerts[1].Kind)
	assert.Contains(t, body.Alerts[1].Message, "forecasted")
	assert.Equal(t, models.AlertTip, body.Alerts[2].Kind)

	body = decode[AlertsResponse](t, get(t, r, "/alerts"))
	assert.Contains(t, body.Alerts[0].Message, "observed")
}

func TestEnergySources(t *testing.T) {
	r := newDashboardEngine(t, &fakeSnapshot{})

	body := decode[map[string][]models.EnergySourceShare](t, get(t, r, "/sources"))
	assert.Equal(t, forecast.EnergySourceBreakdown(), body["sources"])
}
