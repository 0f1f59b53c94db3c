package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/demandcast/internal/server/handlers"
	"github.com/mamadbah2/demandcast/internal/service/forecast"
)

// Client exposes the dashboard API operations used by the CLI.
type Client interface {
	DailySeries(ctx context.Context, start, end time.Time) (*handlers.DailySeriesResponse, error)
	HourlySeries(ctx context.Context, date time.Time) (*handlers.HourlySeriesResponse, error)
	Alerts(ctx context.Context, date time.Time) (*handlers.AlertsResponse, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a client for the dashboard served at baseURL.
func NewClient(baseURL string, timeout time.Duration) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &APIClient{httpClient: restyClient}
}

// apiError represents the error body returned by the dashboard API.
type apiError struct {
	Error string `json:"error"`
}

// DailySeries fetches a freshly generated daily series.
func (c *APIClient) DailySeries(ctx context.Context, start, end time.Time) (*handlers.DailySeriesResponse, error) {
	result := new(handlers.DailySeriesResponse)
	err := c.get(ctx, "/api/demand/daily", map[string]string{
		"start": forecast.FormatDate(start),
		"end":   forecast.FormatDate(end),
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// HourlySeries fetches the hourly profile of date.
func (c *APIClient) HourlySeries(ctx context.Context, date time.Time) (*handlers.HourlySeriesResponse, error) {
	result := new(handlers.HourlySeriesResponse)
	if err := c.get(ctx, "/api/demand/hourly", map[string]string{"date": forecast.FormatDate(date)}, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Alerts fetches the advisories of date.
func (c *APIClient) Alerts(ctx context.Context, date time.Time) (*handlers.AlertsResponse, error) {
	result := new(handlers.AlertsResponse)
	if err := c.get(ctx, "/api/alerts", map[string]string{"date": forecast.FormatDate(date)}, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *APIClient) get(ctx context.Context, path string, query map[string]string, result any) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(result).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("dashboard request %s: %w", path, err)
	}

	if resp.IsError() {
		if apiErr.Error != "" {
			return fmt.Errorf("dashboard api error (%d): %s", resp.StatusCode(), apiErr.Error)
		}
		return fmt.Errorf("dashboard api error: status %d", resp.StatusCode())
	}

	return nil
}
