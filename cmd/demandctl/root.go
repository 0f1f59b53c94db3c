package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mamadbah2/demandcast/internal/server/handlers"
	"github.com/mamadbah2/demandcast/internal/service/forecast"
	"github.com/mamadbah2/demandcast/pkg/clients/dashboard"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	serverURL  string
	local      bool
	lastActual string
	seed       uint64
	timeout    time.Duration
}

// newRootCmd builds a fresh command tree with its own flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "demandctl",
		Short: "Query electricity demand series from the dashboard",
		Long: `demandctl prints daily, hourly and alert data as JSON.
By default it queries a running dashboard server; with --local the series are
generated in-process.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.serverURL, "server", "http://localhost:8080", "dashboard base URL")
	flags.BoolVar(&opts.local, "local", false, "generate series in-process instead of calling the server")
	flags.StringVar(&opts.lastActual, "last-actual", "2024-12-10", "last observed date for --local")
	flags.Uint64Var(&opts.seed, "seed", 0, "noise seed for --local (0 = random)")
	flags.DurationVar(&opts.timeout, "timeout", 15*time.Second, "request timeout")

	cmd.AddCommand(newDailyCmd(opts), newHourlyCmd(opts), newAlertsCmd(opts))
	return cmd
}

// newSource returns the configured series source
func (o *rootOptions) newSource() (dashboard.Client, error) {
	if !o.local {
		return dashboard.NewClient(o.serverURL, o.timeout), nil
	}

	cutoff, err := forecast.ParseDate(o.lastActual)
	if err != nil {
		return nil, fmt.Errorf("--last-actual: %w", err)
	}
	var opts []forecast.Option
	if o.seed != 0 {
		opts = append(opts, forecast.WithNoise(forecast.NewSeededSource(o.seed)))
	}
	return &localSource{gen: forecast.NewGenerator(cutoff, opts...)}, nil
}

// localSource answers like the server without the network hop.
type localSource struct {
	gen *forecast.Generator
}

func (s *localSource) DailySeries(_ context.Context, start, end time.Time) (*handlers.DailySeriesResponse, error) {
	return &handlers.DailySeriesResponse{
		Start:          forecast.FormatDate(start),
		End:            forecast.FormatDate(end),
		LastActualDate: forecast.FormatDate(s.gen.LastActualDate()),
		Records:        s.gen.GenerateDailySeries(start, end),
	}, nil
}

func (s *localSource) HourlySeries(_ context.Context, date time.Time) (*handlers.HourlySeriesResponse, error) {
	return &handlers.HourlySeriesResponse{
		Date:           forecast.FormatDate(date),
		LastActualDate: forecast.FormatDate(s.gen.LastActualDate()),
		Records:        s.gen.GenerateHourlySeries(date),
	}, nil
}

func (s *localSource) Alerts(_ context.Context, date time.Time) (*handlers.AlertsResponse, error) {
	return &handlers.AlertsResponse{
		Date:   forecast.FormatDate(date),
		Alerts: s.gen.GenerateAlerts(date),
	}, nil
}

// parseDateArg parses value, falling back to today's date when empty
func parseDateArg(value string) (time.Time, error) {
	if value == "" {
		return forecast.Day(time.Now()), nil
	}
	return forecast.ParseDate(value)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
