package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type dailyOptions struct {
	start string
	end   string
}

func newDailyCmd(opts *rootOptions) *cobra.Command {
	daily := &dailyOptions{}

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Print the daily demand series for a date range",
		Long:  `Prints one record per day between --start and --end inclusive. An inverted range prints an empty series.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaily(cmd, opts, daily)
		},
	}
	cmd.Flags().StringVar(&daily.start, "start", "", "first day (YYYY-MM-DD, default: a week before --end)")
	cmd.Flags().StringVar(&daily.end, "end", "", "last day (YYYY-MM-DD, default: today)")
	return cmd
}

func runDaily(cmd *cobra.Command, opts *rootOptions, daily *dailyOptions) error {
	end, err := parseDateArg(daily.end)
	if err != nil {
		return fmt.Errorf("--end: %w", err)
	}
	start := end.AddDate(0, 0, -7)
	if daily.start != "" {
		if start, err = parseDateArg(daily.start); err != nil {
			return fmt.Errorf("--start: %w", err)
		}
	}

	src, err := opts.newSource()
	if err != nil {
		return err
	}

	resp, err := src.DailySeries(cmd.Context(), start, end)
	if err != nil {
		return fmt.Errorf("fetching daily series: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), resp)
}
