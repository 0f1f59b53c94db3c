package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHourlyCmd(opts *rootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "hourly",
		Short: "Print the 24-hour demand profile of a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHourly(cmd, opts, date)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to print (YYYY-MM-DD, default: today)")
	return cmd
}

func runHourly(cmd *cobra.Command, opts *rootOptions, rawDate string) error {
	date, err := parseDateArg(rawDate)
	if err != nil {
		return fmt.Errorf("--date: %w", err)
	}

	src, err := opts.newSource()
	if err != nil {
		return err
	}

	resp, err := src.HourlySeries(cmd.Context(), date)
	if err != nil {
		return fmt.Errorf("fetching hourly series: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), resp)
}
