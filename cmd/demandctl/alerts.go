package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAlertsCmd(opts *rootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Print the peak demand advisories of a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlerts(cmd, opts, date)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to print (YYYY-MM-DD, default: today)")
	return cmd
}

func runAlerts(cmd *cobra.Command, opts *rootOptions, rawDate string) error {
	date, err := parseDateArg(rawDate)
	if err != nil {
		return fmt.Errorf("--date: %w", err)
	}

	src, err := opts.newSource()
	if err != nil {
		return err
	}

	resp, err := src.Alerts(cmd.Context(), date)
	if err != nil {
		return fmt.Errorf("fetching alerts: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), resp)
}
