package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngrash/gregorian/calendar"
	"github.com/ngrash/gregorian/internal/unixtime"
	"github.com/ngrash/gregorian/iso8601"
)

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <timestamp>",
		Short: "Show every calendar field of a timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseInt("timestamp", args[0])
			if err != nil {
				return err
			}
			return printTimestamp(cmd, opts, ts)
		},
	}
}

func newUnixCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "unix <seconds>",
		Short: "Show every calendar field of a unix timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unix, err := parseInt("unix timestamp", args[0])
			if err != nil {
				return err
			}
			ts, err := calendar.UnixToTimestamp(unix)
			if err != nil {
				return err
			}
			return printTimestamp(cmd, opts, ts)
		},
	}
}

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <date>",
		Short: "Resolve an ISO 8601 calendar, week or ordinal date",
		Example: `  gcal parse 2004-W53-5
  gcal parse 2000-060T12:00
  gcal parse 19991231T235959`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := iso8601.Parse(args[0])
			if err != nil {
				return err
			}
			ts, err := calendar.DateTimeToTimestamp(dt)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", dt, err)
			}
			return printTimestamp(cmd, opts, ts)
		},
	}
}

func newNowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Show every calendar field of the current second (UTC)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := unixtime.Now()
			if err != nil {
				return err
			}
			return printTimestamp(cmd, opts, ts)
		},
	}
}

func newWeeksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weeks <year>",
		Short: "Print the number of ISO weeks in a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			weeks, err := calendar.WeeksInYear(year)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), weeks)
			return nil
		},
	}
}
