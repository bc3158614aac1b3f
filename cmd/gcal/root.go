package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type options struct {
	output string
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:   "gcal",
		Short: "Proleptic Gregorian calendar arithmetic",
		Long: `gcal converts between calendar timestamps (seconds since 0001-01-01 00:00:00,
starting at 1), unix timestamps and ISO 8601 calendar, week and ordinal dates.

Valid years are 1 through 9999. Time zones and leap seconds are not supported.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case outputText, outputYAML:
				return nil
			default:
				return fmt.Errorf("invalid output format %q: must be %q or %q", opts.output, outputText, outputYAML)
			}
		},
	}
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format (text or yaml)")

	root.AddCommand(
		newShowCmd(&opts),
		newUnixCmd(&opts),
		newParseCmd(&opts),
		newNowCmd(&opts),
		newWeeksCmd(),
	)
	return root
}

// parseYear parses s at the width of int so that no argument wraps into a
// valid year.
func parseYear(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", s, err)
	}
	return int(v), nil
}

func parseInt(name, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}
