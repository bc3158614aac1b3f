package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ngrash/gregorian/calendar"
	"github.com/ngrash/gregorian/internal/unixtime"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// report is a resolved timestamp together with its textual forms.
type report struct {
	calendar.Moment `yaml:",inline"`

	Unix     int64  `yaml:"unix"`
	Calendar string `yaml:"calendar"`
	ISOWeek  string `yaml:"week_date"`
	Ordinal  string `yaml:"ordinal"`
	RFC3339  string `yaml:"rfc3339"`
}

func newReport(ts int64) (report, error) {
	m, err := calendar.TimestampToMoment(ts)
	if err != nil {
		return report{}, err
	}
	unix, err := calendar.TimestampToUnix(ts)
	if err != nil {
		return report{}, err
	}
	t, err := unixtime.ToTime(ts)
	if err != nil {
		return report{}, err
	}
	tod := m.TimeOfDay()
	return report{
		Moment:   m,
		Unix:     unix,
		Calendar: m.DateTime().String(),
		ISOWeek:  calendar.DateTime{Date: m.WeekDate(), Time: tod}.String(),
		Ordinal:  calendar.DateTime{Date: m.OrdinalDate(), Time: tod}.String(),
		RFC3339:  t.Format(time.RFC3339),
	}, nil
}

func printTimestamp(cmd *cobra.Command, opts *options, ts int64) error {
	r, err := newReport(ts)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if opts.output == outputYAML {
		b, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "timestamp\t%d\n", r.Timestamp)
	fmt.Fprintf(tw, "unix\t%d\n", r.Unix)
	fmt.Fprintf(tw, "calendar\t%s\n", r.Calendar)
	fmt.Fprintf(tw, "week date\t%s\n", r.ISOWeek)
	fmt.Fprintf(tw, "ordinal\t%s\n", r.Ordinal)
	fmt.Fprintf(tw, "daystamp\t%d\n", r.Daystamp)
	fmt.Fprintf(tw, "leap year\t%v\n", r.IsLeapYear)
	fmt.Fprintf(tw, "rfc3339\t%s\n", r.RFC3339)
	return tw.Flush()
}
