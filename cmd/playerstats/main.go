// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command playerstats prints a Markdown document with a heading and an
// svg image reference for each day that player counts have been recorded.
package main

import (
	"context"
	"io"
	"os"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/datetime"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/playerstats/calendar"
	"cloudeng.io/playerstats/report"
)

const cmdSpec = `name: playerstats
summary: print a markdown document referencing the daily player count
  statistics images, one per day from the first day recorded until two
  days before today.
`

type statsFlags struct {
	cmdutil.LoggingFlags
	Now      string `subcmd:"now,,'generate the document as of this date (YYYY-MM-DD) rather than today'"`
	FirstDay string `subcmd:"first-day,2021-05-18,'first day (YYYY-MM-DD) to include in the document'"`
	Title    string `subcmd:"title,Player count statistics,document title"`
	Images   string `subcmd:"images,images,directory containing the per-day svg images"`
}

var cmdSet = subcmd.MustFromYAML(cmdSpec)

func init() {
	cmdSet.Set("playerstats").MustRunnerAndFlags(
		playerstats, subcmd.MustRegisteredFlagSet(&statsFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

func playerstats(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*statsFlags)
	// The clock is read exactly once.
	return run(ctx, os.Stdout, fv, time.Now())
}

func run(ctx context.Context, out io.Writer, fv *statsFlags, clock time.Time) error {
	opts, now, err := fv.options(clock)
	if err != nil {
		return err
	}
	logger, err := fv.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	var errs errors.M
	_, err = report.New(opts).Generate(ctx, out, now)
	errs.Append(err)
	errs.Append(logger.Close())
	return errs.Err()
}

func (fv *statsFlags) options(clock time.Time) (report.Options, datetime.CalendarDate, error) {
	now := calendar.FromTime(clock)
	if len(fv.Now) > 0 {
		d, err := calendar.ParseDate(fv.Now)
		if err != nil {
			return report.Options{}, 0, err
		}
		now = d
	}
	opts := report.Options{
		Title:    fv.Title,
		ImageDir: fv.Images,
	}
	if len(fv.FirstDay) > 0 {
		d, err := calendar.ParseDate(fv.FirstDay)
		if err != nil {
			return report.Options{}, 0, err
		}
		opts.FirstDay = d
	}
	return opts, now, nil
}
