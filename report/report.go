// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package report generates the player count statistics Markdown document.
// The document consists of a title followed by a heading and an image
// reference for every day from a fixed first day up to, but not including,
// the last two days before the date of generation. The images are
// referenced as <image-dir>/<YYYY-MM-DD>.svg and are neither created nor
// checked for here.
package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"strings"

	"cloudeng.io/datetime"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/playerstats/calendar"
)

const (
	// DefaultTitle is the title used when Options.Title is not set.
	DefaultTitle = "Player count statistics"
	// DefaultImageDir is the image directory used when Options.ImageDir
	// is not set.
	DefaultImageDir = "images"
)

// FirstDay is the first day for which statistics were recorded.
var FirstDay = calendar.NewDate(2021, 5, 18)

// Options controls the content of the generated document.
type Options struct {
	FirstDay datetime.CalendarDate // defaults to FirstDay.
	Title    string                // defaults to DefaultTitle.
	ImageDir string                // defaults to DefaultImageDir.
}

// Generator generates the document for a given date.
type Generator struct {
	first    datetime.CalendarDate
	title    string
	imageDir string
}

// New returns a Generator for the supplied options.
func New(opts Options) *Generator {
	g := &Generator{
		first:    opts.FirstDay,
		title:    opts.Title,
		imageDir: strings.TrimSuffix(opts.ImageDir, "/"),
	}
	if g.first == 0 {
		g.first = FirstDay
	}
	if len(g.title) == 0 {
		g.title = DefaultTitle
	}
	if len(g.imageDir) == 0 {
		g.imageDir = DefaultImageDir
	}
	return g
}

// DateRange returns the dates to be reported on when the document is
// generated on now. It starts at first and contains one less date than
// there are days between first and now, so that the last date is two
// days before now. The range is empty if now is less than two days
// after first.
func DateRange(first, now datetime.CalendarDate) datetime.CalendarDateRange {
	n := calendar.DaysBetween(first, now) - 1
	if n <= 0 {
		return datetime.CalendarDateRange(0)
	}
	return datetime.NewCalendarDateRange(first, calendar.AddDays(first, n-1))
}

// Range returns the dates reported on for now.
func (g *Generator) Range(now datetime.CalendarDate) datetime.CalendarDateRange {
	return DateRange(g.first, now)
}

// Pair represents the heading and image reference for a single date.
// Images are referenced relative to DefaultImageDir if ImageDir is
// not set.
type Pair struct {
	Date     datetime.CalendarDate
	ImageDir string
}

// Heading returns the Markdown heading line for the pair.
func (p Pair) Heading() string {
	return "## " + calendar.ISO(p.Date)
}

// Image returns the Markdown image reference line for the pair.
func (p Pair) Image() string {
	d := calendar.ISO(p.Date)
	dir := strings.TrimSuffix(p.ImageDir, "/")
	if len(dir) == 0 {
		dir = DefaultImageDir
	}
	return fmt.Sprintf("![%s data](%s/%s.svg)", d, dir, d)
}

// Pairs returns an iterator over the heading/image pairs for now.
func (g *Generator) Pairs(now datetime.CalendarDate) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for d := range calendar.Dates(g.Range(now)) {
			if !yield(Pair{Date: d, ImageDir: g.imageDir}) {
				return
			}
		}
	}
}

// Title returns the title line of the document.
func (g *Generator) Title() string {
	return "# " + g.title
}

// Generate writes the document for now to w. It returns the number of
// bytes written and the first error encountered. Generation stops with
// ctx.Err() if the context is canceled.
func (g *Generator) Generate(ctx context.Context, w io.Writer, now datetime.CalendarDate) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	dr := g.Range(now)
	ctxlog.Logger(ctx).Debug("generating report", "now", calendar.ISO(now), "range", calendar.FormatRange(dr), "pairs", calendar.Len(dr))
	if _, err := fmt.Fprintln(bw, g.Title()); err != nil {
		return cw.n, fmt.Errorf("failed writing title: %w", err)
	}
	for p := range g.Pairs(now) {
		if err := ctx.Err(); err != nil {
			return cw.n, err
		}
		if _, err := fmt.Fprintf(bw, "%s\n%s\n", p.Heading(), p.Image()); err != nil {
			return cw.n, fmt.Errorf("failed writing %v: %w", calendar.ISO(p.Date), err)
		}
	}
	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("failed to flush report: %w", err)
	}
	return cw.n, nil
}

// Render returns the document for now as a string.
func Render(ctx context.Context, opts Options, now datetime.CalendarDate) (string, error) {
	var out strings.Builder
	_, err := New(opts).Generate(ctx, &out, now)
	return out.String(), err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
