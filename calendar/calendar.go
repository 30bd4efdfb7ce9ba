// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides ISO 8601 formatting, parsing and day arithmetic
// for datetime.CalendarDate values and iteration over possibly empty
// datetime.CalendarDateRange values.
package calendar

import (
	"fmt"
	"iter"
	"time"

	"cloudeng.io/datetime"
)

// NewDate returns the CalendarDate for the specified year, month and day.
func NewDate(year int, month time.Month, day int) datetime.CalendarDate {
	return datetime.NewCalendarDate(year, datetime.Month(month), day)
}

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) datetime.CalendarDate {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Time returns midnight UTC on cd.
func Time(cd datetime.CalendarDate) time.Time {
	return time.Date(int(cd.Year()), time.Month(cd.Month()), int(cd.Day()), 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after cd, n may be negative.
func AddDays(cd datetime.CalendarDate, n int) datetime.CalendarDate {
	return FromTime(Time(cd).AddDate(0, 0, n))
}

// DaysBetween returns the number of whole days from from to to. The result
// is negative if to is earlier than from.
func DaysBetween(from, to datetime.CalendarDate) int {
	return int(Time(to).Sub(Time(from)) / (24 * time.Hour))
}

// ISO returns cd in YYYY-MM-DD format.
func ISO(cd datetime.CalendarDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", int(cd.Year()), int(cd.Month()), int(cd.Day()))
}

// ParseDate parses a date in YYYY-MM-DD format.
func ParseDate(val string) (datetime.CalendarDate, error) {
	t, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", val, err)
	}
	return FromTime(t), nil
}

// Len returns the number of dates in r, the zero value of
// CalendarDateRange is empty.
func Len(r datetime.CalendarDateRange) int {
	if r == 0 {
		return 0
	}
	return DaysBetween(r.From(), r.To()) + 1
}

// Include returns true if cd is within r.
func Include(r datetime.CalendarDateRange, cd datetime.CalendarDate) bool {
	return r != 0 && r.From() <= cd && cd <= r.To()
}

// Dates returns an iterator over the dates in r in increasing order,
// it yields nothing for the empty range.
func Dates(r datetime.CalendarDateRange) iter.Seq[datetime.CalendarDate] {
	if r == 0 {
		return func(func(datetime.CalendarDate) bool) {}
	}
	return r.Dates()
}

// FormatRange returns r as "YYYY-MM-DD - YYYY-MM-DD" or "(empty)".
func FormatRange(r datetime.CalendarDateRange) string {
	if r == 0 {
		return "(empty)"
	}
	return ISO(r.From()) + " - " + ISO(r.To())
}
