// Copyright 2026 AgriFarm authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sowing

import (
	"fmt"
	"iter"
	"time"

	"github.com/DhirajBro1/AgriFarm/nepcal"
)

// Window is one concrete year instance of a sowing range, inclusive of
// both endpoints. Start never follows End.
type Window struct {
	Start nepcal.CalendarDate
	End   nepcal.CalendarDate
}

func (w Window) String() string {
	return fmt.Sprintf("%v..%v", w.Start, w.End)
}

// Contains returns true if d falls within the window.
func (w Window) Contains(d nepcal.CalendarDate) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Days returns the number of dates in the window, both endpoints
// included.
func (w Window) Days() int {
	return int(w.End.Time().Sub(w.Start.Time())/(24*time.Hour)) + 1
}

// Dates returns an iterator that yields each date in the window in
// order, starting at Start and ending at End.
func (w Window) Dates() iter.Seq[nepcal.CalendarDate] {
	return func(yield func(nepcal.CalendarDate) bool) {
		for d := w.Start; !d.After(w.End); d = d.Tomorrow() {
			if !yield(d) {
				return
			}
		}
	}
}

// DateList returns the window's dates as a slice.
func (w Window) DateList() nepcal.CalendarDateList {
	dates := make(nepcal.CalendarDateList, 0, w.Days())
	for d := range w.Dates() {
		dates = append(dates, d)
	}
	return dates
}

func newWindow(start nepcal.Date, startYear int, end nepcal.Date, endYear int) (Window, error) {
	from, err := start.CalendarDate(startYear)
	if err != nil {
		return Window{}, err
	}
	to, err := end.CalendarDate(endYear)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: from, End: to}, nil
}

// candidates builds the two year placements of a month range: the
// window anchored at today's year and the same window anchored one
// year earlier. A range whose end anchor month precedes its start
// anchor month crosses a year boundary, so its end lands in the year
// after its start.
func candidates(start, end nepcal.Month, today nepcal.CalendarDate) (Window, Window, error) {
	sa, ea := start.Anchor(), end.Anchor()
	wrap := 0
	if ea.Month < sa.Month {
		wrap = 1
	}
	year := today.Year
	a, err := newWindow(sa, year, ea, year+wrap)
	if err != nil {
		return Window{}, Window{}, err
	}
	b, err := newWindow(sa, year-1, ea, year-1+wrap)
	if err != nil {
		return Window{}, Window{}, err
	}
	return a, b, nil
}

// selectWindow prefers whichever window contains today, trying the
// current year's placement before last year's. When today falls in
// neither, the gap between two seasons, the current year placement is
// returned anyway so that callers always receive a deterministic
// window.
func selectWindow(a, b Window, today nepcal.CalendarDate) Window {
	switch {
	case a.Contains(today):
		return a
	case b.Contains(today):
		return b
	default:
		return a
	}
}
