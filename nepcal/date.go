// Copyright 2026 AgriFarm authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nepcal

import (
	"fmt"
	"strings"
	"time"
)

// Date is a Gregorian month and day without a year.
type Date struct {
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%s %02d", d.Month, d.Day)
}

var daysInMonth = []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap returns true for Gregorian leap years.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month for the given year.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February && IsLeap(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// CalendarDate places d in the given year. The day is validated against
// the days in that year's month; a day that does not exist is an error,
// never clamped.
func (d Date) CalendarDate(year int) (CalendarDate, error) {
	if d.Month < time.January || d.Month > time.December {
		return CalendarDate{}, fmt.Errorf("invalid month in anchor %v", d)
	}
	if d.Day < 1 || d.Day > DaysInMonth(year, d.Month) {
		return CalendarDate{}, fmt.Errorf("invalid day in anchor %v for year %04d", d, year)
	}
	return CalendarDate{Year: year, Month: d.Month, Day: d.Day}, nil
}

// CalendarDate is a Gregorian date with a year.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate returns the CalendarDate for the given time.
func NewCalendarDate(when time.Time) CalendarDate {
	return CalendarDate{Year: when.Year(), Month: when.Month(), Day: when.Day()}
}

// ParseCalendarDate parses a date in the form YYYY-MM-DD.
func ParseCalendarDate(val string) (CalendarDate, error) {
	t, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", val)
	}
	return NewCalendarDate(t), nil
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

// Time returns midnight UTC on cd.
func (cd CalendarDate) Time() time.Time {
	return time.Date(cd.Year, cd.Month, cd.Day, 0, 0, 0, 0, time.UTC)
}

// Before returns true if cd falls before o.
func (cd CalendarDate) Before(o CalendarDate) bool {
	if cd.Year != o.Year {
		return cd.Year < o.Year
	}
	if cd.Month != o.Month {
		return cd.Month < o.Month
	}
	return cd.Day < o.Day
}

// After returns true if cd falls after o.
func (cd CalendarDate) After(o CalendarDate) bool {
	return o.Before(cd)
}

// Tomorrow returns the next day. Dec-31 wraps to Jan-01 of the
// following year.
func (cd CalendarDate) Tomorrow() CalendarDate {
	if cd.Month == time.December && cd.Day == 31 {
		return CalendarDate{Year: cd.Year + 1, Month: time.January, Day: 1}
	}
	if cd.Day >= DaysInMonth(cd.Year, cd.Month) {
		return CalendarDate{Year: cd.Year, Month: cd.Month + 1, Day: 1}
	}
	cd.Day++
	return cd
}

// CalendarDateList is an ordered list of dates.
type CalendarDateList []CalendarDate

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}
