// Copyright 2026 AgriFarm authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nepcal_test

import (
	"testing"
	"time"

	"github.com/DhirajBro1/AgriFarm/nepcal"
)

func newCalendarDate(y int, m time.Month, d int) nepcal.CalendarDate {
	return nepcal.CalendarDate{Year: y, Month: m, Day: d}
}

func TestMonthAnchor(t *testing.T) {
	for _, tc := range []struct {
		month  nepcal.Month
		anchor nepcal.Date
	}{
		{nepcal.Baisakh, nepcal.Date{Month: time.April, Day: 14}},
		{nepcal.Jestha, nepcal.Date{Month: time.May, Day: 15}},
		{nepcal.Ashad, nepcal.Date{Month: time.June, Day: 15}},
		{nepcal.Shrawan, nepcal.Date{Month: time.July, Day: 16}},
		{nepcal.Bhadra, nepcal.Date{Month: time.August, Day: 17}},
		{nepcal.Ashwin, nepcal.Date{Month: time.September, Day: 17}},
		{nepcal.Kartik, nepcal.Date{Month: time.October, Day: 18}},
		{nepcal.Mangsir, nepcal.Date{Month: time.November, Day: 17}},
		{nepcal.Poush, nepcal.Date{Month: time.December, Day: 16}},
		{nepcal.Magh, nepcal.Date{Month: time.January, Day: 15}},
		{nepcal.Falgun, nepcal.Date{Month: time.February, Day: 14}},
		{nepcal.Chaitra, nepcal.Date{Month: time.March, Day: 15}},
	} {
		if got, want := tc.month.Anchor(), tc.anchor; got != want {
			t.Errorf("%v: got %v, want %v", tc.month, got, want)
		}
	}
}

func TestCalendarDateTomorrow(t *testing.T) {
	for _, tc := range []struct {
		date, next nepcal.CalendarDate
	}{
		{newCalendarDate(2024, time.May, 1), newCalendarDate(2024, time.May, 2)},
		{newCalendarDate(2024, time.February, 28), newCalendarDate(2024, time.February, 29)},
		{newCalendarDate(2023, time.February, 28), newCalendarDate(2023, time.March, 1)},
		{newCalendarDate(2024, time.April, 30), newCalendarDate(2024, time.May, 1)},
		{newCalendarDate(2024, time.December, 31), newCalendarDate(2025, time.January, 1)},
	} {
		if got, want := tc.date.Tomorrow(), tc.next; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
	}
}

func TestCalendarDateOrder(t *testing.T) {
	a := newCalendarDate(2024, time.April, 14)
	for _, tc := range []struct {
		b      nepcal.CalendarDate
		before bool
	}{
		{newCalendarDate(2024, time.April, 15), true},
		{newCalendarDate(2024, time.May, 1), true},
		{newCalendarDate(2025, time.January, 1), true},
		{newCalendarDate(2024, time.April, 14), false},
		{newCalendarDate(2024, time.April, 13), false},
		{newCalendarDate(2023, time.December, 31), false},
	} {
		if got, want := a.Before(tc.b), tc.before; got != want {
			t.Errorf("%v < %v: got %v, want %v", a, tc.b, got, want)
		}
		if a != tc.b {
			if got, want := a.After(tc.b), !tc.before; got != want {
				t.Errorf("%v > %v: got %v, want %v", a, tc.b, got, want)
			}
		}
	}
}

func TestAnchorValidation(t *testing.T) {
	for _, tc := range []struct {
		anchor nepcal.Date
		year   int
		ok     bool
	}{
		{nepcal.Date{Month: time.February, Day: 29}, 2024, true},
		{nepcal.Date{Month: time.February, Day: 29}, 2023, false},
		{nepcal.Date{Month: time.February, Day: 30}, 2024, false},
		{nepcal.Date{Month: time.April, Day: 31}, 2024, false},
		{nepcal.Date{Month: time.April, Day: 14}, 2024, true},
		{nepcal.Date{Month: time.Month(13), Day: 1}, 2024, false},
		{nepcal.Date{Month: time.June, Day: 0}, 2024, false},
	} {
		cd, err := tc.anchor.CalendarDate(tc.year)
		if tc.ok {
			if err != nil {
				t.Errorf("%v in %v: %v", tc.anchor, tc.year, err)
				continue
			}
			want := newCalendarDate(tc.year, tc.anchor.Month, tc.anchor.Day)
			if got := cd; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
			continue
		}
		if err == nil {
			t.Errorf("%v in %v: expected an error", tc.anchor, tc.year)
		}
	}
}

func TestParseCalendarDate(t *testing.T) {
	cd, err := nepcal.ParseCalendarDate("2024-05-01")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := cd, newCalendarDate(2024, time.May, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.String(), "2024-05-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, val := range []string{"", "01/05/2024", "2024-13-01", "2024-02-30"} {
		if _, err := nepcal.ParseCalendarDate(val); err == nil {
			t.Errorf("%q: expected an error", val)
		}
	}
}
