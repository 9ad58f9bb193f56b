// Copyright 2026 AgriFarm authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package nepcal maps Nepali (Bikram Sambat) month names, as they appear
// in free-text agricultural calendars, to a canonical set of months and
// to fixed Gregorian anchor dates. The anchors are a fixed approximation
// of each month's first Gregorian day, not an astronomical conversion.
package nepcal

import (
	"fmt"
	"time"
)

// Month is a canonical Nepali month, Baisakh through Chaitra.
type Month int

// The twelve canonical months in Bikram Sambat order.
const (
	Baisakh Month = iota + 1
	Jestha
	Ashad
	Shrawan
	Bhadra
	Ashwin
	Kartik
	Mangsir
	Poush
	Magh
	Falgun
	Chaitra
)

var monthNames = []string{
	"Baisakh", "Jestha", "Ashad", "Shrawan", "Bhadra", "Ashwin",
	"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
}

// anchors approximate the first Gregorian day of each Nepali month.
var anchors = []Date{
	{time.April, 14},     // Baisakh
	{time.May, 15},       // Jestha
	{time.June, 15},      // Ashad
	{time.July, 16},      // Shrawan
	{time.August, 17},    // Bhadra
	{time.September, 17}, // Ashwin
	{time.October, 18},   // Kartik
	{time.November, 17},  // Mangsir
	{time.December, 16},  // Poush
	{time.January, 15},   // Magh
	{time.February, 14},  // Falgun
	{time.March, 15},     // Chaitra
}

func (m Month) String() string {
	if m < Baisakh || m > Chaitra {
		return fmt.Sprintf("month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Anchor returns the fixed Gregorian date approximating the first day
// of the month.
func (m Month) Anchor() Date {
	return anchors[m-1]
}
