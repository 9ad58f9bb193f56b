// Copyright 2026 AgriFarm authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sowing resolves free-text Nepali sowing season ranges, such
// as "Baisakh–Jestha (mid)" or "Ashoj-Mangsir", into the concrete
// Gregorian dates of the sowing window that best fits a reference day.
package sowing

import (
	"fmt"
	"strings"

	"github.com/DhirajBro1/AgriFarm/nepcal"
)

// MalformedRangeError indicates that a two month, dash separated range
// could not be extracted from the input, or that one of its anchors
// cannot be placed in the target year. Range is the original input.
type MalformedRangeError struct {
	Range  string
	Reason string
}

func (e *MalformedRangeError) Error() string {
	return fmt.Sprintf("malformed sowing range %q: %s", e.Range, e.Reason)
}

// The separator used after normalization is the en-dash.
const separator = "–"

// The source data mixes hyphen, minus sign, em-dash and en-dash; they
// are all equivalent separators.
var dashes = strings.NewReplacer("—", separator, "-", separator, "−", separator)

func notApplicable(s string) bool {
	lc := strings.ToLower(s)
	if strings.Contains(lc, "not recommend") {
		return true
	}
	switch lc {
	case "n/a", "na", "none", "not recommended":
		return true
	}
	return false
}

// Resolve parses a raw sowing range and returns every date, in order,
// of the window that best fits today. A nil list with a nil error means
// the range is explicitly not applicable (an empty cell, "n/a" or a
// "not recommended" entry). A range whose end month's anchor falls
// earlier in the Gregorian year than its start month's wraps across a
// year boundary. Resolve is a pure function of its arguments and is
// safe for concurrent use.
func Resolve(raw string, today nepcal.CalendarDate) (nepcal.CalendarDateList, error) {
	s := strings.TrimSpace(raw)
	if s == "" || notApplicable(s) {
		return nil, nil
	}
	parts := strings.Split(dashes.Replace(s), separator)
	if len(parts) < 2 {
		return nil, &MalformedRangeError{Range: raw, Reason: "expected two dash separated months"}
	}
	startTok := strings.TrimSpace(parts[0])
	// Trailing parentheticals qualify the end month with a zone note
	// and are discarded.
	endTok, _, _ := strings.Cut(parts[1], "(")
	endTok = strings.TrimSpace(endTok)
	start, err := nepcal.ParseMonth(startTok)
	if err != nil {
		return nil, fmt.Errorf("sowing range %q: %w", raw, err)
	}
	end, err := nepcal.ParseMonth(endTok)
	if err != nil {
		return nil, fmt.Errorf("sowing range %q: %w", raw, err)
	}
	a, b, err := candidates(start, end, today)
	if err != nil {
		return nil, &MalformedRangeError{Range: raw, Reason: err.Error()}
	}
	return selectWindow(a, b, today).DateList(), nil
}
