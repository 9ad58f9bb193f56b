// Copyright 2026 AgriFarm authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nepcal_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/DhirajBro1/AgriFarm/nepcal"
)

var canonicalMonths = []struct {
	name  string
	month nepcal.Month
}{
	{"Baisakh", nepcal.Baisakh},
	{"Jestha", nepcal.Jestha},
	{"Ashad", nepcal.Ashad},
	{"Shrawan", nepcal.Shrawan},
	{"Bhadra", nepcal.Bhadra},
	{"Ashwin", nepcal.Ashwin},
	{"Kartik", nepcal.Kartik},
	{"Mangsir", nepcal.Mangsir},
	{"Poush", nepcal.Poush},
	{"Magh", nepcal.Magh},
	{"Falgun", nepcal.Falgun},
	{"Chaitra", nepcal.Chaitra},
}

func TestParseMonthCanonical(t *testing.T) {
	for _, tc := range canonicalMonths {
		for _, val := range []string{
			tc.name,
			strings.ToUpper(tc.name),
			strings.ToLower(tc.name),
			" " + tc.name + " ",
		} {
			m, err := nepcal.ParseMonth(val)
			if err != nil {
				t.Errorf("%q: %v", val, err)
				continue
			}
			if got, want := m, tc.month; got != want {
				t.Errorf("%q: got %v, want %v", val, got, want)
			}
		}
	}
}

func TestParseMonthAlias(t *testing.T) {
	for _, tc := range []struct {
		val   string
		month nepcal.Month
	}{
		{"Asoj", nepcal.Ashwin},
		{"Ashoj", nepcal.Ashwin},
		{"Aswin", nepcal.Ashwin},
		{"ASOJ", nepcal.Ashwin},
		{"Baishakh", nepcal.Baisakh},
		{"Baishak", nepcal.Baisakh},
		{"Asar", nepcal.Ashad},
		{"Bhadau", nepcal.Bhadra},
	} {
		m, err := nepcal.ParseMonth(tc.val)
		if err != nil {
			t.Errorf("%q: %v", tc.val, err)
			continue
		}
		if got, want := m, tc.month; got != want {
			t.Errorf("%q: got %v, want %v", tc.val, got, want)
		}
	}
}

func TestParseMonthFuzzy(t *testing.T) {
	for _, tc := range []struct {
		val   string
		month nepcal.Month
	}{
		{"Jesta", nepcal.Jestha},
		{"Mangshir", nepcal.Mangsir},
		{"Shravan", nepcal.Shrawan},
		{"Chait", nepcal.Chaitra},
		{"Falgoon", nepcal.Falgun},
	} {
		m, err := nepcal.ParseMonth(tc.val)
		if err != nil {
			t.Errorf("%q: %v", tc.val, err)
			continue
		}
		if got, want := m, tc.month; got != want {
			t.Errorf("%q: got %v, want %v", tc.val, got, want)
		}
	}
}

func TestParseMonthPrefix(t *testing.T) {
	// Long garbled tokens fall below the similarity cutoff but still
	// resolve by their first three characters.
	for _, tc := range []struct {
		val   string
		month nepcal.Month
	}{
		{"Magxxxxxxx", nepcal.Magh},
		{"Karxxxxxxxxx", nepcal.Kartik},
	} {
		m, err := nepcal.ParseMonth(tc.val)
		if err != nil {
			t.Errorf("%q: %v", tc.val, err)
			continue
		}
		if got, want := m, tc.month; got != want {
			t.Errorf("%q: got %v, want %v", tc.val, got, want)
		}
	}
}

func TestParseMonthErrors(t *testing.T) {
	for _, val := range []string{"", "   ", "\t"} {
		if _, err := nepcal.ParseMonth(val); !errors.Is(err, nepcal.ErrEmptyMonth) {
			t.Errorf("%q: got %v, want %v", val, err, nepcal.ErrEmptyMonth)
		}
	}
	_, err := nepcal.ParseMonth("Xyzzy")
	var ume *nepcal.UnrecognizedMonthError
	if !errors.As(err, &ume) {
		t.Fatalf("got %v, want an UnrecognizedMonthError", err)
	}
	if got, want := ume.Token, "Xyzzy"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
