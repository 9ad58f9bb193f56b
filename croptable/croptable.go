// Copyright 2026 AgriFarm authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package croptable loads the tabular crop calendar and computes the
// current sowing dates for every crop grown at a place. Places are
// classified into one of three agro-ecological zones, each backed by
// its own column of raw sowing ranges in the table.
package croptable

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"

	"github.com/DhirajBro1/AgriFarm/nepcal"
	"github.com/DhirajBro1/AgriFarm/sowing"
)

// Zone identifies the sowing column that applies to a place.
type Zone int

const (
	HighHill Zone = iota + 1
	MidHill
	TeraiBensi
)

var zoneColumns = map[Zone]string{
	HighHill:   "High_Hill_Sowing",
	MidHill:    "Mid_Hill_Sowing",
	TeraiBensi: "Terai_Bensi_Sowing",
}

func (z Zone) String() string {
	switch z {
	case HighHill:
		return "high hill"
	case MidHill:
		return "mid hill"
	case TeraiBensi:
		return "terai/bensi"
	}
	return fmt.Sprintf("zone(%d)", int(z))
}

// UnknownPlaceError is returned when a place name cannot be classified
// into a zone.
type UnknownPlaceError struct {
	Place string
}

func (e *UnknownPlaceError) Error() string {
	return fmt.Sprintf("place not recognized: %q", e.Place)
}

// ZoneForPlace classifies a free-form place name by substring match.
func ZoneForPlace(place string) (Zone, error) {
	lp := strings.ToLower(place)
	switch {
	case strings.Contains(lp, "high"):
		return HighHill, nil
	case strings.Contains(lp, "mid"):
		return MidHill, nil
	case strings.Contains(lp, "terai"), strings.Contains(lp, "bensi"):
		return TeraiBensi, nil
	}
	return 0, &UnknownPlaceError{Place: place}
}

// Entry is one crop calendar row: a crop and variety and its raw sowing
// range per zone. A missing range means the crop is not grown in that
// zone.
type Entry struct {
	Crop    string
	Variety string
	Sowing  map[Zone]string
}

// Table is an in-memory crop calendar. It is read-only once loaded and
// safe for concurrent use.
type Table struct {
	entries []Entry
}

// Entries returns the table rows in file order.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Load reads a crop calendar from CSV data. Columns are located by
// header name, so their order does not matter; Crop, Variety and the
// three zone sowing columns are required.
func Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("crop table: missing header: %w", err)
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	required := []string{"Crop", "Variety", zoneColumns[HighHill], zoneColumns[MidHill], zoneColumns[TeraiBensi]}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("crop table: missing column %q", col)
		}
	}
	var entries []Entry
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("crop table: %w", err)
		}
		field := func(col string) string {
			return strings.TrimSpace(rec[idx[col]])
		}
		entries = append(entries, Entry{
			Crop:    field("Crop"),
			Variety: field("Variety"),
			Sowing: map[Zone]string{
				HighHill:   field(zoneColumns[HighHill]),
				MidHill:    field(zoneColumns[MidHill]),
				TeraiBensi: field(zoneColumns[TeraiBensi]),
			},
		})
	}
	return &Table{entries: entries}, nil
}

// LoadFile reads a crop calendar from the CSV file at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return t, nil
}

// CropDates is the outcome for a single crop and variety: either the
// dates of its current sowing window or the error that prevented
// resolving them. A "not recommended" range yields no dates and no
// error.
type CropDates struct {
	Crop    string
	Variety string
	Dates   nepcal.CalendarDateList
	Err     error
}

// Key labels the entry in reports.
func (cd CropDates) Key() string {
	return cd.Crop + " - " + cd.Variety
}

// CropDatesList holds per-crop outcomes in table row order.
type CropDatesList []CropDates

// Err aggregates the per-crop errors; it is nil when every crop
// resolved.
func (cdl CropDatesList) Err() error {
	errs := errors.M{}
	for _, cd := range cdl {
		errs.Append(cd.Err)
	}
	return errs.Err()
}

// ForPlace classifies place into a zone and resolves the sowing window
// of every crop grown there, relative to today. A crop whose range
// fails to parse is reported in its own CropDates entry and never
// aborts the rest of the batch.
func (t *Table) ForPlace(ctx context.Context, place string, today nepcal.CalendarDate) (CropDatesList, error) {
	zone, err := ZoneForPlace(place)
	if err != nil {
		return nil, err
	}
	return t.ForZone(ctx, zone, today), nil
}

// ForZone resolves the sowing window of every crop with a range for the
// zone. Ranges are resolved in parallel; the results keep the table's
// row order.
func (t *Table) ForZone(ctx context.Context, zone Zone, today nepcal.CalendarDate) CropDatesList {
	grown := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		if e.Sowing[zone] != "" {
			grown = append(grown, e)
		}
	}
	results := make(CropDatesList, len(grown))
	g := &errgroup.T{}
	for i, e := range grown {
		g.Go(func() error {
			dates, err := sowing.Resolve(e.Sowing[zone], today)
			if err != nil {
				err = fmt.Errorf("%v - %v: %w", e.Crop, e.Variety, err)
				ctxlog.Logger(ctx).Warn("failed to resolve sowing range",
					"crop", e.Crop, "variety", e.Variety, "range", e.Sowing[zone], "err", err)
			}
			results[i] = CropDates{Crop: e.Crop, Variety: e.Variety, Dates: dates, Err: err}
			return nil
		})
	}
	// Per-crop failures are recorded in the results, never returned by
	// the goroutines, so the batch always runs to completion.
	_ = g.Wait()
	return results
}
