// Copyright 2026 AgriFarm authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/logging/ctxlog"

	"github.com/DhirajBro1/AgriFarm/croptable"
	"github.com/DhirajBro1/AgriFarm/sowing"
)

type cropsFlags struct {
	Table string `subcmd:"table,crops.csv,path to the crop calendar CSV file"`
	Today string `subcmd:"today,,override today's date as YYYY-MM-DD"`
	All   bool   `subcmd:"all,false,print every date in each window rather than a summary"`
}

func crops(ctx context.Context, values any, args []string) error {
	fv := values.(*cropsFlags)
	today, err := todayOrNow(fv.Today)
	if err != nil {
		return err
	}
	table, err := croptable.LoadFile(fv.Table)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("loaded crop table", "file", fv.Table, "rows", len(table.Entries()))
	results, err := table.ForPlace(ctx, args[0], today)
	if err != nil {
		return err
	}
	for _, cd := range results {
		switch {
		case cd.Err != nil:
			fmt.Printf("%v\n", cd.Err)
		case len(cd.Dates) == 0:
			fmt.Printf("%v: not recommended\n", cd.Key())
		default:
			first, last := cd.Dates[0], cd.Dates[len(cd.Dates)-1]
			fmt.Printf("%v: %v .. %v (%v days)\n", cd.Key(), first, last, len(cd.Dates))
			if fv.All {
				for _, d := range cd.Dates {
					fmt.Printf("  %v\n", d)
				}
			}
		}
	}
	return nil
}

type resolveFlags struct {
	Today string `subcmd:"today,,override today's date as YYYY-MM-DD"`
}

func resolve(_ context.Context, values any, args []string) error {
	fv := values.(*resolveFlags)
	today, err := todayOrNow(fv.Today)
	if err != nil {
		return err
	}
	dates, err := sowing.Resolve(args[0], today)
	if err != nil {
		return err
	}
	if len(dates) == 0 {
		fmt.Println("not recommended")
		return nil
	}
	for _, d := range dates {
		fmt.Println(d)
	}
	return nil
}
