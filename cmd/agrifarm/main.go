// Copyright 2026 AgriFarm authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command agrifarm translates Nepali calendar sowing seasons into
// concrete dates and looks up scanned food products.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/signals"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"

	"github.com/DhirajBro1/AgriFarm/nepcal"
)

var cmdSet *subcmd.CommandSet

func init() {
	cropsFS := subcmd.NewFlagSet()
	cropsFS.MustRegisterFlagStruct(&cropsFlags{}, nil, nil)
	cropsCmd := subcmd.NewCommand("crops", cropsFS, crops, subcmd.ExactlyNumArguments(1))
	cropsCmd.Document("show the current sowing window for every crop grown at a place", "<place>")

	resolveFS := subcmd.NewFlagSet()
	resolveFS.MustRegisterFlagStruct(&resolveFlags{}, nil, nil)
	resolveCmd := subcmd.NewCommand("resolve", resolveFS, resolve, subcmd.ExactlyNumArguments(1))
	resolveCmd.Document("print every date in the sowing window for a raw Nepali month range", "<range>")

	lookupFS := subcmd.NewFlagSet()
	lookupFS.MustRegisterFlagStruct(&catalogFlags{}, nil, nil)
	lookupCmd := subcmd.NewCommand("lookup", lookupFS, lookup, subcmd.ExactlyNumArguments(1))
	lookupCmd.Document("look up a product by barcode in the food catalog", "<barcode>")

	scanFS := subcmd.NewFlagSet()
	scanFS.MustRegisterFlagStruct(&catalogFlags{}, nil, nil)
	scanCmd := subcmd.NewCommand("scan", scanFS, scan, subcmd.ExactlyNumArguments(1))
	scanCmd.Document("decode a barcode image and look the product up in the food catalog", "<image>")

	cmdSet = subcmd.NewCommandSet(cropsCmd, resolveCmd, lookupCmd, scanCmd)
	cmdSet.Document("agrifarm translates free-text Nepali calendar sowing seasons into concrete Gregorian dates and looks up food products by barcode.")
}

func main() {
	ctx := ctxlog.NewJSONLogger(context.Background(), os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	ctx, _ = signals.NotifyWithCancel(ctx, os.Interrupt)
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

// todayOrNow parses the --today override, defaulting to the current
// day.
func todayOrNow(val string) (nepcal.CalendarDate, error) {
	if val == "" {
		return nepcal.NewCalendarDate(time.Now()), nil
	}
	return nepcal.ParseCalendarDate(val)
}
