// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command chrono resolves, converts and performs arithmetic on dates in
// the calendars supported by cloudeng.io/chrono.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

// GlobalFlags are accepted by all commands.
type GlobalFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml configuration file'"`
}

// CalendarFlags select the calendar used to interpret dates.
type CalendarFlags struct {
	Calendar string `subcmd:"calendar,,'calendar id or type, defaults to the configured calendar or ISO'"`
}

type calendarsFlags struct{}

type resolveFlags struct {
	CalendarFlags
	Style string `subcmd:"style,,'resolver style: strict, smart or lenient'"`
}

type convertFlags struct {
	CalendarFlags
	To string `subcmd:"to,,'comma separated list of calendars to convert to, defaults to all'"`
}

type betweenFlags struct {
	CalendarFlags
}

type addFlags struct {
	CalendarFlags
	Subtract bool `subcmd:"subtract,false,'subtract rather than add the period'"`
}

var globalFlags GlobalFlags

func init() {
	calendarsCmd := subcmd.NewCommand("calendars",
		subcmd.MustRegisterFlagStruct(&calendarsFlags{}, nil, nil),
		calendars, subcmd.WithoutArguments())
	calendarsCmd.Document("list the supported calendars, their eras, field ranges and load status")

	resolveCmd := subcmd.NewCommand("resolve",
		subcmd.MustRegisterFlagStruct(&resolveFlags{}, nil, nil),
		resolve, subcmd.AtLeastNArguments(1))
	resolveCmd.Document("resolve a set of field values to a date", "<field=value>...")

	convertCmd := subcmd.NewCommand("convert",
		subcmd.MustRegisterFlagStruct(&convertFlags{}, nil, nil),
		convert, subcmd.ExactlyNumArguments(1))
	convertCmd.Document("convert a date to the equivalent date in other calendars", "<yyyy-mm-dd>")

	betweenCmd := subcmd.NewCommand("between",
		subcmd.MustRegisterFlagStruct(&betweenFlags{}, nil, nil),
		between, subcmd.ExactlyNumArguments(2))
	betweenCmd.Document("display the period and number of days between two dates", "<yyyy-mm-dd> <yyyy-mm-dd>")

	addCmd := subcmd.NewCommand("add",
		subcmd.MustRegisterFlagStruct(&addFlags{}, nil, nil),
		add, subcmd.ExactlyNumArguments(2))
	addCmd.Document("add an ISO-8601 period, eg. P1Y2M3D, to a date", "<yyyy-mm-dd> <period>")

	cmdSet = subcmd.NewCommandSet(calendarsCmd, resolveCmd, convertCmd, betweenCmd, addCmd)
	globals := subcmd.NewFlagSet()
	globals.MustRegisterFlagStruct(&globalFlags, nil, nil)
	cmdSet.WithGlobalFlags(globals)
	cmdSet.Document(`resolve, convert and perform arithmetic on dates in the ISO, Hijrah, Japanese, Minguo and Thai Buddhist calendars.

Additional Hijrah variants may be specified in a YAML configuration file
using --config:

  logging:
    level: 2
    format: text
  variants:
    - /etc/chrono/hijrah-config-Hijrah-umalqura_islamic-umalqura.properties
  calendar: Japanese
  style: strict

Dates are written as yyyy-mm-dd using the proleptic year of the selected
calendar, a leading - denotes a negative year.
`)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
