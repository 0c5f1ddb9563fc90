// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"cmp"
	"fmt"
	"time"
)

// DateTime is a Date combined with a wall clock TimeOfDay, with no time
// zone.
type DateTime struct {
	date Date
	tod  TimeOfDay
}

// AtTime returns d at the specified time of day.
func (d Date) AtTime(tod TimeOfDay) DateTime {
	return DateTime{date: d, tod: tod}
}

func (dt DateTime) Date() Date              { return dt.date }
func (dt DateTime) TimeOfDay() TimeOfDay    { return dt.tod }
func (dt DateTime) Chronology() *Chronology { return dt.date.chrono }

// Plus adds amount calendar units to the date, leaving the time of day
// unchanged.
func (dt DateTime) Plus(amount int64, unit Unit) (DateTime, error) {
	d, err := dt.date.Plus(amount, unit)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, tod: dt.tod}, nil
}

// PlusDuration adds d, truncated to seconds, carrying into the date as
// required.
func (dt DateTime) PlusDuration(d time.Duration) (DateTime, error) {
	tod, days, err := dt.tod.plusSeconds(int64(d / time.Second))
	if err != nil {
		return DateTime{}, err
	}
	date, err := dt.date.PlusDays(days)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, tod: tod}, nil
}

func (dt DateTime) Equal(o DateTime) bool {
	return dt == o
}

// Compare orders by date, as per Date.Compare, and then by time of day.
func (dt DateTime) Compare(o DateTime) int {
	if c := dt.date.Compare(o.date); c != 0 {
		return c
	}
	return cmp.Compare(dt.tod, o.tod)
}

func (dt DateTime) String() string {
	return dt.date.String() + "T" + dt.tod.String()
}

// AtZone returns the date time in the specified location. Wall clock times
// that do not exist in the location, because of a daylight saving
// transition, are adjusted as per time.Date.
func (dt DateTime) AtZone(loc *time.Location) (ZonedDateTime, error) {
	y, m, d := isoFromEpochDay(dt.date.EpochDay())
	t := time.Date(int(y), time.Month(m), d, dt.tod.Hour(), dt.tod.Minute(), dt.tod.Second(), 0, loc)
	return ZonedFromTime(dt.date.chrono, t)
}

// ZonedDateTime is a DateTime in a time zone.
type ZonedDateTime struct {
	dt  DateTime
	loc *time.Location
}

// ZonedFromTime returns the date and time of t, in t's location, using
// calendar c.
func ZonedFromTime(c *Chronology, t time.Time) (ZonedDateTime, error) {
	d, err := c.DateFromTime(t)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{dt: d.AtTime(TimeOfDayFromTime(t)), loc: t.Location()}, nil
}

func (z ZonedDateTime) DateTime() DateTime       { return z.dt }
func (z ZonedDateTime) Date() Date               { return z.dt.date }
func (z ZonedDateTime) Location() *time.Location { return z.loc }

// Time returns the instant represented by z.
func (z ZonedDateTime) Time() time.Time {
	y, m, d := isoFromEpochDay(z.dt.date.EpochDay())
	tod := z.dt.tod
	return time.Date(int(y), time.Month(m), d, tod.Hour(), tod.Minute(), tod.Second(), 0, z.loc)
}

// Offset returns the zone abbreviation and offset from UTC in effect at z.
func (z ZonedDateTime) Offset() (name string, seconds int) {
	return z.Time().Zone()
}

// WithZoneSameInstant returns the same instant in a different location.
func (z ZonedDateTime) WithZoneSameInstant(loc *time.Location) (ZonedDateTime, error) {
	return ZonedFromTime(z.dt.date.chrono, z.Time().In(loc))
}

// Plus adds calendar units to the local date and then resolves the result
// in the same location.
func (z ZonedDateTime) Plus(amount int64, unit Unit) (ZonedDateTime, error) {
	dt, err := z.dt.Plus(amount, unit)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return dt.AtZone(z.loc)
}

// PlusDuration adds an exact duration to the instant represented by z.
func (z ZonedDateTime) PlusDuration(d time.Duration) (ZonedDateTime, error) {
	return ZonedFromTime(z.dt.date.chrono, z.Time().Add(d))
}

// Compare orders by instant and then by local date time.
func (z ZonedDateTime) Compare(o ZonedDateTime) int {
	if c := z.Time().Compare(o.Time()); c != 0 {
		return c
	}
	return z.dt.Compare(o.dt)
}

func (z ZonedDateTime) String() string {
	_, offset := z.Offset()
	sign := '+'
	if offset < 0 {
		sign, offset = '-', -offset
	}
	return fmt.Sprintf("%v%c%02d:%02d[%v]", z.dt, sign, offset/3600, offset/60%60, z.loc)
}
