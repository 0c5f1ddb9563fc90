// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"slices"
	"time"
)

// system is the capability set implemented by each calendar. Year, month
// and day arguments are always proleptic years and 1-based months and days
// of the calendar concerned. Methods that accept a year, month and day
// may assume that validate has already accepted them.
type system interface {
	resolver

	// check returns a non-nil error if the calendar cannot be used,
	// typically because its configuration could not be loaded.
	check() error

	eras() []Era
	eraOf(value int) (Era, error)
	prolepticYear(era Era, yearOfEra int) (int, error)
	isLeapYear(prolepticYear int64) bool
	fieldRange(f Field) (ValueRange, error)
	supports(f Field) bool

	validate(year, month, day int) error
	lengthOfMonth(year, month int) int
	lengthOfYear(year int) int
	epochDay(year, month, day int) int64
	fromEpochDay(epochDay int64) (year, month, day int, err error)

	dateEra(year, month, day int) Era
	yearOfEra(year, month, day int) int
	dayOfYear(year, month, day int) int
	eraYearLength(year, month, day int) int
	yearOfEraRange(year, month, day int) ValueRange
}

// eraYearStarter is implemented by calendars where an era may begin part
// way through a year.
type eraYearStarter interface {
	eraYearStart(era Era, year int) (int, int, int)
}

// Chronology is a calendar system. Chronologies are obtained from the
// registry via Lookup, LookupLocale or Chronologies and are safe for
// concurrent use.
type Chronology struct {
	id           string
	calendarType string
	sys          system
}

// ID returns the unique ID of the calendar, eg. "ISO" or "Japanese".
func (c *Chronology) ID() string {
	if c == nil {
		return ""
	}
	return c.id
}

// CalendarType returns the CLDR calendar type, eg. "iso8601" or
// "japanese".
func (c *Chronology) CalendarType() string {
	return c.calendarType
}

// Version returns the version of the calendar's configuration, if it has
// one.
func (c *Chronology) Version() string {
	if v, ok := c.sys.(interface{ version() string }); ok {
		return v.version()
	}
	return ""
}

func (c *Chronology) String() string {
	return c.ID()
}

// Check returns an error, wrapping ErrConfiguration, if the calendar's
// configuration cannot be loaded. Calendars with configuration load it
// lazily, once, on first use; Check forces that load.
func (c *Chronology) Check() error {
	return c.sys.check()
}

// Date returns the date for the specified proleptic year, month and day.
func (c *Chronology) Date(prolepticYear, month, day int) (Date, error) {
	if err := c.sys.validate(prolepticYear, month, day); err != nil {
		return Date{}, err
	}
	return Date{chrono: c, year: prolepticYear, month: month, day: day}, nil
}

// DateYearDay returns the date for the specified day of the proleptic year.
func (c *Chronology) DateYearDay(prolepticYear, dayOfYear int) (Date, error) {
	if err := c.sys.validate(prolepticYear, 1, 1); err != nil {
		return Date{}, err
	}
	if n := c.sys.lengthOfYear(prolepticYear); dayOfYear < 1 || dayOfYear > n {
		return Date{}, fmt.Errorf("%v: day of year %v is not in the range 1 - %v for year %v: %w", c, dayOfYear, n, prolepticYear, ErrInvalidDate)
	}
	return c.DateEpochDay(c.sys.epochDay(prolepticYear, 1, 1) + int64(dayOfYear) - 1)
}

// DateEpochDay returns the date for the specified epoch day, where epoch
// day 0 is 1970-01-01 in the ISO calendar.
func (c *Chronology) DateEpochDay(epochDay int64) (Date, error) {
	y, m, d, err := c.sys.fromEpochDay(epochDay)
	if err != nil {
		return Date{}, err
	}
	return Date{chrono: c, year: y, month: m, day: d}, nil
}

// DateEra returns the date for the specified era, year of era, month and
// day. The date must fall within the era.
func (c *Chronology) DateEra(era Era, yearOfEra, month, day int) (Date, error) {
	y, err := c.ProlepticYear(era, yearOfEra)
	if err != nil {
		return Date{}, err
	}
	d, err := c.Date(y, month, day)
	if err != nil {
		return Date{}, err
	}
	if d.Era() != era {
		return Date{}, fmt.Errorf("%v: %v %v-%02d-%02d is not within era %v: %w", c, era, yearOfEra, month, day, era, ErrInvalidDate)
	}
	return d, nil
}

// DateYearDayEra returns the date for the specified day of the year of era.
// For eras that begin part way through a year, day 1 of the first year of
// the era is the first day of the era.
func (c *Chronology) DateYearDayEra(era Era, yearOfEra, dayOfYear int) (Date, error) {
	y, err := c.ProlepticYear(era, yearOfEra)
	if err != nil {
		return Date{}, err
	}
	sy, sm, sd := y, 1, 1
	if es, ok := c.sys.(eraYearStarter); ok {
		sy, sm, sd = es.eraYearStart(era, y)
	}
	start, err := c.Date(sy, sm, sd)
	if err != nil {
		return Date{}, err
	}
	if dayOfYear < 1 || dayOfYear > start.LengthOfYear() {
		return Date{}, fmt.Errorf("%v: day of year %v is not in the range 1 - %v for %v %v: %w", c, dayOfYear, start.LengthOfYear(), era, yearOfEra, ErrInvalidDate)
	}
	return start.PlusDays(int64(dayOfYear) - 1)
}

// DateFrom converts d to this calendar.
func (c *Chronology) DateFrom(d Date) (Date, error) {
	if d.chrono == c {
		return d, nil
	}
	if d.IsZero() {
		return Date{}, fmt.Errorf("%v: zero date: %w", c, ErrInvalidDate)
	}
	return c.DateEpochDay(d.EpochDay())
}

// DateFromTime returns the date in this calendar for the wall clock date
// of t, in t's location.
func (c *Chronology) DateFromTime(t time.Time) (Date, error) {
	return c.DateEpochDay(isoEpochDay(int64(t.Year()), int(t.Month()), t.Day()))
}

// IsLeapYear returns true if the proleptic year is a leap year. It never
// fails and returns false for years the calendar does not support.
func (c *Chronology) IsLeapYear(prolepticYear int64) bool {
	return c.sys.isLeapYear(prolepticYear)
}

// ProlepticYear returns the proleptic year for a year of era. It returns
// ErrTypeMismatch if era belongs to a different calendar.
func (c *Chronology) ProlepticYear(era Era, yearOfEra int) (int, error) {
	if era.calendar != c.id {
		return 0, fmt.Errorf("%v: era %v belongs to %q: %w", c, era, era.calendar, ErrTypeMismatch)
	}
	return c.sys.prolepticYear(era, yearOfEra)
}

// Eras returns the eras of the calendar in order of increasing proleptic
// years.
func (c *Chronology) Eras() []Era {
	return slices.Clone(c.sys.eras())
}

// EraOf returns the era with the specified value.
func (c *Chronology) EraOf(value int) (Era, error) {
	return c.sys.eraOf(value)
}

// Range returns the range of valid values for f across all dates in the
// calendar.
func (c *Chronology) Range(f Field) (ValueRange, error) {
	return c.sys.fieldRange(f)
}

// Period returns a period of the specified years, months and days in this
// calendar. The amounts are not narrowed to 32 bits as they are for periods
// produced by arithmetic; applying a period whose amounts cannot be negated
// or combined fails with ErrArithmeticOverflow.
func (c *Chronology) Period(years, months, days int) Period {
	return Period{chrono: c, years: years, months: months, days: days}
}

// monthsPerYear returns the number of months in every year for calendars
// with a fixed number of months per year and ErrUnsupportedUnit otherwise.
func (c *Chronology) monthsPerYear() (int64, error) {
	r, err := c.Range(FieldMonthOfYear)
	if err != nil {
		return 0, err
	}
	if !r.IsFixed() {
		return 0, fmt.Errorf("%v does not have a fixed number of months per year: %w", c, ErrUnsupportedUnit)
	}
	return r.Maximum() - r.Minimum() + 1, nil
}
