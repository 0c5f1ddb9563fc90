// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
)

const (
	// MinYear and MaxYear are the range of ISO years supported.
	MinYear = -999_999_999
	MaxYear = 999_999_999

	daysPerCycle   = 146097
	days0000To1970 = daysPerCycle*5 - (30*365 + 7)

	// epoch days of MinYear-01-01 and MaxYear-12-31.
	minEpochDay = -365243219162
	maxEpochDay = 365241780471

	isoID   = "ISO"
	isoType = "iso8601"
)

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year int64, month int) int {
	switch month {
	case 2:
		if isISOLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// isISOLeap returns true if year is a leap year in the proleptic
// Gregorian calendar.
func isISOLeap(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func isoLengthOfMonth(year int64, month int) int {
	if isISOLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

func isoDayOfYear(year int64, month, day int) int {
	if isISOLeap(year) {
		return dayOfYearLeap[month-1] + day
	}
	return dayOfYear[month-1] + day
}

// isoEpochDay returns the number of days since 1970-01-01 for the
// specified proleptic Gregorian date.
func isoEpochDay(year int64, month, day int) int64 {
	y, m := year, int64(month)
	total := 365 * y
	if y >= 0 {
		total += (y+3)/4 - (y+99)/100 + (y+399)/400
	} else {
		total -= y/-4 - y/-100 + y/-400
	}
	total += (367*m - 362) / 12
	total += int64(day) - 1
	if m > 2 {
		total--
		if !isISOLeap(year) {
			total--
		}
	}
	return total - days0000To1970
}

// isoFromEpochDay is the inverse of isoEpochDay. The calculation is
// performed relative to March 1st of year 0 so that the leap day is the
// last day of each four year cycle.
func isoFromEpochDay(epochDay int64) (year int64, month, day int) {
	zeroDay := epochDay + days0000To1970 - 60
	var adjust int64
	if zeroDay < 0 {
		cycles := (zeroDay+1)/daysPerCycle - 1
		adjust = cycles * 400
		zeroDay += -cycles * daysPerCycle
	}
	yearEst := (400*zeroDay + 591) / daysPerCycle
	doyEst := zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	if doyEst < 0 {
		yearEst--
		doyEst = zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	}
	yearEst += adjust
	marchDoy0 := int(doyEst)
	marchMonth0 := (marchDoy0*5 + 2) / 153
	month = (marchMonth0+2)%12 + 1
	day = marchDoy0 - (marchMonth0*306+5)/10 + 1
	yearEst += int64(marchMonth0 / 10)
	return yearEst, month, day
}

// gregorianSystem is a calendar with the months and leap years of the ISO
// calendar, two eras either side of year 1 and year numbers that differ
// from ISO years by a fixed offset.
type gregorianSystem struct {
	baseResolver
	before, current    Era
	offset             int64 // calendar year - ISO year
	minYear, maxYear   int64
	minEpoch, maxEpoch int64
}

func newGregorianSystem(id string, offset int64, before, current string) gregorianSystem {
	return gregorianSystem{
		before:   Era{calendar: id, value: 0, name: before},
		current:  Era{calendar: id, value: 1, name: current},
		offset:   offset,
		minYear:  MinYear + offset,
		maxYear:  MaxYear + offset,
		minEpoch: minEpochDay,
		maxEpoch: maxEpochDay,
	}
}

func (g *gregorianSystem) check() error { return nil }

func (g *gregorianSystem) eras() []Era { return []Era{g.before, g.current} }

func (g *gregorianSystem) eraOf(value int) (Era, error) {
	switch value {
	case 0:
		return g.before, nil
	case 1:
		return g.current, nil
	}
	return Era{}, fmt.Errorf("%v: invalid era: %v: %w", g.current.calendar, value, ErrInvalidDate)
}

func (g *gregorianSystem) prolepticYear(era Era, yearOfEra int) (int, error) {
	switch era {
	case g.current:
		return yearOfEra, nil
	case g.before:
		return 1 - yearOfEra, nil
	}
	return 0, fmt.Errorf("%v: era %v: %w", g.current.calendar, era, ErrTypeMismatch)
}

func (g *gregorianSystem) isLeapYear(prolepticYear int64) bool {
	return isISOLeap(prolepticYear - g.offset)
}

func (g *gregorianSystem) fieldRange(f Field) (ValueRange, error) {
	switch f {
	case FieldYear:
		return NewValueRange(g.minYear, g.maxYear), nil
	case FieldYearOfEra:
		before := -g.minYear + 1
		return NewVariableRange(1, min(before, g.maxYear), max(before, g.maxYear)), nil
	case FieldProlepticMonth:
		return NewValueRange(g.minYear*12, g.maxYear*12+11), nil
	case FieldEpochDay:
		return NewValueRange(g.minEpoch, g.maxEpoch), nil
	}
	if f < FieldEra || f > FieldEpochDay {
		return ValueRange{}, fmt.Errorf("%v: %v: %w", g.current.calendar, f, ErrUnsupportedField)
	}
	return f.baseRange(), nil
}

func (g *gregorianSystem) supports(Field) bool { return true }

func (g *gregorianSystem) validate(year, month, day int) error {
	y := int64(year)
	if y < g.minYear || y > g.maxYear {
		return fmt.Errorf("%v: year %v is not in the range %v - %v: %w", g.current.calendar, year, g.minYear, g.maxYear, ErrInvalidDate)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%v: invalid month %v: %w", g.current.calendar, month, ErrInvalidDate)
	}
	if n := isoLengthOfMonth(y-g.offset, month); day < 1 || day > n {
		return fmt.Errorf("%v: invalid date %v-%02d-%02d, month %v has %v days: %w", g.current.calendar, year, month, day, month, n, ErrInvalidDate)
	}
	return nil
}

func (g *gregorianSystem) lengthOfMonth(year, month int) int {
	return isoLengthOfMonth(int64(year)-g.offset, month)
}

func (g *gregorianSystem) lengthOfYear(year int) int {
	if g.isLeapYear(int64(year)) {
		return 366
	}
	return 365
}

func (g *gregorianSystem) epochDay(year, month, day int) int64 {
	return isoEpochDay(int64(year)-g.offset, month, day)
}

func (g *gregorianSystem) fromEpochDay(epochDay int64) (int, int, int, error) {
	if epochDay < g.minEpoch || epochDay > g.maxEpoch {
		return 0, 0, 0, fmt.Errorf("%v: epoch day %v is not in the range %v - %v: %w", g.current.calendar, epochDay, g.minEpoch, g.maxEpoch, ErrInvalidDate)
	}
	y, m, d := isoFromEpochDay(epochDay)
	return int(y + g.offset), m, d, nil
}

func (g *gregorianSystem) dateEra(year, _, _ int) Era {
	if year >= 1 {
		return g.current
	}
	return g.before
}

func (g *gregorianSystem) yearOfEra(year, _, _ int) int {
	if year >= 1 {
		return year
	}
	return 1 - year
}

func (g *gregorianSystem) dayOfYear(year, month, day int) int {
	return isoDayOfYear(int64(year)-g.offset, month, day)
}

func (g *gregorianSystem) eraYearLength(year, _, _ int) int {
	return g.lengthOfYear(year)
}

func (g *gregorianSystem) yearOfEraRange(year, _, _ int) ValueRange {
	if year >= 1 {
		return NewValueRange(1, g.maxYear)
	}
	return NewValueRange(1, -g.minYear+1)
}

// isoSystem is the ISO-8601 calendar, the proleptic Gregorian calendar
// with eras BCE and CE.
type isoSystem struct {
	gregorianSystem
}

func newISO() *Chronology {
	return &Chronology{
		id:           isoID,
		calendarType: isoType,
		sys:          &isoSystem{newGregorianSystem(isoID, 0, "BCE", "CE")},
	}
}

// resolveYearOfEra infers the era from the sign of the year, if present,
// without constructing any dates.
func (s *isoSystem) resolveYearOfEra(c *Chronology, fv FieldValues, style ResolverStyle) (Date, bool, error) {
	yoe, ok := fv.remove(FieldYearOfEra)
	if !ok {
		if ev, ok := fv[FieldEra]; ok {
			return Date{}, false, FieldEra.baseRange().CheckValid(ev, FieldEra)
		}
		return Date{}, false, nil
	}
	if style != Lenient {
		if err := FieldYearOfEra.baseRange().CheckValid(yoe, FieldYearOfEra); err != nil {
			return Date{}, false, err
		}
	}
	before, err := subtractExact(1, yoe)
	if err != nil {
		return Date{}, false, err
	}
	era, hasEra := fv.remove(FieldEra)
	if hasEra {
		switch era {
		case 1:
			return Date{}, false, fv.add(FieldYear, yoe)
		case 0:
			return Date{}, false, fv.add(FieldYear, before)
		}
		return Date{}, false, fmt.Errorf("%v: invalid value for era: %v: %w", c, era, ErrInvalidDate)
	}
	year, hasYear := fv[FieldYear]
	if style == Strict && !hasYear {
		fv[FieldYearOfEra] = yoe
		return Date{}, false, nil
	}
	if !hasYear || year > 0 {
		return Date{}, false, fv.add(FieldYear, yoe)
	}
	return Date{}, false, fv.add(FieldYear, before)
}

// resolveYMD clamps the day of month directly in smart mode.
func (s *isoSystem) resolveYMD(c *Chronology, fv FieldValues, style ResolverStyle) (Date, error) {
	y, err := checkedInt(c, fv, FieldYear)
	if err != nil {
		return Date{}, err
	}
	if style == Lenient {
		return resolveLenientYMD(c, fv, y)
	}
	moy, err := checkedInt(c, fv, FieldMonthOfYear)
	if err != nil {
		return Date{}, err
	}
	dom, err := checkedInt(c, fv, FieldDayOfMonth)
	if err != nil {
		return Date{}, err
	}
	if style == Smart {
		dom = min(dom, isoLengthOfMonth(int64(y), moy))
	}
	return c.Date(y, moy, dom)
}
