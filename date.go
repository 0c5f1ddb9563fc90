// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"cmp"
	"fmt"
	"math"
	"strings"
)

// Date is an immutable date in a specific calendar. Dates are created by a
// Chronology or by arithmetic on an existing Date. Two dates are equal, as
// per == or Equal, only if they have the same calendar, year, month and day;
// IsSameDay compares dates in different calendars. The zero Date has no
// calendar; methods other than IsZero, String, Compare, Until and
// PeriodUntil require a Date created by a Chronology.
type Date struct {
	chrono *Chronology
	year   int
	month  int
	day    int
}

// IsZero returns true for the zero value, which is not a valid date.
func (d Date) IsZero() bool { return d.chrono == nil }

// Chronology returns the calendar of the date.
func (d Date) Chronology() *Chronology { return d.chrono }

// Year returns the proleptic year.
func (d Date) Year() int { return d.year }

// Month returns the 1-based month of the year.
func (d Date) Month() int { return d.month }

// Day returns the 1-based day of the month.
func (d Date) Day() int { return d.day }

func (d Date) Era() Era {
	return d.chrono.sys.dateEra(d.year, d.month, d.day)
}

func (d Date) YearOfEra() int {
	return d.chrono.sys.yearOfEra(d.year, d.month, d.day)
}

// DayOfYear returns the day within the year of era, which for most
// calendars is the day of the proleptic year.
func (d Date) DayOfYear() int {
	return d.chrono.sys.dayOfYear(d.year, d.month, d.day)
}

// DayOfWeek returns the ISO day of the week, 1 for Monday through 7 for
// Sunday.
func (d Date) DayOfWeek() int {
	return int(floorMod(d.EpochDay()+3, 7)) + 1
}

func (d Date) EpochDay() int64 {
	return d.chrono.sys.epochDay(d.year, d.month, d.day)
}

func (d Date) LengthOfMonth() int {
	return d.chrono.sys.lengthOfMonth(d.year, d.month)
}

// LengthOfYear returns the number of days in the year of era containing d.
func (d Date) LengthOfYear() int {
	return d.chrono.sys.eraYearLength(d.year, d.month, d.day)
}

func (d Date) IsLeapYear() bool {
	return d.chrono.IsLeapYear(int64(d.year))
}

func (d Date) prolepticMonth() int64 {
	n, err := d.chrono.monthsPerYear()
	if err != nil {
		n = 12
	}
	return int64(d.year)*n + int64(d.month-1)
}

// Supports returns true if the field is defined for dates of this calendar.
func (d Date) Supports(f Field) bool {
	return f >= FieldEra && f <= FieldEpochDay && d.chrono.sys.supports(f)
}

func (d Date) unsupported(f Field) error {
	return fmt.Errorf("%v: %v: %w", d.chrono, f, ErrUnsupportedField)
}

// Range returns the range of valid values for f given the month and year
// of d.
func (d Date) Range(f Field) (ValueRange, error) {
	if !d.Supports(f) {
		return ValueRange{}, d.unsupported(f)
	}
	switch f {
	case FieldDayOfMonth:
		return NewValueRange(1, int64(d.LengthOfMonth())), nil
	case FieldDayOfYear:
		return NewValueRange(1, int64(d.LengthOfYear())), nil
	case FieldAlignedWeekOfMonth:
		return NewValueRange(1, int64(d.LengthOfMonth()+6)/7), nil
	case FieldAlignedWeekOfYear:
		return NewValueRange(1, int64(d.LengthOfYear()+6)/7), nil
	case FieldYearOfEra:
		return d.chrono.sys.yearOfEraRange(d.year, d.month, d.day), nil
	}
	return d.chrono.Range(f)
}

// Get returns the value of f.
func (d Date) Get(f Field) (int64, error) {
	if !d.Supports(f) {
		return 0, d.unsupported(f)
	}
	switch f {
	case FieldDayOfWeek:
		return int64(d.DayOfWeek()), nil
	case FieldAlignedDayOfWeekInMonth:
		return int64((d.day-1)%7 + 1), nil
	case FieldAlignedDayOfWeekInYear:
		return int64((d.DayOfYear()-1)%7 + 1), nil
	case FieldDayOfMonth:
		return int64(d.day), nil
	case FieldDayOfYear:
		return int64(d.DayOfYear()), nil
	case FieldEpochDay:
		return d.EpochDay(), nil
	case FieldAlignedWeekOfMonth:
		return int64((d.day-1)/7 + 1), nil
	case FieldAlignedWeekOfYear:
		return int64((d.DayOfYear()-1)/7 + 1), nil
	case FieldMonthOfYear:
		return int64(d.month), nil
	case FieldProlepticMonth:
		return d.prolepticMonth(), nil
	case FieldYearOfEra:
		return int64(d.YearOfEra()), nil
	case FieldYear:
		return int64(d.year), nil
	case FieldEra:
		return int64(d.Era().Value()), nil
	}
	return 0, d.unsupported(f)
}

func (d Date) mustGet(f Field) int64 {
	v, _ := d.Get(f)
	return v
}

// With returns a copy of d with f set to v. Changing the year or month
// keeps the day of month where possible and otherwise uses the last day of
// the month.
func (d Date) With(f Field, v int64) (Date, error) {
	r, err := d.Range(f)
	if err != nil {
		return Date{}, err
	}
	if err := r.CheckValid(v, f); err != nil {
		return Date{}, fmt.Errorf("%v: %w", d.chrono, err)
	}
	switch f {
	case FieldEpochDay:
		return d.chrono.DateEpochDay(v)
	case FieldProlepticMonth:
		return d.PlusMonths(v - d.prolepticMonth())
	case FieldDayOfWeek, FieldAlignedDayOfWeekInMonth, FieldAlignedDayOfWeekInYear, FieldDayOfYear:
		return d.PlusDays(v - d.mustGet(f))
	case FieldAlignedWeekOfMonth, FieldAlignedWeekOfYear:
		return d.PlusDays((v - d.mustGet(f)) * 7)
	case FieldDayOfMonth:
		return d.chrono.Date(d.year, d.month, int(v))
	case FieldMonthOfYear:
		return d.resolvePreviousValid(d.year, int(v), d.day)
	case FieldYear:
		return d.resolvePreviousValid(int(v), d.month, d.day)
	case FieldYearOfEra:
		y, err := d.chrono.ProlepticYear(d.Era(), int(v))
		if err != nil {
			return Date{}, err
		}
		return d.resolvePreviousValid(y, d.month, d.day)
	case FieldEra:
		era, err := d.chrono.EraOf(int(v))
		if err != nil {
			return Date{}, err
		}
		y, err := d.chrono.ProlepticYear(era, d.YearOfEra())
		if err != nil {
			return Date{}, err
		}
		return d.resolvePreviousValid(y, d.month, d.day)
	}
	return Date{}, d.unsupported(f)
}

// resolvePreviousValid returns the date for year, month and day, using the
// last day of the month if day exceeds its length.
func (d Date) resolvePreviousValid(year, month, day int) (Date, error) {
	if err := d.chrono.sys.validate(year, month, 1); err != nil {
		return Date{}, err
	}
	day = min(day, d.chrono.sys.lengthOfMonth(year, month))
	return d.chrono.Date(year, month, day)
}

// Plus returns d with amount units added.
func (d Date) Plus(amount int64, unit Unit) (Date, error) {
	switch unit {
	case Days:
		return d.PlusDays(amount)
	case Weeks:
		return d.PlusWeeks(amount)
	case Months:
		return d.PlusMonths(amount)
	case Years, Decades, Centuries, Millennia:
		mul, _ := unit.yearMultiple()
		years, err := multiplyExact(amount, mul)
		if err != nil {
			return Date{}, err
		}
		return d.PlusYears(years)
	case Eras:
		era, err := addExact(int64(d.Era().Value()), amount)
		if err != nil {
			return Date{}, err
		}
		return d.With(FieldEra, era)
	}
	return Date{}, fmt.Errorf("%v: %v: %w", d.chrono, unit, ErrUnsupportedUnit)
}

// Minus returns d with amount units subtracted.
func (d Date) Minus(amount int64, unit Unit) (Date, error) {
	if amount == math.MinInt64 {
		r, err := d.Plus(math.MaxInt64, unit)
		if err != nil {
			return Date{}, err
		}
		return r.Plus(1, unit)
	}
	return d.Plus(-amount, unit)
}

func (d Date) PlusDays(days int64) (Date, error) {
	if days == 0 {
		return d, nil
	}
	ed, err := addExact(d.EpochDay(), days)
	if err != nil {
		return Date{}, err
	}
	return d.chrono.DateEpochDay(ed)
}

func (d Date) PlusWeeks(weeks int64) (Date, error) {
	days, err := multiplyExact(weeks, 7)
	if err != nil {
		return Date{}, err
	}
	return d.PlusDays(days)
}

// PlusMonths adds months to d, using the last day of the resulting month
// if d's day of month is not valid in it.
func (d Date) PlusMonths(months int64) (Date, error) {
	if months == 0 {
		return d, nil
	}
	perYear, err := d.chrono.monthsPerYear()
	if err != nil {
		return Date{}, err
	}
	count, err := addExact(int64(d.year)*perYear+int64(d.month-1), months)
	if err != nil {
		return Date{}, err
	}
	y, err := toIntExact(floorDiv(count, perYear))
	if err != nil {
		return Date{}, err
	}
	return d.resolvePreviousValid(y, int(floorMod(count, perYear))+1, d.day)
}

// PlusYears adds years to d, using the last day of the month if d's day
// of month is not valid in the resulting year.
func (d Date) PlusYears(years int64) (Date, error) {
	if years == 0 {
		return d, nil
	}
	y, err := addExact(int64(d.year), years)
	if err != nil {
		return Date{}, err
	}
	yi, err := toIntExact(y)
	if err != nil {
		return Date{}, err
	}
	return d.resolvePreviousValid(yi, d.month, d.day)
}

// Until returns the number of complete units from d to end. end is first
// converted to d's calendar.
func (d Date) Until(end Date, unit Unit) (int64, error) {
	if d.IsZero() {
		return 0, fmt.Errorf("zero date: %w", ErrInvalidDate)
	}
	e, err := d.chrono.DateFrom(end)
	if err != nil {
		return 0, err
	}
	switch unit {
	case Days:
		return e.EpochDay() - d.EpochDay(), nil
	case Weeks:
		return (e.EpochDay() - d.EpochDay()) / 7, nil
	case Months:
		return d.monthsUntil(e)
	case Years, Decades, Centuries, Millennia:
		months, err := d.monthsUntil(e)
		if err != nil {
			return 0, err
		}
		perYear, _ := d.chrono.monthsPerYear()
		mul, _ := unit.yearMultiple()
		return months / (perYear * mul), nil
	case Eras:
		return int64(e.Era().Value() - d.Era().Value()), nil
	}
	return 0, fmt.Errorf("%v: %v: %w", d.chrono, unit, ErrUnsupportedUnit)
}

func (d Date) monthsUntil(end Date) (int64, error) {
	if _, err := d.chrono.monthsPerYear(); err != nil {
		return 0, err
	}
	p1 := d.prolepticMonth()*32 + int64(d.day)
	p2 := end.prolepticMonth()*32 + int64(end.day)
	return (p2 - p1) / 32, nil
}

// PeriodUntil returns the period between d and end such that adding the
// period to d yields end. end is first converted to d's calendar.
func (d Date) PeriodUntil(end Date) (Period, error) {
	if d.IsZero() {
		return Period{}, fmt.Errorf("zero date: %w", ErrInvalidDate)
	}
	e, err := d.chrono.DateFrom(end)
	if err != nil {
		return Period{}, err
	}
	perYear, err := d.chrono.monthsPerYear()
	if err != nil {
		return Period{}, err
	}
	months := e.prolepticMonth() - d.prolepticMonth()
	calc, err := d.PlusMonths(months)
	if err != nil {
		return Period{}, err
	}
	days := e.EpochDay() - calc.EpochDay()
	if (months > 0 && days < 0) || (months < 0 && days > 0) {
		if months > 0 {
			months--
		} else {
			months++
		}
		if calc, err = d.PlusMonths(months); err != nil {
			return Period{}, err
		}
		days = e.EpochDay() - calc.EpochDay()
	}
	y, err := toIntExact(months / perYear)
	if err != nil {
		return Period{}, err
	}
	dd, err := toIntExact(days)
	if err != nil {
		return Period{}, err
	}
	return d.chrono.Period(y, int(months%perYear), dd), nil
}

// Equal returns true if d and o have the same calendar, year, month
// and day.
func (d Date) Equal(o Date) bool {
	return d == o
}

// Compare orders dates by epoch day and then by calendar ID. The zero
// Date orders before all others.
func (d Date) Compare(o Date) int {
	switch {
	case d.IsZero() && o.IsZero():
		return 0
	case d.IsZero():
		return -1
	case o.IsZero():
		return 1
	}
	if c := cmp.Compare(d.EpochDay(), o.EpochDay()); c != 0 {
		return c
	}
	return strings.Compare(d.chrono.ID(), o.chrono.ID())
}

// IsBefore returns true if d is earlier in time than o, ignoring calendars.
func (d Date) IsBefore(o Date) bool { return d.EpochDay() < o.EpochDay() }

// IsAfter returns true if d is later in time than o, ignoring calendars.
func (d Date) IsAfter(o Date) bool { return d.EpochDay() > o.EpochDay() }

// IsSameDay returns true if d and o represent the same day, ignoring
// calendars.
func (d Date) IsSameDay(o Date) bool { return d.EpochDay() == o.EpochDay() }

// String returns yyyy-mm-dd for ISO dates and
// "<calendar> <era> <year-of-era>-mm-dd" for all others.
func (d Date) String() string {
	if d.IsZero() {
		return "<zero date>"
	}
	if d.chrono.id == isoID {
		return isoYearString(d.year) + fmt.Sprintf("-%02d-%02d", d.month, d.day)
	}
	return fmt.Sprintf("%v %v %v-%02d-%02d", d.chrono, d.Era(), d.YearOfEra(), d.month, d.day)
}

func isoYearString(y int) string {
	switch {
	case y > 9999:
		return fmt.Sprintf("+%d", y)
	case y < 0:
		return fmt.Sprintf("-%04d", -y)
	}
	return fmt.Sprintf("%04d", y)
}
