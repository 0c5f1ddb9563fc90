// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
)

// Period is an amount of time in years, months and days in a specific
// calendar. The zero value has no calendar and is compatible with
// periods and dates of any calendar.
type Period struct {
	chrono *Chronology
	years  int
	months int
	days   int
}

// Between returns the period from start to end, such that adding the
// period to start yields end.
func Between(start, end Date) (Period, error) {
	return start.PeriodUntil(end)
}

func (p Period) Chronology() *Chronology { return p.chrono }
func (p Period) Years() int              { return p.years }
func (p Period) Months() int             { return p.months }
func (p Period) Days() int               { return p.days }

// Units returns the units supported by Get.
func (p Period) Units() []Unit {
	return []Unit{Years, Months, Days}
}

// Get returns the amount for the specified unit.
func (p Period) Get(u Unit) (int64, error) {
	switch u {
	case Years:
		return int64(p.years), nil
	case Months:
		return int64(p.months), nil
	case Days:
		return int64(p.days), nil
	}
	return 0, fmt.Errorf("%v: %w", u, ErrUnsupportedUnit)
}

func (p Period) IsZero() bool {
	return p.years == 0 && p.months == 0 && p.days == 0
}

// IsNegative returns true if any of the amounts are negative.
func (p Period) IsNegative() bool {
	return p.years < 0 || p.months < 0 || p.days < 0
}

// Equal returns true if p and o have the same calendar and amounts.
func (p Period) Equal(o Period) bool {
	return p == o
}

// compatible returns the calendar shared by p and chrono.
func (p Period) compatible(chrono *Chronology) (*Chronology, error) {
	switch {
	case p.chrono == nil:
		return chrono, nil
	case chrono == nil || chrono == p.chrono:
		return p.chrono, nil
	}
	return nil, fmt.Errorf("calendar %v does not match %v: %w", chrono, p.chrono, ErrTypeMismatch)
}

func newPeriod(c *Chronology, years, months, days int64) (Period, error) {
	y, err := toIntExact(years)
	if err != nil {
		return Period{}, err
	}
	m, err := toIntExact(months)
	if err != nil {
		return Period{}, err
	}
	d, err := toIntExact(days)
	if err != nil {
		return Period{}, err
	}
	return Period{chrono: c, years: y, months: m, days: d}, nil
}

func (p Period) combine(o Period, op func(a, b int64) (int64, error)) (Period, error) {
	c, err := p.compatible(o.chrono)
	if err != nil {
		return Period{}, err
	}
	y, err := op(int64(p.years), int64(o.years))
	if err != nil {
		return Period{}, err
	}
	m, err := op(int64(p.months), int64(o.months))
	if err != nil {
		return Period{}, err
	}
	d, err := op(int64(p.days), int64(o.days))
	if err != nil {
		return Period{}, err
	}
	return newPeriod(c, y, m, d)
}

// Plus returns the sum of p and o, which must be in the same calendar.
func (p Period) Plus(o Period) (Period, error) {
	return p.combine(o, addExact)
}

// Minus returns p less o, which must be in the same calendar.
func (p Period) Minus(o Period) (Period, error) {
	return p.combine(o, subtractExact)
}

// MultipliedBy returns p with each amount multiplied by scalar.
func (p Period) MultipliedBy(scalar int) (Period, error) {
	if p.IsZero() || scalar == 1 {
		return p, nil
	}
	s := int64(scalar)
	y, err := multiplyExact(int64(p.years), s)
	if err != nil {
		return Period{}, err
	}
	m, err := multiplyExact(int64(p.months), s)
	if err != nil {
		return Period{}, err
	}
	d, err := multiplyExact(int64(p.days), s)
	if err != nil {
		return Period{}, err
	}
	return newPeriod(p.chrono, y, m, d)
}

func (p Period) Negated() (Period, error) {
	return p.MultipliedBy(-1)
}

// monthsPerYear returns the fixed number of months in each year of the
// period's calendar, or false if the calendar does not have a fixed number
// of months. Periods without a calendar use the ISO calendar's 12.
func (p Period) monthsPerYear() (int64, bool) {
	if p.chrono == nil {
		return 12, true
	}
	n, err := p.chrono.monthsPerYear()
	return n, err == nil
}

// Normalized returns p with months in the range of a single year, carrying
// whole years into the years amount. The sign of years and months will be
// the same. Periods in calendars that do not have a fixed number of months
// per year are returned unchanged.
func (p Period) Normalized() (Period, error) {
	perYear, ok := p.monthsPerYear()
	if !ok {
		return p, nil
	}
	total, err := p.totalMonths(perYear)
	if err != nil {
		return Period{}, err
	}
	years, months := total/perYear, total%perYear
	if years == int64(p.years) && months == int64(p.months) {
		return p, nil
	}
	return newPeriod(p.chrono, years, months, int64(p.days))
}

func (p Period) totalMonths(perYear int64) (int64, error) {
	ym, err := multiplyExact(int64(p.years), perYear)
	if err != nil {
		return 0, err
	}
	return addExact(ym, int64(p.months))
}

// AddTo adds p to d. For calendars with a fixed number of months per year
// the years and months are added as a single number of months, followed
// by the days. The period and date must be in the same calendar.
func (p Period) AddTo(d Date) (Date, error) {
	return p.apply(d, 1)
}

// SubtractFrom subtracts p from d; see AddTo.
func (p Period) SubtractFrom(d Date) (Date, error) {
	return p.apply(d, -1)
}

func (p Period) apply(d Date, sign int64) (Date, error) {
	if _, err := p.compatible(d.chrono); err != nil {
		return Date{}, err
	}
	if d.IsZero() {
		return Date{}, fmt.Errorf("zero date: %w", ErrInvalidDate)
	}
	pp := p
	pp.chrono = d.chrono
	var err error
	var n int64
	if perYear, ok := pp.monthsPerYear(); ok {
		var total int64
		if total, err = pp.totalMonths(perYear); err != nil {
			return Date{}, err
		}
		if total != 0 {
			if n, err = multiplyExact(total, sign); err != nil {
				return Date{}, err
			}
			if d, err = d.PlusMonths(n); err != nil {
				return Date{}, err
			}
		}
	} else {
		if p.years != 0 {
			if n, err = multiplyExact(int64(p.years), sign); err != nil {
				return Date{}, err
			}
			if d, err = d.PlusYears(n); err != nil {
				return Date{}, err
			}
		}
		if p.months != 0 {
			if n, err = multiplyExact(int64(p.months), sign); err != nil {
				return Date{}, err
			}
			if d, err = d.PlusMonths(n); err != nil {
				return Date{}, err
			}
		}
	}
	if n, err = multiplyExact(int64(p.days), sign); err != nil {
		return Date{}, err
	}
	return d.PlusDays(n)
}

// String returns the ISO-8601 form of the period prefixed by its
// calendar, eg. "ISO P1Y2M3D".
func (p Period) String() string {
	if p.chrono == nil {
		return p.ISO8601()
	}
	return p.chrono.ID() + " " + p.ISO8601()
}
