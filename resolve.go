// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"strings"
)

// ResolverStyle determines how strictly field values are interpreted by
// ResolveDate.
type ResolverStyle int

const (
	// Strict requires every field to be valid and the combination of
	// fields to denote an existing date.
	Strict ResolverStyle = iota
	// Smart range checks every field but resolves a day of month beyond
	// the end of the month to the last day of the month.
	Smart
	// Lenient builds the date by adding the offsets implied by each
	// field to the first day of the year, so that out of range values
	// overflow into the following months or years.
	Lenient
)

func (s ResolverStyle) String() string {
	switch s {
	case Strict:
		return "strict"
	case Smart:
		return "smart"
	case Lenient:
		return "lenient"
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// ParseResolverStyle parses "strict", "smart" or "lenient".
func ParseResolverStyle(s string) (ResolverStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "smart", "":
		return Smart, nil
	case "lenient":
		return Lenient, nil
	}
	return 0, fmt.Errorf("unrecognised resolver style: %q", s)
}

// resolver contains the individual steps of ResolveDate. Each calendar
// embeds baseResolver and may replace any step.
type resolver interface {
	resolveProlepticMonth(c *Chronology, fv FieldValues, style ResolverStyle) error
	// resolveYearOfEra either replaces the year-of-era and era fields
	// with a year, or returns a date directly with ok set to true.
	resolveYearOfEra(c *Chronology, fv FieldValues, style ResolverStyle) (d Date, ok bool, err error)
	resolveYMD(c *Chronology, fv FieldValues, style ResolverStyle) (Date, error)
	resolveYD(c *Chronology, fv FieldValues, style ResolverStyle) (Date, error)
	resolveYMAA(c *Chronology, fv FieldValues, style ResolverStyle) (Date, error)
	resolveYMAD(c *Chronology, fv FieldValues, style ResolverStyle) (Date, error)
	resolveYAA(c *Chronology, fv FieldValues, style ResolverStyle) (Date, error)
	resolveYAD(c *Chronology, fv FieldValues, style ResolverStyle) (Date, error)
}

// ResolveDate resolves the field values to a date. Resolution consumes the
// fields it uses from fv and may insert derived fields such as year;
// fields that are not needed are left in fv for the caller to cross
// check. fv must not be used concurrently while ResolveDate is running.
//
// The fields are used in the following order of priority:
//
//   - epoch-day
//   - proleptic-month, which is replaced by year and month-of-year
//   - year-of-era and era, which are replaced by year
//   - year, month-of-year, day-of-month
//   - year, day-of-year
//   - year, month-of-year, aligned-week-of-month, aligned-day-of-week-in-month
//   - year, month-of-year, aligned-week-of-month, day-of-week
//   - year, aligned-week-of-year, aligned-day-of-week-in-year
//   - year, aligned-week-of-year, day-of-week
//
// ok is false, with a nil error, if there are insufficient fields to
// determine a date.
func (c *Chronology) ResolveDate(fv FieldValues, style ResolverStyle) (d Date, ok bool, err error) {
	if err := c.Check(); err != nil {
		return Date{}, false, err
	}
	if ed, present := fv.remove(FieldEpochDay); present {
		d, err := c.DateEpochDay(ed)
		return d, err == nil, err
	}
	r := c.sys
	if err := r.resolveProlepticMonth(c, fv, style); err != nil {
		return Date{}, false, err
	}
	if d, ok, err := r.resolveYearOfEra(c, fv, style); ok || err != nil {
		return d, ok && err == nil, err
	}
	if !fv.has(FieldYear) {
		return Date{}, false, nil
	}
	switch {
	case fv.has(FieldMonthOfYear, FieldDayOfMonth):
		d, err = r.resolveYMD(c, fv, style)
	case fv.has(FieldDayOfYear):
		d, err = r.resolveYD(c, fv, style)
	case fv.has(FieldMonthOfYear, FieldAlignedWeekOfMonth, FieldAlignedDayOfWeekInMonth):
		d, err = r.resolveYMAA(c, fv, style)
	case fv.has(FieldMonthOfYear, FieldAlignedWeekOfMonth, FieldDayOfWeek):
		d, err = r.resolveYMAD(c, fv, style)
	case fv.has(FieldAlignedWeekOfYear, FieldAlignedDayOfWeekInYear):
		d, err = r.resolveYAA(c, fv, style)
	case fv.has(FieldAlignedWeekOfYear, FieldDayOfWeek):
		d, err = r.resolveYAD(c, fv, style)
	default:
		return Date{}, false, nil
	}
	if err != nil {
		return Date{}, false, err
	}
	return d, true, nil
}

func (fv FieldValues) has(fields ...Field) bool {
	for _, f := range fields {
		if _, ok := fv[f]; !ok {
			return false
		}
	}
	return true
}

// checkedInt removes f from fv and checks it against the calendar's range.
func checkedInt(c *Chronology, fv FieldValues, f Field) (int, error) {
	v, _ := fv.remove(f)
	r, err := c.Range(f)
	if err != nil {
		return 0, err
	}
	return r.CheckValidInt(v, f)
}

// lessOne removes f from fv and returns its value less one.
func lessOne(fv FieldValues, f Field) (int64, error) {
	v, _ := fv.remove(f)
	return subtractExact(v, 1)
}

// chain applies each step in turn, stopping at the first error.
func chain(d Date, err error, steps ...func(Date) (Date, error)) (Date, error) {
	for _, step := range steps {
		if err != nil {
			return Date{}, err
		}
		d, err = step(d)
	}
	return d, err
}

func plus(amount int64, unit Unit) func(Date) (Date, error) {
	return func(d Date) (Date, error) { return d.Plus(amount, unit) }
}

// nextOrSame returns the first date on or after d that falls on dow.
func nextOrSame(dow int) func(Date) (Date, error) {
	return func(d Date) (Date, error) {
		return d.PlusDays(floorMod(int64(dow-d.DayOfWeek()), 7))
	}
}

// baseResolver implements the resolution steps for calendars with a fixed
// number of months in each year.
type baseResolver struct{}

func (baseResolver) resolveProlepticMonth(c *Chronology, fv FieldValues, style ResolverStyle) error {
	pm, ok := fv.remove(FieldProlepticMonth)
	if !ok {
		return nil
	}
	if style != Lenient {
		r, err := c.Range(FieldProlepticMonth)
		if err != nil {
			return err
		}
		if err := r.CheckValid(pm, FieldProlepticMonth); err != nil {
			return err
		}
	}
	perYear, err := c.monthsPerYear()
	if err != nil {
		return err
	}
	if err := fv.add(FieldMonthOfYear, floorMod(pm, perYear)+1); err != nil {
		return err
	}
	return fv.add(FieldYear, floorDiv(pm, perYear))
}

func (baseResolver) resolveYearOfEra(c *Chronology, fv FieldValues, style ResolverStyle) (Date, bool, error) {
	yoeValue, ok := fv.remove(FieldYearOfEra)
	if !ok {
		if ev, ok := fv[FieldEra]; ok {
			r, err := c.Range(FieldEra)
			if err != nil {
				return Date{}, false, err
			}
			return Date{}, false, r.CheckValid(ev, FieldEra)
		}
		return Date{}, false, nil
	}
	var yoe int
	var err error
	if style == Lenient {
		yoe, err = toIntExact(yoeValue)
	} else {
		yoe, err = checkedIntValue(c, FieldYearOfEra, yoeValue)
	}
	if err != nil {
		return Date{}, false, err
	}
	var era Era
	switch ev, hasEra := fv.remove(FieldEra); {
	case hasEra:
		v, err := checkedIntValue(c, FieldEra, ev)
		if err != nil {
			return Date{}, false, err
		}
		if era, err = c.EraOf(v); err != nil {
			return Date{}, false, err
		}
	case fv.has(FieldYear):
		y, err := checkedIntValue(c, FieldYear, fv[FieldYear])
		if err != nil {
			return Date{}, false, err
		}
		first, err := c.DateYearDay(y, 1)
		if err != nil {
			return Date{}, false, err
		}
		era = first.Era()
	case style == Strict:
		// The era is unknown, leave year-of-era for cross checking.
		fv[FieldYearOfEra] = yoeValue
		return Date{}, false, nil
	default:
		eras := c.Eras()
		if len(eras) == 0 {
			return Date{}, false, fv.add(FieldYear, int64(yoe))
		}
		era = eras[len(eras)-1]
	}
	y, err := c.ProlepticYear(era, yoe)
	if err != nil {
		return Date{}, false, err
	}
	return Date{}, false, fv.add(FieldYear, int64(y))
}

func checkedIntValue(c *Chronology, f Field, v int64) (int, error) {
	r, err := c.Range(f)
	if err != nil {
		return 0, err
	}
	return r.CheckValidInt(v, f)
}

func (baseResolver) resolveYMD(c *Chronology, fv FieldValues, style ResolverStyle) (Date, error) {
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
		if d, err := c.Date(y, moy, dom); err == nil {
			return d, nil
		}
		first, err := c.Date(y, moy, 1)
		if err != nil {
			return Date{}, err
		}
		return c.Date(y, moy, first.LengthOfMonth())
	}
	return c.Date(y, moy, dom)
}

func resolveLenientYMD(c *Chronology, fv FieldValues, y int) (Date, error) {
	months, err := lessOne(fv, FieldMonthOfYear)
	if err != nil {
		return Date{}, err
	}
	days, err := lessOne(fv, FieldDayOfMonth)
	if err != nil {
		return Date{}, err
	}
	d, err := c.Date(y, 1, 1)
	return chain(d, err, plus(months, Months), plus(days, Days))
}

func (baseResolver) resolveYD(c *Chronology, fv FieldValues, style ResolverStyle) (Date, error) {
	y, err := checkedInt(c, fv, FieldYear)
	if err != nil {
		return Date{}, err
	}
	if style == Lenient {
		days, err := lessOne(fv, FieldDayOfYear)
		if err != nil {
			return Date{}, err
		}
		d, err := c.DateYearDay(y, 1)
		return chain(d, err, plus(days, Days))
	}
	doy, err := checkedInt(c, fv, FieldDayOfYear)
	if err != nil {
		return Date{}, err
	}
	return c.DateYearDay(y, doy)
}

func (baseResolver) resolveYMAA(c *Chronology, fv FieldValues, style ResolverStyle) (Date, error) {
	y, err := checkedInt(c, fv, FieldYear)
	if err != nil {
		return Date{}, err
	}
	if style == Lenient {
		months, err := lessOne(fv, FieldMonthOfYear)
		if err != nil {
			return Date{}, err
		}
		weeks, err := lessOne(fv, FieldAlignedWeekOfMonth)
		if err != nil {
			return Date{}, err
		}
		days, err := lessOne(fv, FieldAlignedDayOfWeekInMonth)
		if err != nil {
			return Date{}, err
		}
		d, err := c.Date(y, 1, 1)
		return chain(d, err, plus(months, Months), plus(weeks, Weeks), plus(days, Days))
	}
	moy, aw, ad, err := checkedTriple(c, fv, FieldMonthOfYear, FieldAlignedWeekOfMonth, FieldAlignedDayOfWeekInMonth)
	if err != nil {
		return Date{}, err
	}
	d, err := c.Date(y, moy, 1)
	d, err = chain(d, err, plus(int64(aw-1)*7+int64(ad-1), Days))
	if err != nil {
		return Date{}, err
	}
	if style == Strict && d.Month() != moy {
		return Date{}, fmt.Errorf("%v: strict resolution produced %v which is in a different month: %w", c, d, ErrInvalidDate)
	}
	return d, nil
}

func (baseResolver) resolveYMAD(c *Chronology, fv FieldValues, style ResolverStyle) (Date, error) {
	y, err := checkedInt(c, fv, FieldYear)
	if err != nil {
		return Date{}, err
	}
	if style == Lenient {
		months, err := lessOne(fv, FieldMonthOfYear)
		if err != nil {
			return Date{}, err
		}
		weeks, err := lessOne(fv, FieldAlignedWeekOfMonth)
		if err != nil {
			return Date{}, err
		}
		dow, _ := fv.remove(FieldDayOfWeek)
		d, err := c.Date(y, 1, 1)
		if err != nil {
			return Date{}, err
		}
		return resolveAligned(d, months, weeks, dow)
	}
	moy, aw, dow, err := checkedTriple(c, fv, FieldMonthOfYear, FieldAlignedWeekOfMonth, FieldDayOfWeek)
	if err != nil {
		return Date{}, err
	}
	d, err := c.Date(y, moy, 1)
	d, err = chain(d, err, plus(int64(aw-1)*7, Days), nextOrSame(dow))
	if err != nil {
		return Date{}, err
	}
	if style == Strict && d.Month() != moy {
		return Date{}, fmt.Errorf("%v: strict resolution produced %v which is in a different month: %w", c, d, ErrInvalidDate)
	}
	return d, nil
}

func (baseResolver) resolveYAA(c *Chronology, fv FieldValues, style ResolverStyle) (Date, error) {
	y, err := checkedInt(c, fv, FieldYear)
	if err != nil {
		return Date{}, err
	}
	if style == Lenient {
		weeks, err := lessOne(fv, FieldAlignedWeekOfYear)
		if err != nil {
			return Date{}, err
		}
		days, err := lessOne(fv, FieldAlignedDayOfWeekInYear)
		if err != nil {
			return Date{}, err
		}
		d, err := c.DateYearDay(y, 1)
		return chain(d, err, plus(weeks, Weeks), plus(days, Days))
	}
	aw, err := checkedInt(c, fv, FieldAlignedWeekOfYear)
	if err != nil {
		return Date{}, err
	}
	ad, err := checkedInt(c, fv, FieldAlignedDayOfWeekInYear)
	if err != nil {
		return Date{}, err
	}
	d, err := c.DateYearDay(y, 1)
	d, err = chain(d, err, plus(int64(aw-1)*7+int64(ad-1), Days))
	if err != nil {
		return Date{}, err
	}
	if style == Strict && d.Year() != y {
		return Date{}, fmt.Errorf("%v: strict resolution produced %v which is in a different year: %w", c, d, ErrInvalidDate)
	}
	return d, nil
}

func (baseResolver) resolveYAD(c *Chronology, fv FieldValues, style ResolverStyle) (Date, error) {
	y, err := checkedInt(c, fv, FieldYear)
	if err != nil {
		return Date{}, err
	}
	if style == Lenient {
		weeks, err := lessOne(fv, FieldAlignedWeekOfYear)
		if err != nil {
			return Date{}, err
		}
		dow, _ := fv.remove(FieldDayOfWeek)
		d, err := c.DateYearDay(y, 1)
		if err != nil {
			return Date{}, err
		}
		return resolveAligned(d, 0, weeks, dow)
	}
	aw, err := checkedInt(c, fv, FieldAlignedWeekOfYear)
	if err != nil {
		return Date{}, err
	}
	dow, err := checkedInt(c, fv, FieldDayOfWeek)
	if err != nil {
		return Date{}, err
	}
	d, err := c.DateYearDay(y, 1)
	d, err = chain(d, err, plus(int64(aw-1)*7, Days), nextOrSame(dow))
	if err != nil {
		return Date{}, err
	}
	if style == Strict && d.Year() != y {
		return Date{}, fmt.Errorf("%v: strict resolution produced %v which is in a different year: %w", c, d, ErrInvalidDate)
	}
	return d, nil
}

func checkedTriple(c *Chronology, fv FieldValues, a, b, f Field) (int, int, int, error) {
	av, err := checkedInt(c, fv, a)
	if err != nil {
		return 0, 0, 0, err
	}
	bv, err := checkedInt(c, fv, b)
	if err != nil {
		return 0, 0, 0, err
	}
	fv2, err := checkedInt(c, fv, f)
	if err != nil {
		return 0, 0, 0, err
	}
	return av, bv, fv2, nil
}

// resolveAligned adds months and weeks to base and then moves forward to
// the requested day of week. Days of week outside of 1-7 are folded into
// additional weeks.
func resolveAligned(base Date, months, weeks, dow int64) (Date, error) {
	d, err := chain(base, nil, plus(months, Months), plus(weeks, Weeks))
	if err != nil {
		return Date{}, err
	}
	switch {
	case dow > 7:
		if d, err = d.PlusWeeks((dow - 1) / 7); err != nil {
			return Date{}, err
		}
		dow = (dow-1)%7 + 1
	case dow < 1:
		w, err := subtractExact(dow, 7)
		if err != nil {
			return Date{}, err
		}
		if d, err = d.PlusWeeks(w / 7); err != nil {
			return Date{}, err
		}
		dow = (dow+6)%7 + 1
	}
	return nextOrSame(int(dow))(d)
}
