// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"sort"
)

const (
	japaneseID   = "Japanese"
	japaneseType = "japanese"

	// The Japanese calendar is supported from Meiji 6, when the
	// Gregorian calendar was adopted.
	japaneseMinYear = 1873
)

type japaneseEra struct {
	era              Era
	year, month, day int
	start            int64 // epoch day of the first day of the era
}

// japaneseSystem is the Japanese imperial calendar. Months, days and leap
// years are those of the ISO calendar but eras begin on the accession of
// each emperor, part way through a year.
type japaneseSystem struct {
	gregorianSystem
	table                []japaneseEra
	yoeSmallestMax       int64
	dayOfYearSmallestMax int64
}

func newJapanese() *Chronology {
	j := &japaneseSystem{gregorianSystem: newGregorianSystem(japaneseID, 0, "", "")}
	j.minYear = japaneseMinYear
	j.minEpoch = isoEpochDay(japaneseMinYear, 1, 1)
	for i, e := range []struct {
		name    string
		y, m, d int
	}{
		{"Meiji", 1868, 1, 1},
		{"Taisho", 1912, 7, 30},
		{"Showa", 1926, 12, 25},
		{"Heisei", 1989, 1, 8},
		{"Reiwa", 2019, 5, 1},
	} {
		j.table = append(j.table, japaneseEra{
			era:   Era{calendar: japaneseID, value: i - 1, name: e.name},
			year:  e.y,
			month: e.m,
			day:   e.d,
			start: isoEpochDay(int64(e.y), e.m, e.d),
		})
	}
	j.yoeSmallestMax = MaxYear
	j.dayOfYearSmallestMax = 366
	for i, e := range j.table[:len(j.table)-1] {
		next := j.table[i+1]
		j.yoeSmallestMax = min(j.yoeSmallestMax, int64(j.lastYear(i)-e.year+1))
		j.dayOfYearSmallestMax = min(j.dayOfYearSmallestMax, next.start-isoEpochDay(int64(next.year), 1, 1))
		if i > 0 {
			j.dayOfYearSmallestMax = min(j.dayOfYearSmallestMax, isoEpochDay(int64(e.year)+1, 1, 1)-e.start)
		}
	}
	return &Chronology{id: japaneseID, calendarType: japaneseType, sys: j}
}

// lastYear returns the last ISO year that contains a day of era i.
func (j *japaneseSystem) lastYear(i int) int {
	if i == len(j.table)-1 {
		return MaxYear
	}
	next := j.table[i+1]
	if next.month == 1 && next.day == 1 {
		return next.year - 1
	}
	return next.year
}

// eraIndex returns the index of the era containing epochDay, or -1.
func (j *japaneseSystem) eraIndex(epochDay int64) int {
	return sort.Search(len(j.table), func(i int) bool {
		return j.table[i].start > epochDay
	}) - 1
}

func (j *japaneseSystem) indexOf(era Era) int {
	for i, e := range j.table {
		if e.era == era {
			return i
		}
	}
	return -1
}

func (j *japaneseSystem) eras() []Era {
	eras := make([]Era, len(j.table))
	for i, e := range j.table {
		eras[i] = e.era
	}
	return eras
}

func (j *japaneseSystem) eraOf(value int) (Era, error) {
	i := value + 1
	if i < 0 || i >= len(j.table) {
		return Era{}, fmt.Errorf("%v: invalid era: %v: %w", japaneseID, value, ErrInvalidDate)
	}
	return j.table[i].era, nil
}

// prolepticYear requires that January 1st of the resulting year fall within
// the era for all but the first year of an era.
func (j *japaneseSystem) prolepticYear(era Era, yearOfEra int) (int, error) {
	i := j.indexOf(era)
	if i < 0 {
		return 0, fmt.Errorf("%v: era %v: %w", japaneseID, era, ErrTypeMismatch)
	}
	y := int64(j.table[i].year) + int64(yearOfEra) - 1
	switch {
	case yearOfEra < 1:
	case yearOfEra == 1:
		return int(y), nil
	case y <= MaxYear && j.eraIndex(isoEpochDay(y, 1, 1)) == i:
		return int(y), nil
	}
	return 0, fmt.Errorf("%v: invalid year of era %v %v: %w", japaneseID, era, yearOfEra, ErrInvalidDate)
}

func (j *japaneseSystem) fieldRange(f Field) (ValueRange, error) {
	switch f {
	case FieldEra:
		return NewValueRange(int64(j.table[0].era.value), int64(j.table[len(j.table)-1].era.value)), nil
	case FieldYearOfEra:
		return NewVariableRange(1, j.yoeSmallestMax, MaxYear-int64(j.table[len(j.table)-1].year)+1), nil
	case FieldDayOfYear:
		return NewVariableRange(1, j.dayOfYearSmallestMax, 366), nil
	}
	return j.gregorianSystem.fieldRange(f)
}

// supports excludes the aligned fields since weeks are not aligned to the
// start of an era.
func (j *japaneseSystem) supports(f Field) bool {
	switch f {
	case FieldAlignedWeekOfMonth, FieldAlignedWeekOfYear,
		FieldAlignedDayOfWeekInMonth, FieldAlignedDayOfWeekInYear:
		return false
	}
	return true
}

func (j *japaneseSystem) entry(year, month, day int) (int, japaneseEra) {
	i := j.eraIndex(isoEpochDay(int64(year), month, day))
	return i, j.table[i]
}

func (j *japaneseSystem) dateEra(year, month, day int) Era {
	_, e := j.entry(year, month, day)
	return e.era
}

func (j *japaneseSystem) yearOfEra(year, month, day int) int {
	_, e := j.entry(year, month, day)
	return year - e.year + 1
}

// dayOfYear counts from the first day of the era in the first year of
// an era.
func (j *japaneseSystem) dayOfYear(year, month, day int) int {
	if _, e := j.entry(year, month, day); e.year == year {
		return int(isoEpochDay(int64(year), month, day)-e.start) + 1
	}
	return isoDayOfYear(int64(year), month, day)
}

func (j *japaneseSystem) eraYearLength(year, month, day int) int {
	i, e := j.entry(year, month, day)
	start, end := isoEpochDay(int64(year), 1, 1), isoEpochDay(int64(year)+1, 1, 1)
	if e.year == year {
		start = e.start
	}
	if i+1 < len(j.table) && j.table[i+1].year == year {
		end = j.table[i+1].start
	}
	return int(end - start)
}

func (j *japaneseSystem) yearOfEraRange(year, month, day int) ValueRange {
	i, e := j.entry(year, month, day)
	return NewValueRange(1, int64(j.lastYear(i)-e.year+1))
}

func (j *japaneseSystem) eraYearStart(era Era, year int) (int, int, int) {
	if i := j.indexOf(era); i >= 0 && j.table[i].year == year {
		e := j.table[i]
		return e.year, e.month, e.day
	}
	return year, 1, 1
}

// resolveYearOfEra resolves era and year-of-era together with the month
// and day, or day of year, since the year of an era only determines the
// proleptic year once the day within it is known. The most recent era is
// assumed when only year-of-era is present and resolution is not strict.
func (j *japaneseSystem) resolveYearOfEra(c *Chronology, fv FieldValues, style ResolverStyle) (Date, bool, error) {
	var era Era
	hasEra := false
	if ev, ok := fv[FieldEra]; ok {
		v, err := checkedIntValue(c, FieldEra, ev)
		if err != nil {
			return Date{}, false, err
		}
		if era, err = j.eraOf(v); err != nil {
			return Date{}, false, err
		}
		hasEra = true
	}
	yoeValue, hasYoe := fv[FieldYearOfEra]
	if !hasYoe {
		return Date{}, false, nil
	}
	yoe, err := checkedIntValue(c, FieldYearOfEra, yoeValue)
	if err != nil {
		return Date{}, false, err
	}
	if !hasEra && !fv.has(FieldYear) && style != Strict {
		era, hasEra = j.table[len(j.table)-1].era, true
	}
	if !hasEra {
		return Date{}, false, nil
	}
	switch {
	case fv.has(FieldMonthOfYear, FieldDayOfMonth):
		d, err := j.resolveEraYMD(c, fv, era, yoe, style)
		return d, err == nil, err
	case fv.has(FieldDayOfYear):
		d, err := j.resolveEraYD(c, fv, era, yoe, style)
		return d, err == nil, err
	}
	y, err := j.prolepticYear(era, yoe)
	if err != nil {
		return Date{}, false, err
	}
	delete(fv, FieldEra)
	delete(fv, FieldYearOfEra)
	return Date{}, false, fv.add(FieldYear, int64(y))
}

func (j *japaneseSystem) lenientYear(era Era, yearOfEra int) int {
	return j.table[j.indexOf(era)].year + yearOfEra - 1
}

func (j *japaneseSystem) resolveEraYMD(c *Chronology, fv FieldValues, era Era, yoe int, style ResolverStyle) (Date, error) {
	delete(fv, FieldEra)
	delete(fv, FieldYearOfEra)
	if style == Lenient {
		return resolveLenientYMD(c, fv, j.lenientYear(era, yoe))
	}
	moy, err := checkedInt(c, fv, FieldMonthOfYear)
	if err != nil {
		return Date{}, err
	}
	dom, err := checkedInt(c, fv, FieldDayOfMonth)
	if err != nil {
		return Date{}, err
	}
	if style == Strict {
		return c.DateEra(era, yoe, moy, dom)
	}
	y := j.lenientYear(era, yoe)
	d, err := c.Date(y, moy, dom)
	if err != nil {
		first, err := c.Date(y, moy, 1)
		if err != nil {
			return Date{}, err
		}
		if d, err = c.Date(y, moy, first.LengthOfMonth()); err != nil {
			return Date{}, err
		}
	}
	// A date in an adjacent era is only accepted when it is in the same
	// ISO year as the change of era.
	if d.Era() != era && d.YearOfEra() > 1 && yoe > 1 {
		return Date{}, fmt.Errorf("%v: invalid year of era for %v %v: %w", c, era, yoe, ErrInvalidDate)
	}
	return d, nil
}

func (j *japaneseSystem) resolveEraYD(c *Chronology, fv FieldValues, era Era, yoe int, style ResolverStyle) (Date, error) {
	delete(fv, FieldEra)
	delete(fv, FieldYearOfEra)
	if style == Lenient {
		days, err := lessOne(fv, FieldDayOfYear)
		if err != nil {
			return Date{}, err
		}
		d, err := c.DateYearDay(j.lenientYear(era, yoe), 1)
		return chain(d, err, plus(days, Days))
	}
	doy, err := checkedInt(c, fv, FieldDayOfYear)
	if err != nil {
		return Date{}, err
	}
	return c.DateYearDayEra(era, yoe, doy)
}
