// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Field identifies a date field.
type Field int

const (
	FieldEra Field = iota + 1
	FieldYear
	FieldYearOfEra
	FieldMonthOfYear
	FieldDayOfMonth
	FieldDayOfYear
	FieldDayOfWeek
	FieldAlignedWeekOfMonth
	FieldAlignedWeekOfYear
	FieldAlignedDayOfWeekInMonth
	FieldAlignedDayOfWeekInYear
	FieldProlepticMonth
	FieldEpochDay
)

var fieldNames = []string{
	"era",
	"year",
	"year-of-era",
	"month-of-year",
	"day-of-month",
	"day-of-year",
	"day-of-week",
	"aligned-week-of-month",
	"aligned-week-of-year",
	"aligned-day-of-week-in-month",
	"aligned-day-of-week-in-year",
	"proleptic-month",
	"epoch-day",
}

// Fields returns all of the defined fields in order.
func Fields() []Field {
	f := make([]Field, len(fieldNames))
	for i := range fieldNames {
		f[i] = Field(i + 1)
	}
	return f
}

func (f Field) String() string {
	if f < FieldEra || f > FieldEpochDay {
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f-1]
}

// ParseField parses a field name. Names are case insensitive and either
// hyphen or underscore separated, eg. "month-of-year" or "MONTH_OF_YEAR".
func ParseField(name string) (Field, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, fn := range fieldNames {
		if fn == n {
			return Field(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedField)
}

// baseRange returns the ISO range of a field.
func (f Field) baseRange() ValueRange {
	switch f {
	case FieldEra:
		return NewValueRange(0, 1)
	case FieldYear:
		return NewValueRange(MinYear, MaxYear)
	case FieldYearOfEra:
		return NewVariableRange(1, MaxYear, MaxYear+1)
	case FieldMonthOfYear:
		return NewValueRange(1, 12)
	case FieldDayOfMonth:
		return NewVariableRange(1, 28, 31)
	case FieldDayOfYear:
		return NewVariableRange(1, 365, 366)
	case FieldDayOfWeek, FieldAlignedDayOfWeekInMonth, FieldAlignedDayOfWeekInYear:
		return NewValueRange(1, 7)
	case FieldAlignedWeekOfMonth:
		return NewVariableRange(1, 4, 5)
	case FieldAlignedWeekOfYear:
		return NewValueRange(1, 53)
	case FieldProlepticMonth:
		return NewValueRange(MinYear*12, MaxYear*12+11)
	case FieldEpochDay:
		return NewValueRange(minEpochDay, maxEpochDay)
	}
	return ValueRange{}
}

// FieldValues is the working set of field values consumed by ResolveDate.
type FieldValues map[Field]int64

// ParseFieldValues parses field values of the form
// "year=2023,month-of-year=2". Each argument may contain a comma
// separated list.
func ParseFieldValues(args ...string) (FieldValues, error) {
	fv := FieldValues{}
	for _, arg := range args {
		for _, kv := range strings.Split(arg, ",") {
			if len(strings.TrimSpace(kv)) == 0 {
				continue
			}
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				return nil, fmt.Errorf("%q: expected field=value", kv)
			}
			f, err := ParseField(k)
			if err != nil {
				return nil, err
			}
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%v: %q: %w", f, v, err)
			}
			if err := fv.add(f, n); err != nil {
				return nil, err
			}
		}
	}
	return fv, nil
}

// Clone returns a copy of fv.
func (fv FieldValues) Clone() FieldValues {
	c := make(FieldValues, len(fv))
	for k, v := range fv {
		c[k] = v
	}
	return c
}

// Fields returns the fields present, in order.
func (fv FieldValues) Fields() []Field {
	f := make([]Field, 0, len(fv))
	for k := range fv {
		f = append(f, k)
	}
	slices.Sort(f)
	return f
}

func (fv FieldValues) String() string {
	var out strings.Builder
	for i, f := range fv.Fields() {
		if i > 0 {
			out.WriteByte(',')
		}
		fmt.Fprintf(&out, "%v=%v", f, fv[f])
	}
	return out.String()
}

func (fv FieldValues) remove(f Field) (int64, bool) {
	v, ok := fv[f]
	if ok {
		delete(fv, f)
	}
	return v, ok
}

// add inserts a derived value, failing if a different value is already
// present for the same field.
func (fv FieldValues) add(f Field, v int64) error {
	if old, ok := fv[f]; ok && old != v {
		return fmt.Errorf("conflict found: %v %v differs from %v %v: %w", f, old, f, v, ErrInvalidDate)
	}
	fv[f] = v
	return nil
}
