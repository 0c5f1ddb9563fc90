// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"cloudeng.io/chrono"
)

func TestParseField(t *testing.T) {
	for i, tc := range []struct {
		name string
		want chrono.Field
	}{
		{"era", chrono.FieldEra},
		{"month-of-year", chrono.FieldMonthOfYear},
		{"MONTH_OF_YEAR", chrono.FieldMonthOfYear},
		{" Aligned-Day-Of-Week-In-Year ", chrono.FieldAlignedDayOfWeekInYear},
		{"epoch_day", chrono.FieldEpochDay},
	} {
		f, err := chrono.ParseField(tc.name)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := f, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if _, err := chrono.ParseField("hour-of-day"); !errors.Is(err, chrono.ErrUnsupportedField) {
		t.Errorf("unexpected error: %v", err)
	}
	fields := chrono.Fields()
	if got, want := len(fields), 13; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, f := range fields {
		p, err := chrono.ParseField(f.String())
		if err != nil || p != f {
			t.Errorf("%v: %v %v", f, p, err)
		}
	}
	if got, want := chrono.Field(99).String(), "field(99)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFieldValues(t *testing.T) {
	fv, err := chrono.ParseFieldValues("day-of-month=19, year=2023", "month-of-year=7,")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := fv.String(), "year=2023,month-of-year=7,day-of-month=19"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := fv.Fields(), []chrono.Field{chrono.FieldYear, chrono.FieldMonthOfYear, chrono.FieldDayOfMonth}; len(got) != len(want) || got[0] != want[0] || got[2] != want[2] {
		t.Errorf("got %v, want %v", got, want)
	}

	c := fv.Clone()
	delete(c, chrono.FieldYear)
	if got, want := len(fv), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Repeating a field is only allowed with the same value.
	if _, err := chrono.ParseFieldValues("year=2023,year=2023"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	_, err = chrono.ParseFieldValues("year=2023", "year=2024")
	if !errors.Is(err, chrono.ErrInvalidDate) || !strings.Contains(err.Error(), "conflict found") {
		t.Errorf("unexpected error: %v", err)
	}
	for _, tc := range []string{"year", "year=x", "hour=1", "year=99999999999999999999"} {
		if _, err := chrono.ParseFieldValues(tc); err == nil {
			t.Errorf("%q: expected an error", tc)
		}
	}
}

func TestParseUnit(t *testing.T) {
	for i, tc := range []struct {
		name string
		want chrono.Unit
	}{
		{"days", chrono.Days},
		{"Day", chrono.Days},
		{"WEEKS", chrono.Weeks},
		{"month", chrono.Months},
		{"years", chrono.Years},
		{"decade", chrono.Decades},
		{"century", chrono.Centuries},
		{"centuries", chrono.Centuries},
		{"millennium", chrono.Millennia},
		{"millennia", chrono.Millennia},
		{"eras", chrono.Eras},
	} {
		u, err := chrono.ParseUnit(tc.name)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := u, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if _, err := chrono.ParseUnit("fortnight"); !errors.Is(err, chrono.ErrUnsupportedUnit) {
		t.Errorf("unexpected error: %v", err)
	}
	if got, want := chrono.Centuries.String(), "centuries"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestValueRange(t *testing.T) {
	for i, tc := range []struct {
		r     chrono.ValueRange
		text  string
		fixed bool
		isInt bool
	}{
		{chrono.NewValueRange(1, 12), "1 - 12", true, true},
		{chrono.NewVariableRange(1, 28, 31), "1 - 28/31", false, true},
		{chrono.NewFullRange(0, 1, 5, 7), "0/1 - 5/7", false, true},
		{chrono.NewValueRange(math.MinInt32, math.MaxInt32), "-2147483648 - 2147483647", true, true},
		{chrono.NewValueRange(0, math.MaxInt32+1), "0 - 2147483648", true, false},
	} {
		if got, want := tc.r.String(), tc.text; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := tc.r.IsFixed(), tc.fixed; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := tc.r.IsIntValue(), tc.isInt; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	r := chrono.NewVariableRange(1, 28, 31)
	if !r.IsValidValue(31) || r.IsValidValue(0) || r.IsValidValue(32) {
		t.Errorf("incorrect validity")
	}
	err := r.CheckValid(32, chrono.FieldDayOfMonth)
	if !errors.Is(err, chrono.ErrInvalidDate) {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := err.Error(), "invalid value for day-of-month (valid values 1 - 28/31): 32: invalid date"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	v, err := r.CheckValidInt(30, chrono.FieldDayOfMonth)
	if err != nil || v != 30 {
		t.Errorf("got %v %v", v, err)
	}
	if _, err := chrono.NewValueRange(0, math.MaxInt64).CheckValidInt(1, chrono.FieldEpochDay); !errors.Is(err, chrono.ErrInvalidDate) {
		t.Errorf("unexpected error: %v", err)
	}
}
