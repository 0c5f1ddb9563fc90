// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"errors"
	"testing"

	"cloudeng.io/chrono"
)

func TestOffsetCalendars(t *testing.T) {
	for i, tc := range []struct {
		calendar string
		y, m, d  int
		text     string
		isoYear  int
		era      string
	}{
		{"Minguo", 112, 7, 19, "Minguo ROC 112-07-19", 2023, "ROC"},
		{"Minguo", 1, 1, 1, "Minguo ROC 1-01-01", 1912, "ROC"},
		{"Minguo", 0, 7, 19, "Minguo BEFORE_ROC 1-07-19", 1911, "BEFORE_ROC"},
		{"Minguo", -10, 2, 28, "Minguo BEFORE_ROC 11-02-28", 1901, "BEFORE_ROC"},
		{"ThaiBuddhist", 2566, 7, 19, "ThaiBuddhist BE 2566-07-19", 2023, "BE"},
		{"ThaiBuddhist", 0, 1, 1, "ThaiBuddhist BEFORE_BE 1-01-01", -543, "BEFORE_BE"},
	} {
		c := lookup(t, tc.calendar)
		d := mustDate(t, c, tc.y, tc.m, tc.d)
		if got, want := d.String(), tc.text; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := d.Era().Name(), tc.era; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		iso, err := chrono.ISO().DateFrom(d)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := iso.Year(), tc.isoYear; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		back, err := c.DateFrom(iso)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := back, d; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		y, err := c.ProlepticYear(d.Era(), d.YearOfEra())
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := y, tc.y; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestOffsetLeapYears(t *testing.T) {
	minguo, thai := lookup(t, "Minguo"), lookup(t, "ThaiBuddhist")
	for i, tc := range []struct {
		c    *chrono.Chronology
		year int64
		leap bool
	}{
		{minguo, 113, true},
		{minguo, 112, false},
		{minguo, 89, true},   // 2000
		{minguo, -11, false}, // 1900
		{thai, 2567, true},
		{thai, 2566, false},
		{thai, 2443, false}, // 1900
	} {
		if got, want := tc.c.IsLeapYear(tc.year), tc.leap; got != want {
			t.Errorf("%v: %v %v: got %v, want %v", i, tc.c, tc.year, got, want)
		}
	}

	d := mustDate(t, minguo, 113, 2, 29)
	if got, want := d.LengthOfYear(), 366; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := minguo.Date(112, 2, 29); !errors.Is(err, chrono.ErrInvalidDate) {
		t.Errorf("unexpected error: %v", err)
	}
	if got, want := d.DayOfYear(), 60; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
