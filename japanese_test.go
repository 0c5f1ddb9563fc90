// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"errors"
	"strings"
	"testing"

	"cloudeng.io/chrono"
)

func TestJapaneseEraBoundaries(t *testing.T) {
	japanese := lookup(t, "Japanese")
	for i, tc := range []struct {
		y, m, d    int
		text       string
		era        int
		dayOfYear  int
		yearLength int
	}{
		{1989, 1, 7, "Japanese Showa 64-01-07", 1, 7, 7},
		{1989, 1, 8, "Japanese Heisei 1-01-08", 2, 1, 358},
		{1989, 12, 31, "Japanese Heisei 1-12-31", 2, 358, 358},
		{2019, 4, 30, "Japanese Heisei 31-04-30", 2, 120, 120},
		{2019, 5, 1, "Japanese Reiwa 1-05-01", 3, 1, 245},
		{2023, 7, 19, "Japanese Reiwa 5-07-19", 3, 200, 365},
		{1912, 7, 29, "Japanese Meiji 45-07-29", -1, 211, 211},
		{1912, 7, 30, "Japanese Taisho 1-07-30", 0, 1, 155},
	} {
		d := mustDate(t, japanese, tc.y, tc.m, tc.d)
		if got, want := d.String(), tc.text; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := d.Era().Value(), tc.era; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := d.DayOfYear(), tc.dayOfYear; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := d.LengthOfYear(), tc.yearLength; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		iso, err := chrono.ISO().DateFrom(d)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := iso, isoDate(t, tc.y, tc.m, tc.d); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestJapaneseEras(t *testing.T) {
	japanese := lookup(t, "Japanese")
	var names []string
	for _, era := range japanese.Eras() {
		names = append(names, era.Name())
		if got, want := era.Calendar(), "Japanese"; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if got, want := strings.Join(names, ","), "Meiji,Taisho,Showa,Heisei,Reiwa"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	heisei, err := japanese.EraOf(2)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := heisei.Name(), "Heisei"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := japanese.EraOf(4); !errors.Is(err, chrono.ErrInvalidDate) {
		t.Errorf("unexpected error: %v", err)
	}

	d, err := japanese.DateEra(heisei, 1, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.String(), "Japanese Heisei 1-01-08"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	d, err = japanese.DateYearDayEra(heisei, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.String(), "Japanese Heisei 1-01-08"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := japanese.DateYearDayEra(heisei, 1, 359); !errors.Is(err, chrono.ErrInvalidDate) {
		t.Errorf("unexpected error: %v", err)
	}

	y, err := japanese.ProlepticYear(heisei, 31)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := y, 2019; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for i, tc := range []struct {
		yoe, m, d int
		msg       string
	}{
		{1, 1, 7, "not within era"},
		{32, 1, 1, "invalid year of era"},
		{0, 1, 1, "invalid year of era"},
		{1, 2, 30, "month 2 has 28 days"},
	} {
		_, err := japanese.DateEra(heisei, tc.yoe, tc.m, tc.d)
		if !errors.Is(err, chrono.ErrInvalidDate) || !strings.Contains(err.Error(), tc.msg) {
			t.Errorf("%v: unexpected error: %v", i, err)
		}
	}

	ce, err := chrono.ISO().EraOf(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := japanese.ProlepticYear(ce, 2023); !errors.Is(err, chrono.ErrTypeMismatch) {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := japanese.Date(1872, 12, 31); !errors.Is(err, chrono.ErrInvalidDate) {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := japanese.DateEpochDay(isoDate(t, 1872, 12, 31).EpochDay()); !errors.Is(err, chrono.ErrInvalidDate) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestJapaneseFields(t *testing.T) {
	japanese := lookup(t, "Japanese")
	for i, tc := range []struct {
		field chrono.Field
		want  string
	}{
		{chrono.FieldEra, "-1 - 3"},
		{chrono.FieldYearOfEra, "1 - 15/999997981"},
		{chrono.FieldDayOfYear, "1 - 7/366"},
		{chrono.FieldMonthOfYear, "1 - 12"},
	} {
		r, err := japanese.Range(tc.field)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := r.String(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	d := mustDate(t, japanese, 2023, 7, 19)
	for _, f := range []chrono.Field{
		chrono.FieldAlignedWeekOfMonth,
		chrono.FieldAlignedWeekOfYear,
		chrono.FieldAlignedDayOfWeekInMonth,
		chrono.FieldAlignedDayOfWeekInYear,
	} {
		if d.Supports(f) {
			t.Errorf("%v: should not be supported", f)
		}
		if _, err := d.Get(f); !errors.Is(err, chrono.ErrUnsupportedField) {
			t.Errorf("%v: unexpected error: %v", f, err)
		}
		if _, err := d.With(f, 1); !errors.Is(err, chrono.ErrUnsupportedField) {
			t.Errorf("%v: unexpected error: %v", f, err)
		}
	}

	r, err := mustDate(t, japanese, 1989, 1, 7).Range(chrono.FieldYearOfEra)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := r.String(), "1 - 64"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	heisei, err := d.With(chrono.FieldEra, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := heisei.String(), "Japanese Heisei 5-07-19"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	next, err := mustDate(t, japanese, 1989, 1, 7).PlusYears(1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := next.String(), "Japanese Heisei 2-01-07"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := next.YearOfEra(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
