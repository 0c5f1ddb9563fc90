// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"testing"
	"time"

	"cloudeng.io/chrono"
)

func TestDateTime(t *testing.T) {
	dt := isoDate(t, 2023, 12, 31).AtTime(chrono.NewTimeOfDay(23, 30, 0))
	if got, want := dt.String(), "2023-12-31T23:30:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i, tc := range []struct {
		d    time.Duration
		want string
	}{
		{time.Hour, "2024-01-01T00:30:00"},
		{-24 * time.Hour, "2023-12-30T23:30:00"},
		{-23*time.Hour - 31*time.Minute, "2023-12-30T23:59:00"},
		{1500 * time.Millisecond, "2023-12-31T23:30:01"},
		{49 * time.Hour, "2024-01-03T00:30:00"},
	} {
		r, err := dt.PlusDuration(tc.d)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := r.String(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	next, err := dt.Plus(2, chrono.Months)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := next.String(), "2024-02-29T23:30:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dt.Compare(next), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	later := dt.Date().AtTime(chrono.NewTimeOfDay(23, 30, 1))
	if got, want := dt.Compare(later), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !dt.Equal(dt.Date().AtTime(dt.TimeOfDay())) {
		t.Errorf("expected equal date times")
	}
}

func TestZonedDateTime(t *testing.T) {
	jst := time.FixedZone("JST", 9*3600)
	japanese := lookup(t, "Japanese")
	dt := mustDate(t, japanese, 2023, 7, 19).AtTime(chrono.NewTimeOfDay(8, 0, 0))
	z, err := dt.AtZone(jst)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := z.String(), "Japanese Reiwa 5-07-19T08:00:00+09:00[JST]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := z.Time(), time.Date(2023, 7, 18, 23, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	name, offset := z.Offset()
	if name != "JST" || offset != 9*3600 {
		t.Errorf("got %v %v", name, offset)
	}

	utc, err := z.WithZoneSameInstant(time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := utc.String(), "Japanese Reiwa 5-07-18T23:00:00+00:00[UTC]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := utc.Date().Chronology(), japanese; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Same instant, later local date time.
	if got, want := z.Compare(utc), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for i, tc := range []struct {
		loc  *time.Location
		want string
	}{
		{time.FixedZone("EST", -5*3600), "Japanese Reiwa 5-07-18T18:00:00-05:00[EST]"},
		{time.FixedZone("NPT", 5*3600+45*60), "Japanese Reiwa 5-07-19T04:45:00+05:45[NPT]"},
	} {
		w, err := z.WithZoneSameInstant(tc.loc)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := w.String(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	later, err := z.PlusDuration(16 * time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := later.DateTime().String(), "Japanese Reiwa 5-07-20T00:00:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	nextMonth, err := z.Plus(1, chrono.Months)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := nextMonth.String(), "Japanese Reiwa 5-08-19T08:00:00+09:00[JST]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	iso, err := chrono.ZonedFromTime(chrono.ISO(), time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := iso.String(), "2024-02-29T12:00:00+00:00[UTC]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
