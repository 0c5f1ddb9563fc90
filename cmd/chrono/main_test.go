// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloudeng.io/chrono"
	"gopkg.in/yaml.v3"
)

func TestParseDate(t *testing.T) {
	japanese, err := chrono.Lookup("Japanese")
	if err != nil {
		t.Fatal(err)
	}
	for i, tc := range []struct {
		c    *chrono.Chronology
		in   string
		want string
	}{
		{chrono.ISO(), "2023-02-28", "2023-02-28"},
		{chrono.ISO(), "-0044-03-15", "-0044-03-15"},
		{chrono.ISO(), "0-01-01", "0000-01-01"},
		{japanese, "2019-05-01", "Japanese Reiwa 1-05-01"},
	} {
		d, err := parseDate(tc.c, tc.in)
		if err != nil {
			t.Errorf("%v: %v: %v", i, tc.in, err)
			continue
		}
		if got, want := d.String(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	for _, tc := range []string{"", "2023-02", "2023-+2-01", "2023-02-x", "2023--02-01", "2023-02-29"} {
		if _, err := parseDate(chrono.ISO(), tc); err == nil {
			t.Errorf("%q: expected an error", tc)
		}
	}
	if _, err := parseDate(chrono.ISO(), "2023-02-29"); !errors.Is(err, chrono.ErrInvalidDate) {
		t.Errorf("unexpected error: %v", err)
	}
}

func testEnv(t *testing.T, cfg Config) (*env, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &env{cfg: cfg, registry: chrono.NewRegistry(), out: out}, out
}

func TestConvert(t *testing.T) {
	ctx := context.Background()
	e, out := testEnv(t, Config{})
	err := runConvert(ctx, e, &convertFlags{To: "Japanese, roc,ThaiBuddhist"}, []string{"2023-07-19"})
	if err != nil {
		t.Fatal(err)
	}
	var got convertOutput
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got, want := got.From.EpochDay, int64(19557); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	want := []string{
		"Japanese Reiwa 5-07-19",
		"Minguo ROC 112-07-19",
		"ThaiBuddhist BE 2566-07-19",
	}
	if got, want := len(got.To), len(want); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, cv := range got.To {
		if cv.Date == nil {
			t.Errorf("%v: %v: %v", i, cv.Calendar, cv.Error)
			continue
		}
		if got, want := cv.Date.Text, want[i]; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := cv.Date.ISO, "2023-07-19"; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	e, _ = testEnv(t, Config{})
	if err := runConvert(ctx, e, &convertFlags{To: "Mayan"}, []string{"2023-07-19"}); !errors.Is(err, chrono.ErrUnknownCalendar) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	e, out := testEnv(t, Config{Calendar: "iso8601", Style: "smart"})
	err := runResolve(ctx, e, &resolveFlags{}, []string{"year=2023,month-of-year=2", "day-of-month=29", "day-of-week=2"})
	if err != nil {
		t.Fatal(err)
	}
	var got resolveOutput
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got, want := got.Date.Text, "2023-02-28"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := got.Remaining["day-of-week"], int64(2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	e, _ = testEnv(t, Config{})
	err = runResolve(ctx, e, &resolveFlags{Style: "strict"}, []string{"year=2023,month-of-year=2,day-of-month=29"})
	if !errors.Is(err, chrono.ErrInvalidDate) {
		t.Errorf("unexpected error: %v", err)
	}

	e, _ = testEnv(t, Config{})
	err = runResolve(ctx, e, &resolveFlags{}, []string{"year=2023"})
	if err == nil || !strings.Contains(err.Error(), "insufficient fields") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBetweenAndAdd(t *testing.T) {
	ctx := context.Background()
	e, out := testEnv(t, Config{})
	if err := runBetween(ctx, e, &betweenFlags{}, []string{"2023-01-31", "2024-03-01"}); err != nil {
		t.Fatal(err)
	}
	var bo betweenOutput
	if err := yaml.Unmarshal(out.Bytes(), &bo); err != nil {
		t.Fatal(err)
	}
	if got, want := bo.Period, "P1Y1M1D"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := bo.DayDiff, int64(395); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	e, out = testEnv(t, Config{})
	if err := runAdd(ctx, e, &addFlags{}, []string{"2023-01-31", bo.Period}); err != nil {
		t.Fatal(err)
	}
	var ao addOutput
	if err := yaml.Unmarshal(out.Bytes(), &ao); err != nil {
		t.Fatal(err)
	}
	if got, want := ao.Result.Text, "2024-03-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	e, out = testEnv(t, Config{})
	if err := runAdd(ctx, e, &addFlags{Subtract: true}, []string{"2024-03-31", "P1M"}); err != nil {
		t.Fatal(err)
	}
	ao = addOutput{}
	if err := yaml.Unmarshal(out.Bytes(), &ao); err != nil {
		t.Fatal(err)
	}
	if got, want := ao.Result.Text, "2024-02-29"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCalendars(t *testing.T) {
	ctx := context.Background()
	e, out := testEnv(t, Config{})
	if err := runCalendars(ctx, e, &calendarsFlags{}, nil); err != nil {
		t.Fatal(err)
	}
	var infos []calendarInfo
	if err := yaml.Unmarshal(out.Bytes(), &infos); err != nil {
		t.Fatal(err)
	}
	ids := []string{}
	for _, info := range infos {
		ids = append(ids, info.ID)
		if got, want := info.Status, "ready"; got != want {
			t.Errorf("%v: got %v, want %v", info.ID, got, want)
		}
	}
	if got, want := strings.Join(ids, ","), "Hijrah-civil,ISO,Japanese,Minguo,ThaiBuddhist"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestConfig(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	filename := filepath.Join(dir, "config.yaml")
	cfg := `logging:
  level: 1
  format: text
calendar: Japanese
style: strict
`
	if err := os.WriteFile(filename, []byte(cfg), 0600); err != nil {
		t.Fatal(err)
	}
	_, e, err := newEnv(ctx, &GlobalFlags{Config: filename}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	defer e.close()
	c, err := e.calendar("")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.ID(), "Japanese"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	style, err := e.style("")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := style, chrono.Strict; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, _, err := newEnv(ctx, &GlobalFlags{Config: filepath.Join(dir, "missing.yaml")}, &bytes.Buffer{}); err == nil {
		t.Errorf("expected an error for a missing config file")
	}
}
