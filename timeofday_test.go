// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"testing"
	"time"

	"cloudeng.io/chrono"
)

func TestTimeOfDay(t *testing.T) {
	for i, tc := range []struct {
		val  string
		want chrono.TimeOfDay
	}{
		{"08", chrono.NewTimeOfDay(8, 0, 0)},
		{"08:12", chrono.NewTimeOfDay(8, 12, 0)},
		{"08:12:10", chrono.NewTimeOfDay(8, 12, 10)},
		{"8pm", chrono.NewTimeOfDay(20, 0, 0)},
		{"8 PM", chrono.NewTimeOfDay(20, 0, 0)},
		{"12am", chrono.NewTimeOfDay(0, 0, 0)},
		{"12pm", chrono.NewTimeOfDay(12, 0, 0)},
		{"12:30pm", chrono.NewTimeOfDay(12, 30, 0)},
		{"23:59:59", chrono.NewTimeOfDay(23, 59, 59)},
	} {
		var tod chrono.TimeOfDay
		if err := tod.Parse(tc.val); err != nil {
			t.Errorf("%v: %v: %v", i, tc.val, err)
			continue
		}
		if got, want := tod, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	for _, tc := range []string{"", "24:00", "13pm", "0am", "1:60", "1:2:3:4", "123", "ten"} {
		var tod chrono.TimeOfDay
		if err := tod.Parse(tc); err == nil {
			t.Errorf("%q: expected an error", tc)
		}
	}

	tod := chrono.NewTimeOfDay(13, 4, 5)
	if got, want := tod.String(), "13:04:05"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod.SecondOfDay(), int64(13*3600+4*60+5); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := chrono.TimeOfDayFromTime(time.Date(2023, 7, 19, 13, 4, 5, 999, time.UTC)), tod; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !(chrono.NewTimeOfDay(9, 59, 59) < chrono.NewTimeOfDay(10, 0, 0)) {
		t.Errorf("times of day do not order naturally")
	}
}
