// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// TimeOfDay is a wall clock time, to the second, packed as
// hour<<16 | minute<<8 | second so that values order naturally.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute and
// second which are assumed to be valid.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

// TimeOfDayFromTime returns the wall clock time of t.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) Hour() int {
	return int(t >> 16)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t & 0xff)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// SecondOfDay returns the number of seconds since midnight.
func (t TimeOfDay) SecondOfDay() int64 {
	return int64(t.Hour())*3600 + int64(t.Minute())*60 + int64(t.Second())
}

func timeOfDayFromSeconds(secs int64) TimeOfDay {
	return NewTimeOfDay(int(secs/3600), int(secs/60%60), int(secs%60))
}

// plusSeconds adds secs to t and returns the resulting time of day and the
// number of days carried.
func (t TimeOfDay) plusSeconds(secs int64) (TimeOfDay, int64, error) {
	total, err := addExact(t.SecondOfDay(), secs)
	if err != nil {
		return 0, 0, err
	}
	return timeOfDayFromSeconds(floorMod(total, secondsPerDay)), floorDiv(total, secondsPerDay), nil
}

func parseBounded(v, what string, max int) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > max || len(v) > 2 {
		return 0, fmt.Errorf("invalid %v: %q", what, v)
	}
	return n, nil
}

// Parse val in formats '08[:12[:10]][am|pm]'.
func (t *TimeOfDay) Parse(val string) error {
	tl := strings.TrimSpace(strings.ToLower(val))
	if len(tl) == 0 {
		return fmt.Errorf("empty value, expected '08[:12][:10][am|pm]'")
	}
	ampm := ""
	if strings.HasSuffix(tl, "am") || strings.HasSuffix(tl, "pm") {
		ampm = tl[len(tl)-2:]
		tl = strings.TrimSpace(tl[:len(tl)-2])
	}
	parts := strings.Split(tl, ":")
	if len(parts) > 3 {
		return fmt.Errorf("invalid format %q, expected '08:12[:10]'", val)
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	hour, err := parseBounded(parts[0], "hour", 23)
	if err != nil {
		return err
	}
	if len(ampm) > 0 {
		if hour < 1 || hour > 12 {
			return fmt.Errorf("invalid hour: %q with %v", parts[0], ampm)
		}
		hour %= 12
		if ampm == "pm" {
			hour += 12
		}
	}
	minute, err := parseBounded(parts[1], "minute", 59)
	if err != nil {
		return err
	}
	second, err := parseBounded(parts[2], "second", 59)
	if err != nil {
		return err
	}
	*t = NewTimeOfDay(hour, minute, second)
	return nil
}
