// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"bufio"
	"bytes"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
)

const (
	minHijrahMonthLength = 29
	maxHijrahMonthLength = 32
)

// hijrahTable is the immutable month table of a Hijrah variant.
type hijrahTable struct {
	version          string
	minYear, maxYear int
	// monthStarts contains the epoch day of the first day of each month
	// followed by the epoch day following the last supported day.
	monthStarts              []int64
	minMonthLen, maxMonthLen int
	minYearLen, maxYearLen   int
}

func (t *hijrahTable) index(year, month int) int {
	return (year-t.minYear)*12 + month - 1
}

func (t *hijrahTable) hasYear(year int64) bool {
	return year >= int64(t.minYear) && year <= int64(t.maxYear)
}

func (t *hijrahTable) monthLength(year, month int) int {
	i := t.index(year, month)
	return int(t.monthStarts[i+1] - t.monthStarts[i])
}

func (t *hijrahTable) yearLength(year int) int {
	i := t.index(year, 1)
	return int(t.monthStarts[i+12] - t.monthStarts[i])
}

func (t *hijrahTable) epochDay(year, month, day int) int64 {
	return t.monthStarts[t.index(year, month)] + int64(day) - 1
}

func (t *hijrahTable) minEpochDay() int64 { return t.monthStarts[0] }
func (t *hijrahTable) maxEpochDay() int64 { return t.monthStarts[len(t.monthStarts)-1] - 1 }

func (t *hijrahTable) date(epochDay int64) (year, month, day int, ok bool) {
	if epochDay < t.minEpochDay() || epochDay > t.maxEpochDay() {
		return 0, 0, 0, false
	}
	i := sort.Search(len(t.monthStarts), func(i int) bool {
		return t.monthStarts[i] > epochDay
	}) - 1
	return t.minYear + i/12, i%12 + 1, int(epochDay-t.monthStarts[i]) + 1, true
}

var hijrahRequiredKeys = []string{"id", "type", "version", "iso-start"}

// parseHijrahConfig parses a variant configuration of the form:
//
//	# comment
//	id=Hijrah-civil
//	type=islamic-civil
//	version=1.0
//	iso-start=1882-11-12
//	1300=30 29 30 29 30 29 30 29 30 29 30 30
//	1301=...
//
// Every defect found is reported in the returned error which wraps
// ErrConfiguration.
func parseHijrahConfig(variant, calendarType string, data []byte) (*hijrahTable, error) {
	errs := &errors.M{}
	props := map[string]string{}
	years := map[int][]int{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if len(text) == 0 || text[0] == '#' || text[0] == '!' {
			continue
		}
		k, v, ok := cutProperty(text)
		if !ok {
			errs.Append(fmt.Errorf("line %v: %q is not of the form key=value", line, text))
			continue
		}
		if slices.Contains(hijrahRequiredKeys, k) {
			props[k] = v
			continue
		}
		y, err := strconv.Atoi(k)
		if err != nil {
			errs.Append(fmt.Errorf("line %v: unrecognised key %q", line, k))
			continue
		}
		if _, dup := years[y]; dup {
			errs.Append(fmt.Errorf("line %v: year %v is defined more than once", line, y))
			continue
		}
		lengths, err := parseMonthLengths(v)
		if err != nil {
			errs.Append(fmt.Errorf("line %v: year %v: %w", line, y, err))
			continue
		}
		years[y] = lengths
	}
	if err := sc.Err(); err != nil {
		errs.Append(err)
	}
	for _, k := range hijrahRequiredKeys {
		if len(props[k]) == 0 {
			errs.Append(fmt.Errorf("missing required key %q", k))
		}
	}
	if id := props["id"]; len(id) > 0 && id != variant {
		errs.Append(fmt.Errorf("configuration is for a different calendar: %q", id))
	}
	if ct := props["type"]; len(ct) > 0 && ct != calendarType {
		errs.Append(fmt.Errorf("configuration is for a different calendar type: %q", ct))
	}
	var isoStart int64
	if s := props["iso-start"]; len(s) > 0 {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			errs.Append(fmt.Errorf("iso-start: %q is not a yyyy-MM-dd date: %w", s, err))
		} else {
			isoStart = isoEpochDay(int64(t.Year()), int(t.Month()), t.Day())
		}
	}
	ordered := make([]int, 0, len(years))
	for y := range years {
		ordered = append(ordered, y)
	}
	slices.Sort(ordered)
	if len(ordered) == 0 {
		errs.Append(fmt.Errorf("no years are defined"))
	}
	for i := 1; i < len(ordered); i++ {
		if prev, cur := ordered[i-1], ordered[i]; cur != prev+1 {
			errs.Append(fmt.Errorf("years %v to %v are missing", prev+1, cur-1))
		}
	}
	if err := errs.Err(); err != nil {
		return nil, fmt.Errorf("hijrah variant %v: %w: %w", variant, ErrConfiguration, err)
	}
	t := &hijrahTable{
		version:     props["version"],
		minYear:     ordered[0],
		maxYear:     ordered[len(ordered)-1],
		monthStarts: make([]int64, 0, len(ordered)*12+1),
		minMonthLen: maxHijrahMonthLength,
		minYearLen:  maxHijrahMonthLength * 12,
	}
	ed := isoStart
	for _, y := range ordered {
		yl := 0
		for _, ml := range years[y] {
			t.monthStarts = append(t.monthStarts, ed)
			ed += int64(ml)
			yl += ml
			t.minMonthLen, t.maxMonthLen = min(t.minMonthLen, ml), max(t.maxMonthLen, ml)
		}
		t.minYearLen, t.maxYearLen = min(t.minYearLen, yl), max(t.maxYearLen, yl)
	}
	t.monthStarts = append(t.monthStarts, ed)
	return t, nil
}

// cutProperty splits a properties line at the first '=' or ':'.
func cutProperty(line string) (string, string, bool) {
	i := strings.IndexAny(line, "=:")
	if i <= 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
}

func parseMonthLengths(v string) ([]int, error) {
	fields := strings.Fields(v)
	if len(fields) != 12 {
		return nil, fmt.Errorf("expected 12 month lengths, found %v", len(fields))
	}
	lengths := make([]int, 12)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("month %v: %q is not a number", i+1, f)
		}
		if n < minHijrahMonthLength || n > maxHijrahMonthLength {
			return nil, fmt.Errorf("month %v: length %v is not in the range %v - %v", i+1, n, minHijrahMonthLength, maxHijrahMonthLength)
		}
		lengths[i] = n
	}
	return lengths, nil
}
