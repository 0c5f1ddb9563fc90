// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"context"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"cloudeng.io/file"
)

const (
	hijrahCivilID   = "Hijrah-civil"
	hijrahCivilType = "islamic-civil"
)

//go:embed data/*.properties
var bundledConfigs embed.FS

// HijrahConfigName returns the file name used for the configuration of a
// Hijrah variant, hijrah-config-<id>_<type>.properties.
func HijrahConfigName(id, calendarType string) string {
	return "hijrah-config-" + id + "_" + calendarType + ".properties"
}

func parseHijrahConfigName(filename string) (id, calendarType string, ok bool) {
	base := filepath.Base(filename)
	if !strings.HasPrefix(base, "hijrah-config-") || !strings.HasSuffix(base, ".properties") {
		return "", "", false
	}
	base = strings.TrimSuffix(strings.TrimPrefix(base, "hijrah-config-"), ".properties")
	id, calendarType, ok = strings.Cut(base, "_")
	return id, calendarType, ok && len(id) > 0 && len(calendarType) > 0
}

// NewHijrahVariant returns a Hijrah calendar whose month table is read from
// filename on first use. The ID and calendar type are taken from the file
// name which must be of the form hijrah-config-<id>_<type>.properties.
// The file is read using file.FSReadFile with any fs.ReadFileFS instances
// stored in ctx by file.ContextWithFS.
func NewHijrahVariant(ctx context.Context, filename string) (*Chronology, error) {
	id, calendarType, ok := parseHijrahConfigName(filename)
	if !ok {
		return nil, fmt.Errorf("%q is not of the form %v: %w", filename, HijrahConfigName("<id>", "<type>"), ErrConfiguration)
	}
	fss, _ := file.FSFromContext(ctx)
	return newHijrah(id, calendarType, func() ([]byte, error) {
		return file.FSReadFile(file.ContextWithFS(context.Background(), fss...), filename)
	}), nil
}

func newBundledHijrah(id, calendarType string) *Chronology {
	name := "data/" + HijrahConfigName(id, calendarType)
	return newHijrah(id, calendarType, func() ([]byte, error) {
		return bundledConfigs.ReadFile(name)
	})
}

func newHijrah(id, calendarType string, read func() ([]byte, error)) *Chronology {
	h := &hijrahSystem{
		id:  id,
		era: Era{calendar: id, value: 1, name: "AH"},
	}
	h.table = sync.OnceValues(func() (*hijrahTable, error) {
		data, err := read()
		if err != nil {
			return nil, fmt.Errorf("hijrah variant %v: %w: %w", id, ErrConfiguration, err)
		}
		return parseHijrahConfig(id, calendarType, data)
	})
	return &Chronology{id: id, calendarType: calendarType, sys: h}
}

// hijrahSystem is a tabular Hijrah calendar with a single era, AH, and
// month lengths taken from a configuration table. The table is loaded
// once, on first use, and a failure to load it makes the calendar
// unusable.
type hijrahSystem struct {
	baseResolver
	id    string
	era   Era
	table func() (*hijrahTable, error)
}

// loaded returns the table of a calendar that is known to have loaded
// successfully, ie. one for which a Date exists.
func (h *hijrahSystem) loaded() *hijrahTable {
	t, _ := h.table()
	return t
}

func (h *hijrahSystem) check() error {
	_, err := h.table()
	return err
}

func (h *hijrahSystem) version() string {
	if t, err := h.table(); err == nil {
		return t.version
	}
	return ""
}

func (h *hijrahSystem) eras() []Era { return []Era{h.era} }

func (h *hijrahSystem) eraOf(value int) (Era, error) {
	if value != h.era.value {
		return Era{}, fmt.Errorf("%v: invalid era: %v: %w", h.id, value, ErrInvalidDate)
	}
	return h.era, nil
}

func (h *hijrahSystem) prolepticYear(era Era, yearOfEra int) (int, error) {
	if era != h.era {
		return 0, fmt.Errorf("%v: era %v: %w", h.id, era, ErrTypeMismatch)
	}
	t, err := h.table()
	if err != nil {
		return 0, err
	}
	if !t.hasYear(int64(yearOfEra)) {
		return 0, fmt.Errorf("%v: year of era %v is not in the range %v - %v: %w", h.id, yearOfEra, t.minYear, t.maxYear, ErrInvalidDate)
	}
	return yearOfEra, nil
}

// isLeapYear returns true for years longer than 354 days.
func (h *hijrahSystem) isLeapYear(prolepticYear int64) bool {
	t, err := h.table()
	if err != nil || !t.hasYear(prolepticYear) {
		return false
	}
	return t.yearLength(int(prolepticYear)) > 354
}

func (h *hijrahSystem) fieldRange(f Field) (ValueRange, error) {
	t, err := h.table()
	if err != nil {
		return ValueRange{}, err
	}
	switch f {
	case FieldEra:
		return NewValueRange(1, 1), nil
	case FieldYear, FieldYearOfEra:
		return NewValueRange(int64(t.minYear), int64(t.maxYear)), nil
	case FieldDayOfMonth:
		return NewVariableRange(1, int64(t.minMonthLen), int64(t.maxMonthLen)), nil
	case FieldDayOfYear:
		return NewVariableRange(1, int64(t.minYearLen), int64(t.maxYearLen)), nil
	case FieldAlignedWeekOfMonth:
		return NewValueRange(1, 5), nil
	case FieldProlepticMonth:
		return NewValueRange(int64(t.minYear)*12, int64(t.maxYear)*12+11), nil
	case FieldEpochDay:
		return NewValueRange(t.minEpochDay(), t.maxEpochDay()), nil
	}
	if f < FieldEra || f > FieldEpochDay {
		return ValueRange{}, fmt.Errorf("%v: %v: %w", h.id, f, ErrUnsupportedField)
	}
	return f.baseRange(), nil
}

func (h *hijrahSystem) supports(Field) bool { return true }

func (h *hijrahSystem) validate(year, month, day int) error {
	t, err := h.table()
	if err != nil {
		return err
	}
	if !t.hasYear(int64(year)) {
		return fmt.Errorf("%v: year %v is not in the range %v - %v: %w", h.id, year, t.minYear, t.maxYear, ErrInvalidDate)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%v: invalid month %v: %w", h.id, month, ErrInvalidDate)
	}
	if n := t.monthLength(year, month); day < 1 || day > n {
		return fmt.Errorf("%v: invalid date %v-%02d-%02d, month %v has %v days: %w", h.id, year, month, day, month, n, ErrInvalidDate)
	}
	return nil
}

func (h *hijrahSystem) lengthOfMonth(year, month int) int {
	return h.loaded().monthLength(year, month)
}

func (h *hijrahSystem) lengthOfYear(year int) int {
	return h.loaded().yearLength(year)
}

func (h *hijrahSystem) epochDay(year, month, day int) int64 {
	return h.loaded().epochDay(year, month, day)
}

func (h *hijrahSystem) fromEpochDay(epochDay int64) (int, int, int, error) {
	t, err := h.table()
	if err != nil {
		return 0, 0, 0, err
	}
	y, m, d, ok := t.date(epochDay)
	if !ok {
		return 0, 0, 0, fmt.Errorf("%v: epoch day %v is not in the range %v - %v: %w", h.id, epochDay, t.minEpochDay(), t.maxEpochDay(), ErrInvalidDate)
	}
	return y, m, d, nil
}

func (h *hijrahSystem) dateEra(_, _, _ int) Era { return h.era }

func (h *hijrahSystem) yearOfEra(year, _, _ int) int { return year }

func (h *hijrahSystem) dayOfYear(year, month, day int) int {
	t := h.loaded()
	return int(t.epochDay(year, month, day)-t.epochDay(year, 1, 1)) + 1
}

func (h *hijrahSystem) eraYearLength(year, _, _ int) int {
	return h.lengthOfYear(year)
}

func (h *hijrahSystem) yearOfEraRange(_, _, _ int) ValueRange {
	t := h.loaded()
	return NewValueRange(int64(t.minYear), int64(t.maxYear))
}
