// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"math"

	"cloudeng.io/errors"
)

var (
	// ErrInvalidDate is returned when a field, or combination of fields,
	// does not correspond to a date in the calendar.
	ErrInvalidDate = errors.New("invalid date")
	// ErrTypeMismatch is returned when an era or date belongs to a
	// different calendar than the one the operation requires.
	ErrTypeMismatch = errors.New("calendar mismatch")
	// ErrArithmeticOverflow is returned when date or period arithmetic
	// exceeds the range of the integer types used.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	// ErrConfiguration is returned by every operation on a calendar whose
	// configuration could not be loaded.
	ErrConfiguration = errors.New("calendar configuration error")
	// ErrUnsupportedField is returned for fields a calendar or date does
	// not define.
	ErrUnsupportedField = errors.New("unsupported field")
	// ErrUnsupportedUnit is returned for units a calendar or period does
	// not define.
	ErrUnsupportedUnit = errors.New("unsupported unit")
	// ErrUnknownCalendar is returned when a calendar lookup fails.
	ErrUnknownCalendar = errors.New("unknown calendar")
	// ErrInvalidPeriod is returned for malformed ISO-8601 periods.
	ErrInvalidPeriod = errors.New("invalid period")
)

func addExact(a, b int64) (int64, error) {
	r := a + b
	if (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0) {
		return 0, fmt.Errorf("%v + %v: %w", a, b, ErrArithmeticOverflow)
	}
	return r, nil
}

func subtractExact(a, b int64) (int64, error) {
	if b == math.MinInt64 {
		if a >= 0 {
			return 0, fmt.Errorf("%v - %v: %w", a, b, ErrArithmeticOverflow)
		}
		return a - b, nil
	}
	return addExact(a, -b)
}

func multiplyExact(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%v * %v: %w", a, b, ErrArithmeticOverflow)
	}
	return r, nil
}

func negateExact(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, fmt.Errorf("-(%v): %w", a, ErrArithmeticOverflow)
	}
	return -a, nil
}

// toIntExact narrows v to the 32 bit range used for years, months and days
// so that all intermediate products computed in int64 cannot overflow.
func toIntExact(v int64) (int, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%v does not fit in 32 bits: %w", v, ErrArithmeticOverflow)
	}
	return int(v), nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
