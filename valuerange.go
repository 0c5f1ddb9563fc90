// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"math"
)

// ValueRange is the range of valid values for a field. For fields whose
// range varies, for example day-of-month, the range records the
// largest minimum and smallest maximum in addition to the absolute
// minimum and maximum, ie. 1 - 28/31 for ISO day-of-month.
type ValueRange struct {
	min, largestMin, smallestMax, max int64
}

// NewValueRange returns a fixed range.
func NewValueRange(min, max int64) ValueRange {
	return ValueRange{min: min, largestMin: min, smallestMax: max, max: max}
}

// NewVariableRange returns a range with a fixed minimum and a variable
// maximum.
func NewVariableRange(min, smallestMax, max int64) ValueRange {
	return ValueRange{min: min, largestMin: min, smallestMax: smallestMax, max: max}
}

// NewFullRange returns a range where both the minimum and maximum vary.
func NewFullRange(min, largestMin, smallestMax, max int64) ValueRange {
	return ValueRange{min: min, largestMin: largestMin, smallestMax: smallestMax, max: max}
}

func (r ValueRange) Minimum() int64         { return r.min }
func (r ValueRange) LargestMinimum() int64  { return r.largestMin }
func (r ValueRange) SmallestMaximum() int64 { return r.smallestMax }
func (r ValueRange) Maximum() int64         { return r.max }

// IsFixed returns true if the minimum and maximum never vary.
func (r ValueRange) IsFixed() bool {
	return r.min == r.largestMin && r.smallestMax == r.max
}

// IsIntValue returns true if all values in the range fit in 32 bits.
func (r ValueRange) IsIntValue() bool {
	return r.min >= math.MinInt32 && r.max <= math.MaxInt32
}

// IsValidValue returns true if v is within the absolute range.
func (r ValueRange) IsValidValue(v int64) bool {
	return v >= r.min && v <= r.max
}

// CheckValid returns ErrInvalidDate if v is outside of the range.
func (r ValueRange) CheckValid(v int64, f Field) error {
	if !r.IsValidValue(v) {
		return fmt.Errorf("invalid value for %v (valid values %v): %v: %w", f, r, v, ErrInvalidDate)
	}
	return nil
}

// CheckValidInt is like CheckValid but also requires that the range fit in
// 32 bits and returns v as an int.
func (r ValueRange) CheckValidInt(v int64, f Field) (int, error) {
	if !r.IsIntValue() {
		return 0, fmt.Errorf("%v has a range %v that exceeds 32 bits: %w", f, r, ErrInvalidDate)
	}
	if err := r.CheckValid(v, f); err != nil {
		return 0, err
	}
	return int(v), nil
}

func (r ValueRange) String() string {
	s := fmt.Sprint(r.min)
	if r.min != r.largestMin {
		s += fmt.Sprintf("/%d", r.largestMin)
	}
	s += fmt.Sprintf(" - %d", r.smallestMax)
	if r.smallestMax != r.max {
		s += fmt.Sprintf("/%d", r.max)
	}
	return s
}
