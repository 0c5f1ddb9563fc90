// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"strings"
)

// Unit is a calendar based unit of time.
type Unit int

const (
	Days Unit = iota + 1
	Weeks
	Months
	Years
	Decades
	Centuries
	Millennia
	Eras
)

var unitNames = []string{"days", "weeks", "months", "years", "decades", "centuries", "millennia", "eras"}

func (u Unit) String() string {
	if u < Days || u > Eras {
		return fmt.Sprintf("unit(%d)", int(u))
	}
	return unitNames[u-1]
}

// ParseUnit parses a unit name, case insensitively.
func ParseUnit(name string) (Unit, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, un := range unitNames {
		if un == n || strings.TrimSuffix(un, "s") == n {
			return Unit(i + 1), nil
		}
	}
	if n == "millennium" {
		return Millennia, nil
	}
	if n == "century" {
		return Centuries, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedUnit)
}

// yearMultiple returns the number of years in u for the year based units.
func (u Unit) yearMultiple() (int64, bool) {
	switch u {
	case Years:
		return 1, true
	case Decades:
		return 10, true
	case Centuries:
		return 100, true
	case Millennia:
		return 1000, true
	}
	return 0, false
}
