// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

// Era is a named, numbered span of years in a calendar. Eras are
// comparable values; the era in use at a calendar's epoch has value 1.
type Era struct {
	calendar string
	value    int
	name     string
}

// Calendar returns the ID of the calendar that defines the era.
func (e Era) Calendar() string { return e.calendar }

// Value returns the numeric value of the era.
func (e Era) Value() int { return e.value }

// Name returns the name of the era.
func (e Era) Name() string { return e.name }

// IsZero returns true for the zero value, which is not an era of any
// calendar.
func (e Era) IsZero() bool { return e == Era{} }

func (e Era) String() string { return e.name }
