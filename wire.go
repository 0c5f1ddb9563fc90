// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import "fmt"

// WireDate is the calendar neutral representation of a Date used when
// dates cross an API or storage boundary.
type WireDate struct {
	Calendar string `yaml:"calendar" json:"calendar"`
	Year     int    `yaml:"year" json:"year"`
	Month    int    `yaml:"month" json:"month"`
	Day      int    `yaml:"day" json:"day"`
}

func (w WireDate) String() string {
	return fmt.Sprintf("%v %v-%02d-%02d", w.Calendar, w.Year, w.Month, w.Day)
}

// Wire returns the wire representation of d.
func (d Date) Wire() WireDate {
	return WireDate{Calendar: d.chrono.ID(), Year: d.year, Month: d.month, Day: d.day}
}

// FromWire returns the date represented by w, looking up its calendar in
// the default registry.
func FromWire(w WireDate) (Date, error) {
	return defaultRegistry.FromWire(w)
}

// FromWire returns the date represented by w, looking up its calendar in
// r.
func (r *Registry) FromWire(w WireDate) (Date, error) {
	c, err := r.Lookup(w.Calendar)
	if err != nil {
		return Date{}, err
	}
	return c.Date(w.Year, w.Month, w.Day)
}
