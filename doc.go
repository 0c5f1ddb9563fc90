// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package chrono provides dates in multiple calendar systems with a single
// set of arithmetic, field resolution and period operations.
//
// A Chronology describes one calendar system: ISO (proleptic Gregorian),
// Japanese, Minguo, ThaiBuddhist and tabular Hijrah variants are built in.
// Dates are immutable values bound to a Chronology and every calendar
// converts to and from an epoch day count, where epoch day 0 is 1970-01-01
// in the ISO calendar. Converting between calendars always goes through
// the epoch day.
//
// Field resolution, ResolveDate, turns a sparse set of field values such
// as year, month-of-year and day-of-month into a Date under one of three
// policies: Strict, Smart and Lenient.
//
//	iso, _ := chrono.Lookup("ISO")
//	d, ok, err := iso.ResolveDate(chrono.FieldValues{
//		chrono.FieldYear:        2023,
//		chrono.FieldMonthOfYear: 2,
//		chrono.FieldDayOfMonth:  29,
//	}, chrono.Smart)
//	// d is 2023-02-28.
//
// Hijrah variants are configured by a properties file that lists the
// length of each month of each supported year. The Hijrah-civil variant is
// bundled, further variants may be registered with RegisterHijrahVariants.
package chrono
