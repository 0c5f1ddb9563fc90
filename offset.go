// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

const (
	minguoID   = "Minguo"
	minguoType = "roc"
	// Minguo year 1 is ISO year 1912.
	minguoOffset = -1911

	thaiBuddhistID   = "ThaiBuddhist"
	thaiBuddhistType = "buddhist"
	// Buddhist year 2566 is ISO year 2023.
	thaiBuddhistOffset = 543
)

// newMinguo returns the calendar used in the Republic of China, which
// numbers years from 1912.
func newMinguo() *Chronology {
	return &Chronology{
		id:           minguoID,
		calendarType: minguoType,
		sys:          ptr(newGregorianSystem(minguoID, minguoOffset, "BEFORE_ROC", "ROC")),
	}
}

// newThaiBuddhist returns the Thai solar calendar, which numbers years
// from 543 BCE.
func newThaiBuddhist() *Chronology {
	return &Chronology{
		id:           thaiBuddhistID,
		calendarType: thaiBuddhistType,
		sys:          ptr(newGregorianSystem(thaiBuddhistID, thaiBuddhistOffset, "BEFORE_BE", "BE")),
	}
}

func ptr[T any](v T) *T {
	return &v
}
