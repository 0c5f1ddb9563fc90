// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"golang.org/x/text/language"
)

// LookupLocale returns the calendar named by the "ca" unicode extension of
// tag, eg. "ja-JP-u-ca-japanese". The ISO calendar is returned if there is
// no extension or it names the ISO or gregorian calendars.
func (r *Registry) LookupLocale(tag language.Tag) (*Chronology, error) {
	switch ct := tag.TypeForKey("ca"); ct {
	case "", "iso", isoType, "gregory", "gregorian":
		return r.Lookup(isoID)
	default:
		return r.Lookup(ct)
	}
}

// LookupLocale calls DefaultRegistry().LookupLocale.
func LookupLocale(tag language.Tag) (*Chronology, error) {
	return defaultRegistry.LookupLocale(tag)
}
