// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

func consumeN(dur string) (int64, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if (c >= '0' && c <= '9') || (i == 0 && c == '-') {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D':
			n, err := strconv.ParseInt(dur[:i], 10, 32)
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidPeriod)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or period designator: %s: %w", dur, ErrInvalidPeriod)
}

// ParsePeriod parses an ISO-8601 period of the form [-]PnYnMnWnD, where
// each amount may itself be negative, into a period in calendar c.
// Weeks are converted to days. Designators must appear in order and at
// most once.
func ParsePeriod(c *Chronology, text string) (Period, error) {
	nl := len(text)
	hasP, hasNP := (nl > 0 && text[0] == 'P'), (nl > 1 && text[0] == '-' && text[1] == 'P')
	if !hasP && !hasNP {
		return Period{}, fmt.Errorf("period must start with P or -P: %s: %w", text, ErrInvalidPeriod)
	}
	dur := text[1:]
	if hasNP {
		dur = dur[1:]
	}
	if len(dur) == 0 {
		return Period{}, fmt.Errorf("period has no amounts: %s: %w", text, ErrInvalidPeriod)
	}
	var amounts [4]int64 // Y, M, W, D
	last := -1
	for len(dur) > 0 {
		n, designator, idx, err := consumeN(dur)
		if err != nil {
			return Period{}, err
		}
		dur = dur[idx:]
		pos := strings.IndexByte("YMWD", designator)
		if pos <= last {
			return Period{}, fmt.Errorf("designator %c is out of order or repeated: %s: %w", designator, text, ErrInvalidPeriod)
		}
		last = pos
		amounts[pos] = n
	}
	weeks, err := multiplyExact(amounts[2], 7)
	if err != nil {
		return Period{}, err
	}
	days, err := addExact(weeks, amounts[3])
	if err != nil {
		return Period{}, err
	}
	p, err := newPeriod(c, amounts[0], amounts[1], days)
	if err != nil {
		return Period{}, err
	}
	if hasNP {
		return p.Negated()
	}
	return p, nil
}

// ISO8601 returns the period in ISO-8601 form, eg. P1Y2M3D. The zero
// period is P0D.
func (p Period) ISO8601() string {
	if p.IsZero() {
		return "P0D"
	}
	var out strings.Builder
	out.WriteByte('P')
	if p.years != 0 {
		fmt.Fprintf(&out, "%dY", p.years)
	}
	if p.months != 0 {
		fmt.Fprintf(&out, "%dM", p.months)
	}
	if p.days != 0 {
		fmt.Fprintf(&out, "%dD", p.days)
	}
	return out.String()
}
