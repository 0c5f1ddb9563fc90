// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/chrono"
	"cloudeng.io/logging/ctxlog"
)

var (
	calendars = withEnv(runCalendars)
	resolve   = withEnv(runResolve)
	convert   = withEnv(runConvert)
	between   = withEnv(runBetween)
	add       = withEnv(runAdd)
)

type calendarInfo struct {
	ID      string            `yaml:"id"`
	Type    string            `yaml:"type"`
	Version string            `yaml:"version,omitempty"`
	Status  string            `yaml:"status"`
	Eras    []string          `yaml:"eras,omitempty"`
	Ranges  map[string]string `yaml:"ranges,omitempty"`
}

type dateInfo struct {
	chrono.WireDate `yaml:",inline"`
	Text            string `yaml:"text"`
	Era             string `yaml:"era"`
	YearOfEra       int    `yaml:"year-of-era"`
	DayOfYear       int    `yaml:"day-of-year"`
	DayOfWeek       int    `yaml:"day-of-week"`
	EpochDay        int64  `yaml:"epoch-day"`
	ISO             string `yaml:"iso"`
}

func newDateInfo(d chrono.Date) dateInfo {
	di := dateInfo{
		WireDate:  d.Wire(),
		Text:      d.String(),
		Era:       d.Era().Name(),
		YearOfEra: d.YearOfEra(),
		DayOfYear: d.DayOfYear(),
		DayOfWeek: d.DayOfWeek(),
		EpochDay:  d.EpochDay(),
	}
	if iso, err := chrono.ISO().DateFrom(d); err == nil {
		di.ISO = iso.String()
	}
	return di
}

// parseDate parses yyyy-mm-dd where yyyy is a proleptic year in c,
// optionally preceded by a - for negative years.
func parseDate(c *chrono.Chronology, val string) (chrono.Date, error) {
	text := val
	sign := 1
	if strings.HasPrefix(text, "-") {
		sign = -1
		text = text[1:]
	}
	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		return chrono.Date{}, fmt.Errorf("%q: expected yyyy-mm-dd", val)
	}
	var ymd [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || len(p) == 0 || p[0] == '+' || p[0] == '-' {
			return chrono.Date{}, fmt.Errorf("%q: expected yyyy-mm-dd", val)
		}
		ymd[i] = n
	}
	return c.Date(sign*ymd[0], ymd[1], ymd[2])
}

func runCalendars(ctx context.Context, e *env, _ *calendarsFlags, _ []string) error {
	if err := e.registry.Preload(ctx); err != nil {
		ctxlog.Logger(ctx).Warn("not all calendars could be loaded", "error", err)
	}
	var infos []calendarInfo
	for _, c := range e.registry.Chronologies() {
		info := calendarInfo{
			ID:      c.ID(),
			Type:    c.CalendarType(),
			Version: c.Version(),
			Status:  "ready",
		}
		if err := c.Check(); err != nil {
			info.Status = err.Error()
			infos = append(infos, info)
			continue
		}
		for _, era := range c.Eras() {
			info.Eras = append(info.Eras, fmt.Sprintf("%v (%v)", era.Name(), era.Value()))
		}
		info.Ranges = map[string]string{}
		for _, f := range chrono.Fields() {
			if r, err := c.Range(f); err == nil {
				info.Ranges[f.String()] = r.String()
			}
		}
		infos = append(infos, info)
	}
	return e.write(infos)
}

type resolveOutput struct {
	Date      dateInfo         `yaml:"date"`
	Style     string           `yaml:"style"`
	Remaining map[string]int64 `yaml:"remaining,omitempty"`
}

func runResolve(ctx context.Context, e *env, fl *resolveFlags, args []string) error {
	c, err := e.calendar(fl.Calendar)
	if err != nil {
		return err
	}
	style, err := e.style(fl.Style)
	if err != nil {
		return err
	}
	fv, err := chrono.ParseFieldValues(args...)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("resolving", "calendar", c.ID(), "style", style, "fields", fv.String())
	d, ok, err := c.ResolveDate(fv, style)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%v: insufficient fields to determine a date: %v", c.ID(), fv)
	}
	out := resolveOutput{Date: newDateInfo(d), Style: style.String()}
	if len(fv) > 0 {
		out.Remaining = map[string]int64{}
		for f, v := range fv {
			out.Remaining[f.String()] = v
		}
	}
	return e.write(out)
}

type conversion struct {
	Calendar string    `yaml:"calendar"`
	Date     *dateInfo `yaml:"date,omitempty"`
	Error    string    `yaml:"error,omitempty"`
}

type convertOutput struct {
	From dateInfo     `yaml:"from"`
	To   []conversion `yaml:"to"`
}

func (e *env) targets(list string) ([]*chrono.Chronology, error) {
	if len(list) == 0 {
		return e.registry.Chronologies(), nil
	}
	var cals []*chrono.Chronology
	for _, name := range strings.Split(list, ",") {
		c, err := e.registry.Lookup(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		cals = append(cals, c)
	}
	return cals, nil
}

func runConvert(ctx context.Context, e *env, fl *convertFlags, args []string) error {
	c, err := e.calendar(fl.Calendar)
	if err != nil {
		return err
	}
	d, err := parseDate(c, args[0])
	if err != nil {
		return err
	}
	targets, err := e.targets(fl.To)
	if err != nil {
		return err
	}
	out := convertOutput{From: newDateInfo(d)}
	for _, t := range targets {
		cv := conversion{Calendar: t.ID()}
		td, err := t.DateFrom(d)
		if err != nil {
			ctxlog.Logger(ctx).Info("conversion failed", "from", d, "to", t.ID(), "error", err)
			cv.Error = err.Error()
		} else {
			di := newDateInfo(td)
			cv.Date = &di
		}
		out.To = append(out.To, cv)
	}
	return e.write(out)
}

type betweenOutput struct {
	From    dateInfo `yaml:"from"`
	To      dateInfo `yaml:"to"`
	Period  string   `yaml:"period"`
	Years   int      `yaml:"years"`
	Months  int      `yaml:"months"`
	Days    int      `yaml:"days"`
	DayDiff int64    `yaml:"total-days"`
}

func runBetween(_ context.Context, e *env, fl *betweenFlags, args []string) error {
	c, err := e.calendar(fl.Calendar)
	if err != nil {
		return err
	}
	from, err := parseDate(c, args[0])
	if err != nil {
		return err
	}
	to, err := parseDate(c, args[1])
	if err != nil {
		return err
	}
	p, err := chrono.Between(from, to)
	if err != nil {
		return err
	}
	days, err := from.Until(to, chrono.Days)
	if err != nil {
		return err
	}
	return e.write(betweenOutput{
		From:    newDateInfo(from),
		To:      newDateInfo(to),
		Period:  p.ISO8601(),
		Years:   p.Years(),
		Months:  p.Months(),
		Days:    p.Days(),
		DayDiff: days,
	})
}

type addOutput struct {
	From   dateInfo `yaml:"from"`
	Period string   `yaml:"period"`
	Result dateInfo `yaml:"result"`
}

func runAdd(_ context.Context, e *env, fl *addFlags, args []string) error {
	c, err := e.calendar(fl.Calendar)
	if err != nil {
		return err
	}
	d, err := parseDate(c, args[0])
	if err != nil {
		return err
	}
	p, err := chrono.ParsePeriod(c, args[1])
	if err != nil {
		return err
	}
	var r chrono.Date
	if fl.Subtract {
		r, err = p.SubtractFrom(d)
	} else {
		r, err = p.AddTo(d)
	}
	if err != nil {
		return err
	}
	return e.write(addOutput{
		From:   newDateInfo(d),
		Period: p.ISO8601(),
		Result: newDateInfo(r),
	})
}
