// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

// RegistryState is the initialization state of a Registry.
type RegistryState int32

const (
	Uninitialized RegistryState = iota
	Initializing
	Ready
)

func (s RegistryState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

// builtins returns the singleton built in calendars.
var builtins = sync.OnceValue(func() []*Chronology {
	return []*Chronology{
		newISO(),
		newBundledHijrah(hijrahCivilID, hijrahCivilType),
		newJapanese(),
		newMinguo(),
		newThaiBuddhist(),
	}
})

// ISO returns the ISO calendar.
func ISO() *Chronology {
	return builtins()[0]
}

// registryTable is immutable once published.
type registryTable struct {
	byID   map[string]*Chronology
	byType map[string]*Chronology
	all    []*Chronology
}

func (t *registryTable) clone() *registryTable {
	n := &registryTable{
		byID:   make(map[string]*Chronology, len(t.byID)+1),
		byType: make(map[string]*Chronology, len(t.byType)+1),
		all:    slices.Clone(t.all),
	}
	for k, v := range t.byID {
		n.byID[k] = v
	}
	for k, v := range t.byType {
		n.byType[k] = v
	}
	return n
}

// add returns false if a calendar with the same ID is already present.
func (t *registryTable) add(c *Chronology) bool {
	if _, ok := t.byID[c.id]; ok {
		return false
	}
	t.byID[c.id] = c
	if len(c.calendarType) > 0 {
		if _, ok := t.byType[c.calendarType]; !ok {
			t.byType[c.calendarType] = c
		}
	}
	t.all = append(t.all, c)
	slices.SortFunc(t.all, func(a, b *Chronology) int {
		return strings.Compare(a.id, b.id)
	})
	return true
}

// Registry maps calendar IDs and types to calendars. It is initialized
// with the built in calendars on first use and is safe for concurrent
// use. Lookups never block.
type Registry struct {
	state atomic.Int32
	mu    sync.Mutex
	table atomic.Pointer[registryTable]
}

// NewRegistry returns a new, uninitialized, registry.
func NewRegistry() *Registry {
	return &Registry{}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process wide registry used by the package
// level functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func (r *Registry) State() RegistryState {
	return RegistryState(r.state.Load())
}

// init registers the built in calendars. It may be called any number of
// times, from any number of goroutines; only the first call has any
// effect and all calls return once the registry is ready.
func (r *Registry) init() *registryTable {
	if r.State() == Ready {
		return r.table.Load()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.State() == Ready {
		return r.table.Load()
	}
	r.state.Store(int32(Initializing))
	t := &registryTable{byID: map[string]*Chronology{}, byType: map[string]*Chronology{}}
	for _, c := range builtins() {
		t.add(c)
	}
	r.table.Store(t)
	r.state.Store(int32(Ready))
	return t
}

// Lookup returns the calendar whose ID or calendar type is idOrType.
func (r *Registry) Lookup(idOrType string) (*Chronology, error) {
	t := r.init()
	if c, ok := t.byID[idOrType]; ok {
		return c, nil
	}
	if c, ok := t.byType[idOrType]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%q: %w", idOrType, ErrUnknownCalendar)
}

// Chronologies returns all registered calendars ordered by ID.
func (r *Registry) Chronologies() []*Chronology {
	return slices.Clone(r.init().all)
}

// Register adds c to the registry. Registering a calendar whose ID is
// already registered has no effect other than a logged warning and
// returns false.
func (r *Registry) Register(ctx context.Context, c *Chronology) bool {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.table.Load().clone()
	if !t.add(c) {
		ctxlog.Logger(ctx).Warn("calendar already registered", "id", c.ID(), "type", c.CalendarType())
		return false
	}
	r.table.Store(t)
	return true
}

// RegisterHijrahVariants creates and registers a Hijrah calendar for each
// of the named configuration files, see NewHijrahVariant. The files are
// not read until each calendar is first used, or Preload is called.
func (r *Registry) RegisterHijrahVariants(ctx context.Context, filenames ...string) error {
	errs := &errors.M{}
	for _, filename := range filenames {
		c, err := NewHijrahVariant(ctx, filename)
		if err != nil {
			errs.Append(err)
			continue
		}
		r.Register(ctx, c)
	}
	return errs.Err()
}

// Preload loads the configuration of every registered calendar
// concurrently, returning the errors for those that fail to load. Calendars
// that fail to load remain registered but return ErrConfiguration from
// every operation.
func (r *Registry) Preload(ctx context.Context) error {
	g := &errgroup.T{}
	for _, c := range r.Chronologies() {
		g.Go(func() error {
			if err := c.Check(); err != nil {
				ctxlog.Logger(ctx).Error("calendar failed to load", "id", c.ID(), "error", err)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// Lookup calls DefaultRegistry().Lookup.
func Lookup(idOrType string) (*Chronology, error) {
	return defaultRegistry.Lookup(idOrType)
}

// Chronologies calls DefaultRegistry().Chronologies.
func Chronologies() []*Chronology {
	return defaultRegistry.Chronologies()
}

// Register calls DefaultRegistry().Register.
func Register(ctx context.Context, c *Chronology) bool {
	return defaultRegistry.Register(ctx, c)
}

// RegisterHijrahVariants calls DefaultRegistry().RegisterHijrahVariants.
func RegisterHijrahVariants(ctx context.Context, filenames ...string) error {
	return defaultRegistry.RegisterHijrahVariants(ctx, filenames...)
}

// Preload calls DefaultRegistry().Preload.
func Preload(ctx context.Context) error {
	return defaultRegistry.Preload(ctx)
}
