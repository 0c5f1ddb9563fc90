// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/chrono"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// Config represents the YAML configuration file.
type Config struct {
	Logging  *cmdutil.LoggingConfig `yaml:"logging"`
	Variants []string               `yaml:"variants"`
	Calendar string                 `yaml:"calendar"`
	Style    string                 `yaml:"style"`
}

// env is the state shared by all commands once the configuration
// and command line flags have been processed.
type env struct {
	cfg      Config
	registry *chrono.Registry
	out      io.Writer
	logger   *cmdutil.Logger
}

func loadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if len(filename) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFile(ctx, filename, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w", filename, err)
	}
	return cfg, nil
}

// newEnv loads the configuration file, if any, creates the logger and
// registers any configured Hijrah variants. The logging configuration
// in the config file takes precedence over the logging flags.
func newEnv(ctx context.Context, gf *GlobalFlags, out io.Writer) (context.Context, *env, error) {
	cfg, err := loadConfig(ctx, gf.Config)
	if err != nil {
		return ctx, nil, err
	}
	lc := gf.LoggingConfig()
	if cfg.Logging != nil {
		lc = *cfg.Logging
	}
	logger, err := lc.NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	e := &env{
		cfg:      cfg,
		registry: chrono.NewRegistry(),
		out:      out,
		logger:   logger,
	}
	if err := e.registry.RegisterHijrahVariants(ctx, cfg.Variants...); err != nil {
		logger.Close()
		return ctx, nil, err
	}
	ctxlog.Logger(ctx).Debug("configuration loaded", "config", gf.Config, "variants", len(cfg.Variants))
	return ctx, e, nil
}

func (e *env) close() error {
	return e.logger.Close()
}

// calendar returns the calendar named on the command line, the configured
// default, or ISO.
func (e *env) calendar(name string) (*chrono.Chronology, error) {
	if len(name) == 0 {
		name = e.cfg.Calendar
	}
	if len(name) == 0 {
		return chrono.ISO(), nil
	}
	return e.registry.Lookup(name)
}

func (e *env) style(name string) (chrono.ResolverStyle, error) {
	if len(name) == 0 {
		name = e.cfg.Style
	}
	return chrono.ParseResolverStyle(name)
}

func (e *env) write(v any) error {
	enc := yaml.NewEncoder(e.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// withEnv wraps a command implementation so that it is called with
// an initialized env.
func withEnv[T any](fn func(context.Context, *env, *T, []string) error) func(context.Context, any, []string) error {
	return func(ctx context.Context, values any, args []string) error {
		ctx, e, err := newEnv(ctx, &globalFlags, os.Stdout)
		if err != nil {
			return err
		}
		defer e.close()
		return fn(ctx, e, values.(*T), args)
	}
}
