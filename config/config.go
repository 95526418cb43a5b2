// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds talentq's runtime settings.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/talentq/query"
)

// Config holds the settings shared by the CLI commands.
type Config struct {
	// DatabasePath is the directory of the badger database.
	// Default: "./talentq.db"
	DatabasePath string `yaml:"database_path"`

	// MaxQueryLength is the longest query, in bytes, that is parsed.
	// Default: 4096
	MaxQueryLength int `yaml:"max_query_length"`

	// PoolSize is the number of workers used by searches and imports.
	// Zero picks a size from the number of CPUs.
	PoolSize int `yaml:"pool_size"`

	// LogLevel is one of debug, info, warn or error.
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// SkillsTaxonomyFile and SeniorityTaxonomyFile replace the built-in
	// synonym tables when set. Relative paths are resolved against the
	// directory of the config file they were loaded from.
	SkillsTaxonomyFile    string `yaml:"skills_taxonomy_file"`
	SeniorityTaxonomyFile string `yaml:"seniority_taxonomy_file"`
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// WithDatabasePath sets the database directory.
func WithDatabasePath(path string) Option {
	return func(c *Config) {
		c.DatabasePath = path
	}
}

// WithMaxQueryLength sets the query length limit.
func WithMaxQueryLength(n int) Option {
	return func(c *Config) {
		c.MaxQueryLength = n
	}
}

// WithPoolSize sets the worker pool size.
func WithPoolSize(n int) Option {
	return func(c *Config) {
		c.PoolSize = n
	}
}

// WithLogLevel sets the log level name.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithTaxonomyFiles sets the taxonomy files. Empty strings keep the
// built-in tables.
func WithTaxonomyFiles(skills, seniority string) Option {
	return func(c *Config) {
		c.SkillsTaxonomyFile = skills
		c.SeniorityTaxonomyFile = seniority
	}
}

// DefaultConfig returns a Config with the default values.
func DefaultConfig() *Config {
	return &Config{
		DatabasePath:   "./talentq.db",
		MaxQueryLength: query.DefaultMaxQueryLength,
		LogLevel:       "info",
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithDatabasePath("/var/lib/talentq"),
//	    WithLogLevel("debug"),
//	)
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	cfg.Apply(opts...)
	return cfg
}

// Apply applies opts to c.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Load reads a YAML config file on top of the defaults. Unknown keys are an
// error.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// Decode reads a YAML config from r on top of the defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) resolvePaths(base string) {
	for _, p := range []*string{&c.SkillsTaxonomyFile, &c.SeniorityTaxonomyFile} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}

// Normalize ensures the configuration is in a canonical form.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogLevel == "warning" {
		c.LogLevel = "warn"
	}
	c.DatabasePath = strings.TrimSpace(c.DatabasePath)
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.DatabasePath == "" {
		return errors.New("config: DatabasePath is required")
	}
	if c.MaxQueryLength < 1 {
		return errors.New("config: MaxQueryLength must be positive")
	}
	if c.PoolSize < 0 {
		return errors.New("config: PoolSize must not be negative")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if (c.SkillsTaxonomyFile == "") != (c.SeniorityTaxonomyFile == "") {
		return errors.New("config: SkillsTaxonomyFile and SeniorityTaxonomyFile must be set together")
	}
	return nil
}

// SlogLevel returns the slog level named by LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("config: unknown log level %q", c.LogLevel)
}

// EngineOptions returns the query engine options the configuration asks
// for, loading taxonomy files if any are set.
func (c *Config) EngineOptions(logger *slog.Logger) ([]query.Option, error) {
	opts := []query.Option{
		query.WithLogger(logger),
		query.WithMaxQueryLength(c.MaxQueryLength),
	}
	if c.SkillsTaxonomyFile == "" {
		return opts, nil
	}

	skills, err := query.LoadTaxonomyFile("skills", c.SkillsTaxonomyFile)
	if err != nil {
		return nil, err
	}
	seniority, err := query.LoadTaxonomyFile("seniority", c.SeniorityTaxonomyFile)
	if err != nil {
		return nil, err
	}
	return append(opts, query.WithTaxonomies(skills, seniority)), nil
}
