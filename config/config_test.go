package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/talentq/query"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "./talentq.db", cfg.DatabasePath)
	assert.Equal(t, query.DefaultMaxQueryLength, cfg.MaxQueryLength)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(
		WithDatabasePath("/tmp/db"),
		WithMaxQueryLength(100),
		WithPoolSize(3),
		WithLogLevel("DEBUG"),
		WithTaxonomyFiles("s.yaml", "t.yaml"),
	)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/tmp/db", cfg.DatabasePath)
	assert.Equal(t, 100, cfg.MaxQueryLength)
	assert.Equal(t, 3, cfg.PoolSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "s.yaml", cfg.SkillsTaxonomyFile)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want string
	}{
		{"empty database path", WithDatabasePath(" "), "DatabasePath"},
		{"zero max query length", WithMaxQueryLength(0), "MaxQueryLength"},
		{"negative pool size", WithPoolSize(-1), "PoolSize"},
		{"unknown log level", WithLogLevel("loud"), "unknown log level"},
		{"one taxonomy file", WithTaxonomyFiles("s.yaml", ""), "set together"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfig(tt.opt).Validate()
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		cfg := NewConfig(WithLogLevel(name))
		require.NoError(t, cfg.Validate())
		level, err := cfg.SlogLevel()
		require.NoError(t, err)
		assert.Equal(t, want, level, name)
	}
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader("database_path: /data/pool\npool_size: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, "/data/pool", cfg.DatabasePath)
	assert.Equal(t, 8, cfg.PoolSize)
	assert.Equal(t, query.DefaultMaxQueryLength, cfg.MaxQueryLength)

	cfg, err = Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = Decode(strings.NewReader("databse_path: typo\n"))
	assert.Error(t, err)
}

func TestLoadResolvesTaxonomyPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talentq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"skills_taxonomy_file: skills.yaml\nseniority_taxonomy_file: /abs/seniority.yaml\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "skills.yaml"), cfg.SkillsTaxonomyFile)
	assert.Equal(t, "/abs/seniority.yaml", cfg.SeniorityTaxonomyFile)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEngineOptions(t *testing.T) {
	cfg := NewConfig(WithMaxQueryLength(64))
	opts, err := cfg.EngineOptions(slog.Default())
	require.NoError(t, err)

	engine, err := query.NewEngine(opts...)
	require.NoError(t, err)
	assert.Equal(t, 64, engine.MaxQueryLength())
	assert.Contains(t, engine.Expand("k8s"), "kubernetes")
}

func TestEngineOptionsWithTaxonomyFiles(t *testing.T) {
	dir := t.TempDir()
	skills := filepath.Join(dir, "skills.yaml")
	seniority := filepath.Join(dir, "seniority.yaml")
	require.NoError(t, os.WriteFile(skills, []byte("- canonical: elixir\n  synonyms: [phoenix]\n"), 0644))
	require.NoError(t, os.WriteFile(seniority, []byte("- canonical: senior\n  synonyms: [veteran]\n"), 0644))

	opts, err := NewConfig(WithTaxonomyFiles(skills, seniority)).EngineOptions(slog.Default())
	require.NoError(t, err)
	engine, err := query.NewEngine(opts...)
	require.NoError(t, err)

	assert.Equal(t, []string{"phoenix", "elixir"}, engine.Expand("phoenix"))
	assert.Equal(t, []string{"veteran", "senior"}, engine.Expand("veteran"))
	assert.Equal(t, []string{"k8s"}, engine.Expand("k8s"))

	_, err = NewConfig(WithTaxonomyFiles(filepath.Join(dir, "none.yaml"), seniority)).EngineOptions(slog.Default())
	assert.Error(t, err)
}
