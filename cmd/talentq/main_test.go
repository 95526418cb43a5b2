package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/talentq"
)

const profilesYAML = `profiles:
  - full_name: Ada Backend
    email: ada@example.com
    headline: Senior Backend Engineer
    location: Berlin
    experience_level: Senior
    skills: [Go, Kubernetes]
  - full_name: Bo Data
    email: bo@example.com
    headline: Junior Data Scientist
    location: Austin
    experience_level: Junior
    skills: [Python, Pandas]
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"talentq"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func importFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	db := filepath.Join(dir, "db")
	doc := writeFile(t, dir, "profiles.yaml", profilesYAML)

	out, err := run(t, "", "import", "--db", db, doc)
	require.NoError(t, err)
	assert.Contains(t, out, "imported: 2 (new: 2)")
	return db
}

func TestSetupLogLevel(t *testing.T) {
	_, err := run(t, "", "--log-level", "verbose", "validate", "java")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown log level "verbose"`)

	_, err = run(t, "", "-l", "DEBUG", "validate", "java")
	assert.NoError(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "talentq.yaml", "max_query_length: 10\nlog_level: warn\n")

	_, err := run(t, "", "--config", cfg, "validate", "java AND python")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum length of 10")

	_, err = run(t, "", "-c", filepath.Join(dir, "missing.yaml"), "validate", "java")
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "no_such_key: 1\n")
	_, err = run(t, "", "-c", bad, "validate", "java")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		query string
		err   string
	}{
		{query: "java AND (python OR go)"},
		{query: `"machine learning" -intern`},
		{query: "(java", err: "Unclosed parentheses"},
		{query: "java)", err: "Mismatched parentheses"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			out, err := run(t, "", "validate", tt.query)
			if tt.err == "" {
				require.NoError(t, err)
				assert.Equal(t, "valid\n", out)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, talentq.ErrInvalidQuery)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestSuggestCommand(t *testing.T) {
	out, err := run(t, "", "suggest", "jav")
	require.NoError(t, err)
	assert.Contains(t, out, "Skill: java\n")

	out, err = run(t, "", "suggest", "j")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestImportCommand(t *testing.T) {
	t.Run("requires input", func(t *testing.T) {
		_, err := run(t, "", "import", "--db", filepath.Join(t.TempDir(), "db"))
		require.Error(t, err)
	})

	t.Run("reads stdin", func(t *testing.T) {
		db := filepath.Join(t.TempDir(), "db")
		out, err := run(t, profilesYAML, "import", "--db", db, "-")
		require.NoError(t, err)
		assert.Contains(t, out, "imported: 2")

		out, err = run(t, "", "search", "--db", db, "python")
		require.NoError(t, err)
		assert.Contains(t, out, "1 match(es)")
	})

	t.Run("bad file does not stop the others", func(t *testing.T) {
		dir := t.TempDir()
		good := writeFile(t, dir, "good.yaml", profilesYAML)
		bad := writeFile(t, dir, "bad.yaml", "profiles: [\n")

		out, err := run(t, "", "import", "--db", filepath.Join(dir, "db"), "--stats", good, bad)
		require.Error(t, err)
		assert.Contains(t, out, "imported: 2")
		assert.Contains(t, out, "talentq_profiles_imported_total 2")
	})
}

func TestSearchCommand(t *testing.T) {
	db := importFixture(t)

	t.Run("boolean query", func(t *testing.T) {
		out, err := run(t, "", "search", "--db", db, "python AND junior")
		require.NoError(t, err)
		assert.Equal(t, "Bo Data <bo@example.com> - Junior Data Scientist (Austin)\n1 match(es)\n", out)
	})

	t.Run("negation", func(t *testing.T) {
		out, err := run(t, "", "search", "--db", db, "NOT python")
		require.NoError(t, err)
		assert.Contains(t, out, "Ada Backend")
		assert.NotContains(t, out, "Bo Data")
	})

	t.Run("limit", func(t *testing.T) {
		out, err := run(t, "", "search", "--db", db, "--limit", "1", "engineer OR scientist")
		require.NoError(t, err)
		assert.Contains(t, out, "1 match(es)")
	})

	t.Run("stats", func(t *testing.T) {
		out, err := run(t, "", "search", "--db", db, "--stats", "kubernetes")
		require.NoError(t, err)
		assert.Contains(t, out, `talentq_searches_total{mode="boolean"} 1`)
		assert.Contains(t, out, "talentq_candidates_evaluated_total 2")
	})

	t.Run("usage", func(t *testing.T) {
		_, err := run(t, "", "search", "--db", db)
		assert.Error(t, err)

		_, err = run(t, "", "search", "--db", db, "--saved", "x", "java")
		assert.Error(t, err)
	})
}

func TestSavedQueryCommands(t *testing.T) {
	db := importFixture(t)

	out, err := run(t, "", "save-query", "--db", db, "data", "python OR pandas")
	require.NoError(t, err)
	assert.Equal(t, "saved data\n", out)

	_, err = run(t, "", "save-query", "--db", db, "broken", "(python")
	require.ErrorIs(t, err, talentq.ErrInvalidQuery)

	out, err = run(t, "", "list-queries", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "data\tpython OR pandas\n", out)

	out, err = run(t, "", "search", "--db", db, "--saved", "data")
	require.NoError(t, err)
	assert.Contains(t, out, "Bo Data")
	assert.Contains(t, out, "1 match(es)")

	_, err = run(t, "", "search", "--db", db, "--saved", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `saved query "nope" not found`)

	out, err = run(t, "", "delete-query", "--db", db, "data")
	require.NoError(t, err)
	assert.Equal(t, "deleted data\n", out)

	_, err = run(t, "", "delete-query", "--db", db, "data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
