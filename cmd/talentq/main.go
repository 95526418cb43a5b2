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

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/talentq"
	"github.com/poiesic/talentq/config"
	"github.com/poiesic/talentq/query"
	"github.com/poiesic/talentq/search"
)

const configKey = "config"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "db",
		Aliases: []string{"d"},
		Usage:   "Path to BadgerDB database directory (defaults to the configured database_path)",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "talentq",
		Usage: "Boolean search over a candidate pool",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Import profile documents (YAML or JSON); - reads stdin",
				ArgsUsage: "FILES...",
				Action:    importCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:  "watch",
						Usage: "Keep importing documents written to this directory until interrupted",
					},
					&cli.BoolFlag{
						Name:  "stats",
						Usage: "Print import metrics when done",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "List the profiles matching a boolean query",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of matches to print (0 for all)",
						Value: 50,
					},
					&cli.StringFlag{
						Name:  "saved",
						Usage: "Run the saved query with this name instead of QUERY",
					},
					&cli.BoolFlag{
						Name:  "stats",
						Usage: "Print search metrics when done",
					},
				},
			},
			{
				Name:      "validate",
				Usage:     "Check a query for syntax errors",
				ArgsUsage: "QUERY",
				Action:    validateCommand,
			},
			{
				Name:      "suggest",
				Usage:     "Suggest skills and titles for a partial term",
				ArgsUsage: "PARTIAL",
				Action:    suggestCommand,
			},
			{
				Name:      "save-query",
				Usage:     "Save a query under a name",
				ArgsUsage: "NAME QUERY",
				Action:    saveQueryCommand,
				Flags:     []cli.Flag{dbFlag()},
			},
			{
				Name:   "list-queries",
				Usage:  "List saved queries",
				Action: listQueriesCommand,
				Flags:  []cli.Flag{dbFlag()},
			},
			{
				Name:      "delete-query",
				Usage:     "Delete a saved query",
				ArgsUsage: "NAME",
				Action:    deleteQueryCommand,
				Flags:     []cli.Flag{dbFlag()},
			},
		},
	}
}

// setup loads the config file, lets --log-level override it and installs
// the default logger.
func setup(c *cli.Context) error {
	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.IsSet("log-level") || c.String("config") == "" {
		cfg.Apply(config.WithLogLevel(c.String("log-level")))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[configKey] = cfg
	setupLogger(cfg)
	return nil
}

// setupLogger installs the default logger. cfg must have passed Validate.
func setupLogger(cfg *config.Config) {
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func configFrom(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

func newEngine(c *cli.Context) (*query.Engine, error) {
	opts, err := configFrom(c).EngineOptions(slog.Default())
	if err != nil {
		return nil, err
	}
	return query.NewEngine(opts...)
}

func openDatabase(c *cli.Context) (*talentq.Database, error) {
	cfg := configFrom(c)
	path := c.String("db")
	if path == "" {
		path = cfg.DatabasePath
	}

	opts, err := cfg.EngineOptions(slog.Default())
	if err != nil {
		return nil, err
	}
	db, err := talentq.NewDatabase(path,
		talentq.WithLogger(slog.Default()),
		talentq.WithEngineOptions(opts...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func searchOptions(c *cli.Context) []search.Option {
	if size := configFrom(c).PoolSize; size > 0 {
		return []search.Option{search.WithPoolSize(size)}
	}
	return nil
}
