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

// Package talentq ties the candidate pool together: storage, the boolean
// query engine, search and import.
package talentq

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/talentq/core"
	"github.com/poiesic/talentq/ingestion"
	"github.com/poiesic/talentq/query"
	"github.com/poiesic/talentq/search"
	"github.com/poiesic/talentq/storage"
	"github.com/poiesic/talentq/storage/badger"
)

// ErrInvalidQuery is returned when a query fails validation.
var ErrInvalidQuery = query.ErrInvalidQuery

type Database struct {
	backend  *badger.Backend
	profiles storage.ProfileRepository
	queries  storage.SavedQueryRepository
	engine   *query.Engine
	logger   *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	inMemory      bool
	logger        *slog.Logger
	engineOptions []query.Option
}

// WithInMemory keeps the database in memory; the path is ignored.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithLogger sets the logger used by the database and the components it creates.
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		o.logger = logger
	}
}

// WithEngineOptions configures the query engine.
func WithEngineOptions(opts ...query.Option) DatabaseOption {
	return func(o *databaseOptions) {
		o.engineOptions = append(o.engineOptions, opts...)
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	engine, err := query.NewEngine(append([]query.Option{query.WithLogger(options.logger)}, options.engineOptions...)...)
	if err != nil {
		return nil, err
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory, badger.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	profiles, err := badger.NewProfileRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	queries, err := badger.NewSavedQueryRepository(backend)
	if err != nil {
		profiles.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:  backend,
		profiles: profiles,
		queries:  queries,
		engine:   engine,
		logger:   options.logger,
	}, nil
}

func (db *Database) Close() error {
	if err := db.queries.Close(); err != nil {
		db.logger.Error("error closing saved query repository", "err", err)
		return err
	}
	if err := db.profiles.Close(); err != nil {
		db.logger.Error("error closing profile repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ProfileRepository() storage.ProfileRepository {
	return db.profiles
}

func (db *Database) SavedQueryRepository() storage.SavedQueryRepository {
	return db.queries
}

func (db *Database) Engine() *query.Engine {
	return db.engine
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.profiles, db.engine, append([]search.Option{search.WithLogger(db.logger)}, opts...)...)
}

func (db *Database) NewImporter(opts ...ingestion.Option) (*ingestion.Importer, error) {
	return ingestion.NewImporter(db.profiles, append([]ingestion.Option{ingestion.WithLogger(db.logger)}, opts...)...)
}

// SaveQuery validates q and stores it under name.
func (db *Database) SaveQuery(ctx context.Context, name, q string) (*core.SavedQuery, error) {
	if err := db.engine.Validate(q).Err(); err != nil {
		return nil, err
	}
	saved := &core.SavedQuery{Name: name, Query: q}
	if err := db.queries.SaveQuery(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// Search runs q over the whole pool. It is a shorthand for a one-off
// Searcher.
func (db *Database) Search(ctx context.Context, q string, limit int) ([]*core.Match, error) {
	searcher, err := db.NewSearcher()
	if err != nil {
		return nil, err
	}
	defer searcher.Release()
	return searcher.Filter(ctx, q, limit)
}

// IsNotFound reports whether err means a profile or saved query does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
