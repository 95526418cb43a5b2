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

// Package storage provides the storage abstraction layer for talentq.
//
// This package defines repository interfaces that decouple the candidate pool
// from the backend that persists it. The badger subpackage is the only
// implementation.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - Repository: operations shared by every repository
//   - ProfileRepository: the candidate pool (user + candidate pairs)
//   - SavedQueryRepository: named queries kept for reuse
//
// Records are encoded with the mus serializers from the core package; see
// MarshalProfile and friends.
//
// # Usage
//
// Open a backend and create repositories on it:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	profiles, err := badger.NewProfileRepository(backend)
//
// Use in tests with in-memory storage:
//
//	profiles, queries, backend, err := badger.NewMemoryRepositories()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context. Long scans such as
// ForEachProfile stop when the context is done.
package storage
