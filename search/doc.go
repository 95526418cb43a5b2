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

// Package search runs boolean queries over the stored candidate pool.
//
// A Searcher compiles a query once with a query.Engine, streams every stored
// profile from a storage.ProfileRepository, and evaluates the profiles on a
// worker pool against their searchable text. Matches are returned in storage
// order and carry no score: a profile either satisfies the query or it does
// not.
//
// A SearchMonitor observes each search. The metrics package provides one
// backed by Prometheus collectors.
package search
