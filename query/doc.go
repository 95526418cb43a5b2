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

// Package query implements the boolean search language recruiters use to
// filter a candidate pool.
//
// A query is processed in stages:
//   - Tokenize splits the raw string into words, quoted phrases and parentheses
//   - Parse builds an AST with a recursive-descent parser, expanding each
//     term through the skill and seniority taxonomies
//   - Evaluate walks the AST against a candidate's searchable text
//
// AND, OR and implicit AND share one precedence level and fold left to
// right, so "a OR b AND c" means "(a OR b) AND c". Terms and phrases match by
// substring, not by word boundary.
//
// Validate and Suggest are independent entry points: Validate reports syntax
// problems the permissive parser would otherwise paper over, and Suggest
// offers taxonomy completions for the last word of a partial query.
//
// Everything in this package is a pure function of its inputs and the
// immutable taxonomy tables. Engine values and taxonomies are safe for
// concurrent use.
package query
