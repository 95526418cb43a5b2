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

package query

import "errors"

var (
	// ErrInvalidQuery is returned when a query fails validation.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidTaxonomy is returned when taxonomy data is malformed.
	ErrInvalidTaxonomy = errors.New("invalid taxonomy")

	// ErrTaxonomyRequired is returned when an engine is given a nil taxonomy.
	ErrTaxonomyRequired = errors.New("taxonomy required")

	// ErrInvalidMaxQueryLength is returned for a non-positive query length limit.
	ErrInvalidMaxQueryLength = errors.New("max query length must be positive")
)

// Validation messages reported to users.
const (
	msgMismatchedParentheses = "Mismatched parentheses"
	msgUnclosedParentheses   = "Unclosed parentheses"
	msgQueryTooLong          = "Query exceeds maximum length of %d characters"
)
