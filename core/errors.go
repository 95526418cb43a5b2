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

package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidUser indicates a User failed validation.
	ErrInvalidUser = errors.New("invalid user")

	// ErrInvalidCandidate indicates a Candidate failed validation.
	ErrInvalidCandidate = errors.New("invalid candidate")

	// ErrInvalidProfile indicates a Profile failed validation.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrInvalidSavedQuery indicates a SavedQuery failed validation.
	ErrInvalidSavedQuery = errors.New("invalid saved query")

	// ErrEmptyEmail indicates the Email field is empty.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrMalformedEmail indicates the Email field has no '@'.
	ErrMalformedEmail = errors.New("email is malformed")

	// ErrEmptyFullName indicates the FullName field is empty.
	ErrEmptyFullName = errors.New("full name cannot be empty")

	// ErrBlankSkill indicates a skill entry is blank.
	ErrBlankSkill = errors.New("skill cannot be blank")

	// ErrIDMismatch indicates the user and candidate IDs differ.
	ErrIDMismatch = errors.New("user and candidate IDs differ")

	// ErrEmptyQueryName indicates the saved query Name field is empty.
	ErrEmptyQueryName = errors.New("query name cannot be empty")

	// ErrEmptyQuery indicates the saved query Query field is empty.
	ErrEmptyQuery = errors.New("query cannot be empty")
)

// Serialization errors
var (
	// ErrCorruptRecord indicates encoded record data is shorter than its
	// length prefixes claim.
	ErrCorruptRecord = errors.New("corrupt record data")
)
