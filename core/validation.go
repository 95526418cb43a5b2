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

import (
	"fmt"
	"strings"
)

// ValidateUser validates a User according to domain rules.
//
// Validation rules:
//   - Email must not be empty and must contain '@'
//   - FullName must not be empty
//
// NOT validated:
//   - ID (assigned from the email by NewProfile)
func ValidateUser(user *User) error {
	if user == nil {
		return fmt.Errorf("%w: user is nil", ErrInvalidUser)
	}

	email := strings.TrimSpace(user.Email)
	if email == "" {
		return fmt.Errorf("%w: %w", ErrInvalidUser, ErrEmptyEmail)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: %w: %q", ErrInvalidUser, ErrMalformedEmail, email)
	}

	if strings.TrimSpace(user.FullName) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidUser, ErrEmptyFullName)
	}

	return nil
}

// ValidateCandidate validates a Candidate according to domain rules.
// Every profile field is optional, but listed skills must not be blank.
func ValidateCandidate(candidate *Candidate) error {
	if candidate == nil {
		return fmt.Errorf("%w: candidate is nil", ErrInvalidCandidate)
	}

	for i, skill := range candidate.Skills {
		if strings.TrimSpace(skill) == "" {
			return fmt.Errorf("%w: %w: index %d", ErrInvalidCandidate, ErrBlankSkill, i)
		}
	}

	return nil
}

// ValidateProfile validates both halves of a Profile and checks that they
// share an ID.
func ValidateProfile(profile *Profile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if err := ValidateUser(&profile.User); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	if err := ValidateCandidate(&profile.Candidate); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	if profile.User.Id != profile.Candidate.Id {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrIDMismatch)
	}

	return nil
}

// ValidateSavedQuery validates a SavedQuery. Query syntax is not checked
// here; that belongs to the query engine.
func ValidateSavedQuery(saved *SavedQuery) error {
	if saved == nil {
		return fmt.Errorf("%w: saved query is nil", ErrInvalidSavedQuery)
	}

	if strings.TrimSpace(saved.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSavedQuery, ErrEmptyQueryName)
	}

	if strings.TrimSpace(saved.Query) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSavedQuery, ErrEmptyQuery)
	}

	return nil
}
