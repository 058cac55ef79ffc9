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
	"time"
)

// ValidatePerson validates a Person record according to domain rules.
//
// Validation rules:
//   - Name must not be empty or whitespace-only
//
// NOT validated (optional, may be absent):
//   - Department, Office, School, Email, OfficeHours
func ValidatePerson(person *Person) error {
	if person == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidPerson)
	}

	if strings.TrimSpace(person.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPerson, ErrEmptyName)
	}

	return nil
}

// ValidateClub validates a Club record according to domain rules.
//
// Validation rules:
//   - Name must not be empty or whitespace-only
//
// NOT validated (optional, may be absent):
//   - Category, Email, Social, Description
func ValidateClub(club *Club) error {
	if club == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidClub)
	}

	if strings.TrimSpace(club.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidClub, ErrEmptyName)
	}

	return nil
}

// ValidateHistoryEntry validates a HistoryEntry according to domain rules.
//
// Validation rules:
//   - Query must not be empty
//   - Kind must be a valid QueryKind
//   - Timestamp must not be in the future
func ValidateHistoryEntry(entry *HistoryEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidHistoryEntry)
	}

	if entry.Query == "" {
		return fmt.Errorf("%w: %w", ErrInvalidHistoryEntry, ErrEmptyQuery)
	}

	if err := ValidateQueryKind(entry.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHistoryEntry, err)
	}

	if !IsValidTimestamp(entry.Timestamp) {
		return fmt.Errorf("%w: %w", ErrInvalidHistoryEntry, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateQueryKind validates that a QueryKind has a valid value.
func ValidateQueryKind(kind QueryKind) error {
	switch kind {
	case QueryKindPeople, QueryKindClubs, QueryKindDepartment, QueryKindQuestion:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidQueryKind, kind)
	}
}

// IsValidTimestamp reports whether a timestamp is usable for a history entry.
// A small clock-skew allowance avoids rejecting entries stamped by a peer.
func IsValidTimestamp(t time.Time) bool {
	return !t.After(time.Now().Add(5 * time.Second))
}
