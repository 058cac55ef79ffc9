package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidatePerson(t *testing.T) {
	tests := []struct {
		name    string
		person  *Person
		wantErr error
	}{
		{
			name: "valid person",
			person: &Person{
				Name:       "Dr. Omar Khalil",
				Department: "Computer Science",
			},
			wantErr: nil,
		},
		{
			name:    "name only is valid",
			person:  &Person{Name: "Omar Khalil"},
			wantErr: nil,
		},
		{
			name:    "nil person",
			person:  nil,
			wantErr: ErrInvalidPerson,
		},
		{
			name:    "empty name",
			person:  &Person{Department: "Computer Science"},
			wantErr: ErrEmptyName,
		},
		{
			name:    "whitespace-only name",
			person:  &Person{Name: "   "},
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePerson(tt.person)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePerson() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePerson() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateClub(t *testing.T) {
	tests := []struct {
		name    string
		club    *Club
		wantErr error
	}{
		{
			name:    "valid club",
			club:    &Club{Name: "Chess Club", Category: "Games"},
			wantErr: nil,
		},
		{
			name:    "nil club",
			club:    nil,
			wantErr: ErrInvalidClub,
		},
		{
			name:    "empty name",
			club:    &Club{Category: "Games"},
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClub(tt.club)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateClub() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateClub() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateHistoryEntry(t *testing.T) {
	validTime := time.Now().Add(-1 * time.Hour)
	futureTime := time.Now().Add(1 * time.Hour)

	tests := []struct {
		name    string
		entry   *HistoryEntry
		wantErr error
	}{
		{
			name: "valid entry",
			entry: &HistoryEntry{
				Kind:      QueryKindPeople,
				Query:     "omar khalil",
				Hits:      3,
				Timestamp: validTime,
			},
			wantErr: nil,
		},
		{
			name: "valid question entry with intent",
			entry: &HistoryEntry{
				Kind:      QueryKindQuestion,
				Query:     "who is the dean?",
				Intent:    IntentWhoIs,
				Hits:      1,
				Timestamp: validTime,
			},
			wantErr: nil,
		},
		{
			name: "zero hits is valid",
			entry: &HistoryEntry{
				Kind:      QueryKindClubs,
				Query:     "chess",
				Timestamp: validTime,
			},
			wantErr: nil,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantErr: ErrInvalidHistoryEntry,
		},
		{
			name: "empty query",
			entry: &HistoryEntry{
				Kind:      QueryKindPeople,
				Timestamp: validTime,
			},
			wantErr: ErrEmptyQuery,
		},
		{
			name: "invalid kind",
			entry: &HistoryEntry{
				Kind:      QueryKind(999),
				Query:     "omar",
				Timestamp: validTime,
			},
			wantErr: ErrInvalidQueryKind,
		},
		{
			name: "future timestamp",
			entry: &HistoryEntry{
				Kind:      QueryKindPeople,
				Query:     "omar",
				Timestamp: futureTime,
			},
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHistoryEntry(tt.entry)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateHistoryEntry() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateHistoryEntry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateQueryKind(t *testing.T) {
	for _, kind := range []QueryKind{QueryKindPeople, QueryKindClubs, QueryKindDepartment, QueryKindQuestion} {
		if err := ValidateQueryKind(kind); err != nil {
			t.Errorf("ValidateQueryKind(%d) unexpected error: %v", kind, err)
		}
	}

	if err := ValidateQueryKind(QueryKind(0)); !errors.Is(err, ErrInvalidQueryKind) {
		t.Errorf("ValidateQueryKind(0) error = %v, want %v", err, ErrInvalidQueryKind)
	}
}

func TestIsValidTimestamp(t *testing.T) {
	if !IsValidTimestamp(time.Now()) {
		t.Error("IsValidTimestamp(now) = false, want true")
	}
	if !IsValidTimestamp(time.Now().Add(2 * time.Second)) {
		t.Error("IsValidTimestamp(now+2s) = false, want true (clock-skew allowance)")
	}
	if IsValidTimestamp(time.Now().Add(1 * time.Hour)) {
		t.Error("IsValidTimestamp(now+1h) = true, want false")
	}
}
