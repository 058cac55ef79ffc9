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


package storage

import (
	"context"

	"github.com/poiesic/campusdir/core"
)

// Stats aggregates usage counters over the stored history.
type Stats struct {
	Total    int
	ByKind   map[core.QueryKind]int
	ByIntent map[core.Intent]int
}

// HistoryRepository provides operations for managing query history entries.
// Implementations must be thread-safe and support concurrent access.
type HistoryRepository interface {
	// AddEntries adds one or more history entries to storage.
	// IDs are content-based; identical entries overwrite in place.
	// Sets the Timestamp to now if not already set.
	// Returns the entries with IDs and timestamps populated.
	AddEntries(ctx context.Context, entries ...*core.HistoryEntry) ([]*core.HistoryEntry, error)

	// GetEntry retrieves a single entry by ID.
	// Returns ErrNotFound if the entry doesn't exist.
	GetEntry(ctx context.Context, id core.ID) (*core.HistoryEntry, error)

	// GetRecentEntries retrieves the N most recent entries, newest first.
	GetRecentEntries(ctx context.Context, limit int) ([]*core.HistoryEntry, error)

	// GetStats aggregates counters over all stored entries.
	GetStats(ctx context.Context) (*Stats, error)

	// Close closes the repository and releases resources.
	Close() error
}
