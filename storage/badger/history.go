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


package badger

import (
	"context"
	"errors"
	"slices"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/poiesic/campusdir/core"
	"github.com/poiesic/campusdir/storage"
)

// HistoryRepository implements storage.HistoryRepository on a Backend.
type HistoryRepository struct {
	backend *Backend
}

var _ storage.HistoryRepository = (*HistoryRepository)(nil)

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(backend *Backend) (*HistoryRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &HistoryRepository{backend: backend}, nil
}

// Close releases repository resources. The backend is owned by the caller.
func (r *HistoryRepository) Close() error {
	return nil
}

// AddEntries adds one or more history entries to storage.
func (r *HistoryRepository) AddEntries(ctx context.Context, entries ...*core.HistoryEntry) ([]*core.HistoryEntry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if entry.Timestamp.IsZero() {
				entry.Timestamp = time.Now().UTC()
			}
			if err := core.ValidateHistoryEntry(entry); err != nil {
				return err
			}
			// Content-based IDs: replays of the same entry overwrite in place.
			entry.Id = core.IDFromContent(entry.HashKey())

			key := makeHistoryEntryKey(entry.Id)
			if err := tx.Set(key, storage.MarshalHistoryEntry(entry)); err != nil {
				return err
			}

			dateKey := makeHistoryDateKey(entry.Timestamp, entry.Id)
			if err := tx.Set(dateKey, storage.MarshalID(entry.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return entries, err
}

// GetEntry retrieves a single entry by ID.
func (r *HistoryRepository) GetEntry(ctx context.Context, id core.ID) (*core.HistoryEntry, error) {
	var entry *core.HistoryEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		entry, err = r.readEntry(tx, makeHistoryEntryKey(id))
		if err != nil {
			return err
		}
		if entry == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// GetRecentEntries retrieves the N most recent entries, newest first.
func (r *HistoryRepository) GetRecentEntries(ctx context.Context, limit int) ([]*core.HistoryEntry, error) {
	if limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	var results []*core.HistoryEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent entries first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key of the date index
		startKey := makePartialHistoryDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := []byte(historyDatePrefix + ":")

		for iter.Seek(startKey); iter.Valid() && len(results) < limit; iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var entryID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				entryID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			entry, err := r.readEntry(tx, makeHistoryEntryKey(entryID))
			if err != nil {
				return err
			}
			if entry != nil {
				results = append(results, entry)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetStats aggregates counters over all stored entries.
func (r *HistoryRepository) GetStats(ctx context.Context) (*storage.Stats, error) {
	stats := &storage.Stats{
		ByKind:   make(map[core.QueryKind]int),
		ByIntent: make(map[core.Intent]int),
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(historyEntryPrefix + ":")

		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var entry *core.HistoryEntry
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				entry, err = storage.UnmarshalHistoryEntry(val)
				return err
			}); err != nil {
				return err
			}

			stats.Total++
			stats.ByKind[entry.Kind]++
			if entry.Intent != "" {
				stats.ByIntent[entry.Intent]++
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// readEntry reads and deserializes one entry, or nil if the key is absent.
func (r *HistoryRepository) readEntry(tx *badger.Txn, key []byte) (*core.HistoryEntry, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var entry *core.HistoryEntry
	err = item.Value(func(val []byte) error {
		var err error
		entry, err = storage.UnmarshalHistoryEntry(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
