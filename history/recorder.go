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


package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/campusdir/core"
	"github.com/poiesic/campusdir/storage"
)

const defaultPoolSize = 2

// Recorder persists query history asynchronously through a worker pool.
type Recorder struct {
	repo   storage.HistoryRepository
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Recorder.
type Option func(*Recorder) error

// WithPoolSize sets the worker pool size for background writes.
// Default is 2, minimum 1.
func WithPoolSize(size int) Option {
	return func(r *Recorder) error {
		if size < 1 {
			size = 1
		}

		if r.pool != nil {
			r.pool.Release()
		}
		pool, err := ants.NewPool(size, ants.WithNonblocking(true))
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRecorder creates a new recorder writing to the given repository.
func NewRecorder(repo storage.HistoryRepository, opts ...Option) (*Recorder, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	pool, err := ants.NewPool(defaultPoolSize, ants.WithNonblocking(true))
	if err != nil {
		return nil, err
	}

	r := &Recorder{
		repo:   repo,
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			r.pool.Release()
			return nil, err
		}
	}

	return r, nil
}

// Record queues one served query for persistence. It never blocks: when the
// pool is saturated the entry is dropped with a warning. Empty queries are
// ignored.
func (r *Recorder) Record(kind core.QueryKind, query string, result *core.IntentResult, hits int) {
	if query == "" {
		return
	}

	entry := &core.HistoryEntry{
		Kind:      kind,
		Query:     query,
		Hits:      hits,
		Timestamp: time.Now().UTC(),
	}
	if result != nil {
		entry.Intent = result.Intent
	}

	err := r.pool.Submit(func() {
		if _, err := r.repo.AddEntries(context.Background(), entry); err != nil {
			r.logger.Warn("failed to persist history entry", "query", entry.Query, "err", err)
		}
	})
	if err != nil {
		r.logger.Warn("history pool saturated, dropping entry", "query", entry.Query, "err", err)
	}
}

// Recent returns the N most recent entries, newest first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]*core.HistoryEntry, error) {
	return r.repo.GetRecentEntries(ctx, limit)
}

// Stats aggregates usage counters over all stored entries.
func (r *Recorder) Stats(ctx context.Context) (*storage.Stats, error) {
	return r.repo.GetStats(ctx)
}

// Pending reports how many writes are still in flight.
func (r *Recorder) Pending() int {
	return r.pool.Running()
}

// Close releases the worker pool. The repository is owned by the caller.
func (r *Recorder) Close() error {
	r.pool.Release()
	return nil
}
