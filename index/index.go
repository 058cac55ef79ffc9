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


package index

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/poiesic/campusdir/core"
)

// Source supplies complete datasets to the index. Implementations own all
// file I/O, parsing, and record validation.
type Source interface {
	Load(ctx context.Context) (*core.Dataset, error)
}

// ReloadResult reports the outcome of one reload attempt. A failed reload
// never replaces the served generation; Err carries the description.
type ReloadResult struct {
	OK        bool
	People    int
	Clubs     int
	Buildings int
	Err       string
}

// Index is the swappable handle to the current snapshot generation.
// Reads are lock-free; reloads are serialized.
type Index struct {
	source   Source
	current  atomic.Pointer[Snapshot]
	reloadMu sync.Mutex
	logger   *slog.Logger
}

// Option configures an Index.
type Option func(*Index) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Index) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger
		return nil
	}
}

// New creates an index serving an empty generation until the first
// successful Reload.
func New(source Source, opts ...Option) (*Index, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}

	ix := &Index{
		source: source,
		logger: slog.Default(),
	}
	ix.current.Store(newSnapshot(0, nil))

	for _, opt := range opts {
		if err := opt(ix); err != nil {
			return nil, err
		}
	}

	return ix, nil
}

// Current returns the snapshot being served right now. Callers must take it
// once per operation and use it for the whole operation.
func (ix *Index) Current() *Snapshot {
	return ix.current.Load()
}

// Reload re-invokes the source and atomically publishes a new generation.
// At most one reload runs at a time; concurrent reads keep seeing the prior
// generation until the swap. Load failures are reported in the result, never
// raised, and leave the served generation untouched.
func (ix *Index) Reload(ctx context.Context) ReloadResult {
	ix.reloadMu.Lock()
	defer ix.reloadMu.Unlock()

	ds, err := ix.source.Load(ctx)
	if err != nil {
		ix.logger.Error("reload failed, keeping current generation",
			"generation", ix.Current().Generation, "err", err)
		return ReloadResult{OK: false, Err: err.Error()}
	}

	next := newSnapshot(ix.Current().Generation+1, ds)
	ix.current.Store(next)

	ix.logger.Info("index reloaded",
		"generation", next.Generation,
		"people", len(next.People),
		"clubs", len(next.Clubs),
		"buildings", len(next.Buildings))

	return ReloadResult{
		OK:        true,
		People:    len(next.People),
		Clubs:     len(next.Clubs),
		Buildings: len(next.Buildings),
	}
}
