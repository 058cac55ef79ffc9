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


// Package campusdir is a directory lookup assistant over small in-memory
// record collections: people, clubs, and a building legend. Free-text
// queries are ranked with edit-distance and prefix-weighted similarity;
// natural-language questions are routed to typed intents.
package campusdir

import (
	"context"
	"log/slog"

	"github.com/poiesic/campusdir/core"
	"github.com/poiesic/campusdir/history"
	"github.com/poiesic/campusdir/index"
	"github.com/poiesic/campusdir/ingest"
	"github.com/poiesic/campusdir/intent"
	"github.com/poiesic/campusdir/search"
	"github.com/poiesic/campusdir/storage"
	"github.com/poiesic/campusdir/storage/badger"
)

// Assistant ties the record index, ranker, and intent extractor together
// behind the directory's boundary contracts. All query methods are pure
// reads of the current index generation and safe for concurrent use.
type Assistant struct {
	index     *index.Index
	ranker    *search.Ranker
	extractor *intent.Extractor
	recorder  *history.Recorder // nil when history is disabled
	repo      storage.HistoryRepository
	backend   *badger.Backend
	logger    *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	historyPath string
	limit       int
	logger      *slog.Logger
}

// WithHistory enables query-history persistence in a BadgerDB directory.
func WithHistory(dbPath string) AssistantOption {
	return func(o *assistantOptions) {
		o.historyPath = dbPath
	}
}

// WithResultLimit overrides the ranked-search result cap.
func WithResultLimit(limit int) AssistantOption {
	return func(o *assistantOptions) {
		o.limit = limit
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) AssistantOption {
	return func(o *assistantOptions) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// New creates an assistant loading data files from dataDir. The initial load
// runs immediately; on failure the assistant starts with an empty index and
// keeps serving (the data can be fixed and reloaded later).
func New(dataDir string, opts ...AssistantOption) (*Assistant, error) {
	options := &assistantOptions{
		limit:  search.DefaultLimit,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	source, err := ingest.NewFileSource(dataDir, ingest.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	idx, err := index.New(source, index.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	ranker, err := search.NewRanker(
		search.WithLimit(options.limit),
		search.WithLogger(options.logger),
	)
	if err != nil {
		return nil, err
	}

	a := &Assistant{
		index:     idx,
		ranker:    ranker,
		extractor: intent.NewExtractor(intent.WithLogger(options.logger)),
		logger:    options.logger,
	}

	if options.historyPath != "" {
		backend, err := badger.OpenBackend(options.historyPath, false)
		if err != nil {
			return nil, err
		}
		repo, err := badger.NewHistoryRepository(backend)
		if err != nil {
			backend.Close()
			return nil, err
		}
		recorder, err := history.NewRecorder(repo, history.WithLogger(options.logger))
		if err != nil {
			repo.Close()
			backend.Close()
			return nil, err
		}
		a.backend = backend
		a.repo = repo
		a.recorder = recorder
	}

	if res := a.index.Reload(context.Background()); !res.OK {
		options.logger.Warn("initial data load failed, serving empty index", "err", res.Err)
	}

	return a, nil
}

// Search ranks the people collection against a free-text query.
func (a *Assistant) Search(query string) []*core.Person {
	snap := a.index.Current()

	docs := make([]search.Document, len(snap.People))
	for i, p := range snap.People {
		docs[i] = p
	}

	matches := a.ranker.Rank(docs, query)
	people := make([]*core.Person, 0, len(matches))
	for _, m := range matches {
		people = append(people, m.Document.(*core.Person))
	}

	a.record(core.QueryKindPeople, query, nil, len(people))
	return people
}

// SearchClubs ranks the clubs collection against a free-text query.
func (a *Assistant) SearchClubs(query string) []*core.Club {
	snap := a.index.Current()

	docs := make([]search.Document, len(snap.Clubs))
	for i, c := range snap.Clubs {
		docs[i] = c
	}

	matches := a.ranker.Rank(docs, query)
	clubs := make([]*core.Club, 0, len(matches))
	for _, m := range matches {
		clubs = append(clubs, m.Document.(*core.Club))
	}

	a.record(core.QueryKindClubs, query, nil, len(clubs))
	return clubs
}

// Departments returns the sorted, deduplicated department list of the
// current generation.
func (a *Assistant) Departments() []string {
	return a.index.Current().Departments
}

// SearchByDepartment returns the people of one department, in load order.
func (a *Assistant) SearchByDepartment(name string) []*core.Person {
	people := a.index.Current().PeopleInDepartment(name)
	a.record(core.QueryKindDepartment, name, nil, len(people))
	return people
}

// Ask parses a natural-language question into an intent result, or nil when
// the question matches nothing; callers should then fall back to Search.
func (a *Assistant) Ask(query string) *core.IntentResult {
	result := a.extractor.Parse(query)
	if result != nil {
		a.record(core.QueryKindQuestion, query, result, 1)
	}
	return result
}

// Building looks up a legend entry by building code.
func (a *Assistant) Building(code string) (core.BuildingInfo, bool) {
	return a.index.Current().Building(code)
}

// BuildingForOffice resolves an office string to its building legend entry.
func (a *Assistant) BuildingForOffice(office string) (core.BuildingInfo, bool) {
	return a.index.Current().BuildingForOffice(office)
}

// Reload re-reads the data files and atomically swaps in the new index
// generation. Failure keeps the current generation and is reported in the
// result, never raised.
func (a *Assistant) Reload(ctx context.Context) index.ReloadResult {
	return a.index.Reload(ctx)
}

// History returns the N most recent recorded queries, newest first.
// Returns nothing when history is disabled.
func (a *Assistant) History(ctx context.Context, limit int) ([]*core.HistoryEntry, error) {
	if a.recorder == nil {
		return nil, nil
	}
	return a.recorder.Recent(ctx, limit)
}

// Stats aggregates usage counters, or nil when history is disabled.
func (a *Assistant) Stats(ctx context.Context) (*storage.Stats, error) {
	if a.recorder == nil {
		return nil, nil
	}
	return a.recorder.Stats(ctx)
}

// Close releases history resources, if enabled.
func (a *Assistant) Close() error {
	if a.recorder == nil {
		return nil
	}

	if err := a.recorder.Close(); err != nil {
		a.logger.Error("error closing history recorder", "err", err)
	}
	if err := a.repo.Close(); err != nil {
		a.logger.Error("error closing history repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing history backend", "err", err)
		return err
	}
	return nil
}

func (a *Assistant) record(kind core.QueryKind, query string, result *core.IntentResult, hits int) {
	if a.recorder == nil {
		return
	}
	a.recorder.Record(kind, query, result, hits)
}
