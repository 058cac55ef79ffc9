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


package search

import (
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/campusdir/core"
	"github.com/poiesic/campusdir/match"
)

const (
	// DefaultLimit caps how many matches a ranked search returns.
	DefaultLimit = 10

	// MinQueryLength is the shortest trimmed query worth ranking.
	MinQueryLength = 2
)

// Document is a rankable directory record. core.Person and core.Club
// implement it.
type Document interface {
	SearchName() string
	SearchFields() []core.SearchField
}

// Match is one scored, deduplicated search hit. It is transient: created per
// Rank call and discarded after the caller unwraps its Document.
type Match struct {
	Document Document
	Score    float64
	// MatchedFields tags which fields contributed, e.g. "name:exact",
	// "department:contains".
	MatchedFields []string
	// Key is the canonical (normalized) name, the record's dedup identity.
	Key string
}

// Ranker scores a collection of documents against queries.
// A Ranker is immutable after construction and safe for concurrent use.
type Ranker struct {
	limit   int
	weights Weights
	logger  *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLimit sets the result cap. Values below 1 fall back to DefaultLimit.
func WithLimit(limit int) Option {
	return func(r *Ranker) error {
		if limit < 1 {
			limit = DefaultLimit
		}
		r.limit = limit
		return nil
	}
}

// WithWeights overrides the score table.
func WithWeights(weights Weights) Option {
	return func(r *Ranker) error {
		if weights.Secondary == nil {
			return ErrSecondaryWeightsRequired
		}
		r.weights = weights
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRanker creates a new ranker with the default weight table.
func NewRanker(opts ...Option) (*Ranker, error) {
	r := &Ranker{
		limit:   DefaultLimit,
		weights: DefaultWeights(),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Rank scores every document against the query, drops zero scores,
// deduplicates by canonical name keeping the best-scoring candidate, sorts
// by descending score (ties keep discovery order), and truncates to the
// configured cap. Queries shorter than MinQueryLength after trimming, or
// with no canonical form at all, yield an empty result.
func (r *Ranker) Rank(docs []Document, query string) []Match {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < MinQueryLength {
		return nil
	}

	// Punctuation-only input can pass the length gate yet normalize to
	// nothing; an empty canonical query would prefix-match every name.
	q := match.Normalize(query)
	if q == "" {
		return nil
	}
	qTokens := strings.Fields(q)
	rawQ := strings.ToLower(trimmed)

	// Deduplicate as we score: one slot per canonical key, first discovery
	// holds the position, higher scores replace in place.
	var matches []Match
	byKey := make(map[string]int)

	for _, doc := range docs {
		m, ok := r.score(doc, q, qTokens, rawQ)
		if !ok {
			continue
		}

		if at, seen := byKey[m.Key]; seen {
			if m.Score > matches[at].Score {
				matches[at] = m
			}
			continue
		}
		byKey[m.Key] = len(matches)
		matches = append(matches, m)
	}

	// Stable keeps discovery order among equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > r.limit {
		matches = matches[:r.limit]
	}

	r.logger.Debug("ranked search complete", "query", q, "candidates", len(docs), "hits", len(matches))
	return matches
}

// score computes one document's total score. Returns false when the document
// does not qualify at all.
func (r *Ranker) score(doc Document, q string, qTokens []string, rawQ string) (Match, bool) {
	name := match.Normalize(doc.SearchName())
	if name == "" {
		return Match{}, false
	}
	nTokens := strings.Fields(name)

	var score float64
	var fields []string

	// Name cascade: mutually exclusive tiers, first match wins.
	switch {
	case name == q:
		score += r.weights.ExactName
		fields = append(fields, "name:exact")
	case strings.HasPrefix(name, q) ||
		(len(nTokens) > 0 && len(qTokens) > 0 && strings.HasPrefix(nTokens[0], qTokens[0])):
		score += r.weights.PrefixName
		fields = append(fields, "name:prefix")
	case allTokensPrefix(qTokens, nTokens):
		score += r.weights.TokenPrefix
		fields = append(fields, "name:token_prefix")
	case strings.Contains(name, q):
		score += r.weights.ContainsName
		fields = append(fields, "name:contains")
	default:
		sim := max(match.TokenSimilarity(name, q), match.Ratio(name, q))
		if sim > r.weights.FuzzyThreshold {
			score += r.weights.FuzzyName * sim
			fields = append(fields, "name:fuzzy")
		}
	}

	// Secondary fields are additive and independent of the cascade.
	for _, f := range doc.SearchFields() {
		if f.Value == "" {
			continue
		}
		w, ok := r.weights.Secondary[f.Class]
		if !ok {
			continue
		}
		if strings.ToLower(strings.TrimSpace(f.Value)) == rawQ {
			score += w.Exact
			fields = append(fields, f.Tag+":exact")
			continue
		}
		if strings.Contains(match.Normalize(f.Value), q) {
			score += w.Contains
			fields = append(fields, f.Tag+":contains")
		}
	}

	if score == 0 {
		return Match{}, false
	}

	return Match{
		Document:      doc,
		Score:         score,
		MatchedFields: fields,
		Key:           name,
	}, true
}

// allTokensPrefix reports whether every query token is a positional prefix of
// the corresponding name token.
func allTokensPrefix(qTokens, nTokens []string) bool {
	if len(qTokens) == 0 || len(qTokens) > len(nTokens) {
		return false
	}
	for i, qt := range qTokens {
		if !strings.HasPrefix(nTokens[i], qt) {
			return false
		}
	}
	return true
}
