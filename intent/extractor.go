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


package intent

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/poiesic/campusdir/core"
)

// questionConfidence is the confidence of the generic interrogative fallback.
const questionConfidence = 0.4

// Extractor parses natural-language questions into intent results.
// An Extractor is stateless and safe for concurrent use.
type Extractor struct {
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewExtractor creates a new intent extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse matches the query against the ordered rule table and returns the
// first hit. Queries with no rule match but a generic interrogative token
// yield an IntentQuestion result; anything else yields nil, and the caller
// should fall back to plain ranked search. Parse never fails.
func (e *Extractor) Parse(query string) *core.IntentResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		result := &core.IntentResult{
			Intent:     r.intent,
			Entity:     cleanEntity(extractEntity(m)),
			Confidence: r.confidence,
		}
		e.logger.Debug("intent matched", "intent", result.Intent, "entity", result.Entity)
		return result
	}

	if interrogative.MatchString(q) {
		entity := cleanEntity(leadingInterrogative.ReplaceAllString(q, ""))
		e.logger.Debug("generic question fallback", "entity", entity)
		return &core.IntentResult{
			Intent:     core.IntentQuestion,
			Entity:     entity,
			Confidence: questionConfidence,
		}
	}

	return nil
}

// extractEntity picks the last non-empty captured group, falling back to the
// first group.
func extractEntity(m []string) string {
	for i := len(m) - 1; i >= 1; i-- {
		if m[i] != "" {
			return m[i]
		}
	}
	if len(m) > 1 {
		return m[1]
	}
	return ""
}

// cleanEntity strips trailing punctuation and surrounding whitespace.
func cleanEntity(entity string) string {
	entity = strings.TrimRightFunc(entity, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSpace(r)
	})
	return strings.TrimSpace(entity)
}
