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


// Package intent maps free-text questions to typed (intent, entity) pairs.
//
// The extractor walks an explicitly ordered rule table; the first pattern
// that matches the lowercased query wins, with no scoring among intents.
// Rule order is policy, not accident: ambiguous or multi-clause questions
// resolve to whichever rule appears first. Queries that match no rule but
// contain an interrogative token fall back to a generic question intent;
// everything else yields no result and the caller falls back to plain
// ranked search.
//
// This is a best-effort heuristic layer, not a grammar.
package intent
