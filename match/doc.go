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


// Package match provides text normalization and string-similarity scoring.
//
// Normalize folds text to a canonical comparable form: lowercased, diacritics
// stripped, punctuation and whitespace runs collapsed to single spaces. The
// canonical form of a record's name doubles as its identity key for
// deduplication.
//
// Three similarity scorers return values in [0,1]:
//   - Ratio: Levenshtein edit distance normalized by the longer string
//   - JaroWinkler: character-window alignment with a common-prefix bonus
//   - TokenSimilarity: per-token best JaroWinkler averaged over the first
//     side's tokens, for multi-word names where word order or middle names vary
//
// All functions are pure and total; absent input behaves as the empty string.
package match
