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


// Package search ranks directory records against a free-text query.
//
// The Ranker scores every document of a collection across its name and
// secondary fields, deduplicates by canonical name, sorts by descending
// score, and truncates to a result cap.
//
// Name matching is a fixed-score cascade: exact, prefix, all-tokens-prefix,
// and substring tiers always outrank fuzzy matches, so fuzzy similarity is
// given a lower score ceiling than any exact tier. Secondary fields add
// independent bonuses on top. All score contributions live in a single
// Weights table so tie-break behavior stays auditable.
package search
