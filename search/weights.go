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

import "github.com/poiesic/campusdir/core"

// SecondaryWeight is the bonus pair for one secondary field class.
type SecondaryWeight struct {
	Exact    float64
	Contains float64
}

// Weights is the full score table of the ranker. The name cascade tiers are
// mutually exclusive fixed scores; secondary bonuses are additive. FuzzyName
// is a ceiling: a fuzzy hit contributes FuzzyName * similarity, so it can
// never outrank the ContainsName tier.
type Weights struct {
	ExactName    float64
	PrefixName   float64
	TokenPrefix  float64
	ContainsName float64
	FuzzyName    float64

	// FuzzyThreshold is the minimum combined similarity for a fuzzy name hit.
	// Tuned constant, kept for compatibility with existing ranking behavior.
	FuzzyThreshold float64

	Secondary map[core.FieldClass]SecondaryWeight
}

// DefaultWeights returns the production score table.
func DefaultWeights() Weights {
	return Weights{
		ExactName:      100,
		PrefixName:     85,
		TokenPrefix:    80,
		ContainsName:   60,
		FuzzyName:      55,
		FuzzyThreshold: 0.70,
		Secondary: map[core.FieldClass]SecondaryWeight{
			core.FieldClassDepartment: {Exact: 30, Contains: 15},
			core.FieldClassLocation:   {Exact: 20, Contains: 10},
			core.FieldClassSchool:     {Exact: 15, Contains: 8},
			core.FieldClassContact:    {Exact: 10, Contains: 5},
		},
	}
}
