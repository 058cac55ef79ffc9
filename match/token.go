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


package match

// TokenSimilarity compares two multi-word phrases: both sides are normalized
// and split into tokens, each token of a takes its best JaroWinkler score
// against any token of b, and the per-token bests are averaged over a's token
// count. Word order and extra middle tokens on the b side therefore cost
// nothing, which is what makes partial name matches like "Al Rashid" against
// "Mohammad Al Rashid" score highly. Returns 0 when either side has no
// tokens after normalization.
func TokenSimilarity(a, b string) float64 {
	at := Tokens(a)
	bt := Tokens(b)
	if len(at) == 0 || len(bt) == 0 {
		return 0
	}

	var total float64
	for _, t := range at {
		best := 0.0
		for _, u := range bt {
			if s := JaroWinkler(t, u); s > best {
				best = s
			}
		}
		total += best
	}
	return total / float64(len(at))
}
