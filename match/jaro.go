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

const (
	// winklerPrefixCap bounds how many leading characters feed the prefix bonus.
	winklerPrefixCap = 4
	// winklerScale weights the prefix bonus. Tuned constant, kept for
	// compatibility with existing ranking behavior.
	winklerScale = 0.1
)

// Jaro computes the Jaro similarity between two strings. Characters match
// when equal and within floor(max(len1,len2)/2)-1 positions of each other;
// each character of a is paired greedily left-to-right with the first
// unmatched equal character of b inside that window. Transpositions are
// counted over the matched subsequences in original order and halved.
// Returns 0 when either string is empty or nothing matches.
func Jaro(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 || lb == 0 {
		return 0
	}

	window := max(la, lb)/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, la)
	matchedB := make([]bool, lb)
	matches := 0
	for i := 0; i < la; i++ {
		lo := max(i-window, 0)
		hi := min(i+window, lb-1)
		for j := lo; j <= hi; j++ {
			if matchedB[j] || ra[i] != rb[j] {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	// Walk the matched subsequences in original order; every position where
	// they disagree is half a transposition.
	transposed := 0
	j := 0
	for i := 0; i < la; i++ {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if ra[i] != rb[j] {
			transposed++
		}
		j++
	}
	t := float64(transposed) / 2

	m := float64(matches)
	return (m/float64(la) + m/float64(lb) + (m-t)/m) / 3
}

// JaroWinkler computes the Jaro similarity boosted by a bonus for a shared
// prefix of up to four characters: jaro + 0.1*l*(1-jaro).
func JaroWinkler(a, b string) float64 {
	jaro := Jaro(a, b)
	if jaro == 0 {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	l := 0
	for l < len(ra) && l < len(rb) && l < winklerPrefixCap && ra[l] == rb[l] {
		l++
	}

	return jaro + winklerScale*float64(l)*(1-jaro)
}
