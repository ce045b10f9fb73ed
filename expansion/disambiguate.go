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

package expansion

import (
	"strings"

	"github.com/poiesic/expandit/lexicon"
)

// Result records the sense chosen for one content token.
type Result struct {
	Token string
	Sense lexicon.Sense
	Score float64
}

// Disambiguator picks the sense of token that best fits the other tokens of
// context. It returns nil when provider knows no senses for token.
type Disambiguator func(provider lexicon.SenseProvider, context []string, token string) *Result

var (
	_ Disambiguator = MaxSimilarity
	_ Disambiguator = DefinitionOverlap
)

// MaxSimilarity scores each candidate sense of token as the sum, over every
// context token other than token, of the highest similarity between the
// candidate and any sense of that context token. A context token with no
// senses adds 0.
//
// The provider's first sense is the default. A later candidate replaces the
// current best only when its score is strictly greater.
func MaxSimilarity(provider lexicon.SenseProvider, context []string, token string) *Result {
	candidates := provider.Senses(token)
	if len(candidates) == 0 {
		return nil
	}

	others := make([][]lexicon.Sense, 0, len(context))
	for _, t := range context {
		if t == token {
			continue
		}
		others = append(others, provider.Senses(t))
	}

	best := &Result{Token: token, Sense: candidates[0]}
	for _, candidate := range candidates {
		score := 0.0
		for _, senses := range others {
			top := 0.0
			for _, s := range senses {
				if sim := candidate.Similarity(s); sim > top {
					top = sim
				}
			}
			score += top
		}
		if score > best.Score {
			best.Score = score
			best.Sense = candidate
		}
	}
	return best
}

// DefinitionOverlap scores each candidate sense of token by how many distinct
// context words appear in its definition, in the manner of the simplified
// Lesk algorithm. Ties keep the earlier sense.
func DefinitionOverlap(provider lexicon.SenseProvider, context []string, token string) *Result {
	candidates := provider.Senses(token)
	if len(candidates) == 0 {
		return nil
	}

	contextWords := make(map[string]struct{}, len(context))
	for _, t := range context {
		contextWords[strings.ToLower(t)] = struct{}{}
	}

	best := &Result{Token: token, Sense: candidates[0]}
	for _, candidate := range candidates {
		overlap := 0
		seen := make(map[string]struct{})
		for _, w := range wordPattern.FindAllString(candidate.Definition(), -1) {
			w = strings.ToLower(w)
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			if _, ok := contextWords[w]; ok {
				overlap++
			}
		}
		if score := float64(overlap); score > best.Score {
			best.Score = score
			best.Sense = candidate
		}
	}
	return best
}
