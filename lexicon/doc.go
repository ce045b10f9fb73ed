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


// Package lexicon provides the lexical knowledge base consumed by query expansion.
//
// The package has two halves. The capability half (Sense, SenseProvider) is
// all the expansion engine depends on: an ordered list of senses per word, a
// symmetric similarity between senses, and the lemmas of a sense. The storage
// half (SynsetRepository) persists synsets and the word index so that a
// lexicon imported once can be reopened cheaply.
//
// # Taxonomy
//
// Taxonomy is the in-memory SenseProvider built from a repository by Load.
// Similarity is the Wu-Palmer measure over the hypernym graph:
//
//	wup(a, b) = 2 * depth(lcs) / (len(a, lcs) + len(b, lcs) + 2 * depth(lcs))
//
// where lcs is the deepest common hypernym (by minimum depth), depth(lcs) is
// its maximum depth plus one, and len is the shortest hypernym path length.
// Pairs with no common hypernym score exactly 0.
//
// # Thread Safety
//
// A Taxonomy is never mutated after construction and may be shared by any
// number of goroutines. Repository implementations must be thread-safe.
//
// # Usage
//
//	repo, err := badger.NewSynsetRepository(backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	taxonomy, err := lexicon.Load(ctx, repo)
//	if err != nil {
//	    log.Fatal(err) // wraps ErrResourceUnavailable
//	}
//	senses := taxonomy.Senses("apple")
package lexicon
