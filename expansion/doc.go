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

// Package expansion rewrites a search query into a boolean expression that
// also matches sense-appropriate synonyms of its content words.
//
// An Expander runs a fixed pipeline over one query:
//
//	text → Tokenizer → Stoplist → Disambiguator (per content token) → normalize → assemble
//
// Each content token is disambiguated against the other content tokens of the
// query. The chosen sense's lemmas are cleaned into expansion terms and the
// result is rendered as
//
//	( original text ) OR ( term1 OR term2 ... )
//
// or as the original text unchanged when no terms were found.
//
// # Disambiguators
//
// MaxSimilarity scores each candidate sense by summing, over the other
// content tokens, the best similarity to any of that token's senses.
// DefinitionOverlap counts context words that appear in a sense's gloss.
// Both keep the provider's first sense unless a later one scores strictly
// higher.
//
// # Concurrency
//
// An Expander holds no per-call state and is safe for concurrent use as long
// as its SenseProvider is. Similarity results are cached for the duration of
// a single Expand call only.
package expansion
