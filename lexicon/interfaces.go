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


package lexicon

import (
	"context"

	"github.com/poiesic/expandit/core"
)

// Sense is one meaning of a word as the expansion engine sees it.
// Implementations are immutable and safe for concurrent use.
type Sense interface {
	// ID returns the identifier of the underlying synset.
	ID() core.ID

	// Name returns a readable name such as "dog.n.01".
	Name() string

	// Similarity returns a symmetric relatedness score in [0,1].
	// Senses with no common ancestor, or senses from another provider, score 0.
	Similarity(other Sense) float64

	// Lemmas returns the surface synonyms of the sense in source order.
	// The returned slice is owned by the caller.
	Lemmas() []string

	// Definition returns the gloss text of the sense, possibly empty.
	Definition() string
}

// SenseProvider supplies the noun senses of a word.
// Implementations are read-only after construction and safe for concurrent use.
type SenseProvider interface {
	// Senses returns the senses of word, most frequent first.
	// An empty result means the word is unknown.
	Senses(word string) []Sense
}

// Lemmatizer reduces an inflected surface form to its dictionary form.
type Lemmatizer interface {
	Lemma(word string) string
}

// SynsetRepository persists synsets and the word-to-senses index.
// Implementations must be thread-safe and support concurrent access.
type SynsetRepository interface {
	// AddSynsets stores one or more synsets, replacing existing records with the same ID.
	AddSynsets(ctx context.Context, synsets ...*core.Synset) error

	// GetSynset retrieves a single synset by ID.
	// Returns ErrNotFound if the synset doesn't exist.
	GetSynset(ctx context.Context, id core.ID) (*core.Synset, error)

	// GetSynsets retrieves multiple synsets by their IDs.
	// Returns only the synsets that exist (no error for missing synsets).
	GetSynsets(ctx context.Context, ids ...core.ID) ([]*core.Synset, error)

	// PutWordSenses stores index entries, replacing any entry for the same word and part of speech.
	PutWordSenses(ctx context.Context, entries ...*core.WordSenses) error

	// GetWordSenses retrieves the index entry for a word.
	// Returns ErrNotFound if the word is not indexed.
	GetWordSenses(ctx context.Context, word string, pos core.PartOfSpeech) (*core.WordSenses, error)

	// AllSynsets returns every stored synset of the given part of speech.
	AllSynsets(ctx context.Context, pos core.PartOfSpeech) ([]*core.Synset, error)

	// AllWordSenses returns every index entry of the given part of speech.
	AllWordSenses(ctx context.Context, pos core.PartOfSpeech) ([]*core.WordSenses, error)

	// Count returns the number of stored synsets and index entries.
	Count(ctx context.Context) (synsets int, words int, err error)

	// Close releases resources held by the repository.
	Close() error
}
