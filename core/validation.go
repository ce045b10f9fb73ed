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


package core

import (
	"fmt"
)

// ValidateSynset validates a Synset according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Pos must be a known part of speech
//   - At least one lemma must be present and none may be blank
//   - The synset must not list itself as a hypernym
//
// NOT validated:
//   - Gloss (may be empty)
//   - Hypernym targets (may be stored later in the same import)
func ValidateSynset(synset *Synset) error {
	if synset == nil {
		return fmt.Errorf("%w: synset is nil", ErrInvalidSynset)
	}

	if synset.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSynset, ErrEmptySynsetName)
	}

	if err := ValidatePartOfSpeech(synset.Pos); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSynset, err)
	}

	if len(synset.Lemmas) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSynset, ErrNoLemmas)
	}
	for _, lemma := range synset.Lemmas {
		if lemma == "" {
			return fmt.Errorf("%w: %w", ErrInvalidSynset, ErrNoLemmas)
		}
	}

	for _, h := range synset.Hypernyms {
		if h == synset.Id {
			return fmt.Errorf("%w: %w", ErrInvalidSynset, ErrSelfHypernym)
		}
	}

	return nil
}

// ValidateWordSenses validates an index entry.
// An entry with no senses is valid; it records that the word is known but unused.
func ValidateWordSenses(entry *WordSenses) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidWordSenses)
	}

	if entry.Word == "" {
		return fmt.Errorf("%w: %w", ErrInvalidWordSenses, ErrEmptyWord)
	}

	if err := ValidatePartOfSpeech(entry.Pos); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWordSenses, err)
	}

	return nil
}

// ValidatePartOfSpeech validates that a PartOfSpeech has a valid value.
func ValidatePartOfSpeech(pos PartOfSpeech) error {
	switch pos {
	case Noun, Verb, Adjective, Adverb:
		return nil
	}
	return fmt.Errorf("%w: value %q", ErrInvalidPartOfSpeech, rune(pos))
}
