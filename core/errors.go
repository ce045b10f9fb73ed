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

import "errors"

// Domain validation errors
var (
	// ErrInvalidSynset indicates a Synset failed validation.
	ErrInvalidSynset = errors.New("invalid synset")

	// ErrInvalidWordSenses indicates a WordSenses entry failed validation.
	ErrInvalidWordSenses = errors.New("invalid word senses")

	// ErrEmptySynsetName indicates the synset Name field is empty.
	ErrEmptySynsetName = errors.New("synset name cannot be empty")

	// ErrNoLemmas indicates a synset carries no surface forms.
	ErrNoLemmas = errors.New("synset must have at least one lemma")

	// ErrSelfHypernym indicates a synset lists itself as its own hypernym.
	ErrSelfHypernym = errors.New("synset cannot be its own hypernym")

	// ErrEmptyWord indicates the word of an index entry is empty.
	ErrEmptyWord = errors.New("word cannot be empty")

	// ErrInvalidPartOfSpeech indicates an unknown PartOfSpeech value.
	ErrInvalidPartOfSpeech = errors.New("invalid part of speech")
)
