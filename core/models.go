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
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for lexicon entities.
// Synset IDs are derived from their source position with content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// PartOfSpeech identifies the syntactic category a synset belongs to.
type PartOfSpeech byte

const (
	// Noun is the only part of speech the expansion engine consults.
	Noun PartOfSpeech = 'n'
	Verb PartOfSpeech = 'v'
	// Adjective covers both head and satellite adjectives.
	Adjective PartOfSpeech = 'a'
	Adverb    PartOfSpeech = 'r'
)

// SynsetID returns the ID of the synset stored at offset in the data file
// for the given part of speech.
func SynsetID(pos PartOfSpeech, offset string) ID {
	return IDFromContent(string(pos) + ":" + offset)
}

// Synset is one distinct meaning in the lexical knowledge base, together with
// the surface forms that express it and its position in the hypernym taxonomy.
type Synset struct {
	Id        ID
	Name      string       // Readable name such as "dog.n.01"
	Pos       PartOfSpeech
	Lemmas    []string     // Surface synonyms in source order, multiword forms joined by '_'
	Hypernyms []ID         // Direct hypernyms and instance hypernyms
	Gloss     string       // Definition text
}

// IsRoot reports whether the synset has no hypernyms.
func (s *Synset) IsRoot() bool {
	return len(s.Hypernyms) == 0
}

// WordSenses maps a lower-cased word form to its senses, most frequent first.
type WordSenses struct {
	Word   string
	Pos    PartOfSpeech
	Senses []ID
}

// NormalizeWord returns the lookup form of a word: lower case, with spaces
// collapsed into the '_' separator the lexicon uses for multiword lemmas.
func NormalizeWord(word string) string {
	return strings.Join(strings.Fields(strings.ToLower(word)), "_")
}
