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


package ingestion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/poiesic/expandit/core"
)

// Pointer symbols that link a synset to its parents in the taxonomy.
const (
	hypernymPointer         = "@"
	instanceHypernymPointer = "@i"
)

// IndexEntry is one line of a WordNet index file.
type IndexEntry struct {
	Lemma   string
	Pos     core.PartOfSpeech
	Offsets []string // Synset offsets, most frequent sense first
}

// ParseIndexLine parses a line of the form
//
//	lemma pos synset_cnt p_cnt [ptr_symbol...] sense_cnt tagsense_cnt synset_offset [synset_offset...]
func ParseIndexLine(line string) (*IndexEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return nil, fmt.Errorf("%w: too few fields in %q", ErrMalformedIndexLine, line)
	}

	pos, err := parsePos(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedIndexLine, err)
	}

	synsetCount, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: synset count %q", ErrMalformedIndexLine, fields[2])
	}
	pointerCount, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: pointer count %q", ErrMalformedIndexLine, fields[3])
	}

	// Skip pointer symbols, sense_cnt and tagsense_cnt.
	start := 4 + pointerCount + 2
	if synsetCount < 0 || pointerCount < 0 || len(fields) != start+synsetCount {
		return nil, fmt.Errorf("%w: expected %d offsets in %q", ErrMalformedIndexLine, synsetCount, line)
	}

	return &IndexEntry{
		Lemma:   fields[0],
		Pos:     pos,
		Offsets: fields[start:],
	}, nil
}

// DataRecord is one line of a WordNet data file before naming.
type DataRecord struct {
	Offset string
	Synset *core.Synset
}

// ParseDataLine parses a line of the form
//
//	synset_offset lex_filenum ss_type w_cnt word lex_id [word lex_id...] p_cnt [ptr...] [frames...] | gloss
//
// The returned synset has no Name; see Pipeline for naming.
func ParseDataLine(line string) (*DataRecord, error) {
	body, gloss, _ := strings.Cut(line, "|")
	fields := strings.Fields(body)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: too few fields", ErrMalformedDataLine)
	}

	offset := fields[0]
	pos, err := parsePos(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: offset %s: %w", ErrMalformedDataLine, offset, err)
	}

	wordCount, err := strconv.ParseInt(fields[3], 16, 32)
	if err != nil || wordCount < 1 {
		return nil, fmt.Errorf("%w: offset %s: word count %q", ErrMalformedDataLine, offset, fields[3])
	}

	i := 4
	if len(fields) < i+2*int(wordCount)+1 {
		return nil, fmt.Errorf("%w: offset %s: truncated word list", ErrMalformedDataLine, offset)
	}
	lemmas := make([]string, 0, wordCount)
	for w := 0; w < int(wordCount); w++ {
		lemmas = append(lemmas, stripMarker(fields[i]))
		i += 2 // word, lex_id
	}

	pointerCount, err := strconv.Atoi(fields[i])
	if err != nil {
		return nil, fmt.Errorf("%w: offset %s: pointer count %q", ErrMalformedDataLine, offset, fields[i])
	}
	i++
	if len(fields) < i+4*pointerCount {
		return nil, fmt.Errorf("%w: offset %s: truncated pointer list", ErrMalformedDataLine, offset)
	}

	var hypernyms []core.ID
	for p := 0; p < pointerCount; p++ {
		symbol, target, targetPos := fields[i], fields[i+1], fields[i+2]
		i += 4 // symbol, offset, pos, source/target
		if symbol != hypernymPointer && symbol != instanceHypernymPointer {
			continue
		}
		tp, err := parsePos(targetPos)
		if err != nil {
			return nil, fmt.Errorf("%w: offset %s: %w", ErrMalformedDataLine, offset, err)
		}
		hypernyms = append(hypernyms, core.SynsetID(tp, target))
	}

	return &DataRecord{
		Offset: offset,
		Synset: &core.Synset{
			Id:        core.SynsetID(pos, offset),
			Pos:       pos,
			Lemmas:    lemmas,
			Hypernyms: hypernyms,
			Gloss:     strings.TrimSpace(gloss),
		},
	}, nil
}

// isLicenseLine reports whether a line belongs to the license header that
// opens every WordNet database file.
func isLicenseLine(line string) bool {
	return strings.HasPrefix(line, " ") || strings.TrimSpace(line) == ""
}

// parsePos maps a WordNet part-of-speech letter, treating adjective
// satellites as adjectives.
func parsePos(s string) (core.PartOfSpeech, error) {
	if s == "s" {
		return core.Adjective, nil
	}
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidPartOfSpeech, s)
	}
	pos := core.PartOfSpeech(s[0])
	if err := core.ValidatePartOfSpeech(pos); err != nil {
		return 0, err
	}
	return pos, nil
}

// stripMarker removes the syntactic marker WordNet appends to some
// adjective lemmas, e.g. "galore(ip)".
func stripMarker(word string) string {
	if i := strings.IndexByte(word, '('); i > 0 && strings.HasSuffix(word, ")") {
		return word[:i]
	}
	return word
}

// synsetName builds "<lemma>.<pos>.<NN>" where NN is the 1-based position
// of offset among lemma's senses, or 0 when the index does not list it.
func synsetName(lemma string, pos core.PartOfSpeech, offset string, senseNumbers map[string]map[string]int) string {
	key := strings.ToLower(lemma)
	return fmt.Sprintf("%s.%c.%02d", key, rune(pos), senseNumbers[key][offset])
}
