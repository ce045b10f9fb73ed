package badger

import (
	"fmt"

	"github.com/poiesic/expandit/core"
)

// Key prefixes for different data types
const (
	synsetPrefix    = "synset"
	synsetPosPrefix = "synpos"
	wordPrefix      = "wrdsen"
)

// makeSynsetKey generates a key for a synset by ID.
func makeSynsetKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", synsetPrefix, id))
}

// makeSynsetPosKey generates a key for the part-of-speech index.
// Format: prefix:pos:id
func makeSynsetPosKey(pos core.PartOfSpeech, id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%c:%d", synsetPosPrefix, rune(pos), id))
}

// makePartialSynsetPosKey generates a partial key for part-of-speech scans.
// Format: prefix:pos:
func makePartialSynsetPosKey(pos core.PartOfSpeech) []byte {
	return []byte(fmt.Sprintf("%s:%c:", synsetPosPrefix, rune(pos)))
}

// makeWordKey generates a key for a word index entry.
// Format: prefix:pos:word
func makeWordKey(word string, pos core.PartOfSpeech) []byte {
	return []byte(fmt.Sprintf("%s:%c:%s", wordPrefix, rune(pos), word))
}

// makePartialWordKey generates a partial key for word index scans.
// Format: prefix:pos:
func makePartialWordKey(pos core.PartOfSpeech) []byte {
	return []byte(fmt.Sprintf("%s:%c:", wordPrefix, rune(pos)))
}
