package expansion

import (
	"strings"
	"unicode/utf8"

	"github.com/poiesic/expandit/lexicon"
)

const minTermLength = 3

var lemmaSeparators = strings.NewReplacer("_", " ", "-", " ")

// splitLemma cleans one lemma into candidate terms: lower-case it, cut every
// occurrence of word, turn underscores and hyphens into spaces and split.
// Substring removal is deliberate, "orchard_apple_tree" minus "apple"
// yields "orchard" and "tree".
func splitLemma(lemma, word string) []string {
	cleaned := strings.ToLower(lemma)
	if w := strings.ToLower(word); w != "" {
		cleaned = strings.ReplaceAll(cleaned, w, "")
	}
	cleaned = lemmaSeparators.Replace(cleaned)
	return strings.Fields(cleaned)
}

// termCollector accumulates expansion terms across the content tokens of
// one query, in discovery order.
type termCollector struct {
	terms   []string
	seen    map[string]struct{}
	exclude map[string]struct{}
}

// newTermCollector returns a collector that never emits a term equal,
// ignoring case, to one of content.
func newTermCollector(content []string) *termCollector {
	exclude := make(map[string]struct{}, len(content))
	for _, t := range content {
		exclude[strings.ToLower(t)] = struct{}{}
	}
	return &termCollector{
		seen:    make(map[string]struct{}),
		exclude: exclude,
	}
}

// add normalizes the lemmas of sense, chosen for word, and appends the new
// terms. At most limit terms are added when limit > 0. It returns the terms
// added by this call.
func (c *termCollector) add(sense lexicon.Sense, word string, limit int) []string {
	start := len(c.terms)
	for _, lemma := range sense.Lemmas() {
		for _, term := range splitLemma(lemma, word) {
			if limit > 0 && len(c.terms)-start >= limit {
				return c.terms[start:]
			}
			if utf8.RuneCountInString(term) < minTermLength {
				continue
			}
			if _, dup := c.seen[term]; dup {
				continue
			}
			if _, ok := c.exclude[strings.ToLower(term)]; ok {
				continue
			}
			c.seen[term] = struct{}{}
			c.terms = append(c.terms, term)
		}
	}
	return c.terms[start:]
}
