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
	"log/slog"
	"slices"

	"github.com/poiesic/expandit/core"
)

// Taxonomy is an in-memory SenseProvider over a hypernym graph.
// It is immutable once NewTaxonomy returns.
type Taxonomy struct {
	nodes      map[core.ID]*node
	words      map[string][]*node
	lemmatizer Lemmatizer
	logger     *slog.Logger
}

var _ SenseProvider = (*Taxonomy)(nil)

type node struct {
	synset    *core.Synset
	hypernyms []*node
	minDepth  int
	maxDepth  int
	owner     *Taxonomy
}

// TaxonomyOption configures a Taxonomy.
type TaxonomyOption func(*Taxonomy)

// WithLemmatizer sets the fallback used when a surface form has no senses.
// Default is no fallback.
func WithLemmatizer(lemmatizer Lemmatizer) TaxonomyOption {
	return func(t *Taxonomy) {
		t.lemmatizer = lemmatizer
	}
}

// WithTaxonomyLogger sets a custom logger.
// Default is slog.Default().
func WithTaxonomyLogger(logger *slog.Logger) TaxonomyOption {
	return func(t *Taxonomy) {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
	}
}

// NewTaxonomy builds a Taxonomy from synsets and a word index.
// Hypernym links and index entries that point at unknown synsets are dropped.
func NewTaxonomy(synsets []*core.Synset, entries []*core.WordSenses, opts ...TaxonomyOption) *Taxonomy {
	t := &Taxonomy{
		nodes:  make(map[core.ID]*node, len(synsets)),
		words:  make(map[string][]*node, len(entries)),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}

	for _, s := range synsets {
		if s == nil {
			continue
		}
		t.nodes[s.Id] = &node{synset: s, owner: t, minDepth: -1, maxDepth: -1}
	}

	dangling := 0
	for _, n := range t.nodes {
		for _, h := range n.synset.Hypernyms {
			parent, ok := t.nodes[h]
			if !ok {
				dangling++
				continue
			}
			n.hypernyms = append(n.hypernyms, parent)
		}
	}
	if dangling > 0 {
		t.logger.Warn("dropped hypernym links to unknown synsets", "links", dangling)
	}

	for _, n := range t.nodes {
		t.computeDepths(n, make(map[core.ID]bool))
	}

	for _, entry := range entries {
		if entry == nil {
			continue
		}
		word := core.NormalizeWord(entry.Word)
		senses := make([]*node, 0, len(entry.Senses))
		for _, id := range entry.Senses {
			if n, ok := t.nodes[id]; ok {
				senses = append(senses, n)
			}
		}
		if len(senses) > 0 {
			t.words[word] = senses
		}
	}

	t.logger.Debug("taxonomy built", "synsets", len(t.nodes), "words", len(t.words))
	return t
}

// computeDepths fills minDepth and maxDepth for n and its ancestors.
// A hypernym already on the current path is ignored so malformed cyclic
// input terminates.
func (t *Taxonomy) computeDepths(n *node, onPath map[core.ID]bool) {
	if n.maxDepth >= 0 {
		return
	}
	onPath[n.synset.Id] = true
	minDepth, maxDepth := -1, -1
	for _, h := range n.hypernyms {
		if onPath[h.synset.Id] {
			continue
		}
		t.computeDepths(h, onPath)
		if minDepth < 0 || h.minDepth+1 < minDepth {
			minDepth = h.minDepth + 1
		}
		if h.maxDepth+1 > maxDepth {
			maxDepth = h.maxDepth + 1
		}
	}
	delete(onPath, n.synset.Id)
	if maxDepth < 0 {
		minDepth, maxDepth = 0, 0
	}
	n.minDepth, n.maxDepth = minDepth, maxDepth
}

// Senses returns the senses of word, most frequent first.
func (t *Taxonomy) Senses(word string) []Sense {
	key := core.NormalizeWord(word)
	nodes := t.words[key]
	if len(nodes) == 0 && t.lemmatizer != nil {
		if lemma := core.NormalizeWord(t.lemmatizer.Lemma(key)); lemma != key {
			nodes = t.words[lemma]
		}
	}
	senses := make([]Sense, len(nodes))
	for i, n := range nodes {
		senses[i] = n
	}
	return senses
}

// Synset returns the sense with the given ID, if present.
func (t *Taxonomy) Synset(id core.ID) (Sense, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, false
	}
	return n, true
}

// Size returns the number of synsets and indexed words.
func (t *Taxonomy) Size() (synsets int, words int) {
	return len(t.nodes), len(t.words)
}

func (n *node) ID() core.ID {
	return n.synset.Id
}

func (n *node) Name() string {
	return n.synset.Name
}

func (n *node) Lemmas() []string {
	return slices.Clone(n.synset.Lemmas)
}

func (n *node) Definition() string {
	return n.synset.Gloss
}

// Similarity returns the Wu-Palmer similarity of the two senses.
func (n *node) Similarity(other Sense) float64 {
	o, ok := other.(*node)
	if !ok || o.owner != n.owner {
		return 0
	}
	return wuPalmer(n, o)
}

// hypernymDistances returns the shortest path length from n to each of its
// ancestors, including n itself at distance 0.
func (n *node) hypernymDistances() map[*node]int {
	distances := map[*node]int{n: 0}
	frontier := []*node{n}
	for depth := 1; len(frontier) > 0; depth++ {
		var next []*node
		for _, f := range frontier {
			for _, h := range f.hypernyms {
				if _, seen := distances[h]; seen {
					continue
				}
				distances[h] = depth
				next = append(next, h)
			}
		}
		frontier = next
	}
	return distances
}

func wuPalmer(a, b *node) float64 {
	da := a.hypernymDistances()
	db := b.hypernymDistances()

	var subsumer *node
	for candidate := range da {
		if _, ok := db[candidate]; !ok {
			continue
		}
		if subsumer == nil ||
			candidate.minDepth > subsumer.minDepth ||
			(candidate.minDepth == subsumer.minDepth && lessByName(candidate, subsumer)) {
			subsumer = candidate
		}
	}
	if subsumer == nil {
		return 0
	}

	depth := subsumer.maxDepth + 1
	len1 := da[subsumer] + depth
	len2 := db[subsumer] + depth
	return 2.0 * float64(depth) / float64(len1+len2)
}

func lessByName(a, b *node) bool {
	if a.synset.Name != b.synset.Name {
		return a.synset.Name < b.synset.Name
	}
	return a.synset.Id < b.synset.Id
}
