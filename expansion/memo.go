package expansion

import (
	"reflect"

	"github.com/poiesic/expandit/lexicon"
)

// memoProvider caches sense lookups and pairwise similarity for the lifetime
// of one Expand call. It is not safe for concurrent use.
type memoProvider struct {
	inner  lexicon.SenseProvider
	senses map[string][]lexicon.Sense
	scores map[[2]lexicon.Sense]float64
}

var _ lexicon.SenseProvider = (*memoProvider)(nil)

func newMemoProvider(inner lexicon.SenseProvider) *memoProvider {
	return &memoProvider{
		inner:  inner,
		senses: make(map[string][]lexicon.Sense),
		scores: make(map[[2]lexicon.Sense]float64),
	}
}

func (m *memoProvider) Senses(word string) []lexicon.Sense {
	if cached, ok := m.senses[word]; ok {
		return cached
	}
	inner := m.inner.Senses(word)
	senses := make([]lexicon.Sense, len(inner))
	for i, s := range inner {
		senses[i] = &memoSense{Sense: s, memo: m}
	}
	m.senses[word] = senses
	return senses
}

// similarity is keyed on the senses themselves; IDs are not required to be
// unique across a provider. Similarity is symmetric, so either order hits.
func (m *memoProvider) similarity(a, b lexicon.Sense) float64 {
	if !comparableSense(a) || !comparableSense(b) {
		return a.Similarity(b)
	}
	if score, ok := m.scores[[2]lexicon.Sense{a, b}]; ok {
		return score
	}
	if score, ok := m.scores[[2]lexicon.Sense{b, a}]; ok {
		return score
	}
	score := a.Similarity(b)
	m.scores[[2]lexicon.Sense{a, b}] = score
	return score
}

// comparableSense reports whether s can be used as a map key.
func comparableSense(s lexicon.Sense) bool {
	return reflect.TypeOf(s).Comparable()
}

// memoSense routes Similarity through the owning memoProvider.
type memoSense struct {
	lexicon.Sense
	memo *memoProvider
}

func (s *memoSense) Similarity(other lexicon.Sense) float64 {
	o, ok := other.(*memoSense)
	if !ok || o.memo != s.memo {
		return s.Sense.Similarity(other)
	}
	return s.memo.similarity(s.Sense, o.Sense)
}

// unwrapSense returns the provider's own sense behind a cached one.
func unwrapSense(s lexicon.Sense) lexicon.Sense {
	if m, ok := s.(*memoSense); ok {
		return m.Sense
	}
	return s
}
