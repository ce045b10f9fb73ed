package mock

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/poiesic/expandit/core"
	"github.com/poiesic/expandit/lexicon"
)

// MockProvider is a test double for lexicon.SenseProvider.
// It allows custom behavior injection via function fields.
type MockProvider struct {
	// SensesFunc is called by Senses if set.
	// If nil, returns the senses declared with AddSense.
	SensesFunc func(word string) []lexicon.Sense

	mu              sync.RWMutex
	senses          map[string][]lexicon.Sense
	scores          map[[2]string]float64
	sensesCalls     atomic.Int64
	similarityCalls atomic.Int64
}

var _ lexicon.SenseProvider = (*MockProvider)(nil)

// NewMockProvider creates a mock provider with no words.
// Note: Returns concrete type to allow test assertions on call counts.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		senses: make(map[string][]lexicon.Sense),
		scores: make(map[[2]string]float64),
	}
}

// AddSense appends a sense named name to word's sense list.
// Senses are returned in the order they were added.
func (m *MockProvider) AddSense(word, name string, lemmas ...string) *MockSense {
	m.mu.Lock()
	defer m.mu.Unlock()

	sense := &MockSense{
		provider: m,
		name:     name,
		lemmas:   lemmas,
	}
	key := core.NormalizeWord(word)
	m.senses[key] = append(m.senses[key], sense)
	return sense
}

// SetSimilarity declares the symmetric similarity of two sense names.
func (m *MockProvider) SetSimilarity(a, b string, score float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.scores[[2]string{a, b}] = score
	m.scores[[2]string{b, a}] = score
}

// Senses returns the senses declared for word.
func (m *MockProvider) Senses(word string) []lexicon.Sense {
	m.sensesCalls.Add(1)

	if m.SensesFunc != nil {
		return m.SensesFunc(word)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.senses[core.NormalizeWord(word)])
}

// SensesCalls returns the number of Senses lookups.
func (m *MockProvider) SensesCalls() int {
	return int(m.sensesCalls.Load())
}

// SimilarityCalls returns the number of similarity evaluations.
func (m *MockProvider) SimilarityCalls() int {
	return int(m.similarityCalls.Load())
}

// Reset clears call counts and the SensesFunc override.
func (m *MockProvider) Reset() {
	m.sensesCalls.Store(0)
	m.similarityCalls.Store(0)
	m.SensesFunc = nil
}

func (m *MockProvider) score(a, b string) float64 {
	m.similarityCalls.Add(1)
	if a == b {
		return 1.0
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scores[[2]string{a, b}]
}

// MockSense is a lexicon.Sense declared on a MockProvider.
type MockSense struct {
	provider *MockProvider
	name     string
	lemmas   []string
	gloss    string
}

var _ lexicon.Sense = (*MockSense)(nil)

// WithGloss sets the definition text and returns the sense for chaining.
func (s *MockSense) WithGloss(gloss string) *MockSense {
	s.gloss = gloss
	return s
}

func (s *MockSense) ID() core.ID {
	return core.IDFromContent(s.name)
}

func (s *MockSense) Name() string {
	return s.name
}

// Similarity returns the declared score, or 0 for senses of another provider.
func (s *MockSense) Similarity(other lexicon.Sense) float64 {
	o, ok := other.(*MockSense)
	if !ok || o.provider != s.provider {
		return 0
	}
	return s.provider.score(s.name, o.name)
}

func (s *MockSense) Lemmas() []string {
	return slices.Clone(s.lemmas)
}

func (s *MockSense) Definition() string {
	return s.gloss
}
