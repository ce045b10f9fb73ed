package lexicon_test

import (
	"strings"
	"testing"

	"github.com/poiesic/expandit/core"
	"github.com/poiesic/expandit/lexicon"
	"github.com/poiesic/expandit/lexicon/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func senseByName(t *testing.T, taxonomy *lexicon.Taxonomy, name string) lexicon.Sense {
	t.Helper()
	sense, ok := taxonomy.Synset(mock.FixtureID(name))
	require.True(t, ok, "fixture synset %s missing", name)
	return sense
}

func TestTaxonomy_Senses(t *testing.T) {
	taxonomy := mock.NewFixtureTaxonomy()

	t.Run("ordered most frequent first", func(t *testing.T) {
		senses := taxonomy.Senses("apple")
		require.Len(t, senses, 2)
		assert.Equal(t, "apple.n.01", senses[0].Name())
		assert.Equal(t, "apple.n.02", senses[1].Name())
	})

	t.Run("lookup is case insensitive", func(t *testing.T) {
		senses := taxonomy.Senses("DNA")
		require.Len(t, senses, 1)
		assert.Equal(t, "dna.n.01", senses[0].Name())
	})

	t.Run("multiword lookup joins with underscore", func(t *testing.T) {
		senses := taxonomy.Senses("nucleic acid")
		require.Len(t, senses, 1)
		assert.Equal(t, "nucleic_acid.n.01", senses[0].Name())
	})

	t.Run("unknown word has no senses", func(t *testing.T) {
		assert.Empty(t, taxonomy.Senses("xyzzy"))
		assert.Empty(t, taxonomy.Senses(""))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		senses := taxonomy.Senses("apple")
		senses[0] = nil
		assert.NotNil(t, taxonomy.Senses("apple")[0])
	})

	t.Run("size", func(t *testing.T) {
		synsets, words := taxonomy.Size()
		assert.Equal(t, len(mock.FixtureSynsets()), synsets)
		assert.Equal(t, len(mock.FixtureWordSenses()), words)
	})
}

type suffixLemmatizer struct{}

func (suffixLemmatizer) Lemma(word string) string {
	return strings.TrimSuffix(word, "s")
}

func TestTaxonomy_LemmatizerFallback(t *testing.T) {
	t.Run("without lemmatizer plural is unknown", func(t *testing.T) {
		taxonomy := mock.NewFixtureTaxonomy()
		assert.Empty(t, taxonomy.Senses("apples"))
	})

	t.Run("with lemmatizer plural resolves", func(t *testing.T) {
		taxonomy := mock.NewFixtureTaxonomy(lexicon.WithLemmatizer(suffixLemmatizer{}))
		senses := taxonomy.Senses("apples")
		require.Len(t, senses, 2)
		assert.Equal(t, "apple.n.01", senses[0].Name())
	})

	t.Run("surface form wins over lemma", func(t *testing.T) {
		taxonomy := mock.NewFixtureTaxonomy(lexicon.WithLemmatizer(suffixLemmatizer{}))
		senses := taxonomy.Senses("produce")
		require.Len(t, senses, 1)
		assert.Equal(t, "produce.n.01", senses[0].Name())
	})
}

func TestTaxonomy_Similarity(t *testing.T) {
	taxonomy := mock.NewFixtureTaxonomy()

	tests := []struct {
		a, b string
		want float64
	}{
		{"apple.n.01", "pie.n.01", 8.0 / 13.0},
		{"apple.n.02", "pie.n.01", 4.0 / 15.0},
		{"apple.n.02", "tree.n.01", 16.0 / 17.0},
		{"apple.n.01", "tree.n.01", 4.0 / 15.0},
		{"dna.n.01", "acid.n.01", 10.0 / 12.0},
		{"energy.n.02", "apple.n.01", 2.0 / 11.0},
		{"apple.n.01", "apple.n.01", 1.0},
		{"ghost_word.n.01", "apple.n.01", 0},
		{"limbo.n.01", "entity.n.01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"~"+tt.b, func(t *testing.T) {
			a := senseByName(t, taxonomy, tt.a)
			b := senseByName(t, taxonomy, tt.b)
			assert.InDelta(t, tt.want, a.Similarity(b), 1e-9)
			assert.InDelta(t, tt.want, b.Similarity(a), 1e-9, "similarity must be symmetric")
		})
	}
}

func TestTaxonomy_SimilarityAcrossProviders(t *testing.T) {
	first := mock.NewFixtureTaxonomy()
	second := mock.NewFixtureTaxonomy()

	a := senseByName(t, first, "apple.n.01")
	b := senseByName(t, second, "apple.n.01")
	assert.Zero(t, a.Similarity(b))

	provider := mock.NewMockProvider()
	foreign := provider.AddSense("apple", "apple.n.01", "apple")
	assert.Zero(t, a.Similarity(foreign))
}

func TestTaxonomy_SenseAccessors(t *testing.T) {
	taxonomy := mock.NewFixtureTaxonomy()
	dna := senseByName(t, taxonomy, "dna.n.01")

	assert.Equal(t, mock.FixtureID("dna.n.01"), dna.ID())
	assert.Equal(t, []string{"deoxyribonucleic_acid", "desoxyribonucleic_acid", "DNA"}, dna.Lemmas())
	assert.Contains(t, dna.Definition(), "polymer")

	lemmas := dna.Lemmas()
	lemmas[0] = "mutated"
	assert.Equal(t, "deoxyribonucleic_acid", dna.Lemmas()[0])
}

func TestNewTaxonomy_MalformedInput(t *testing.T) {
	a := &core.Synset{Id: 1, Name: "a.n.01", Pos: core.Noun, Lemmas: []string{"a"}, Hypernyms: []core.ID{2}}
	b := &core.Synset{Id: 2, Name: "b.n.01", Pos: core.Noun, Lemmas: []string{"b"}, Hypernyms: []core.ID{1, 99}}
	entries := []*core.WordSenses{
		{Word: "alpha", Pos: core.Noun, Senses: []core.ID{1, 42}},
		{Word: "ghost", Pos: core.Noun, Senses: []core.ID{42}},
		nil,
	}

	taxonomy := lexicon.NewTaxonomy([]*core.Synset{a, b, nil}, entries)

	senses := taxonomy.Senses("alpha")
	require.Len(t, senses, 1, "unknown sense IDs are dropped")
	assert.Empty(t, taxonomy.Senses("ghost"))

	sa, _ := taxonomy.Synset(1)
	sb, _ := taxonomy.Synset(2)
	score := sa.Similarity(sb)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}
