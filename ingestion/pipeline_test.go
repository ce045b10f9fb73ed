package ingestion

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/expandit/core"
	"github.com/poiesic/expandit/expansion"
	"github.com/poiesic/expandit/lexicon"
	"github.com/poiesic/expandit/lexicon/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLicense = `  1 This software and database is being provided to you, the LICENSEE, by
  2 Princeton University under the following license.
`

const testIndex = testLicense + `apple n 2 1 @ 2 1 07739125 12633994
eating_apple n 1 1 @ 1 0 07739125
entity n 1 1 ~ 1 0 00001740
jobs n 1 1 @i 1 0 11089892
object n 1 2 @ ~ 1 0 00002684
orchard_apple_tree n 1 1 @ 1 0 12633994
`

const testData = testLicense + `00001740 03 n 01 entity 0 001 ~ 00002684 n 0000 | that which is perceived or known or inferred to have its own distinct existence
00002684 03 n 02 object 0 physical_object 0 002 @ 00001740 n 0000 ~ 07739125 n 0000 | a tangible and visible entity
07739125 13 n 02 apple 0 eating_apple 0 001 @ 00002684 n 0000 | fruit with red or yellow or green skin
11089892 18 n 01 Jobs 0 001 @i 00002684 n 0000 | United States computer designer
12633994 20 n 02 apple 0 orchard_apple_tree 0 001 @ 00002684 n 0000 | native Eurasian tree
`

func newTestRepository(t *testing.T) lexicon.SynsetRepository {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func newTestPipeline(t *testing.T, repo lexicon.SynsetRepository, opts ...Option) *Pipeline {
	t.Helper()
	pipeline, err := NewPipeline(repo, opts...)
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)
	return pipeline
}

func TestNewPipeline(t *testing.T) {
	repo := newTestRepository(t)

	t.Run("valid configuration", func(t *testing.T) {
		pipeline, err := NewPipeline(repo)
		require.NoError(t, err)
		defer pipeline.Release()
		assert.Equal(t, defaultBatchSize, pipeline.batchSize)
		assert.Equal(t, core.Noun, pipeline.pos)
	})

	t.Run("with options", func(t *testing.T) {
		pipeline, err := NewPipeline(repo,
			WithPoolSize(0),
			WithBatchSize(10),
			WithPartOfSpeech(core.Verb),
			WithLogger(nil),
		)
		require.NoError(t, err)
		defer pipeline.Release()
		assert.Equal(t, 1, pipeline.pool.Cap())
		assert.Equal(t, 10, pipeline.batchSize)
		assert.Equal(t, core.Verb, pipeline.pos)
		assert.NotNil(t, pipeline.logger)
	})

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewPipeline(nil)
		assert.Equal(t, ErrRepositoryRequired, err)
	})

	t.Run("invalid batch size", func(t *testing.T) {
		_, err := NewPipeline(repo, WithBatchSize(0))
		assert.Equal(t, ErrInvalidBatchSize, err)
	})

	t.Run("invalid part of speech", func(t *testing.T) {
		_, err := NewPipeline(repo, WithPartOfSpeech('x'))
		assert.ErrorIs(t, err, core.ErrInvalidPartOfSpeech)
	})
}

func TestPipeline_Import(t *testing.T) {
	repo := newTestRepository(t)
	pipeline := newTestPipeline(t, repo, WithPoolSize(2), WithBatchSize(2))
	ctx := context.Background()

	stats, err := pipeline.Import(ctx, strings.NewReader(testIndex), strings.NewReader(testData))
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Synsets)
	assert.Equal(t, 6, stats.Words)

	synsets, words, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, synsets)
	assert.Equal(t, 6, words)

	t.Run("sense order follows index", func(t *testing.T) {
		entry, err := repo.GetWordSenses(ctx, "apple", core.Noun)
		require.NoError(t, err)
		assert.Equal(t, []core.ID{
			core.SynsetID(core.Noun, "07739125"),
			core.SynsetID(core.Noun, "12633994"),
		}, entry.Senses)
	})

	t.Run("synsets named by sense number", func(t *testing.T) {
		first, err := repo.GetSynset(ctx, core.SynsetID(core.Noun, "07739125"))
		require.NoError(t, err)
		assert.Equal(t, "apple.n.01", first.Name)
		assert.Equal(t, []string{"apple", "eating_apple"}, first.Lemmas)
		assert.Equal(t, "fruit with red or yellow or green skin", first.Gloss)

		second, err := repo.GetSynset(ctx, core.SynsetID(core.Noun, "12633994"))
		require.NoError(t, err)
		assert.Equal(t, "apple.n.02", second.Name)
		assert.Equal(t, []core.ID{core.SynsetID(core.Noun, "00002684")}, second.Hypernyms)
	})

	t.Run("instance hypernyms kept", func(t *testing.T) {
		jobs, err := repo.GetSynset(ctx, core.SynsetID(core.Noun, "11089892"))
		require.NoError(t, err)
		assert.Equal(t, "jobs.n.01", jobs.Name)
		assert.Equal(t, []core.ID{core.SynsetID(core.Noun, "00002684")}, jobs.Hypernyms)
	})

	t.Run("loads into a working taxonomy", func(t *testing.T) {
		taxonomy, err := lexicon.Load(ctx, repo)
		require.NoError(t, err)

		senses := taxonomy.Senses("apple")
		require.Len(t, senses, 2)
		assert.Equal(t, "apple.n.01", senses[0].Name())
		assert.InDelta(t, 2.0/3.0, senses[0].Similarity(senses[1]), 1e-9)

		expander, err := expansion.NewExpander(taxonomy)
		require.NoError(t, err)
		result, err := expander.Expand("apple")
		require.NoError(t, err)
		assert.Equal(t, []string{"eating"}, result.Terms)
	})
}

func TestPipeline_ImportMalformed(t *testing.T) {
	ctx := context.Background()

	t.Run("bad index line", func(t *testing.T) {
		pipeline := newTestPipeline(t, newTestRepository(t))
		_, err := pipeline.Import(ctx, strings.NewReader("apple n 2\n"), strings.NewReader(testData))
		assert.ErrorIs(t, err, ErrMalformedIndexLine)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("bad data line", func(t *testing.T) {
		repo := newTestRepository(t)
		pipeline := newTestPipeline(t, repo, WithBatchSize(1))
		data := testData + "99999999 03 n 00 000 | broken\n"
		_, err := pipeline.Import(ctx, strings.NewReader(testIndex), strings.NewReader(data))
		assert.ErrorIs(t, err, ErrMalformedDataLine)

		_, words, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, words)
	})
}

func TestPipeline_ImportCancelled(t *testing.T) {
	pipeline := newTestPipeline(t, newTestRepository(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.Import(ctx, strings.NewReader(testIndex), strings.NewReader(testData))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPipeline_ImportDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.noun"), []byte(testIndex), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.noun"), []byte(testData), 0o644))

	t.Run("reads noun files", func(t *testing.T) {
		repo := newTestRepository(t)
		var progress bytes.Buffer
		pipeline := newTestPipeline(t, repo, WithProgress(&progress, 2))

		stats, err := pipeline.ImportDir(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, 5, stats.Synsets)
		assert.Contains(t, progress.String(), "5/5 (100.0%)")
	})

	t.Run("missing files", func(t *testing.T) {
		pipeline := newTestPipeline(t, newTestRepository(t), WithPartOfSpeech(core.Verb))
		_, err := pipeline.ImportDir(context.Background(), dir)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
