package ingestion

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/expandit/core"
	"github.com/poiesic/expandit/lexicon"
)

const (
	defaultBatchSize      = 500
	defaultReportInterval = 5000
	maxLineSize           = 1 << 20
)

// Pipeline orchestrates the import of a WordNet database into a repository.
// It decodes and stores data records concurrently.
type Pipeline struct {
	repository     lexicon.SynsetRepository
	pool           *ants.Pool
	batchSize      int
	pos            core.PartOfSpeech
	progress       io.Writer
	reportInterval int
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many data records each worker decodes and writes at once.
// Default is 500.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size <= 0 {
			return ErrInvalidBatchSize
		}
		p.batchSize = size
		return nil
	}
}

// WithPartOfSpeech selects which index/data file pair ImportDir reads.
// Default is core.Noun.
func WithPartOfSpeech(pos core.PartOfSpeech) Option {
	return func(p *Pipeline) error {
		if err := core.ValidatePartOfSpeech(pos); err != nil {
			return err
		}
		p.pos = pos
		return nil
	}
}

// WithProgress reports progress to w every interval records.
// Default is no progress output.
func WithProgress(w io.Writer, interval int) Option {
	return func(p *Pipeline) error {
		if interval <= 0 {
			interval = defaultReportInterval
		}
		p.progress = w
		p.reportInterval = interval
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new import pipeline.
func NewPipeline(repository lexicon.SynsetRepository, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	// Create pipeline with defaults
	p := &Pipeline{
		repository:     repository,
		pool:           pool,
		batchSize:      defaultBatchSize,
		pos:            core.Noun,
		reportInterval: defaultReportInterval,
		logger:         slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Stats summarizes a completed import.
type Stats struct {
	Synsets int
	Words   int
}

// ImportDir imports index.<pos> and data.<pos> from a WordNet dict directory.
func (p *Pipeline) ImportDir(ctx context.Context, dir string) (*Stats, error) {
	suffix := posFileSuffix(p.pos)

	index, err := os.Open(filepath.Join(dir, "index."+suffix))
	if err != nil {
		return nil, err
	}
	defer index.Close()

	data, err := os.Open(filepath.Join(dir, "data."+suffix))
	if err != nil {
		return nil, err
	}
	defer data.Close()

	return p.Import(ctx, index, data)
}

// Import reads an index file and a data file and stores their contents.
// Synsets are written before index entries so a reader never sees a word
// pointing at a synset that is not yet stored.
func (p *Pipeline) Import(ctx context.Context, index, data io.Reader) (*Stats, error) {
	entries, err := readIndex(index)
	if err != nil {
		return nil, err
	}
	p.logger.Info("read index", "entries", len(entries))

	senseNumbers := make(map[string]map[string]int, len(entries))
	for _, entry := range entries {
		numbers := make(map[string]int, len(entry.Offsets))
		for i, offset := range entry.Offsets {
			numbers[offset] = i + 1
		}
		senseNumbers[entry.Lemma] = numbers
	}

	lines, err := readDataLines(data)
	if err != nil {
		return nil, err
	}
	p.logger.Info("read data file", "records", len(lines))

	var tracker *ProgressTracker
	if p.progress != nil {
		tracker = NewProgressTracker(p.progress, len(lines), p.reportInterval)
		tracker.Start()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
	}

	for start := 0; start < len(lines); start += p.batchSize {
		if ctx.Err() != nil {
			break
		}
		end := min(start+p.batchSize, len(lines))
		batch := lines[start:end]

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			if err := p.storeBatch(ctx, batch, senseNumbers); err != nil {
				fail(err)
				return
			}
			if tracker != nil {
				tracker.Increment(len(batch))
			}
		})
		if submitErr != nil {
			wg.Done()
			fail(submitErr)
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		p.logger.Error("import failed", "err", firstErr)
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if tracker != nil {
		tracker.Finish()
	}

	words := make([]*core.WordSenses, 0, len(entries))
	for _, entry := range entries {
		ws := &core.WordSenses{Word: entry.Lemma, Pos: entry.Pos}
		for _, offset := range entry.Offsets {
			ws.Senses = append(ws.Senses, core.SynsetID(entry.Pos, offset))
		}
		words = append(words, ws)
	}
	if err := p.repository.PutWordSenses(ctx, words...); err != nil {
		return nil, fmt.Errorf("storing word index: %w", err)
	}

	stats := &Stats{Synsets: len(lines), Words: len(words)}
	p.logger.Info("import complete", "synsets", stats.Synsets, "words", stats.Words)
	return stats, nil
}

// storeBatch decodes, names and writes one batch of data lines.
func (p *Pipeline) storeBatch(ctx context.Context, lines []string, senseNumbers map[string]map[string]int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	synsets := make([]*core.Synset, 0, len(lines))
	for _, line := range lines {
		record, err := ParseDataLine(line)
		if err != nil {
			return err
		}
		synset := record.Synset
		synset.Name = synsetName(synset.Lemmas[0], synset.Pos, record.Offset, senseNumbers)
		synsets = append(synsets, synset)
	}

	if err := p.repository.AddSynsets(ctx, synsets...); err != nil {
		return fmt.Errorf("storing synsets: %w", err)
	}
	p.logger.Debug("stored synset batch", "synsets", len(synsets))
	return nil
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

func readIndex(r io.Reader) ([]*IndexEntry, error) {
	var entries []*IndexEntry
	err := scanLines(r, func(line string) error {
		entry, err := ParseIndexLine(line)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	return entries, err
}

func readDataLines(r io.Reader) ([]string, error) {
	var lines []string
	err := scanLines(r, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	return lines, err
}

// scanLines calls fn for every line outside the license header.
func scanLines(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if isLicenseLine(line) {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		return err
	}
	return nil
}

func posFileSuffix(pos core.PartOfSpeech) string {
	switch pos {
	case core.Verb:
		return "verb"
	case core.Adjective:
		return "adj"
	case core.Adverb:
		return "adv"
	}
	return "noun"
}
