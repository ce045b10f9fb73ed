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

package expandit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/expandit/expansion"
	"github.com/poiesic/expandit/ingestion"
	"github.com/poiesic/expandit/lexicon"
	"github.com/poiesic/expandit/lexicon/badger"
)

// ErrEngineClosed is returned by operations on a closed Engine.
var ErrEngineClosed = errors.New("engine closed")

// Engine serves query expansions from a lexicon stored in BadgerDB.
//
// The lexicon is read into memory on the first expansion and never reloaded,
// so imports must complete before the engine starts serving. An Engine is
// safe for concurrent use.
type Engine struct {
	config  *Config
	backend *badger.Backend
	repo    lexicon.SynsetRepository
	pool    *ants.Pool
	logger  *slog.Logger

	loadOnce sync.Once
	expander *expansion.Expander
	loadErr  error

	closed bool
	mu     sync.RWMutex
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewEngine opens the lexicon described by cfg. A nil cfg uses DefaultConfig().
func NewEngine(cfg *Config, opts ...EngineOption) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Open backend
	var (
		backend *badger.Backend
		err     error
	)
	if cfg.ReadOnly {
		backend, err = badger.OpenReadOnlyBackend(cfg.Path)
	} else {
		backend, err = badger.OpenBackend(cfg.Path, cfg.InMemory)
	}
	if err != nil {
		return nil, err
	}

	// Create synset repository
	repo, err := badger.NewSynsetRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	e := &Engine{
		config:  cfg,
		backend: backend,
		repo:    repo,
		pool:    pool,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Repository returns the lexicon repository.
func (e *Engine) Repository() lexicon.SynsetRepository {
	return e.repo
}

// NewImportPipeline creates a WordNet import pipeline writing into this engine's lexicon.
func (e *Engine) NewImportPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	opts = append([]ingestion.Option{ingestion.WithLogger(e.logger)}, opts...)
	return ingestion.NewPipeline(e.repo, opts...)
}

// load builds the in-memory taxonomy exactly once. The load is shared by
// every caller, so it ignores the cancellation of whichever caller runs it.
func (e *Engine) load(ctx context.Context) (*expansion.Expander, error) {
	e.loadOnce.Do(func() {
		var taxonomyOpts []lexicon.TaxonomyOption
		taxonomyOpts = append(taxonomyOpts, lexicon.WithTaxonomyLogger(e.logger))
		if e.config.Morphology {
			lemmatizer, err := lexicon.NewGolemLemmatizer()
			if err != nil {
				e.loadErr = err
				return
			}
			taxonomyOpts = append(taxonomyOpts, lexicon.WithLemmatizer(lemmatizer))
		}

		taxonomy, err := lexicon.Load(context.WithoutCancel(ctx), e.repo, taxonomyOpts...)
		if err != nil {
			e.loadErr = err
			return
		}
		synsets, words := taxonomy.Size()
		e.logger.Info("lexicon loaded", "synsets", synsets, "words", words)

		expanderOpts := append(e.config.expanderOptions(), expansion.WithLogger(e.logger))
		e.expander, e.loadErr = expansion.NewExpander(taxonomy, expanderOpts...)
	})
	if e.loadErr != nil {
		return nil, e.loadErr
	}
	return e.expander, nil
}

// Expand expands a single query. The first call loads the lexicon; a lexicon
// that cannot be loaded yields lexicon.ErrResourceUnavailable on every call.
func (e *Engine) Expand(ctx context.Context, query string) (*expansion.Expansion, error) {
	if err := e.checkOpen(); err != nil {
		return nil, err
	}
	expander, err := e.load(ctx)
	if err != nil {
		e.logger.Error("lexicon unavailable", "err", err)
		return nil, err
	}
	return expander.Expand(query)
}

// ExpandAll expands queries concurrently on the engine's worker pool.
// Results are in query order. A query that fails leaves a nil result and
// contributes to the joined error.
func (e *Engine) ExpandAll(ctx context.Context, queries []string) ([]*expansion.Expansion, error) {
	if err := e.checkOpen(); err != nil {
		return nil, err
	}
	expander, err := e.load(ctx)
	if err != nil {
		e.logger.Error("lexicon unavailable", "err", err)
		return nil, err
	}

	results := make([]*expansion.Expansion, len(queries))
	errs := make([]error, len(queries))

	var wg sync.WaitGroup
	for i, query := range queries {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		submitErr := e.pool.Submit(func() {
			defer wg.Done()
			result, err := expander.Expand(query)
			if err != nil {
				errs[i] = fmt.Errorf("query %d: %w", i, err)
				return
			}
			results[i] = result
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = fmt.Errorf("query %d: %w", i, submitErr)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, errors.Join(errs...)
}

// Close releases the worker pool and closes the lexicon.
// Calls after the first return ErrEngineClosed.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrEngineClosed
	}
	e.closed = true
	e.mu.Unlock()

	e.pool.Release()

	// Close repository
	if err := e.repo.Close(); err != nil {
		e.logger.Error("error closing synset repository", "err", err)
		return err
	}

	// Close backend
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (e *Engine) checkOpen() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return ErrEngineClosed
	}
	return nil
}

var (
	sharedOnce   sync.Once
	sharedEngine *Engine
	sharedErr    error
)

// Shared returns the process-wide Engine, creating it from cfg on the first
// call. Later calls ignore cfg and return the same engine or error.
func Shared(cfg *Config) (*Engine, error) {
	sharedOnce.Do(func() {
		sharedEngine, sharedErr = NewEngine(cfg)
	})
	return sharedEngine, sharedErr
}
