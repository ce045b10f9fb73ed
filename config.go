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
	"errors"
	"runtime"
	"strings"

	"github.com/poiesic/expandit/expansion"
)

// Disambiguation method names accepted by Config.
const (
	MethodSimilarity = "similarity"
	MethodOverlap    = "overlap"
)

// Config holds configuration for an Engine.
type Config struct {
	// Path is the directory of the BadgerDB lexicon.
	// Required unless InMemory is set.
	Path string

	// InMemory keeps the lexicon in memory only. Useful for tests.
	InMemory bool

	// ReadOnly opens an existing lexicon without write access.
	ReadOnly bool

	// Morphology enables dictionary-form fallback for words with no senses,
	// so "balloons" finds the senses of "balloon".
	// Default: true
	Morphology bool

	// Workers is the pool size used by ExpandAll.
	// Default: runtime.NumCPU()
	Workers int

	// Method selects the disambiguator: "similarity" or "overlap".
	// Default: "similarity"
	Method string

	// MaxSynonymsPerWord caps the terms added per query word. 0 is uncapped.
	// Default: 0
	MaxSynonymsPerWord int

	// MaxTokens is the ceiling on content words per query. 0 disables it.
	// Default: 64
	MaxTokens int

	// Truncate keeps the first MaxTokens content words of an oversize query
	// instead of rejecting it.
	// Default: false
	Truncate bool
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithPath sets the lexicon directory.
func WithPath(path string) ConfigOption {
	return func(c *Config) {
		c.Path = path
	}
}

// WithInMemory keeps the lexicon in memory.
func WithInMemory(inMemory bool) ConfigOption {
	return func(c *Config) {
		c.InMemory = inMemory
	}
}

// WithReadOnly opens the lexicon read-only.
func WithReadOnly(readOnly bool) ConfigOption {
	return func(c *Config) {
		c.ReadOnly = readOnly
	}
}

// WithMorphology toggles dictionary-form fallback.
func WithMorphology(enabled bool) ConfigOption {
	return func(c *Config) {
		c.Morphology = enabled
	}
}

// WithWorkers sets the ExpandAll pool size.
func WithWorkers(n int) ConfigOption {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithMethod sets the disambiguation method.
func WithMethod(method string) ConfigOption {
	return func(c *Config) {
		c.Method = method
	}
}

// WithMaxSynonymsPerWord sets the per-word term cap.
func WithMaxSynonymsPerWord(n int) ConfigOption {
	return func(c *Config) {
		c.MaxSynonymsPerWord = n
	}
}

// WithMaxTokens sets the content word ceiling.
func WithMaxTokens(n int) ConfigOption {
	return func(c *Config) {
		c.MaxTokens = n
	}
}

// WithTruncate makes oversize queries truncate instead of fail.
func WithTruncate(truncate bool) ConfigOption {
	return func(c *Config) {
		c.Truncate = truncate
	}
}

// DefaultConfig returns a Config with sensible defaults for a lexicon in ./lexicon.
func DefaultConfig() *Config {
	return &Config{
		Path:       "lexicon",
		Morphology: true,
		Workers:    runtime.NumCPU(),
		Method:     MethodSimilarity,
		MaxTokens:  expansion.DefaultMaxTokens,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithPath("/var/lib/expandit"),
//	    WithReadOnly(true),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize puts the configuration in canonical form.
func (c *Config) Normalize() {
	c.Path = strings.TrimSpace(c.Path)
	c.Method = strings.ToLower(strings.TrimSpace(c.Method))
	if c.Method == "" {
		c.Method = MethodSimilarity
	}
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration first.
func (c *Config) Validate() error {
	c.Normalize()

	if !c.InMemory && c.Path == "" {
		return errors.New("expandit config: Path is required")
	}
	if c.InMemory && c.ReadOnly {
		return errors.New("expandit config: InMemory and ReadOnly are exclusive")
	}
	if c.Workers < 1 {
		return errors.New("expandit config: Workers must be at least 1")
	}
	if c.Method != MethodSimilarity && c.Method != MethodOverlap {
		return errors.New("expandit config: Method must be \"similarity\" or \"overlap\"")
	}
	if c.MaxSynonymsPerWord < 0 {
		return errors.New("expandit config: MaxSynonymsPerWord must not be negative")
	}
	if c.MaxTokens < 0 {
		return errors.New("expandit config: MaxTokens must not be negative")
	}
	return nil
}

func (c *Config) expanderOptions() []expansion.Option {
	disambiguator := expansion.MaxSimilarity
	if c.Method == MethodOverlap {
		disambiguator = expansion.DefinitionOverlap
	}
	return []expansion.Option{
		expansion.WithDisambiguator(disambiguator),
		expansion.WithMaxSynonymsPerWord(c.MaxSynonymsPerWord),
		expansion.WithMaxTokens(c.MaxTokens),
		expansion.WithTruncation(c.Truncate),
	}
}
