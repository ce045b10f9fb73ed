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

package expansion

import (
	"fmt"
	"log/slog"

	"github.com/poiesic/expandit/lexicon"
)

// DefaultMaxTokens is the default ceiling on content tokens per query.
const DefaultMaxTokens = 64

// Expansion is the outcome of expanding one query.
type Expansion struct {
	// Query is the text as given.
	Query string
	// Expanded is the boolean expression to hand to the search engine.
	Expanded string
	// Tokens are the content tokens that took part in disambiguation.
	Tokens []string
	// Terms are the added expansion terms in discovery order.
	Terms []string
	// Senses holds one entry per distinct known content token.
	Senses []Result
}

// Expander turns queries into expanded boolean expressions.
type Expander struct {
	provider     lexicon.SenseProvider
	disambiguate Disambiguator
	tokenizer    Tokenizer
	stoplist     Stoplist
	maxSynonyms  int
	maxTokens    int
	truncate     bool
	memoize      bool
	logger       *slog.Logger
}

// Option configures an Expander.
type Option func(*Expander) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Expander) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithDisambiguator sets the sense selection strategy.
// Default is MaxSimilarity. nil restores the default.
func WithDisambiguator(d Disambiguator) Option {
	return func(e *Expander) error {
		if d == nil {
			d = MaxSimilarity
		}
		e.disambiguate = d
		return nil
	}
}

// WithTokenizer sets the query tokenizer.
// Default is NewWordTokenizer(). nil restores the default.
func WithTokenizer(t Tokenizer) Option {
	return func(e *Expander) error {
		if t == nil {
			t = NewWordTokenizer()
		}
		e.tokenizer = t
		return nil
	}
}

// WithStoplist sets the stopword list.
// Default is EnglishStoplist(). nil restores the default.
func WithStoplist(s Stoplist) Option {
	return func(e *Expander) error {
		if s == nil {
			s = EnglishStoplist()
		}
		e.stoplist = s
		return nil
	}
}

// WithMaxSynonymsPerWord caps the terms contributed by each content token.
// Default is 0, meaning uncapped.
func WithMaxSynonymsPerWord(n int) Option {
	return func(e *Expander) error {
		if n < 0 {
			return ErrInvalidMaxSynonyms
		}
		e.maxSynonyms = n
		return nil
	}
}

// WithMaxTokens sets the ceiling on content tokens per query.
// Disambiguation cost grows quadratically with this number.
// Default is DefaultMaxTokens. 0 disables the ceiling.
func WithMaxTokens(n int) Option {
	return func(e *Expander) error {
		if n < 0 {
			return ErrInvalidMaxTokens
		}
		e.maxTokens = n
		return nil
	}
}

// WithTruncation makes oversize queries keep their first content tokens
// instead of failing with ErrQueryTooLong.
// Default is false.
func WithTruncation(enabled bool) Option {
	return func(e *Expander) error {
		e.truncate = enabled
		return nil
	}
}

// WithMemoization toggles per-call caching of sense lookups and similarity.
// Results are identical either way.
// Default is true.
func WithMemoization(enabled bool) Option {
	return func(e *Expander) error {
		e.memoize = enabled
		return nil
	}
}

// NewExpander creates an expander over provider.
func NewExpander(provider lexicon.SenseProvider, opts ...Option) (*Expander, error) {
	if provider == nil {
		return nil, ErrSenseProviderRequired
	}

	e := &Expander{
		provider:     provider,
		disambiguate: MaxSimilarity,
		tokenizer:    NewWordTokenizer(),
		stoplist:     EnglishStoplist(),
		maxTokens:    DefaultMaxTokens,
		memoize:      true,
		logger:       slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Expand expands query. Unknown words contribute nothing; an empty or
// all-stopword query comes back unchanged with no terms.
func (e *Expander) Expand(query string) (*Expansion, error) {
	return e.ExpandWithMonitor(query, nil)
}

// ExpandWithMonitor expands query with monitoring.
// The monitor receives callbacks at each stage of the expansion process.
func (e *Expander) ExpandWithMonitor(query string, monitor Monitor) (*Expansion, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	tokens := e.tokenizer.Tokenize(query)
	monitor.AfterTokenize(tokens)

	content := FilterStopwords(e.stoplist, tokens)
	monitor.AfterStoplist(content)

	// Dropped tokens stay excluded from the terms.
	collector := newTermCollector(content)

	if e.maxTokens > 0 && len(content) > e.maxTokens {
		if !e.truncate {
			e.logger.Warn("rejecting oversize query", "tokens", len(content), "max", e.maxTokens)
			return nil, fmt.Errorf("%w: %d > %d", ErrQueryTooLong, len(content), e.maxTokens)
		}
		monitor.Truncated(content[e.maxTokens:])
		e.logger.Debug("truncating oversize query", "tokens", len(content), "max", e.maxTokens)
		content = content[:e.maxTokens]
	}

	var provider lexicon.SenseProvider = e.provider
	if e.memoize {
		provider = newMemoProvider(e.provider)
	}

	expansion := &Expansion{
		Query:  query,
		Tokens: content,
		Terms:  []string{},
	}

	done := make(map[string]struct{}, len(content))
	for _, token := range content {
		if _, ok := done[token]; ok {
			continue
		}
		done[token] = struct{}{}

		result := e.disambiguate(provider, content, token)
		if result == nil || result.Sense == nil {
			monitor.UnknownToken(token)
			e.logger.Debug("no senses for token", "token", token)
			continue
		}
		result.Sense = unwrapSense(result.Sense)
		monitor.Disambiguated(*result)
		e.logger.Debug("disambiguated token", "token", token, "sense", result.Sense.Name(), "score", result.Score)

		terms := collector.add(result.Sense, token, e.maxSynonyms)
		monitor.AfterNormalize(token, terms)

		expansion.Senses = append(expansion.Senses, *result)
	}

	expansion.Terms = append(expansion.Terms, collector.terms...)
	expansion.Expanded = Assemble(query, expansion.Terms)

	monitor.Finish(expansion)
	return expansion, nil
}
