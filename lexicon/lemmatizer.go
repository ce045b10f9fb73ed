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
	"fmt"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

var (
	golemLemmatizer *golem.Lemmatizer
	golemErr        error
	golemOnce       sync.Once
)

// GolemLemmatizer reduces English inflections with the golem dictionary.
type GolemLemmatizer struct {
	lemmatizer *golem.Lemmatizer
}

var _ Lemmatizer = (*GolemLemmatizer)(nil)

// NewGolemLemmatizer returns a lemmatizer backed by the shared English
// dictionary, which is loaded on first use only.
func NewGolemLemmatizer() (*GolemLemmatizer, error) {
	golemOnce.Do(func() {
		golemLemmatizer, golemErr = golem.New(en.New())
	})
	if golemErr != nil {
		return nil, fmt.Errorf("%w: loading english dictionary: %w", ErrResourceUnavailable, golemErr)
	}
	return &GolemLemmatizer{lemmatizer: golemLemmatizer}, nil
}

// Lemma returns the dictionary form of word, or word itself when unknown.
func (g *GolemLemmatizer) Lemma(word string) string {
	return g.lemmatizer.Lemma(word)
}
