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
	"context"
	"fmt"

	"github.com/poiesic/expandit/core"
)

// Load reads every noun synset and noun index entry from repo and builds a Taxonomy.
// Any failure, including an empty lexicon, is reported as ErrResourceUnavailable.
func Load(ctx context.Context, repo SynsetRepository, opts ...TaxonomyOption) (*Taxonomy, error) {
	if repo == nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, ErrRepositoryRequired)
	}

	synsets, err := repo.AllSynsets(ctx, core.Noun)
	if err != nil {
		return nil, fmt.Errorf("%w: reading synsets: %w", ErrResourceUnavailable, err)
	}
	if len(synsets) == 0 {
		return nil, fmt.Errorf("%w: lexicon contains no noun synsets", ErrResourceUnavailable)
	}

	entries, err := repo.AllWordSenses(ctx, core.Noun)
	if err != nil {
		return nil, fmt.Errorf("%w: reading word index: %w", ErrResourceUnavailable, err)
	}

	return NewTaxonomy(synsets, entries, opts...), nil
}
