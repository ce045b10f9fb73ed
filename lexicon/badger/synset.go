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


package badger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/expandit/core"
	"github.com/poiesic/expandit/lexicon"
)

// SynsetRepository implements lexicon.SynsetRepository for BadgerDB.
type SynsetRepository struct {
	backend *Backend
}

var _ lexicon.SynsetRepository = (*SynsetRepository)(nil)

// NewSynsetRepository creates a new SynsetRepository.
func NewSynsetRepository(backend *Backend) (*SynsetRepository, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend required")
	}
	return &SynsetRepository{
		backend: backend,
	}, nil
}

// Close releases resources. SynsetRepository has no resources to release.
func (r *SynsetRepository) Close() error {
	return nil
}

// AddSynsets stores synsets and their part-of-speech index entries.
// Writes go through a write batch so a full lexicon import is not bounded
// by the transaction size limit.
func (r *SynsetRepository) AddSynsets(ctx context.Context, synsets ...*core.Synset) error {
	if r.backend.IsClosed() {
		return lexicon.ErrStorageClosed
	}
	for _, synset := range synsets {
		if err := core.ValidateSynset(synset); err != nil {
			return err
		}
	}

	batch := r.backend.NewWriteBatch()
	defer batch.Cancel()
	for _, synset := range synsets {
		if err := batch.Set(makeSynsetKey(synset.Id), lexicon.MarshalSynset(synset)); err != nil {
			return err
		}
		if err := batch.Set(makeSynsetPosKey(synset.Pos, synset.Id), lexicon.MarshalID(synset.Id)); err != nil {
			return err
		}
	}
	return batch.Flush()
}

// GetSynset retrieves a single synset by ID.
func (r *SynsetRepository) GetSynset(ctx context.Context, id core.ID) (*core.Synset, error) {
	var result *core.Synset
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readSynset(tx, makeSynsetKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return lexicon.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetSynsets retrieves multiple synsets by their IDs.
func (r *SynsetRepository) GetSynsets(ctx context.Context, ids ...core.ID) ([]*core.Synset, error) {
	var result []*core.Synset
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			synset, err := readSynset(tx, makeSynsetKey(id))
			if err != nil {
				return err
			}
			if synset != nil {
				result = append(result, synset)
			}
		}
		return nil
	}, false)
	return result, err
}

// PutWordSenses stores word index entries.
func (r *SynsetRepository) PutWordSenses(ctx context.Context, entries ...*core.WordSenses) error {
	if r.backend.IsClosed() {
		return lexicon.ErrStorageClosed
	}
	for _, entry := range entries {
		if err := core.ValidateWordSenses(entry); err != nil {
			return err
		}
	}

	batch := r.backend.NewWriteBatch()
	defer batch.Cancel()
	for _, entry := range entries {
		word := core.NormalizeWord(entry.Word)
		stored := *entry
		stored.Word = word
		if err := batch.Set(makeWordKey(word, entry.Pos), lexicon.MarshalWordSenses(&stored)); err != nil {
			return err
		}
	}
	return batch.Flush()
}

// GetWordSenses retrieves the index entry for a word.
func (r *SynsetRepository) GetWordSenses(ctx context.Context, word string, pos core.PartOfSpeech) (*core.WordSenses, error) {
	var result *core.WordSenses
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeWordKey(core.NormalizeWord(word), pos))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return lexicon.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			result, err = lexicon.UnmarshalWordSenses(val)
			return err
		})
	}, false)
	return result, err
}

// AllSynsets returns every stored synset of the given part of speech.
func (r *SynsetRepository) AllSynsets(ctx context.Context, pos core.PartOfSpeech) ([]*core.Synset, error) {
	var results []*core.Synset
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialSynsetPosKey(pos)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = lexicon.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			synset, err := readSynset(tx, makeSynsetKey(id))
			if err != nil {
				return err
			}
			if synset != nil {
				results = append(results, synset)
			}
		}
		return nil
	}, false)

	return results, err
}

// AllWordSenses returns every index entry of the given part of speech.
func (r *SynsetRepository) AllWordSenses(ctx context.Context, pos core.PartOfSpeech) ([]*core.WordSenses, error) {
	var results []*core.WordSenses
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialWordKey(pos)
		opts.PrefetchValues = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var entry *core.WordSenses
			err := iter.Item().Value(func(val []byte) error {
				var err error
				entry, err = lexicon.UnmarshalWordSenses(val)
				return err
			})
			if err != nil {
				return err
			}
			results = append(results, entry)
		}
		return nil
	}, false)

	return results, err
}

// Count returns the number of stored synsets and word index entries.
func (r *SynsetRepository) Count(ctx context.Context) (int, int, error) {
	var synsets, words int
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		synsets = countPrefix(tx, []byte(synsetPrefix+":"))
		words = countPrefix(tx, []byte(wordPrefix+":"))
		return nil
	}, false)
	return synsets, words, err
}

// Helper methods

// countPrefix counts keys under prefix without reading values.
func countPrefix(tx *badger.Txn, prefix []byte) int {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)
	defer iter.Close()

	count := 0
	for iter.Rewind(); iter.Valid(); iter.Next() {
		count++
	}
	return count
}

// readSynset reads a synset from the transaction.
func readSynset(tx *badger.Txn, key []byte) (*core.Synset, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var synset *core.Synset
	err = item.Value(func(val []byte) error {
		var err error
		synset, err = lexicon.UnmarshalSynset(val)
		return err
	})
	return synset, err
}
