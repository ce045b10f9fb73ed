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

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/expandit/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	v, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return core.ID(v), nil
}

// MarshalSynset serializes a Synset to bytes.
func MarshalSynset(synset *core.Synset) []byte {
	size := varint.Uint64.Size(uint64(synset.Id)) +
		ord.String.Size(synset.Name) +
		varint.Uint8.Size(uint8(synset.Pos)) +
		sizeStrings(synset.Lemmas) +
		sizeIDs(synset.Hypernyms) +
		ord.String.Size(synset.Gloss)

	buf := make([]byte, size)
	n := varint.Uint64.Marshal(uint64(synset.Id), buf)
	n += ord.String.Marshal(synset.Name, buf[n:])
	n += varint.Uint8.Marshal(uint8(synset.Pos), buf[n:])
	n += marshalStrings(synset.Lemmas, buf[n:])
	n += marshalIDs(synset.Hypernyms, buf[n:])
	ord.String.Marshal(synset.Gloss, buf[n:])
	return buf
}

// UnmarshalSynset deserializes a Synset from bytes.
func UnmarshalSynset(data []byte) (*core.Synset, error) {
	var (
		synset core.Synset
		n, m   int
		err    error
	)

	id, m, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return nil, wrapDecodeError(err)
	}
	synset.Id = core.ID(id)
	n += m

	if synset.Name, m, err = ord.String.Unmarshal(data[n:]); err != nil {
		return nil, wrapDecodeError(err)
	}
	n += m

	pos, m, err := varint.Uint8.Unmarshal(data[n:])
	if err != nil {
		return nil, wrapDecodeError(err)
	}
	synset.Pos = core.PartOfSpeech(pos)
	n += m

	if synset.Lemmas, m, err = unmarshalStrings(data[n:]); err != nil {
		return nil, err
	}
	n += m

	if synset.Hypernyms, m, err = unmarshalIDs(data[n:]); err != nil {
		return nil, err
	}
	n += m

	if synset.Gloss, _, err = ord.String.Unmarshal(data[n:]); err != nil {
		return nil, wrapDecodeError(err)
	}
	return &synset, nil
}

// MarshalWordSenses serializes a WordSenses index entry to bytes.
func MarshalWordSenses(entry *core.WordSenses) []byte {
	size := ord.String.Size(entry.Word) +
		varint.Uint8.Size(uint8(entry.Pos)) +
		sizeIDs(entry.Senses)

	buf := make([]byte, size)
	n := ord.String.Marshal(entry.Word, buf)
	n += varint.Uint8.Marshal(uint8(entry.Pos), buf[n:])
	marshalIDs(entry.Senses, buf[n:])
	return buf
}

// UnmarshalWordSenses deserializes a WordSenses index entry from bytes.
func UnmarshalWordSenses(data []byte) (*core.WordSenses, error) {
	var entry core.WordSenses

	word, n, err := ord.String.Unmarshal(data)
	if err != nil {
		return nil, wrapDecodeError(err)
	}
	entry.Word = word

	pos, m, err := varint.Uint8.Unmarshal(data[n:])
	if err != nil {
		return nil, wrapDecodeError(err)
	}
	entry.Pos = core.PartOfSpeech(pos)
	n += m

	if entry.Senses, _, err = unmarshalIDs(data[n:]); err != nil {
		return nil, err
	}
	return &entry, nil
}

func sizeStrings(values []string) int {
	size := varint.Int.Size(len(values))
	for _, v := range values {
		size += ord.String.Size(v)
	}
	return size
}

func marshalStrings(values []string, bs []byte) int {
	n := varint.Int.Marshal(len(values), bs)
	for _, v := range values {
		n += ord.String.Marshal(v, bs[n:])
	}
	return n
}

func unmarshalStrings(bs []byte) ([]string, int, error) {
	length, n, err := unmarshalLength(bs)
	if err != nil {
		return nil, n, err
	}
	if length == 0 {
		return nil, n, nil
	}
	values := make([]string, length)
	for i := range values {
		v, m, err := ord.String.Unmarshal(bs[n:])
		if err != nil {
			return nil, n, wrapDecodeError(err)
		}
		values[i] = v
		n += m
	}
	return values, n, nil
}

func sizeIDs(ids []core.ID) int {
	size := varint.Int.Size(len(ids))
	for _, id := range ids {
		size += varint.Uint64.Size(uint64(id))
	}
	return size
}

func marshalIDs(ids []core.ID, bs []byte) int {
	n := varint.Int.Marshal(len(ids), bs)
	for _, id := range ids {
		n += varint.Uint64.Marshal(uint64(id), bs[n:])
	}
	return n
}

func unmarshalIDs(bs []byte) ([]core.ID, int, error) {
	length, n, err := unmarshalLength(bs)
	if err != nil {
		return nil, n, err
	}
	if length == 0 {
		return nil, n, nil
	}
	ids := make([]core.ID, length)
	for i := range ids {
		v, m, err := varint.Uint64.Unmarshal(bs[n:])
		if err != nil {
			return nil, n, wrapDecodeError(err)
		}
		ids[i] = core.ID(v)
		n += m
	}
	return ids, n, nil
}

// unmarshalLength reads a collection length and rejects values that cannot
// fit in the remaining bytes, since every element takes at least one byte.
func unmarshalLength(bs []byte) (int, int, error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return 0, n, wrapDecodeError(err)
	}
	if length < 0 {
		return 0, n, fmt.Errorf("%w: negative length %d", ErrSerializationFailed, length)
	}
	if length > len(bs)-n {
		return 0, n, fmt.Errorf("%w: length %d exceeds %d remaining bytes", ErrTruncatedData, length, len(bs)-n)
	}
	return length, n, nil
}

func wrapDecodeError(err error) error {
	return fmt.Errorf("%w: %w", ErrSerializationFailed, err)
}
