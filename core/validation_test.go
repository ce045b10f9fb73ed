package core

import (
	"errors"
	"testing"
)

func TestValidateSynset(t *testing.T) {
	tests := []struct {
		name    string
		synset  *Synset
		wantErr error
	}{
		{
			name: "valid synset",
			synset: &Synset{
				Id:        1,
				Name:      "dog.n.01",
				Pos:       Noun,
				Lemmas:    []string{"dog", "domestic_dog"},
				Hypernyms: []ID{2},
				Gloss:     "a member of the genus Canis",
			},
			wantErr: nil,
		},
		{
			name: "valid root synset without gloss",
			synset: &Synset{
				Id:     1,
				Name:   "entity.n.01",
				Pos:    Noun,
				Lemmas: []string{"entity"},
			},
			wantErr: nil,
		},
		{
			name:    "nil synset",
			synset:  nil,
			wantErr: ErrInvalidSynset,
		},
		{
			name: "empty name",
			synset: &Synset{
				Id:     1,
				Pos:    Noun,
				Lemmas: []string{"dog"},
			},
			wantErr: ErrEmptySynsetName,
		},
		{
			name: "invalid part of speech",
			synset: &Synset{
				Id:     1,
				Name:   "dog.x.01",
				Pos:    PartOfSpeech('x'),
				Lemmas: []string{"dog"},
			},
			wantErr: ErrInvalidPartOfSpeech,
		},
		{
			name: "no lemmas",
			synset: &Synset{
				Id:   1,
				Name: "dog.n.01",
				Pos:  Noun,
			},
			wantErr: ErrNoLemmas,
		},
		{
			name: "blank lemma",
			synset: &Synset{
				Id:     1,
				Name:   "dog.n.01",
				Pos:    Noun,
				Lemmas: []string{"dog", ""},
			},
			wantErr: ErrNoLemmas,
		},
		{
			name: "self hypernym",
			synset: &Synset{
				Id:        7,
				Name:      "dog.n.01",
				Pos:       Noun,
				Lemmas:    []string{"dog"},
				Hypernyms: []ID{3, 7},
			},
			wantErr: ErrSelfHypernym,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSynset(tt.synset)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateSynset() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateSynset() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSynset() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateWordSenses(t *testing.T) {
	tests := []struct {
		name    string
		entry   *WordSenses
		wantErr error
	}{
		{
			name:    "valid entry",
			entry:   &WordSenses{Word: "apple", Pos: Noun, Senses: []ID{1, 2}},
			wantErr: nil,
		},
		{
			name:    "valid entry without senses",
			entry:   &WordSenses{Word: "apple", Pos: Noun},
			wantErr: nil,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantErr: ErrInvalidWordSenses,
		},
		{
			name:    "empty word",
			entry:   &WordSenses{Pos: Noun, Senses: []ID{1}},
			wantErr: ErrEmptyWord,
		},
		{
			name:    "invalid part of speech",
			entry:   &WordSenses{Word: "apple", Pos: PartOfSpeech(0)},
			wantErr: ErrInvalidPartOfSpeech,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWordSenses(tt.entry)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateWordSenses() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateWordSenses() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePartOfSpeech(t *testing.T) {
	tests := []struct {
		name    string
		pos     PartOfSpeech
		wantErr bool
	}{
		{name: "noun", pos: Noun, wantErr: false},
		{name: "verb", pos: Verb, wantErr: false},
		{name: "adjective", pos: Adjective, wantErr: false},
		{name: "adverb", pos: Adverb, wantErr: false},
		{name: "zero", pos: PartOfSpeech(0), wantErr: true},
		{name: "satellite letter", pos: PartOfSpeech('s'), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePartOfSpeech(tt.pos)

			if tt.wantErr && err == nil {
				t.Error("ValidatePartOfSpeech() error = nil, want error")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("ValidatePartOfSpeech() error = %v, want nil", err)
			}

			if err != nil && !errors.Is(err, ErrInvalidPartOfSpeech) {
				t.Errorf("ValidatePartOfSpeech() error = %v, want %v", err, ErrInvalidPartOfSpeech)
			}
		})
	}
}
