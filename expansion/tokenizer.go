package expansion

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits raw query text into an ordered sequence of tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// TokenizerFunc adapts a plain function to Tokenizer.
type TokenizerFunc func(text string) []string

func (f TokenizerFunc) Tokenize(text string) []string {
	return f(text)
}

// Words and digit runs. Apostrophes are kept only inside a word, so
// "Madam I’m Adam" yields "I’m" and "Jobs'" yields "Jobs".
var wordPattern = regexp.MustCompile(`\pL+(?:['’]\pL+)*|\pN+`)

type wordTokenizer struct{}

// NewWordTokenizer returns the default tokenizer. Text is NFKC-normalized
// before extraction so compatibility forms (ligatures, full-width letters)
// tokenize like their plain equivalents.
func NewWordTokenizer() Tokenizer {
	return wordTokenizer{}
}

func (wordTokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return wordPattern.FindAllString(norm.NFKC.String(text), -1)
}
