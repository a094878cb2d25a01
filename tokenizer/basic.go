package tokenizer

import "strings"

// DefaultMaxTokenLength is the default per-token truncation length for the
// basic tokenizer.
const DefaultMaxTokenLength = 50

// BasicTokenizer is a whitespace tokenizer that truncates each token to a
// maximum rune length. It exists as a demo and testing tool; production
// callers supply a real tokenizer such as TiktokenTokenizer.
type BasicTokenizer struct {
	maxTokenLength int
}

// NewBasicTokenizer creates a basic tokenizer. A non-positive maxTokenLength
// falls back to DefaultMaxTokenLength.
func NewBasicTokenizer(maxTokenLength int) *BasicTokenizer {
	if maxTokenLength <= 0 {
		maxTokenLength = DefaultMaxTokenLength
	}
	return &BasicTokenizer{maxTokenLength: maxTokenLength}
}

// Tokenize splits on whitespace and truncates each token to the configured
// rune length. It never fails.
func (t *BasicTokenizer) Tokenize(text string) ([]string, error) {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		runes := []rune(f)
		if len(runes) > t.maxTokenLength {
			f = string(runes[:t.maxTokenLength])
		}
		tokens = append(tokens, f)
	}
	return tokens, nil
}

func (t *BasicTokenizer) Name() string {
	return "basic"
}
