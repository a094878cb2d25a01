package tokenizer

import "unicode"

// EstimatorTokenizer is a character-class-based pseudo tokenizer. It produces
// deterministic token boundaries without any encoding data download:
// CJK runes become one token each, other runes are grouped into chunks of
// four, and whitespace separates tokens. The boundaries approximate how BPE
// tokenizers segment mixed CJK/ASCII text closely enough for explosion
// detection when tiktoken data is unavailable.
type EstimatorTokenizer struct{}

// NewEstimatorTokenizer creates an estimator tokenizer.
func NewEstimatorTokenizer() *EstimatorTokenizer {
	return &EstimatorTokenizer{}
}

// asciiRunesPerToken approximates the ~4 chars/token ratio of BPE tokenizers
// on ASCII text.
const asciiRunesPerToken = 4

// Tokenize never fails; the estimator has no external dependencies.
func (e *EstimatorTokenizer) Tokenize(text string) ([]string, error) {
	var tokens []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, string(current))
			current = current[:0]
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case isCJK(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			current = append(current, r)
			if len(current) >= asciiRunesPerToken {
				flush()
			}
		}
	}
	flush()

	return tokens, nil
}

func (e *EstimatorTokenizer) Name() string {
	return "estimator"
}

// isCJK returns true if the rune is a CJK character.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0xF900 && r <= 0xFAFF) || // CJK Compatibility Ideographs
		(r >= 0x3000 && r <= 0x303F) || // CJK Symbols and Punctuation
		(r >= 0xFF00 && r <= 0xFFEF) // Halfwidth and Fullwidth Forms
}
