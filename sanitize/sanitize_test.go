package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- hand-written tokenizer mocks ---

// wsTokenizer splits on whitespace, mirroring the demo tokenizer.
type wsTokenizer struct{}

func (wsTokenizer) Tokenize(text string) ([]string, error) {
	return strings.Fields(text), nil
}

// runeTokenizer returns one token per rune, making combining sequences
// "explode" proportionally to their length.
type runeTokenizer struct{}

func (runeTokenizer) Tokenize(text string) ([]string, error) {
	tokens := make([]string, 0, len(text))
	for _, r := range text {
		tokens = append(tokens, string(r))
	}
	return tokens, nil
}

// fixedTokenizer always returns n tokens.
type fixedTokenizer struct{ n int }

func (f *fixedTokenizer) Tokenize(string) ([]string, error) {
	return make([]string, f.n), nil
}

// errTokenizer always fails.
type errTokenizer struct{ err error }

func (e *errTokenizer) Tokenize(string) ([]string, error) {
	return nil, e.err
}

// countingTokenizer counts invocations.
type countingTokenizer struct{ calls int }

func (c *countingTokenizer) Tokenize(text string) ([]string, error) {
	c.calls++
	return strings.Fields(text), nil
}

// --- Tests ---

func TestSanitize_EmptyInput(t *testing.T) {
	tok := &countingTokenizer{}
	out, err := Sanitize("", tok, nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
	assert.Zero(t, tok.calls, "empty input must not invoke the tokenizer")
}

func TestSanitize_PlainASCIIPassesThrough(t *testing.T) {
	out, err := Sanitize("Hello World! 123 #tag *star*", wsTokenizer{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello World! 123 #tag *star*", out)
}

func TestSanitize_DefaultRejectsZeroWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "zero width space",
			input:    "Hidden\u200btext",
			expected: "Hiddentext",
		},
		{
			name:     "word joiner",
			input:    "a\u2060b",
			expected: "ab",
		},
		{
			// ZWNJ extends the preceding cluster, so the whole
			// "n"+ZWNJ cluster is replaced, not just the joiner.
			name:     "zero width non-joiner consumes its base",
			input:    "on\u200cly",
			expected: "oly",
		},
		{
			// Same for ZWJ.
			name:     "zero width joiner consumes its base",
			input:    "World\u200d!",
			expected: "Worl!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Sanitize(tt.input, wsTokenizer{}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
			assert.NotContains(t, out, "\u200b")
		})
	}
}

func TestSanitize_NFKCNormalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "fullwidth latin collapses",
			input:    "Ｈｅｌｌｏ",
			expected: "Hello",
		},
		{
			name:     "circled digit collapses to plain digit",
			input:    "①",
			expected: "1",
		},
		{
			name:     "compatibility ligature expands",
			input:    "ﬁle",
			expected: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Sanitize(tt.input, wsTokenizer{}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestSanitize_EmojiGating(t *testing.T) {
	t.Run("rejected by default", func(t *testing.T) {
		out, err := Sanitize("👍", wsTokenizer{}, nil)
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("rejected with visible replacement", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Replacement = "[emoji]"
		out, err := Sanitize("👍", wsTokenizer{}, cfg)
		require.NoError(t, err)
		assert.Equal(t, "[emoji]", out)
	})

	t.Run("allowed when AllowEmoji", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.AllowEmoji = true
		out, err := Sanitize("👍", wsTokenizer{}, cfg)
		require.NoError(t, err)
		assert.Equal(t, "👍", out)
	})

	t.Run("AllowEmoji does not bypass disallowed characters", func(t *testing.T) {
		// VS16 sits in the default disallowed set, so an emoji
		// presentation sequence is still rejected as a whole cluster.
		cfg := DefaultConfig()
		cfg.AllowEmoji = true
		out, err := Sanitize("\u2600\ufe0f", wsTokenizer{}, cfg)
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})
}

func TestSanitize_CategoryGating(t *testing.T) {
	const privateUse = "\uE000"

	t.Run("strict mode rejects private use", func(t *testing.T) {
		out, err := Sanitize(privateUse, wsTokenizer{}, nil)
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("non-strict retains private use", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.StrictMode = false
		out, err := Sanitize(privateUse, wsTokenizer{}, cfg)
		require.NoError(t, err)
		assert.Equal(t, privateUse, out)
	})

	t.Run("custom category unions with defaults", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DangerousCategories = []string{"Sc"} // currency symbols
		out, err := Sanitize("price $5 now\uE000", wsTokenizer{}, cfg)
		require.NoError(t, err)
		// Both the custom Sc hit and the default Co hit are gone.
		assert.Equal(t, "price 5 now", out)
	})
}

func TestSanitize_TokenExplosionBoundary(t *testing.T) {
	// One base letter with three combining marks survives NFKC as a single
	// 3-rune cluster (e+acute composes, the rest stay).
	atLimit := "e\u0301\u0302\u0303"    // -> é◌̂◌̃, 3 runes
	overLimit := "e\u0301\u0302\u0303\u0304" // 4 runes

	cfg := DefaultConfig() // MaxTokensPerCluster: 3

	out, err := Sanitize(atLimit, runeTokenizer{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "\u00e9\u0302\u0303", out, "exactly N tokens is admitted")

	out, err = Sanitize(overLimit, runeTokenizer{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "", out, "N+1 tokens is replaced")
}

func TestSanitize_TokenizerErrorPropagates(t *testing.T) {
	tok := &errTokenizer{err: assert.AnError}
	_, err := Sanitize("abc", tok, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSanitize_EndToEnd(t *testing.T) {
	input := "Hello 👋 World\u200d! Hidden\u200b text."
	out, err := Sanitize(input, wsTokenizer{}, nil)
	require.NoError(t, err)

	// The wave emoji cluster, the "d"+ZWJ cluster and the ZWSP cluster are
	// each replaced with the empty string; everything else is byte-identical.
	assert.Equal(t, "Hello  Worl! Hidden text.", out)
	assert.NotContains(t, out, "👋")
	assert.NotContains(t, out, "\u200d")
	assert.NotContains(t, out, "\u200b")
}

func TestSanitize_Idempotent(t *testing.T) {
	input := "Hello 👋 World\u200d! Hidden\u200b text. Ｗｉｄｅ ①"
	first, err := Sanitize(input, wsTokenizer{}, nil)
	require.NoError(t, err)
	second, err := Sanitize(first, wsTokenizer{}, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSanitizer_Reuse(t *testing.T) {
	s, err := NewSanitizer(wsTokenizer{}, nil)
	require.NoError(t, err)

	out, err := s.Sanitize("clean text")
	require.NoError(t, err)
	assert.Equal(t, "clean text", out)

	out, err = s.Sanitize("zero\u200bwidth")
	require.NoError(t, err)
	assert.Equal(t, "zerowidth", out)
}

func TestSanitizeReport(t *testing.T) {
	s, err := NewSanitizer(wsTokenizer{}, nil)
	require.NoError(t, err)

	out, report, err := s.SanitizeReport("a\u200bb👍")
	require.NoError(t, err)
	assert.Equal(t, "ab", out)
	assert.Equal(t, 4, report.Clusters)
	require.Len(t, report.Rejections, 2)

	assert.Equal(t, Rejection{Index: 1, Offset: 1, Cluster: "\u200b", Check: "disallowed_character"}, report.Rejections[0])
	assert.Equal(t, Rejection{Index: 3, Offset: 5, Cluster: "👍", Check: "emoji"}, report.Rejections[1])
}

func TestSanitize_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		tok  Tokenizer
		cfg  *Config
	}{
		{
			name: "nil tokenizer",
			tok:  nil,
			cfg:  DefaultConfig(),
		},
		{
			name: "zero max tokens",
			tok:  wsTokenizer{},
			cfg:  &Config{MaxTokensPerCluster: 0},
		},
		{
			name: "negative max tokens",
			tok:  wsTokenizer{},
			cfg:  &Config{MaxTokensPerCluster: -1},
		},
		{
			name: "unknown category label",
			tok:  wsTokenizer{},
			cfg: &Config{
				MaxTokensPerCluster: 3,
				DangerousCategories: []string{"Xx"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := &countingTokenizer{}
			var target Tokenizer = tok
			if tt.tok == nil {
				target = nil
			}
			_, err := Sanitize("anything", target, tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Zero(t, tok.calls, "config must fail before any cluster is processed")
		})
	}
}

func TestSanitize_CustomDisallowedUnion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Disallowed = []rune{'X'}

	out, err := Sanitize("aXb\u200bc", wsTokenizer{}, cfg)
	require.NoError(t, err)
	// Both the custom 'X' and the default ZWSP are rejected.
	assert.Equal(t, "abc", out)
}

func TestSanitize_DefaultsNotMutated(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Disallowed = []rune{'X'}
	cfg.DangerousCategories = []string{"Po"}

	_, err := Sanitize("whatever", wsTokenizer{}, cfg)
	require.NoError(t, err)

	assert.Len(t, DefaultDisallowed, 6)
	assert.Equal(t, []string{"Co", "Cn", "Cs", "Cf"}, DefaultDangerousCategories)

	// A later call without overrides must not inherit 'X'.
	out, err := Sanitize("X.", wsTokenizer{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "X.", out)
}
