package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		maxLen   int
		input    string
		expected []string
	}{
		{
			name:     "simple words",
			maxLen:   0,
			input:    "hello world",
			expected: []string{"hello", "world"},
		},
		{
			name:     "collapses whitespace runs",
			maxLen:   0,
			input:    "  a \t b\n\nc  ",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "empty input",
			maxLen:   0,
			input:    "",
			expected: []string{},
		},
		{
			name:     "truncates long tokens by rune",
			maxLen:   3,
			input:    "abcdef 中文字符串",
			expected: []string{"abc", "中文字"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewBasicTokenizer(tt.maxLen)
			tokens, err := tok.Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestBasicTokenizer_DefaultMaxLength(t *testing.T) {
	tok := NewBasicTokenizer(-1)
	long := strings.Repeat("x", 80)
	tokens, err := tok.Tokenize(long)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Len(t, tokens[0], DefaultMaxTokenLength)
}

func TestBasicTokenizer_Name(t *testing.T) {
	assert.Equal(t, "basic", NewBasicTokenizer(0).Name())
}
