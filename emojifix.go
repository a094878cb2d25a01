// Package emojifix provides a top-level convenience entry point for the
// Unicode sanitization pipeline.
//
// Usage:
//
//	import emojifix "github.com/reneemgagnon/Black-Box-Emoji-Fix"
//
//	out, err := emojifix.Sanitize(untrusted, tokenizer.NewBasicTokenizer(0), nil)
//
// This is a thin wrapper around [sanitize.Sanitize]; both produce identical
// results. Use this package when you prefer the shorter import path.
package emojifix

import (
	"github.com/reneemgagnon/Black-Box-Emoji-Fix/sanitize"
)

// Config configures a sanitization call. See [sanitize.Config].
type Config = sanitize.Config

// Tokenizer is the caller-supplied tokenization capability.
type Tokenizer = sanitize.Tokenizer

// Report describes the rejections of a sanitization call.
type Report = sanitize.Report

// Rejection records one rejected grapheme cluster.
type Rejection = sanitize.Rejection

// DefaultConfig returns the default sanitization configuration.
var DefaultConfig = sanitize.DefaultConfig

// Sanitize runs the full pipeline over text: NFKC normalization, grapheme
// segmentation, per-cluster security checks, and reconstruction. A nil cfg
// uses [DefaultConfig].
func Sanitize(text string, tok Tokenizer, cfg *Config) (string, error) {
	return sanitize.Sanitize(text, tok, cfg)
}

// SanitizeReport is Sanitize plus a per-rejection diagnostic report.
func SanitizeReport(text string, tok Tokenizer, cfg *Config) (string, *Report, error) {
	return sanitize.SanitizeReport(text, tok, cfg)
}
