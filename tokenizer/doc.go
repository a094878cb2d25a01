// Package tokenizer 提供统一的分词接口与多种实现，
// 包括演示用空白分词器、离线估算分词器与 tiktoken 精确分词器，
// 供 sanitize 流水线的 Token 爆炸检查作为成本预言机使用。
package tokenizer
