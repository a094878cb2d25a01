// emojifix 是 sanitize 流水线的命令行封装，
// 用于演示与本地排查，不属于核心库契约。
package main
