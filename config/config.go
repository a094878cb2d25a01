// =============================================================================
// 📦 EmojiFix 配置
// =============================================================================
// CLI 封装层的统一配置：默认值 → YAML 文件
// 核心清洗库本身不读取任何配置文件或环境变量
// =============================================================================
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reneemgagnon/Black-Box-Emoji-Fix/sanitize"
)

// Config 是 CLI 的完整配置结构
type Config struct {
	// Sanitizer 清洗配置
	Sanitizer SanitizerConfig `yaml:"sanitizer"`

	// Tokenizer 分词器配置
	Tokenizer TokenizerConfig `yaml:"tokenizer"`

	// Log 日志配置
	Log LogConfig `yaml:"log"`
}

// SanitizerConfig 清洗配置
type SanitizerConfig struct {
	// 单个字素簇允许的最大 token 数
	MaxTokensPerCluster int `yaml:"max_tokens_per_cluster"`
	// 被拒绝簇的替换串
	Replacement string `yaml:"replacement"`
	// 是否允许 Emoji
	AllowEmoji bool `yaml:"allow_emoji"`
	// 是否启用严格模式（危险类别检查）
	StrictMode bool `yaml:"strict_mode"`
	// 额外禁止的码点（每项必须是单码点字符串）
	Disallowed []string `yaml:"disallowed"`
	// 额外危险类别（两字母通用类别标签）
	DangerousCategories []string `yaml:"dangerous_categories"`
}

// TokenizerConfig 分词器配置
type TokenizerConfig struct {
	// Kind 分词器类型: basic / estimator / tiktoken
	Kind string `yaml:"kind"`
	// Model tiktoken 模型名称
	Model string `yaml:"model"`
	// MaxTokenLength basic 分词器的单 token 截断长度
	MaxTokenLength int `yaml:"max_token_length"`
}

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别: debug / info / warn / error
	Level string `yaml:"level"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Sanitizer: SanitizerConfig{
			MaxTokensPerCluster: 3,
			Replacement:         "",
			AllowEmoji:          false,
			StrictMode:          true,
		},
		Tokenizer: TokenizerConfig{
			Kind:           "basic",
			Model:          "gpt-4o",
			MaxTokenLength: 50,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load 加载配置：默认值打底 → YAML 文件覆盖 → 环境变量覆盖。
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv 应用 EMOJIFIX_ 前缀的环境变量覆盖。
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("EMOJIFIX_MAX_TOKENS_PER_CLUSTER"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("EMOJIFIX_MAX_TOKENS_PER_CLUSTER: %w", err)
		}
		c.Sanitizer.MaxTokensPerCluster = n
	}
	if v, ok := os.LookupEnv("EMOJIFIX_REPLACEMENT"); ok {
		c.Sanitizer.Replacement = v
	}
	if v, ok := os.LookupEnv("EMOJIFIX_ALLOW_EMOJI"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("EMOJIFIX_ALLOW_EMOJI: %w", err)
		}
		c.Sanitizer.AllowEmoji = b
	}
	if v, ok := os.LookupEnv("EMOJIFIX_STRICT_MODE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("EMOJIFIX_STRICT_MODE: %w", err)
		}
		c.Sanitizer.StrictMode = b
	}
	if v, ok := os.LookupEnv("EMOJIFIX_TOKENIZER_KIND"); ok {
		c.Tokenizer.Kind = v
	}
	if v, ok := os.LookupEnv("EMOJIFIX_TOKENIZER_MODEL"); ok {
		c.Tokenizer.Model = v
	}
	if v, ok := os.LookupEnv("EMOJIFIX_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	return nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Sanitizer.MaxTokensPerCluster < 1 {
		return fmt.Errorf("sanitizer.max_tokens_per_cluster must be >= 1, got %d",
			c.Sanitizer.MaxTokensPerCluster)
	}
	switch c.Tokenizer.Kind {
	case "basic", "estimator", "tiktoken":
	default:
		return fmt.Errorf("tokenizer.kind must be one of basic/estimator/tiktoken, got %q",
			c.Tokenizer.Kind)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug/info/warn/error, got %q", c.Log.Level)
	}
	return nil
}

// SanitizeConfig 转换为 sanitize.Config。
// Disallowed 中每一项必须恰好是一个码点。
func (c *SanitizerConfig) SanitizeConfig() (*sanitize.Config, error) {
	disallowed := make([]rune, 0, len(c.Disallowed))
	for _, s := range c.Disallowed {
		runes := []rune(s)
		if len(runes) != 1 {
			return nil, fmt.Errorf("sanitizer.disallowed entry %q must be a single code point", s)
		}
		disallowed = append(disallowed, runes[0])
	}

	return &sanitize.Config{
		MaxTokensPerCluster: c.MaxTokensPerCluster,
		Replacement:         c.Replacement,
		AllowEmoji:          c.AllowEmoji,
		StrictMode:          c.StrictMode,
		Disallowed:          disallowed,
		DangerousCategories: append([]string(nil), c.DangerousCategories...),
	}, nil
}
