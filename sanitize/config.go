package sanitize

import (
	"errors"
	"fmt"
	"unicode"
)

// DefaultDisallowed 默认禁止的不可见码点集合。
// 这些字符常被用于载荷走私：对用户不可见，却改变文本的机器表示。
var DefaultDisallowed = []rune{
	'\u200B', // ZERO WIDTH SPACE
	'\u200C', // ZERO WIDTH NON-JOINER
	'\u200D', // ZERO WIDTH JOINER
	'\u2060', // WORD JOINER
	'\uFE0E', // VARIATION SELECTOR-15 (text presentation)
	'\uFE0F', // VARIATION SELECTOR-16 (emoji presentation)
}

// DefaultDangerousCategories 默认危险 Unicode 通用类别。
var DefaultDangerousCategories = []string{
	"Co", // Private use
	"Cn", // Unassigned
	"Cs", // Surrogate
	"Cf", // Format
}

// ErrInvalidConfig 表示配置非法。通过 errors.Is 判断。
var ErrInvalidConfig = errors.New("sanitize: invalid config")

// Config 清洗配置。每次调用视为不可变；
// Disallowed 与 DangerousCategories 与包默认值取并集，绝不替换默认值。
type Config struct {
	// MaxTokensPerCluster 单个字素簇允许的最大 token 数，必须 >= 1。
	MaxTokensPerCluster int

	// Replacement 被拒绝的簇的整体替换串，可以为空。
	Replacement string

	// AllowEmoji 为 true 时整体跳过 Emoji 检查。
	// Emoji 簇仍受其余检查约束（分层覆盖语义，而非"Emoji 永远放行"）。
	AllowEmoji bool

	// StrictMode 为 true 时启用危险类别检查。
	StrictMode bool

	// Disallowed 额外禁止的码点，与 DefaultDisallowed 取并集。
	Disallowed []rune

	// DangerousCategories 额外的危险类别（两字母通用类别标签），
	// 与 DefaultDangerousCategories 取并集。仅 StrictMode 下生效。
	DangerousCategories []string
}

// DefaultConfig 返回默认配置。
func DefaultConfig() *Config {
	return &Config{
		MaxTokensPerCluster: 3,
		Replacement:         "",
		AllowEmoji:          false,
		StrictMode:          true,
	}
}

// merged 是单次调用的私有合并配置。
// 默认集合在此复制后与调用方覆盖项取并集，进程级默认值永不被修改。
type merged struct {
	maxTokens   int
	replacement string
	allowEmoji  bool
	strictMode  bool
	disallowed  map[rune]struct{}
	categories  map[string]struct{}
}

// merge 校验配置并构造合并副本。nil 配置使用默认值。
func (c *Config) merge() (*merged, error) {
	if c == nil {
		c = DefaultConfig()
	}
	if c.MaxTokensPerCluster < 1 {
		return nil, fmt.Errorf("%w: max tokens per cluster must be >= 1, got %d",
			ErrInvalidConfig, c.MaxTokensPerCluster)
	}

	m := &merged{
		maxTokens:   c.MaxTokensPerCluster,
		replacement: c.Replacement,
		allowEmoji:  c.AllowEmoji,
		strictMode:  c.StrictMode,
	}

	m.disallowed = make(map[rune]struct{}, len(DefaultDisallowed)+len(c.Disallowed))
	for _, r := range DefaultDisallowed {
		m.disallowed[r] = struct{}{}
	}
	for _, r := range c.Disallowed {
		m.disallowed[r] = struct{}{}
	}

	m.categories = make(map[string]struct{}, len(DefaultDangerousCategories)+len(c.DangerousCategories))
	for _, cat := range DefaultDangerousCategories {
		m.categories[cat] = struct{}{}
	}
	for _, cat := range c.DangerousCategories {
		if !knownCategory(cat) {
			return nil, fmt.Errorf("%w: unknown general category %q", ErrInvalidConfig, cat)
		}
		m.categories[cat] = struct{}{}
	}

	return m, nil
}

// knownCategory 判断是否为合法的两字母通用类别标签。
// "Cn"（未分配）在标准库中没有 RangeTable，单独放行。
func knownCategory(name string) bool {
	if name == "Cn" {
		return true
	}
	if len(name) != 2 {
		return false
	}
	_, ok := unicode.Categories[name]
	return ok
}

// generalCategory 返回码点的两字母通用类别标签。
// 不属于任何已知类别的码点视为未分配（Cn）。
func generalCategory(r rune) string {
	for name, table := range unicode.Categories {
		if len(name) == 2 && unicode.Is(table, r) {
			return name
		}
	}
	return "Cn"
}
