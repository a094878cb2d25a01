package sanitize

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer 是本包对外部分词器的最小依赖：
// 输入任意字符串，返回有序的 token 字符串序列。
// 本包只依赖该契约，不绑定任何具体分词算法；
// 实现见 tokenizer 包，调用方也可以注入自己的实现。
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// Rejection 记录一个被拒绝的簇及其归因。
type Rejection struct {
	// Index 簇在切分序列中的序号（从 0 开始）。
	Index int `json:"index"`
	// Offset 簇在归一化文本中的字节偏移。
	Offset int `json:"offset"`
	// Cluster 被拒绝的簇原文。
	Cluster string `json:"cluster"`
	// Check 命中的检查名称。
	Check string `json:"check"`
}

// Report 单次清洗的诊断报告。
type Report struct {
	// Clusters 归一化文本切分出的簇总数。
	Clusters int `json:"clusters"`
	// Rejections 被拒绝的簇列表，按原始顺序排列。
	Rejections []Rejection `json:"rejections,omitempty"`
}

// Sanitizer 清洗流水线。构造时完成配置校验、默认值合并与检查链组装，
// 之后可安全并发复用。
type Sanitizer struct {
	cfg    *merged
	checks []Check
}

// NewSanitizer 创建清洗器。cfg 为 nil 时使用 DefaultConfig。
// 配置非法时返回 ErrInvalidConfig，在处理任何文本之前快速失败。
func NewSanitizer(tok Tokenizer, cfg *Config) (*Sanitizer, error) {
	if tok == nil {
		return nil, fmt.Errorf("%w: nil tokenizer", ErrInvalidConfig)
	}
	m, err := cfg.merge()
	if err != nil {
		return nil, err
	}

	// 固定检查顺序；跳过的检查不装入链，而非装入后空转。
	checks := make([]Check, 0, 4)
	checks = append(checks, &disallowedCheck{set: m.disallowed})
	if !m.allowEmoji {
		checks = append(checks, emojiCheck{})
	}
	if m.strictMode {
		checks = append(checks, &categoryCheck{categories: m.categories})
	}
	checks = append(checks, &tokenExplosionCheck{tok: tok, maxTokens: m.maxTokens})

	return &Sanitizer{cfg: m, checks: checks}, nil
}

// Sanitize 清洗文本并返回结果。
func (s *Sanitizer) Sanitize(text string) (string, error) {
	out, _, err := s.run(text)
	return out, err
}

// SanitizeReport 清洗文本并返回结果与诊断报告。
func (s *Sanitizer) SanitizeReport(text string) (string, *Report, error) {
	return s.run(text)
}

func (s *Sanitizer) run(text string) (string, *Report, error) {
	report := &Report{}
	if text == "" {
		// 空输入直接返回，不触碰分词器。
		return "", report, nil
	}

	normalized := norm.NFKC.String(text)
	clusters := splitClusters(normalized)
	report.Clusters = len(clusters)

	var b strings.Builder
	b.Grow(len(normalized))

	offset := 0
	for i, cluster := range clusters {
		checkName, err := s.classify(cluster)
		if err != nil {
			return "", nil, fmt.Errorf("sanitize cluster %d at byte %d: %w", i, offset, err)
		}
		if checkName == "" {
			b.WriteString(cluster)
		} else {
			// 整簇替换，绝不替换半个簇。
			b.WriteString(s.cfg.replacement)
			report.Rejections = append(report.Rejections, Rejection{
				Index:   i,
				Offset:  offset,
				Cluster: cluster,
				Check:   checkName,
			})
		}
		offset += len(cluster)
	}

	return b.String(), report, nil
}

// classify 按固定顺序评估检查链，返回命中的检查名称；
// 全部通过时返回空串。
func (s *Sanitizer) classify(cluster string) (string, error) {
	for _, c := range s.checks {
		hit, err := c.Reject(cluster)
		if err != nil {
			return "", err
		}
		if hit {
			return c.Name(), nil
		}
	}
	return "", nil
}

// splitClusters 将归一化文本切分为扩展字素簇序列。
// 序列完整物化：分类器需要逐簇随机访问，且 token 检查
// 要求每次只隔离一个簇的文本。
func splitClusters(s string) []string {
	clusters := make([]string, 0, len(s)/4+1)
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

// Sanitize 是包级便捷入口：构造一次性 Sanitizer 并执行清洗。
func Sanitize(text string, tok Tokenizer, cfg *Config) (string, error) {
	s, err := NewSanitizer(tok, cfg)
	if err != nil {
		return "", err
	}
	return s.Sanitize(text)
}

// SanitizeReport 是带诊断报告的包级便捷入口。
func SanitizeReport(text string, tok Tokenizer, cfg *Config) (string, *Report, error) {
	s, err := NewSanitizer(tok, cfg)
	if err != nil {
		return "", nil, err
	}
	return s.SanitizeReport(text)
}
