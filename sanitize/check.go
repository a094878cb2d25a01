package sanitize

// Check 对单个字素簇的安全判定。
// 所有实现都是纯谓词：不修改簇内容，不持有跨簇状态。
type Check interface {
	// Name 返回检查名称，用于 Report 的诊断归因。
	Name() string
	// Reject 判断是否拒绝该簇。error 仅来自外部协作者（分词器）。
	Reject(cluster string) (bool, error)
}

// disallowedCheck 禁止字符检查。
// 簇中任一码点命中合并后的禁止集合即拒绝，
// 不受 Emoji 与类别配置影响。
type disallowedCheck struct {
	set map[rune]struct{}
}

func (c *disallowedCheck) Name() string { return "disallowed_character" }

func (c *disallowedCheck) Reject(cluster string) (bool, error) {
	for _, r := range cluster {
		if _, ok := c.set[r]; ok {
			return true, nil
		}
	}
	return false, nil
}

// emojiCheck Emoji 检查。AllowEmoji 为 true 时该检查不会被装入检查链。
type emojiCheck struct{}

func (emojiCheck) Name() string { return "emoji" }

func (emojiCheck) Reject(cluster string) (bool, error) {
	for _, r := range cluster {
		if IsEmoji(r) {
			return true, nil
		}
	}
	return false, nil
}

// categoryCheck 危险类别检查。仅 StrictMode 下装入检查链。
type categoryCheck struct {
	categories map[string]struct{}
}

func (c *categoryCheck) Name() string { return "dangerous_category" }

func (c *categoryCheck) Reject(cluster string) (bool, error) {
	for _, r := range cluster {
		if _, ok := c.categories[generalCategory(r)]; ok {
			return true, nil
		}
	}
	return false, nil
}

// tokenExplosionCheck Token 爆炸检查。
// 对单个簇的文本调用分词器，token 数超过上限即拒绝。
// 分词器错误原样上抛，由调用方处理。
type tokenExplosionCheck struct {
	tok       Tokenizer
	maxTokens int
}

func (c *tokenExplosionCheck) Name() string { return "token_explosion" }

func (c *tokenExplosionCheck) Reject(cluster string) (bool, error) {
	tokens, err := c.tok.Tokenize(cluster)
	if err != nil {
		return false, err
	}
	return len(tokens) > c.maxTokens, nil
}
