package tokenizer

import (
	"fmt"
	"sync"
)

// Tokenizer 是统一的分词接口。
// 实现必须是纯函数：同一输入返回同一有序 token 序列，无副作用。
type Tokenizer interface {
	// Tokenize 将文本切分为有序的 token 字符串列表.
	Tokenize(text string) ([]string, error)

	// Name 返回分词器的名称.
	Name() string
}

// 全局分词器注册表.
var (
	tokenizers   = make(map[string]Tokenizer)
	tokenizersMu sync.RWMutex
)

// Register 为给定名称注册分词器.
func Register(name string, t Tokenizer) {
	tokenizersMu.Lock()
	defer tokenizersMu.Unlock()
	tokenizers[name] = t
}

// Get 返回为给定名称注册的分词器。
// 同样尝试前缀匹配（如 "gpt-4o" 匹配 "gpt-4o-mini"）。
func Get(name string) (Tokenizer, error) {
	tokenizersMu.RLock()
	defer tokenizersMu.RUnlock()

	if t, ok := tokenizers[name]; ok {
		return t, nil
	}

	// 尝试最长前缀匹配。
	var match Tokenizer
	best := -1
	for prefix, t := range tokenizers {
		if len(name) >= len(prefix) && name[:len(prefix)] == prefix && len(prefix) > best {
			match = t
			best = len(prefix)
		}
	}
	if match != nil {
		return match, nil
	}

	return nil, fmt.Errorf("no tokenizer registered for name: %s", name)
}

// GetOrBasic 返回注册的分词器，未注册时回退到基础空白分词器。
func GetOrBasic(name string) Tokenizer {
	t, err := Get(name)
	if err != nil {
		return NewBasicTokenizer(0)
	}
	return t
}
