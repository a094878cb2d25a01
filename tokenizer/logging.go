package tokenizer

import "go.uber.org/zap"

// LoggingTokenizer 包装任意 Tokenizer，在分词失败时记录警告日志。
// 错误原样向上传播，不做重试也不做估算回退：
// 清洗调用要么整体成功要么整体失败。
type LoggingTokenizer struct {
	inner  Tokenizer
	logger *zap.Logger
}

// NewLoggingTokenizer 创建日志包装器。logger 为 nil 时使用 zap.NewNop()。
func NewLoggingTokenizer(inner Tokenizer, logger *zap.Logger) *LoggingTokenizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingTokenizer{inner: inner, logger: logger}
}

// Tokenize 委托给底层分词器，失败时记录警告并原样返回错误。
func (t *LoggingTokenizer) Tokenize(text string) ([]string, error) {
	tokens, err := t.inner.Tokenize(text)
	if err != nil {
		t.logger.Warn("tokenizer failed",
			zap.String("tokenizer", t.inner.Name()),
			zap.Error(err))
		return nil, err
	}
	return tokens, nil
}

// Name 返回底层分词器的名称。
func (t *LoggingTokenizer) Name() string {
	return t.inner.Name()
}
