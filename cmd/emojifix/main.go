// =============================================================================
// EmojiFix 主入口
// =============================================================================
// 从参数或 stdin 读取文本，执行 Unicode 清洗流水线并输出结果
//
// 使用方法:
//
//	emojifix "Hello 👋 World"                 # 清洗参数文本
//	echo "text" | emojifix                    # 清洗 stdin
//	emojifix -config config.yaml "text"       # 指定配置文件
//	emojifix -report "text"                   # 同时输出诊断报告
// =============================================================================
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reneemgagnon/Black-Box-Emoji-Fix/config"
	"github.com/reneemgagnon/Black-Box-Emoji-Fix/sanitize"
	"github.com/reneemgagnon/Black-Box-Emoji-Fix/tokenizer"
)

var (
	Version = "dev"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径 (YAML)")
	showReport := flag.Bool("report", false, "输出每个被拒绝簇的诊断信息")
	showVersion := flag.Bool("version", false, "显示版本信息")
	flag.Parse()

	if *showVersion {
		fmt.Printf("emojifix %s\n", Version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	text, err := readInput(flag.Args())
	if err != nil {
		logger.Fatal("read input", zap.Error(err))
	}

	tok, err := buildTokenizer(cfg, logger)
	if err != nil {
		logger.Fatal("build tokenizer", zap.Error(err))
	}

	scfg, err := cfg.Sanitizer.SanitizeConfig()
	if err != nil {
		logger.Fatal("sanitizer config", zap.Error(err))
	}

	s, err := sanitize.NewSanitizer(tok, scfg)
	if err != nil {
		logger.Fatal("create sanitizer", zap.Error(err))
	}

	out, report, err := s.SanitizeReport(text)
	if err != nil {
		logger.Fatal("sanitize", zap.Error(err))
	}

	if *showReport {
		for _, rej := range report.Rejections {
			logger.Info("cluster rejected",
				zap.Int("index", rej.Index),
				zap.Int("offset", rej.Offset),
				zap.String("cluster", fmt.Sprintf("%+q", rej.Cluster)),
				zap.String("check", rej.Check))
		}
		logger.Info("sanitize done",
			zap.Int("clusters", report.Clusters),
			zap.Int("rejected", len(report.Rejections)))
	}

	fmt.Println(out)
}

// readInput 从参数读取文本，无参数时回退到 stdin。
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// buildTokenizer 按配置组装分词器，并包上日志包装器。
func buildTokenizer(cfg *config.Config, logger *zap.Logger) (sanitize.Tokenizer, error) {
	var inner tokenizer.Tokenizer
	switch cfg.Tokenizer.Kind {
	case "basic":
		inner = tokenizer.NewBasicTokenizer(cfg.Tokenizer.MaxTokenLength)
	case "estimator":
		inner = tokenizer.NewEstimatorTokenizer()
	case "tiktoken":
		t, err := tokenizer.NewTiktokenTokenizer(cfg.Tokenizer.Model)
		if err != nil {
			return nil, err
		}
		inner = t
	default:
		return nil, fmt.Errorf("unknown tokenizer kind: %q", cfg.Tokenizer.Kind)
	}
	return tokenizer.NewLoggingTokenizer(inner, logger), nil
}

// buildLogger 按级别构造 zap 日志器，日志输出到 stderr，
// 保证 stdout 只有清洗结果。
func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}
