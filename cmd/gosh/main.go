package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"gosh/internal/shell"
	"gosh/pkg/platform"
)

func main() {
	var command = flag.String("c", "", "执行命令字符串")
	var debug = flag.Bool("debug", false, "输出调试日志到 ~/.gosh/gosh.log")
	flag.Parse()

	logger := buildLogger(*debug)
	defer logger.Sync()

	sh, err := shell.New(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gosh: %v\n", err)
		os.Exit(1)
	}

	// 执行命令字符串
	if *command != "" {
		os.Exit(sh.ExecuteReader(strings.NewReader(*command)))
	}

	// 第一个位置参数作为脚本执行
	if flag.NArg() > 0 {
		status, err := sh.ExecuteScript(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "gosh: %s: %v\n", flag.Arg(0), err)
		}
		os.Exit(status)
	}

	// 交互式模式
	os.Exit(sh.Run())
}

// buildLogger 构建日志器
// 默认不输出任何日志，调试模式写入用户目录下的日志文件
func buildLogger(debug bool) *zap.Logger {
	if !debug && os.Getenv("GOSH_DEBUG") == "" {
		return zap.NewNop()
	}

	home := platform.HomeDir()
	if home == "" {
		return zap.NewNop()
	}

	logDir := filepath.Join(home, ".gosh")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{filepath.Join(logDir, "gosh.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
