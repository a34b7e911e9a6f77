// Package shell 实现交互式REPL循环和自动补全
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"gosh/internal/executor"
	"gosh/internal/lexer"
	"gosh/internal/parser"
	"gosh/pkg/platform"
)

const (
	prompt             = "$ "
	continuationPrompt = "> "

	// 语法错误的退出状态
	exitSyntaxError = 2

	historyLimit = 1000
)

// Shell Shell主结构
// 一次处理一条命令行，执行完毕后再读下一行
type Shell struct {
	state      *executor.State
	executor   *executor.Executor
	history    *History
	reporter   *ErrorReporter
	logger     *zap.Logger
	lastStatus int
}

// New 创建新的Shell实例
func New(logger *zap.Logger) (*Shell, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	state, err := executor.NewState()
	if err != nil {
		return nil, err
	}

	history := NewHistory(historyLimit)
	if file := historyFile(); file != "" {
		// 历史文件不存在不算错误
		_ = history.LoadFromFile(file)
	}

	return &Shell{
		state:    state,
		executor: executor.New(state, logger),
		history:  history,
		reporter: NewErrorReporter("", true),
		logger:   logger,
	}, nil
}

// Run 运行交互式Shell，返回进程退出码
// exit内置命令给出的退出码优先，输入结束时返回0
func (s *Shell) Run() int {
	completer := NewCompleter(NewEngine())

	config := &readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile(),
		HistoryLimit:    historyLimit,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		// readline初始化失败，回退到简单行读取
		s.logger.Debug("readline unavailable", zap.Error(err))
		return s.runSimple()
	}
	defer rl.Close()
	completer.refresh = rl.Refresh

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			// EOF或读取错误，结束REPL
			break
		}

		// 以未转义的反斜杠结尾的行续行，反斜杠和换行整体丢弃
		for endsWithContinuation(line) {
			rl.SetPrompt(continuationPrompt)
			next, err := rl.Readline()
			if err != nil {
				line = ""
				break
			}
			line = strings.TrimSuffix(line, "\\") + next
		}
		rl.SetPrompt(prompt)

		if strings.TrimSpace(line) == "" {
			continue
		}

		s.lastStatus = s.executeLine(line)
		s.history.Add(line)

		if code, requested := s.state.ExitRequested(); requested {
			s.saveHistory()
			return code
		}
	}

	s.saveHistory()
	return 0
}

// runSimple 简单的运行模式，readline不可用时回退
// 没有自动补全和历史浏览
func (s *Shell) runSimple() int {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		for endsWithContinuation(line) {
			fmt.Print(continuationPrompt)
			if !scanner.Scan() {
				break
			}
			line = strings.TrimSuffix(line, "\\") + scanner.Text()
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		s.lastStatus = s.executeLine(line)
		s.history.Add(line)

		if code, requested := s.state.ExitRequested(); requested {
			s.saveHistory()
			return code
		}
	}

	s.saveHistory()
	return 0
}

// ExecuteScript 执行脚本文件
func (s *Shell) ExecuteScript(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return executor.ExitFailure, err
	}
	defer file.Close()

	s.reporter = NewErrorReporter(path, false)
	return s.ExecuteReader(file), nil
}

// ExecuteReader 从Reader逐行执行命令
// 跳过shebang和注释行，错误只影响当前行
func (s *Shell) ExecuteReader(r io.Reader) int {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	firstLine := true

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if firstLine && strings.HasPrefix(trimmed, "#!") {
			firstLine = false
			continue
		}
		firstLine = false
		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		for endsWithContinuation(line) && scanner.Scan() {
			lineNum++
			line = strings.TrimSuffix(line, "\\") + scanner.Text()
		}

		s.reporter.SetLineNum(lineNum)
		s.lastStatus = s.executeLine(line)

		if code, requested := s.state.ExitRequested(); requested {
			return code
		}
	}

	return s.lastStatus
}

// executeLine 执行一行命令，返回退出状态
// 解析失败时不执行任何部分命令
func (s *Shell) executeLine(line string) int {
	tokens, err := lexer.Tokenize(line)
	if err != nil {
		s.reporter.ReportError(err)
		return exitSyntaxError
	}
	if len(tokens) == 0 {
		return 0
	}

	cmd, err := parser.Parse(tokens)
	if err != nil {
		s.reporter.ReportError(err)
		return exitSyntaxError
	}

	status, err := s.executor.Run(cmd)
	if err != nil {
		s.reporter.ReportError(err)
	}

	s.logger.Debug("line executed",
		zap.String("line", line),
		zap.Int("status", status),
	)
	return status
}

// LastStatus 返回最近一条命令的退出状态
func (s *Shell) LastStatus() int {
	return s.lastStatus
}

// endsWithContinuation 判断行尾是否为未转义的反斜杠
func endsWithContinuation(line string) bool {
	count := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		count++
	}
	return count%2 == 1
}

// historyFile 历史记录文件路径
func historyFile() string {
	home := platform.HomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".gosh_history")
}

// saveHistory 保存历史记录
func (s *Shell) saveHistory() {
	if file := historyFile(); file != "" {
		if err := s.history.SaveToFile(file); err != nil {
			s.logger.Debug("failed to save history", zap.Error(err))
		}
	}
}
