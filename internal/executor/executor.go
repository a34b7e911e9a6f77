// Package executor 负责命令类别解析、重定向目标打开和命令执行
package executor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"gosh/internal/builtin"
	"gosh/internal/parser"
	"gosh/pkg/platform"
)

// CommandKind 命令类别
type CommandKind int

const (
	KindBuiltin  CommandKind = iota // 内置命令
	KindExternal                    // PATH中的外部可执行文件
	KindNotFound                    // 未找到
)

// String 返回命令类别的字符串表示
func (k CommandKind) String() string {
	switch k {
	case KindBuiltin:
		return "builtin"
	case KindExternal:
		return "external"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Resolution argv[0]的解析结果
type Resolution struct {
	Kind CommandKind
	Path string // KindExternal时为解析出的完整路径
}

// ResolveKind 解析命令名的类别
// 先匹配固定的内置命令集，再按顺序扫描PATH目录中的可执行文件
// 每条命令重新解析，不跨命令缓存
func ResolveKind(name string, dirs []string) Resolution {
	if _, ok := builtin.Lookup(name); ok {
		return Resolution{Kind: KindBuiltin}
	}
	if location, ok := platform.FindExecutable(name, dirs); ok {
		return Resolution{Kind: KindExternal, Path: location}
	}
	return Resolution{Kind: KindNotFound}
}

// Executor 执行器
type Executor struct {
	state  *State
	logger *zap.Logger
}

// New 创建新的执行器
func New(state *State, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		state:  state,
		logger: logger,
	}
}

// State 返回执行器持有的shell状态
func (e *Executor) State() *State {
	return e.state
}

// Run 执行一条解析后的命令，返回退出状态
// 重定向文件在命令运行前打开，命令结束后在所有路径上关闭
func (e *Executor) Run(cmd *parser.ParsedCommand) (int, error) {
	stdout, closeStdout, err := openTarget(cmd.Stdout, os.Stdout)
	if err != nil {
		return ExitRedirectFailure, err
	}
	defer closeStdout()

	stderr, closeStderr, err := openTarget(cmd.Stderr, os.Stderr)
	if err != nil {
		return ExitRedirectFailure, err
	}
	defer closeStderr()

	name := cmd.Name()
	res := ResolveKind(name, platform.PathDirectories())
	start := time.Now()

	var status int
	var runErr error

	switch res.Kind {
	case KindBuiltin:
		fn, _ := builtin.Lookup(name)
		status = fn(e.state, cmd.Args(), stdout, stderr)
	case KindExternal:
		status, runErr = e.runExternal(res.Path, cmd, stdout, stderr)
	case KindNotFound:
		fmt.Fprintf(stderr, "%s: command not found\n", name)
		status = ExitNotFound
	}

	e.logger.Debug("command finished",
		zap.String("name", name),
		zap.Stringer("kind", res.Kind),
		zap.Int("status", status),
		zap.Duration("elapsed", time.Since(start)),
	)

	return status, runErr
}

// runExternal 启动外部命令并等待结束
// 环境继承自shell进程，工作目录为shell当前目录
func (e *Executor) runExternal(path string, cmd *parser.ParsedCommand, stdout, stderr io.Writer) (int, error) {
	c := exec.Command(path)
	// argv[0]保持用户输入的命令名
	c.Args = cmd.Argv
	c.Stdin = os.Stdin
	c.Stdout = stdout
	c.Stderr = stderr

	err := c.Run()
	if err == nil {
		return ExitSuccess, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// 命令正常结束但状态非零，不算shell侧错误
		return exitErr.ExitCode(), nil
	}

	// 解析和启动之间文件可能消失或权限被收回
	return ExitNotFound, &ExecutionError{
		Type: ExecErrorLaunchFailed,
		Name: cmd.Name(),
		Err:  err,
		code: ExitNotFound,
	}
}

// openTarget 按重定向目标打开输出流
// 继承模式直接使用fallback流，关闭函数为空操作
func openTarget(target parser.RedirTarget, fallback *os.File) (io.Writer, func(), error) {
	if target.Inherit() {
		return fallback, func() {}, nil
	}

	flags := os.O_CREATE | os.O_WRONLY
	if target.Append() {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(target.Path, flags, 0o644)
	if err != nil {
		return nil, nil, &ExecutionError{
			Type: ExecErrorRedirectOpen,
			Name: target.Path,
			Err:  err,
			code: ExitRedirectFailure,
		}
	}

	return file, func() { file.Close() }, nil
}
