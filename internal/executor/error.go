package executor

import (
	"fmt"
)

// 退出状态约定
const (
	ExitSuccess         = 0
	ExitFailure         = 1
	ExitRedirectFailure = 2   // 重定向目标无法打开
	ExitNotFound        = 127 // 命令未找到或无法启动
)

// ExecErrorType 执行错误类型
type ExecErrorType int

const (
	ExecErrorRedirectOpen ExecErrorType = iota // 无法打开重定向目标
	ExecErrorLaunchFailed                      // 外部命令无法启动
)

// ExecutionError 表示执行阶段的错误
// 命令自身的非零退出状态不是错误，只有shell侧的失败才是
type ExecutionError struct {
	Type ExecErrorType
	Name string // 命令名或重定向目标路径
	Err  error
	code int
}

// Error 实现 error 接口
func (e *ExecutionError) Error() string {
	switch e.Type {
	case ExecErrorRedirectOpen:
		return fmt.Sprintf("cannot open %s: %v", e.Name, e.Err)
	case ExecErrorLaunchFailed:
		return fmt.Sprintf("%s: cannot execute: %v", e.Name, e.Err)
	default:
		return fmt.Sprintf("execution error: %v", e.Err)
	}
}

// ExitCode 返回该错误对应的退出状态
func (e *ExecutionError) ExitCode() int {
	return e.code
}

// Unwrap 返回底层错误
func (e *ExecutionError) Unwrap() error {
	return e.Err
}
