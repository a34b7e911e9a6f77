package shell

import (
	"fmt"
	"io"
	"os"

	"gosh/internal/executor"
	"gosh/internal/lexer"
	"gosh/internal/parser"
)

// ErrorReporter 错误报告器
// 参考bash的错误格式，按错误来源加上脚本名和行号前缀
type ErrorReporter struct {
	scriptPath  string // 脚本文件路径，交互式模式为空
	lineNum     int
	interactive bool
	out         io.Writer
}

// NewErrorReporter 创建新的错误报告器
func NewErrorReporter(scriptPath string, interactive bool) *ErrorReporter {
	return &ErrorReporter{
		scriptPath:  scriptPath,
		interactive: interactive,
		out:         os.Stderr,
	}
}

// SetLineNum 设置当前行号
func (er *ErrorReporter) SetLineNum(lineNum int) {
	er.lineNum = lineNum
}

// ReportError 报告错误到stderr
func (er *ErrorReporter) ReportError(err error) {
	if err == nil {
		return
	}

	switch e := err.(type) {
	case *lexer.LexerError:
		fmt.Fprintf(er.out, "%s: syntax error: %s\n", er.prefix(), e.Error())
	case *parser.ParseError:
		fmt.Fprintf(er.out, "%s: syntax error: %s\n", er.prefix(), e.Error())
	case *executor.ExecutionError:
		fmt.Fprintf(er.out, "%s: %s\n", er.prefix(), e.Error())
	default:
		fmt.Fprintf(er.out, "%s: %v\n", er.prefix(), err)
	}
}

// prefix 计算错误消息前缀
// 交互式模式只有shell名，脚本模式附带文件名和行号
func (er *ErrorReporter) prefix() string {
	if er.scriptPath != "" {
		if er.lineNum > 0 {
			return fmt.Sprintf("gosh: %s: line %d", er.scriptPath, er.lineNum)
		}
		return fmt.Sprintf("gosh: %s", er.scriptPath)
	}
	if !er.interactive && er.lineNum > 0 {
		return fmt.Sprintf("gosh: line %d", er.lineNum)
	}
	return "gosh"
}
