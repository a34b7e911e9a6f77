package parser

import (
	"fmt"
)

// ParseErrorType 解析错误类型
type ParseErrorType int

const (
	ParseErrorMissingRedirectTarget ParseErrorType = iota // 重定向操作符后缺少目标
	ParseErrorEmptyCommand                                // 去除重定向后argv为空
	ParseErrorUnsupportedDescriptor                       // 不支持的文件描述符
)

// ParseError 表示解析错误
type ParseError struct {
	Type  ParseErrorType
	Token string // 导致错误的token
}

// Error 实现 error 接口
func (e *ParseError) Error() string {
	switch e.Type {
	case ParseErrorMissingRedirectTarget:
		return fmt.Sprintf("missing redirection target after `%s'", e.Token)
	case ParseErrorEmptyCommand:
		return "missing command"
	case ParseErrorUnsupportedDescriptor:
		return fmt.Sprintf("unsupported file descriptor in `%s'", e.Token)
	default:
		return "parse error"
	}
}

// String 返回错误的字符串表示
func (e *ParseError) String() string {
	return e.Error()
}
