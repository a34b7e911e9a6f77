package lexer

import (
	"fmt"
)

// LexerErrorType 词法分析器错误类型
type LexerErrorType int

const (
	LexerErrorUnterminatedQuote LexerErrorType = iota // 未闭合的引号
)

// LexerError 表示词法分析器错误
type LexerError struct {
	Type   LexerErrorType
	Column int // 错误起始列号
}

// Error 实现 error 接口
func (e *LexerError) Error() string {
	switch e.Type {
	case LexerErrorUnterminatedQuote:
		if e.Column > 0 {
			return fmt.Sprintf("column %d: unterminated quoted string", e.Column)
		}
		return "unterminated quoted string"
	default:
		return "lexical error"
	}
}

// String 返回错误的字符串表示
func (e *LexerError) String() string {
	return e.Error()
}
