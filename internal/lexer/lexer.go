// Package lexer 提供词法分析功能，按引用和转义规则将一行输入分解为token序列
package lexer

import (
	"strings"
	"unicode"
)

const escapeChar = '\\'

// 双引号内可被反斜杠转义的字符，其余反斜杠原样保留
var doubleQuoteEscapable = map[rune]bool{
	'"':  true,
	'\\': true,
	'$':  true,
	'\n': true,
}

// Lexer 词法分析器
// 负责将输入的shell命令行分解为一系列token
type Lexer struct {
	input  string
	column int // 当前列号
}

// New 创建新的词法分析器
func New(input string) *Lexer {
	return &Lexer{
		input:  input,
		column: 1,
	}
}

// Tokenize 扫描整行输入，返回token序列
// 规则：
//   - 引号外的空白分隔token，自身不进入token
//   - 单引号内所有字符（包括反斜杠）均为字面值
//   - 双引号内反斜杠只转义 " \ $ 和换行，其余反斜杠原样保留
//   - 引号外反斜杠转义下一个字符；转义的换行是续行，两个字符都丢弃
//   - 相邻的引号段和非引号段拼接为同一个token
//   - 空行或纯空白行返回空序列，不报错
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	var cur strings.Builder

	quoting := QuotingNone
	tokenStart := 0

	inSingle := false
	inDouble := false
	escaping := false

	for _, ch := range l.input {
		switch {
		case escaping:
			if inDouble && !doubleQuoteEscapable[ch] {
				// 不可转义的字符保留反斜杠本身
				cur.WriteRune(escapeChar)
			}
			if ch != '\n' {
				// 转义的换行是续行，直接丢弃
				cur.WriteRune(ch)
			}
			escaping = false

		case inSingle:
			if ch == '\'' {
				inSingle = false
			} else {
				cur.WriteRune(ch)
			}

		case inDouble:
			switch ch {
			case '"':
				inDouble = false
			case escapeChar:
				escaping = true
			default:
				cur.WriteRune(ch)
			}

		case ch == '\'':
			inSingle = true
			if quoting == QuotingNone {
				quoting = QuotingSingle
			}

		case ch == '"':
			inDouble = true
			if quoting == QuotingNone {
				quoting = QuotingDouble
			}

		case ch == escapeChar:
			escaping = true

		case unicode.IsSpace(ch):
			// 引号外的空白结束当前token
			if cur.Len() > 0 {
				tokens = append(tokens, Token{Text: cur.String(), Quoting: quoting, Column: tokenStart})
				cur.Reset()
			}
			quoting = QuotingNone
			tokenStart = 0

		default:
			if cur.Len() == 0 && tokenStart == 0 {
				tokenStart = l.column
			}
			cur.WriteRune(ch)
		}

		// 引号起始位置也算token的开头
		if tokenStart == 0 && (inSingle || inDouble || escaping) {
			tokenStart = l.column
		}
		l.column++
	}

	if inSingle || inDouble {
		return nil, &LexerError{
			Type:   LexerErrorUnterminatedQuote,
			Column: tokenStart,
		}
	}

	// 行尾悬挂的反斜杠视为续行符，直接丢弃
	if cur.Len() > 0 {
		tokens = append(tokens, Token{Text: cur.String(), Quoting: quoting, Column: tokenStart})
	}

	return tokens, nil
}

// Tokenize 一次性分解一行输入
func Tokenize(input string) ([]Token, error) {
	return New(input).Tokenize()
}
