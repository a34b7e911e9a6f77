// Package parser 将token序列解析为带重定向信息的命令
package parser

import (
	"regexp"
	"strconv"

	"gosh/internal/lexer"
)

// 重定向操作符的形式：可选的文件描述符数字，一个>，可选的第二个>表示追加
// 只有完全未加引号的token才按操作符解释
var redirectPattern = regexp.MustCompile(`^([0-9]+)?>(>)?$`)

// Parser 重定向解析器
type Parser struct {
	tokens []lexer.Token
}

// New 创建新的解析器
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse 从左到右扫描token序列，提取重定向操作符并组装argv
// 同一个流被多次重定向时，最后一个生效
func (p *Parser) Parse() (*ParsedCommand, error) {
	cmd := &ParsedCommand{}

	for i := 0; i < len(p.tokens); i++ {
		tok := p.tokens[i]

		groups := matchRedirect(tok)
		if groups == nil {
			cmd.Argv = append(cmd.Argv, tok.Text)
			continue
		}

		fd := 1
		if groups[1] != "" {
			// 正则只匹配数字，忽略解析错误
			fd, _ = strconv.Atoi(groups[1])
		}
		if fd != 1 && fd != 2 {
			return nil, &ParseError{
				Type:  ParseErrorUnsupportedDescriptor,
				Token: tok.Text,
			}
		}

		// 操作符后面必须跟一个目标路径token，目标自身不能又是操作符
		if i+1 >= len(p.tokens) || matchRedirect(p.tokens[i+1]) != nil {
			return nil, &ParseError{
				Type:  ParseErrorMissingRedirectTarget,
				Token: tok.Text,
			}
		}

		target := RedirTarget{
			Mode: RedirTruncate,
			Path: p.tokens[i+1].Text,
		}
		if groups[2] != "" {
			target.Mode = RedirAppend
		}

		if fd == 1 {
			cmd.Stdout = target
		} else {
			cmd.Stderr = target
		}
		i++
	}

	if len(cmd.Argv) == 0 {
		return nil, &ParseError{Type: ParseErrorEmptyCommand}
	}

	return cmd, nil
}

// matchRedirect 判断token是否为重定向操作符，返回正则分组
func matchRedirect(tok lexer.Token) []string {
	if tok.Quoted() {
		return nil
	}
	return redirectPattern.FindStringSubmatch(tok.Text)
}

// Parse 一次性解析token序列
func Parse(tokens []lexer.Token) (*ParsedCommand, error) {
	return New(tokens).Parse()
}
