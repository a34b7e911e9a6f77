package lexer

import (
	"testing"
)

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		// 空白分隔
		{"echo hello", []string{"echo", "hello"}},
		{"echo       hello", []string{"echo", "hello"}},
		{"  echo hello  ", []string{"echo", "hello"}},
		{"", nil},
		{"   \t  ", nil},

		// 单引号
		{"echo 'hello world'", []string{"echo", "hello world"}},
		{"hello 'to the world'     'from ' me", []string{"hello", "to the world", "from ", "me"}},
		{`'hello\\world'`, []string{`hello\\world`}},
		{`echo 'to "the" world'`, []string{"echo", `to "the" world`}},

		// 双引号
		{`echo "hello world"`, []string{"echo", "hello world"}},
		{`echo "to 'the' world"`, []string{"echo", "to 'the' world"}},
		{`hello "123""456" world`, []string{"hello", "123456", "world"}},

		// 双引号内的转义：只转义 " \ $
		{`echo "a\"b"`, []string{"echo", `a"b`}},
		{`"he\\o"`, []string{`he\o`}},
		{`echo "\$HOME"`, []string{"echo", "$HOME"}},
		{`echo "wor\d"`, []string{"echo", `wor\d`}},

		// 引号外的转义
		{`hello\ \ \ world`, []string{"hello   world"}},
		{`hello \'world\'`, []string{"hello", "'world'"}},
		{`hello \"world\"`, []string{"hello", `"world"`}},
		{`he\\o wor\\d`, []string{`he\o`, `wor\d`}},
		{`he\o wor\d`, []string{"heo", "word"}},

		// 相邻引号段拼接为同一个token
		{"fo'o'bar", []string{"foobar"}},
		{"hello w'orl'd", []string{"hello", "world"}},
		{"hello wo'rld 'oh", []string{"hello", "world oh"}},
		{`hello w"o'r'l"d`, []string{"hello", "wo'r'ld"}},

		// 转义的换行是续行
		{"hello to \\\nthe world", []string{"hello", "to", "the", "world"}},
		{"echo \"to the \\\nworld\"", []string{"echo", "to the world"}},
	}

	for _, tt := range tests {
		tokens, err := Tokenize(tt.input)
		if err != nil {
			t.Errorf("测试 %q: 意外的错误: %v", tt.input, err)
			continue
		}
		got := texts(tokens)
		if len(got) != len(tt.expected) {
			t.Errorf("测试 %q: token数量错误，期望 %d，得到 %d (%v)",
				tt.input, len(tt.expected), len(got), got)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("测试 %q [%d]: token文本错误，期望 %q，得到 %q",
					tt.input, i, tt.expected[i], got[i])
			}
		}
	}
}

func TestTokenizeQuoting(t *testing.T) {
	tests := []struct {
		input    string
		expected []Quoting
	}{
		{"echo hello", []Quoting{QuotingNone, QuotingNone}},
		{"'a b'", []Quoting{QuotingSingle}},
		{`"a b"`, []Quoting{QuotingDouble}},
		{"fo'o'bar", []Quoting{QuotingSingle}},
		{`echo '>' ">"`, []Quoting{QuotingNone, QuotingSingle, QuotingDouble}},
	}

	for _, tt := range tests {
		tokens, err := Tokenize(tt.input)
		if err != nil {
			t.Fatalf("测试 %q: 意外的错误: %v", tt.input, err)
		}
		if len(tokens) != len(tt.expected) {
			t.Fatalf("测试 %q: token数量错误，期望 %d，得到 %d",
				tt.input, len(tt.expected), len(tokens))
		}
		for i, tok := range tokens {
			if tok.Quoting != tt.expected[i] {
				t.Errorf("测试 %q [%d]: 引用来源错误，期望 %s，得到 %s",
					tt.input, i, tt.expected[i], tok.Quoting)
			}
		}
	}
}

func TestTokenizeWhitespaceInsensitive(t *testing.T) {
	// 空白数量不影响分词结果
	pairs := [][2]string{
		{"a  b", "a b"},
		{"a\tb", "a b"},
		{"  echo hi  ", "echo hi"},
	}

	for _, pair := range pairs {
		left, err := Tokenize(pair[0])
		if err != nil {
			t.Fatalf("测试 %q: 意外的错误: %v", pair[0], err)
		}
		right, err := Tokenize(pair[1])
		if err != nil {
			t.Fatalf("测试 %q: 意外的错误: %v", pair[1], err)
		}
		if len(left) != len(right) {
			t.Fatalf("测试 %q vs %q: token数量不一致", pair[0], pair[1])
		}
		for i := range left {
			if left[i].Text != right[i].Text {
				t.Errorf("测试 %q vs %q [%d]: %q != %q",
					pair[0], pair[1], i, left[i].Text, right[i].Text)
			}
		}
	}
}
