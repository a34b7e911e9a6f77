package lexer

// Quoting 表示token文本的引用来源
type Quoting int

const (
	QuotingNone   Quoting = iota // 未加引号
	QuotingSingle                // 至少有一段来自单引号
	QuotingDouble                // 至少有一段来自双引号
)

// Token 表示一个词法单元
// Text是去除引号并处理完转义之后的最终文本，token一旦生成不再修改
type Token struct {
	Text    string
	Quoting Quoting
	Column  int // token起始列号（从1开始）
}

// Quoted 判断token是否有任何部分来自引号内
// 引号内的文本不参与重定向操作符识别
func (t Token) Quoted() bool {
	return t.Quoting != QuotingNone
}

// String 返回引用来源的字符串表示
func (q Quoting) String() string {
	switch q {
	case QuotingNone:
		return "unquoted"
	case QuotingSingle:
		return "single-quoted"
	case QuotingDouble:
		return "double-quoted"
	default:
		return "unknown"
	}
}
