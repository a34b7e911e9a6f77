package parser

// RedirMode 输出流重定向模式
type RedirMode int

const (
	RedirInherit  RedirMode = iota // 继承shell自身的流
	RedirTruncate                  // 截断写入目标文件
	RedirAppend                    // 追加写入目标文件
)

// RedirTarget 单个输出流的重定向目标
type RedirTarget struct {
	Mode RedirMode
	Path string // RedirInherit时为空
}

// Inherit 判断该流是否继承shell自身的流
func (t RedirTarget) Inherit() bool {
	return t.Mode == RedirInherit
}

// Append 判断是否为追加模式
func (t RedirTarget) Append() bool {
	return t.Mode == RedirAppend
}

// ParsedCommand 一条命令行解析后的结果
// Argv不包含重定向操作符及其目标token，保持原有相对顺序
type ParsedCommand struct {
	Argv   []string
	Stdout RedirTarget
	Stderr RedirTarget
}

// Name 返回命令名（argv[0]）
func (c *ParsedCommand) Name() string {
	return c.Argv[0]
}

// Args 返回命令名之后的参数
func (c *ParsedCommand) Args() []string {
	return c.Argv[1:]
}

// String 返回重定向模式的字符串表示
func (m RedirMode) String() string {
	switch m {
	case RedirInherit:
		return "inherit"
	case RedirTruncate:
		return "truncate"
	case RedirAppend:
		return "append"
	default:
		return "unknown"
	}
}
