package shell

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/samber/lo"

	"gosh/internal/builtin"
	"gosh/pkg/platform"
)

// CompleteAction 一次补全请求应执行的动作
type CompleteAction int

const (
	ActionRing       CompleteAction = iota // 响铃
	ActionFillUnique                       // 唯一匹配，填充并追加空格
	ActionFillPrefix                       // 填充最长公共前缀，不加空格
	ActionListAll                          // 列出所有候选
)

// Completion 一次补全请求的结果
type Completion struct {
	Matches []string       // 匹配的候选，字典序去重
	Action  CompleteAction
	Fill    string // 填充动作时替换整个部分词的文本
}

// Engine 自动补全引擎
// 候选来自内置命令名和PATH目录中的可执行文件
//
// 歧义处理是一个两状态机（Clean / PendingAmbiguous）：
// 候选多于一个且没有可填充的公共前缀时先响铃并记住候选集，
// 紧接着的相同请求列出全部候选；任何填充动作或不同的部分词都回到初始状态
type Engine struct {
	pendingAmbiguous bool
	lastPartial      string
	lastMatches      []string
}

// NewEngine 创建新的补全引擎
func NewEngine() *Engine {
	return &Engine{}
}

// Complete 计算部分词的补全候选和应执行的动作
func (e *Engine) Complete(partial string) Completion {
	matches := e.candidates(partial)

	if len(matches) == 0 {
		e.reset()
		return Completion{Action: ActionRing}
	}

	if len(matches) == 1 {
		e.reset()
		return Completion{
			Matches: matches,
			Action:  ActionFillUnique,
			Fill:    matches[0] + " ",
		}
	}

	prefix := longestCommonPrefix(matches)
	if len(prefix) > len(partial) {
		e.reset()
		return Completion{
			Matches: matches,
			Action:  ActionFillPrefix,
			Fill:    prefix,
		}
	}

	// 没有可填充的前缀：第二次相同请求列出候选，否则响铃并挂起
	if e.pendingAmbiguous && e.lastPartial == partial && slices.Equal(e.lastMatches, matches) {
		e.reset()
		return Completion{Matches: matches, Action: ActionListAll}
	}

	e.pendingAmbiguous = true
	e.lastPartial = partial
	e.lastMatches = matches
	return Completion{Matches: matches, Action: ActionRing}
}

// candidates 收集所有以partial开头的候选名，去重并按字典序排序
// PATH每次重新扫描，目录内容的变化立即生效
func (e *Engine) candidates(partial string) []string {
	names := append(builtin.Names(), platform.ListExecutables(partial, platform.PathDirectories())...)

	matches := lo.Filter(names, func(name string, _ int) bool {
		return strings.HasPrefix(name, partial)
	})
	matches = lo.Uniq(matches)
	sort.Strings(matches)
	return matches
}

func (e *Engine) reset() {
	e.pendingAmbiguous = false
	e.lastPartial = ""
	e.lastMatches = nil
}

// longestCommonPrefix 返回所有候选的最长公共前缀
func longestCommonPrefix(names []string) string {
	if len(names) == 0 {
		return ""
	}

	prefix := names[0]
	for _, name := range names[1:] {
		for !strings.HasPrefix(name, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}

// Completer 实现readline的自动补全接口，把引擎动作映射到终端
type Completer struct {
	engine  *Engine
	out     io.Writer // 响铃和候选列表的输出
	refresh func()    // 列出候选后重绘提示行
}

// NewCompleter 创建新的补全器
func NewCompleter(engine *Engine) *Completer {
	return &Completer{
		engine:  engine,
		out:     os.Stdout,
		refresh: func() {},
	}
}

// Do 执行自动补全
// 只补全命令位置：部分词是光标之前的整行内容
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	partial := string(line[:pos])

	result := c.engine.Complete(partial)
	switch result.Action {
	case ActionFillUnique, ActionFillPrefix:
		remainder := result.Fill[len(partial):]
		return [][]rune{[]rune(remainder)}, pos

	case ActionListAll:
		// 在当前行下方列出候选，再重绘提示行
		fmt.Fprintf(c.out, "\r\n%s\r\n", strings.Join(result.Matches, "  "))
		c.refresh()
		return nil, 0

	default:
		c.bell()
		return nil, 0
	}
}

// bell 发出终端响铃
func (c *Completer) bell() {
	fmt.Fprint(c.out, "\a")
}
