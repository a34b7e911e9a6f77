// Package builtin 实现shell内置命令
package builtin

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gosh/pkg/platform"
)

// Shell 内置命令所需的shell状态访问接口
// 只有cd和exit会修改状态
type Shell interface {
	// Getwd 返回当前工作目录
	Getwd() string
	// Chdir 切换工作目录
	Chdir(dir string) error
	// RequestExit 设置退出标志，REPL在当前命令结束后终止
	RequestExit(code int)
}

// BuiltinFunc 内置命令函数类型
// 输出写入已解析好的重定向目标，返回退出状态
type BuiltinFunc func(sh Shell, args []string, stdout, stderr io.Writer) int

var builtins map[string]BuiltinFunc

func init() {
	builtins = make(map[string]BuiltinFunc)
	builtins["cd"] = cd
	builtins["pwd"] = pwd
	builtins["echo"] = echo
	builtins["exit"] = exit
	builtins["type"] = typeOf
}

// Lookup 按名字查找内置命令
func Lookup(name string) (BuiltinFunc, bool) {
	fn, ok := builtins[name]
	return fn, ok
}

// Names 返回所有内置命令名，按字典序排序
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// cd 切换工作目录
// 只接受一个参数，~展开为主目录
func cd(sh Shell, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "cd: expected exactly one argument")
		return 1
	}

	dir := platform.NormalizePath(args[0])
	if err := sh.Chdir(dir); err != nil {
		fmt.Fprintf(stderr, "cd: %s: No such file or directory\n", args[0])
		return 1
	}
	return 0
}

// pwd 打印当前工作目录
func pwd(sh Shell, args []string, stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, sh.Getwd())
	return 0
}

// echo 打印参数，以单个空格连接
func echo(sh Shell, args []string, stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, strings.Join(args, " "))
	return 0
}

// exit 设置退出标志
// 可选的整数参数作为退出码，默认0
func exit(sh Shell, args []string, stdout, stderr io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintln(stderr, "exit: too many arguments")
		return 1
	}

	code := 0
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(stderr, "exit: %s: numeric argument required\n", args[0])
			return 2
		}
		code = parsed
	}

	sh.RequestExit(code)
	return code
}

// typeOf 显示命令的解析类别
// 内置命令优先于PATH中的外部命令
func typeOf(sh Shell, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "type: expected exactly one argument")
		return 1
	}

	name := args[0]
	if _, ok := builtins[name]; ok {
		fmt.Fprintf(stdout, "%s is a shell builtin\n", name)
		return 0
	}
	if location, ok := platform.FindExecutable(name, platform.PathDirectories()); ok {
		fmt.Fprintf(stdout, "%s is %s\n", name, location)
		return 0
	}

	fmt.Fprintf(stderr, "%s: not found\n", name)
	return 1
}
