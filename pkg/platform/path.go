// Package platform 提供路径规范化和PATH目录查找的辅助函数
package platform

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// NormalizePath 规范化路径，展开开头的 ~
func NormalizePath(path string) string {
	if strings.HasPrefix(path, "~") {
		home := HomeDir()
		if home != "" {
			path = strings.Replace(path, "~", home, 1)
		}
	}
	return filepath.Clean(path)
}

// HomeDir 返回用户主目录
func HomeDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home = os.Getenv("USERPROFILE")
	}
	return home
}

// PathDirectories 按顺序返回PATH环境变量中的目录
// 每次调用重新读取，PATH的变化立即生效
func PathDirectories() []string {
	pathEnv := os.Getenv("PATH")
	if pathEnv == "" {
		return nil
	}

	var dirs []string
	for _, dir := range strings.Split(pathEnv, string(os.PathListSeparator)) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// FindExecutable 在目录列表中按顺序查找名字完全匹配的可执行文件
// 返回第一个匹配的完整路径
func FindExecutable(name string, dirs []string) (string, bool) {
	for _, dir := range dirs {
		location := filepath.Join(dir, name)
		info, err := os.Stat(location)
		if err != nil {
			continue
		}
		if isExecutable(info) {
			return location, true
		}
	}
	return "", false
}

// ListExecutables 列出目录列表中所有名字以prefix开头的可执行文件名
// 结果去重，读取失败的目录直接跳过
func ListExecutables(prefix string, dirs []string) []string {
	seen := make(map[string]bool)
	var names []string

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasPrefix(name, prefix) || seen[name] {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if isExecutable(info) {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	return names
}

// isExecutable 判断是否为带执行权限的常规文件
func isExecutable(info fs.FileInfo) bool {
	return info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}
