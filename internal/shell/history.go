package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// History 命令历史管理器
// 行内编辑时的历史浏览由readline负责，这里只管持久化
type History struct {
	commands []string
	maxSize  int
}

// NewHistory 创建新的历史管理器
func NewHistory(maxSize int) *History {
	return &History{
		commands: make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add 添加命令到历史
func (h *History) Add(cmd string) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return
	}

	// 避免连续重复
	if len(h.commands) > 0 && h.commands[len(h.commands)-1] == cmd {
		return
	}

	h.commands = append(h.commands, cmd)
	if len(h.commands) > h.maxSize {
		h.commands = h.commands[1:]
	}
}

// GetAll 获取所有历史命令
func (h *History) GetAll() []string {
	return h.commands
}

// Size 获取历史记录数量
func (h *History) Size() int {
	return len(h.commands)
}

// LoadFromFile 从文件加载历史记录
func (h *History) LoadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// 文件不存在不算错误
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.commands = append(h.commands, line)
		if len(h.commands) >= h.maxSize {
			break
		}
	}
	return nil
}

// SaveToFile 保存历史记录到文件
func (h *History) SaveToFile(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}

	content := strings.Join(h.commands, "\n")
	if content != "" {
		content += "\n"
	}
	return os.WriteFile(filename, []byte(content), 0o644)
}
