package executor

import (
	"os"
)

// State shell进程级状态，贯穿REPL整个生命周期
// 工作目录只由cd修改，退出标志只由exit设置
type State struct {
	cwd      string
	exitCode int
	exitSet  bool
}

// NewState 创建新的shell状态，工作目录取自当前进程
func NewState() (*State, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &State{cwd: cwd}, nil
}

// Getwd 返回当前工作目录
func (s *State) Getwd() string {
	return s.cwd
}

// Chdir 切换工作目录
// 进程的工作目录一并切换，失败时状态保持不变
func (s *State) Chdir(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		// 切换成功但无法读取，退回给定路径
		cwd = dir
	}
	s.cwd = cwd
	return nil
}

// RequestExit 设置退出标志
func (s *State) RequestExit(code int) {
	s.exitCode = code
	s.exitSet = true
}

// ExitRequested 查询退出标志
func (s *State) ExitRequested() (int, bool) {
	return s.exitCode, s.exitSet
}
