package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile 在目录下创建指定权限的文件
func writeFile(t *testing.T, dir, name string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), perm))
	return path
}

func TestFindExecutable(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	writeFile(t, dirA, "mytool", 0o755)
	writeFile(t, dirB, "mytool", 0o755)
	writeFile(t, dirB, "plainfile", 0o644)

	// 第一个命中的目录优先
	path, ok := FindExecutable("mytool", []string{dirA, dirB})
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dirA, "mytool"), path)

	// 无执行权限的文件不算
	_, ok = FindExecutable("plainfile", []string{dirA, dirB})
	assert.False(t, ok)

	// 不存在的名字
	_, ok = FindExecutable("nosuchtool", []string{dirA, dirB})
	assert.False(t, ok)

	// 不存在的目录直接跳过
	path, ok = FindExecutable("mytool", []string{"/nonexistent-dir", dirB})
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dirB, "mytool"), path)
}

func TestListExecutables(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	writeFile(t, dirA, "mycat", 0o755)
	writeFile(t, dirA, "mycopy", 0o755)
	writeFile(t, dirB, "mycat", 0o755) // 重名，需要去重
	writeFile(t, dirB, "mydelete", 0o755)
	writeFile(t, dirB, "myplain", 0o644) // 无执行权限
	writeFile(t, dirB, "other", 0o755)   // 前缀不匹配

	names := ListExecutables("my", []string{dirA, dirB, "/nonexistent-dir"})
	assert.ElementsMatch(t, []string{"mycat", "mycopy", "mydelete"}, names)

	assert.Empty(t, ListExecutables("zzz", []string{dirA, dirB}))
}

func TestNormalizePath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	assert.Equal(t, "/home/tester", NormalizePath("~"))
	assert.Equal(t, "/home/tester/src", NormalizePath("~/src"))
	assert.Equal(t, "/usr/bin", NormalizePath("/usr/bin/"))
}

func TestPathDirectories(t *testing.T) {
	t.Setenv("PATH", "/usr/local/bin:/usr/bin::/bin")

	assert.Equal(t, []string{"/usr/local/bin", "/usr/bin", "/bin"}, PathDirectories())

	t.Setenv("PATH", "")
	assert.Empty(t, PathDirectories())
}
