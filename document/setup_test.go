package document

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_CreateNever(t *testing.T) {
	t.Run("отсутствующий файл возвращает FILE.NOT_FOUND", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.txt")

		got, err := setup(path, CreateNever, false)

		require.Error(t, err)
		assert.Equal(t, ErrCodeFileNotFound, CodeOf(err))
		assert.Empty(t, got)
		assert.NoFileExists(t, path)
	})

	t.Run("существующий файл возвращается без изменений", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "present.txt")
		require.NoError(t, os.WriteFile(path, []byte("данные"), filePermReadWrite))

		got, err := setup(path, CreateNever, false)

		require.NoError(t, err)
		assert.Equal(t, path, got)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "данные", string(content))
	})
}

func TestSetup_CreateIfAbsent(t *testing.T) {
	t.Run("создаёт отсутствующий файл вместе с родительскими каталогами", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "new.txt")

		got, err := setup(path, CreateIfAbsent, false)

		require.NoError(t, err)
		assert.Equal(t, path, got)
		assert.FileExists(t, path)
	})

	t.Run("повторный вызов не трогает содержимое", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "keep.txt")
		require.NoError(t, os.WriteFile(path, []byte("исходное"), filePermReadWrite))

		got, err := setup(path, CreateIfAbsent, false)

		require.NoError(t, err)
		assert.Equal(t, path, got)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "исходное", string(content))
	})
}

func TestSetup_CreateAutoRename(t *testing.T) {
	t.Run("свободное имя используется как есть", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "free.txt")

		got, err := setup(path, CreateAutoRename, false)

		require.NoError(t, err)
		assert.Equal(t, path, got)
		assert.FileExists(t, path)
	})

	t.Run("последовательные вызовы дают file, file(1), file(2)", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")

		first, err := setup(path, CreateAutoRename, false)
		require.NoError(t, err)
		second, err := setup(path, CreateAutoRename, false)
		require.NoError(t, err)
		third, err := setup(path, CreateAutoRename, false)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "file.txt"), first)
		assert.Equal(t, filepath.Join(dir, "file(1).txt"), second)
		assert.Equal(t, filepath.Join(dir, "file(2).txt"), third)
	})

	t.Run("подбор продолжается с существующего счётчика", func(t *testing.T) {
		dir := t.TempDir()
		for i := 0; i < 4; i++ {
			name := "doc.txt"
			if i > 0 {
				name = fmt.Sprintf("doc(%d).txt", i)
			}
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, filePermReadWrite))
		}

		got, err := setup(filepath.Join(dir, "doc.txt"), CreateAutoRename, false)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "doc(4).txt"), got)
		assert.FileExists(t, got)
	})

	t.Run("имя со счётчиком наращивается, а не дублируется", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "doc(2).txt"), nil, filePermReadWrite))

		got, err := setup(filepath.Join(dir, "doc(2).txt"), CreateAutoRename, false)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "doc(3).txt"), got)
	})
}

func TestSetup_DryRun(t *testing.T) {
	t.Run("ничего не создаётся на диске", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "sub", "plan.txt")

		got, err := setup(path, CreateIfAbsent, true)

		require.NoError(t, err)
		assert.Equal(t, path, got)
		assert.NoFileExists(t, path)
		assert.NoDirExists(t, filepath.Join(dir, "sub"))
	})

	t.Run("авто-переименование предсказывает свободное имя", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "busy.txt"), nil, filePermReadWrite))

		got, err := setup(filepath.Join(dir, "busy.txt"), CreateAutoRename, true)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "busy(1).txt"), got)
		assert.NoFileExists(t, got)
	})

	t.Run("CreateNever в dry-run по-прежнему требует существования", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.txt")

		_, err := setup(path, CreateNever, true)

		require.Error(t, err)
		assert.Equal(t, ErrCodeFileNotFound, CodeOf(err))
	})
}
