package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_WithAlias(t *testing.T) {
	t.Run("переименовывает успешный Document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report-2026.txt")

		doc, err := AtPath(path, "report-2026.txt", CreateIfAbsent).
			WithAlias("report").
			Document()

		require.NoError(t, err)
		assert.Equal(t, "report", doc.Alias())
	})

	t.Run("на Result с ошибкой сохраняет ошибку", func(t *testing.T) {
		res := AtPath(filepath.Join(t.TempDir(), "no.txt"), "no", CreateNever).
			WithAlias("renamed")

		require.Error(t, res.Err())
		assert.Equal(t, ErrCodeFileNotFound, CodeOf(res.Err()))
	})
}

func TestResult_SuggestRename(t *testing.T) {
	t.Run("занятый путь получает счётчик", func(t *testing.T) {
		dir := t.TempDir()
		res := AtPath(filepath.Join(dir, "shot.png"), "shot", CreateIfAbsent)
		require.NoError(t, res.Err())

		assert.Equal(t, filepath.Join(dir, "shot(1).png"), res.SuggestRename())
		// Предложение — dry-run: файл не создан, повтор даёт то же имя.
		assert.Equal(t, filepath.Join(dir, "shot(1).png"), res.SuggestRename())
	})

	t.Run("FILE.NOT_FOUND возвращает исходный путь", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.txt")
		res := AtPath(path, "absent", CreateNever)
		require.Error(t, res.Err())

		assert.Equal(t, path, res.SuggestRename())
	})

	t.Run("прочие ошибки дают пустую строку", func(t *testing.T) {
		res := At(AppConfig(AppID{}), "settings.toml", CreateIfAbsent)
		require.Error(t, res.Err())

		assert.Empty(t, res.SuggestRename())
	})
}

func TestResult_Accessors(t *testing.T) {
	t.Run("деградация при ошибке", func(t *testing.T) {
		res := AtPath(filepath.Join(t.TempDir(), "x.txt"), "x", CreateNever)

		assert.Empty(t, res.Path())
		assert.Empty(t, res.Name())
		assert.False(t, res.Exists())
	})

	t.Run("проксирование при успехе", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "y.txt")
		require.NoError(t, os.WriteFile(path, nil, filePermReadWrite))
		res := AtPath(path, "y", CreateNever)

		assert.Equal(t, path, res.Path())
		assert.Equal(t, "y.txt", res.Name())
		assert.True(t, res.Exists())
	})
}
