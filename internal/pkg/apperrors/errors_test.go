package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Run("с причиной", func(t *testing.T) {
		cause := errors.New("file not found")
		err := NewAppError(ErrManifestRead, "не удалось прочитать манифест", cause)

		assert.Equal(t, "MANIFEST.READ_FAILED: не удалось прочитать манифест (file not found)", err.Error())
	})

	t.Run("без причины", func(t *testing.T) {
		err := NewAppError(ErrCommandNotFound, "команда не найдена", nil)

		assert.Equal(t, "COMMAND.NOT_FOUND: команда не найдена", err.Error())
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewAppError(ErrConfigLoad, "ошибка загрузки", cause)

	require.ErrorIs(t, err, cause)

	var appErr *AppError
	require.ErrorAs(t, error(err), &appErr)
	assert.Equal(t, ErrConfigLoad, appErr.Code)
}
