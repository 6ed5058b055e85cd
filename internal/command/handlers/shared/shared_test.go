package shared

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/docforge/document"
	"github.com/Kargones/docforge/internal/pkg/apperrors"
	"github.com/Kargones/docforge/internal/pkg/testutil"
)

func TestHandleError(t *testing.T) {
	var err error
	out := testutil.CaptureStdout(t, func() {
		err = HandleError("файл не найден", "FILE.NOT_FOUND")
	})

	require.Error(t, err)
	assert.Equal(t, "FILE.NOT_FOUND: файл не найден", err.Error())
	assert.Contains(t, out, "Ошибка: файл не найден")
	assert.Contains(t, out, "Код: FILE.NOT_FOUND")
}

func TestFolderForRole(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		wantErr bool
	}{
		{name: "downloads", role: "downloads"},
		{name: "documents", role: "documents"},
		{name: "pictures", role: "pictures"},
		{name: "videos", role: "videos"},
		{name: "home", role: "home"},
		{name: "app-config", role: "app-config"},
		{name: "app-data", role: "app-data"},
		{name: "регистронезависимость", role: "Documents"},
		{name: "обрезка пробелов", role: "  home  "},
		{name: "неизвестная роль", role: "desktop", wantErr: true},
		{name: "пустая роль", role: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FolderForRole(tt.role, "com.example.App", nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ErrUnknownRole, CodeForError(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseAppID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want document.AppID
	}{
		{
			name: "полный reverse-DNS",
			raw:  "com.example.App",
			want: document.AppID{Qualifier: "com", Organization: "example", Application: "App"},
		},
		{
			name: "организация и приложение",
			raw:  "example.App",
			want: document.AppID{Organization: "example", Application: "App"},
		},
		{
			name: "только приложение",
			raw:  "App",
			want: document.AppID{Application: "App"},
		},
		{
			name: "многосегментная организация",
			raw:  "org.example.sub.App",
			want: document.AppID{Qualifier: "org", Organization: "example.sub", Application: "App"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAppID(tt.raw))
		})
	}
}

func TestCodeForError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "нет-такого.txt")
	docErr := document.AtPath(missing, "a", document.CreateNever).Err()
	require.Error(t, docErr)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "код document", err: docErr, want: document.CodeOf(docErr)},
		{
			name: "код AppError",
			err:  apperrors.NewAppError(apperrors.ErrManifestParse, "сломанный YAML", nil),
			want: apperrors.ErrManifestParse,
		},
		{
			name: "wrapped AppError",
			err:  fmt.Errorf("контекст: %w", apperrors.NewAppError(ErrUnknownRole, "роль не найдена", nil)),
			want: ErrUnknownRole,
		},
		{name: "произвольная ошибка", err: errors.New("boom"), want: "COMMAND.EXEC_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeForError(tt.err))
		})
	}
}
