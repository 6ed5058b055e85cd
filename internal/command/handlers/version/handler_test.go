package version

import (
	"context"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/docforge/internal/config"
	"github.com/Kargones/docforge/internal/constants"
	"github.com/Kargones/docforge/internal/pkg/output"
	"github.com/Kargones/docforge/internal/pkg/testutil"
)

func TestVersionHandler_NameDescription(t *testing.T) {
	h := &VersionHandler{}
	assert.Equal(t, "version", h.Name())
	assert.NotEmpty(t, h.Description())
}

func TestVersionHandler_Execute_Text(t *testing.T) {
	t.Setenv(constants.EnvOutputFormat, output.FormatText)

	h := &VersionHandler{}
	var err error
	out := testutil.CaptureStdout(t, func() {
		err = h.Execute(context.Background(), &config.Config{})
	})

	require.NoError(t, err)
	assert.Contains(t, out, "docforge version "+constants.Version)
	assert.Contains(t, out, "commit: "+constants.CommitHash)
	assert.Contains(t, out, "go: "+runtime.Version())
}

func TestVersionHandler_Execute_JSON(t *testing.T) {
	t.Setenv(constants.EnvOutputFormat, output.FormatJSON)

	h := &VersionHandler{}
	var err error
	out := testutil.CaptureStdout(t, func() {
		err = h.Execute(context.Background(), &config.Config{})
	})

	require.NoError(t, err)

	var result output.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, output.StatusSuccess, result.Status)
	assert.Equal(t, "version", result.Command)

	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, constants.Version, data["version"])
	assert.Equal(t, runtime.Version(), data["go_version"])

	require.NotNil(t, result.Metadata)
	assert.Equal(t, constants.APIVersion, result.Metadata.APIVersion)
	assert.Len(t, result.Metadata.TraceID, 32)
}
