package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    CreatePolicy
		wantErr bool
	}{
		{input: "never", want: CreateNever},
		{input: "if-absent", want: CreateIfAbsent},
		{input: "auto-rename", want: CreateAutoRename},
		{input: "", want: CreateNever},
		{input: "  AUTO-RENAME  ", want: CreateAutoRename},
		{input: "always", wantErr: true},
		{input: "rename", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input="+tt.input, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreatePolicy_String(t *testing.T) {
	assert.Equal(t, "never", CreateNever.String())
	assert.Equal(t, "if-absent", CreateIfAbsent.String())
	assert.Equal(t, "auto-rename", CreateAutoRename.String())
}

func TestCreatePolicy_JSON(t *testing.T) {
	data, err := json.Marshal(CreateAutoRename)
	require.NoError(t, err)
	assert.Equal(t, `"auto-rename"`, string(data))

	var p CreatePolicy
	require.NoError(t, json.Unmarshal([]byte(`"if-absent"`), &p))
	assert.Equal(t, CreateIfAbsent, p)

	assert.Error(t, json.Unmarshal([]byte(`"bogus"`), &p))
}

func TestCreatePolicy_YAML(t *testing.T) {
	var cfg struct {
		Create CreatePolicy `yaml:"create"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("create: auto-rename\n"), &cfg))
	assert.Equal(t, CreateAutoRename, cfg.Create)

	assert.Error(t, yaml.Unmarshal([]byte("create: bogus\n"), &cfg))
}
