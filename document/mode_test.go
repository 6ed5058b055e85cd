package document

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_Capabilities(t *testing.T) {
	tests := []struct {
		mode       Mode
		readable   bool
		writable   bool
		appendable bool
	}{
		{mode: ModeRead, readable: true},
		{mode: ModeReplace, writable: true},
		{mode: ModeAppend, writable: true, appendable: true},
		{mode: ModeReadReplace, readable: true, writable: true},
		{mode: ModeReadAppend, readable: true, writable: true, appendable: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.readable, tt.mode.Readable(), "Readable")
			assert.Equal(t, tt.writable, tt.mode.Writable(), "Writable")
			assert.Equal(t, tt.appendable, tt.mode.Appendable(), "Appendable")
		})
	}
}

func TestMode_Flags(t *testing.T) {
	assert.Equal(t, os.O_RDONLY, ModeRead.flags())
	assert.Equal(t, os.O_WRONLY|os.O_TRUNC, ModeReplace.flags())
	assert.Equal(t, os.O_WRONLY|os.O_APPEND, ModeAppend.flags())
	assert.Equal(t, os.O_RDWR|os.O_TRUNC, ModeReadReplace.flags())
	assert.Equal(t, os.O_RDWR|os.O_APPEND, ModeReadAppend.flags())
}
