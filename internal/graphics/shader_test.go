package graphics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramErrorNamesBothFiles(t *testing.T) {
	tests := []struct {
		name  string
		stage string
	}{
		{"vertex compile", "vertex"},
		{"fragment compile", "fragment"},
		{"link", "link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := programError("blocks/main.vert", "blocks/main.frag", &ShaderError{Stage: tt.stage, Log: "0:3: error\n\x00"})

			assert.Contains(t, err.Error(), "blocks/main.vert")
			assert.Contains(t, err.Error(), "blocks/main.frag")

			var shaderErr *ShaderError
			require.True(t, errors.As(err, &shaderErr))
			assert.Equal(t, tt.stage, shaderErr.Stage)
			assert.Equal(t, tt.stage+" shader failed: 0:3: error", shaderErr.Error())
		})
	}
}
