package cliutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timepp/uu/value"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d items, %v active", "Status", 42, true)
	assert.Equal(t, "Status: 42 items, true active", buf.String())
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestWritef_WriteError(t *testing.T) {
	assert.NotPanics(t, func() { Writef(errorWriter{}, "This will fail") })
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.NoError(t, ValidateOutputFormat(f))
	}
	assert.Error(t, ValidateOutputFormat("xml"))
}

func TestOutputStructured(t *testing.T) {
	type row struct {
		Path string `json:"path" yaml:"path"`
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, []row{{Path: "a.b"}}, FormatJSON))
		assert.Equal(t, "[\n  {\n    \"path\": \"a.b\"\n  }\n]\n", buf.String())
	})

	t.Run("yaml keeps value order", func(t *testing.T) {
		var buf bytes.Buffer
		doc := value.NewObject().Set("z", 1).Set("a", 2)
		require.NoError(t, OutputStructured(&buf, doc, FormatYAML))
		assert.Equal(t, "z: 1\na: 2\n", buf.String())
	})

	t.Run("json keeps value order", func(t *testing.T) {
		var buf bytes.Buffer
		doc := value.NewObject().Set("z", 1).Set("a", value.NewArray())
		require.NoError(t, OutputStructured(&buf, doc, FormatJSON))
		assert.Equal(t, "{\n  \"z\": 1,\n  \"a\": []\n}\n", buf.String())
	})

	t.Run("text rejected", func(t *testing.T) {
		assert.Error(t, OutputStructured(&bytes.Buffer{}, 1, FormatText))
	})
}
