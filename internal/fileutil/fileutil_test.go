package fileutil

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timepp/uu/uuerrors"
	"github.com/timepp/uu/value"
)

func TestFormatFromName(t *testing.T) {
	tests := map[string]value.Format{
		"a.json":       value.FormatJSON,
		"a.YAML":       value.FormatYAML,
		"a.yml.gz":     value.FormatYAML,
		"dump.mp.zst":  value.FormatMsgpack,
		"noext":        value.FormatAuto,
		"<stdin>":      value.FormatAuto,
		"archive.gz":   value.FormatAuto,
		"data.msgpack": value.FormatMsgpack,
	}
	for name, want := range tests {
		assert.Equal(t, want, FormatFromName(name), name)
	}
}

func TestCompressRoundTrip(t *testing.T) {
	payload := []byte(strings.Repeat(`{"k": "v"}`, 100))
	for _, comp := range []Compression{CompressionNone, CompressionGzip, CompressionZstd} {
		name := string(comp)
		if name == "" {
			name = "none"
		}
		t.Run(name, func(t *testing.T) {
			packed, err := Compress(payload, comp)
			require.NoError(t, err)
			assert.Equal(t, comp, DetectCompression(packed))

			out, got, err := Decompress(packed, 0)
			require.NoError(t, err)
			assert.Equal(t, comp, got)
			assert.Equal(t, payload, out)
		})
	}

	_, err := Compress(payload, Compression("lz4"))
	assert.True(t, errors.Is(err, uuerrors.ErrConfig))
}

func TestReadFrom_Limits(t *testing.T) {
	t.Run("stored size", func(t *testing.T) {
		_, err := ReadFrom(strings.NewReader("[1, 2, 3]"), "x.json", 4)
		var limitErr *uuerrors.ResourceLimitError
		require.True(t, errors.As(err, &limitErr))
		assert.Equal(t, "input_size", limitErr.ResourceType)
	})

	t.Run("decompressed size", func(t *testing.T) {
		packed, err := Compress(bytes.Repeat([]byte("a"), 4096), CompressionGzip)
		require.NoError(t, err)
		require.Less(t, len(packed), 1024)

		_, err = ReadFrom(bytes.NewReader(packed), "bomb.gz", 1024)
		var limitErr *uuerrors.ResourceLimitError
		require.True(t, errors.As(err, &limitErr))
		assert.Equal(t, "decompressed_size", limitErr.ResourceType)
	})

	t.Run("corrupt container", func(t *testing.T) {
		_, err := ReadFrom(bytes.NewReader(append([]byte{}, gzipMagic...)), "x.gz", 0)
		assert.True(t, errors.Is(err, uuerrors.ErrParse))
	})
}

func TestWriteAndRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json.zst")
	require.NoError(t, WriteFile(path, []byte(`{"b": 1, "a": [true]}`)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, OwnerReadWrite, info.Mode().Perm())

	in, err := Read(path, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, CompressionZstd, in.Compression)
	assert.Equal(t, value.FormatJSON, in.Format)

	v, err := in.Decode("")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, v.(*value.Object).Keys())
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.json"), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "<stdin>", DisplayName(StdinPath))
	assert.Equal(t, "a.json", DisplayName("a.json"))
}
