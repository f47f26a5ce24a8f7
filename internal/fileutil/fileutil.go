// Package fileutil loads input documents from files or stdin and writes
// output files, transparently handling gzip and zstd compression.
package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/timepp/uu/uuerrors"
	"github.com/timepp/uu/value"
)

// OwnerReadWrite is the file permission mode for output files, which may
// contain sensitive data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// StdinPath is the special path that reads from standard input.
const StdinPath = "-"

// Compression identifies a compression container.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Input is a loaded, decompressed document.
type Input struct {
	// Name is the path, or "<stdin>".
	Name string

	// Data is the decompressed payload.
	Data []byte

	// Format is guessed from the file extension; FormatAuto when unknown.
	Format value.Format

	// Compression is the container the payload was stored in.
	Compression Compression
}

// DisplayName returns a display-friendly name for a path.
func DisplayName(path string) string {
	if path == StdinPath {
		return "<stdin>"
	}
	return path
}

// Read loads path (or stdin for "-"), enforcing maxSize on both the stored
// and the decompressed size.
func Read(path string, maxSize int64) (*Input, error) {
	if path == StdinPath {
		return ReadFrom(os.Stdin, DisplayName(path), maxSize)
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("fileutil: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadFrom(f, path, maxSize)
}

// ReadFrom loads a document from r. name is used for format detection.
func ReadFrom(r io.Reader, name string, maxSize int64) (*Input, error) {
	raw, err := readLimited(r, maxSize, "input_size")
	if err != nil {
		return nil, err
	}
	data, comp, err := Decompress(raw, maxSize)
	if err != nil {
		return nil, err
	}
	return &Input{
		Name:        name,
		Data:        data,
		Format:      FormatFromName(name),
		Compression: comp,
	}, nil
}

// Decode decodes the input with its detected format unless format overrides it.
func (in *Input) Decode(format value.Format, opts ...value.DecodeOption) (any, error) {
	if format == "" || format == value.FormatAuto {
		format = in.Format
	}
	v, err := value.Decode(in.Data, format, opts...)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", in.Name, err)
	}
	return v, nil
}

// DetectCompression inspects the leading magic bytes.
func DetectCompression(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// Decompress returns the payload of a gzip or zstd container, or data itself
// when it is not compressed.
func Decompress(data []byte, maxSize int64) ([]byte, Compression, error) {
	comp := DetectCompression(data)
	switch comp {
	case CompressionGzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, comp, parseError(comp, err)
		}
		defer func() { _ = zr.Close() }()
		out, err := readLimited(zr, maxSize, "decompressed_size")
		if err != nil {
			return nil, comp, wrapDecompressErr(comp, err)
		}
		return out, comp, nil

	case CompressionZstd:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, comp, parseError(comp, err)
		}
		defer zr.Close()
		out, err := readLimited(zr, maxSize, "decompressed_size")
		if err != nil {
			return nil, comp, wrapDecompressErr(comp, err)
		}
		return out, comp, nil

	default:
		return data, comp, nil
	}
}

// Compress wraps data in the given container.
func Compress(data []byte, comp Compression) ([]byte, error) {
	switch comp {
	case CompressionNone:
		return data, nil
	case CompressionGzip:
		var buf bytes.Buffer
		zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
		if err != nil {
			return nil, err
		}
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, err
		}
		defer func() { _ = enc.Close() }()
		return enc.EncodeAll(data, nil), nil
	default:
		return nil, &uuerrors.ConfigError{Option: "compression", Value: string(comp), Message: "valid values: gzip, zstd"}
	}
}

// CompressionFromName infers a container from a .gz or .zst suffix.
func CompressionFromName(name string) Compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// FormatFromName infers a document format from the file extension, looking
// through a compression suffix (e.g. "data.json.gz").
func FormatFromName(name string) value.Format {
	if CompressionFromName(name) != CompressionNone {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return value.FormatJSON
	case ".yaml", ".yml":
		return value.FormatYAML
	case ".msgpack", ".mp", ".msgpk":
		return value.FormatMsgpack
	default:
		return value.FormatAuto
	}
}

// WriteFile writes data to path, compressing it when the name ends in .gz or .zst.
func WriteFile(path string, data []byte) error {
	out, err := Compress(data, CompressionFromName(path))
	if err != nil {
		return fmt.Errorf("fileutil: compressing %s: %w", path, err)
	}
	if err := os.WriteFile(filepath.Clean(path), out, OwnerReadWrite); err != nil {
		return fmt.Errorf("fileutil: %w", err)
	}
	return nil
}

func readLimited(r io.Reader, maxSize int64, resource string) ([]byte, error) {
	if maxSize <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxSize {
		return nil, &uuerrors.ResourceLimitError{
			ResourceType: resource,
			Limit:        maxSize,
			Message:      "input is too large",
		}
	}
	return data, nil
}

func wrapDecompressErr(comp Compression, err error) error {
	if _, ok := err.(*uuerrors.ResourceLimitError); ok {
		return err
	}
	return parseError(comp, err)
}

func parseError(comp Compression, err error) error {
	return &uuerrors.ParseError{Format: string(comp), Message: "corrupt compressed input", Cause: err}
}
