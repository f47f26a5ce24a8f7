// Package cliutil provides output helpers shared by the uu commands.
package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/timepp/uu/serializer"
	"github.com/timepp/uu/value"
	"go.yaml.in/yaml/v4"
)

// Output format constants.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat returns an error for anything but text, json or yaml.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// OutputStructured writes data as indented JSON or as YAML.
// *value.Object and *value.Array trees keep their key order.
func OutputStructured(w io.Writer, data any, format string) error {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatJSON:
		if value.IsReference(data) {
			out = []byte(serializer.StringifyIndent(data, "  "))
		} else {
			out, err = json.MarshalIndent(data, "", "  ")
		}
	case FormatYAML:
		if value.IsReference(data) {
			out, err = value.EncodeYAML(data)
		} else {
			out, err = yaml.Marshal(data)
		}
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(string(out), "\n")); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
