package value

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/timepp/uu/uuerrors"
	"go.yaml.in/yaml/v4"
)

// Format identifies an input encoding.
type Format string

const (
	// FormatAuto decodes JSON or YAML text (JSON is a subset of YAML).
	FormatAuto Format = "auto"
	// FormatJSON decodes JSON text.
	FormatJSON Format = "json"
	// FormatYAML decodes YAML text, honouring anchors and aliases.
	FormatYAML Format = "yaml"
	// FormatMsgpack decodes a msgpack payload.
	FormatMsgpack Format = "msgpack"
)

// DefaultMaxDepth is the default nesting ceiling applied while decoding.
const DefaultMaxDepth = 10000

// DefaultMaxNodes is the default ceiling on the expanded node count of a
// document whose YAML aliases share subtrees.
const DefaultMaxNodes = 1_000_000

// ParseFormat converts a user-supplied format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatJSON, FormatYAML, FormatMsgpack:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "mp", "msgpk":
		return FormatMsgpack, nil
	default:
		return "", &uuerrors.ConfigError{
			Option:  "format",
			Value:   s,
			Message: "valid formats: auto, json, yaml, msgpack",
		}
	}
}

// DecodeOption configures Decode.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	maxDepth int
	maxNodes int
}

// WithMaxDepth sets the nesting ceiling. Non-positive values keep DefaultMaxDepth.
func WithMaxDepth(depth int) DecodeOption {
	return func(c *decodeConfig) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithMaxNodes bounds the number of nodes the decoded value presents to a
// walk once shared alias targets are counted on every path that reaches
// them. Non-positive values keep DefaultMaxNodes.
func WithMaxNodes(n int) DecodeOption {
	return func(c *decodeConfig) {
		if n > 0 {
			c.maxNodes = n
		}
	}
}

// Parse decodes JSON or YAML text into a value.
func Parse(data []byte) (any, error) {
	return Decode(data, FormatAuto)
}

// Decode decodes data in the given format into a value.
func Decode(data []byte, format Format, opts ...DecodeOption) (any, error) {
	cfg := decodeConfig{maxDepth: DefaultMaxDepth, maxNodes: DefaultMaxNodes}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch format {
	case FormatMsgpack:
		return decodeMsgpack(data, cfg.maxDepth)
	case FormatAuto, FormatJSON, FormatYAML, "":
		if format == "" {
			format = FormatAuto
		}
		return decodeText(data, format, cfg)
	default:
		return nil, &uuerrors.ConfigError{Option: "format", Value: string(format), Message: "unsupported format"}
	}
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

func decodeText(data []byte, format Format, cfg decodeConfig) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &uuerrors.ParseError{Format: string(format), Message: "empty input"}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		perr := &uuerrors.ParseError{Format: string(format), Cause: err}
		if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
			perr.Line, _ = strconv.Atoi(m[1])
		}
		return nil, perr
	}

	d := &nodeDecoder{
		format:   format,
		maxDepth: cfg.maxDepth,
		anchored: make(map[*yaml.Node]any),
	}
	v, err := d.decode(&doc, 0)
	if err != nil {
		return nil, err
	}
	if d.shared {
		if err := checkExpansion(v, cfg.maxNodes); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// nodeDecoder converts a yaml.Node tree into values. Anchored collections are
// registered before their children are decoded so that an alias to an
// enclosing anchor yields the same pointer, i.e. a cycle.
type nodeDecoder struct {
	format   Format
	maxDepth int
	anchored map[*yaml.Node]any
	shared   bool // an alias or merge key reused a subtree
}

func (d *nodeDecoder) decode(n *yaml.Node, depth int) (any, error) {
	if depth > d.maxDepth {
		return nil, &uuerrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(d.maxDepth),
			Actual:       int64(depth),
			Message:      fmt.Sprintf("at line %d", n.Line),
		}
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.decode(n.Content[0], depth)

	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, d.errorf(n, "unknown alias %q", n.Value)
		}
		d.shared = true
		if v, ok := d.anchored[n.Alias]; ok {
			return v, nil
		}
		return d.decode(n.Alias, depth)

	case yaml.MappingNode:
		obj := NewObject()
		d.anchored[n] = obj
		if err := d.fillObject(obj, n, depth); err != nil {
			return nil, err
		}
		return obj, nil

	case yaml.SequenceNode:
		arr := &Array{Items: make([]any, 0, len(n.Content))}
		d.anchored[n] = arr
		for _, child := range n.Content {
			v, err := d.decode(child, depth+1)
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, v)
		}
		return arr, nil

	case yaml.ScalarNode:
		return d.scalar(n)

	default:
		return nil, d.errorf(n, "unsupported node kind %v", n.Kind)
	}
}

func (d *nodeDecoder) fillObject(obj *Object, n *yaml.Node, depth int) error {
	if len(n.Content)%2 != 0 {
		return d.errorf(n, "mapping has an odd number of nodes")
	}
	for i := 0; i < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == "!!merge" {
			if err := d.merge(obj, valNode, depth); err != nil {
				return err
			}
			continue
		}

		key, err := d.key(keyNode)
		if err != nil {
			return err
		}
		v, err := d.decode(valNode, depth+1)
		if err != nil {
			return err
		}
		obj.Set(key, v)
	}
	return nil
}

// merge applies a YAML "<<" merge key: entries from the merged mapping(s)
// are added unless the key is already present.
func (d *nodeDecoder) merge(obj *Object, n *yaml.Node, depth int) error {
	d.shared = true
	sources := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		sources = n.Content
	}
	for _, src := range sources {
		v, err := d.decode(src, depth+1)
		if err != nil {
			return err
		}
		from, ok := v.(*Object)
		if !ok {
			return d.errorf(src, "merge key requires a mapping")
		}
		from.Range(func(k string, val any) bool {
			if !obj.Has(k) {
				obj.Set(k, val)
			}
			return true
		})
	}
	return nil
}

func (d *nodeDecoder) key(n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return "", d.errorf(n, "mapping keys must be scalars")
	}
	return n.Value, nil
}

func (d *nodeDecoder) scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, d.errorf(n, "invalid bool %q", n.Value)
		}
		return b, nil
	case "!!int":
		text := strings.ReplaceAll(n.Value, "_", "")
		if i, err := strconv.ParseInt(text, 0, 64); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(text, 0, 64); err == nil {
			return u, nil
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f, nil
		}
		return nil, d.errorf(n, "invalid int %q", n.Value)
	case "!!float":
		return d.float(n)
	default:
		return n.Value, nil
	}
}

func (d *nodeDecoder) float(n *yaml.Node) (any, error) {
	switch strings.ToLower(n.Value) {
	case ".inf", "+.inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	case ".nan":
		return math.NaN(), nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(n.Value, "_", ""), 64)
	if err != nil {
		return nil, d.errorf(n, "invalid float %q", n.Value)
	}
	return f, nil
}

func (d *nodeDecoder) errorf(n *yaml.Node, format string, args ...any) error {
	return &uuerrors.ParseError{
		Format:  string(d.format),
		Line:    n.Line,
		Column:  n.Column,
		Message: fmt.Sprintf(format, args...),
	}
}
