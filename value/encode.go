package value

import (
	"strconv"

	"github.com/timepp/uu/internal/ancestry"
	"github.com/timepp/uu/uuerrors"
	"go.yaml.in/yaml/v4"
)

// EncodeYAML renders an acyclic value as a YAML document, preserving object
// key order. A cycle yields a *uuerrors.CycleError.
func EncodeYAML(v any) ([]byte, error) {
	node, err := ToYAMLNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// ToYAMLNode converts an acyclic value into a yaml.Node tree.
func ToYAMLNode(v any) (*yaml.Node, error) {
	return yamlNode(v, ancestry.New(16), nil)
}

func yamlNode(v any, stack *ancestry.Stack, path []string) (*yaml.Node, error) {
	switch KindOf(v) {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.(bool))}, nil
	case KindNumber:
		text, _ := FormatNumber(v)
		if text == "null" {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
		}
		tag := "!!float"
		if _, err := strconv.ParseInt(text, 10, 64); err == nil {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}, nil
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.(string)}, nil
	case KindOpaque:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: OpaqueText(v)}, nil
	}

	if stack.Contains(v) {
		return nil, &uuerrors.CycleError{Path: path, Operation: "encode yaml"}
	}
	stack.Push(v)
	defer stack.Pop()

	switch t := v.(type) {
	case *Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, item := range t.Items {
			child, err := yamlNode(item, stack, childPath(path, indexKey(i)))
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	default:
		o := v.(*Object)
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range o.keys {
			child, err := yamlNode(o.values[k], stack, childPath(path, k))
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, child)
		}
		return n, nil
	}
}

func indexKey(i int) string {
	return strconv.Itoa(i)
}

// childPath returns a fresh slice so callers may retain it.
func childPath(path []string, key string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = key
	return out
}
