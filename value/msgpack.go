package value

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/timepp/uu/internal/ancestry"
	"github.com/timepp/uu/uuerrors"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// decodeMsgpack walks the msgpack stream with the low-level decoder so that
// map entry order survives (the generic decoder would build Go maps).
func decodeMsgpack(data []byte, maxDepth int) (any, error) {
	if len(data) == 0 {
		return nil, &uuerrors.ParseError{Format: string(FormatMsgpack), Message: "empty input"}
	}
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	v, err := decodeMsgpackValue(dec, 0, maxDepth)
	if err != nil {
		return nil, err
	}
	if _, err := dec.PeekCode(); !errors.Is(err, io.EOF) {
		return nil, &uuerrors.ParseError{Format: string(FormatMsgpack), Message: "trailing data after first value"}
	}
	return v, nil
}

func decodeMsgpackValue(dec *msgpack.Decoder, depth, maxDepth int) (any, error) {
	if depth > maxDepth {
		return nil, &uuerrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(maxDepth),
			Actual:       int64(depth),
		}
	}

	code, err := dec.PeekCode()
	if err != nil {
		return nil, msgpackError(err)
	}

	switch {
	case msgpcode.IsFixedMap(code) || code == msgpcode.Map16 || code == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, msgpackError(err)
		}
		obj := NewObject()
		for i := 0; i < n; i++ {
			k, err := dec.DecodeInterfaceLoose()
			if err != nil {
				return nil, msgpackError(err)
			}
			key, ok := k.(string)
			if !ok {
				if b, isBytes := k.([]byte); isBytes {
					key = string(b)
				} else {
					key = fmt.Sprint(k)
				}
			}
			v, err := decodeMsgpackValue(dec, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		return obj, nil

	case msgpcode.IsFixedArray(code) || code == msgpcode.Array16 || code == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, msgpackError(err)
		}
		if n < 0 {
			return nil, nil
		}
		arr := &Array{Items: make([]any, 0, n)}
		for i := 0; i < n; i++ {
			v, err := decodeMsgpackValue(dec, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, v)
		}
		return arr, nil
	}

	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return nil, msgpackError(err)
	}
	if b, ok := v.([]byte); ok {
		return string(b), nil
	}
	return v, nil
}

func msgpackError(err error) error {
	return &uuerrors.ParseError{Format: string(FormatMsgpack), Cause: err}
}

// EncodeMsgpack encodes an acyclic value as msgpack, preserving object key
// order. Shared (acyclic) subgraphs are written once per path. A cycle yields
// a *uuerrors.CycleError.
func EncodeMsgpack(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeMsgpackValue(enc, v, ancestry.New(16), nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeMsgpackValue(enc *msgpack.Encoder, v any, stack *ancestry.Stack, path []string) error {
	switch KindOf(v) {
	case KindNull:
		return enc.EncodeNil()
	case KindBool:
		return enc.EncodeBool(v.(bool))
	case KindString:
		return enc.EncodeString(v.(string))
	case KindNumber:
		return enc.Encode(v)
	case KindOpaque:
		return enc.EncodeString(OpaqueText(v))
	}

	if stack.Contains(v) {
		return &uuerrors.CycleError{Path: path, Operation: "encode msgpack"}
	}
	stack.Push(v)
	defer stack.Pop()

	switch t := v.(type) {
	case *Array:
		if err := enc.EncodeArrayLen(len(t.Items)); err != nil {
			return err
		}
		for i, item := range t.Items {
			if err := encodeMsgpackValue(enc, item, stack, childPath(path, indexKey(i))); err != nil {
				return err
			}
		}
	case *Object:
		if err := enc.EncodeMapLen(t.Len()); err != nil {
			return err
		}
		for _, k := range t.keys {
			if err := enc.EncodeString(k); err != nil {
				return err
			}
			if err := encodeMsgpackValue(enc, t.values[k], stack, childPath(path, k)); err != nil {
				return err
			}
		}
	}
	return nil
}
