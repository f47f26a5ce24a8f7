package value

import (
	"fmt"
	"reflect"
)

// Kind classifies a value.
type Kind uint8

const (
	// KindNull is the nil value.
	KindNull Kind = iota
	// KindBool is a bool.
	KindBool
	// KindNumber is any Go integer or floating-point value.
	KindNumber
	// KindString is a string.
	KindString
	// KindArray is a *Array.
	KindArray
	// KindObject is a *Object.
	KindObject
	// KindOpaque is anything else.
	KindOpaque
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// KindOf classifies v. A nil *Array or *Object counts as Null.
func KindOf(v any) Kind {
	switch t := v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return KindNumber
	case string:
		return KindString
	case *Array:
		if t == nil {
			return KindNull
		}
		return KindArray
	case *Object:
		if t == nil {
			return KindNull
		}
		return KindObject
	default:
		return KindOpaque
	}
}

// IsReference reports whether v is a non-nil *Array or *Object.
func IsReference(v any) bool {
	k := KindOf(v)
	return k == KindArray || k == KindObject
}

// Array is an ordered list of values with reference semantics.
type Array struct {
	Items []any
}

// NewArray returns an Array holding items.
func NewArray(items ...any) *Array {
	if items == nil {
		items = []any{}
	}
	return &Array{Items: items}
}

// Len returns the number of items.
func (a *Array) Len() int {
	return len(a.Items)
}

// At returns the item at index i.
func (a *Array) At(i int) any {
	return a.Items[i]
}

// Append adds items to the end of the array and returns a.
func (a *Array) Append(items ...any) *Array {
	a.Items = append(a.Items, items...)
	return a
}

// Object is a string-keyed map that iterates in insertion order.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set stores v under key. A new key is appended to the iteration order;
// an existing key keeps its position. Set returns o to allow chaining.
func (o *Object) Set(key string, v any) *Object {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if _, ok := o.values[key]; !ok {
		return false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Range calls fn for each entry in insertion order until fn returns false.
func (o *Object) Range(fn func(key string, v any) bool) {
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// OpaqueText is the fallback string conversion for Opaque values.
// fmt.Stringer and error implementations are honoured; other values use
// their default fmt formatting, and a nil pointer of any type renders "null".
func OpaqueText(v any) string {
	if isNilPointer(v) {
		return "null"
	}
	switch t := v.(type) {
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	}
	return fmt.Sprint(v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
