// Package value defines the JSON-like value universe that uu operates on.
//
// A value is one of:
//
//   - nil (Null)
//   - bool
//   - any Go integer or floating-point type (Number)
//   - string
//   - *Array: an ordered list of values
//   - *Object: a string-keyed map that remembers insertion order
//   - anything else (Opaque), rendered by a best-effort string conversion
//
// *Array and *Object are reference types. The same pointer may be reachable
// through several paths, or through itself, which is how shared subgraphs and
// cycles are represented:
//
//	a := value.NewObject()
//	a.Set("self", a) // a cycle to the root
//
// Values can be decoded from JSON or YAML ([Parse], [Decode]) and from
// msgpack ([FormatMsgpack]). YAML anchors and aliases decode to the same
// reference, so an alias that points at an enclosing anchor produces a cycle.
package value
