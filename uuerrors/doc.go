// Package uuerrors provides structured error types for the uu library.
//
// Import path: github.com/timepp/uu/uuerrors
//
// The core algorithms (walker, serializer, segmenter) never return errors:
// cycles, oversized strings and oversized arrays are ordinary outcomes there.
// Errors only arise at the edges, when text is decoded into values, when a
// value is encoded into a format that cannot represent cycles, or when
// configuration is invalid.
//
// # Error Types
//
//   - [ParseError]: JSON/YAML/msgpack decoding failures
//   - [ResourceLimitError]: nesting depth or input size limits exceeded
//   - [ConfigError]: invalid options, flags, config files or environment values
//   - [CycleError]: a cyclic value was handed to an encoder that needs a tree
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrCircularReference]: Matches any [CycleError]
//
// # Usage Examples
//
//	v, err := value.Parse(data)
//	if errors.Is(err, uuerrors.ErrParse) {
//	    // malformed input
//	}
//
//	var limitErr *uuerrors.ResourceLimitError
//	if errors.As(err, &limitErr) {
//	    fmt.Printf("input too deep: %d > %d\n", limitErr.Actual, limitErr.Limit)
//	}
package uuerrors
