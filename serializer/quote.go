package serializer

import (
	"bytes"
	"encoding/json"
)

// quote returns s as a JSON string literal. HTML characters are left as is;
// invalid UTF-8 becomes U+FFFD and U+2028/U+2029 are escaped.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // a string always encodes
	return string(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}))
}
