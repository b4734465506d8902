package message

import (
	"bytes"
	"encoding/json"
)

// Marshal encodes v as compact JSON without escaping <, > and &.
// Text the user sent is echoed back byte for byte.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
