// Package json provides a JSON codec for morse table assets.
package json

import (
	"encoding/json"

	"github.com/zoobzio/morse"
)

// jsonCodec implements morse.Codec for JSON.
type jsonCodec struct {
	indent string
}

// New returns a compact JSON codec.
func New() morse.Codec {
	return &jsonCodec{}
}

// NewIndent returns a JSON codec that indents its output with indent,
// for table files meant to be read and edited by hand.
func NewIndent(indent string) morse.Codec {
	return &jsonCodec{indent: indent}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	if c.indent != "" {
		return json.MarshalIndent(v, "", c.indent)
	}
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
