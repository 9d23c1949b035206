// Package yaml provides a YAML codec for morse table assets.
// The tables embedded in morse are written in this format.
package yaml

import (
	"bytes"

	"github.com/zoobzio/morse"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements morse.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() morse.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML with two-space indentation.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
