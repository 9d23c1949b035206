// Package xml provides an XML codec for morse table assets.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/morse"
)

// xmlCodec implements morse.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() morse.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as an indented XML document with a standard header.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
