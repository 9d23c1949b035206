// Package bson provides a BSON codec for morse table assets, for storing
// tables as MongoDB documents.
package bson

import (
	"github.com/zoobzio/morse"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements morse.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() morse.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as a BSON document.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal validates data as a single BSON document and decodes it
// into v. Stored tables that were truncated or corrupted are rejected
// before any field is decoded.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	if err := bson.Raw(data).Validate(); err != nil {
		return err
	}
	return bson.Unmarshal(data, v)
}
