package morse

import "context"

// Override interfaces let a type transform its own fields instead of the
// FieldProcessor walking them with reflection. When the clone implements
// one of these, the tag plans are ignored for that direction.

// Encodable bypasses reflection for EncodeFields.
type Encodable interface {
	// EncodeMorse encodes the receiver's text fields with t.
	// The receiver is a clone, so mutations are safe.
	EncodeMorse(ctx context.Context, t *Translator) error
}

// Decodable bypasses reflection for DecodeFields.
type Decodable interface {
	// DecodeMorse decodes the receiver's Morse fields with t.
	// The receiver is a clone, so mutations are safe.
	DecodeMorse(ctx context.Context, t *Translator) error
}
