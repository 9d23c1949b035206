// Package morse translates text to and from Morse code.
//
// Tables for twelve character sets are embedded and loaded once into the
// default Registry. Glyphs for the two marks and both separators are
// configurable, and a priority order decides which character set owns a
// pattern that several sets define.
//
// # Basic Usage
//
//	code := morse.Encode("SOS SOS", morse.Options{})
//	// "... --- ... / ... --- ..."
//
//	text := morse.Decode(code, morse.Options{})
//	// "SOS SOS"
//
// # Character Sets
//
// Latin, Numbers, Punctuation, LatinExtended, Cyrillic, Greek, Hebrew,
// Arabic, Persian, Japanese, Korean and Thai. Many patterns are shared
// between sets; the first set in Options.Priority wins:
//
//	morse.Decode("--.", morse.Options{Priority: morse.PriorityOrder{morse.Greek}})
//	// "Γ"
//
// Unless Options.Exclusive is set, every set not named in the priority is
// consulted after the named ones, in canonical order.
//
// # Invalid Input
//
// Encode and Decode never fail. Characters and tokens that cannot be
// mapped go through Options.Invalid, whose result is written verbatim:
//
//   - DefaultInvalid: pass characters through on encode, "#" on decode
//   - Passthrough: write the offending input unchanged
//   - Replace(s): write s
//   - Drop: write nothing
//
// # Translators
//
// New validates a configuration once and reports capitan signals for
// each call:
//
//	t, err := morse.New(
//	    morse.WithDot("•"),
//	    morse.WithDash("–"),
//	    morse.WithPriority(morse.Cyrillic, morse.Latin),
//	)
//	code := t.Encode(ctx, "привет")
//
// # Tables
//
// A Registry can be built from any Asset, read with any Codec:
//
//	reg, err := morse.LoadRegistry(json.New(), data)
//
// The json, yaml, msgpack, xml and bson packages provide codecs.
package morse

import "context"

// Encode translates text to Morse. It never fails; zero-valued options
// take their defaults.
func Encode(text string, opts Options) string {
	out, _ := encode(text, opts.withDefaults())
	return out
}

// Decode translates Morse to text. It never fails; zero-valued options
// take their defaults.
func Decode(code string, opts Options) string {
	out, _ := decode(context.Background(), code, opts.withDefaults())
	return out
}

// Characters returns every table of the options' registry rendered with
// the options' glyphs.
func Characters(opts Options) map[CharacterSet]map[string]string {
	return characters(opts.withDefaults())
}
