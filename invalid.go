package morse

// DefaultPlaceholder is what DefaultInvalid emits for undecodable tokens.
const DefaultPlaceholder = "#"

// Op identifies the direction of a translation.
type Op uint8

const (
	// OpEncode is text to Morse.
	OpEncode Op = iota + 1

	// OpDecode is Morse to text.
	OpDecode
)

func (op Op) String() string {
	switch op {
	case OpEncode:
		return "encode"
	case OpDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// InvalidKind tells why input could not be mapped.
type InvalidKind uint8

const (
	// KindUnknownCharacter is a character no prioritized set defines.
	KindUnknownCharacter InvalidKind = iota + 1

	// KindUnknownPattern is a well-formed token whose pattern no
	// prioritized set defines.
	KindUnknownPattern

	// KindMalformedGlyph is a token containing a glyph that is neither
	// the dot nor the dash.
	KindMalformedGlyph
)

func (k InvalidKind) String() string {
	switch k {
	case KindUnknownCharacter:
		return "unknown character"
	case KindUnknownPattern:
		return "unknown pattern"
	case KindMalformedGlyph:
		return "malformed glyph"
	default:
		return "unknown"
	}
}

// Invalid describes one unit of input that could not be mapped.
// Input is the source character when encoding and the raw letter token
// when decoding.
type Invalid struct {
	Op    Op
	Kind  InvalidKind
	Input string
}

// InvalidFunc resolves unmappable input. The returned string is written
// to the output verbatim in place of the unit; an empty string drops it.
// Implementations must not panic.
type InvalidFunc func(Invalid) string

// DefaultInvalid passes unknown characters through when encoding and
// writes DefaultPlaceholder for undecodable tokens.
func DefaultInvalid(inv Invalid) string {
	if inv.Op == OpDecode {
		return DefaultPlaceholder
	}
	return inv.Input
}

// Passthrough writes the offending input unchanged.
func Passthrough(inv Invalid) string {
	return inv.Input
}

// Drop removes the offending input from the output.
func Drop(Invalid) string {
	return ""
}

// Replace writes s in place of any offending input.
func Replace(s string) InvalidFunc {
	return func(Invalid) string {
		return s
	}
}
