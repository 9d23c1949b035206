package morse

import (
	"fmt"
	"strings"
)

// Mark is one element of a Morse pattern.
type Mark byte

const (
	// Dot is the short mark.
	Dot Mark = '.'

	// Dash is the long mark.
	Dash Mark = '-'
)

// Pattern is an ordered sequence of marks in canonical notation, where
// '.' is a dot and '-' is a dash. Patterns compare structurally with ==
// and are independent of the glyphs used to render them.
type Pattern string

// NewPattern builds a pattern from marks.
func NewPattern(marks ...Mark) Pattern {
	var b strings.Builder
	b.Grow(len(marks))
	for _, m := range marks {
		b.WriteByte(byte(m))
	}
	return Pattern(b.String())
}

// ParsePattern parses canonical notation. The result is non-empty and
// contains only dots and dashes.
func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPattern)
	}
	for i := 0; i < len(s); i++ {
		if Mark(s[i]) != Dot && Mark(s[i]) != Dash {
			return "", fmt.Errorf("%w: %q", ErrInvalidPattern, s)
		}
	}
	return Pattern(s), nil
}

// Marks returns the marks of the pattern in order.
func (p Pattern) Marks() []Mark {
	marks := make([]Mark, len(p))
	for i := 0; i < len(p); i++ {
		marks[i] = Mark(p[i])
	}
	return marks
}

// Len returns the number of marks.
func (p Pattern) Len() int {
	return len(p)
}

// Render writes the pattern with the given glyphs.
func (p Pattern) Render(dot, dash string) string {
	var b strings.Builder
	p.renderTo(&b, dot, dash)
	return b.String()
}

func (p Pattern) renderTo(b *strings.Builder, dot, dash string) {
	for i := 0; i < len(p); i++ {
		if Mark(p[i]) == Dash {
			b.WriteString(dash)
		} else {
			b.WriteString(dot)
		}
	}
}

// parseGlyphs reads a token made of dot and dash glyphs back into a
// pattern. It reports false if the token contains anything else.
func parseGlyphs(token, dot, dash string) (Pattern, bool) {
	if token == "" {
		return "", false
	}
	var b strings.Builder
	for len(token) > 0 {
		switch {
		case strings.HasPrefix(token, dot):
			b.WriteByte(byte(Dot))
			token = token[len(dot):]
		case strings.HasPrefix(token, dash):
			b.WriteByte(byte(Dash))
			token = token[len(dash):]
		default:
			return "", false
		}
	}
	return Pattern(b.String()), true
}
