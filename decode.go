package morse

import (
	"context"
	"strings"
)

// decode translates Morse to text with fully defaulted options. It returns
// the output and the number of tokens routed through the invalid handler.
func decode(ctx context.Context, code string, o Options) (string, int) {
	var (
		out     strings.Builder
		word    strings.Builder
		table   = o.Registry.reverseTable(ctx, o.lookupOrder())
		invalid int
		written bool
	)

	for _, w := range strings.Split(code, o.Space) {
		word.Reset()

		for _, group := range strings.Split(w, o.Separator) {
			// Whitespace always separates letters, whatever the separator.
			for _, token := range strings.Fields(group) {
				p, ok := parseGlyphs(token, o.Dot, o.Dash)
				if !ok {
					invalid++
					word.WriteString(o.Invalid(Invalid{Op: OpDecode, Kind: KindMalformedGlyph, Input: token}))
					continue
				}
				char, ok := table[p]
				if !ok {
					invalid++
					word.WriteString(o.Invalid(Invalid{Op: OpDecode, Kind: KindUnknownPattern, Input: token}))
					continue
				}
				word.WriteString(char)
			}
		}

		if word.Len() == 0 {
			continue
		}
		if written {
			out.WriteByte(' ')
		}
		out.WriteString(word.String())
		written = true
	}

	return out.String(), invalid
}
