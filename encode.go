package morse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// encode translates text to Morse with fully defaulted options. It returns
// the output and the number of units routed through the invalid handler.
// Letters are joined with the separator; a word boundary is the space
// glyph with a separator on each side.
//
// Each word is walked one normalization segment at a time (a starter and
// its combining marks). The segment is upper-cased and composed only to
// find its pattern; the invalid handler sees the segment as written.
func encode(text string, o Options) (string, int) {
	var (
		out      strings.Builder
		word     strings.Builder
		order    = o.lookupOrder()
		upper    = cases.Upper(language.Und)
		patterns []Pattern
		invalid  int
		written  bool
	)

	for _, w := range strings.FieldsFunc(text, unicode.IsSpace) {
		word.Reset()
		letters := 0

		for len(w) > 0 {
			n := norm.NFC.NextBoundaryInString(w, true)
			if n <= 0 {
				n = len(w)
			}
			seg := w[:n]
			w = w[n:]

			var ok bool
			patterns, ok = lookupSegment(o.Registry, norm.NFC.String(upper.String(seg)), order, patterns[:0])
			if ok {
				for _, p := range patterns {
					if letters > 0 {
						word.WriteString(o.Separator)
					}
					p.renderTo(&word, o.Dot, o.Dash)
					letters++
				}
				continue
			}

			invalid++
			rep := o.Invalid(Invalid{Op: OpEncode, Kind: KindUnknownCharacter, Input: seg})
			if rep == "" {
				continue
			}
			if letters > 0 {
				word.WriteString(o.Separator)
			}
			word.WriteString(rep)
			letters++
		}

		if letters == 0 {
			continue
		}
		if written {
			out.WriteString(o.Separator)
			out.WriteString(o.Space)
			out.WriteString(o.Separator)
		}
		out.WriteString(word.String())
		written = true
	}

	return out.String(), invalid
}

// lookupSegment appends the patterns for key to dst. A key that is one
// table character yields one pattern; a key the case mapping expanded to
// several characters (ß to SS) yields one pattern per character, and
// fails if any of them is missing.
func lookupSegment(r *Registry, key string, order PriorityOrder, dst []Pattern) ([]Pattern, bool) {
	if p, ok := r.Forward(key, order); ok {
		return append(dst, p), true
	}
	if utf8.RuneCountInString(key) < 2 {
		return dst, false
	}
	for _, c := range key {
		p, ok := r.Forward(string(c), order)
		if !ok {
			return dst, false
		}
		dst = append(dst, p)
	}
	return dst, true
}
