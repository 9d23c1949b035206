package morse

import "fmt"

// CharacterSet identifies one supported alphabet or symbol category.
// The set of values is closed; use the constants below.
type CharacterSet uint8

const (
	// Undefined is the zero value and never names a table.
	Undefined CharacterSet = iota

	// Latin covers the ISO basic Latin letters A-Z.
	Latin

	// Numbers covers the digits 0-9.
	Numbers

	// Punctuation covers the common punctuation marks.
	Punctuation

	// LatinExtended covers accented and national Latin letters.
	LatinExtended

	// Cyrillic covers the Russian and Ukrainian alphabets.
	Cyrillic

	// Greek covers the Greek alphabet.
	Greek

	// Hebrew covers the Hebrew alphabet.
	Hebrew

	// Arabic covers the Arabic alphabet.
	Arabic

	// Persian covers the Persian alphabet.
	Persian

	// Japanese covers Wabun code katakana.
	Japanese

	// Korean covers SKATS jamo.
	Korean

	// Thai covers the Thai alphabet, vowels and tone marks.
	Thai
)

// characterSetNames maps each set to its text form. Order matches the
// constant order, which is also the canonical lookup order.
var characterSetNames = [...]string{
	Undefined:     "undefined",
	Latin:         "latin",
	Numbers:       "numbers",
	Punctuation:   "punctuation",
	LatinExtended: "latin_extended",
	Cyrillic:      "cyrillic",
	Greek:         "greek",
	Hebrew:        "hebrew",
	Arabic:        "arabic",
	Persian:       "persian",
	Japanese:      "japanese",
	Korean:        "korean",
	Thai:          "thai",
}

// validCharacterSets contains all character sets that name a table.
var validCharacterSets = map[CharacterSet]bool{
	Latin:         true,
	Numbers:       true,
	Punctuation:   true,
	LatinExtended: true,
	Cyrillic:      true,
	Greek:         true,
	Hebrew:        true,
	Arabic:        true,
	Persian:       true,
	Japanese:      true,
	Korean:        true,
	Thai:          true,
}

// CharacterSets returns every valid character set in canonical order.
func CharacterSets() []CharacterSet {
	sets := make([]CharacterSet, 0, len(validCharacterSets))
	for cs := Latin; cs <= Thai; cs++ {
		sets = append(sets, cs)
	}
	return sets
}

// IsValid returns true if the set is a known, non-zero character set.
func (cs CharacterSet) IsValid() bool {
	return validCharacterSets[cs]
}

func (cs CharacterSet) String() string {
	if int(cs) < len(characterSetNames) {
		return characterSetNames[cs]
	}
	return fmt.Sprintf("CharacterSet(%d)", uint8(cs))
}

// ParseCharacterSet returns the set named by s.
func ParseCharacterSet(s string) (CharacterSet, error) {
	for cs := Latin; cs <= Thai; cs++ {
		if characterSetNames[cs] == s {
			return cs, nil
		}
	}
	return Undefined, fmt.Errorf("%w: %q", ErrUnknownCharacterSet, s)
}

// MarshalText implements encoding.TextMarshaler.
func (cs CharacterSet) MarshalText() ([]byte, error) {
	if !cs.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCharacterSet, uint8(cs))
	}
	return []byte(cs.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (cs *CharacterSet) UnmarshalText(text []byte) error {
	parsed, err := ParseCharacterSet(string(text))
	if err != nil {
		return err
	}
	*cs = parsed
	return nil
}
