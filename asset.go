package morse

import (
	_ "embed"
	"encoding/xml"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed data/charsets.yaml
var embeddedAsset []byte

// Asset is the serialized form of a registry: one table of
// (character, pattern) pairs per character set, in lookup order.
//
// Any Codec can read or write an Asset, see LoadRegistry and
// Registry.Export. The embedded default tables are YAML.
type Asset struct {
	XMLName  xml.Name   `json:"-" yaml:"-" xml:"charsets" msgpack:"-" bson:"-"`
	Version  int        `json:"version" yaml:"version" xml:"version,attr" msgpack:"version" bson:"version"`
	Checksum string     `json:"checksum,omitempty" yaml:"checksum,omitempty" xml:"checksum,attr,omitempty" msgpack:"checksum,omitempty" bson:"checksum,omitempty"`
	Sets     []SetTable `json:"sets" yaml:"sets" xml:"set" msgpack:"sets" bson:"sets"`
}

// SetTable holds the entries of one character set.
type SetTable struct {
	Set     string  `json:"set" yaml:"set" xml:"name,attr" msgpack:"set" bson:"set"`
	Entries []Entry `json:"entries" yaml:"entries" xml:"entry" msgpack:"entries" bson:"entries"`
}

// Entry maps one character to its pattern.
type Entry struct {
	Char string  `json:"char" yaml:"char" xml:"char,attr" msgpack:"char" bson:"char"`
	Code Pattern `json:"code" yaml:"code" xml:"code,attr" msgpack:"code" bson:"code"`
}

// parseEmbeddedAsset decodes the tables compiled into the binary.
func parseEmbeddedAsset() (Asset, error) {
	var asset Asset
	if err := yaml.Unmarshal(embeddedAsset, &asset); err != nil {
		return Asset{}, newCodecError(ErrUnmarshal, err)
	}
	return asset, nil
}

// validatedTable is one checked set table.
type validatedTable struct {
	set     CharacterSet
	entries []Entry
	forward map[string]Pattern
}

// validateAsset checks every set and entry and returns the tables in
// asset order.
func validateAsset(asset Asset) ([]validatedTable, error) {
	seen := make(map[CharacterSet]bool, len(asset.Sets))
	upper := cases.Upper(language.Und)
	tables := make([]validatedTable, 0, len(asset.Sets))

	for _, st := range asset.Sets {
		cs, err := ParseCharacterSet(st.Set)
		if err != nil {
			return nil, newAssetError(ErrUnknownCharacterSet, st.Set, "", nil)
		}
		if seen[cs] {
			return nil, newAssetError(ErrDuplicateSet, st.Set, "", nil)
		}
		seen[cs] = true

		table := validatedTable{
			set:     cs,
			entries: make([]Entry, 0, len(st.Entries)),
			forward: make(map[string]Pattern, len(st.Entries)),
		}
		for _, e := range st.Entries {
			if utf8.RuneCountInString(e.Char) != 1 || !norm.NFC.IsNormalString(e.Char) {
				return nil, newAssetError(ErrInvalidEntry, st.Set, e.Char, nil)
			}
			// Text is upper-cased before lookup, so other forms are unreachable.
			if upper.String(e.Char) != e.Char {
				return nil, newAssetError(ErrInvalidEntry, st.Set, e.Char, nil)
			}
			if _, dup := table.forward[e.Char]; dup {
				return nil, newAssetError(ErrInvalidEntry, st.Set, e.Char, nil)
			}
			code, err := ParsePattern(string(e.Code))
			if err != nil {
				return nil, newAssetError(ErrInvalidPattern, st.Set, e.Char, err)
			}
			table.forward[e.Char] = code
			table.entries = append(table.entries, Entry{Char: e.Char, Code: code})
		}
		tables = append(tables, table)
	}

	return tables, nil
}
