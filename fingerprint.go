package morse

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// fingerprint returns the hex-encoded BLAKE2b-256 digest of the tables in
// canonical form: for each set in order, its name and a newline, then one
// "char<TAB>code<LF>" line per entry. The digest identifies table content
// regardless of the format the asset was read from.
func fingerprint(tables []validatedTable) string {
	sum := blake2b.Sum256(canonicalTables(tables))
	return hex.EncodeToString(sum[:])
}

func canonicalTables(tables []validatedTable) []byte {
	var buf bytes.Buffer
	for _, t := range tables {
		buf.WriteString(t.set.String())
		buf.WriteByte('\n')
		for _, e := range t.entries {
			buf.WriteString(e.Char)
			buf.WriteByte('\t')
			buf.WriteString(string(e.Code))
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}
