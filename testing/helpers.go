// Package testing provides fixtures for tests of morse and its codecs.
package testing

import (
	"testing"

	"github.com/zoobzio/morse"
)

// Pangram and its Morse form with default options.
const (
	Pangram     = "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG"
	PangramCode = "- .... . / --.- ..- .. -.-. -.- / -... .-. --- .-- -. / ..-. --- -..- / .--- ..- -- .--. ... / --- ...- . .-. / - .... . / .-.. .- --.. -.-- / -.. --- --."
)

// CollisionAsset returns a two-set asset in which latin N and cyrillic Н
// share the pattern "-.".
func CollisionAsset() morse.Asset {
	return morse.Asset{
		Version: 1,
		Sets: []morse.SetTable{
			{Set: "latin", Entries: []morse.Entry{
				{Char: "E", Code: "."},
				{Char: "N", Code: "-."},
			}},
			{Set: "cyrillic", Entries: []morse.Entry{
				{Char: "Ж", Code: "...-"},
				{Char: "Н", Code: "-."},
			}},
		},
	}
}

// TestRegistry builds a registry from CollisionAsset.
func TestRegistry(tb testing.TB, opts ...morse.RegistryOption) *morse.Registry {
	tb.Helper()
	reg, err := morse.NewRegistry(CollisionAsset(), opts...)
	if err != nil {
		tb.Fatalf("NewRegistry() error: %v", err)
	}
	return reg
}

// TestTranslator creates a translator, failing the test on error.
func TestTranslator(tb testing.TB, opts ...morse.Option) *morse.Translator {
	tb.Helper()
	tr, err := morse.New(opts...)
	if err != nil {
		tb.Fatalf("New() error: %v", err)
	}
	return tr
}

// Telegram is a test type with tagged text fields.
type Telegram struct {
	ID      string   `json:"id" yaml:"id" xml:"id" msgpack:"id" bson:"id"`
	Body    string   `json:"body" yaml:"body" xml:"body" msgpack:"body" bson:"body" morse:"text"`
	Headers []string `json:"headers" yaml:"headers" xml:"header" msgpack:"headers" bson:"headers" morse:"text"`
}

// Clone implements morse.Cloner[Telegram].
func (m Telegram) Clone() Telegram {
	if m.Headers != nil {
		m.Headers = append([]string(nil), m.Headers...)
	}
	return m
}
