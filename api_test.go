package morse_test

import (
	"testing"

	"github.com/zoobzio/morse"
)

const pangram = "the quick brown fox jumps over the lazy dog"

func TestEncode_EnglishAlphabet(t *testing.T) {
	want := "- .... . / --.- ..- .. -.-. -.- / -... .-. --- .-- -. / ..-. --- -..- / .--- ..- -- .--. ... / --- ...- . .-. / - .... . / .-.. .- --.. -.-- / -.. --- --."
	if got := morse.Encode(pangram, morse.Options{}); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_CustomGlyphs(t *testing.T) {
	opts := morse.Options{Dash: "–", Dot: "•", Space: "\\"}
	want := "– •••• • \\ ––•– ••– •• –•–• –•– \\ –••• •–• ––– •–– –• \\ ••–• ––– –••– \\ •––– ••– –– •––• ••• \\ ––– •••– • •–• \\ – •••• • \\ •–•• •– ––•• –•–– \\ –•• ––– ––•"
	if got := morse.Encode(pangram, opts); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestDecode_EnglishAlphabet(t *testing.T) {
	tests := []struct {
		name string
		code string
		opts morse.Options
	}{
		{
			name: "default glyphs",
			code: "- .... . / --.- ..- .. -.-. -.- / -... .-. --- .-- -. / ..-. --- -..- / .--- ..- -- .--. ... / --- ...- . .-. / - .... . / .-.. .- --.. -.-- / -.. --- --.",
		},
		{
			name: "custom glyphs",
			code: "– •••• • \\ ––•– ••– •• –•–• –•– \\ –••• •–• ––– •–– –• \\ ••–• ––– –••– \\ •––– ••– –– •––• ••• \\ ––– •••– • •–• \\ – •••• • \\ •–•• •– ––•• –•–– \\ –•• ––– ––•",
			opts: morse.Options{Dash: "–", Dot: "•", Space: "\\"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG"
			if got := morse.Decode(tt.code, tt.opts); got != want {
				t.Errorf("Decode() = %q, want %q", got, want)
			}
		})
	}
}

func TestDecode_Numbers(t *testing.T) {
	got := morse.Decode("----- .---- ..--- ...-- ....- ..... -.... --... ---.. ----.", morse.Options{})
	if got != "0123456789" {
		t.Errorf("Decode() = %q, want %q", got, "0123456789")
	}
}

func TestPunctuation(t *testing.T) {
	tests := []struct {
		text string
		code string
	}{
		{".,?'!/(", ".-.-.- --..-- ..--.. .----. -.-.-- -..-. -.--."},
		{")&:;=¿¡", "-.--.- .-... ---... -.-.-. -...- ..-.- --...-"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := morse.Encode(tt.text, morse.Options{}); got != tt.code {
				t.Errorf("Encode(%q) = %q, want %q", tt.text, got, tt.code)
			}
			if got := morse.Decode(tt.code, morse.Options{}); got != tt.text {
				t.Errorf("Decode(%q) = %q, want %q", tt.code, got, tt.text)
			}
		})
	}
}

func TestEncode_ExtendedLatin(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"ÃÁÅÀÂÄ", ".--.- .--.- .--.- .--.- .--.- .-.-"},
		{"ĄÆÇĆĈČ", ".-.- .-.- -.-.. -.-.. -.-.. --."},
		{"ĘÐÈËĘÉ", "..-.. ..--. .-..- ..-.. ..-.. ..-.."},
		{"ÊĞĜĤİÏ", "-..-. --.-. --.-. ---- .-..- -..--"},
		{"ÌĴŁŃÑÓ", ".---. .---. .-..- --.-- --.-- ---."},
		{"ÒÖÔØŚŞ", "---. ---. ---. ---. ...-... .--.."},
		{"ȘŠŜßÞÜ", "---- ---- ...-. ... ... .--.. ..--"},
		{"ÙŬŽŹŻ", "..-- ..-- --..- --..-. --..-"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := morse.Encode(tt.text, morse.Options{}); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestWordAndLetterSeparation(t *testing.T) {
	opts := morse.Options{Dot: ".", Dash: "-", Separator: " ", Space: "/"}

	code := morse.Encode("SOS SOS", opts)
	if code != "... --- ... / ... --- ..." {
		t.Errorf("Encode() = %q, want %q", code, "... --- ... / ... --- ...")
	}
	if got := morse.Decode(code, opts); got != "SOS SOS" {
		t.Errorf("Decode() = %q, want %q", got, "SOS SOS")
	}
}

func TestEncode_WhitespaceCollapsing(t *testing.T) {
	want := morse.Encode("A B", morse.Options{})

	for _, text := range []string{"A  B", "  A B  ", "A\tB", "A \n\n B"} {
		if got := morse.Encode(text, morse.Options{}); got != want {
			t.Errorf("Encode(%q) = %q, want %q", text, got, want)
		}
	}
}

func TestEncode_CaseInsensitive(t *testing.T) {
	lower := morse.Encode("hello", morse.Options{})
	upper := morse.Encode("HELLO", morse.Options{})

	if lower != upper {
		t.Errorf("Encode(hello) = %q, Encode(HELLO) = %q", lower, upper)
	}
	if upper != ".... . .-.. .-.. ---" {
		t.Errorf("Encode(HELLO) = %q", upper)
	}

	cyr := morse.Options{Priority: morse.PriorityOrder{morse.Cyrillic}}
	if a, b := morse.Encode("привет", cyr), morse.Encode("ПРИВЕТ", cyr); a != b {
		t.Errorf("cyrillic case mismatch: %q != %q", a, b)
	}
}

func TestEncode_InvalidPassthrough(t *testing.T) {
	got := morse.Encode("A ~ B", morse.Options{Invalid: morse.Passthrough})
	if got != ".- / ~ / -..." {
		t.Errorf("Encode() = %q, want %q", got, ".- / ~ / -...")
	}

	got = morse.Encode("A~B", morse.Options{})
	if got != ".- ~ -..." {
		t.Errorf("Encode() = %q, want %q", got, ".- ~ -...")
	}
}

func TestEncode_PassthroughKeepsCase(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"AÿB", ".- ÿ -..."},
		{"AёB", ".- ё -..."},
		{"A€B", ".- € -..."},
		{"aÿb", ".- ÿ -..."},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			for _, invalid := range []morse.InvalidFunc{morse.Passthrough, nil} {
				if got := morse.Encode(tt.text, morse.Options{Invalid: invalid}); got != tt.want {
					t.Errorf("Encode(%q) = %q, want %q", tt.text, got, tt.want)
				}
			}
		})
	}

	var seen []string
	record := func(inv morse.Invalid) string {
		seen = append(seen, inv.Input)
		return inv.Input
	}
	morse.Encode("xÿz ё", morse.Options{Invalid: record})
	if len(seen) != 2 || seen[0] != "ÿ" || seen[1] != "ё" {
		t.Errorf("handler inputs = %q, want [ÿ ё]", seen)
	}
}

func TestEncode_SharpS(t *testing.T) {
	// ß upper-cases to SS and encodes as two letters.
	if got := morse.Encode("ß", morse.Options{}); got != "... ..." {
		t.Errorf("Encode(ß) = %q, want %q", got, "... ...")
	}
	if got := morse.Encode("Aß", morse.Options{Invalid: morse.Drop}); got != ".- ... ..." {
		t.Errorf("Encode(Aß) = %q, want %q", got, ".- ... ...")
	}
}

func TestEncode_InvalidHandlers(t *testing.T) {
	tests := []struct {
		name    string
		invalid morse.InvalidFunc
		want    string
	}{
		{"replace", morse.Replace("?"), ".- ? -..."},
		{"drop", morse.Drop, ".- -..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := morse.Encode("A~B", morse.Options{Invalid: tt.invalid}); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}

	// A word whose letters are all dropped leaves no boundary behind.
	if got := morse.Encode("A ~~ B", morse.Options{Invalid: morse.Drop}); got != ".- / -..." {
		t.Errorf("Encode() = %q, want %q", got, ".- / -...")
	}
}

func TestDecode_MalformedGlyph(t *testing.T) {
	tests := []struct {
		name    string
		invalid morse.InvalidFunc
		want    string
	}{
		{"default", nil, "S#S"},
		{"passthrough", morse.Passthrough, "Sx--S"},
		{"drop", morse.Drop, "SS"},
		{"replace", morse.Replace("<?>"), "S<?>S"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := morse.Decode("... x-- ...", morse.Options{Invalid: tt.invalid})
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode_UnknownPattern(t *testing.T) {
	if got := morse.Decode("... ........ ...", morse.Options{}); got != "S#S" {
		t.Errorf("Decode() = %q, want %q", got, "S#S")
	}

	var seen []morse.Invalid
	record := func(inv morse.Invalid) string {
		seen = append(seen, inv)
		return ""
	}
	morse.Decode("........ / ..x", morse.Options{Invalid: record})

	if len(seen) != 2 {
		t.Fatalf("handler called %d times, want 2", len(seen))
	}
	if seen[0].Kind != morse.KindUnknownPattern || seen[0].Input != "........" {
		t.Errorf("first invalid = %+v", seen[0])
	}
	if seen[1].Kind != morse.KindMalformedGlyph || seen[1].Input != "..x" {
		t.Errorf("second invalid = %+v", seen[1])
	}
	for _, inv := range seen {
		if inv.Op != morse.OpDecode {
			t.Errorf("Op = %v, want decode", inv.Op)
		}
	}
}

func TestDecode_CollisionPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		priority morse.PriorityOrder
		want     string
	}{
		{"default", nil, "G"},
		{"cyrillic", morse.PriorityOrder{morse.Cyrillic}, "Г"},
		{"greek", morse.PriorityOrder{morse.Greek, morse.Latin}, "Γ"},
		{"hebrew", morse.PriorityOrder{morse.Hebrew}, "ג"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := morse.Decode("--.", morse.Options{Priority: tt.priority}); got != tt.want {
				t.Errorf("Decode(--.) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip_TopPrioritySet(t *testing.T) {
	reg := morse.DefaultRegistry()

	for _, cs := range morse.CharacterSets() {
		t.Run(cs.String(), func(t *testing.T) {
			opts := morse.Options{Priority: morse.PriorityOrder{cs}}
			order := opts.Priority.Expand()

			for _, e := range reg.Entries(cs) {
				// Skip characters another entry owns the pattern of.
				if owner, _ := reg.Reverse(e.Code, order); owner != e.Char {
					continue
				}
				if got := morse.Decode(morse.Encode(e.Char, opts), opts); got != e.Char {
					t.Errorf("round trip %q = %q", e.Char, got)
				}
			}
		})
	}
}

func TestExclusive(t *testing.T) {
	opts := morse.Options{Exclusive: true}

	if got := morse.Encode("A1", opts); got != ".- 1" {
		t.Errorf("Encode() = %q, want %q", got, ".- 1")
	}
	if got := morse.Decode(".----", opts); got != "#" {
		t.Errorf("Decode() = %q, want %q", got, "#")
	}

	opts.Priority = morse.PriorityOrder{morse.Latin, morse.Numbers}
	if got := morse.Decode(".- .----", opts); got != "A1" {
		t.Errorf("Decode() = %q, want %q", got, "A1")
	}
}

func TestMultiRuneGlyphs(t *testing.T) {
	opts := morse.Options{Dot: "dit", Dash: "dah", Space: "|"}

	code := morse.Encode("SOS", opts)
	if code != "ditditdit dahdahdah ditditdit" {
		t.Errorf("Encode() = %q", code)
	}
	if got := morse.Decode(code, opts); got != "SOS" {
		t.Errorf("Decode() = %q, want %q", got, "SOS")
	}
}

func TestDecode_Whitespace(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"... --- .../... --- ...", "SOS SOS"},
		{"  ... ---   ...  ", "SOS"},
		{"... ---\n...", "SOS"},
		{"... / / ...", "S S"},
		{"", ""},
		{" / ", ""},
	}

	for _, tt := range tests {
		if got := morse.Decode(tt.code, morse.Options{}); got != tt.want {
			t.Errorf("Decode(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestEncode_Empty(t *testing.T) {
	if got := morse.Encode("", morse.Options{}); got != "" {
		t.Errorf("Encode(\"\") = %q, want empty", got)
	}
	if got := morse.Encode(" \t\n", morse.Options{}); got != "" {
		t.Errorf("Encode(whitespace) = %q, want empty", got)
	}
}

func TestEncode_NFC(t *testing.T) {
	// E followed by a combining acute accent composes to É.
	if got := morse.Encode("E\u0301", morse.Options{}); got != "..-.." {
		t.Errorf("Encode(decomposed) = %q, want %q", got, "..-..")
	}
}

func TestCharacters(t *testing.T) {
	chars := morse.Characters(morse.Options{Dot: "•", Dash: "–"})

	if got := chars[morse.Latin]["A"]; got != "•–" {
		t.Errorf("Characters()[Latin][A] = %q, want %q", got, "•–")
	}
	if got := chars[morse.Numbers]["0"]; got != "–––––" {
		t.Errorf("Characters()[Numbers][0] = %q, want %q", got, "–––––")
	}
	if len(chars) != 12 {
		t.Errorf("len(Characters()) = %d, want 12", len(chars))
	}
}
