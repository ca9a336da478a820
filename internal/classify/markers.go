package classify

import "strings"

// Marker recognizes a success banner in compiler output
type Marker interface {
	Name() string
	Match(output string) bool
}

// tokenMarker matches a substring case-insensitively
type tokenMarker struct {
	token string
}

// Token returns a marker matching token anywhere in the output, ignoring case
func Token(token string) Marker {
	return tokenMarker{token: strings.ToLower(token)}
}

func (m tokenMarker) Name() string { return "token " + m.token }

func (m tokenMarker) Match(output string) bool {
	return m.token != "" && strings.Contains(strings.ToLower(output), m.token)
}

// phraseMarker matches an exact substring
type phraseMarker struct {
	phrase string
}

// Phrase returns a marker matching phrase exactly, byte for byte
func Phrase(phrase string) Marker {
	return phraseMarker{phrase: phrase}
}

func (m phraseMarker) Name() string { return "phrase " + m.phrase }

func (m phraseMarker) Match(output string) bool {
	return m.phrase != "" && strings.Contains(output, m.phrase)
}

// SyntaxOKPhrase is printed by the compiler after a successful parse
const SyntaxOKPhrase = "✅ التحليل النحوي تم بنجاح"

// DefaultMarkers are the success markers recognized out of the box, in
// evaluation order. Different generations of the harness looked for
// different banners; all of them are accepted.
func DefaultMarkers() []Marker {
	return []Marker{
		Token("success"),
		Phrase(SyntaxOKPhrase),
	}
}
