package interfaces

// Converter turns markdown bytes into HTML. The link substitution layer
// treats the conversion algorithm as opaque: it only requires that inert
// placeholder tokens (plain alphanumeric words) pass through inline
// processing unchanged. Implementations should be safe for concurrent use
// or cheap enough to construct per render call.
type Converter interface {
	Convert(markdown []byte) ([]byte, error)
}

// ConvertOptions customises markdown conversion behaviour, keeping option
// names readable for configuration unmarshalling.
type ConvertOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// EscapeTable exposes the converter's inert representations for markdown
// metacharacters. Href values are passed through it so a literal `*` or `_`
// inside an attribute never becomes an emphasis marker, and Unescape restores
// the literal characters in the converted HTML.
type EscapeTable interface {
	// Escape returns the inert token for the given metacharacter. ok is
	// false when the character needs no escaping.
	Escape(c byte) (token string, ok bool)
	// Unescape replaces every escape token in html with its literal
	// character.
	Unescape(html string) string
}

// Hasher derives placeholder tokens for finished anchor HTML. Tokens must be
// deterministic within one render call, collision-resistant across distinct
// inputs, and shaped so they cannot occur in ordinary document text.
type Hasher interface {
	Hash(content string) string
}
