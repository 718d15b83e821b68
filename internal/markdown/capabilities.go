package markdown

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"

	"github.com/goliatone/go-wikitext/pkg/interfaces"
)

// The link layer needs two capabilities from the converter: an escape table
// whose tokens the converter passes through inline processing untouched, and
// a hasher deriving placeholder tokens for finished anchors. Tokens are
// plain alphanumeric words, so goldmark treats them as ordinary text.

// NewEscapeTable returns the escape table for the characters goldmark would
// read as emphasis markers inside an href.
func NewEscapeTable() interfaces.EscapeTable {
	return defaultEscapes
}

var defaultEscapes = buildEscapes("*_")

type escapeTable struct {
	tokens map[byte]string
}

var _ interfaces.EscapeTable = (*escapeTable)(nil)

func buildEscapes(chars string) *escapeTable {
	tokens := make(map[byte]string, len(chars))
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		tokens[c] = "wkesc" + digest("goldmark:escape:"+string(c))
	}
	return &escapeTable{tokens: tokens}
}

func (t *escapeTable) Escape(c byte) (string, bool) {
	token, ok := t.tokens[c]
	return token, ok
}

func (t *escapeTable) Unescape(html string) string {
	for c, token := range t.tokens {
		html = strings.ReplaceAll(html, token, string(c))
	}
	return html
}

// TokenHasher derives placeholder tokens from anchor content. Every hasher
// carries a random per-call salt, so a token can never be predicted and
// planted in document text ahead of the render that would expand it.
type TokenHasher struct {
	salt string
}

var _ interfaces.Hasher = (*TokenHasher)(nil)

// NewTokenHasher builds a hasher with a fresh salt. Callers construct one
// per render call.
func NewTokenHasher() *TokenHasher {
	return &TokenHasher{salt: uuid.NewString()}
}

// Hash returns the placeholder token for content: deterministic within this
// hasher, distinct across distinct content.
func (h *TokenHasher) Hash(content string) string {
	return "wklnk" + digest(h.salt+":"+content)
}

// digest produces a stable 32-character hex string for key using go-hashid,
// falling back to a SHA-1 UUID when derivation fails.
func digest(key string) string {
	uid, err := hashid.NewUUID(key, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(false))
	if err != nil || uid == uuid.Nil {
		uid = uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
	}
	return strings.ReplaceAll(uid.String(), "-", "")
}
