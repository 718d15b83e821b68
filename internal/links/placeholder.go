package links

import (
	"strings"

	"github.com/goliatone/go-wikitext/pkg/interfaces"
)

// PlaceholderMap records the anchor HTML produced during one render call,
// keyed by the placeholder token spliced into the text. A map is built fresh
// per call and discarded with it.
type PlaceholderMap struct {
	hasher interfaces.Hasher
	links  map[string]string
}

// NewPlaceholderMap builds an empty map deriving tokens from hasher.
func NewPlaceholderMap(hasher interfaces.Hasher) *PlaceholderMap {
	return &PlaceholderMap{
		hasher: hasher,
		links:  make(map[string]string),
	}
}

// Add records anchor and returns its placeholder token. Identical anchors
// share a token, which is harmless: expansion is content-addressed.
func (m *PlaceholderMap) Add(anchor string) string {
	token := m.hasher.Hash(anchor)
	m.links[token] = anchor
	return token
}

// Len reports the number of distinct placeholders recorded.
func (m *PlaceholderMap) Len() int {
	return len(m.links)
}

// Expand replaces every placeholder token in html with its anchor. Iteration
// order is immaterial: tokens are unique within a call and never overlap.
func (m *PlaceholderMap) Expand(html string) string {
	for token, anchor := range m.links {
		html = strings.ReplaceAll(html, token, anchor)
	}
	return html
}
