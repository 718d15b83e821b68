package spaces

import (
	"net/url"

	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-wikitext/pkg/interfaces"
)

// PathEncoder percent-encodes page names so any character is representable
// in the page component of a space URL.
type PathEncoder struct{}

var _ interfaces.NameEncoder = PathEncoder{}

func (PathEncoder) EncodeName(raw string) string {
	return url.PathEscape(raw)
}

// SlugEncoder normalizes page names into slugs, for hosts whose page URLs
// are slug-shaped rather than percent-encoded. Names the normalizer cannot
// handle fall back to percent encoding.
type SlugEncoder struct{}

var _ interfaces.NameEncoder = SlugEncoder{}

func (SlugEncoder) EncodeName(raw string) string {
	normalized, err := slug.Normalize(raw)
	if err != nil || normalized == "" {
		return url.PathEscape(raw)
	}
	return normalized
}
