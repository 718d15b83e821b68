package links

import (
	"regexp"

	"github.com/goliatone/go-wikitext/pkg/interfaces"
)

// Pattern pairs a compiled regular expression with its replacement strategy.
// The span group selects which capture group's byte range is replaced; group
// zero replaces the whole match. Patterns are immutable once the registry
// for a render call has been built.
type Pattern struct {
	Name     string
	Strategy Strategy

	re        *regexp.Regexp
	spanGroup int
	guard     guardFunc
}

// guardFunc vetoes a candidate match based on the text before it. It stands
// in for the negative lookbehind assertions RE2 does not support.
type guardFunc func(text string, start int) bool

// The space-qualified patterns anchor on surrounding whitespace and carry the
// replaceable link in group 1, so the whitespace survives substitution. The
// trailing (?:\s|$) is deliberate: it makes back-to-back qualified links share
// a separator the scanner has already consumed, matching leftmost
// non-overlapping semantics.
var (
	reFreeLink      = regexp.MustCompile(`\[\[(.+?)\]\]`)
	reWikiLink      = regexp.MustCompile(`(?:^|\s)([A-Z][a-z]+[A-Z]\w+\b)`)
	reBareLink      = regexp.MustCompile(`https?://[-\w./#?%=&]+`)
	reSpaceLink     = regexp.MustCompile(`(?:^|\s)(@([0-9a-z][0-9a-z\-]*[0-9a-z]))(?:\s|$)`)
	reSpaceWikiLink = regexp.MustCompile(`(?:^|\s)(([A-Z][a-z]+[A-Z]\w+)@([0-9a-z][0-9a-z\-]*[0-9a-z]))(?:\s|$)`)
	reSpaceFreeLink = regexp.MustCompile(`(?:^|\s)(\[\[(.+?)\]\]@([0-9a-z][0-9a-z\-]*[0-9a-z]))(?:\s|$)`)
)

// RegistryConfig carries the per-render inputs needed to assemble patterns.
type RegistryConfig struct {
	// Base is the configured wiki link base. It is stored on the free link
	// strategy for callers to prefix relative targets; it is never
	// concatenated by the engine.
	Base string
	// Resolver enables the space-qualified patterns when non-nil.
	Resolver interfaces.SpaceResolver
	// Encoder encodes page names appended to resolved space URLs.
	Encoder interfaces.NameEncoder
}

// NewRegistry returns the ordered pattern list for one render call. The
// space-qualified patterns come first: they are strict syntactic supersets
// of the unqualified forms and must consume their matches before the
// unqualified patterns see the text, or `SomeWikiLink@space` would link the
// CamelCase word and leave a dangling `@space`.
func NewRegistry(cfg RegistryConfig) []Pattern {
	patterns := make([]Pattern, 0, 6)

	if cfg.Resolver != nil {
		linker := NewSpaceLinker(cfg.Resolver, cfg.Encoder)
		patterns = append(patterns,
			Pattern{Name: "spacelink", Strategy: linker, re: reSpaceLink, spanGroup: 1},
			Pattern{Name: "spacewikilink", Strategy: linker, re: reSpaceWikiLink, spanGroup: 1},
			Pattern{Name: "spacefreelink", Strategy: linker, re: reSpaceFreeLink, spanGroup: 1},
		)
	}

	return append(patterns,
		Pattern{Name: "freelink", Strategy: NewFreeLinker(cfg.Base), re: reFreeLink},
		Pattern{Name: "wikilink", Strategy: Template("$0"), re: reWikiLink, spanGroup: 1},
		Pattern{Name: "barelink", Strategy: Template("$0"), re: reBareLink, guard: outsideAttribute},
	)
}

// outsideAttribute rejects bare URL matches that already sit inside an anchor
// or attribute value, i.e. immediately preceded by `">` or `="`.
func outsideAttribute(text string, start int) bool {
	if start < 2 {
		return true
	}
	switch text[start-2 : start] {
	case `">`, `="`:
		return false
	}
	return true
}
