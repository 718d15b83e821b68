package links

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-wikitext/pkg/interfaces"
)

// Match is one located occurrence of a pattern. Groups holds the capture
// groups relevant to the strategy in order, with the span group removed.
type Match struct {
	Span   string
	Groups []string
}

// Replacement is the outcome of applying a strategy to one match. An empty
// Title is backfilled from the matched span by the engine.
type Replacement struct {
	Href  string
	Title string
}

// Strategy computes the replacement for a single match. Implementations may
// read external context but must not mutate document state.
type Strategy interface {
	Replace(ctx context.Context, m Match) (Replacement, error)
}

// Template is a static replacement strategy: the template text becomes the
// href with $0 expanded to the matched span and $1..$n to the capture
// groups. The title is left empty so the engine backfills it from the span.
type Template string

func (t Template) Replace(_ context.Context, m Match) (Replacement, error) {
	href := strings.ReplaceAll(string(t), "$0", m.Span)
	for i, group := range m.Groups {
		href = strings.ReplaceAll(href, "$"+strconv.Itoa(i+1), group)
	}
	return Replacement{Href: href}, nil
}

// FreeLinker resolves double-bracket free links. The bracketed body splits on
// the first pipe into "label|target"; without a pipe the body is both label
// and target. The configured base is stored for callers that want to prefix
// relative targets, the emitted href is always the bare target.
type FreeLinker struct {
	base string
}

// NewFreeLinker builds a free link strategy carrying the wiki link base.
func NewFreeLinker(base string) *FreeLinker {
	return &FreeLinker{base: base}
}

// Base returns the wiki link base this linker was configured with.
func (f *FreeLinker) Base() string {
	return f.base
}

func (f *FreeLinker) Replace(_ context.Context, m Match) (Replacement, error) {
	if len(m.Groups) == 0 {
		return Replacement{Href: m.Span}, nil
	}
	label, target := splitLabel(m.Groups[0])
	return Replacement{Href: target, Title: label}, nil
}

// SpaceLinker resolves space-qualified links through the host's space
// resolver. A single capture group is a bare space reference; two groups
// carry a page reference (possibly "label|page") plus the space identifier.
type SpaceLinker struct {
	resolver interfaces.SpaceResolver
	encoder  interfaces.NameEncoder
}

// NewSpaceLinker builds a space link strategy. A nil encoder falls back to
// percent encoding.
func NewSpaceLinker(resolver interfaces.SpaceResolver, encoder interfaces.NameEncoder) *SpaceLinker {
	if encoder == nil {
		encoder = interfaces.NameEncoderFunc(url.PathEscape)
	}
	return &SpaceLinker{resolver: resolver, encoder: encoder}
}

func (s *SpaceLinker) Replace(ctx context.Context, m Match) (Replacement, error) {
	switch len(m.Groups) {
	case 1:
		space := m.Groups[0]
		uri, err := s.resolver.ResolveSpaceURI(ctx, space)
		if err != nil {
			return Replacement{}, err
		}
		return Replacement{Href: uri, Title: "@" + space}, nil
	case 2:
		label, page := splitLabel(m.Groups[0])
		uri, err := s.resolver.ResolveSpaceURI(ctx, m.Groups[1])
		if err != nil {
			return Replacement{}, err
		}
		return Replacement{Href: uri + s.encoder.EncodeName(page), Title: label}, nil
	default:
		// Arity the linker does not understand degrades to a same-name
		// link instead of failing the render.
		return Replacement{Href: m.Span}, nil
	}
}

// splitLabel splits a link body on the first pipe. A body without a pipe is
// both label and target.
func splitLabel(body string) (label, target string) {
	if i := strings.Index(body, "|"); i >= 0 {
		return body[:i], body[i+1:]
	}
	return body, body
}
