package links

import (
	"context"
	"strings"

	"github.com/goliatone/go-wikitext/internal/logging"
	"github.com/goliatone/go-wikitext/pkg/interfaces"
)

// Engine applies an ordered pattern registry to raw text. Each matched span
// is replaced with a placeholder token; the final anchor HTML is recorded in
// a PlaceholderMap for the expansion pass that runs after markdown
// conversion. The engine is single pass per pattern: text already replaced by
// an earlier pattern is an inert token by the time later patterns scan it.
type Engine struct {
	patterns []Pattern
	escapes  interfaces.EscapeTable
	log      interfaces.Logger
}

// NewEngine builds an engine over the supplied registry. The escape table
// comes from the converter so hrefs survive its inline emphasis pass; a nil
// logger is replaced with a no-op.
func NewEngine(patterns []Pattern, escapes interfaces.EscapeTable, log interfaces.Logger) *Engine {
	if log == nil {
		log = logging.NoOp()
	}
	return &Engine{
		patterns: patterns,
		escapes:  escapes,
		log:      log,
	}
}

// Apply runs every pattern against text in registry order and returns the
// placeholder-laden text. A strategy error aborts the whole call untouched
// by this layer.
func (e *Engine) Apply(ctx context.Context, text string, placeholders *PlaceholderMap) (string, error) {
	for _, pattern := range e.patterns {
		replaced, matched, err := e.applyPattern(ctx, pattern, text, placeholders)
		if err != nil {
			return "", err
		}
		if matched > 0 {
			e.log.Debug("link pattern applied", "pattern", pattern.Name, "matches", matched)
		}
		text = replaced
	}
	return text, nil
}

// applyPattern rebuilds text as gap/placeholder segments rather than
// splicing in place, so replacement lengths never invalidate match offsets.
func (e *Engine) applyPattern(ctx context.Context, p Pattern, text string, placeholders *PlaceholderMap) (string, int, error) {
	locations := p.re.FindAllStringSubmatchIndex(text, -1)
	if len(locations) == 0 {
		return text, 0, nil
	}

	var (
		buf     strings.Builder
		last    int
		matched int
	)
	buf.Grow(len(text))

	for _, loc := range locations {
		start, end := loc[2*p.spanGroup], loc[2*p.spanGroup+1]
		if start < 0 {
			continue
		}
		if p.guard != nil && !p.guard(text, loc[0]) {
			continue
		}

		m := matchAt(p, text, loc)
		repl, err := p.Strategy.Replace(ctx, m)
		if err != nil {
			return "", 0, err
		}

		title := repl.Title
		if title == "" {
			title = m.Span
		}
		anchor := `<a href="` + e.escapeHref(repl.Href) + `">` + title + `</a>`

		buf.WriteString(text[last:start])
		buf.WriteString(placeholders.Add(anchor))
		last = end
		matched++
	}

	buf.WriteString(text[last:])
	return buf.String(), matched, nil
}

// matchAt extracts the span text and the strategy-facing capture groups,
// dropping the span group itself from the group list.
func matchAt(p Pattern, text string, loc []int) Match {
	groupCount := len(loc)/2 - 1
	groups := make([]string, 0, groupCount)
	for g := 1; g <= groupCount; g++ {
		if g == p.spanGroup {
			continue
		}
		if loc[2*g] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, text[loc[2*g]:loc[2*g+1]])
	}

	span := ""
	if loc[2*p.spanGroup] >= 0 {
		span = text[loc[2*p.spanGroup]:loc[2*p.spanGroup+1]]
	}
	return Match{Span: span, Groups: groups}
}

// escapeHref neutralises characters that would corrupt the attribute quoting
// or read as emphasis markers once the converter runs.
func (e *Engine) escapeHref(href string) string {
	href = strings.ReplaceAll(href, `"`, "&quot;")
	if e.escapes == nil {
		return href
	}
	for _, c := range []byte{'*', '_'} {
		if token, ok := e.escapes.Escape(c); ok {
			href = strings.ReplaceAll(href, string(c), token)
		}
	}
	return href
}
