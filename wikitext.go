// Package wikitext renders wiki-flavored markdown to HTML. It extends a
// generic markdown converter with link recognition: bracketed free links,
// CamelCase wiki links, bare URLs, and space-qualified links resolved
// against a multi-tenant wiki platform.
//
// Link anchors are built before conversion and shielded behind placeholder
// tokens, so the converter's own inline processing never mangles an href.
package wikitext

import (
	"context"
	"time"

	"github.com/goliatone/go-wikitext/internal/links"
	"github.com/goliatone/go-wikitext/internal/logging"
	"github.com/goliatone/go-wikitext/internal/logging/gologger"
	"github.com/goliatone/go-wikitext/internal/markdown"
	"github.com/goliatone/go-wikitext/internal/spaces"
	"github.com/goliatone/go-wikitext/pkg/interfaces"
)

// TypeMarkdown is the content type routed to the markdown pipeline when
// documents carry no explicit renderer registration.
const TypeMarkdown = "text/x-markdown"

// RenderFunc renders a document to HTML. Registered funcs own the whole
// conversion for their content type.
type RenderFunc func(ctx context.Context, doc *interfaces.Document) (string, error)

// Renderer is the public facade. It is safe for concurrent Render calls:
// the pattern registry and placeholder map are assembled fresh per call, and
// the goldmark engine is constructed per conversion. RegisterType is not
// synchronised and belongs in setup code.
type Renderer struct {
	cfg       Config
	converter interfaces.Converter
	escapes   interfaces.EscapeTable
	resolver  interfaces.SpaceResolver
	encoder   interfaces.NameEncoder
	log       interfaces.Logger

	renderers map[string]RenderFunc
}

// Option customises a Renderer during construction.
type Option func(*Renderer)

// WithConverter swaps the goldmark converter for a host-supplied one.
func WithConverter(converter interfaces.Converter) Option {
	return func(r *Renderer) { r.converter = converter }
}

// WithEscapeTable overrides the converter escape table injected into the
// link engine.
func WithEscapeTable(table interfaces.EscapeTable) Option {
	return func(r *Renderer) { r.escapes = table }
}

// WithSpaceResolver enables the space-qualified link patterns.
func WithSpaceResolver(resolver interfaces.SpaceResolver) Option {
	return func(r *Renderer) { r.resolver = resolver }
}

// WithNameEncoder overrides the page name encoding used for space links.
func WithNameEncoder(encoder interfaces.NameEncoder) Option {
	return func(r *Renderer) { r.encoder = encoder }
}

// WithLogger attaches a logger; absent, entries are dropped.
func WithLogger(log interfaces.Logger) Option {
	return func(r *Renderer) { r.log = log }
}

// New builds a Renderer from cfg. A zero cfg renders plain markdown with
// link patterns disabled.
func New(cfg Config, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Renderer{
		cfg:       cfg,
		renderers: make(map[string]RenderFunc),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.converter == nil {
		r.converter = markdown.NewGoldmarkConverter(cfg.Converter.toOptions())
	}
	if r.escapes == nil {
		r.escapes = markdown.NewEscapeTable()
	}
	if r.encoder == nil {
		r.encoder = spaces.PathEncoder{}
	}
	if r.log == nil {
		r.log = logging.NoOp()
	}

	return r, nil
}

// LinkBase returns the configured wiki link base so callers can prefix the
// relative hrefs emitted for wiki and free links.
func (r *Renderer) LinkBase() string {
	return r.cfg.Links.Base
}

// Render converts raw wikitext into HTML. Link patterns run first, replacing
// every matched span with a placeholder token; the converter then processes
// the placeholder-laden text as ordinary markdown; finally placeholders are
// expanded to their anchors and escaped href metacharacters restored.
func (r *Renderer) Render(ctx context.Context, text string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	registry := r.registry()
	if len(registry) == 0 {
		html, err := r.converter.Convert([]byte(text))
		if err != nil {
			return "", err
		}
		return string(html), nil
	}

	placeholders := links.NewPlaceholderMap(markdown.NewTokenHasher())
	engine := links.NewEngine(registry, r.escapes, r.log)

	prepared, err := engine.Apply(ctx, text, placeholders)
	if err != nil {
		return "", err
	}

	html, err := r.converter.Convert([]byte(prepared))
	if err != nil {
		return "", err
	}

	expanded := placeholders.Expand(string(html))
	return r.escapes.Unescape(expanded), nil
}

// RegisterType routes documents with the given content type to fn. This
// mirrors the type-to-renderer maps of wiki platforms that store typed
// documents.
func (r *Renderer) RegisterType(contentType string, fn RenderFunc) {
	r.renderers[contentType] = fn
}

// RenderDocument renders doc.Body with the renderer registered for its
// content type, defaulting to the markdown pipeline, and stores the result
// in doc.BodyHTML.
func (r *Renderer) RenderDocument(ctx context.Context, doc *interfaces.Document) (string, error) {
	if doc == nil {
		return "", ErrDocumentRequired
	}

	if fn, ok := r.renderers[doc.ContentType]; ok {
		html, err := fn(ctx, doc)
		if err != nil {
			return "", err
		}
		doc.BodyHTML = []byte(html)
		return html, nil
	}

	html, err := r.Render(ctx, string(doc.Body))
	if err != nil {
		return "", err
	}
	doc.BodyHTML = []byte(html)
	return html, nil
}

// ParseDocument builds a Document from raw source, extracting frontmatter
// metadata. The document content type comes from the frontmatter `type`
// field.
func ParseDocument(source []byte, modified time.Time) (*interfaces.Document, error) {
	return markdown.BuildDocument(source, modified)
}

// NewLoggerProvider builds a go-logger provider from cfg, for hosts that do
// not bring their own logging.
func NewLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	return gologger.NewProvider(gologger.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: cfg.AddSource,
	})
}

func (r *Renderer) registry() []links.Pattern {
	if !r.cfg.Links.Enabled {
		return nil
	}
	return links.NewRegistry(links.RegistryConfig{
		Base:     r.cfg.Links.Base,
		Resolver: r.resolver,
		Encoder:  r.encoder,
	})
}
