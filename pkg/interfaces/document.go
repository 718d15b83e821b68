package interfaces

import "time"

// Document represents a wikitext page with parsed metadata and content. The
// struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Document struct {
	// ContentType selects the renderer used for the body, e.g.
	// "text/x-markdown". Empty means the host's default renderer.
	ContentType  string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
}

// FrontMatter models metadata extracted from wikitext documents. The Custom
// map keeps domain-specific values without forcing schema changes.
type FrontMatter struct {
	Title  string         `yaml:"title" json:"title"`
	Type   string         `yaml:"type" json:"type"`
	Tags   []string       `yaml:"tags" json:"tags"`
	Author string         `yaml:"author" json:"author"`
	Date   time.Time      `yaml:"date" json:"date"`
	Custom map[string]any `yaml:",inline" json:"custom"`
	Raw    map[string]any `yaml:"-" json:"raw"`
}
