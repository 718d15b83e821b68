package interfaces

import "context"

// SpaceResolver maps a space (tenant) identifier to the absolute URL of that
// space. Implementations are read-only collaborators; a resolver error aborts
// the render call that triggered it.
type SpaceResolver interface {
	ResolveSpaceURI(ctx context.Context, space string) (string, error)
}

// SpaceResolverFunc adapts a plain function into a SpaceResolver.
type SpaceResolverFunc func(ctx context.Context, space string) (string, error)

func (f SpaceResolverFunc) ResolveSpaceURI(ctx context.Context, space string) (string, error) {
	return f(ctx, space)
}

// NameEncoder turns a raw page name into its URL-safe form before it is
// appended to a resolved space URL.
type NameEncoder interface {
	EncodeName(raw string) string
}

// NameEncoderFunc adapts a plain function into a NameEncoder.
type NameEncoderFunc func(raw string) string

func (f NameEncoderFunc) EncodeName(raw string) string {
	return f(raw)
}
