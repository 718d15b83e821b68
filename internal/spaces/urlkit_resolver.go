package spaces

import (
	"context"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	slug "github.com/goliatone/go-slug"
	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-wikitext/pkg/interfaces"
)

// URLKitResolverOptions configures the go-urlkit backed resolver.
type URLKitResolverOptions struct {
	Manager *urlkit.RouteManager
	// Group names the route group holding the space route. Defaults to
	// "spaces".
	Group string
	// Route names the route within the group. Defaults to "space".
	Route string
	// Param is the route parameter carrying the space identifier. Defaults
	// to "space".
	Param string
}

// URLKitResolver resolves space URLs through a go-urlkit RouteManager. Space
// identifiers are validated against slug rules before hitting the route
// builder, matching the lowercase alphanumeric-plus-dash shape the link
// patterns accept.
type URLKitResolver struct {
	manager *urlkit.RouteManager
	group   string
	route   string
	param   string
}

var _ interfaces.SpaceResolver = (*URLKitResolver)(nil)

// NewURLKitResolver constructs a resolver backed by go-urlkit.
func NewURLKitResolver(opts URLKitResolverOptions) *URLKitResolver {
	if opts.Group == "" {
		opts.Group = "spaces"
	}
	if opts.Route == "" {
		opts.Route = "space"
	}
	if opts.Param == "" {
		opts.Param = "space"
	}

	return &URLKitResolver{
		manager: opts.Manager,
		group:   strings.TrimSpace(opts.Group),
		route:   strings.TrimSpace(opts.Route),
		param:   opts.Param,
	}
}

// ResolveSpaceURI satisfies interfaces.SpaceResolver.
func (r *URLKitResolver) ResolveSpaceURI(ctx context.Context, space string) (string, error) {
	_ = ctx // reserved for future use
	if r == nil || r.manager == nil {
		return "", ErrManagerRequired
	}

	space = strings.ToLower(strings.TrimSpace(space))
	if space == "" || !slug.IsValid(space) {
		return "", goerrors.Wrap(ErrSpaceNameInvalid, goerrors.CategoryValidation,
			fmt.Sprintf("space name %q rejected", space)).
			WithTextCode(spaceNameInvalidCode)
	}

	group, err := lookupGroup(r.manager, r.group)
	if err != nil {
		return "", err
	}

	builder, err := safeBuilder(group, r.route)
	if err != nil {
		return "", err
	}

	uri, err := builder.WithParam(r.param, space).Build()
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryValidation,
			fmt.Sprintf("resolve space %q", space)).
			WithTextCode(spaceResolveCode)
	}
	return uri, nil
}

// urlkit panics on unknown groups and routes; the lookups below convert the
// panic into an error the render call can surface.

func lookupGroup(manager *urlkit.RouteManager, name string) (*urlkit.Group, error) {
	var (
		group *urlkit.Group
		err   error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("spaces: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func safeBuilder(group *urlkit.Group, route string) (*urlkit.Builder, error) {
	if group == nil {
		return nil, fmt.Errorf("spaces: urlkit group is nil")
	}
	var (
		builder *urlkit.Builder
		err     error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("spaces: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}
