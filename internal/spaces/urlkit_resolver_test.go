package spaces

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	urlkit "github.com/goliatone/go-urlkit"
)

func newTestManager() *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "spaces",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"space": "/spaces/:space",
				},
			},
		},
	})
}

func TestResolveSpaceURI(t *testing.T) {
	resolver := NewURLKitResolver(URLKitResolverOptions{Manager: newTestManager()})

	uri, err := resolver.ResolveSpaceURI(context.Background(), "acme")
	if err != nil {
		t.Fatalf("ResolveSpaceURI returned error: %v", err)
	}
	if uri != "https://example.com/spaces/acme" {
		t.Fatalf("unexpected space URI %q", uri)
	}
}

func TestResolveSpaceURINormalizesCase(t *testing.T) {
	resolver := NewURLKitResolver(URLKitResolverOptions{Manager: newTestManager()})

	uri, err := resolver.ResolveSpaceURI(context.Background(), "  ACME ")
	if err != nil {
		t.Fatalf("ResolveSpaceURI returned error: %v", err)
	}
	if uri != "https://example.com/spaces/acme" {
		t.Fatalf("unexpected space URI %q", uri)
	}
}

func TestResolveSpaceURIRejectsInvalidNames(t *testing.T) {
	resolver := NewURLKitResolver(URLKitResolverOptions{Manager: newTestManager()})

	for _, name := range []string{"", "not a slug", "bad!name"} {
		_, err := resolver.ResolveSpaceURI(context.Background(), name)
		if err == nil {
			t.Fatalf("expected error for space name %q", name)
		}
		if !errors.Is(err, ErrSpaceNameInvalid) {
			t.Fatalf("expected ErrSpaceNameInvalid for %q, got %v", name, err)
		}
		if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
			t.Fatalf("expected validation category for %q, got %v", name, err)
		}
	}
}

func TestResolveSpaceURIWithoutManager(t *testing.T) {
	resolver := NewURLKitResolver(URLKitResolverOptions{})

	_, err := resolver.ResolveSpaceURI(context.Background(), "acme")
	if !errors.Is(err, ErrManagerRequired) {
		t.Fatalf("expected ErrManagerRequired, got %v", err)
	}
}

func TestResolveSpaceURIUnknownGroup(t *testing.T) {
	resolver := NewURLKitResolver(URLKitResolverOptions{
		Manager: newTestManager(),
		Group:   "missing",
	})

	if _, err := resolver.ResolveSpaceURI(context.Background(), "acme"); err == nil {
		t.Fatal("expected error for unknown route group")
	}
}
