package links

import (
	"context"
	"testing"
)

func TestTemplateExpandsSpanAndGroups(t *testing.T) {
	repl, err := Template("$0").Replace(context.Background(), Match{Span: "WikiWord"})
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if repl.Href != "WikiWord" {
		t.Fatalf("expected span expansion, got %q", repl.Href)
	}
	if repl.Title != "" {
		t.Fatalf("expected empty title for backfill, got %q", repl.Title)
	}

	repl, err = Template("$1/$2").Replace(context.Background(), Match{
		Span:   "ignored",
		Groups: []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if repl.Href != "a/b" {
		t.Fatalf("expected group expansion, got %q", repl.Href)
	}
}

func TestFreeLinkerSplitsOnFirstPipeOnly(t *testing.T) {
	linker := NewFreeLinker("/wiki/")

	cases := []struct {
		name  string
		body  string
		href  string
		title string
	}{
		{"labelled", "My Page|somewhere", "somewhere", "My Page"},
		{"bare", "some/page", "some/page", "some/page"},
		{"extra pipes", "A|B|C", "B|C", "A"},
		{"empty label", "|page", "page", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repl, err := linker.Replace(context.Background(), Match{
				Span:   "[[" + tc.body + "]]",
				Groups: []string{tc.body},
			})
			if err != nil {
				t.Fatalf("Replace returned error: %v", err)
			}
			if repl.Href != tc.href {
				t.Fatalf("expected href %q, got %q", tc.href, repl.Href)
			}
			if repl.Title != tc.title {
				t.Fatalf("expected title %q, got %q", tc.title, repl.Title)
			}
		})
	}
}

func TestFreeLinkerKeepsBase(t *testing.T) {
	linker := NewFreeLinker("/wiki/")
	if linker.Base() != "/wiki/" {
		t.Fatalf("expected base to be stored, got %q", linker.Base())
	}

	repl, err := linker.Replace(context.Background(), Match{
		Span:   "[[page]]",
		Groups: []string{"page"},
	})
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if repl.Href != "page" {
		t.Fatalf("base must not be concatenated into the href, got %q", repl.Href)
	}
}

func TestSpaceLinkerBareSpace(t *testing.T) {
	linker := NewSpaceLinker(stubResolver(), nil)

	repl, err := linker.Replace(context.Background(), Match{
		Span:   "@acme",
		Groups: []string{"acme"},
	})
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if repl.Href != "http://acme.example.com/" {
		t.Fatalf("unexpected href %q", repl.Href)
	}
	if repl.Title != "@acme" {
		t.Fatalf("expected @-prefixed title, got %q", repl.Title)
	}
}

func TestSpaceLinkerPageReference(t *testing.T) {
	linker := NewSpaceLinker(stubResolver(), nil)

	repl, err := linker.Replace(context.Background(), Match{
		Span:   "[[Docs|API Notes]]@acme",
		Groups: []string{"Docs|API Notes", "acme"},
	})
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if repl.Href != "http://acme.example.com/API%20Notes" {
		t.Fatalf("unexpected href %q", repl.Href)
	}
	if repl.Title != "Docs" {
		t.Fatalf("expected label title, got %q", repl.Title)
	}
}

func TestSpaceLinkerUnknownArityDegrades(t *testing.T) {
	linker := NewSpaceLinker(stubResolver(), nil)

	repl, err := linker.Replace(context.Background(), Match{Span: "@weird"})
	if err != nil {
		t.Fatalf("expected graceful degradation, got error: %v", err)
	}
	if repl.Href != "@weird" || repl.Title != "" {
		t.Fatalf("expected span href with backfilled title, got %+v", repl)
	}
}

func TestSplitLabel(t *testing.T) {
	label, target := splitLabel("no pipe here")
	if label != "no pipe here" || target != "no pipe here" {
		t.Fatalf("expected body as both label and target, got %q %q", label, target)
	}

	label, target = splitLabel("a|b|c")
	if label != "a" || target != "b|c" {
		t.Fatalf("expected split on first pipe, got %q %q", label, target)
	}
}
