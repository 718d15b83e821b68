package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-wikitext/pkg/interfaces"
)

func TestConvertBasicMarkdown(t *testing.T) {
	converter := NewGoldmarkConverter(interfaces.ConvertOptions{})

	html, err := converter.Convert([]byte("# Hello\n\nSome *emphasis* here."))
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "Hello") {
		t.Fatalf("expected heading in output, got %q", out)
	}
	if !strings.Contains(out, "<em>emphasis</em>") {
		t.Fatalf("expected emphasis in output, got %q", out)
	}
}

func TestConvertPassesPlaceholderTokensThrough(t *testing.T) {
	converter := NewGoldmarkConverter(interfaces.ConvertOptions{})
	token := NewTokenHasher().Hash(`<a href="x">x</a>`)

	html, err := converter.Convert([]byte("before " + token + " after"))
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if !strings.Contains(string(html), token) {
		t.Fatalf("expected token to survive conversion, got %q", string(html))
	}
}

func TestConvertSafeModeDropsRawHTML(t *testing.T) {
	converter := NewGoldmarkConverter(interfaces.ConvertOptions{SafeMode: true})

	html, err := converter.Convert([]byte("hi <script>alert(1)</script>"))
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Fatalf("expected raw HTML suppressed in safe mode, got %q", string(html))
	}
}

func TestConvertUnsafeByDefault(t *testing.T) {
	converter := NewGoldmarkConverter(interfaces.ConvertOptions{})

	html, err := converter.Convert([]byte("hi <b>there</b>"))
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if !strings.Contains(string(html), "<b>there</b>") {
		t.Fatalf("expected inline HTML preserved by default, got %q", string(html))
	}
}

func TestCollectExtensionsIgnoresUnknownNames(t *testing.T) {
	exts := collectExtensions([]string{"table", "bogus", "TABLE", " strikethrough "})
	if len(exts) != 2 {
		t.Fatalf("expected unknown and duplicate names dropped, got %d extenders", len(exts))
	}
}
