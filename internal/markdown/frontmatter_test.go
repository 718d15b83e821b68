package markdown

import (
	"os"
	"strings"
	"testing"
	"time"
)

func readFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "Getting Started" {
		t.Fatalf("FrontMatter Title mismatch, got %q", fm.Title)
	}
	if fm.Type != "text/x-markdown" {
		t.Fatalf("FrontMatter Type mismatch, got %q", fm.Type)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "wiki" {
		t.Fatalf("FrontMatter Tags mismatch: %#v", fm.Tags)
	}
	if fm.Author != "sam" {
		t.Fatalf("FrontMatter Author mismatch, got %q", fm.Author)
	}
	if fm.Custom["custom_flag"] != true {
		t.Fatalf("FrontMatter Custom flag missing: %#v", fm.Custom)
	}
	if fm.Raw["title"] != "Getting Started" {
		t.Fatalf("FrontMatter Raw title missing: %#v", fm.Raw)
	}
	if len(body) == 0 || !strings.Contains(string(body), "# Getting Started") {
		t.Fatalf("body not returned correctly: %q", string(body))
	}
}

func TestBuildDocument(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")
	modified := time.Now().UTC()

	doc, err := BuildDocument(data, modified)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	if doc.ContentType != "text/x-markdown" {
		t.Fatalf("expected content type from frontmatter, got %q", doc.ContentType)
	}
	if doc.LastModified != modified {
		t.Fatal("expected LastModified to equal the provided timestamp")
	}
	if len(doc.BodyHTML) != 0 {
		t.Fatal("expected BodyHTML to stay empty for lazy rendering")
	}
	if !strings.Contains(string(doc.Body), "[[Front Page|front]]") {
		t.Fatalf("expected body content preserved, got %q", string(doc.Body))
	}
}

func TestParseFrontMatterWithoutDelimiters(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte("plain body, no metadata"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "" || fm.Type != "" {
		t.Fatalf("expected zero frontmatter, got %+v", fm)
	}
	if string(body) != "plain body, no metadata" {
		t.Fatalf("expected body passthrough, got %q", string(body))
	}
}
