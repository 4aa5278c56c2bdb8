package html

import (
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const page = `<html><head><title>Demo</title></head>
<body>
  <h1>Heading</h1>
  <p>Hello <b>World</b>!</p>
</body></html>`

func TestTextFromHTML(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	list, err := TextFromHTML(strings.NewReader(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := slices.Collect(list.Values())
	want := []string{"Demo", "Heading", "Hello", "World", "!"}
	if !slices.Equal(got, want) {
		t.Errorf("expected text in document order %v, got %v", want, got)
	}
}

func TestTextFromHTMLEmpty(t *testing.T) {
	list, err := TextFromHTML(strings.NewReader("<div>   </div>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !list.IsEmpty() {
		t.Errorf("whitespace-only input must produce an empty list, got %v", list)
	}
}

func TestTreeFromHTML(t *testing.T) {
	tr, err := TreeFromHTML(strings.NewReader(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root, ok := tr.Root()
	if !ok || root.Value() != "html" {
		t.Fatal("expected the html element at the root")
	}
	// first child element encodes as left child, next sibling as right child
	head, ok := root.Left()
	if !ok || head.Value() != "head" {
		t.Fatal("expected head as the left child of html")
	}
	body, ok := head.Right()
	if !ok || body.Value() != "body" {
		t.Fatal("expected body as the right sibling of head")
	}
	title, ok := head.Left()
	if !ok || title.Value() != "title" {
		t.Error("expected title as the left child of head")
	}
	h1, ok := body.Left()
	if !ok || h1.Value() != "h1" {
		t.Fatal("expected h1 as the left child of body")
	}
	p, ok := h1.Right()
	if !ok || p.Value() != "p" {
		t.Fatal("expected p as the right sibling of h1")
	}
	b, ok := p.Left()
	if !ok || b.Value() != "b" {
		t.Error("expected b as the left child of p")
	}
}

func TestTreeFromHTMLPostOrder(t *testing.T) {
	tr, err := TreeFromHTML(strings.NewReader("<ul><li>a</li><li>b</li></ul>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the parser wraps the fragment into html/head/body
	got := slices.Collect(tr.PreOrder())
	want := []string{"html", "head", "body", "ul", "li", "li"}
	if !slices.Equal(got, want) {
		t.Errorf("expected pre-order %v, got %v", want, got)
	}
}
