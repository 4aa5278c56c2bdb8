package render

import (
	"strings"
	"testing"

	"github.com/npillmayer/collect/tree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

// sampleTree builds
//
//	5
//	├── 3
//	│   └── 1
//	└── 8
func sampleTree(t *testing.T) *tree.Binary[int] {
	t.Helper()
	tr := &tree.Binary[int]{}
	root, err := tr.AddRoot(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	three, err := tr.AddLeft(root, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err = tr.AddRight(root, 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err = tr.AddRight(three, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tr
}

func TestPrintTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tr := sampleTree(t)
	var b strings.Builder
	config := &Config{LineWidth: 65}
	plain := &Palette{} // uncolored
	PrintTree(tr, &b, config, plain)
	want := "5\n" +
		"├── 3\n" +
		"│   └── 1\n" +
		"└── 8\n"
	if b.String() != want {
		t.Errorf("unexpected rendering:\n%s", b.String())
	}
}

func TestPrintTreeTruncates(t *testing.T) {
	tr := &tree.Binary[string]{}
	tr.AddRoot("abcdefgh")
	var b strings.Builder
	PrintTree(tr, &b, &Config{LineWidth: 5}, &Palette{})
	if got := b.String(); got != "abcd…\n" {
		t.Errorf("expected truncated label \"abcd…\", got %q", got)
	}
}

func TestWidthEastAsian(t *testing.T) {
	if w := Width("abc", uax11.LatinContext); w != 3 {
		t.Errorf("expected width 3, got %d", w)
	}
	if w := Width("字", uax11.LatinContext); w != 2 {
		t.Errorf("expected width 2 for a wide character, got %d", w)
	}
	if w := Width("", uax11.LatinContext); w != 0 {
		t.Errorf("expected width 0 for the empty string, got %d", w)
	}
}

func TestTreeDot(t *testing.T) {
	tr := sampleTree(t)
	var b strings.Builder
	TreeDot(tr, &b)
	out := b.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Error("output must open a strict digraph")
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Error("output must close the digraph")
	}
	for _, label := range []string{"5", "3", "8", "1"} {
		if !strings.Contains(out, "[label=\""+label+"\"") {
			t.Errorf("missing node for label %q", label)
		}
	}
	// three tree edges plus one placeholder for the missing left child of 3
	if strings.Count(out, "->") != 4 {
		t.Errorf("unexpected edge count in:\n%s", out)
	}
	if !strings.Contains(out, "shape=point") {
		t.Error("missing placeholder for an absent child")
	}
}

func TestTreeDotEscapesQuotes(t *testing.T) {
	tr := &tree.Binary[string]{}
	tr.AddRoot(`say "hi"`)
	var b strings.Builder
	TreeDot(tr, &b)
	if !strings.Contains(b.String(), `say \"hi\"`) {
		t.Errorf("quotes must be escaped in:\n%s", b.String())
	}
}
