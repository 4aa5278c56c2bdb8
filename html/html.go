package html

import (
	"io"
	"strings"

	"github.com/npillmayer/collect"
	"github.com/npillmayer/collect/tree"
	"golang.org/x/net/html"
)

// TextFromHTML collects the textual content of an HTML fragment into a
// list, one list node per HTML text node, in document order. It resembles
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that whitespace-only text nodes are dropped and
// CSS visibility is not respected).
func TextFromHTML(input io.Reader) (*collect.List[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	texts := collect.NewPosList[string]()
	for _, n := range nodes {
		collectText(n, texts)
	}
	// transfer into a singly linked list, prepending in reverse to keep
	// document order with O(1) inserts
	list := &collect.List[string]{}
	for p, ok := texts.Last(); ok; p, ok = p.Prev() {
		list.Prepend(p.Value())
	}
	return list, nil
}

func collectText(n *html.Node, texts *collect.PosList[string]) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			texts.AddLast(t)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, texts)
	}
}

// TreeFromHTML parses an HTML document and encodes its element hierarchy
// as a binary tree using the left-child/right-sibling representation: the
// left child of a node is its first child element, the right child its
// next sibling element. Values are element names.
//
// This is the classic binary encoding of a tree with arbitrary fanout.
func TreeFromHTML(input io.Reader) (*tree.Binary[string], error) {
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	root := firstElement(doc.FirstChild)
	t := &tree.Binary[string]{}
	if root == nil {
		return t, nil
	}
	pos, err := t.AddRoot(root.Data)
	if err != nil {
		return nil, err
	}
	if err := encodeElement(t, pos, root); err != nil {
		return nil, err
	}
	return t, nil
}

// encodeElement adds the first child element of n as the left child of p
// and the next sibling element of n as the right child of p, recursively.
func encodeElement(t *tree.Binary[string], p tree.Pos[string], n *html.Node) error {
	if child := firstElement(n.FirstChild); child != nil {
		cp, err := t.AddLeft(p, child.Data)
		if err != nil {
			return err
		}
		if err := encodeElement(t, cp, child); err != nil {
			return err
		}
	}
	if sibling := firstElement(n.NextSibling); sibling != nil {
		sp, err := t.AddRight(p, sibling.Data)
		if err != nil {
			return err
		}
		if err := encodeElement(t, sp, sibling); err != nil {
			return err
		}
	}
	return nil
}

// firstElement returns n itself if it is an element node, otherwise the
// first element among n and its next siblings.
func firstElement(n *html.Node) *html.Node {
	for ; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}
