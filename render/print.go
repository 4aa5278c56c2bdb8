package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/collect/tree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls terminal tree rendering.
type Config struct {
	// LineWidth is the maximum rendered line width in fixed-width ‘en’s.
	LineWidth int
	// Context resolves ambiguous East Asian character widths. If nil,
	// uax11.LatinContext is used.
	Context *uax11.Context
}

// Palette maps rendering roles to terminal colors. Colors may be nil, in
// which case the role is printed unstyled.
type Palette struct {
	Guide *color.Color // branch guide lines
	Inner *color.Color // labels of inner nodes
	Leaf  *color.Color // labels of leaf nodes
}

// DefaultPalette is used when PrintTree receives a nil palette.
var DefaultPalette = Palette{
	Guide: color.New(color.FgHiBlack),
	Inner: color.New(color.FgBlue),
	Leaf:  color.New(color.FgGreen),
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the
// terminal's width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil || w <= 10 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w
		}
	} else {
		config.LineWidth = 65
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

// PrintTree renders a binary tree to w, one node per line, with indented
// and colored branch guides:
//
//	5
//	├── 3
//	│   └── 1
//	└── 8
//
// The left child is rendered above the right child. Labels longer than the
// remaining line width are truncated by display width, so East Asian wide
// characters do not break the alignment. A nil config uses
// ConfigFromTerminal, a nil palette uses DefaultPalette.
func PrintTree[T any](t *tree.Binary[T], w io.Writer, config *Config, palette *Palette) {
	if config == nil {
		config = ConfigFromTerminal()
	}
	if palette == nil {
		palette = &DefaultPalette
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	tour := tree.Tour[T, struct{}]{
		Pre: func(p tree.Pos[T], depth int, path []int) {
			guide := guidePrefix(p)
			label := fmt.Sprintf("%v", p.Value())
			label = truncate(label, config.LineWidth-Width(guide, context), context)
			printRole(w, palette.Guide, guide)
			_, hasLeft := p.Left()
			_, hasRight := p.Right()
			if hasLeft || hasRight {
				printRole(w, palette.Inner, label)
			} else {
				printRole(w, palette.Leaf, label)
			}
			io.WriteString(w, "\n")
		},
	}
	tour.Run(t)
}

func printRole(w io.Writer, c *color.Color, s string) {
	if c == nil {
		io.WriteString(w, s)
		return
	}
	c.Fprint(w, s)
}

// guidePrefix builds the branch guide for the line of node p.
//
// Each ancestor contributes either a vertical continuation or blank space,
// depending on whether a sibling subtree still follows below it; the node
// itself contributes a tee or corner.
func guidePrefix[T any](p tree.Pos[T]) string {
	parent, ok := p.Parent()
	if !ok { // the root line has no guides
		return ""
	}
	var segments []string
	self := p
	for {
		last := !followedBySibling(parent, self)
		var seg string
		if self == p {
			if last {
				seg = "└── "
			} else {
				seg = "├── "
			}
		} else {
			if last {
				seg = "    "
			} else {
				seg = "│   "
			}
		}
		segments = append(segments, seg)
		self = parent
		var ok bool
		parent, ok = self.Parent()
		if !ok {
			break
		}
	}
	// segments were collected bottom-up
	var b strings.Builder
	for i := len(segments) - 1; i >= 0; i-- {
		b.WriteString(segments[i])
	}
	return b.String()
}

// followedBySibling reports whether child has a sibling subtree rendered
// below it, i.e. child is parent's left child and a right child exists.
func followedBySibling[T any](parent, child tree.Pos[T]) bool {
	left, hasLeft := parent.Left()
	if !hasLeft || left != child {
		return false
	}
	_, hasRight := parent.Right()
	return hasRight
}

// Width returns the display width of s in fixed-width ‘en’s, respecting
// East Asian wide and ambiguous characters.
func Width(s string, context *uax11.Context) int {
	if s == "" { // grapheme segmentation chokes on empty input
		return 0
	}
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate cuts s to at most width ‘en’s of display width, appending an
// ellipsis when something was cut.
func truncate(s string, width int, context *uax11.Context) string {
	if width <= 0 {
		return "…"
	}
	if Width(s, context) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := Width(string(r), context)
		if used+rw > width-1 {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String() + "…"
}
