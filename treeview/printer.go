package treeview

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/sorted/btree"
	"github.com/npillmayer/sorted/splay"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Palette holds the colors used for the different kinds of nodes.
type Palette struct {
	Leaf, Inner, Shared *color.Color
}

// DefaultPalette returns the palette used if none is configured.
func DefaultPalette() *Palette {
	return &Palette{
		Leaf:   color.New(color.FgBlue),
		Inner:  color.New(color.FgGreen, color.Bold),
		Shared: color.New(color.FgRed),
	}
}

// Options configure a Printer. The zero value selects defaults.
type Options struct {
	// LineWidth is the number of display cells per line. Zero selects the
	// width of the terminal attached to stdin, if any.
	LineWidth int
	// Context tells how to measure display widths. Nil selects uax11.LatinContext.
	Context *uax11.Context
	// Palette colors the nodes. Nil selects DefaultPalette.
	Palette *Palette
	// Plain disables colors.
	Plain bool
	// Indent is the indentation per tree level, in cells. Zero selects 2.
	Indent int
}

// Printer writes tree outlines to a writer.
type Printer struct {
	w       io.Writer
	width   int
	indent  int
	context *uax11.Context
	palette *Palette
	err     error
}

// NewPrinter creates a printer writing to w. opts may be nil.
func NewPrinter(w io.Writer, opts *Options) *Printer {
	if opts == nil {
		opts = &Options{}
	}
	grapheme.SetupGraphemeClasses()
	p := &Printer{
		w:       w,
		width:   opts.LineWidth,
		indent:  opts.Indent,
		context: opts.Context,
		palette: opts.Palette,
	}
	if p.width <= 0 {
		p.width = widthFromTerminal()
	}
	if p.indent <= 0 {
		p.indent = 2
	}
	if p.context == nil {
		p.context = uax11.LatinContext
	}
	if opts.Plain {
		p.palette = nil
	} else if p.palette == nil {
		p.palette = DefaultPalette()
	}
	return p
}

// widthFromTerminal reads the width of the terminal, falling back to 80.
func widthFromTerminal() int {
	width := 80
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil && w > 10 {
			width = w
		}
	}
	tracer().Debugf("treeview: setting line width to %d en", width)
	return width
}

// PrintBTree outputs the node structure of a B+ tree.
func PrintBTree[K, V any](p *Printer, tree *btree.Tree[K, V]) error {
	p.err = nil
	tree.WalkNodes(func(info btree.NodeInfo[K]) bool {
		kind, c := "inner", p.color(false, info.Shared)
		if info.Leaf {
			kind, c = "leaf", p.color(true, info.Shared)
		}
		if info.Shared {
			kind += "*"
		}
		p.line(info.Depth, fmt.Sprintf("%s(%d) ", kind, len(info.Keys)), joinKeys(info.Keys), c)
		return p.err == nil
	})
	return p.err
}

// PrintSplay outputs the node structure of a splay tree.
func PrintSplay[K, V any](p *Printer, tree *splay.Tree[K, V]) error {
	p.err = nil
	tree.WalkNodes(func(info splay.NodeInfo[K]) bool {
		prefix := ""
		switch info.Side {
		case splay.Left:
			prefix = "L "
		case splay.Right:
			prefix = "R "
		}
		p.line(info.Depth, prefix, fmt.Sprint(info.Key), p.color(true, false))
		return p.err == nil
	})
	return p.err
}

func (p *Printer) color(leaf, shared bool) *color.Color {
	switch {
	case p.palette == nil:
		return nil
	case shared:
		return p.palette.Shared
	case leaf:
		return p.palette.Leaf
	}
	return p.palette.Inner
}

// line writes one outline entry, truncating text to the remaining width.
func (p *Printer) line(depth int, label, text string, c *color.Color) {
	if p.err != nil {
		return
	}
	lead := strings.Repeat(" ", depth*p.indent) + label
	room := p.width - p.cells(lead)
	text = p.truncate(text, room)
	if c != nil {
		_, p.err = c.Fprint(p.w, lead+text)
	} else {
		_, p.err = io.WriteString(p.w, lead+text)
	}
	if p.err == nil {
		_, p.err = io.WriteString(p.w, "\n")
	}
	if p.err != nil {
		tracer().Errorf("treeview: %s", p.err.Error())
	}
}

// maxMeasured bounds the byte length of text handed to the grapheme
// segmenter, which cannot handle strings of 64 KiB or more.
const maxMeasured = 1<<16 - 1

// cells returns the display width of s. Text beyond maxMeasured bytes is
// not measured.
func (p *Printer) cells(s string) int {
	s, _ = clip(s)
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), p.context)
}

// clip cuts s to at most maxMeasured bytes at a rune boundary and reports
// whether it had to cut.
func clip(s string) (string, bool) {
	if len(s) <= maxMeasured {
		return s, false
	}
	end := maxMeasured
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	return s[:end], true
}

// truncate shortens s to at most room display cells, marking the cut with
// an ellipsis. Truncation never splits a grapheme.
func (p *Printer) truncate(s string, room int) string {
	if s == "" {
		return s
	}
	s, clipped := clip(s)
	if !clipped && p.cells(s) <= room {
		return s
	}
	if room <= 0 {
		return ""
	}
	gstr := grapheme.StringFromString(s)
	var b strings.Builder
	used := 1 // ellipsis
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		w := p.cells(g)
		if used+w > room {
			break
		}
		b.WriteString(g)
		used += w
	}
	b.WriteString("…")
	return b.String()
}

func joinKeys[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return strings.Join(parts, " ")
}
