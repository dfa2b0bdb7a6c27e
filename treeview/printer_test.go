package treeview

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sorted/btree"
	"github.com/npillmayer/sorted/order"
	"github.com/npillmayer/sorted/splay"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

func TestPrintBTree(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tree, err := btree.New[int, int](btree.Config[int]{Compare: order.Natural[int], MaxNodeSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 10; i++ {
		tree.Set(i, i)
	}
	tree.Clone() // marks the root as shared
	var b strings.Builder
	p := NewPrinter(&b, &Options{LineWidth: 40, Plain: true})
	if err := PrintBTree(p, tree); err != nil {
		t.Fatalf("PrintBTree failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if !strings.HasPrefix(lines[0], "inner*(") {
		t.Fatalf("expected shared inner root, got %q", lines[0])
	}
	leaves := 0
	for _, l := range lines[1:] {
		if strings.Contains(l, "leaf") {
			leaves++
			if !strings.HasPrefix(l, "  ") {
				t.Fatalf("leaf line must be indented: %q", l)
			}
		}
	}
	if leaves < 3 {
		t.Fatalf("expected at least 3 leaves, output:\n%s", b.String())
	}
}

func TestPrintSplay(t *testing.T) {
	tree := splay.New[string, int](order.Natural[string])
	for _, k := range []string{"b", "a", "c"} {
		tree.Set(k, 0)
	}
	var b strings.Builder
	p := NewPrinter(&b, &Options{LineWidth: 40, Plain: true, Indent: 4})
	if err := PrintSplay(p, tree); err != nil {
		t.Fatalf("PrintSplay failed: %v", err)
	}
	want := "c\n    L b\n        L a\n"
	if b.String() != want {
		t.Fatalf("unexpected outline:\n%s", b.String())
	}
}

func TestTruncateKeepsGraphemes(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	p := NewPrinter(&strings.Builder{}, &Options{LineWidth: 20, Plain: true, Context: uax11.LatinContext})
	if got := p.truncate("abc", 10); got != "abc" {
		t.Fatalf("short text must not be truncated, got %q", got)
	}
	got := p.truncate("Äpfel Birnen Zitronen", 8)
	if got != "Äpfel B…" {
		t.Fatalf("unexpected truncation %q", got)
	}
}

func TestPrintEmptyBTree(t *testing.T) {
	tree, err := btree.New[int, int](btree.Config[int]{})
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	p := NewPrinter(&b, &Options{LineWidth: 40, Plain: true})
	if err := PrintBTree(p, tree); err != nil {
		t.Fatalf("PrintBTree failed: %v", err)
	}
	if b.String() != "leaf(0) \n" {
		t.Fatalf("unexpected outline for empty tree: %q", b.String())
	}
}

func TestPrintSingleNodeSplay(t *testing.T) {
	tree := splay.New[string, int](order.Natural[string])
	tree.Set("only", 1)
	var b strings.Builder
	p := NewPrinter(&b, &Options{LineWidth: 40, Plain: true})
	if err := PrintSplay(p, tree); err != nil {
		t.Fatalf("PrintSplay failed: %v", err)
	}
	if b.String() != "only\n" {
		t.Fatalf("unexpected outline: %q", b.String())
	}
	var empty strings.Builder
	if err := PrintSplay(NewPrinter(&empty, &Options{Plain: true}), splay.New[int, int](nil)); err != nil {
		t.Fatalf("PrintSplay on empty tree failed: %v", err)
	}
	if empty.Len() != 0 {
		t.Fatalf("empty splay tree must print nothing, got %q", empty.String())
	}
}

func TestPrintHugeKey(t *testing.T) {
	tree := splay.New[string, int](order.Natural[string])
	tree.Set(strings.Repeat("x", 70000), 1)
	var b strings.Builder
	p := NewPrinter(&b, &Options{LineWidth: 40, Plain: true})
	if err := PrintSplay(p, tree); err != nil {
		t.Fatalf("PrintSplay failed: %v", err)
	}
	want := strings.Repeat("x", 39) + "…\n"
	if b.String() != want {
		t.Fatalf("expected key truncated to 40 cells, got %d bytes", b.Len())
	}
	if p.cells("") != 0 {
		t.Fatalf("empty text must be 0 cells wide")
	}
}
