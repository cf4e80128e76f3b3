package dict

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func mkNode(key string, level int, left, right *Node) *Node {
	return &Node{
		entry: entry{key: buffer{data: []byte(key)}},
		level: level,
		left:  left,
		right: right,
	}
}

func TestSkew(t *testing.T) {
	a, b, r := mkNode("a", 1, nil, nil), mkNode("c", 1, nil, nil), mkNode("e", 1, nil, nil)
	l := mkNode("b", 2, a, b)
	n := mkNode("d", 2, l, r)
	top := skew(n)
	if top != l || l.right != n || n.left != b || l.left != a || n.right != r {
		t.Errorf("skew did not rotate right as expected")
	}
	if skew(top) != top {
		t.Errorf("expected skew to be a no-op without left horizontal link")
	}
}

func TestSplit(t *testing.T) {
	a, b := mkNode("a", 1, nil, nil), mkNode("c", 1, nil, nil)
	x := mkNode("e", 1, nil, nil)
	r := mkNode("d", 1, b, x)
	n := mkNode("b", 1, a, r)
	top := split(n)
	if top != r || r.left != n || n.right != b || r.right != x {
		t.Errorf("split did not rotate left as expected")
	}
	if r.level != 2 {
		t.Errorf("expected split to promote middle node to level 2, is %d", r.level)
	}
	if split(top) != top {
		t.Errorf("expected split to be a no-op without double right horizontal link")
	}
}

func TestDecreaseLevel(t *testing.T) {
	r := mkNode("c", 3, mkNode("b", 2, nil, nil), mkNode("d", 2, nil, nil))
	n := mkNode("a", 3, nil, r)
	decreaseLevel(n)
	if n.level != 1 {
		t.Errorf("expected level 1 for node without left child, is %d", n.level)
	}
	if r.level != 1 {
		t.Errorf("expected right child to be lowered to 1, is %d", r.level)
	}
}

func TestCheckDetectsViolations(t *testing.T) {
	d := New()
	d.root = mkNode("b", 2, mkNode("a", 1, nil, nil), nil)
	if err := d.Check(); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected missing right child to be detected, got %v", err)
	}
	d.root = mkNode("a", 1, nil, mkNode("b", 1, nil, mkNode("c", 1, nil, nil)))
	if err := d.Check(); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected double horizontal link to be detected, got %v", err)
	}
	d.root = mkNode("b", 2, mkNode("c", 1, nil, nil), mkNode("d", 1, nil, nil))
	if err := d.Check(); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected misordered keys to be detected, got %v", err)
	}
	d.root = mkNode("a", 2, nil, nil)
	if err := d.Check(); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected leaf above level 1 to be detected, got %v", err)
	}
}

func TestDumpGraph(t *testing.T) {
	d := New()
	for _, k := range []string{"a", "b", "c"} {
		d.InsertString(k, "")
	}
	var bf bytes.Buffer
	if err := d.DumpGraph(&bf); err != nil {
		t.Fatal(err)
	}
	expected := "\"b\" -> \"c\" [label=\"R\"];\n\"b\" -> \"a\" [label=\"L\"];\n"
	if bf.String() != expected {
		t.Errorf("unexpected graph output:\n%s", bf.String())
	}
	bf.Reset()
	if err := Dict2Dot(d, &bf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(bf.String(), "digraph G{\n") || !strings.HasSuffix(bf.String(), expected+"}\n") {
		t.Errorf("unexpected DOT output:\n%s", bf.String())
	}
}

func TestDumpGraphOrder(t *testing.T) {
	d := New()
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		d.InsertString(k, "")
	}
	var bf bytes.Buffer
	if err := d.DumpGraph(&bf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(bf.String()), "\n")
	if len(lines) != d.Len()-1 {
		t.Errorf("expected one edge per non-root node, have %d lines", len(lines))
	}
	root := string(d.Root().Key())
	if !strings.HasPrefix(lines[0], "\""+root+"\" -> ") || !strings.HasSuffix(lines[0], "[label=\"R\"];") {
		t.Errorf("expected first line to be the root's right edge, is %q", lines[0])
	}
	if err := New().DumpGraph(&bf); err != nil {
		t.Errorf("expected empty dict to dump without error, got %v", err)
	}
}
