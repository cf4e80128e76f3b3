package dictfmt

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/dict"
	"github.com/xlab/treeprint"
)

// Tree writes the shape of a dict's tree to w. Every node is shown with its
// key and its AA-level; children are marked L or R.
//
//	d [2]
//	├── L b [1]
//	└── R f [2]
//	    ...
//
// cfg may be nil.
func Tree(w io.Writer, d *dict.Dict, cfg *Config) error {
	if w == nil {
		return fmt.Errorf("%w: no writer", dict.ErrIllegalArguments)
	}
	cfg = cfg.normalized()
	root := d.Root()
	if root == nil {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	tree := treeprint.NewWithRoot(nodeLabel(root, "", cfg))
	addChildren(tree, root, cfg)
	_, err := io.WriteString(w, tree.String())
	return err
}

func addChildren(tree treeprint.Tree, node *dict.Node, cfg *Config) {
	if l := node.Left(); l != nil {
		addChildren(tree.AddBranch(nodeLabel(l, "L ", cfg)), l, cfg)
	}
	if r := node.Right(); r != nil {
		addChildren(tree.AddBranch(nodeLabel(r, "R ", cfg)), r, cfg)
	}
}

func nodeLabel(node *dict.Node, side string, cfg *Config) string {
	key := cfg.paint(cfg.Palette.Key, displayKey(node.Key()))
	level := cfg.paint(cfg.Palette.Level, "["+strconv.Itoa(node.Level())+"]")
	return side + key + " " + level
}

// displayKey makes bytes printable. Valid UTF-8 without control characters
// is shown as is, everything else quoted.
func displayKey(b []byte) string {
	if utf8.Valid(b) && !bytes.ContainsFunc(b, func(r rune) bool { return !unicode.IsPrint(r) }) {
		return string(b)
	}
	return strconv.Quote(string(b))
}
