package dict

import (
	"fmt"
	"io"
)

// DumpGraph outputs the edges of the dict's tree as a fragment of a Graphviz
// DOT graph (for debugging purposes). Every node with a right child produces
// a line
//
//	"key" -> "rightkey" [label="R"];
//
// and every node with a left child a line labelled "L". Right edges and the
// right subtree are written before left edges and the left subtree.
//
// Clients have to wrap the output into 'digraph G{' and '}' themselves, or
// use Dict2Dot.
func (d *Dict) DumpGraph(w io.Writer) error {
	if w == nil {
		return fmt.Errorf("%w: no writer", ErrIllegalArguments)
	}
	if d == nil || d.root == nil {
		return nil
	}
	return dumpNode(d.root, w)
}

func dumpNode(node *Node, w io.Writer) error {
	if node.right != nil {
		if _, err := fmt.Fprintf(w, "\"%s\" -> \"%s\" [label=\"R\"];\n",
			node.Key(), node.right.Key()); err != nil {
			return err
		}
		if err := dumpNode(node.right, w); err != nil {
			return err
		}
	}
	if node.left != nil {
		if _, err := fmt.Fprintf(w, "\"%s\" -> \"%s\" [label=\"L\"];\n",
			node.Key(), node.left.Key()); err != nil {
			return err
		}
		if err := dumpNode(node.left, w); err != nil {
			return err
		}
	}
	return nil
}

// Dict2Dot outputs the internal structure of a dict in Graphviz DOT format
// (for debugging purposes).
func Dict2Dot(d *Dict, w io.Writer) error {
	if w == nil {
		return fmt.Errorf("%w: no writer", ErrIllegalArguments)
	}
	if _, err := io.WriteString(w, "digraph G{\n"); err != nil {
		return err
	}
	if err := d.DumpGraph(w); err != nil {
		T().Errorf("dict DOT: %s", err.Error())
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}
