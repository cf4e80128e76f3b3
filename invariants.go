package dict

import "fmt"

// Check validates the structural rules of the dict's AA-tree and the
// ordering of keys. It returns an error wrapping ErrInvariant for the first
// violation found.
//
// Check is meant for tests and debugging.
func (d *Dict) Check() error {
	if d == nil || d.root == nil {
		return nil
	}
	if err := checkNode(d.root); err != nil {
		return err
	}
	cmp := d.config().Compare
	var prev *Node
	var err error
	inorder(d.root, func(node *Node) bool {
		if prev != nil && cmp(prev.Key(), node.Key()) > 0 {
			err = fmt.Errorf("%w: key %q sorted before %q", ErrInvariant, prev.Key(), node.Key())
			return false
		}
		prev = node
		return true
	})
	return err
}

func checkNode(node *Node) error {
	if node.level < 1 {
		return fmt.Errorf("%w: node %q has level %d", ErrInvariant, node.Key(), node.level)
	}
	if node.IsLeaf() && node.level != 1 {
		return fmt.Errorf("%w: leaf %q has level %d", ErrInvariant, node.Key(), node.level)
	}
	if node.left != nil && node.left.level != node.level-1 {
		return fmt.Errorf("%w: left child of %q has level %d, parent %d",
			ErrInvariant, node.Key(), node.left.level, node.level)
	}
	if node.right != nil {
		if node.right.level != node.level && node.right.level != node.level-1 {
			return fmt.Errorf("%w: right child of %q has level %d, parent %d",
				ErrInvariant, node.Key(), node.right.level, node.level)
		}
		if node.right.right != nil && node.right.right.level >= node.level {
			return fmt.Errorf("%w: right grandchild of %q has level %d, grandparent %d",
				ErrInvariant, node.Key(), node.right.right.level, node.level)
		}
	}
	if node.level > 1 && (node.left == nil || node.right == nil) {
		return fmt.Errorf("%w: inner node %q at level %d lacks a child",
			ErrInvariant, node.Key(), node.level)
	}
	for _, child := range [...]*Node{node.left, node.right} {
		if child == nil {
			continue
		}
		if err := checkNode(child); err != nil {
			return err
		}
	}
	return nil
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, 0 for an empty dict.
func (d *Dict) Height() int {
	if d == nil {
		return 0
	}
	return height(d.root)
}

func height(node *Node) int {
	if node == nil {
		return 0
	}
	return max(height(node.left), height(node.right)) + 1
}
