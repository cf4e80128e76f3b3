package dict

/*
BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// A Dict builds an AA-tree of nodes. Every node carries one entry, a level
// and up to two children, which it owns exclusively. The following rules hold
// for every node N:
//
//   * A leaf has level 1.
//   * The left child of N has level(N)-1.
//   * The right child of N has level(N) or level(N)-1.
//   * The right grandchild of N has a level strictly less than level(N).
//   * If level(N) > 1, N has two children.
//
// A right child on the same level as its parent is called a horizontal link.
// skew removes left horizontal links, split removes two consecutive right
// horizontal links.

// Node is a node of a dict's tree. Clients may inspect nodes for diagnostic
// purposes, but may not modify them.
type Node struct {
	entry entry
	level int
	left  *Node
	right *Node
}

func newLeaf(e entry) *Node {
	return &Node{entry: e, level: 1}
}

// Key returns the key stored in a node.
func (node *Node) Key() []byte {
	if node == nil {
		return nil
	}
	return node.entry.key.data
}

// Value returns the value stored in a node.
func (node *Node) Value() []byte {
	if node == nil {
		return nil
	}
	return node.entry.value.data
}

// Holding returns how key and value of a node are held by the dict.
func (node *Node) Holding() (key, value Holding) {
	if node == nil {
		return Borrowed, Borrowed
	}
	return node.entry.key.hold, node.entry.value.hold
}

// Level returns the AA-level of a node, 0 for nil.
func (node *Node) Level() int {
	if node == nil {
		return 0
	}
	return node.level
}

// Left returns the left child of a node.
func (node *Node) Left() *Node {
	if node == nil {
		return nil
	}
	return node.left
}

// Right returns the right child of a node.
func (node *Node) Right() *Node {
	if node == nil {
		return nil
	}
	return node.right
}

// IsLeaf is a predicate.
func (node *Node) IsLeaf() bool {
	return node != nil && node.left == nil && node.right == nil
}

// --- Balancing -------------------------------------------------------------

// skew rotates right if node has a left child on its own level.
// It returns the new root of the subtree.
//
//	    L <- N               L -> N
//	   / \    \     ==>     /    / \
//	  A   B    R           A    B   R
func skew(node *Node) *Node {
	if node == nil || node.left == nil || node.left.level != node.level {
		return node
	}
	l := node.left
	node.left = l.right
	l.right = node
	return l
}

// split rotates left and promotes the middle node if node starts a chain of
// two right horizontal links. It returns the new root of the subtree.
//
//	                           R
//	  N -> R -> X     ==>     / \
//	 /    /                  N   X
//	A    B                  / \
//	                       A   B
func split(node *Node) *Node {
	if node == nil || node.right == nil || node.right.right == nil ||
		node.level != node.right.right.level {
		return node
	}
	r := node.right
	node.right = r.left
	r.left = node
	r.level++
	return r
}

// decreaseLevel lowers the level of node after a deletion below it, if one
// of its children is now too low. A right child on a horizontal link is
// lowered together with node.
func decreaseLevel(node *Node) {
	shouldBe := min(node.left.Level(), node.right.Level()) + 1
	if shouldBe < node.level {
		node.level = shouldBe
		if node.right != nil && shouldBe < node.right.level {
			node.right.level = shouldBe
		}
	}
}

// rebalance repairs the tree rules at node on the way back up from a deletion.
// The order of operations matters.
func rebalance(node *Node) *Node {
	decreaseLevel(node)
	node = skew(node)
	if node.right != nil {
		node.right = skew(node.right)
		if node.right.right != nil {
			node.right.right = skew(node.right.right)
		}
	}
	node = split(node)
	if node.right != nil {
		node.right = split(node.right)
	}
	return node
}
