package dict

import "iter"

// Each calls visit for every entry of the dict, in order of keys. Entries
// with equal keys are visited in tree order.
func (d *Dict) Each(visit func(key, value []byte)) {
	if d == nil || visit == nil {
		return
	}
	inorder(d.root, func(node *Node) bool {
		visit(node.Key(), node.Value())
		return true
	})
}

// All returns an iterator over all entries of the dict, in order of keys.
//
// The dict must not be modified during iteration.
func (d *Dict) All() iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		if d == nil {
			return
		}
		inorder(d.root, func(node *Node) bool {
			return yield(node.Key(), node.Value())
		})
	}
}

// Keys returns an iterator over all keys of the dict, in sorted order.
// Keys inserted more than once are reported more than once.
func (d *Dict) Keys() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for k := range d.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Len returns the number of entries in the dict. Multiple entries for
// the same key are counted individually.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	n := 0
	inorder(d.root, func(*Node) bool {
		n++
		return true
	})
	return n
}

// inorder walks a tree left-node-right, without recursion.
// The walk stops early if fn returns false.
func inorder(root *Node, fn func(*Node) bool) {
	var stack []*Node
	node := root
	for node != nil || len(stack) > 0 {
		for node != nil {
			stack = append(stack, node)
			node = node.left
		}
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(node) {
			return
		}
		node = node.right
	}
}

// postorder walks a tree left-right-node, without recursion. fn may
// detach the children of the node it is called for.
func postorder(root *Node, fn func(*Node)) {
	var stack []*Node
	var last *Node
	node := root
	for node != nil || len(stack) > 0 {
		if node != nil {
			stack = append(stack, node)
			node = node.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			node = top.right
			continue
		}
		stack = stack[:len(stack)-1]
		fn(top)
		last = top
	}
}
