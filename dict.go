package dict

/*
BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Dict is an ordered multimap from byte-string keys to byte-string values.
//
// A dict created by
//
//	Dict{}
//
// is a valid object and behaves like an empty dict with default configuration.
//
//	Operation     |   Dict
//	--------------+-----------
//	Insert        |   O(log n)
//	Get           |   O(log n)
//	Remove        |   O(log n)
//	Len           |   O(n)
//	Each          |   O(n)
//
// Dicts are not safe for concurrent use.
type Dict struct {
	cfg       Config
	root      *Node
	destroyed bool
}

// New creates an empty dict with default configuration.
func New() *Dict {
	return &Dict{}
}

// NewWithConfig creates an empty dict with a client-provided configuration.
func NewWithConfig(cfg Config) (*Dict, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Dict{cfg: cfg.normalized()}, nil
}

func (d *Dict) config() Config {
	return d.cfg.normalized()
}

// Root returns the root node of the dict's tree, or nil for an empty dict.
func (d *Dict) Root() *Node {
	if d == nil {
		return nil
	}
	return d.root
}

// IsEmpty reports whether the dict has no entries.
func (d *Dict) IsEmpty() bool {
	return d == nil || d.root == nil
}

// --- Insertion -------------------------------------------------------------

// Insert adds a key/value pair to the dict. flags determine whether the dict
// copies key and value, and whether it releases them later on.
//
// Keys already present are not replaced. Instead, a second entry with an equal
// key is created.
//
// If a copy cannot be allocated, Insert returns an error wrapping ErrAllocation
// and the dict is unchanged.
func (d *Dict) Insert(key, value []byte, flags Ownership) error {
	if d == nil {
		return fmt.Errorf("%w: insert into nil dict", ErrIllegalArguments)
	}
	if d.destroyed {
		return ErrDestroyed
	}
	cfg := d.config()
	e, err := newEntry(key, value, flags, cfg)
	if err != nil {
		T().Debugf("dict insert: %v", err)
		return err
	}
	d.root = insert(d.root, newLeaf(e), cfg.Compare)
	return nil
}

// InsertString is a convenience wrapper for Insert. Keys and values are
// always copied and owned by the dict.
func (d *Dict) InsertString(key, value string) error {
	return d.Insert([]byte(key), []byte(value), OwnAll)
}

// insert links leaf into the subtree starting at node and returns the new
// root of the subtree. Equal keys go to the right.
func insert(node, leaf *Node, cmp func(a, b []byte) int) *Node {
	if node == nil {
		return leaf
	}
	if cmp(leaf.Key(), node.Key()) < 0 {
		node.left = insert(node.left, leaf, cmp)
	} else {
		node.right = insert(node.right, leaf, cmp)
	}
	node = skew(node)
	node = split(node)
	return node
}

// --- Lookup ----------------------------------------------------------------

// Get returns the value for key. If the key has been inserted more than once,
// the entry found first while descending from the root wins.
//
// The second result is false if the key is not present. A present key may
// have a nil value.
func (d *Dict) Get(key []byte) ([]byte, bool) {
	if d == nil || d.root == nil {
		return nil, false
	}
	if node := find(d.root, key, d.config().Compare); node != nil {
		return node.Value(), true
	}
	return nil, false
}

// GetString is a convenience wrapper for Get.
func (d *Dict) GetString(key string) (string, bool) {
	v, ok := d.Get([]byte(key))
	return string(v), ok
}

func find(node *Node, key []byte, cmp func(a, b []byte) int) *Node {
	for node != nil {
		c := cmp(key, node.Key())
		switch {
		case c == 0:
			return node
		case c < 0:
			node = node.left
		default:
			node = node.right
		}
	}
	return nil
}

// --- Deletion --------------------------------------------------------------

// Remove deletes one entry for key, releasing key and value as requested at
// insertion time. It reports whether an entry has been removed.
//
// If the key has been inserted more than once, the entry Get would return is
// the one removed.
func (d *Dict) Remove(key []byte) bool {
	if d == nil || d.root == nil {
		return false
	}
	cfg := d.config()
	var removed bool
	d.root = remove(d.root, key, cfg, &removed)
	return removed
}

// RemoveString is a convenience wrapper for Remove.
func (d *Dict) RemoveString(key string) bool {
	return d.Remove([]byte(key))
}

// remove deletes the first node matching key from the subtree starting at
// node and returns the new root of the subtree.
func remove(node *Node, key []byte, cfg Config, removed *bool) *Node {
	if node == nil {
		return nil
	}
	c := cfg.Compare(key, node.Key())
	switch {
	case c < 0:
		node.left = remove(node.left, key, cfg, removed)
	case c > 0:
		node.right = remove(node.right, key, cfg, removed)
	default:
		*removed = true
		node.entry.release(cfg.Release)
		if node.IsLeaf() {
			return nil
		}
		node = unlink(node)
	}
	return rebalance(node)
}

// unlink fills node, whose entry has gone, with the entry of its in-order
// neighbour and removes the neighbour from the tree below node. Without a
// left child, the successor is used, otherwise the predecessor.
// Ownership of the buffers moves together with the entry.
func unlink(node *Node) *Node {
	assert(!node.IsLeaf(), "unlink called for leaf")
	var neighbour entry
	if node.left == nil {
		node.right = removeLeftmost(node.right, &neighbour)
	} else {
		node.left = removeRightmost(node.left, &neighbour)
	}
	T().Debugf("dict splice: %q replaces removed entry", neighbour.key.data)
	node.entry = neighbour
	return node
}

// removeLeftmost removes the leftmost node of a subtree, passing its entry
// to the caller in e. It returns the new root of the subtree.
func removeLeftmost(node *Node, e *entry) *Node {
	if node.left != nil {
		node.left = removeLeftmost(node.left, e)
		return rebalance(node)
	}
	*e, node.entry = node.entry, entry{}
	if node.IsLeaf() {
		return nil
	}
	return rebalance(unlink(node))
}

// removeRightmost removes the rightmost node of a subtree, passing its entry
// to the caller in e. It returns the new root of the subtree.
func removeRightmost(node *Node, e *entry) *Node {
	if node.right != nil {
		node.right = removeRightmost(node.right, e)
		return rebalance(node)
	}
	*e, node.entry = node.entry, entry{}
	if node.IsLeaf() {
		return nil
	}
	return rebalance(unlink(node))
}

// --- Destruction -----------------------------------------------------------

// Destroy releases all entries of the dict, children before parents, and
// invalidates the dict. After Destroy, lookups report absent keys and
// Insert fails with ErrDestroyed.
func (d *Dict) Destroy() {
	if d == nil || d.destroyed {
		return
	}
	rel := d.config().Release
	n := 0
	postorder(d.root, func(node *Node) {
		node.entry.release(rel)
		node.left, node.right = nil, nil
		n++
	})
	T().Debugf("dict destroyed, released %d entries", n)
	d.root = nil
	d.destroyed = true
}
