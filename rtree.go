// Package rtree provides an in-memory R-Tree for answering "does this box
// overlap anything already stored?" and for placing new boxes near a target
// without overlapping existing ones. It is tuned for modest numbers of
// entries, such as the widgets of a GUI layout.
//
// An RTree is not safe for concurrent use. Callers sharing one between
// goroutines must serialise access themselves.
package rtree

import (
	"iter"

	"github.com/hashicorp/go-hclog"
)

// RTree is an in-memory R-Tree data structure holding boxes with an attached
// data item each. Its zero value is an empty R-Tree.
type RTree[T any] struct {
	root *node[T]

	// leaves records each leaf in insertion order, independently of the
	// shape of the tree.
	leaves []*node[T]
	count  int

	// last is the leaf most recently returned by Query.
	last *node[T]

	log hclog.Logger
}

// Option configures an RTree created by New.
type Option func(*config)

type config struct {
	logger hclog.Logger
}

// WithLogger sets the logger the tree emits trace events to.
func WithLogger(logger hclog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New creates an empty RTree.
func New[T any](opts ...Option) *RTree[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = hclog.NewNullLogger()
	}
	return &RTree[T]{log: c.logger.Named("rtree")}
}

// nullLogger serves trees that were not created by New.
var nullLogger = hclog.NewNullLogger()

func (t *RTree[T]) logger() hclog.Logger {
	if t.log == nil {
		return nullLogger
	}
	return t.log
}

func (t *RTree[T]) violation(op, reason string) {
	err := &InvariantError{Op: op, Reason: reason}
	t.logger().Error("structural invariant violated", "op", op, "reason", reason)
	panic(err)
}

// Len returns the number of entries in the tree.
func (t *RTree[T]) Len() int {
	return t.count
}

// Bounds gives the BBox that bounds every entry in the tree, or the zero
// BBox if the tree is empty.
func (t *RTree[T]) Bounds() BBox {
	if t.root == nil {
		return BBox{}
	}
	return t.root.box
}

// Query returns the data of an entry whose box intersects bb. The most
// recent hit is checked first, after which the tree is searched in
// insertion order of its subtrees.
func (t *RTree[T]) Query(bb BBox) (T, bool) {
	if t.last != nil && t.last.box.Intersects(bb) {
		return t.last.data, true
	}
	if t.root == nil || bb.Empty() {
		var zero T
		return zero, false
	}
	if hit := findFirst(t.root, bb); hit != nil {
		t.last = hit
		return hit.data, true
	}
	var zero T
	return zero, false
}

func findFirst[T any](n *node[T], bb BBox) *node[T] {
	if !n.box.Intersects(bb) {
		return nil
	}
	if n.isLeaf {
		return n
	}
	for _, c := range n.entries() {
		if hit := findFirst(c, bb); hit != nil {
			return hit
		}
	}
	return nil
}

// Overlaps reports whether any entry's box intersects bb.
func (t *RTree[T]) Overlaps(bb BBox) bool {
	_, ok := t.Query(bb)
	return ok
}

// Search looks for all entries in the tree that intersect the given box. The
// callback is called with each entry found, and the search stops early if it
// returns false.
func (t *RTree[T]) Search(bb BBox, callback func(box BBox, data T) bool) {
	if t.root == nil {
		return
	}
	var recurse func(*node[T]) bool
	recurse = func(n *node[T]) bool {
		if !n.box.Intersects(bb) {
			return true
		}
		if n.isLeaf {
			return callback(n.box, n.data)
		}
		for _, c := range n.entries() {
			if !recurse(c) {
				return false
			}
		}
		return true
	}
	recurse(t.root)
}

// All returns every entry in the order it was inserted. The sequence may be
// ranged over more than once, but the tree must not be modified while doing
// so.
func (t *RTree[T]) All() iter.Seq2[BBox, T] {
	return func(yield func(BBox, T) bool) {
		for _, leaf := range t.leaves {
			if !yield(leaf.box, leaf.data) {
				return
			}
		}
	}
}

// Clear removes every entry from the tree.
func (t *RTree[T]) Clear() {
	t.root = nil
	t.leaves = nil
	t.last = nil
	t.count = 0
}
