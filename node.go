package rtree

// maxChildren is the fan-out of internal nodes.
const maxChildren = 3

// node is a node in an R-Tree. Leaf nodes hold a single data item and have
// no children. Internal nodes hold up to maxChildren child nodes, and their
// box is always the union of their children's boxes.
type node[T any] struct {
	box    BBox
	isLeaf bool
	data   T

	children    [maxChildren]*node[T]
	numChildren int
}

func newLeaf[T any](bb BBox, data T) *node[T] {
	return &node[T]{box: bb, isLeaf: true, data: data}
}

// entries returns the occupied child slots.
func (n *node[T]) entries() []*node[T] {
	return n.children[:n.numChildren]
}

// addChild appends c to n. It returns false (leaving n unchanged) if n is
// already full. The caller is responsible for n's box covering c.
func (t *RTree[T]) addChild(n, c *node[T]) bool {
	if n.isLeaf {
		t.violation("add child", "node is a leaf")
	}
	if n.numChildren == maxChildren {
		return false
	}
	n.children[n.numChildren] = c
	n.numChildren++
	return true
}

// chooseSubtree picks the internal child of n that needs the least
// enlargement to accommodate bb. Ties go to the first such child. Nil is
// returned when n's children are all leaves.
func (n *node[T]) chooseSubtree(bb BBox) *node[T] {
	var best *node[T]
	var bestDelta float64
	for _, c := range n.entries() {
		if c.isLeaf || c.numChildren == 0 {
			continue
		}
		delta := enlargement(c.box, bb)
		if best == nil || delta < bestDelta {
			best, bestDelta = c, delta
		}
	}
	return best
}

// splitNode splits the full node n, which must also take extra, into two
// nodes. The first node replaces n, and the second node is newly created and
// returned. The caller must add the returned node as a sibling of n.
func (t *RTree[T]) splitNode(n, extra *node[T]) *node[T] {
	if n.isLeaf {
		t.violation("split", "node is a leaf")
	}

	var candidates [maxChildren + 1]*node[T]
	copy(candidates[:], n.entries())
	candidates[n.numChildren] = extra
	all := candidates[:n.numChildren+1]

	// The pair covering the largest area seed the two halves.
	seedA, seedB := 0, 1
	worst := -1.0
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			a := all[i].box.Union(all[j].box).Area()
			if a > worst {
				worst, seedA, seedB = a, i, j
			}
		}
	}

	// Use the existing node for A, and create a new node for B.
	n.children = [maxChildren]*node[T]{}
	n.numChildren = 0
	n.box = all[seedA].box
	t.addChild(n, all[seedA])

	sibling := &node[T]{box: all[seedB].box}
	t.addChild(sibling, all[seedB])

	for i, c := range all {
		if i == seedA || i == seedB {
			continue
		}
		if enlargement(n.box, c.box) <= enlargement(sibling.box, c.box) {
			n.box.Grow(c.box)
			t.addChild(n, c)
		} else {
			sibling.box.Grow(c.box)
			t.addChild(sibling, c)
		}
	}

	t.logger().Trace("split node",
		"kept", n.numChildren, "moved", sibling.numChildren,
		"kept_box", n.box, "moved_box", sibling.box)
	return sibling
}
