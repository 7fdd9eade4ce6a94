package rtree

// Insert adds a new data item to the RTree. It always succeeds: a full node
// is split rather than rejecting the item.
func (t *RTree[T]) Insert(bb BBox, data T) {
	leaf := newLeaf(bb, data)
	if t.root == nil {
		t.root = &node[T]{box: bb}
	}

	if sibling := t.insert(t.root, leaf); sibling != nil {
		t.joinRoots(t.root, sibling)
	}

	t.leaves = append(t.leaves, leaf)
	t.count++
}

// insert places leaf somewhere in the subtree rooted at n. If n had to be
// split, the newly created sibling of n is returned.
func (t *RTree[T]) insert(n, leaf *node[T]) *node[T] {
	// Every node on the path covers the new box before descending further.
	n.box.Grow(leaf.box)

	if child := n.chooseSubtree(leaf.box); child != nil {
		sibling := t.insert(child, leaf)
		if sibling == nil {
			return nil
		}
		return t.addOrSplit(n, sibling)
	}
	return t.addOrSplit(n, leaf)
}

func (t *RTree[T]) addOrSplit(n, c *node[T]) *node[T] {
	if t.addChild(n, c) {
		return nil
	}
	return t.splitNode(n, c)
}

// joinRoots grows the tree by one level, placing a new root above r1 and r2.
func (t *RTree[T]) joinRoots(r1, r2 *node[T]) {
	root := &node[T]{box: r1.box.Union(r2.box)}
	t.addChild(root, r1)
	t.addChild(root, r2)
	t.root = root
	t.logger().Trace("grew root", "height", t.height(), "entries", t.count+1)
}

// height returns the number of levels of nodes, counting the leaves.
func (t *RTree[T]) height() int {
	h := 0
	for n := t.root; n != nil; h++ {
		if n.isLeaf || n.numChildren == 0 {
			return h + 1
		}
		n = n.children[0]
	}
	return h
}
