package rtree

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/hashicorp/go-multierror"
)

// randomBox returns a box with its origin in [0, maxStart) and each side in
// [0, maxSide), snapped to a 0.01 grid so that shared edges and zero-sized
// sides turn up often.
func randomBox(rnd *rand.Rand, maxStart, maxSide float64) BBox {
	snap := func(v float64) float64 { return math.Trunc(v*100) / 100 }
	x, y := rnd.Float64()*maxStart, rnd.Float64()*maxStart
	w, h := rnd.Float64()*maxSide, rnd.Float64()*maxSide
	return BBox{MinX: snap(x), MinY: snap(y), MaxX: snap(x + w), MaxY: snap(y + h)}
}

// validate walks the whole tree and reports every broken structural
// invariant it finds.
func validate[T any](rt *RTree[T]) error {
	var result *multierror.Error
	if rt.root == nil {
		if rt.count != 0 || len(rt.leaves) != 0 {
			result = multierror.Append(result, fmt.Errorf("nil root with count=%d leaves=%d", rt.count, len(rt.leaves)))
		}
		return result.ErrorOrNil()
	}

	reached := make(map[*node[T]]int)
	leafDepth := -1
	var recurse func(n *node[T], depth int, path string)
	recurse = func(n *node[T], depth int, path string) {
		if n.isLeaf {
			reached[n]++
			if n.numChildren != 0 {
				result = multierror.Append(result, fmt.Errorf("%s: leaf has %d children", path, n.numChildren))
			}
			if leafDepth == -1 {
				leafDepth = depth
			} else if depth != leafDepth {
				result = multierror.Append(result, fmt.Errorf("%s: leaf at depth %d, want %d", path, depth, leafDepth))
			}
			return
		}
		if n.numChildren == 0 {
			result = multierror.Append(result, fmt.Errorf("%s: internal node has no children", path))
			return
		}
		if n.numChildren > maxChildren {
			result = multierror.Append(result, fmt.Errorf("%s: %d children exceeds fan-out", path, n.numChildren))
		}
		union := n.children[0].box
		for _, c := range n.entries()[1:] {
			union = union.Union(c.box)
		}
		if union != n.box {
			result = multierror.Append(result, fmt.Errorf("%s: box %v is not the union of its children %v", path, n.box, union))
		}
		for i := n.numChildren; i < maxChildren; i++ {
			if n.children[i] != nil {
				result = multierror.Append(result, fmt.Errorf("%s: unused slot %d is populated", path, i))
			}
		}
		for i, c := range n.entries() {
			recurse(c, depth+1, fmt.Sprintf("%s/%d", path, i))
		}
	}
	recurse(rt.root, 0, "root")

	if len(reached) != len(rt.leaves) || rt.count != len(rt.leaves) {
		result = multierror.Append(result, fmt.Errorf("reached %d leaves, chain has %d, count is %d", len(reached), len(rt.leaves), rt.count))
	}
	for i, leaf := range rt.leaves {
		if reached[leaf] != 1 {
			result = multierror.Append(result, fmt.Errorf("leaf %d reached %d times", i, reached[leaf]))
		}
	}
	return result.ErrorOrNil()
}

func checkInvariants[T any](t *testing.T, rt *RTree[T]) {
	t.Helper()
	if err := validate(rt); err != nil {
		t.Fatal(err)
	}
}
