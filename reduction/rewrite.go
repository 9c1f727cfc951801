package reduction

import (
	"fmt"

	"github.com/katalvlaran/pairfold/pairtree"
)

// Explode performs at most one explosion on t and reports whether one
// happened. A nil or empty tree never explodes.
func Explode(t *pairtree.Tree, opts ...Option) bool {
	o := buildOptions(opts)

	return explode(t, &o)
}

// Split performs at most one split on t and reports whether one happened.
// A nil or empty tree never splits.
func Split(t *pairtree.Tree, opts ...Option) bool {
	o := buildOptions(opts)

	return split(t, &o)
}

func explode(t *pairtree.Tree, o *Options) bool {
	if t == nil || t.Root() == pairtree.Nil {
		return false
	}

	// 1. Find the first pair of two leaves at depth ≥ ExplodeDepth.
	//    Such pairs never nest, so pre-order yields the leftmost one.
	var depth int
	target := t.Walk(t.Root(), func(id pairtree.NodeID, d int) bool {
		if d < ExplodeDepth || t.Kind(id) != pairtree.Branch {
			return true
		}
		l, r := mustChildren(t, id)
		if t.IsLeaf(l) && t.IsLeaf(r) {
			depth = d
			return false
		}

		return true
	})
	if target == pairtree.Nil {
		return false
	}

	l, r := mustChildren(t, target)
	lv, rv := mustValue(t, l), mustValue(t, r)

	// 2. Push the values outward to the lateral neighbours.
	if n, ok := t.LeftLeafNeighbor(target); ok {
		mustSet(t, n, mustValue(t, n)+lv)
	}
	if n, ok := t.RightLeafNeighbor(target); ok {
		mustSet(t, n, mustValue(t, n)+rv)
	}

	// 3. The pair itself becomes a 0 leaf at the same handle.
	if err := t.Collapse(target, 0); err != nil {
		panic(fmt.Errorf("%w: collapse %d: %v", pairtree.ErrStructuralInvariant, target, err))
	}

	if o.OnExplode != nil {
		o.OnExplode(depth, lv, rv)
	}

	return true
}

func split(t *pairtree.Tree, o *Options) bool {
	if t == nil || t.Root() == pairtree.Nil {
		return false
	}

	var value uint64
	target := t.Walk(t.Root(), func(id pairtree.NodeID, _ int) bool {
		if !t.IsLeaf(id) {
			return true
		}
		value = mustValue(t, id)

		return value < SplitThreshold
	})
	if target == pairtree.Nil {
		return false
	}

	half := value / 2
	if _, _, err := t.Expand(target, half, value-half); err != nil {
		panic(fmt.Errorf("%w: expand %d: %v", pairtree.ErrStructuralInvariant, target, err))
	}

	if o.OnSplit != nil {
		o.OnSplit(value)
	}

	return true
}

// The helpers below are only called on handles whose kind was just
// checked, so a failure means the arena is corrupt.

func mustValue(t *pairtree.Tree, id pairtree.NodeID) uint64 {
	v, err := t.Value(id)
	if err != nil {
		panic(fmt.Errorf("%w: %v", pairtree.ErrStructuralInvariant, err))
	}

	return v
}

func mustSet(t *pairtree.Tree, id pairtree.NodeID, v uint64) {
	if err := t.SetValue(id, v); err != nil {
		panic(fmt.Errorf("%w: %v", pairtree.ErrStructuralInvariant, err))
	}
}

func mustChildren(t *pairtree.Tree, id pairtree.NodeID) (pairtree.NodeID, pairtree.NodeID) {
	l, r, err := t.Children(id)
	if err != nil {
		panic(fmt.Errorf("%w: %v", pairtree.ErrStructuralInvariant, err))
	}

	return l, r
}
