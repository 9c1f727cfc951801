package pairtree

// Parent returns the parent of id. ok is false for the root, for orphans
// and for invalid handles.
func (t *Tree) Parent(id NodeID) (parent NodeID, ok bool) {
	nd, err := t.lookup(id)
	if err != nil || nd.parent == Nil {
		return Nil, false
	}

	return nd.parent, true
}

// IsLeftChild reports whether id is its parent's left child.
// ok is false when id has no parent.
func (t *Tree) IsLeftChild(id NodeID) (isLeft bool, ok bool) {
	p, ok := t.Parent(id)
	if !ok {
		return false, false
	}

	return t.nodes[p].left == id, true
}

// IsRightChild is the negation of IsLeftChild for parented nodes.
func (t *Tree) IsRightChild(id NodeID) (isRight bool, ok bool) {
	isLeft, ok := t.IsLeftChild(id)

	return ok && !isLeft, ok
}

// LeftmostLeaf descends through left children until it reaches a leaf.
// A leaf returns itself; an invalid handle returns Nil.
func (t *Tree) LeftmostLeaf(id NodeID) NodeID {
	if _, err := t.lookup(id); err != nil {
		return Nil
	}
	for t.nodes[id].kind == Branch {
		id = t.nodes[id].left
	}

	return id
}

// RightmostLeaf descends through right children until it reaches a leaf.
// A leaf returns itself; an invalid handle returns Nil.
func (t *Tree) RightmostLeaf(id NodeID) NodeID {
	if _, err := t.lookup(id); err != nil {
		return Nil
	}
	for t.nodes[id].kind == Branch {
		id = t.nodes[id].right
	}

	return id
}

// LeftLeafNeighbor returns the leaf immediately before the subtree id in
// reading order. ok is false when id starts at the overall leftmost leaf.
//
// It climbs while the current node is a left child; at the first ancestor
// reached from its right side, it descends to the rightmost leaf of that
// ancestor's left subtree.
func (t *Tree) LeftLeafNeighbor(id NodeID) (NodeID, bool) {
	cur := id
	for {
		p, ok := t.Parent(cur)
		if !ok {
			return Nil, false
		}
		if t.nodes[p].right == cur {
			return t.RightmostLeaf(t.nodes[p].left), true
		}
		cur = p
	}
}

// RightLeafNeighbor returns the leaf immediately after the subtree id in
// reading order. ok is false when id ends at the overall rightmost leaf.
func (t *Tree) RightLeafNeighbor(id NodeID) (NodeID, bool) {
	cur := id
	for {
		p, ok := t.Parent(cur)
		if !ok {
			return Nil, false
		}
		if t.nodes[p].left == cur {
			return t.LeftmostLeaf(t.nodes[p].right), true
		}
		cur = p
	}
}

// Depth returns the number of edges between id and the top of its tree.
func (t *Tree) Depth(id NodeID) int {
	d := 0
	for {
		p, ok := t.Parent(id)
		if !ok {
			return d
		}
		id = p
		d++
	}
}

// Walk visits the subtree at id depth-first, left before right, in
// pre-order. depth is relative to id. Returning false from fn stops the
// walk; Walk then returns the node at which it stopped, otherwise Nil.
func (t *Tree) Walk(id NodeID, fn func(id NodeID, depth int) bool) NodeID {
	if _, err := t.lookup(id); err != nil {
		return Nil
	}

	type frame struct {
		id    NodeID
		depth int
	}
	stack := []frame{{id, 0}}
	var f frame
	for len(stack) > 0 {
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.id, f.depth) {
			return f.id
		}
		if nd := &t.nodes[f.id]; nd.kind == Branch {
			// right first so left is popped first
			stack = append(stack, frame{nd.right, f.depth + 1}, frame{nd.left, f.depth + 1})
		}
	}

	return Nil
}

// Leaves returns the leaves under id in reading order.
func (t *Tree) Leaves(id NodeID) []NodeID {
	var out []NodeID
	t.Walk(id, func(n NodeID, _ int) bool {
		if t.nodes[n].kind == Leaf {
			out = append(out, n)
		}

		return true
	})

	return out
}
