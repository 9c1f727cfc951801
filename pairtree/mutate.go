package pairtree

import "fmt"

// SetValue overwrites the value of the leaf id.
func (t *Tree) SetValue(id NodeID, value uint64) error {
	nd, err := t.lookup(id)
	if err != nil {
		return err
	}
	if nd.kind != Leaf {
		return fmt.Errorf("%w: %d", ErrNotLeaf, id)
	}
	nd.value = value

	return nil
}

// Collapse turns the branch id into a leaf holding value, in place.
// Its former children and their subtrees are released.
func (t *Tree) Collapse(id NodeID, value uint64) error {
	nd, err := t.lookup(id)
	if err != nil {
		return err
	}
	if nd.kind != Branch {
		return fmt.Errorf("%w: %d", ErrNotBranch, id)
	}
	left, right := nd.left, nd.right
	nd.kind, nd.value, nd.left, nd.right = Leaf, value, Nil, Nil
	t.release(left)
	t.release(right)

	return nil
}

// Expand turns the leaf id into a branch with two new leaves holding
// left and right, in place. It returns the new children.
func (t *Tree) Expand(id NodeID, left, right uint64) (NodeID, NodeID, error) {
	nd, err := t.lookup(id)
	if err != nil {
		return Nil, Nil, err
	}
	if nd.kind != Leaf {
		return Nil, Nil, fmt.Errorf("%w: %d", ErrNotLeaf, id)
	}
	l := t.alloc(node{kind: Leaf, value: left, left: Nil, right: Nil, parent: id})
	r := t.alloc(node{kind: Leaf, value: right, left: Nil, right: Nil, parent: id})
	// alloc may have grown the arena; re-index instead of reusing nd.
	t.nodes[id] = node{kind: Branch, left: l, right: r, parent: t.nodes[id].parent}

	return l, r, nil
}

// Adopt copies the whole of other into this arena as an orphan subtree and
// returns its handle. other is consumed: it is emptied and any later Adopt
// or NewPair on it fails with ErrAlreadyAttached.
func (t *Tree) Adopt(other *Tree) (NodeID, error) {
	if other == t {
		return Nil, fmt.Errorf("%w: tree cannot adopt itself", ErrAlreadyAttached)
	}
	if other.consumed {
		return Nil, fmt.Errorf("%w: tree was consumed", ErrAlreadyAttached)
	}
	if other.root == Nil {
		return Nil, ErrEmptyTree
	}

	id := t.copyFrom(other, other.root, Nil)
	other.nodes, other.free, other.root, other.live = nil, nil, Nil, 0
	other.consumed = true

	return id, nil
}

// copyFrom copies the subtree src from other into t under parent.
func (t *Tree) copyFrom(other *Tree, src, parent NodeID) NodeID {
	sn := other.nodes[src]
	if sn.kind == Leaf {
		return t.alloc(node{kind: Leaf, value: sn.value, left: Nil, right: Nil, parent: parent})
	}
	id := t.alloc(node{kind: Branch, left: Nil, right: Nil, parent: parent})
	l := t.copyFrom(other, sn.left, id)
	r := t.copyFrom(other, sn.right, id)
	t.nodes[id].left, t.nodes[id].right = l, r

	return id
}

// Clone returns a compact deep copy of the tree rooted at Root.
// Orphan nodes that are not reachable from the root are not copied.
func (t *Tree) Clone() *Tree {
	c := NewWithCapacity(t.live)
	if t.root != Nil {
		c.root = c.copyFrom(t, t.root, Nil)
	}

	return c
}

// Equal reports whether t and other hold the same shape and leaf values.
func (t *Tree) Equal(other *Tree) bool {
	if t.root == Nil || other.root == Nil {
		return t.root == Nil && other.root == Nil
	}

	return t.equalAt(t.root, other, other.root)
}

func (t *Tree) equalAt(a NodeID, other *Tree, b NodeID) bool {
	an, bn := t.nodes[a], other.nodes[b]
	if an.kind != bn.kind {
		return false
	}
	if an.kind == Leaf {
		return an.value == bn.value
	}

	return t.equalAt(an.left, other, bn.left) && t.equalAt(an.right, other, bn.right)
}
