package pairtree

import "fmt"

// New returns an empty tree with no root.
func New() *Tree {
	return &Tree{root: Nil}
}

// NewWithCapacity returns an empty tree whose arena is pre-sized for n nodes.
func NewWithCapacity(n int) *Tree {
	return &Tree{nodes: make([]node, 0, n), root: Nil}
}

// alloc places nd in a free slot or at the end of the arena.
func (t *Tree) alloc(nd node) NodeID {
	t.live++
	if n := len(t.free); n > 0 {
		id := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[id] = nd

		return id
	}
	t.nodes = append(t.nodes, nd)

	return NodeID(len(t.nodes) - 1)
}

// release returns id and its whole subtree to the free list.
func (t *Tree) release(id NodeID) {
	stack := []NodeID{id}
	var cur NodeID
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &t.nodes[cur]
		if nd.kind == Branch {
			stack = append(stack, nd.left, nd.right)
		}
		*nd = node{kind: Free, left: Nil, right: Nil, parent: Nil}
		t.free = append(t.free, cur)
		t.live--
	}
}

// lookup returns the live node behind id.
func (t *Tree) lookup(id NodeID) (*node, error) {
	if id < 0 || int(id) >= len(t.nodes) || t.nodes[id].kind == Free {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return &t.nodes[id], nil
}

// NewLeaf constructs an orphan leaf holding value.
func (t *Tree) NewLeaf(value uint64) NodeID {
	return t.alloc(node{kind: Leaf, value: value, left: Nil, right: Nil, parent: Nil})
}

// NewPair constructs an orphan branch owning left and right.
//
// It fails with ErrAlreadyAttached when either child already has a parent,
// is the current root, or when left and right are the same node.
func (t *Tree) NewPair(left, right NodeID) (NodeID, error) {
	if t.consumed {
		return Nil, fmt.Errorf("%w: tree was consumed", ErrAlreadyAttached)
	}
	if _, err := t.lookup(left); err != nil {
		return Nil, err
	}
	if _, err := t.lookup(right); err != nil {
		return Nil, err
	}
	if left == right {
		return Nil, fmt.Errorf("%w: node %d used as both children", ErrAlreadyAttached, left)
	}
	for _, id := range [2]NodeID{left, right} {
		if t.nodes[id].parent != Nil {
			return Nil, fmt.Errorf("%w: node %d has parent %d", ErrAlreadyAttached, id, t.nodes[id].parent)
		}
		if id == t.root {
			return Nil, fmt.Errorf("%w: node %d is the root", ErrAlreadyAttached, id)
		}
	}

	id := t.alloc(node{kind: Branch, left: left, right: right, parent: Nil})
	t.nodes[left].parent = id
	t.nodes[right].parent = id

	return id, nil
}

// SetRoot designates the orphan id as the root of the tree.
func (t *Tree) SetRoot(id NodeID) error {
	nd, err := t.lookup(id)
	if err != nil {
		return err
	}
	if nd.parent != Nil {
		return fmt.Errorf("%w: node %d has parent %d", ErrAlreadyAttached, id, nd.parent)
	}
	t.root = id

	return nil
}

// DetachRoot clears the root designation and returns the former root,
// leaving it as an orphan that NewPair may adopt.
func (t *Tree) DetachRoot() NodeID {
	id := t.root
	t.root = Nil

	return id
}

// Root returns the root handle, or Nil for an empty tree.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of live nodes in the arena.
func (t *Tree) Len() int { return t.live }

// Consumed reports whether the tree was adopted into another tree.
func (t *Tree) Consumed() bool { return t.consumed }

// Kind returns the kind of id, or Free for an invalid handle.
func (t *Tree) Kind(id NodeID) Kind {
	nd, err := t.lookup(id)
	if err != nil {
		return Free
	}

	return nd.kind
}

// IsLeaf reports whether id is a live leaf.
func (t *Tree) IsLeaf(id NodeID) bool { return t.Kind(id) == Leaf }

// Value returns the value of the leaf id.
func (t *Tree) Value(id NodeID) (uint64, error) {
	nd, err := t.lookup(id)
	if err != nil {
		return 0, err
	}
	if nd.kind != Leaf {
		return 0, fmt.Errorf("%w: %d", ErrNotLeaf, id)
	}

	return nd.value, nil
}

// Children returns the left and right children of the branch id.
func (t *Tree) Children(id NodeID) (NodeID, NodeID, error) {
	nd, err := t.lookup(id)
	if err != nil {
		return Nil, Nil, err
	}
	if nd.kind != Branch {
		return Nil, Nil, fmt.Errorf("%w: %d", ErrNotBranch, id)
	}

	return nd.left, nd.right, nil
}
