package pairtree

import "errors"

// Sentinel errors for pairtree operations.
var (
	// ErrSyntax indicates malformed bracket notation.
	ErrSyntax = errors.New("pairtree: syntax error")

	// ErrAlreadyAttached indicates an attempt to graft a node that already
	// has a parent, is the current root, or belongs to a consumed tree.
	ErrAlreadyAttached = errors.New("pairtree: node already attached")

	// ErrStructuralInvariant indicates that a parent link and the child slot
	// of that parent disagree. It signals a defect, never bad input.
	ErrStructuralInvariant = errors.New("pairtree: structural invariant violated")

	// ErrNodeNotFound indicates a handle outside the arena or one that was released.
	ErrNodeNotFound = errors.New("pairtree: node not found")

	// ErrNotLeaf indicates a leaf-only operation applied to a branch.
	ErrNotLeaf = errors.New("pairtree: node is not a leaf")

	// ErrNotBranch indicates a branch-only operation applied to a leaf.
	ErrNotBranch = errors.New("pairtree: node is not a branch")

	// ErrEmptyTree indicates the tree has no root.
	ErrEmptyTree = errors.New("pairtree: tree has no root")
)

// NodeID is a handle to a node inside a Tree's arena.
type NodeID int32

// Nil is the absent handle: the parent of a root, or "no such node".
const Nil NodeID = -1

// Kind tags a node as a Leaf or a Branch.
type Kind uint8

const (
	// Free marks an arena slot released to the free list.
	Free Kind = iota
	// Leaf holds a single value.
	Leaf
	// Branch holds a left and a right child.
	Branch
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Branch:
		return "branch"
	default:
		return "free"
	}
}

// node is one arena slot. value is meaningful for leaves only,
// left/right for branches only.
type node struct {
	kind   Kind
	value  uint64
	left   NodeID
	right  NodeID
	parent NodeID
}

// Tree is an arena-backed compound number.
//
// Construct one with New or Parse. A Tree is not safe for concurrent mutation.
type Tree struct {
	nodes    []node   // arena; index == NodeID
	free     []NodeID // released slots available for reuse
	root     NodeID   // Nil until SetRoot
	live     int      // number of non-free slots
	consumed bool     // set once adopted by another tree
}
