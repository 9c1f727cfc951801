// Package pairtree implements compound numbers: binary trees whose leaves
// hold unsigned integers and whose branches hold exactly two children.
//
// What:
//
//   - Tree is an arena of nodes addressed by NodeID handles. Each node is a
//     tagged Leaf or Branch and records the handle of its parent, so the
//     structure can be walked downward and upward without pointers.
//   - Navigation: Parent, IsLeftChild, LeftmostLeaf, RightmostLeaf,
//     LeftLeafNeighbor and RightLeafNeighbor locate the previous/next leaf
//     in reading order in O(depth).
//   - In-place rewrites: SetValue, Collapse (branch → leaf) and Expand
//     (leaf → branch) overwrite a node at a stable handle.
//   - Notation: Parse and String read and write the bracket form
//     "[[1,2],[[3,4],5]]".
//
// Why:
//
//   - A handle-based arena keeps parent links trivially valid across
//     structural mutation: turning a leaf into a branch is a single
//     overwrite at a fixed index, and released children go to a free list.
//
// Ownership:
//
//   - A branch owns its two children exclusively. NewPair refuses a child
//     that already has a parent or that is currently the tree root,
//     returning ErrAlreadyAttached.
//   - Adopt grafts another tree's nodes into this arena and marks the
//     other tree consumed; a consumed tree cannot be adopted twice.
//
// Complexity:
//
//   - Navigation: O(depth). Parse/String/Clone/Validate: O(n).
//
// Errors:
//
//   - ErrSyntax               malformed bracket text (wrapped with offset).
//   - ErrAlreadyAttached      child already parented, rooted or consumed.
//   - ErrStructuralInvariant  parent link and child slot disagree.
//   - ErrNodeNotFound         handle is out of range or released.
//   - ErrNotLeaf, ErrNotBranch wrong node kind for the operation.
//   - ErrEmptyTree            tree has no root.
package pairtree
