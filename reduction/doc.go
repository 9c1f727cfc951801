// Package reduction normalizes compound numbers held in a pairtree.Tree.
//
// What:
//
//   - Explode: the first branch (depth-first, left to right) at depth ≥ 4
//     whose children are both leaves is replaced by a 0 leaf; its left value
//     is added to the previous leaf in reading order and its right value to
//     the next one, when those exist.
//   - Split: the first leaf holding a value ≥ 10 becomes a pair
//     [v/2, v-v/2].
//   - Reduce: apply Explode until it finds nothing, then one Split, and
//     start over; stop when neither applies. Explode always has priority
//     and every rewrite restarts the search from the beginning.
//   - Combine: pair two trees under a new root and Reduce the result.
//   - Magnitude: leaf → value; branch → 3*left + 2*right.
//   - Sum folds a list with Combine; MaxPairMagnitude searches all ordered
//     pairs of distinct inputs for the largest combined magnitude.
//
// Options:
//
//   - WithOnExplode(fn)  observe each explosion (depth, left, right).
//   - WithOnSplit(fn)    observe each split (value).
//   - WithMaxSteps(n)    abort a Reduce after n rewrites with ErrStepLimit.
//
// Complexity:
//
//   - Explode/Split: O(n) search + O(depth) neighbour walk.
//   - Reduce: O(k·n) for k rewrites. Magnitude: O(n).
//
// Errors:
//
//   - ErrNilTree            a nil tree was passed.
//   - ErrNoOperands         Sum with no inputs, MaxPairMagnitude with < 2.
//   - ErrStepLimit          Reduce exceeded WithMaxSteps.
//   - pairtree.ErrEmptyTree tree has no root.
//   - pairtree.ErrAlreadyAttached  Combine operand reused or consumed.
package reduction
