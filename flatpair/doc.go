// Package flatpair is a pointer-free rendition of compound numbers: the
// leaves of the tree stored in reading order as (value, depth, side)
// records, with every rewrite expressed as a positional scan.
//
// What:
//
//   - Number holds the record sequence. Adjacent records are adjacent
//     leaves; Depth is the nesting depth; Side says whether the leaf is the
//     left or the right child of its parent (Root for a lone leaf).
//   - Explode: the first adjacent (Left, Right) records deeper than
//     reduction.ExplodeDepth are a pair of sibling leaves; their values move
//     into the neighbouring records and the pair becomes one 0 record.
//   - Split: the first record ≥ 10 becomes two records one level deeper.
//   - Magnitude: collapse sibling records level by level, deepest first.
//   - Combine, Sum and MaxPairMagnitude mirror package reduction and share
//     its Option hooks and Result type, so both engines can be driven and
//     observed identically.
//
// Why:
//
//   - No parent links to keep consistent and no aliasing: a Number is a
//     plain slice. Combine copies its operands, so they stay usable.
//   - Searches are linear rather than O(depth), which is acceptable for the
//     small numbers this works on and often faster in practice thanks to
//     contiguous memory.
//
// Complexity:
//
//   - Explode/Split: O(n). Magnitude: O(n·depth). Parse/String: O(n).
//
// Errors:
//
//   - ErrSyntax     malformed bracket text.
//   - ErrMalformed  record sequence does not describe a binary tree.
//   - ErrNilNumber  a nil *Number was passed.
//   - reduction.ErrStepLimit, reduction.ErrNoOperands as in package reduction.
package flatpair
