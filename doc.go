// Package pairfold is an in-memory toolkit for compound numbers: binary
// trees of small unsigned integers that are added together and normalized
// by two local rewrite rules.
//
// What is a compound number?
//
//	[[1,2],[[3,4],5]]
//
//	      ●
//	    /   \
//	   ●     ●
//	  / \   / \
//	 1   2 ●   5
//	      / \
//	     3   4
//
// A leaf is a number; a pair holds exactly two compound numbers. Adding two
// numbers pairs them under a new root and then reduces the result:
//
//   - explode: the leftmost pair of two leaves nested four deep is replaced
//     by 0, its values pushed into the neighbouring leaves;
//   - split: the leftmost leaf of 10 or more becomes [v/2, v-v/2].
//
// Explosions always go first, and every rewrite restarts the search. The
// magnitude of a number is its value for a leaf and 3*left + 2*right for a
// pair.
//
// Packages:
//
//	pairtree/   — arena-backed tree with parent handles and leaf-neighbour navigation
//	reduction/  — explode, split, reduce, combine, magnitude over pairtree
//	flatpair/   — the same engine over a flat (value, depth, side) leaf sequence
//	cmd/pairfold — CLI: sum, max-pair, reduce, magnitude
//
// Both engines accept the same reduction.Option hooks and must agree on
// every result; the flatpair tests cross-check them.
package pairfold
