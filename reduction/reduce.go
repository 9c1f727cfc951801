package reduction

import (
	"fmt"

	"github.com/katalvlaran/pairfold/pairtree"
)

// Reduce rewrites t in place until neither Explode nor Split applies.
//
// Explosions take priority: Split is attempted only when no pair can
// explode, and after every rewrite the search restarts from the left.
// With WithMaxSteps, Reduce stops after that many rewrites and returns
// the partial Result together with ErrStepLimit.
func Reduce(t *pairtree.Tree, opts ...Option) (Result, error) {
	var res Result
	if t == nil {
		return res, ErrNilTree
	}
	if t.Root() == pairtree.Nil {
		return res, pairtree.ErrEmptyTree
	}

	o := buildOptions(opts)
	for {
		if o.MaxSteps > 0 && res.Steps() >= o.MaxSteps {
			if !canRewrite(t) {
				return res, nil
			}

			return res, fmt.Errorf("%w: %d rewrites", ErrStepLimit, res.Steps())
		}
		if explode(t, &o) {
			res.Explodes++
			continue
		}
		if split(t, &o) {
			res.Splits++
			continue
		}

		return res, nil
	}
}

// canRewrite reports whether a further Explode or Split would apply,
// without mutating t.
func canRewrite(t *pairtree.Tree) bool {
	found := t.Walk(t.Root(), func(id pairtree.NodeID, d int) bool {
		if t.IsLeaf(id) {
			return mustValue(t, id) < SplitThreshold
		}
		if d < ExplodeDepth {
			return true
		}
		l, r := mustChildren(t, id)

		return !(t.IsLeaf(l) && t.IsLeaf(r))
	})

	return found != pairtree.Nil
}

// Combine pairs a (left) and b (right) under a new root, reduces the
// result and returns it. Both operands are consumed: their nodes move into
// the returned tree and they cannot be combined again.
//
// Combine fails with pairtree.ErrAlreadyAttached when a and b are the same
// tree or either was already consumed; neither operand is touched then.
func Combine(a, b *pairtree.Tree, opts ...Option) (*pairtree.Tree, error) {
	// 1. Validate operands before consuming anything.
	if a == nil || b == nil {
		return nil, ErrNilTree
	}
	if a == b {
		return nil, fmt.Errorf("reduction: combine: %w: same tree on both sides", pairtree.ErrAlreadyAttached)
	}
	for _, t := range [2]*pairtree.Tree{a, b} {
		if t.Consumed() {
			return nil, fmt.Errorf("reduction: combine: %w: operand was consumed", pairtree.ErrAlreadyAttached)
		}
		if t.Root() == pairtree.Nil {
			return nil, fmt.Errorf("reduction: combine: %w", pairtree.ErrEmptyTree)
		}
	}

	// 2. Graft both operands into a fresh arena under a new pair.
	out := pairtree.NewWithCapacity(a.Len() + b.Len() + 1)
	left, err := out.Adopt(a)
	if err != nil {
		return nil, fmt.Errorf("reduction: combine: %w", err)
	}
	right, err := out.Adopt(b)
	if err != nil {
		return nil, fmt.Errorf("reduction: combine: %w", err)
	}
	root, err := out.NewPair(left, right)
	if err != nil {
		return nil, fmt.Errorf("reduction: combine: %w", err)
	}
	if err = out.SetRoot(root); err != nil {
		return nil, fmt.Errorf("reduction: combine: %w", err)
	}

	// 3. Normalize.
	if _, err = Reduce(out, opts...); err != nil {
		return out, err
	}

	return out, nil
}

// Magnitude evaluates t: a leaf is its value, a branch is
// 3*left + 2*right. A nil or empty tree has magnitude 0.
func Magnitude(t *pairtree.Tree) uint64 {
	if t == nil || t.Root() == pairtree.Nil {
		return 0
	}

	return magnitude(t, t.Root())
}

// MagnitudeAt evaluates the subtree at id. It returns ErrNilTree for a nil
// tree and pairtree.ErrNodeNotFound for a handle that is not live.
func MagnitudeAt(t *pairtree.Tree, id pairtree.NodeID) (uint64, error) {
	if t == nil {
		return 0, ErrNilTree
	}
	if t.Kind(id) == pairtree.Free {
		return 0, fmt.Errorf("%w: %d", pairtree.ErrNodeNotFound, id)
	}

	return magnitude(t, id), nil
}

// magnitude expects id to be live; every node reached from it is too.
func magnitude(t *pairtree.Tree, id pairtree.NodeID) uint64 {
	if l, r, err := t.Children(id); err == nil {
		return 3*magnitude(t, l) + 2*magnitude(t, r)
	}

	return mustValue(t, id)
}

// Sum folds numbers left to right with Combine and returns the running
// total. Every input is consumed. A single input is returned unchanged.
func Sum(numbers []*pairtree.Tree, opts ...Option) (*pairtree.Tree, error) {
	if len(numbers) == 0 {
		return nil, ErrNoOperands
	}

	acc := numbers[0]
	var err error
	for i, n := range numbers[1:] {
		if acc, err = Combine(acc, n, opts...); err != nil {
			return nil, fmt.Errorf("reduction: sum operand %d: %w", i+1, err)
		}
	}

	return acc, nil
}

// MaxPairMagnitude returns the largest magnitude of Combine(x, y) over all
// ordered pairs of distinct positions in numbers. Inputs are cloned and
// left untouched.
func MaxPairMagnitude(numbers []*pairtree.Tree, opts ...Option) (uint64, error) {
	if len(numbers) < 2 {
		return 0, ErrNoOperands
	}

	var best uint64
	for i := range numbers {
		for j := range numbers {
			if i == j {
				continue
			}
			sum, err := Combine(numbers[i].Clone(), numbers[j].Clone(), opts...)
			if err != nil {
				return 0, fmt.Errorf("reduction: pair (%d,%d): %w", i, j, err)
			}
			if m := Magnitude(sum); m > best {
				best = m
			}
		}
	}

	return best, nil
}
