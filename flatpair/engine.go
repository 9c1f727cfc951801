package flatpair

import (
	"fmt"

	"github.com/katalvlaran/pairfold/reduction"
)

func buildOptions(opts []reduction.Option) reduction.Options {
	o := reduction.DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// siblingAt reports whether records i and i+1 are the two leaf children of
// one branch at depth ≥ minDepth.
func (n *Number) siblingAt(i, minDepth int) bool {
	a, b := n.records[i], n.records[i+1]

	return a.Depth >= minDepth && a.Depth == b.Depth && a.Side == Left && b.Side == Right
}

// collapse replaces the sibling records i and i+1 with a single record of
// value v one level up.
//
// The collapsed branch is a right child exactly when the record before it
// is a left leaf at the branch's own depth: a branch sibling would hold a
// deeper sibling pair, and callers always collapse the leftmost one first.
func (n *Number) collapse(i int, v uint64) {
	depth := n.records[i].Depth - 1
	side := Left
	switch {
	case depth == 0:
		side = Root
	case i > 0 && n.records[i-1].Side == Left && n.records[i-1].Depth == depth:
		side = Right
	}
	n.records[i] = Record{Value: v, Depth: depth, Side: side}
	n.records = append(n.records[:i+1], n.records[i+2:]...)
}

// Explode performs at most one explosion and reports whether one happened.
func (n *Number) Explode(opts ...reduction.Option) bool {
	o := buildOptions(opts)

	return n.explode(&o)
}

// Split performs at most one split and reports whether one happened.
func (n *Number) Split(opts ...reduction.Option) bool {
	o := buildOptions(opts)

	return n.split(&o)
}

func (n *Number) explode(o *reduction.Options) bool {
	for i := 0; i+1 < len(n.records); i++ {
		if !n.siblingAt(i, reduction.ExplodeDepth+1) {
			continue
		}
		lv, rv := n.records[i].Value, n.records[i+1].Value
		if i > 0 {
			n.records[i-1].Value += lv
		}
		if i+2 < len(n.records) {
			n.records[i+2].Value += rv
		}
		depth := n.records[i].Depth - 1
		n.collapse(i, 0)

		if o.OnExplode != nil {
			o.OnExplode(depth, lv, rv)
		}

		return true
	}

	return false
}

func (n *Number) split(o *reduction.Options) bool {
	for i, r := range n.records {
		if r.Value < reduction.SplitThreshold {
			continue
		}
		half := r.Value / 2
		n.records = append(n.records, Record{})
		copy(n.records[i+2:], n.records[i+1:])
		n.records[i] = Record{Value: half, Depth: r.Depth + 1, Side: Left}
		n.records[i+1] = Record{Value: r.Value - half, Depth: r.Depth + 1, Side: Right}

		if o.OnSplit != nil {
			o.OnSplit(r.Value)
		}

		return true
	}

	return false
}

// Reduce rewrites n until neither Explode nor Split applies, with the same
// priority, restart and step-limit rules as reduction.Reduce.
func (n *Number) Reduce(opts ...reduction.Option) (reduction.Result, error) {
	var res reduction.Result
	if n == nil {
		return res, ErrNilNumber
	}
	if len(n.records) == 0 {
		return res, fmt.Errorf("%w: no records", ErrMalformed)
	}

	o := buildOptions(opts)
	for {
		if o.MaxSteps > 0 && res.Steps() >= o.MaxSteps {
			if !n.canRewrite() {
				return res, nil
			}

			return res, fmt.Errorf("%w: %d rewrites", reduction.ErrStepLimit, res.Steps())
		}
		if n.explode(&o) {
			res.Explodes++
			continue
		}
		if n.split(&o) {
			res.Splits++
			continue
		}

		return res, nil
	}
}

func (n *Number) canRewrite() bool {
	for i, r := range n.records {
		if r.Value >= reduction.SplitThreshold {
			return true
		}
		if i+1 < len(n.records) && n.siblingAt(i, reduction.ExplodeDepth+1) {
			return true
		}
	}

	return false
}

// Magnitude evaluates n by collapsing sibling records into 3*left + 2*right,
// deepest level first, until one record remains. n is not modified.
func (n *Number) Magnitude() uint64 {
	if n == nil || len(n.records) == 0 {
		return 0
	}

	work := n.Clone()
	for len(work.records) > 1 {
		deepest := 0
		for _, r := range work.records {
			if r.Depth > deepest {
				deepest = r.Depth
			}
		}
		for i := 0; i+1 < len(work.records); i++ {
			if work.records[i].Depth == deepest && work.siblingAt(i, deepest) {
				a, b := work.records[i].Value, work.records[i+1].Value
				work.collapse(i, 3*a+2*b)
			}
		}
	}

	return work.records[0].Value
}

// Combine returns [a,b] reduced. The operands are copied, not consumed, so
// a and b may be the same Number and remain usable afterwards.
func Combine(a, b *Number, opts ...reduction.Option) (*Number, error) {
	if a == nil || b == nil {
		return nil, ErrNilNumber
	}
	if len(a.records) == 0 || len(b.records) == 0 {
		return nil, fmt.Errorf("%w: empty operand", ErrMalformed)
	}

	out := &Number{records: make([]Record, 0, len(a.records)+len(b.records))}
	for _, part := range [2]struct {
		recs []Record
		side Side
	}{{a.records, Left}, {b.records, Right}} {
		for _, r := range part.recs {
			if r.Depth == 0 {
				r.Side = part.side
			}
			r.Depth++
			out.records = append(out.records, r)
		}
	}

	if _, err := out.Reduce(opts...); err != nil {
		return out, err
	}

	return out, nil
}

// Sum folds numbers left to right with Combine. Inputs are not modified;
// a single input yields a copy of it.
func Sum(numbers []*Number, opts ...reduction.Option) (*Number, error) {
	if len(numbers) == 0 {
		return nil, reduction.ErrNoOperands
	}
	if numbers[0] == nil {
		return nil, ErrNilNumber
	}

	acc := numbers[0].Clone()
	var err error
	for i, n := range numbers[1:] {
		if acc, err = Combine(acc, n, opts...); err != nil {
			return nil, fmt.Errorf("flatpair: sum operand %d: %w", i+1, err)
		}
	}

	return acc, nil
}

// MaxPairMagnitude returns the largest magnitude of Combine(x, y) over all
// ordered pairs of distinct positions in numbers.
func MaxPairMagnitude(numbers []*Number, opts ...reduction.Option) (uint64, error) {
	if len(numbers) < 2 {
		return 0, reduction.ErrNoOperands
	}

	var best uint64
	for i := range numbers {
		for j := range numbers {
			if i == j {
				continue
			}
			sum, err := Combine(numbers[i], numbers[j], opts...)
			if err != nil {
				return 0, fmt.Errorf("flatpair: pair (%d,%d): %w", i, j, err)
			}
			if m := sum.Magnitude(); m > best {
				best = m
			}
		}
	}

	return best, nil
}
