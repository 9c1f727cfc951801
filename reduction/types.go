package reduction

import "errors"

const (
	// ExplodeDepth is the minimum nesting depth of a pair that explodes.
	ExplodeDepth = 4

	// SplitThreshold is the smallest leaf value that splits.
	SplitThreshold = 10
)

// Sentinel errors for reduction operations.
var (
	// ErrNilTree is returned when a nil *pairtree.Tree is passed.
	ErrNilTree = errors.New("reduction: tree is nil")

	// ErrNoOperands is returned when a fold or pair search has too few inputs.
	ErrNoOperands = errors.New("reduction: not enough operands")

	// ErrStepLimit is returned when Reduce exceeds the configured step budget.
	ErrStepLimit = errors.New("reduction: step limit exceeded")
)

// Option configures optional behavior of Reduce and the functions built on it.
type Option func(*Options)

// Options holds hooks and limits for a reduction.
type Options struct {
	// OnExplode, if non-nil, is invoked after each explosion with the depth
	// of the exploded pair and the two values it carried.
	OnExplode func(depth int, left, right uint64)

	// OnSplit, if non-nil, is invoked after each split with the value that split.
	OnSplit func(value uint64)

	// MaxSteps bounds the number of rewrites in one Reduce. Zero means no limit.
	MaxSteps int
}

// DefaultOptions returns Options with no hooks and no step limit.
func DefaultOptions() Options {
	return Options{
		OnExplode: nil,
		OnSplit:   nil,
		MaxSteps:  0,
	}
}

// WithOnExplode installs fn as the explosion hook.
func WithOnExplode(fn func(depth int, left, right uint64)) Option {
	return func(o *Options) {
		o.OnExplode = fn
	}
}

// WithOnSplit installs fn as the split hook.
func WithOnSplit(fn func(value uint64)) Option {
	return func(o *Options) {
		o.OnSplit = fn
	}
}

// WithMaxSteps limits a Reduce to n rewrites. Negative values are treated as zero.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxSteps = n
	}
}

// Result reports the rewrites performed by a Reduce.
type Result struct {
	Explodes int
	Splits   int
}

// Steps returns the total number of rewrites.
func (r Result) Steps() int { return r.Explodes + r.Splits }

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
