package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pairfold/flatpair"
	"github.com/katalvlaran/pairfold/internal/telemetry"
	"github.com/katalvlaran/pairfold/pairtree"
	"github.com/katalvlaran/pairfold/reduction"
)

// engine runs the commands on one representation.
type engine interface {
	Name() string
	// Sum folds lines left to right and returns the total and its magnitude.
	Sum(lines []line) (string, uint64, error)
	// MaxPair returns the largest magnitude over ordered pairs of lines,
	// observing every pairwise combine.
	MaxPair(lines []line) (uint64, error)
	// Reduce reduces a single number.
	Reduce(text string) (string, reduction.Result, error)
	// Magnitude evaluates a single number as written.
	Magnitude(text string) (uint64, error)
}

// runtime bundles what every engine needs from the command.
type runtime struct {
	logger   *slog.Logger
	recorder *telemetry.Recorder
	maxSteps int
}

func newEngine(name string, rt runtime) (engine, error) {
	switch name {
	case "tree":
		return &treeEngine{rt: rt}, nil
	case "flat":
		return &flatEngine{rt: rt}, nil
	default:
		return nil, fmt.Errorf("unknown engine %q", name)
	}
}

// options returns the hooks and limits for one reduction. steps, when
// non-nil, is incremented once per rewrite.
func (rt runtime) options(engine string, steps *int) []reduction.Option {
	var onStep func()
	if steps != nil {
		onStep = func() { *steps++ }
	}
	opts := rt.recorder.Hooks(engine, rt.logger, onStep)

	return append(opts, reduction.WithMaxSteps(rt.maxSteps))
}

type treeEngine struct{ rt runtime }

func (e *treeEngine) Name() string { return "tree" }

func (e *treeEngine) parse(lines []line) ([]*pairtree.Tree, error) {
	out := make([]*pairtree.Tree, 0, len(lines))
	for _, l := range lines {
		t, err := pairtree.Parse(l.text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", l.no, err)
		}
		out = append(out, t)
	}

	return out, nil
}

func (e *treeEngine) Sum(lines []line) (string, uint64, error) {
	numbers, err := e.parse(lines)
	if err != nil {
		return "", 0, err
	}
	if len(numbers) == 0 {
		return "", 0, reduction.ErrNoOperands
	}

	acc := numbers[0]
	for i, n := range numbers[1:] {
		steps := 0
		if acc, err = reduction.Combine(acc, n, e.rt.options(e.Name(), &steps)...); err != nil {
			return "", 0, fmt.Errorf("line %d: %w", lines[i+1].no, err)
		}
		e.rt.recorder.ObserveCombine(e.Name(), steps)
		e.rt.logger.Debug("combined", "engine", e.Name(), "line", lines[i+1].no, "steps", steps)
	}

	return acc.String(), reduction.Magnitude(acc), nil
}

func (e *treeEngine) MaxPair(lines []line) (uint64, error) {
	numbers, err := e.parse(lines)
	if err != nil {
		return 0, err
	}

	if len(numbers) < 2 {
		return 0, reduction.ErrNoOperands
	}

	var best uint64
	for i := range numbers {
		for j := range numbers {
			if i == j {
				continue
			}
			steps := 0
			sum, err := reduction.Combine(numbers[i].Clone(), numbers[j].Clone(), e.rt.options(e.Name(), &steps)...)
			if err != nil {
				return 0, fmt.Errorf("lines %d and %d: %w", lines[i].no, lines[j].no, err)
			}
			e.rt.recorder.ObserveCombine(e.Name(), steps)
			best = max(best, reduction.Magnitude(sum))
		}
	}

	return best, nil
}

func (e *treeEngine) Reduce(text string) (string, reduction.Result, error) {
	t, err := pairtree.Parse(text)
	if err != nil {
		return "", reduction.Result{}, err
	}
	res, err := reduction.Reduce(t, e.rt.options(e.Name(), nil)...)
	if err != nil {
		return "", res, err
	}

	return t.String(), res, nil
}

func (e *treeEngine) Magnitude(text string) (uint64, error) {
	t, err := pairtree.Parse(text)
	if err != nil {
		return 0, err
	}

	return reduction.Magnitude(t), nil
}

type flatEngine struct{ rt runtime }

func (e *flatEngine) Name() string { return "flat" }

func (e *flatEngine) parse(lines []line) ([]*flatpair.Number, error) {
	out := make([]*flatpair.Number, 0, len(lines))
	for _, l := range lines {
		n, err := flatpair.Parse(l.text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", l.no, err)
		}
		out = append(out, n)
	}

	return out, nil
}

func (e *flatEngine) Sum(lines []line) (string, uint64, error) {
	numbers, err := e.parse(lines)
	if err != nil {
		return "", 0, err
	}
	if len(numbers) == 0 {
		return "", 0, reduction.ErrNoOperands
	}

	acc := numbers[0]
	for i, n := range numbers[1:] {
		steps := 0
		if acc, err = flatpair.Combine(acc, n, e.rt.options(e.Name(), &steps)...); err != nil {
			return "", 0, fmt.Errorf("line %d: %w", lines[i+1].no, err)
		}
		e.rt.recorder.ObserveCombine(e.Name(), steps)
		e.rt.logger.Debug("combined", "engine", e.Name(), "line", lines[i+1].no, "steps", steps)
	}

	return acc.String(), acc.Magnitude(), nil
}

func (e *flatEngine) MaxPair(lines []line) (uint64, error) {
	numbers, err := e.parse(lines)
	if err != nil {
		return 0, err
	}

	if len(numbers) < 2 {
		return 0, reduction.ErrNoOperands
	}

	var best uint64
	for i := range numbers {
		for j := range numbers {
			if i == j {
				continue
			}
			steps := 0
			sum, err := flatpair.Combine(numbers[i], numbers[j], e.rt.options(e.Name(), &steps)...)
			if err != nil {
				return 0, fmt.Errorf("lines %d and %d: %w", lines[i].no, lines[j].no, err)
			}
			e.rt.recorder.ObserveCombine(e.Name(), steps)
			best = max(best, sum.Magnitude())
		}
	}

	return best, nil
}

func (e *flatEngine) Reduce(text string) (string, reduction.Result, error) {
	n, err := flatpair.Parse(text)
	if err != nil {
		return "", reduction.Result{}, err
	}
	res, err := n.Reduce(e.rt.options(e.Name(), nil)...)
	if err != nil {
		return "", res, err
	}

	return n.String(), res, nil
}

func (e *flatEngine) Magnitude(text string) (uint64, error) {
	n, err := flatpair.Parse(text)
	if err != nil {
		return 0, err
	}

	return n.Magnitude(), nil
}
