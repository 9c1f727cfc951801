package reduction_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairfold/pairtree"
	"github.com/katalvlaran/pairfold/reduction"
)

func TestCombine_Simple(t *testing.T) {
	sum, err := reduction.Combine(pairtree.MustParse("[1,2]"), pairtree.MustParse("[[3,4],5]"))
	require.NoError(t, err)
	assert.Equal(t, "[[1,2],[[3,4],5]]", sum.String())
	assert.NoError(t, sum.Validate())
}

func TestCombine_Multistage(t *testing.T) {
	var events []string
	sum, err := reduction.Combine(
		pairtree.MustParse("[[[[4,3],4],4],[7,[[8,4],9]]]"),
		pairtree.MustParse("[1,1]"),
		reduction.WithOnExplode(func(d int, l, r uint64) { events = append(events, fmt.Sprintf("explode@%d[%d,%d]", d, l, r)) }),
		reduction.WithOnSplit(func(v uint64) { events = append(events, fmt.Sprintf("split %d", v)) }),
	)
	require.NoError(t, err)
	assert.Equal(t, "[[[[0,7],4],[[7,8],[6,0]]],[8,1]]", sum.String())
	assert.Equal(t, []string{
		"explode@4[4,3]",
		"explode@4[8,4]",
		"split 15",
		"split 13",
		"explode@4[6,7]",
	}, events)
	assert.NoError(t, sum.Validate())
}

func TestCombine_ConsumesOperands(t *testing.T) {
	a, b := pairtree.MustParse("[1,2]"), pairtree.MustParse("[3,4]")
	_, err := reduction.Combine(a, b)
	require.NoError(t, err)
	assert.True(t, a.Consumed())
	assert.True(t, b.Consumed())

	_, err = reduction.Combine(a, pairtree.MustParse("[5,6]"))
	assert.ErrorIs(t, err, pairtree.ErrAlreadyAttached)
}

func TestCombine_Rejections(t *testing.T) {
	a := pairtree.MustParse("[1,2]")
	_, err := reduction.Combine(a, a)
	assert.ErrorIs(t, err, pairtree.ErrAlreadyAttached)
	assert.False(t, a.Consumed(), "a failed combine must not consume")

	_, err = reduction.Combine(nil, a)
	assert.ErrorIs(t, err, reduction.ErrNilTree)

	_, err = reduction.Combine(a, pairtree.New())
	assert.ErrorIs(t, err, pairtree.ErrEmptyTree)
	assert.False(t, a.Consumed())
}

func TestCombine_TwoLeaves(t *testing.T) {
	var steps int
	count := func(int, uint64, uint64) { steps++ }
	sum, err := reduction.Combine(pairtree.MustParse("5"), pairtree.MustParse("7"), reduction.WithOnExplode(count))
	require.NoError(t, err)
	assert.Equal(t, "[5,7]", sum.String())
	assert.Zero(t, steps)
}

func TestCombine_NotCommutative(t *testing.T) {
	x, y := parseLines(t, homework)[0], parseLines(t, homework)[1]
	ab, err := reduction.Combine(x.Clone(), y.Clone())
	require.NoError(t, err)
	ba, err := reduction.Combine(y, x)
	require.NoError(t, err)

	assert.Equal(t, "[[[[7,0],[7,8]],[[7,9],[0,6]]],[[[7,0],[6,6]],[[7,7],[0,9]]]]", ab.String())
	assert.NotEqual(t, ab.String(), ba.String())
}

func TestReduce_Idempotent(t *testing.T) {
	tr := pairtree.MustParse(homeworkSum)
	res, err := reduction.Reduce(tr)
	require.NoError(t, err)
	assert.Equal(t, reduction.Result{}, res)
	assert.Equal(t, homeworkSum, tr.String())
}

func TestReduce_CountsAndErrors(t *testing.T) {
	tr := pairtree.MustParse("[[[[[4,3],4],4],[7,[[8,4],9]]],[1,1]]")
	res, err := reduction.Reduce(tr)
	require.NoError(t, err)
	assert.Equal(t, reduction.Result{Explodes: 3, Splits: 2}, res)
	assert.Equal(t, 5, res.Steps())

	_, err = reduction.Reduce(nil)
	assert.ErrorIs(t, err, reduction.ErrNilTree)
	_, err = reduction.Reduce(pairtree.New())
	assert.ErrorIs(t, err, pairtree.ErrEmptyTree)
}

func TestReduce_StepLimit(t *testing.T) {
	tr := pairtree.MustParse("[[[[[4,3],4],4],[7,[[8,4],9]]],[1,1]]")
	res, err := reduction.Reduce(tr, reduction.WithMaxSteps(2))
	assert.ErrorIs(t, err, reduction.ErrStepLimit)
	assert.Equal(t, 2, res.Steps())
	assert.NoError(t, tr.Validate())

	// a limit that is reached exactly at the fixpoint is not an error
	tr = pairtree.MustParse("[[[[[9,8],1],2],3],4]")
	res, err = reduction.Reduce(tr, reduction.WithMaxSteps(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Explodes)
}

func TestSum_Examples(t *testing.T) {
	cases := []struct {
		lines string
		want  string
	}{
		{"[1,1]\n[2,2]\n[3,3]\n[4,4]", "[[[[1,1],[2,2]],[3,3]],[4,4]]"},
		{"[1,1]\n[2,2]\n[3,3]\n[4,4]\n[5,5]", "[[[[3,0],[5,3]],[4,4]],[5,5]]"},
		{"[1,1]\n[2,2]\n[3,3]\n[4,4]\n[5,5]\n[6,6]", "[[[[5,0],[7,4]],[5,5]],[6,6]]"},
		{homework, homeworkSum},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
			sum, err := reduction.Sum(parseLines(t, tc.lines))
			require.NoError(t, err)
			assert.Equal(t, tc.want, sum.String())
			assert.NoError(t, sum.Validate())
		})
	}
}

func TestSum_HomeworkSteps(t *testing.T) {
	steps := []struct{ acc, elem, want string }{
		{"[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]", "[[[5,[2,8]],4],[5,[[9,9],0]]]", "[[[[7,0],[7,8]],[[7,9],[0,6]]],[[[7,0],[6,6]],[[7,7],[0,9]]]]"},
		{"[[[[7,0],[7,8]],[[7,9],[0,6]]],[[[7,0],[6,6]],[[7,7],[0,9]]]]", "[6,[[[6,2],[5,6]],[[7,6],[4,7]]]]", "[[[[7,7],[7,7]],[[7,0],[7,7]]],[[[7,7],[6,7]],[[7,7],[8,9]]]]"},
		{"[[[[7,7],[7,7]],[[7,0],[7,7]]],[[[7,7],[6,7]],[[7,7],[8,9]]]]", "[[[6,[0,7]],[0,9]],[4,[9,[9,0]]]]", "[[[[6,6],[6,6]],[[7,7],[7,7]]],[[[7,0],[7,7]],[[7,8],[8,8]]]]"},
		{"[[[[6,6],[6,6]],[[7,7],[7,7]]],[[[7,0],[7,7]],[[7,8],[8,8]]]]", "[[[7,[6,4]],[3,[1,3]]],[[[5,5],1],9]]", "[[[[6,6],[7,7]],[[7,7],[8,8]]],[[[8,8],[0,8]],[[8,9],[9,9]]]]"},
		{"[[[[6,6],[7,7]],[[7,7],[8,8]]],[[[8,8],[0,8]],[[8,9],[9,9]]]]", "[[6,[[7,3],[3,2]]],[[[3,8],[5,7]],4]]", "[[[[6,6],[7,7]],[[7,7],[7,0]]],[[[7,7],[8,8]],[[8,8],[8,9]]]]"},
		{"[[[[6,6],[7,7]],[[7,7],[7,0]]],[[[7,7],[8,8]],[[8,8],[8,9]]]]", "[[[[5,4],[7,7]],8],[[8,3],8]]", "[[[[7,7],[7,7]],[[7,7],[7,7]]],[[[0,7],[8,8]],[[8,8],[8,9]]]]"},
		{"[[[[7,7],[7,7]],[[7,7],[7,7]]],[[[0,7],[8,8]],[[8,8],[8,9]]]]", "[[9,3],[[9,9],[6,[4,9]]]]", "[[[[7,7],[7,7]],[[7,7],[8,8]]],[[[8,8],[0,8]],[[8,9],[8,7]]]]"},
		{"[[[[7,7],[7,7]],[[7,7],[8,8]]],[[[8,8],[0,8]],[[8,9],[8,7]]]]", "[[2,[[7,7],7]],[[5,8],[[9,3],[0,2]]]]", "[[[[7,7],[7,7]],[[7,7],[7,7]]],[[[8,7],[8,7]],[[7,9],[5,0]]]]"},
		{"[[[[7,7],[7,7]],[[7,7],[7,7]]],[[[8,7],[8,7]],[[7,9],[5,0]]]]", "[[[[5,2],5],[8,[3,7]]],[[5,[7,5]],[4,4]]]", homeworkSum},
	}
	for i, st := range steps {
		sum, err := reduction.Combine(pairtree.MustParse(st.acc), pairtree.MustParse(st.elem))
		require.NoError(t, err, "step %d", i)
		assert.Equal(t, st.want, sum.String(), "step %d", i)
	}
}

// Folds the homework in one arena and checks the structure after every
// single explode and split.
func TestReduce_ValidAfterEveryRewrite(t *testing.T) {
	numbers := parseLines(t, homework)
	acc := numbers[0]
	var explodes, splits int
	check := func() {
		require.NoError(t, acc.Validate())
	}
	opts := []reduction.Option{
		reduction.WithOnExplode(func(int, uint64, uint64) { explodes++; check() }),
		reduction.WithOnSplit(func(uint64) { splits++; check() }),
	}

	for _, next := range numbers[1:] {
		left := acc.DetachRoot()
		right, err := acc.Adopt(next)
		require.NoError(t, err)
		root, err := acc.NewPair(left, right)
		require.NoError(t, err)
		require.NoError(t, acc.SetRoot(root))
		check()

		_, err = reduction.Reduce(acc, opts...)
		require.NoError(t, err)
	}

	assert.Equal(t, homeworkSum, acc.String())
	assert.Positive(t, explodes)
	assert.Positive(t, splits)
}

func TestSum_Errors(t *testing.T) {
	_, err := reduction.Sum(nil)
	assert.ErrorIs(t, err, reduction.ErrNoOperands)

	single := pairtree.MustParse("[[1,2],3]")
	got, err := reduction.Sum([]*pairtree.Tree{single})
	require.NoError(t, err)
	assert.Same(t, single, got)

	// the same tree twice cannot be folded
	x := pairtree.MustParse("[1,2]")
	_, err = reduction.Sum([]*pairtree.Tree{x, pairtree.MustParse("[3,4]"), x})
	assert.ErrorIs(t, err, pairtree.ErrAlreadyAttached)
}

func TestMagnitude_Examples(t *testing.T) {
	cases := map[string]uint64{
		"7":                                 7,
		"[9,1]":                             29,
		"[1,9]":                             21,
		"[[9,1],[1,9]]":                     129,
		"[[1,2],[[3,4],5]]":                 143,
		"[[[[0,7],4],[[7,8],[6,0]]],[8,1]]": 1384,
		"[[[[1,1],[2,2]],[3,3]],[4,4]]":     445,
		"[[[[3,0],[5,3]],[4,4]],[5,5]]":     791,
		"[[[[5,0],[7,4]],[5,5]],[6,6]]":     1137,
		"[[[[8,7],[7,7]],[[8,6],[7,7]]],[[[0,7],[6,6]],[8,7]]]": 3488,
		homeworkSum: homeworkMagnitude,
	}
	for in, want := range cases {
		assert.Equal(t, want, reduction.Magnitude(pairtree.MustParse(in)), in)
	}
	assert.Zero(t, reduction.Magnitude(nil))
	assert.Zero(t, reduction.Magnitude(pairtree.New()))
}

func TestMagnitudeAt(t *testing.T) {
	tr := pairtree.MustParse("[[9,1],[1,9]]")
	l, r, err := tr.Children(tr.Root())
	require.NoError(t, err)

	got, err := reduction.MagnitudeAt(tr, l)
	require.NoError(t, err)
	assert.Equal(t, uint64(29), got)
	got, err = reduction.MagnitudeAt(tr, r)
	require.NoError(t, err)
	assert.Equal(t, uint64(21), got)

	// Handles released by Collapse are no longer live.
	ll, _, err := tr.Children(l)
	require.NoError(t, err)
	require.NoError(t, tr.Collapse(l, 0))
	_, err = reduction.MagnitudeAt(tr, ll)
	assert.ErrorIs(t, err, pairtree.ErrNodeNotFound)

	_, err = reduction.MagnitudeAt(tr, pairtree.NodeID(99))
	assert.ErrorIs(t, err, pairtree.ErrNodeNotFound)
	_, err = reduction.MagnitudeAt(tr, pairtree.Nil)
	assert.ErrorIs(t, err, pairtree.ErrNodeNotFound)
	_, err = reduction.MagnitudeAt(nil, 0)
	assert.ErrorIs(t, err, reduction.ErrNilTree)
}

func TestMaxPairMagnitude(t *testing.T) {
	numbers := parseLines(t, homework)
	best, err := reduction.MaxPairMagnitude(numbers)
	require.NoError(t, err)
	assert.Equal(t, uint64(homeworkMaxPair), best)

	// inputs are left intact
	for _, n := range numbers {
		assert.False(t, n.Consumed())
	}
	assert.Equal(t, "[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]", numbers[0].String())

	_, err = reduction.MaxPairMagnitude(numbers[:1])
	assert.ErrorIs(t, err, reduction.ErrNoOperands)
}
