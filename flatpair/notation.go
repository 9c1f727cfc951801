package flatpair

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pairfold/pairtree"
)

// New builds a Number from records, which are copied. It returns an error
// wrapping ErrMalformed when they do not describe a binary tree.
func New(records []Record) (*Number, error) {
	n := &Number{records: make([]Record, len(records))}
	copy(n.records, records)
	if err := n.Validate(); err != nil {
		return nil, err
	}

	return n, nil
}

// Parse reads bracket notation straight into records without building a
// tree: '[' opens a level, a number closed by ',' is a left leaf and one
// closed by ']' a right leaf. The scan tracks which token the grammar
// allows next, so it rejects exactly what pairtree.Parse rejects.
func Parse(text string) (*Number, error) {
	src := strings.TrimSpace(text)
	n := &Number{records: make([]Record, 0, len(src)/2)}
	start := -1
	// prev is the last token: 0 at the beginning, 'd' inside or after a
	// number, otherwise the bracket or comma itself.
	var prev byte
	// sep[d] reports whether the pair open at depth d+1 has seen its ','.
	var sep []bool

	emit := func(end int, side Side) error {
		if start < 0 {
			return nil
		}
		v, err := strconv.ParseUint(src[start:end], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: number %q at offset %d", ErrSyntax, src[start:end], start)
		}
		n.records = append(n.records, Record{Value: v, Depth: len(sep), Side: side})
		start = -1

		return nil
	}
	// elementDone reports whether an element has just been completed.
	elementDone := func() bool { return prev == 'd' || prev == ']' }
	// elementAllowed reports whether a new element may begin here.
	elementAllowed := func() bool {
		return prev == 0 || prev == '[' || prev == ','
	}

	for i := 0; i < len(src); i++ {
		switch ch := src[i]; {
		case ch >= '0' && ch <= '9':
			if start < 0 {
				if !elementAllowed() {
					return nil, fmt.Errorf("%w: unexpected digit at offset %d", ErrSyntax, i)
				}
				start = i
			}
			prev = 'd'
		case ch == '[':
			if !elementAllowed() {
				return nil, fmt.Errorf("%w: unexpected '[' at offset %d", ErrSyntax, i)
			}
			sep = append(sep, false)
			prev = '['
		case ch == ',':
			if !elementDone() || len(sep) == 0 || sep[len(sep)-1] {
				return nil, fmt.Errorf("%w: unexpected ',' at offset %d", ErrSyntax, i)
			}
			if err := emit(i, Left); err != nil {
				return nil, err
			}
			sep[len(sep)-1] = true
			prev = ','
		case ch == ']':
			if !elementDone() || len(sep) == 0 || !sep[len(sep)-1] {
				return nil, fmt.Errorf("%w: unexpected ']' at offset %d", ErrSyntax, i)
			}
			if err := emit(i, Right); err != nil {
				return nil, err
			}
			sep = sep[:len(sep)-1]
			prev = ']'
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, ch, i)
		}
		// A complete top-level element ends the input.
		if prev == ']' && len(sep) == 0 && i < len(src)-1 {
			return nil, fmt.Errorf("%w: trailing input at offset %d", ErrSyntax, i+1)
		}
	}
	if len(sep) != 0 {
		return nil, fmt.Errorf("%w: %d unclosed '['", ErrSyntax, len(sep))
	}
	if !elementDone() {
		return nil, fmt.Errorf("%w: expected digit or '[' at end of input", ErrSyntax)
	}
	if err := emit(len(src), Root); err != nil {
		return nil, err
	}
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return n, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) *Number {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return n
}

// FromTree flattens the tree rooted at t.Root().
func FromTree(t *pairtree.Tree) (*Number, error) {
	if t == nil {
		return nil, ErrNilNumber
	}
	if t.Root() == pairtree.Nil {
		return nil, pairtree.ErrEmptyTree
	}

	n := &Number{records: make([]Record, 0, t.Len()/2+1)}
	t.Walk(t.Root(), func(id pairtree.NodeID, depth int) bool {
		v, err := t.Value(id)
		if err != nil {
			return true // branch
		}
		side := Root
		if isLeft, ok := t.IsLeftChild(id); ok {
			side = Right
			if isLeft {
				side = Left
			}
		}
		n.records = append(n.records, Record{Value: v, Depth: depth, Side: side})

		return true
	})

	return n, nil
}

// cursor walks records while rebuilding the nesting they describe.
type cursor struct {
	recs []Record
	pos  int
}

// descend visits the subtree expected at depth d on side s, calling leaf
// for every record, open and end around every branch and sep between its
// two children.
func (c *cursor) descend(d int, s Side, leaf func(Record), open, sep, end func()) error {
	if c.pos >= len(c.recs) {
		return fmt.Errorf("%w: missing leaf at depth %d", ErrMalformed, d)
	}
	r := c.recs[c.pos]
	switch {
	case r.Depth == d:
		if r.Side != s {
			return fmt.Errorf("%w: record %d is %s, expected %s", ErrMalformed, c.pos, r.Side, s)
		}
		c.pos++
		leaf(r)

		return nil
	case r.Depth < d:
		return fmt.Errorf("%w: record %d at depth %d, expected ≥ %d", ErrMalformed, c.pos, r.Depth, d)
	}

	open()
	if err := c.descend(d+1, Left, leaf, open, sep, end); err != nil {
		return err
	}
	sep()
	if err := c.descend(d+1, Right, leaf, open, sep, end); err != nil {
		return err
	}
	end()

	return nil
}

func (n *Number) rebuild(leaf func(Record), open, sep, end func()) error {
	if len(n.records) == 0 {
		return fmt.Errorf("%w: no records", ErrMalformed)
	}
	c := &cursor{recs: n.records}
	if err := c.descend(0, Root, leaf, open, sep, end); err != nil {
		return err
	}
	if c.pos != len(c.recs) {
		return fmt.Errorf("%w: %d trailing records", ErrMalformed, len(c.recs)-c.pos)
	}

	return nil
}

func noop() {}

// Validate checks that the records describe a binary tree: depths nest
// like brackets and every side matches the slot the record fills.
func (n *Number) Validate() error {
	return n.rebuild(func(Record) {}, noop, noop, noop)
}

// String renders n in bracket notation, or "" for a malformed sequence.
func (n *Number) String() string {
	var sb strings.Builder
	err := n.rebuild(
		func(r Record) { sb.WriteString(strconv.FormatUint(r.Value, 10)) },
		func() { sb.WriteByte('[') },
		func() { sb.WriteByte(',') },
		func() { sb.WriteByte(']') },
	)
	if err != nil {
		return ""
	}

	return sb.String()
}

// Tree rebuilds the equivalent pairtree.Tree.
func (n *Number) Tree() (*pairtree.Tree, error) {
	t := pairtree.NewWithCapacity(2 * len(n.records))
	var (
		stack []pairtree.NodeID
		err   error
	)
	rerr := n.rebuild(
		func(r Record) { stack = append(stack, t.NewLeaf(r.Value)) },
		noop,
		noop,
		func() {
			if err != nil {
				return
			}
			k := len(stack)
			var id pairtree.NodeID
			if id, err = t.NewPair(stack[k-2], stack[k-1]); err == nil {
				stack = append(stack[:k-2], id)
			}
		},
	)
	if rerr != nil {
		return nil, rerr
	}
	if err != nil {
		return nil, err
	}
	if err = t.SetRoot(stack[0]); err != nil {
		return nil, err
	}

	return t, nil
}
