package pairtree

import (
	"fmt"
	"strconv"
	"strings"
)

// parser is a recursive-descent reader for bracket notation.
type parser struct {
	src  string
	pos  int
	tree *Tree
}

// Parse reads a compound number in bracket notation, e.g. "[[1,2],3]".
// A bare decimal integer is a single-leaf tree. Surrounding whitespace is
// ignored; any other deviation yields an error wrapping ErrSyntax.
func Parse(text string) (*Tree, error) {
	src := strings.TrimSpace(text)
	p := &parser{src: src, tree: NewWithCapacity(len(src) / 2)}

	root, err := p.element()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected %q after number", p.src[p.pos])
	}
	if err = p.tree.SetRoot(root); err != nil {
		return nil, err
	}

	return p.tree, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level literals.
func MustParse(text string) *Tree {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return t
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, fmt.Sprintf(format, args...), p.pos)
}

func (p *parser) need(ch byte) error {
	if p.pos >= len(p.src) {
		return p.errorf("expected %q, found end of input", ch)
	}
	if p.src[p.pos] != ch {
		return p.errorf("expected %q, found %q", ch, p.src[p.pos])
	}
	p.pos++

	return nil
}

// element := number | '[' element ',' element ']'
func (p *parser) element() (NodeID, error) {
	if p.pos >= len(p.src) {
		return Nil, p.errorf("unexpected end of input")
	}
	if p.src[p.pos] != '[' {
		return p.number()
	}
	p.pos++

	left, err := p.element()
	if err != nil {
		return Nil, err
	}
	if err = p.need(','); err != nil {
		return Nil, err
	}
	right, err := p.element()
	if err != nil {
		return Nil, err
	}
	if err = p.need(']'); err != nil {
		return Nil, err
	}

	return p.tree.NewPair(left, right)
}

func (p *parser) number() (NodeID, error) {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return Nil, p.errorf("expected digit or '[', found %q", p.src[p.pos])
	}
	lit := p.src[start:p.pos]
	v, err := strconv.ParseUint(lit, 10, 64)
	if err != nil {
		p.pos = start

		return Nil, p.errorf("number %q out of range", lit)
	}

	return p.tree.NewLeaf(v), nil
}

// String renders the tree in bracket notation. An empty tree renders as "".
func (t *Tree) String() string {
	if t.root == Nil {
		return ""
	}

	return t.Format(t.root)
}

// Format renders the subtree at id in bracket notation.
func (t *Tree) Format(id NodeID) string {
	if _, err := t.lookup(id); err != nil {
		return ""
	}
	var sb strings.Builder
	t.format(&sb, id)

	return sb.String()
}

func (t *Tree) format(sb *strings.Builder, id NodeID) {
	nd := t.nodes[id]
	if nd.kind == Leaf {
		sb.WriteString(strconv.FormatUint(nd.value, 10))
		return
	}
	sb.WriteByte('[')
	t.format(sb, nd.left)
	sb.WriteByte(',')
	t.format(sb, nd.right)
	sb.WriteByte(']')
}
